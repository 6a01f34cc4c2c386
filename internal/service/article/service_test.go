package article

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"newswire/internal/domain"
	articlerepo "newswire/internal/repository/article"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_DerivesExcerptWhenMissing(t *testing.T) {
	svc := New(articlerepo.NewMemory())

	long := strings.Repeat("word ", 100)
	a, err := svc.Create(context.Background(), domain.Article{
		Title:   "  Padded title  ",
		Content: long,
		Author:  "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "Padded title", a.Title)
	assert.NotEmpty(t, a.Excerpt)
	assert.LessOrEqual(t, len(a.Excerpt), 210)
	assert.True(t, strings.HasSuffix(a.Excerpt, "…"))
}

func TestCreate_KeepsProvidedExcerpt(t *testing.T) {
	svc := New(articlerepo.NewMemory())

	a, err := svc.Create(context.Background(), domain.Article{
		Title:   "Short",
		Content: "body",
		Excerpt: "hand-written teaser",
		Author:  "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "hand-written teaser", a.Excerpt)
}

func TestExcerptOf_ShortContentPassesThrough(t *testing.T) {
	assert.Equal(t, "tiny", excerptOf("  tiny  "))
}

func TestExcerptOf_SpacelessUnicodeStaysValidUTF8(t *testing.T) {
	got := excerptOf(strings.Repeat("…", 100))
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Less(t, len(got), 210)
}

func TestExcerptOf_CutsAtWordBoundary(t *testing.T) {
	content := strings.Repeat("abcdefghij ", 30)
	got := excerptOf(content)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.NotContains(t, strings.TrimSuffix(got, "…"), "  ")
	assert.False(t, strings.HasSuffix(strings.TrimSuffix(got, "…"), " "))
}
