package comment

import (
	"context"
	"testing"

	"newswire/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_ScopedToArticle(t *testing.T) {
	repo := NewMemory()
	ctx := context.Background()

	first, err := repo.Create(ctx, domain.Comment{ArticleID: "a1", Author: "Ana", Content: "nice"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, domain.Comment{ArticleID: "a1", Author: "Ben", Content: "agreed"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, domain.Comment{ArticleID: "a2", Author: "Cleo", Content: "other thread"})
	require.NoError(t, err)

	got, err := repo.ListByArticle(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID, "newest first")

	existed, err := repo.Delete(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	got, err = repo.ListByArticle(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, second.ID, got[0].ID)
}

func TestMemoryRepo_DeleteMissing(t *testing.T) {
	repo := NewMemory()
	existed, err := repo.Delete(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, existed)
}
