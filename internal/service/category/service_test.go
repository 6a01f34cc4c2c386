package category

import (
	"context"
	"testing"

	"newswire/internal/domain"
	categoryrepo "newswire/internal/repository/category"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_GeneratesSlugFromName(t *testing.T) {
	svc := New(categoryrepo.NewMemory())

	c, err := svc.Create(context.Background(), domain.Category{Name: "World News"})
	require.NoError(t, err)
	assert.Equal(t, "world-news", c.Slug)
}

func TestCreate_KeepsExplicitSlug(t *testing.T) {
	svc := New(categoryrepo.NewMemory())

	c, err := svc.Create(context.Background(), domain.Category{Name: "World News", Slug: "world"})
	require.NoError(t, err)
	assert.Equal(t, "world", c.Slug)
}

func TestUpdate_RenameKeepsSlug(t *testing.T) {
	svc := New(categoryrepo.NewMemory())
	ctx := context.Background()

	c, err := svc.Create(ctx, domain.Category{Name: "Sport"})
	require.NoError(t, err)

	name := "Sports Desk"
	updated, err := svc.Update(ctx, c.ID, domain.CategoryUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Sports Desk", updated.Name)
	assert.Equal(t, "sport", updated.Slug)
}
