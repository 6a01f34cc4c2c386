package category

import (
	"context"

	"newswire/internal/domain"
)

// Repository is the storage contract for categories. Both name and slug are
// unique; GetBySlug serves the public category pages.
type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, upd domain.CategoryUpdate) (*domain.Category, error)
	Delete(ctx context.Context, id string) (bool, error)
}
