package category

import (
	"context"

	"newswire/internal/domain"
	categoryrepo "newswire/internal/repository/category"
	"newswire/pkg/slug"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, sl string) (*domain.Category, error) {
	return s.repo.GetBySlug(ctx, sl)
}

// Create fills in the slug from the display name when the caller omitted one.
func (s *Service) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if c.Slug == "" {
		c.Slug = slug.From(c.Name)
	}
	return s.repo.Create(ctx, c)
}

// Update never regenerates the slug on a rename; category URLs stay stable
// unless the caller sets a slug explicitly.
func (s *Service) Update(ctx context.Context, id string, upd domain.CategoryUpdate) (*domain.Category, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
