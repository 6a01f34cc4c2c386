package comment

import (
	"context"

	"newswire/internal/domain"
	articlerepo "newswire/internal/repository/article"
	commentrepo "newswire/internal/repository/comment"
)

type Service struct {
	repo     commentrepo.Repository
	articles articlerepo.Repository
}

func New(repo commentrepo.Repository, articles articlerepo.Repository) *Service {
	return &Service{repo: repo, articles: articles}
}

// ListByArticle returns the article's comments, newest first. A missing
// article surfaces as domain.ErrNotFound rather than an empty list.
func (s *Service) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		return nil, err
	}
	return s.repo.ListByArticle(ctx, articleID)
}

func (s *Service) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	if _, err := s.articles.GetByID(ctx, c.ArticleID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
