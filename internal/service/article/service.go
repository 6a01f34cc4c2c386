package article

import (
	"context"
	"strings"
	"unicode/utf8"

	"newswire/internal/domain"
	articlerepo "newswire/internal/repository/article"
)

type Service struct {
	repo articlerepo.Repository
}

func New(repo articlerepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, a domain.Article) (*domain.Article, error) {
	a.Title = strings.TrimSpace(a.Title)
	a.Author = strings.TrimSpace(a.Author)
	if a.Excerpt == "" {
		a.Excerpt = excerptOf(a.Content)
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, id string, upd domain.ArticleUpdate) (*domain.Article, error) {
	return s.repo.Update(ctx, id, upd)
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

func (s *Service) IncrementViews(ctx context.Context, id string) (int, error) {
	return s.repo.IncrementViews(ctx, id)
}

func (s *Service) IncrementLikes(ctx context.Context, id string) (int, error) {
	return s.repo.IncrementLikes(ctx, id)
}

// excerptOf derives a short teaser from the body when the author supplied none.
func excerptOf(content string) string {
	const max = 200
	content = strings.TrimSpace(content)
	if len(content) <= max {
		return content
	}
	// Back up to a rune boundary so the cut never splits a multi-byte rune.
	end := max
	for end > 0 && !utf8.RuneStart(content[end]) {
		end--
	}
	cut := content[:end]
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
