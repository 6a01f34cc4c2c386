package article

import (
	"context"

	"newswire/internal/domain"
)

// Repository is the storage contract for articles. List results are ordered
// by creation time descending. GetByID and Update return domain.ErrNotFound
// for a missing id; Delete reports whether a row existed.
type Repository interface {
	List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error)
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	Create(ctx context.Context, a domain.Article) (*domain.Article, error)
	Update(ctx context.Context, id string, upd domain.ArticleUpdate) (*domain.Article, error)
	Delete(ctx context.Context, id string) (bool, error)
	// IncrementViews and IncrementLikes are atomic at the store and return
	// the counter value after the increment.
	IncrementViews(ctx context.Context, id string) (int, error)
	IncrementLikes(ctx context.Context, id string) (int, error)
}
