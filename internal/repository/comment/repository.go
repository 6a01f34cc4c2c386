package comment

import (
	"context"

	"newswire/internal/domain"
)

// Repository is the storage contract for comments. Comments have no update
// operation; they are created under an article and deleted by id.
type Repository interface {
	ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	Delete(ctx context.Context, id string) (bool, error)
}
