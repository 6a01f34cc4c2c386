package comment

import (
	"context"

	"newswire/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger.With().Str("component", "comment_repo").Logger()}
}

func (r *postgresRepo) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	const q = `
SELECT id::text, article_id::text, author, email, content, created_at
FROM comments
WHERE article_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, articleID)
	if err != nil {
		r.logger.Error().Err(err).Str("article_id", articleID).Msg("list comments")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Email, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Str("article_id", articleID).Msg("list comments rows")
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Comment) (*domain.Comment, error) {
	const q = `
INSERT INTO comments (article_id, author, email, content)
VALUES ($1, $2, $3, $4)
RETURNING id::text, article_id::text, author, email, content, created_at
`
	var out domain.Comment
	err := r.pool.QueryRow(ctx, q, c.ArticleID, c.Author, c.Email, c.Content).
		Scan(&out.ID, &out.ArticleID, &out.Author, &out.Email, &out.Content, &out.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("article_id", c.ArticleID).Msg("create comment")
		return nil, err
	}
	r.logger.Info().Str("id", out.ID).Str("article_id", out.ArticleID).Msg("created comment")
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("delete comment")
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
