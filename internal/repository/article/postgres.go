package article

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newswire/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const articleColumns = `id::text, title, content, excerpt, author, author_title, author_image, category, tags, image_url, published, featured, views, likes, created_at, updated_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger.With().Str("component", "article_repo").Logger()}
}

func (r *postgresRepo) List(ctx context.Context, f domain.ArticleFilter) ([]domain.Article, error) {
	var (
		where []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if f.Query != "" {
		p := arg("%" + f.Query + "%")
		where = append(where, fmt.Sprintf("(title ILIKE %s OR content ILIKE %s OR author ILIKE %s)", p, p, p))
	}
	if f.Category != "" {
		where = append(where, fmt.Sprintf("LOWER(category) = LOWER(%s)", arg(f.Category)))
	}
	if f.Published != nil {
		where = append(where, fmt.Sprintf("published = %s", arg(*f.Published)))
	}
	if f.Featured != nil {
		where = append(where, fmt.Sprintf("featured = %s", arg(*f.Featured)))
	}

	q := "SELECT " + articleColumns + " FROM articles"
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("list articles")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("list articles rows")
		return nil, err
	}
	r.logger.Debug().Int("count", len(result)).Msg("listed articles")
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	q := "SELECT " + articleColumns + " FROM articles WHERE id = $1"
	a, err := scanArticle(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("get article")
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) Create(ctx context.Context, a domain.Article) (*domain.Article, error) {
	const q = `
INSERT INTO articles (title, content, excerpt, author, author_title, author_image, category, tags, image_url, published, featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + articleColumns
	out, err := scanArticle(r.pool.QueryRow(ctx, q,
		a.Title, a.Content, a.Excerpt, a.Author, a.AuthorTitle, a.AuthorImage,
		a.Category, a.Tags, a.ImageURL, a.Published, a.Featured,
	))
	if err != nil {
		r.logger.Error().Err(err).Str("title", a.Title).Msg("create article")
		return nil, err
	}
	r.logger.Info().Str("id", out.ID).Str("title", out.Title).Msg("created article")
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, upd domain.ArticleUpdate) (*domain.Article, error) {
	var (
		set  []string
		args []interface{}
	)
	assign := func(col string, v interface{}) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Title != nil {
		assign("title", *upd.Title)
	}
	if upd.Content != nil {
		assign("content", *upd.Content)
	}
	if upd.Excerpt != nil {
		assign("excerpt", *upd.Excerpt)
	}
	if upd.Author != nil {
		assign("author", *upd.Author)
	}
	if upd.AuthorTitle != nil {
		assign("author_title", *upd.AuthorTitle)
	}
	if upd.AuthorImage != nil {
		assign("author_image", *upd.AuthorImage)
	}
	if upd.Category != nil {
		assign("category", *upd.Category)
	}
	if upd.Tags != nil {
		assign("tags", *upd.Tags)
	}
	if upd.ImageURL != nil {
		assign("image_url", *upd.ImageURL)
	}
	if upd.Published != nil {
		assign("published", *upd.Published)
	}
	if upd.Featured != nil {
		assign("featured", *upd.Featured)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set = append(set, "updated_at = now()")

	args = append(args, id)
	q := fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), articleColumns)

	out, err := scanArticle(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Msg("update article")
		return nil, err
	}
	r.logger.Info().Str("id", id).Msg("updated article")
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM articles WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("delete article")
		return false, err
	}
	existed := tag.RowsAffected() > 0
	if existed {
		r.logger.Info().Str("id", id).Msg("deleted article")
	}
	return existed, nil
}

// The counter updates are single statements so concurrent increments never
// lose updates.
func (r *postgresRepo) IncrementViews(ctx context.Context, id string) (int, error) {
	return r.increment(ctx, id, "views")
}

func (r *postgresRepo) IncrementLikes(ctx context.Context, id string) (int, error) {
	return r.increment(ctx, id, "likes")
}

func (r *postgresRepo) increment(ctx context.Context, id, column string) (int, error) {
	q := fmt.Sprintf("UPDATE articles SET %s = %s + 1 WHERE id = $1 RETURNING %s", column, column, column)
	var n int
	if err := r.pool.QueryRow(ctx, q, id).Scan(&n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("id", id).Str("counter", column).Msg("increment")
		return 0, err
	}
	return n, nil
}

func scanArticle(row pgx.Row) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Excerpt, &a.Author, &a.AuthorTitle,
		&a.AuthorImage, &a.Category, &a.Tags, &a.ImageURL, &a.Published, &a.Featured,
		&a.Views, &a.Likes, &a.CreatedAt, &a.UpdatedAt)
	if a.Tags == nil {
		a.Tags = []string{}
	}
	return a, err
}
