package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newswire/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const categoryColumns = `id::text, name, slug, description, color, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger.With().Str("component", "category_repo").Logger()}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	q := "SELECT " + categoryColumns + " FROM categories ORDER BY created_at DESC"
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("list categories")
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("list categories rows")
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.getWhere(ctx, "id = $1", id)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.getWhere(ctx, "slug = $1", slug)
}

func (r *postgresRepo) getWhere(ctx context.Context, cond, arg string) (*domain.Category, error) {
	q := "SELECT " + categoryColumns + " FROM categories WHERE " + cond
	c, err := scanCategory(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error().Err(err).Str("arg", arg).Msg("get category")
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name, slug, description, color)
VALUES ($1, $2, $3, $4)
RETURNING ` + categoryColumns
	out, err := scanCategory(r.pool.QueryRow(ctx, q, c.Name, c.Slug, c.Description, c.Color))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("category %q: %w", c.Name, domain.ErrConflict)
		}
		r.logger.Error().Err(err).Str("name", c.Name).Msg("create category")
		return nil, err
	}
	r.logger.Info().Str("id", out.ID).Str("slug", out.Slug).Msg("created category")
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, upd domain.CategoryUpdate) (*domain.Category, error) {
	var (
		set  []string
		args []interface{}
	)
	assign := func(col string, v interface{}) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != nil {
		assign("name", *upd.Name)
	}
	if upd.Slug != nil {
		assign("slug", *upd.Slug)
	}
	if upd.Description != nil {
		assign("description", *upd.Description)
	}
	if upd.Color != nil {
		assign("color", *upd.Color)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	q := fmt.Sprintf("UPDATE categories SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), categoryColumns)

	out, err := scanCategory(r.pool.QueryRow(ctx, q, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("category %s: %w", id, domain.ErrConflict)
		}
		r.logger.Error().Err(err).Str("id", id).Msg("update category")
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("delete category")
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// isUniqueViolation reports whether err is a Postgres unique_violation (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanCategory(row pgx.Row) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color, &c.CreatedAt)
	return c, err
}
