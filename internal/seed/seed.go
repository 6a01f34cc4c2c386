package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"newswire/pkg/slug"
)

type categorySeed struct {
	Name        string
	Description string
	Color       string
}

type articleSeed struct {
	Title     string
	Content   string
	Excerpt   string
	Author    string
	Category  string
	Tags      []string
	Published bool
	Featured  bool
}

// Apply inserts demo content for manual testing. It is idempotent: categories
// upsert on name, articles are skipped when a same-titled row already exists.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := []categorySeed{
		{Name: "Technology", Description: "Gadgets, software and the industry behind them", Color: "indigo"},
		{Name: "Politics", Description: "Government, elections and policy", Color: "red"},
		{Name: "Economy", Description: "Markets, trade and business", Color: "emerald"},
		{Name: "Culture", Description: "Film, music, books and the arts", Color: "amber"},
	}
	for _, c := range categories {
		if err := upsertCategory(ctx, pool, c); err != nil {
			return fmt.Errorf("upsert category %s: %w", c.Name, err)
		}
	}

	articles := []articleSeed{
		{
			Title:     "Chipmakers race to shrink the next node",
			Content:   "Fabrication plants across three continents are retooling for the next process node, and the supply chain is feeling it.",
			Author:    "Ana Ortiz",
			Category:  "Technology",
			Tags:      []string{"semiconductors", "hardware"},
			Published: true,
			Featured:  true,
		},
		{
			Title:     "Budget talks stretch into the night",
			Content:   "Negotiators left the chamber after midnight with the spending bill still short of votes.",
			Author:    "Ben Keller",
			Category:  "Politics",
			Tags:      []string{"budget", "parliament"},
			Published: true,
		},
		{
			Title:     "Markets end the quarter higher",
			Content:   "A late rally lifted the main indices to their best quarterly close in two years.",
			Author:    "Cleo Mbeki",
			Category:  "Economy",
			Tags:      []string{"markets", "stocks"},
			Published: true,
		},
		{
			Title:     "Festival lineup announced",
			Content:   "The summer festival published its lineup this morning; tickets go on sale Friday.",
			Author:    "Ana Ortiz",
			Category:  "Culture",
			Tags:      []string{"music", "festival"},
			Published: false,
		},
	}
	for _, a := range articles {
		if err := insertArticle(ctx, pool, a); err != nil {
			return fmt.Errorf("insert article %s: %w", a.Title, err)
		}
	}

	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, c categorySeed) error {
	const q = `
INSERT INTO categories (name, slug, description, color)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO UPDATE
SET description = EXCLUDED.description,
    color = EXCLUDED.color
`
	_, err := pool.Exec(ctx, q, c.Name, slug.From(c.Name), c.Description, c.Color)
	return err
}

func insertArticle(ctx context.Context, pool *pgxpool.Pool, a articleSeed) error {
	const q = `
INSERT INTO articles (title, content, excerpt, author, category, tags, published, featured)
SELECT $1, $2, $3, $4, $5, $6, $7, $8
WHERE NOT EXISTS (SELECT 1 FROM articles WHERE title = $1)
`
	_, err := pool.Exec(ctx, q, a.Title, a.Content, a.Excerpt, a.Author, a.Category, a.Tags, a.Published, a.Featured)
	return err
}
