package domain

import "time"

// Article is a published or draft news item with its engagement counters.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt,omitempty"`
	Author      string    `json:"author"`
	AuthorTitle string    `json:"authorTitle,omitempty"`
	AuthorImage string    `json:"authorImage,omitempty"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Published   bool      `json:"published"`
	Featured    bool      `json:"featured"`
	Views       int       `json:"views"`
	Likes       int       `json:"likes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ArticleFilter narrows article listings. Nil pointer fields are unset.
type ArticleFilter struct {
	// Query is matched case-insensitively as a substring of title, content and author.
	Query string
	// Category is matched case-insensitively against the article's category label.
	Category  string
	Published *bool
	Featured  *bool
}

// ArticleUpdate carries a partial update. Nil fields leave the stored value intact.
type ArticleUpdate struct {
	Title       *string
	Content     *string
	Excerpt     *string
	Author      *string
	AuthorTitle *string
	AuthorImage *string
	Category    *string
	Tags        *[]string
	ImageURL    *string
	Published   *bool
	Featured    *bool
}
