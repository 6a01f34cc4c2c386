package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// ArticleFilter mirrors the list endpoint's query parameters. Nil pointer
// fields are omitted.
type ArticleFilter struct {
	Query     string
	Category  string
	Published *bool
	Featured  *bool
}

func (f ArticleFilter) encode() string {
	q := url.Values{}
	if f.Query != "" {
		q.Set("query", f.Query)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Published != nil {
		q.Set("published", strconv.FormatBool(*f.Published))
	}
	if f.Featured != nil {
		q.Set("featured", strconv.FormatBool(*f.Featured))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// NewArticle is the creation payload.
type NewArticle struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Author      string   `json:"author"`
	AuthorTitle string   `json:"authorTitle,omitempty"`
	AuthorImage string   `json:"authorImage,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Published   bool     `json:"published"`
	Featured    bool     `json:"featured"`
}

// ArticlePatch is the partial update payload; nil fields are left unchanged.
type ArticlePatch struct {
	Title       *string   `json:"title,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Excerpt     *string   `json:"excerpt,omitempty"`
	Author      *string   `json:"author,omitempty"`
	AuthorTitle *string   `json:"authorTitle,omitempty"`
	AuthorImage *string   `json:"authorImage,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Published   *bool     `json:"published,omitempty"`
	Featured    *bool     `json:"featured,omitempty"`
}

// ListArticles returns articles matching the filter, newest first, served
// from the query cache when fresh.
func (c *Client) ListArticles(ctx context.Context, f ArticleFilter) ([]Article, error) {
	var articles []Article
	if err := c.getCached(ctx, "/api/articles"+f.encode(), &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// SearchArticles runs the substring search endpoint.
func (c *Client) SearchArticles(ctx context.Context, query string) ([]Article, error) {
	q := url.Values{"q": []string{query}}
	var articles []Article
	if err := c.getCached(ctx, "/api/search?"+q.Encode(), &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticle fetches one article. The server counts the fetch as a view, so
// detail reads bypass the cache.
func (c *Client) GetArticle(ctx context.Context, id string) (*Article, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/articles/"+id, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var a Article
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) CreateArticle(ctx context.Context, in NewArticle) (*Article, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/articles", in, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	c.cache.invalidatePrefix("/api/articles")
	c.cache.invalidatePrefix("/api/search")
	var a Article
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) UpdateArticle(ctx context.Context, id string, patch ArticlePatch) (*Article, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/articles/"+id, patch, http.StatusOK)
	if err != nil {
		return nil, err
	}
	c.cache.invalidatePrefix("/api/articles")
	c.cache.invalidatePrefix("/api/search")
	var a Article
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) DeleteArticle(ctx context.Context, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/api/articles/"+id, nil, http.StatusNoContent); err != nil {
		return err
	}
	c.cache.invalidatePrefix("/api/articles")
	c.cache.invalidatePrefix("/api/search")
	return nil
}

// LikeArticle increments the like counter and returns the new value.
func (c *Client) LikeArticle(ctx context.Context, id string) (int, error) {
	return c.incrementCounter(ctx, "/api/articles/"+id+"/like", "likes")
}

// RecordView increments the view counter and returns the new value.
func (c *Client) RecordView(ctx context.Context, id string) (int, error) {
	return c.incrementCounter(ctx, "/api/articles/"+id+"/views", "views")
}

func (c *Client) incrementCounter(ctx context.Context, path, field string) (int, error) {
	body, err := c.do(ctx, http.MethodPost, path, nil, http.StatusOK)
	if err != nil {
		return 0, err
	}
	c.cache.invalidatePrefix("/api/articles")
	var counters map[string]int
	if err := json.Unmarshal(body, &counters); err != nil {
		return 0, err
	}
	return counters[field], nil
}
