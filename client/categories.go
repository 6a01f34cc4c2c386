package client

import (
	"context"
	"encoding/json"
	"net/http"
)

// NewCategory is the category creation payload. Slug is optional; the server
// derives one from the name when omitted.
type NewCategory struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// CategoryPatch is the partial update payload; nil fields are left unchanged.
type CategoryPatch struct {
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.getCached(ctx, "/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, slug string) (*Category, error) {
	var cat Category
	if err := c.getCached(ctx, "/api/categories/"+slug, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) CreateCategory(ctx context.Context, in NewCategory) (*Category, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/categories", in, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	c.cache.invalidatePrefix("/api/categories")
	var cat Category
	if err := json.Unmarshal(body, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*Category, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/categories/"+id, patch, http.StatusOK)
	if err != nil {
		return nil, err
	}
	c.cache.invalidatePrefix("/api/categories")
	var cat Category
	if err := json.Unmarshal(body, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/api/categories/"+id, nil, http.StatusNoContent); err != nil {
		return err
	}
	c.cache.invalidatePrefix("/api/categories")
	return nil
}
