// Package client is a typed Go consumer of the newswire REST API. Reads go
// through a query cache keyed by endpoint and parameters; mutations invalidate
// the affected keys, mirroring how the browser frontend keeps its lists fresh.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotFound is returned for 404 responses.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned for 409 responses, e.g. a duplicate category name.
var ErrConflict = errors.New("already exists")

// ValidationError carries the field-level detail of a 400 response.
type ValidationError struct {
	Message string            `json:"error"`
	Details map[string]string `json:"details"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Details)
}

// Article mirrors the API's article payload.
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

// Comment mirrors the API's comment payload.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"articleId"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Category mirrors the API's category payload.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Client talks to a newswire API server.
type Client struct {
	http.Client
	// Addr is the server base URL, e.g. "http://localhost:8080".
	Addr string

	cache queryCache
}

// New builds a Client for the given base URL.
func New(addr string) *Client {
	return &Client{Addr: addr}
}

// getCached fetches a GET endpoint through the query cache. Concurrent
// requests for the same key share one fetch; distinct keys do not block
// each other.
func (c *Client) getCached(ctx context.Context, key string, out interface{}) error {
	entry := c.cache.entry(key)
	entry.mu.Lock()
	defer entry.mu.Unlock()

	if entry.valid {
		return json.Unmarshal(entry.body, out)
	}

	body, err := c.do(ctx, http.MethodGet, key, nil, http.StatusOK)
	if err != nil {
		return err
	}
	entry.body = body
	entry.valid = true
	return json.Unmarshal(body, out)
}

// do performs one HTTP round trip and maps error statuses. A nil body sends
// no payload.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}, wantStatus int) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.Addr+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == wantStatus:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return nil, ErrConflict
	case resp.StatusCode == http.StatusBadRequest:
		var ve ValidationError
		if json.Unmarshal(body, &ve) == nil && ve.Message != "" {
			return nil, &ve
		}
		return nil, fmt.Errorf("bad request: %s", body)
	default:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}
}
