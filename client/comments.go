package client

import (
	"context"
	"encoding/json"
	"net/http"
)

// NewComment is the comment submission payload.
type NewComment struct {
	Author  string `json:"author"`
	Email   string `json:"email"`
	Content string `json:"content"`
}

// ListComments returns an article's comments, newest first.
func (c *Client) ListComments(ctx context.Context, articleID string) ([]Comment, error) {
	var comments []Comment
	if err := c.getCached(ctx, "/api/articles/"+articleID+"/comments", &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) CreateComment(ctx context.Context, articleID string, in NewComment) (*Comment, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/articles/"+articleID+"/comments", in, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	c.cache.invalidatePrefix("/api/articles/" + articleID + "/comments")
	var cm Comment
	if err := json.Unmarshal(body, &cm); err != nil {
		return nil, err
	}
	return &cm, nil
}

// DeleteComment removes a comment by id. The owning article is unknown at
// this point, so every cached comment list is dropped.
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, "/api/comments/"+id, nil, http.StatusNoContent); err != nil {
		return err
	}
	c.cache.invalidatePrefix("/api/articles")
	return nil
}
