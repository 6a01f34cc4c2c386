package domain

import "time"

// Comment is a reader-submitted message attached to one article.
// Comments are created and deleted, never updated.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"articleId"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
