package domain

import "time"

// Category is a named grouping label. Articles reference it by name match,
// not by id, so renames do not cascade.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryUpdate carries a partial update. Nil fields leave the stored value intact.
type CategoryUpdate struct {
	Name        *string
	Slug        *string
	Description *string
	Color       *string
}
