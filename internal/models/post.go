package models

import "time"

// Post is an image with a caption. UserID references the author.
// Posts are immutable once created; there is no edit or delete path.
type Post struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	ImageURL  string    `json:"imageUrl"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"createdAt"`
}
