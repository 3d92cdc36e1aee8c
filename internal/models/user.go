package models

import "time"

// User is a registered account. Password holds the bcrypt digest and is
// never serialized.
type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary returns the public projection of the user.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}

// CommentAuthor returns the reduced projection used on comments. Email is
// intentionally omitted there.
func (u User) CommentAuthor() CommentAuthor {
	return CommentAuthor{ID: u.ID, Username: u.Username}
}
