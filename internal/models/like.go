package models

// Like marks that a user liked a post. At most one exists per
// (user, post) pair.
type Like struct {
	ID     uint `json:"id"`
	UserID uint `json:"userId"`
	PostID uint `json:"postId"`
}
