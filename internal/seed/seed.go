// Package seed installs demo data for development and testing.
package seed

import (
	"time"

	"aperture/internal/models"
	"aperture/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// Fixtures installs the canonical demo dataset: three users, three
// posts, two follow edges, one like, and one comment. Record ids are
// fixed so client demos and tests can reference them; the store advances
// its id counter past the highest fixture id.
func Fixtures(st *store.Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()

	users := []models.User{
		{ID: 1, Username: "john_doe", Email: "john@example.com", Password: string(hash), CreatedAt: now},
		{ID: 2, Username: "jane_smith", Email: "jane@example.com", Password: string(hash), CreatedAt: now},
		{ID: 3, Username: "bob_wilson", Email: "bob@example.com", Password: string(hash), CreatedAt: now},
	}

	// Newest first, matching the store's prepend-on-create order.
	posts := []models.Post{
		{ID: 101, UserID: 2, ImageURL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4", Caption: "Mountain adventure! 🏔️", CreatedAt: now.Add(-1 * time.Hour)},
		{ID: 102, UserID: 3, ImageURL: "https://images.unsplash.com/photo-1551963831-b3b1ca40c98e", Caption: "Coffee time ☕", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 103, UserID: 2, ImageURL: "https://images.unsplash.com/photo-1469474968028-56623f02e42e", Caption: "Nature walks 🌲", CreatedAt: now.Add(-3 * time.Hour)},
	}

	follows := []models.Follow{
		{ID: 201, FollowerID: 1, FollowingID: 2},
		{ID: 202, FollowerID: 1, FollowingID: 3},
	}

	likes := []models.Like{
		{ID: 301, UserID: 1, PostID: 101},
	}

	comments := []models.Comment{
		{ID: 401, PostID: 101, UserID: 1, Text: "Amazing view!", CreatedAt: now},
	}

	st.Load(users, posts, follows, likes, comments)
	return nil
}
