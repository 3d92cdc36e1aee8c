package seed

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"aperture/internal/store"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

// Options controls how much extra demo content the factories generate.
type Options struct {
	NumUsers int
	NumPosts int
}

// Generate layers generated users, posts, follows, likes, and comments
// on top of whatever the store already holds. Every generated account
// gets the password "password123" so any of them can be used to log in.
func Generate(st *store.Store, opts Options) error {
	if opts.NumUsers <= 0 && opts.NumPosts <= 0 {
		return nil
	}

	gofakeit.Seed(time.Now().UnixNano())

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for i := 0; i < opts.NumUsers; i++ {
		username := gofakeit.Username()
		email := fmt.Sprintf("%s-%d@%s", gofakeit.Username(), i, gofakeit.DomainName())
		if _, err := st.CreateUser(username, email, string(hash)); err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				continue
			}
			return err
		}
	}

	userIDs := make([]uint, 0)
	for _, u := range st.Snapshot().Users {
		userIDs = append(userIDs, u.ID)
	}
	if len(userIDs) == 0 {
		return nil
	}

	pick := func() uint { return userIDs[rand.Intn(len(userIDs))] }

	postIDs := make([]uint, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		imageURL := fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())
		post := st.CreatePost(pick(), imageURL, gofakeit.Sentence(6))
		postIDs = append(postIDs, post.ID)
	}

	// Sprinkle relationships over the generated content. Conflicts with
	// already-existing edges are expected and skipped.
	for _, postID := range postIDs {
		for i := 0; i < rand.Intn(4); i++ {
			if err := st.AddLike(pick(), postID); err != nil && !errors.Is(err, store.ErrAlreadyLiked) {
				return err
			}
		}
		for i := 0; i < rand.Intn(3); i++ {
			st.AddComment(postID, pick(), gofakeit.Sentence(8))
		}
	}

	follows := 0
	for i := 0; i < len(userIDs)*2; i++ {
		err := st.AddFollow(pick(), pick())
		switch {
		case err == nil:
			follows++
		case errors.Is(err, store.ErrSelfFollow), errors.Is(err, store.ErrAlreadyFollowing):
			// skip
		default:
			return err
		}
	}

	log.Printf("Seeded %d extra users, %d extra posts, %d extra follows", opts.NumUsers, len(postIDs), follows)
	return nil
}
