// Package store owns the in-memory record collections and the mutations
// over them. All state lives in one mutex-guarded aggregate; every
// mutation holds the write lock for its whole check-then-append
// sequence, so the uniqueness invariants hold under concurrent requests.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"aperture/internal/models"
)

// Sentinel errors for invariant violations. Messages double as the
// user-facing error strings in API responses.
var (
	ErrDuplicateEmail   = errors.New("Email already exists")
	ErrAlreadyLiked     = errors.New("Already liked")
	ErrNotLiked         = errors.New("Not liked")
	ErrSelfFollow       = errors.New("Cannot follow yourself")
	ErrAlreadyFollowing = errors.New("Already following")
	ErrNotFollowing     = errors.New("Not following")
)

// Store holds the five record collections and the shared id counter.
// Ids are process-unique across all entity types.
type Store struct {
	mu       sync.RWMutex
	nextID   uint
	users    []models.User
	posts    []models.Post
	follows  []models.Follow
	likes    []models.Like
	comments []models.Comment
}

// New returns an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

// allocID hands out the next id. Caller must hold mu.
func (s *Store) allocID() uint {
	id := s.nextID
	s.nextID++
	return id
}

// CreateUser appends a new user unless the email is already taken.
// hash is the bcrypt digest; the plaintext never reaches the store.
func (s *Store) CreateUser(username, email, hash string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:        s.allocID(),
		Username:  username,
		Email:     email,
		Password:  hash,
		CreatedAt: time.Now(),
	}
	s.users = append(s.users, user)
	return user, nil
}

// CreatePost prepends a new post, keeping the collection in
// reverse-chronological order by construction.
func (s *Store) CreatePost(authorID uint, imageURL, caption string) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := models.Post{
		ID:        s.allocID(),
		UserID:    authorID,
		ImageURL:  imageURL,
		Caption:   caption,
		CreatedAt: time.Now(),
	}
	s.posts = append([]models.Post{post}, s.posts...)
	return post
}

// AddLike appends a like unless one already exists for (user, post).
func (s *Store) AddLike(userID, postID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.likes {
		if l.UserID == userID && l.PostID == postID {
			return ErrAlreadyLiked
		}
	}
	s.likes = append(s.likes, models.Like{ID: s.allocID(), UserID: userID, PostID: postID})
	return nil
}

// RemoveLike removes the like for (user, post) if present.
func (s *Store) RemoveLike(userID, postID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.likes {
		if l.UserID == userID && l.PostID == postID {
			s.likes = append(s.likes[:i], s.likes[i+1:]...)
			return nil
		}
	}
	return ErrNotLiked
}

// AddComment appends a comment. Comments are append-only and keep
// insertion order.
func (s *Store) AddComment(postID, userID uint, text string) models.Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := models.Comment{
		ID:        s.allocID(),
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.comments = append(s.comments, comment)
	return comment
}

// AddFollow appends a follow edge. Self-edges and duplicate edges are
// rejected.
func (s *Store) AddFollow(followerID, followingID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if followerID == followingID {
		return ErrSelfFollow
	}
	for _, f := range s.follows {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			return ErrAlreadyFollowing
		}
	}
	s.follows = append(s.follows, models.Follow{ID: s.allocID(), FollowerID: followerID, FollowingID: followingID})
	return nil
}

// RemoveFollow removes the edge (follower, following) if present.
func (s *Store) RemoveFollow(followerID, followingID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.follows {
		if f.FollowerID == followerID && f.FollowingID == followingID {
			s.follows = append(s.follows[:i], s.follows[i+1:]...)
			return nil
		}
	}
	return ErrNotFollowing
}

// Load replaces the collections wholesale. It is used by seeding to
// install records with fixed ids; the id counter is advanced past the
// highest loaded id so later allocations stay unique.
func (s *Store) Load(users []models.User, posts []models.Post, follows []models.Follow, likes []models.Like, comments []models.Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = users
	s.posts = posts
	s.follows = follows
	s.likes = likes
	s.comments = comments

	max := uint(0)
	for _, u := range s.users {
		if u.ID > max {
			max = u.ID
		}
	}
	for _, p := range s.posts {
		if p.ID > max {
			max = p.ID
		}
	}
	for _, f := range s.follows {
		if f.ID > max {
			max = f.ID
		}
	}
	for _, l := range s.likes {
		if l.ID > max {
			max = l.ID
		}
	}
	for _, c := range s.comments {
		if c.ID > max {
			max = c.ID
		}
	}
	if s.nextID <= max {
		s.nextID = max + 1
	}
}

// Snapshot returns a point-in-time copy of all collections taken under
// the read lock. Query and view composition run over the snapshot, so
// they are pure and never observe a half-applied mutation.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Users:    append([]models.User(nil), s.users...),
		Posts:    append([]models.Post(nil), s.posts...),
		Follows:  append([]models.Follow(nil), s.follows...),
		Likes:    append([]models.Like(nil), s.likes...),
		Comments: append([]models.Comment(nil), s.comments...),
	}
}

// searchMatch reports whether username matches the query,
// case-insensitively, by substring.
func searchMatch(username, query string) bool {
	return strings.Contains(strings.ToLower(username), strings.ToLower(query))
}
