package store

import "aperture/internal/models"

// Snapshot is an immutable copy of the record collections. All
// relationship queries are read-only scans over it; unknown ids yield
// empty results, never an error.
type Snapshot struct {
	Users    []models.User
	Posts    []models.Post
	Follows  []models.Follow
	Likes    []models.Like
	Comments []models.Comment
}

// UserByID looks up a user by id.
func (sn Snapshot) UserByID(id uint) (models.User, bool) {
	for _, u := range sn.Users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// UserByEmail looks up a user by exact email.
func (sn Snapshot) UserByEmail(email string) (models.User, bool) {
	for _, u := range sn.Users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// FollowingIDs returns the set of user ids that userID follows.
func (sn Snapshot) FollowingIDs(userID uint) map[uint]bool {
	ids := make(map[uint]bool)
	for _, f := range sn.Follows {
		if f.FollowerID == userID {
			ids[f.FollowingID] = true
		}
	}
	return ids
}

// FollowerCount returns how many users follow userID.
func (sn Snapshot) FollowerCount(userID uint) int {
	n := 0
	for _, f := range sn.Follows {
		if f.FollowingID == userID {
			n++
		}
	}
	return n
}

// FollowingCount returns how many users userID follows.
func (sn Snapshot) FollowingCount(userID uint) int {
	n := 0
	for _, f := range sn.Follows {
		if f.FollowerID == userID {
			n++
		}
	}
	return n
}

// IsFollowing reports whether a follows b.
func (sn Snapshot) IsFollowing(a, b uint) bool {
	for _, f := range sn.Follows {
		if f.FollowerID == a && f.FollowingID == b {
			return true
		}
	}
	return false
}

// LikesFor returns the likes on a post in store order.
func (sn Snapshot) LikesFor(postID uint) []models.Like {
	likes := make([]models.Like, 0)
	for _, l := range sn.Likes {
		if l.PostID == postID {
			likes = append(likes, l)
		}
	}
	return likes
}

// LikeCount returns how many likes a post has.
func (sn Snapshot) LikeCount(postID uint) int {
	return len(sn.LikesFor(postID))
}

// HasLiked reports whether userID liked postID.
func (sn Snapshot) HasLiked(userID, postID uint) bool {
	for _, l := range sn.Likes {
		if l.UserID == userID && l.PostID == postID {
			return true
		}
	}
	return false
}

// CommentsFor returns a post's comments in insertion order.
func (sn Snapshot) CommentsFor(postID uint) []models.Comment {
	comments := make([]models.Comment, 0)
	for _, c := range sn.Comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	return comments
}

// PostsBy returns the posts authored by userID, preserving collection
// order (newest first).
func (sn Snapshot) PostsBy(userID uint) []models.Post {
	posts := make([]models.Post, 0)
	for _, p := range sn.Posts {
		if p.UserID == userID {
			posts = append(posts, p)
		}
	}
	return posts
}

// PostCount returns how many posts userID has authored.
func (sn Snapshot) PostCount(userID uint) int {
	return len(sn.PostsBy(userID))
}

// SearchUsers returns users whose username contains query
// (case-insensitive), excluding excludeID, in store order.
func (sn Snapshot) SearchUsers(query string, excludeID uint) []models.User {
	results := make([]models.User, 0)
	for _, u := range sn.Users {
		if u.ID != excludeID && searchMatch(u.Username, query) {
			results = append(results, u)
		}
	}
	return results
}
