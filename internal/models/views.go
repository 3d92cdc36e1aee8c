package models

// Response projections. Each response shape gets an explicit struct so
// the field set is statically checkable instead of being assembled from
// ad-hoc maps.

// UserSummary is the public identity triple attached to posts, search
// results, and auth responses.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// CommentAuthor is the reduced author projection nested in comments.
type CommentAuthor struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// FeedComment is a comment joined with its author, as rendered inside a
// feed post.
type FeedComment struct {
	Comment
	User CommentAuthor `json:"user"`
}

// FeedPost is the fully enriched, viewer-relative post shape served by
// the feed: author summary, like count and state, and all comments.
type FeedPost struct {
	Post
	User       UserSummary   `json:"user"`
	LikesCount int           `json:"likesCount"`
	IsLiked    bool          `json:"isLiked"`
	Comments   []FeedComment `json:"comments"`
}

// LightPost is the lighter projection for a user's post list: counts
// only, no author summary, no comment bodies.
type LightPost struct {
	Post
	LikesCount    int  `json:"likesCount"`
	IsLiked       bool `json:"isLiked"`
	CommentsCount int  `json:"commentsCount"`
}

// Profile is the denormalized profile view. IsFollowing is viewer
// relative and is computed even when the viewer is the target, where it
// is always false since self-follows are rejected.
type Profile struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Followers    int    `json:"followers"`
	Following    int    `json:"following"`
	Posts        int    `json:"posts"`
	IsFollowing  bool   `json:"isFollowing"`
	IsOwnProfile bool   `json:"isOwnProfile"`
}

// CommentWithAuthor is the creation response for a comment: the new
// record annotated with its author.
type CommentWithAuthor struct {
	Comment
	User CommentAuthor `json:"user"`
}
