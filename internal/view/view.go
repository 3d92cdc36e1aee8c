// Package view joins relationship-query results into the denormalized
// response shapes: feed items, profile summaries, and post-with-comment
// views. Composition is pure over a store snapshot; the same post can
// render differently per viewer (isLiked, isFollowing).
package view

import (
	"aperture/internal/models"
	"aperture/internal/store"
)

// ComposeFeed assembles the personalized feed for viewerID: every post
// authored by the viewer or an account the viewer follows, in the post
// collection's own order (newest first), each enriched with author
// summary, like count/state, and comments with nested authors.
func ComposeFeed(sn store.Snapshot, viewerID uint) []models.FeedPost {
	authors := sn.FollowingIDs(viewerID)
	authors[viewerID] = true

	feed := make([]models.FeedPost, 0)
	for _, post := range sn.Posts {
		if !authors[post.UserID] {
			continue
		}
		author, ok := sn.UserByID(post.UserID)
		if !ok {
			continue
		}
		feed = append(feed, models.FeedPost{
			Post:       post,
			User:       author.Summary(),
			LikesCount: sn.LikeCount(post.ID),
			IsLiked:    sn.HasLiked(viewerID, post.ID),
			Comments:   composeComments(sn, post.ID),
		})
	}
	return feed
}

func composeComments(sn store.Snapshot, postID uint) []models.FeedComment {
	comments := make([]models.FeedComment, 0)
	for _, c := range sn.CommentsFor(postID) {
		author, _ := sn.UserByID(c.UserID)
		comments = append(comments, models.FeedComment{
			Comment: c,
			User:    author.CommentAuthor(),
		})
	}
	return comments
}

// ComposeUserPosts assembles the lighter projection of targetID's
// posts: counts only, viewer-relative like state, no comment bodies.
func ComposeUserPosts(sn store.Snapshot, targetID, viewerID uint) []models.LightPost {
	posts := make([]models.LightPost, 0)
	for _, post := range sn.PostsBy(targetID) {
		posts = append(posts, models.LightPost{
			Post:          post,
			LikesCount:    sn.LikeCount(post.ID),
			IsLiked:       sn.HasLiked(viewerID, post.ID),
			CommentsCount: len(sn.CommentsFor(post.ID)),
		})
	}
	return posts
}

// ComposeProfile assembles the profile view of targetID as seen by
// viewerID. The second return is false when the target does not exist.
// IsFollowing is computed even when viewer == target; it is then always
// false since no self-follow edge can exist.
func ComposeProfile(sn store.Snapshot, targetID, viewerID uint) (models.Profile, bool) {
	user, ok := sn.UserByID(targetID)
	if !ok {
		return models.Profile{}, false
	}
	return models.Profile{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Followers:    sn.FollowerCount(targetID),
		Following:    sn.FollowingCount(targetID),
		Posts:        sn.PostCount(targetID),
		IsFollowing:  sn.IsFollowing(viewerID, targetID),
		IsOwnProfile: viewerID == targetID,
	}, true
}

// ComposeComment annotates a freshly created comment with its author,
// the creation response shape.
func ComposeComment(sn store.Snapshot, c models.Comment) models.CommentWithAuthor {
	author, _ := sn.UserByID(c.UserID)
	return models.CommentWithAuthor{
		Comment: c,
		User:    author.CommentAuthor(),
	}
}

// SearchUsers projects username search hits to public summaries,
// excluding the searcher.
func SearchUsers(sn store.Snapshot, query string, viewerID uint) []models.UserSummary {
	results := make([]models.UserSummary, 0)
	for _, u := range sn.SearchUsers(query, viewerID) {
		results = append(results, u.Summary())
	}
	return results
}
