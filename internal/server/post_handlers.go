package server

import (
	"errors"

	"aperture/internal/middleware"
	"aperture/internal/models"
	"aperture/internal/observability"
	"aperture/internal/store"
	"aperture/internal/validation"
	"aperture/internal/view"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"
)

// CreatePostRequest represents the create post request body
type CreatePostRequest struct {
	ImageURL string `json:"imageUrl" validate:"required"`
	Caption  string `json:"caption" validate:"max=2000"`
}

// CreateCommentRequest represents the create comment request body
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,max=1000"`
}

// CreatePost records a new post owned by the caller.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := s.viewerID(c)

	var req CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(validation.Message(err)))
	}

	post := s.store.CreatePost(userID, req.ImageURL, req.Caption)
	observability.PostsCreated.Inc()

	middleware.Logger.InfoContext(c.UserContext(), "post created", "post_id", post.ID, "user_id", userID)

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetFeed returns the caller's feed: posts by followed users plus the
// caller's own, newest first, enriched with author, like, and comment data.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID := s.viewerID(c)

	ctx, span := observability.Tracer.Start(c.UserContext(), "feed.compose")
	defer span.End()

	sn := s.store.Snapshot()
	feed := view.ComposeFeed(sn, userID)

	span.SetAttributes(
		attribute.Int("feed.posts", len(feed)),
		attribute.Int("feed.viewer_id", int(userID)),
	)
	observability.FeedRequests.Inc()
	observability.FeedSize.Observe(float64(len(feed)))

	middleware.Logger.DebugContext(ctx, "feed composed", "user_id", userID, "posts", len(feed))

	return c.JSON(feed)
}

// GetUserPosts returns a user's posts with like and comment counts.
// An unknown user yields an empty list, not an error.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	viewerID := s.viewerID(c)

	targetID, err := c.ParamsInt("userId")
	if err != nil || targetID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid user ID"))
	}

	sn := s.store.Snapshot()
	posts := view.ComposeUserPosts(sn, uint(targetID), viewerID)

	return c.JSON(posts)
}

// LikePost records a like by the caller on the given post.
func (s *Server) LikePost(c *fiber.Ctx) error {
	userID := s.viewerID(c)

	postID, err := c.ParamsInt("postId")
	if err != nil || postID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post ID"))
	}

	if err := s.store.AddLike(userID, uint(postID)); err != nil {
		if errors.Is(err, store.ErrAlreadyLiked) {
			return models.RespondWithError(c, fiber.StatusBadRequest, models.NewConflictError(err.Error()))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	observability.LikeToggles.WithLabelValues("like").Inc()

	return c.JSON(fiber.Map{"success": true})
}

// UnlikePost removes the caller's like from the given post.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	userID := s.viewerID(c)

	postID, err := c.ParamsInt("postId")
	if err != nil || postID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post ID"))
	}

	if err := s.store.RemoveLike(userID, uint(postID)); err != nil {
		if errors.Is(err, store.ErrNotLiked) {
			return models.RespondWithError(c, fiber.StatusBadRequest, models.NewConflictError(err.Error()))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	observability.LikeToggles.WithLabelValues("unlike").Inc()

	return c.JSON(fiber.Map{"success": true})
}

// CreateComment adds a comment by the caller to the given post and
// returns it joined with its author.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	userID := s.viewerID(c)

	postID, err := c.ParamsInt("postId")
	if err != nil || postID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid post ID"))
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(validation.Message(err)))
	}

	comment := s.store.AddComment(uint(postID), userID, req.Text)
	observability.CommentsCreated.Inc()

	middleware.Logger.InfoContext(c.UserContext(), "comment created", "comment_id", comment.ID, "post_id", postID, "user_id", userID)

	return c.Status(fiber.StatusCreated).JSON(view.ComposeComment(s.store.Snapshot(), comment))
}
