package server

import (
	"errors"
	"net/url"

	"aperture/internal/models"
	"aperture/internal/observability"
	"aperture/internal/store"
	"aperture/internal/view"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns a user's profile with follower, following, and
// post counts as seen by the caller.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	viewerID := s.viewerID(c)

	targetID, err := c.ParamsInt("userId")
	if err != nil || targetID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid user ID"))
	}

	sn := s.store.Snapshot()
	profile, ok := view.ComposeProfile(sn, uint(targetID), viewerID)
	if !ok {
		return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("User not found"))
	}

	return c.JSON(profile)
}

// SearchUsers returns users whose username contains the query,
// case-insensitively, excluding the caller.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	viewerID := s.viewerID(c)

	query, err := getRouteParam(c, "query")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid search query"))
	}

	sn := s.store.Snapshot()
	results := view.SearchUsers(sn, query, viewerID)

	return c.JSON(results)
}

// FollowUser records a follow edge from the caller to the given user.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	followerID := s.viewerID(c)

	targetID, err := c.ParamsInt("userId")
	if err != nil || targetID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid user ID"))
	}

	if err := s.store.AddFollow(followerID, uint(targetID)); err != nil {
		if errors.Is(err, store.ErrSelfFollow) || errors.Is(err, store.ErrAlreadyFollowing) {
			return models.RespondWithError(c, fiber.StatusBadRequest, models.NewConflictError(err.Error()))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	observability.FollowToggles.WithLabelValues("follow").Inc()

	return c.JSON(fiber.Map{"success": true})
}

// UnfollowUser removes the caller's follow edge to the given user.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	followerID := s.viewerID(c)

	targetID, err := c.ParamsInt("userId")
	if err != nil || targetID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid user ID"))
	}

	if err := s.store.RemoveFollow(followerID, uint(targetID)); err != nil {
		if errors.Is(err, store.ErrNotFollowing) {
			return models.RespondWithError(c, fiber.StatusBadRequest, models.NewConflictError(err.Error()))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	observability.FollowToggles.WithLabelValues("unfollow").Inc()

	return c.JSON(fiber.Map{"success": true})
}

// getRouteParam returns a URL-decoded route parameter.
func getRouteParam(c *fiber.Ctx, name string) (string, error) {
	raw := c.Params(name)
	if raw == "" {
		return "", errors.New("missing parameter")
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", err
	}
	return decoded, nil
}
