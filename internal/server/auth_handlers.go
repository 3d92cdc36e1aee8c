package server

import (
	"errors"

	"aperture/internal/auth"
	"aperture/internal/middleware"
	"aperture/internal/models"
	"aperture/internal/store"
	"aperture/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// SignupRequest represents the signup request body
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful signup and login.
type AuthResponse struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

// Signup registers a new account and returns a signed token for it.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(validation.Message(err)))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "failed to hash password", "error", err)
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	user, err := s.store.CreateUser(req.Username, req.Email, hash)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return models.RespondWithError(c, fiber.StatusBadRequest, models.NewConflictError(err.Error()))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "failed to issue token", "error", err, "user_id", user.ID)
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user signed up", "user_id", user.ID, "username", user.Username)

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{
		Token: token,
		User:  user.Summary(),
	})
}

// Login verifies credentials and returns a signed token. Unknown email
// and wrong password get the same response so the endpoint does not
// leak which accounts exist.
func (s *Server) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateStruct(req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(validation.Message(err)))
	}

	sn := s.store.Snapshot()
	user, ok := sn.UserByEmail(req.Email)
	if !ok || !auth.CheckPassword(req.Password, user.Password) {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid credentials"))
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		middleware.Logger.ErrorContext(c.UserContext(), "failed to issue token", "error", err, "user_id", user.ID)
		return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
	}

	middleware.Logger.InfoContext(c.UserContext(), "user logged in", "user_id", user.ID)

	return c.JSON(AuthResponse{
		Token: token,
		User:  user.Summary(),
	})
}
