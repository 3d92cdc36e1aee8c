// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"time"

	"aperture/internal/auth"
	"aperture/internal/cache"
	"aperture/internal/config"
	"aperture/internal/middleware"
	"aperture/internal/observability"
	"aperture/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	store  *store.Store
	redis  *redis.Client
	tokens *auth.TokenIssuer
	prom   *fiberprometheus.FiberPrometheus
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) *Server {
	cache.InitRedis(cfg.RedisURL)

	return &Server{
		config: cfg,
		store:  store.New(),
		redis:  cache.GetClient(),
		tokens: auth.NewTokenIssuer(cfg.JWTSecret),
		prom:   observability.HTTPMetrics("aperture-api"),
	}
}

// NewServerWithDeps creates a Server using already-initialized
// dependencies. Use this in tests or when a bootstrap layer establishes
// the store and Redis and optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, st *store.Store, redisClient *redis.Client) *Server {
	return &Server{
		config: cfg,
		store:  st,
		redis:  redisClient,
		tokens: auth.NewTokenIssuer(cfg.JWTSecret),
	}
}

// Store exposes the record store for explicit seeding at bootstrap.
func (s *Server) Store() *store.Store {
	return s.store
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// OpenTelemetry spans per request
	app.Use(middleware.TracingMiddleware())

	// Context middleware to propagate request ID, user ID, and trace ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.prom != nil {
		s.prom.RegisterAt(app, "/api/metrics")
		app.Use(s.prom.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health check
	api.Get("/", s.HealthCheck)

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", middleware.RateLimit(s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	authGroup.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired(s.tokens))

	// Post routes
	posts := protected.Group("/posts")
	posts.Post("/", middleware.RateLimit(s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	posts.Get("/feed", s.GetFeed)
	posts.Get("/user/:userId", s.GetUserPosts)
	posts.Post("/:postId/like", s.LikePost)
	posts.Delete("/:postId/like", s.UnlikePost)
	posts.Post("/:postId/comments", middleware.RateLimit(s.redis, 15, time.Minute, "create_comment"), s.CreateComment)

	// User routes; /search/:query must come before the generic /:userId
	users := protected.Group("/users")
	users.Get("/search/:query", s.SearchUsers)
	users.Post("/:userId/follow", s.FollowUser)
	users.Delete("/:userId/follow", s.UnfollowUser)
	users.Get("/:userId", s.GetProfile)
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	redisStatus := "unavailable"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(c.Context()).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	return c.JSON(fiber.Map{
		"message": "aperture",
		"version": "1.0.0",
		"status":  "healthy",
		"checks": fiber.Map{
			"redis": redisStatus,
		},
		"time": time.Now(),
	})
}

// viewerID returns the authenticated caller's id set by AuthRequired.
func (s *Server) viewerID(c *fiber.Ctx) uint {
	return c.Locals("userID").(uint)
}
