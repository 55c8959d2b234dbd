// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"strings"

	"apt/internal/cache"
	"apt/internal/config"
	"apt/internal/database"
	"apt/internal/middleware"
	"apt/internal/repository"
	"apt/internal/seed"
	"apt/internal/service"
	"apt/internal/session"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	sessions       session.Store

	userRepo    repository.UserRepository
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	messageRepo repository.MessageRepository
	reelRepo    repository.ReelRepository

	identityService *service.IdentityService
	feedService     *service.FeedService
	messageService  *service.MessageService
	reelService     *service.ReelService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if cfg.SeedOnStart {
		if err := seed.Seed(db, seed.DefaultOptions()); err != nil {
			return nil, fmt.Errorf("startup seeding failed: %w", err)
		}
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()
	if redisClient == nil {
		return nil, fmt.Errorf("redis is required for session storage (REDIS_URL=%q)", cfg.RedisURL)
	}

	return NewServerWithDeps(cfg, db, redisClient)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	reelRepo := repository.NewReelRepository(db)

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("apt-api"),
		sessions:       session.NewRedisStore(redisClient, "session", cfg.SessionTTL()),
		userRepo:       userRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		messageRepo:    messageRepo,
		reelRepo:       reelRepo,
	}

	server.identityService = service.NewIdentityService(userRepo)
	server.feedService = service.NewFeedService(postRepo, commentRepo)
	server.messageService = service.NewMessageService(messageRepo)
	server.reelService = service.NewReelService(reelRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for log correlation
	app.Use(requestid.New())
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Login landing for gate redirects. The real page belongs to the
	// presentation layer; anonymous API clients end up here.
	app.Get("/login", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "login required"})
	})

	api := app.Group("/api")

	// Account creation and login are the only operations open to anonymous
	// callers.
	auth := api.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/login", s.Login)
	auth.Post("/logout", s.Logout)

	// Everything else passes the authorization gate.
	protected := api.Group("", middleware.SessionAuth(s.sessions))

	protected.Get("/feed", s.GetFeed)

	posts := protected.Group("/posts")
	posts.Post("/", s.CreatePost)
	posts.Post("/:id/like", s.ToggleLike)
	posts.Post("/:id/comments", s.CreateComment)

	reels := protected.Group("/reels")
	reels.Get("/", s.GetReels)
	reels.Post("/", s.CreateReel)

	users := protected.Group("/users")
	users.Get("/", s.GetUsers)
	users.Get("/:username/posts", s.GetUserPosts)
	users.Get("/:username", s.GetProfile)
	users.Put("/:username", s.UpdateProfile)

	chat := protected.Group("/chat")
	chat.Get("/", s.GetPublicThread)
	chat.Post("/", s.PostPublicMessage)
	chat.Get("/:username", s.GetPrivateThread)
	chat.Post("/:username", s.PostPrivateMessage)

	// WebRTC signaling stub: echoes the offer back, no real signaling.
	protected.Post("/signal/:peer", s.Signal)
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// ReadinessCheck reports whether the backing stores are reachable.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	checks := fiber.Map{"database": "ok", "redis": "ok"}
	healthy := true

	if sqlDB, err := s.db.DB(); err != nil || sqlDB.PingContext(c.Context()) != nil {
		checks["database"] = "unreachable"
		healthy = false
	}
	if s.redis == nil || s.redis.Ping(c.Context()).Err() != nil {
		checks["redis"] = "unreachable"
		healthy = false
	}

	status := fiber.StatusOK
	if !healthy {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(checks)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []string
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if sqlDB, err := s.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("shutdown: %s", strings.Join(errs, "; "))
	}
	return nil
}
