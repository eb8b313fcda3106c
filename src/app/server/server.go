// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/handler"
	"blogapi/src/app/middleware"
	"blogapi/src/core/ports"
	"blogapi/src/core/usecase"
	"blogapi/src/infra/config"
)

// Deps bundles the infrastructure the server composes the services from.
type Deps struct {
	Users      ports.UserRepository
	Posts      ports.BlogPostRepository
	Comments   ports.CommentRepository
	Categories ports.CategoryRepository
	Tx         ports.TxManager
	Hasher     ports.PasswordHasher
	Tokens     interface {
		ports.TokenIssuer
		ports.TokenVerifier
	}
	DB ports.Repository
}

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server
	tokens ports.TokenVerifier

	// Handlers
	healthHandler   *handler.HealthHandler
	authHandler     *handler.AuthHandler
	postHandler     *handler.BlogPostHandler
	commentHandler  *handler.CommentHandler
	categoryHandler *handler.CategoryHandler
}

// New creates a new Server with all dependencies wired up.
func New(cfg *config.Config, log *slog.Logger, deps Deps) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create services
	healthService := usecase.NewHealthService(deps.DB, log)
	authService := usecase.NewAuthService(deps.Users, deps.Posts, deps.Comments, deps.Hasher, deps.Tokens, deps.Tx, log)
	postService := usecase.NewBlogPostService(deps.Posts, deps.Categories, log)
	commentService := usecase.NewCommentService(deps.Comments, deps.Posts, log)
	categoryService := usecase.NewCategoryService(deps.Categories)

	s := &Server{
		cfg:             cfg,
		log:             log,
		router:          router,
		tokens:          deps.Tokens,
		healthHandler:   handler.NewHealthHandler(healthService),
		authHandler:     handler.NewAuthHandler(authService),
		postHandler:     handler.NewBlogPostHandler(postService),
		commentHandler:  handler.NewCommentHandler(commentService),
		categoryHandler: handler.NewCategoryHandler(categoryService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check endpoints (no auth required)
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	api := s.router.Group("/api")
	authed := middleware.Auth(s.tokens)
	{
		// Auth
		api.POST("/auth/register", s.authHandler.Register)
		api.POST("/auth/login", s.authHandler.Login)
		api.PUT("/auth/me", authed, s.authHandler.UpdateMe)
		api.PUT("/auth/me/password", authed, s.authHandler.ChangePassword)
		api.DELETE("/auth/me", authed, s.authHandler.DeleteMe)

		// Blog posts
		api.GET("/blogposts", s.postHandler.List)
		api.GET("/blogposts/:id", s.postHandler.GetByID)
		api.POST("/blogposts", authed, s.postHandler.Create)
		api.PUT("/blogposts/:id", authed, s.postHandler.Update)
		api.DELETE("/blogposts/:id", authed, s.postHandler.Delete)

		// Comments
		api.GET("/blogposts/:id/comments", s.commentHandler.ListByPost)
		api.POST("/blogposts/:id/comments", authed, s.commentHandler.Create)
		api.PUT("/comments/:id", authed, s.commentHandler.Update)
		api.DELETE("/comments/:id", authed, s.commentHandler.Delete)

		// Categories
		api.GET("/categories", s.categoryHandler.List)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}
