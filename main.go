// Package main is the entry point for the blog API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"blogapi/src/app/server"
	"blogapi/src/infra/config"
	"blogapi/src/infra/db"
	"blogapi/src/infra/logger"
	"blogapi/src/infra/repo"
	"blogapi/src/infra/security"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	// Initialize database connection and apply the schema
	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.Migrate(context.Background()); err != nil {
		return err
	}

	// Initialize repositories and security adapters
	deps := server.Deps{
		Users:      repo.NewUserRepository(pg, log),
		Posts:      repo.NewBlogPostRepository(pg, cfg.Search.CaseInsensitive, log),
		Comments:   repo.NewCommentRepository(pg, log),
		Categories: repo.NewCategoryRepository(pg, log),
		Tx:         repo.NewTxManager(pg, log),
		Hasher:     security.NewBcryptHasher(cfg.Auth.BcryptCost),
		Tokens:     security.NewJWTTokens(cfg.Auth),
		DB:         pg,
	}

	// Create and run HTTP server
	srv := server.New(cfg, log, deps)

	// Run blocks until shutdown signal is received
	return srv.Run()
}
