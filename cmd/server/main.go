package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"lumen/internal/auth"
	"lumen/internal/config"
	"lumen/internal/handler"
	"lumen/internal/middleware"
	"lumen/internal/repository/postgres"
	"lumen/internal/service"
	"lumen/internal/site"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier for Supabase authentication
	jwtVerifier, err := auth.NewJWTVerifier(cfg.SupabaseJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	postRepo := postgres.NewPostRepository(repoConfig)
	profileRepo := postgres.NewProfileRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Load embedded site metadata
	siteMeta, err := site.Load()
	if err != nil {
		log.Fatalf("Failed to load site config: %v", err)
	}

	// Create services
	postService := service.NewPostService(postRepo, profileRepo, txManager, logger)
	profileService := service.NewProfileService(profileRepo, logger)
	statsService := service.NewStatsService(postRepo, profileRepo, logger)

	// Create handlers
	postHandler := handler.NewPostHandler(postService, logger)
	feedHandler := handler.NewFeedHandler(postService, logger)
	profileHandler := handler.NewProfileHandler(profileService, logger)
	statsHandler := handler.NewStatsHandler(statsService, logger)
	siteHandler := handler.NewSiteHandler(siteMeta)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Bearer-token guard for the admin surface; public routes are
	// registered without it
	authRequired := middleware.Auth(jwtVerifier, logger)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Public read surface
	mux.HandleFunc("GET /api/site", siteHandler.GetSite)
	mux.HandleFunc("GET /api/posts/published", feedHandler.ListPublished)
	mux.HandleFunc("GET /api/posts/published/{slug}", feedHandler.GetBySlug)

	// Post management routes
	mux.Handle("GET /api/posts", authRequired(http.HandlerFunc(postHandler.ListPosts)))
	mux.Handle("POST /api/posts", authRequired(http.HandlerFunc(postHandler.CreatePost)))
	mux.Handle("GET /api/posts/{id}", authRequired(http.HandlerFunc(postHandler.GetPost)))
	mux.Handle("PATCH /api/posts/{id}", authRequired(http.HandlerFunc(postHandler.UpdatePost)))
	mux.Handle("DELETE /api/posts/{id}", authRequired(http.HandlerFunc(postHandler.DeletePost)))
	mux.Handle("POST /api/posts/{id}/publish", authRequired(http.HandlerFunc(postHandler.SetPublishState)))

	// Dashboard routes
	mux.Handle("GET /api/admin/stats", authRequired(http.HandlerFunc(statsHandler.GetStats)))

	// Profile routes
	mux.Handle("GET /api/users/me/profile", authRequired(http.HandlerFunc(profileHandler.GetProfile)))
	mux.Handle("PUT /api/users/me/profile", authRequired(http.HandlerFunc(profileHandler.UpdateProfile)))

	// Build middleware chain: CORS → Recovery → Routes
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
