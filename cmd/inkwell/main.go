// Package main is the entry point for the Inkwell blog server.
// It loads configuration, wires the gateway-backed services with the
// fallback dataset, sets up routing, and starts the HTTP server with
// graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"inkwell/internal/auth"
	"inkwell/internal/config"
	"inkwell/internal/fallback"
	"inkwell/internal/gateway"
	"inkwell/internal/handlers"
	"inkwell/internal/models"
	"inkwell/internal/router"
	"inkwell/internal/services"
	"inkwell/internal/session"
	"inkwell/internal/store"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"gateway_configured", cfg.GatewayConfigured(),
		"prefer_fallback", cfg.PreferFallback,
	)

	// The gateway client fails fast on every call when credentials are
	// missing or still the .env.example placeholders; the fallback
	// dataset then carries the read side.
	var gw *gateway.Client
	if cfg.GatewayConfigured() {
		gw = gateway.New(cfg.GatewayURL, cfg.GatewayAnonKey)
	} else {
		gw = gateway.New("", "")
		slog.Warn("gateway not configured, serving the built-in dataset; writes will fail")
	}

	articleSvc := services.NewArticleService(gw)
	categorySvc := services.NewCategoryService(gw)
	tagSvc := services.NewTagService(gw)
	commentSvc := services.NewCommentService(gw)
	userSvc := services.NewUserService(gw)

	fb := fallback.New()

	// Local persistence for the session token, principal and language.
	persist, err := session.NewStore(cfg.DataDir)
	if err != nil {
		slog.Error("failed to open data directory", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	authSvc := auth.New(cfg.SessionSigningKey)
	authStore := store.NewAuthStore(authSvc, persist)
	blog := store.NewBlogStore(articleSvc, categorySvc, tagSvc, fb, cfg.PreferFallback)

	// Warm the caches. Failures are logged and tolerated: articles can
	// still be fetched on demand, and categories/tags already fell back
	// to the built-in dataset inside the store.
	warmCtx, warmCancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := blog.FetchArticles(warmCtx); err != nil {
		slog.Warn("initial article fetch failed", "error", err)
	}
	if err := blog.FetchCategories(warmCtx); err != nil {
		slog.Warn("initial category fetch failed", "error", err)
	}
	if err := blog.FetchTags(warmCtx); err != nil {
		slog.Warn("initial tag fetch failed", "error", err)
	}
	warmCancel()

	publicHandlers := handlers.NewPublic(blog, commentSvc, fb, userSvc)
	authHandlers := handlers.NewAuth(authStore)
	adminHandlers := handlers.NewAdmin(blog)
	siteHandlers := handlers.NewSite(persist, models.SiteConfig{
		SiteName:        "Inkwell",
		SiteDescription: "A reading-first engineering blog",
		Theme:           "light",
		Language:        cfg.Language,
	})

	r := router.New(authStore, cfg.AllowedOrigin, publicHandlers, authHandlers, adminHandlers, siteHandlers)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
