// The server binary runs the personal-dictionary HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mydictionary/backend/internal/adapter/postgres"
	favoriterepo "github.com/mydictionary/backend/internal/adapter/postgres/favorite"
	"github.com/mydictionary/backend/internal/adapter/provider/freedict"
	"github.com/mydictionary/backend/internal/app"
	"github.com/mydictionary/backend/internal/auth"
	"github.com/mydictionary/backend/internal/config"
	"github.com/mydictionary/backend/internal/service/dictionary"
	"github.com/mydictionary/backend/internal/service/favorite"
	"github.com/mydictionary/backend/internal/transport/middleware"
	"github.com/mydictionary/backend/internal/transport/rest"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting server", slog.String("version", app.BuildVersion()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	dictClient := freedict.NewClient(cfg.Dictionary, logger)
	dictService := dictionary.NewService(logger, dictClient)

	favRepo := favoriterepo.New(pool)
	favService := favorite.NewService(logger, favRepo, dictService)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	router := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		CORS:        cfg.CORS,
		Validator:   jwtManager,
		RateLimiter: limiter,
		RateLimit:   cfg.Server.RateLimitPerMin,
		Dictionary:  rest.NewDictionaryHandler(logger, dictService),
		Favorites:   rest.NewFavoriteHandler(logger, favService),
		Health:      rest.NewHealthHandler(pool, app.BuildVersion()),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
