package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mydictionary/backend/internal/config"
	custommw "github.com/mydictionary/backend/internal/transport/middleware"
)

// TokenValidator validates bearer tokens for the auth middleware.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// RouterDeps bundles everything the HTTP router needs.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	Validator   TokenValidator
	RateLimiter *custommw.RateLimiter
	RateLimit   int
	Dictionary  *DictionaryHandler
	Favorites   *FavoriteHandler
	Health      *HealthHandler
}

// NewRouter assembles the chi router with the full middleware chain.
// All /favorites routes require an authenticated caller; dictionary search
// resolves identity when present but does not require it.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(custommw.RequestID)
	r.Use(custommw.Recovery(deps.Logger))
	r.Use(custommw.Logger(deps.Logger))
	r.Use(custommw.CORS(deps.CORS))
	r.Use(custommw.Auth(deps.Validator))
	if deps.RateLimiter != nil && deps.RateLimit > 0 {
		r.Use(deps.RateLimiter.Limit(deps.RateLimit))
	}

	r.Get("/health", deps.Health.Health)
	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)

	r.Get("/dictionary/search", deps.Dictionary.Search)

	r.Route("/favorites", func(r chi.Router) {
		r.Use(custommw.RequireAuth())

		r.Get("/", deps.Favorites.List)
		r.Post("/", deps.Favorites.Create)
		r.Get("/search", deps.Favorites.Search)
		r.Get("/trashed", deps.Favorites.Trashed)
		r.Post("/restore-all", deps.Favorites.RestoreAll)
		r.Delete("/force-delete-all", deps.Favorites.PurgeAll)

		r.Put("/{id}", deps.Favorites.UpdateNote)
		r.Delete("/{id}", deps.Favorites.Delete)
		r.Post("/{id}/restore", deps.Favorites.Restore)
		r.Delete("/{id}/force", deps.Favorites.Purge)
	})

	return r
}
