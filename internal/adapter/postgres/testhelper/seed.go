package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mydictionary/backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Email:     "testuser-" + suffix + "@example.com",
		Name:      "Test User " + suffix,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, created_at)
		 VALUES ($1, $2, $3, $4)`,
		user.ID, user.Email, user.Name, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedFavorite creates an active favorite for the given owner and returns it.
func SeedFavorite(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, word string) domain.Favorite {
	t.Helper()
	return seedFavorite(t, pool, ownerID, word, time.Now().UTC(), nil)
}

// SeedFavoriteCreatedAt creates an active favorite with an explicit created_at,
// for exercising age-based queries.
func SeedFavoriteCreatedAt(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, word string, createdAt time.Time) domain.Favorite {
	t.Helper()
	return seedFavorite(t, pool, ownerID, word, createdAt, nil)
}

// SeedTrashedFavorite creates a soft-deleted favorite for the given owner.
func SeedTrashedFavorite(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, word string) domain.Favorite {
	t.Helper()
	deletedAt := time.Now().UTC()
	return seedFavorite(t, pool, ownerID, word, time.Now().UTC(), &deletedAt)
}

func seedFavorite(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, word string, createdAt time.Time, deletedAt *time.Time) domain.Favorite {
	t.Helper()
	ctx := context.Background()

	note := "note for " + word
	created := createdAt.Truncate(time.Microsecond)
	fav := domain.Favorite{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Word:      word,
		Note:      &note,
		CreatedAt: created,
		UpdatedAt: created,
		DeletedAt: deletedAt,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO favorites (id, user_id, word, note, created_at, updated_at, deleted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		fav.ID, fav.OwnerID, fav.Word, fav.Note, fav.CreatedAt, fav.UpdatedAt, fav.DeletedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seedFavorite insert favorite: %v", err)
	}

	return fav
}
