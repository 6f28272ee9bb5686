// Package favorite implements the Favorite repository using PostgreSQL.
// Every query is scoped by the owner's user_id: a record owned by another
// user is indistinguishable from a missing one.
package favorite

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/mydictionary/backend/internal/adapter/postgres"
	"github.com/mydictionary/backend/internal/domain"
)

// qb builds queries with PostgreSQL $N placeholders.
var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var favoriteColumns = []string{"id", "user_id", "word", "note", "created_at", "updated_at", "deleted_at"}

// Repo provides favorite persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new favorite repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListActive returns the owner's active favorites, newest first.
func (r *Repo) ListActive(ctx context.Context, ownerID uuid.UUID) ([]domain.Favorite, error) {
	query := qb.Select(favoriteColumns...).
		From("favorites").
		Where(sq.Eq{"user_id": ownerID, "deleted_at": nil}).
		OrderBy("created_at DESC")

	favs, err := r.list(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active favorites: %w", err)
	}
	return favs, nil
}

// ListTrashed returns the owner's soft-deleted favorites, most recently
// trashed first.
func (r *Repo) ListTrashed(ctx context.Context, ownerID uuid.UUID) ([]domain.Favorite, error) {
	query := qb.Select(favoriteColumns...).
		From("favorites").
		Where(sq.Eq{"user_id": ownerID}).
		Where(sq.NotEq{"deleted_at": nil}).
		OrderBy("deleted_at DESC")

	favs, err := r.list(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list trashed favorites: %w", err)
	}
	return favs, nil
}

// GetActiveByID returns an active favorite by primary key.
// Returns domain.ErrNotFound if the favorite does not exist, is trashed,
// or belongs to another user.
func (r *Repo) GetActiveByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Favorite, error) {
	query := qb.Select(favoriteColumns...).
		From("favorites").
		Where(sq.Eq{"id": id, "user_id": ownerID, "deleted_at": nil})

	return r.one(ctx, query, id)
}

// FindOlderThan returns active favorites of ANY owner created before cutoff,
// oldest first. Used only by the retention sweeper.
func (r *Repo) FindOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Favorite, error) {
	query := qb.Select(favoriteColumns...).
		From("favorites").
		Where(sq.Lt{"created_at": cutoff}).
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("created_at ASC")

	favs, err := r.list(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find favorites older than %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return favs, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new favorite and returns the persisted record with
// database-assigned timestamps.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, word string, note *string) (*domain.Favorite, error) {
	query := qb.Insert("favorites").
		Columns("id", "user_id", "word", "note").
		Values(uuid.New(), ownerID, word, note).
		Suffix("RETURNING " + columnList())

	return r.one(ctx, query, uuid.Nil)
}

// UpdateNote replaces the note of an active favorite.
// Returns domain.ErrNotFound if the favorite is missing, trashed, or
// belongs to another user.
func (r *Repo) UpdateNote(ctx context.Context, ownerID, id uuid.UUID, note *string) (*domain.Favorite, error) {
	query := qb.Update("favorites").
		Set("note", note).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": ownerID, "deleted_at": nil}).
		Suffix("RETURNING " + columnList())

	return r.one(ctx, query, id)
}

// SoftDelete moves an active favorite to the trash by stamping deleted_at.
// Deleting an already-trashed favorite yields domain.ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, ownerID, id uuid.UUID) error {
	query := qb.Update("favorites").
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": ownerID, "deleted_at": nil})

	return r.execOne(ctx, query, id)
}

// Restore returns a trashed favorite to the active state.
func (r *Repo) Restore(ctx context.Context, ownerID, id uuid.UUID) (*domain.Favorite, error) {
	query := qb.Update("favorites").
		Set("deleted_at", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Where(sq.NotEq{"deleted_at": nil}).
		Suffix("RETURNING " + columnList())

	return r.one(ctx, query, id)
}

// Purge permanently removes a trashed favorite. Active favorites cannot be
// purged; they must be soft-deleted first.
func (r *Repo) Purge(ctx context.Context, ownerID, id uuid.UUID) error {
	query := qb.Delete("favorites").
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Where(sq.NotEq{"deleted_at": nil})

	return r.execOne(ctx, query, id)
}

// RestoreAll returns every trashed favorite of the owner to the active state
// and reports how many records were affected.
func (r *Repo) RestoreAll(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query := qb.Update("favorites").
		Set("deleted_at", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": ownerID}).
		Where(sq.NotEq{"deleted_at": nil})

	return r.execCount(ctx, query)
}

// PurgeAll permanently removes every trashed favorite of the owner and
// reports how many records were affected.
func (r *Repo) PurgeAll(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query := qb.Delete("favorites").
		Where(sq.Eq{"user_id": ownerID}).
		Where(sq.NotEq{"deleted_at": nil})

	return r.execCount(ctx, query)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type sqlizer interface {
	ToSql() (string, []any, error)
}

func columnList() string {
	out := ""
	for i, c := range favoriteColumns {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

func (r *Repo) list(ctx context.Context, query sqlizer) ([]domain.Favorite, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favs := []domain.Favorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, err
		}
		favs = append(favs, f)
	}
	return favs, rows.Err()
}

func (r *Repo) one(ctx context.Context, query sqlizer, id uuid.UUID) (*domain.Favorite, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	f, err := scanFavorite(row)
	if err != nil {
		return nil, postgres.MapError(err, "favorite", id)
	}
	return &f, nil
}

func (r *Repo) execOne(ctx context.Context, query sqlizer, id uuid.UUID) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "favorite", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("favorite %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) execCount(ctx context.Context, query sqlizer) (int64, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "favorite", uuid.Nil)
	}
	return tag.RowsAffected(), nil
}

func scanFavorite(row pgx.Row) (domain.Favorite, error) {
	var f domain.Favorite
	err := row.Scan(&f.ID, &f.OwnerID, &f.Word, &f.Note, &f.CreatedAt, &f.UpdatedAt, &f.DeletedAt)
	return f, err
}
