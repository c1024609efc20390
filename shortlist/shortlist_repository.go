package shortlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) ListForHomeOwner(ctx context.Context, homeOwnerID string) ([]Entry, error) {
	sql := `
			SELECT sl.id, sl.home_owner_id, sl.cleaner_id, COALESCE(u.name, ''), sl.created_at
			FROM shortlists sl
			JOIN users u ON u.id = sl.cleaner_id
			WHERE sl.home_owner_id = $1
			ORDER BY sl.created_at DESC;
		`

	rows, err := r.pool.Query(ctx, sql, homeOwnerID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch shortlist for '%v': %w", homeOwnerID, err)
	}

	defer rows.Close()

	var entries []Entry

	for rows.Next() {
		var e Entry
		err := rows.Scan(&e.ID, &e.HomeOwnerID, &e.CleanerID, &e.CleanerName, &e.CreatedAt)

		if err != nil {
			return nil, fmt.Errorf("error scanning shortlist row: %w", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shortlist rows: %w", err)
	}

	return entries, nil
}

func (r *Repository) Add(ctx context.Context, homeOwnerID, cleanerID string) (Entry, error) {
	sql := `
			INSERT INTO shortlists(home_owner_id, cleaner_id)
			VALUES ($1, $2)
			RETURNING id, created_at;
		`

	entry := Entry{HomeOwnerID: homeOwnerID, CleanerID: cleanerID}
	err := r.pool.QueryRow(ctx, sql, homeOwnerID, cleanerID).Scan(&entry.ID, &entry.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return Entry{}, ErrAlreadyShortlisted
		case pgForeignKeyViolation:
			return Entry{}, ErrCleanerNotFound
		}
	}

	if err != nil {
		return Entry{}, fmt.Errorf("failed to add '%v' to shortlist: %w", cleanerID, err)
	}

	return entry, nil
}

func (r *Repository) Remove(ctx context.Context, homeOwnerID, cleanerID string) error {
	sql := `DELETE FROM shortlists WHERE home_owner_id = $1 AND cleaner_id = $2;`

	tag, err := r.pool.Exec(ctx, sql, homeOwnerID, cleanerID)

	if err != nil {
		return fmt.Errorf("failed to remove '%v' from shortlist: %w", cleanerID, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrNotShortlisted
	}

	return nil
}
