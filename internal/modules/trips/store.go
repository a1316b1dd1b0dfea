// README: Trip store backed by PostgreSQL (itinerary as JSONB).
package trips

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"andariego/internal/itinerary"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, t Trip) error {
	doc, err := json.Marshal(t.Itinerary)
	if err != nil {
		return fmt.Errorf("trips: marshal itinerary: %w", err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO trips (id, user_id, title, destination, days, generated_by_ai, itinerary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, t.ID, t.UserID, t.Title, t.Destination, t.Days, t.GeneratedByAI, doc, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("trips: insert: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, userID, id string) (Trip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, title, destination, days, generated_by_ai, itinerary, created_at
		FROM trips WHERE id = $1 AND user_id = $2
	`, id, userID)
	return scanTrip(row)
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, destination, days, generated_by_ai, itinerary, created_at
		FROM trips WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("trips: list: %w", err)
	}
	defer rows.Close()

	var out []Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTrip(row pgx.Row) (Trip, error) {
	var t Trip
	var doc []byte
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Destination, &t.Days, &t.GeneratedByAI, &doc, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Trip{}, ErrNotFound
	}
	if err != nil {
		return Trip{}, fmt.Errorf("trips: scan: %w", err)
	}
	var it itinerary.Itinerary
	if err := json.Unmarshal(doc, &it); err != nil {
		return Trip{}, fmt.Errorf("trips: unmarshal itinerary: %w", err)
	}
	t.Itinerary = it
	return t, nil
}
