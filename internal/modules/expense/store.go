// README: Expense store backed by PostgreSQL.
package expense

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, e Expense) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO expenses (id, trip_id, user_id, category, description, amount, currency, spent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, e.ID, e.TripID, e.UserID, e.Category, e.Description, e.Amount, e.Currency, e.SpentAt, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("expense: insert: %w", err)
	}
	return nil
}

func (s *Store) ListByTrip(ctx context.Context, userID, tripID string) ([]Expense, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, user_id, category, description, amount, currency, spent_at, created_at
		FROM expenses WHERE trip_id = $1 AND user_id = $2 ORDER BY spent_at
	`, tripID, userID)
	if err != nil {
		return nil, fmt.Errorf("expense: list: %w", err)
	}
	defer rows.Close()

	var out []Expense
	for rows.Next() {
		var e Expense
		err := rows.Scan(&e.ID, &e.TripID, &e.UserID, &e.Category, &e.Description,
			&e.Amount, &e.Currency, &e.SpentAt, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("expense: scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
