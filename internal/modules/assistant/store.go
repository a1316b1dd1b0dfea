package assistant

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles assistant_usage persistence.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// UseCredit atomically checks the monthly quota and deducts one credit. The
// counter lazily resets to DefaultCredits when the stored period is behind the
// current month. Returns ErrInsufficientCredits when 0 rows are updated
// (quota exhausted or user absent).
func (s *Store) UseCredit(ctx context.Context, uid string) error {
	period := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE assistant_usage SET
			credits_left = CASE WHEN period != $1 THEN $2 - 1 ELSE credits_left - 1 END,
			period = $1,
			updated_at = NOW()
		WHERE user_id = $3 AND (period < $1 OR credits_left > 0)
	`, period, DefaultCredits, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientCredits
	}
	return nil
}

// EnsureUser inserts an assistant_usage row for uid with the default credit
// allowance. Existing rows are left untouched.
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO assistant_usage (user_id, credits_left, period)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
	`, uid, DefaultCredits, time.Now().Format("2006-01"))
	return err
}

// CreditsLeft reports the user's remaining allowance for the current month.
// A missing row counts as a full allowance; a stale period likewise.
func (s *Store) CreditsLeft(ctx context.Context, uid string) (int, error) {
	period := time.Now().Format("2006-01")

	var left int
	var stored string
	err := s.db.QueryRow(ctx, `
		SELECT credits_left, period FROM assistant_usage WHERE user_id = $1
	`, uid).Scan(&left, &stored)
	if errors.Is(err, pgx.ErrNoRows) {
		return DefaultCredits, nil
	}
	if err != nil {
		return 0, err
	}
	if stored != period {
		return DefaultCredits, nil
	}
	return left, nil
}
