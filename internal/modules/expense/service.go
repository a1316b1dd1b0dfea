// README: Expense service: record spending and summarize it per category.
package expense

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Record validates and persists an expense. Unknown categories collapse to
// "General"; blank currency defaults to soles.
func (s *Service) Record(ctx context.Context, e Expense) (Expense, error) {
	if e.UserID == "" || e.TripID == "" {
		return Expense{}, ErrBadRequest
	}
	if e.Amount <= 0 {
		return Expense{}, ErrBadRequest
	}

	e.Category = strings.TrimSpace(e.Category)
	if !knownCategories[e.Category] {
		e.Category = "General"
	}
	if e.Currency == "" {
		e.Currency = DefaultCurrency
	}
	if e.SpentAt.IsZero() {
		e.SpentAt = time.Now().UTC()
	}

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	if err := s.store.Insert(ctx, e); err != nil {
		return Expense{}, err
	}
	return e, nil
}

func (s *Service) ListByTrip(ctx context.Context, userID, tripID string) ([]Expense, error) {
	if userID == "" || tripID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByTrip(ctx, userID, tripID)
}

// Summarize folds a trip's expenses into per-category totals. Pure so the
// budget screen math stays testable without a database.
func Summarize(expenses []Expense) Summary {
	sum := Summary{
		Currency:   DefaultCurrency,
		ByCategory: map[string]float64{},
		Count:      len(expenses),
	}
	for _, e := range expenses {
		sum.Total += e.Amount
		sum.ByCategory[e.Category] += e.Amount
	}
	return sum
}
