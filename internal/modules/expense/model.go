// README: Expense domain types for per-trip spending tracking.
package expense

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("expense: not found")
	ErrBadRequest = errors.New("expense: bad request")
)

// DefaultCurrency is the app's home currency. Amounts arrive in soles; the
// mobile client converts before submitting.
const DefaultCurrency = "PEN"

// Categories mirror the itinerary activity categories so that spending can be
// compared against the plan.
var knownCategories = map[string]bool{
	"Gastronomía": true,
	"Cultura":     true,
	"Transporte":  true,
	"Alojamiento": true,
	"Compras":     true,
	"General":     true,
}

type Expense struct {
	ID          string    `json:"id"`
	TripID      string    `json:"tripId"`
	UserID      string    `json:"-"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	SpentAt     time.Time `json:"spentAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Summary aggregates a trip's spending for the budget screen.
type Summary struct {
	Total      float64            `json:"total"`
	Currency   string             `json:"currency"`
	ByCategory map[string]float64 `json:"byCategory"`
	Count      int                `json:"count"`
}
