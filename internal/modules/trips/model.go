// README: Trip entity: a saved itinerary owned by a Firebase user.
package trips

import (
	"errors"
	"time"

	"andariego/internal/itinerary"
)

var (
	ErrNotFound   = errors.New("trip not found")
	ErrBadRequest = errors.New("bad request")
)

// Trip wraps a generated itinerary with ownership and bookkeeping. The
// itinerary itself is stored as a JSONB document: the app only ever reads it
// back whole, so there is no per-activity schema to maintain.
type Trip struct {
	ID            string              `json:"id"`
	UserID        string              `json:"-"`
	Title         string              `json:"title"`
	Destination   string              `json:"destination"`
	Days          int                 `json:"days"`
	GeneratedByAI bool                `json:"generatedByAI"`
	Itinerary     itinerary.Itinerary `json:"itinerary"`
	CreatedAt     time.Time           `json:"createdAt"`
}
