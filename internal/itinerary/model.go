// README: Itinerary data model shared by the generator, parser and fallback.
package itinerary

// Budget tiers accepted in a Request. Anything else is treated as medium.
const (
	BudgetLow    = "low"
	BudgetMedium = "medium"
	BudgetHigh   = "high"
)

// defaultRegion is used when the caller leaves Request.Region empty.
const defaultRegion = "Perú"

// Request describes one itinerary generation call. It is owned by the caller
// and read-only inside the pipeline.
type Request struct {
	// Destination is the place to visit, e.g. "Chiclayo, Perú".
	Destination string `json:"destination"`

	// Days is the requested trip length. The pipeline passes it through
	// unvalidated; the HTTP layer bounds it for the public API.
	Days int `json:"days"`

	// Interests are free-text tags such as "Arqueología" or "Gastronomía".
	Interests []string `json:"interests,omitempty"`

	// Budget is one of BudgetLow/BudgetMedium/BudgetHigh; empty means medium.
	Budget string `json:"budget,omitempty"`

	// Region gives the prompt geographic context; defaults to "Perú".
	Region string `json:"region,omitempty"`
}

// budgetTier normalizes the request budget to a known tier.
func (r Request) budgetTier() string {
	switch r.Budget {
	case BudgetLow, BudgetHigh:
		return r.Budget
	default:
		return BudgetMedium
	}
}

// regionOrDefault returns the request region, defaulting to defaultRegion.
func (r Request) regionOrDefault() string {
	if r.Region == "" {
		return defaultRegion
	}
	return r.Region
}

// Activity is one scheduled entry inside a day. Costs are in Peruvian soles,
// durations in minutes. The JSON tags mirror the wire format the model is
// instructed to produce.
type Activity struct {
	Time          string  `json:"time"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimatedCost"`
	Duration      int     `json:"duration"`
	Location      string  `json:"location,omitempty"`
}

// DayItinerary is one day of the plan. Activities keep insertion order; that
// order is the chronological display order.
type DayItinerary struct {
	Day                int        `json:"day"`
	Title              string     `json:"title"`
	Activities         []Activity `json:"activities"`
	TotalEstimatedCost float64    `json:"totalEstimatedCost"`
	Notes              string     `json:"notes,omitempty"`
}

// Itinerary is the pipeline output. TotalEstimatedCost is whatever the source
// reported; only the fallback synthesizer guarantees it equals the sum of the
// day totals.
type Itinerary struct {
	Destination        string         `json:"destination"`
	Days               int            `json:"days"`
	DayItineraries     []DayItinerary `json:"dayItineraries"`
	TotalEstimatedCost float64        `json:"totalEstimatedCost"`
}
