// README: Lenient parser turning raw model text into a normalized itinerary.
package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Wire-level payload with every field optional. Model output is the least
// trustworthy input in the system, so nothing decodes straight into the
// public types: absent fields surface as nils here and get defaulted in a
// separate normalization pass.
type wireActivity struct {
	Time          *string  `json:"time"`
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Description   *string  `json:"description"`
	EstimatedCost *float64 `json:"estimatedCost"`
	Duration      *int     `json:"duration"`
	Location      *string  `json:"location"`
}

type wireDay struct {
	Day                *int           `json:"day"`
	Title              *string        `json:"title"`
	Activities         []wireActivity `json:"activities"`
	TotalEstimatedCost *float64       `json:"totalEstimatedCost"`
	Notes              *string        `json:"notes"`
}

type wireItinerary struct {
	Destination        *string   `json:"destination"`
	Days               *int      `json:"days"`
	DayItineraries     []wireDay `json:"dayItineraries"`
	TotalEstimatedCost *float64  `json:"totalEstimatedCost"`
}

// Parse converts raw model output into an Itinerary. It never fails: any
// structural problem degrades to Fallback(req) and the raw text is discarded.
//
// Day numbers and the reported cost totals are passed through as-is. The model
// is not trusted to do arithmetic, and we deliberately do not repair it either;
// only the fallback path guarantees consistent sums.
func Parse(raw string, req Request) Itinerary {
	span, ok := extractJSON(raw)
	if !ok {
		return Fallback(req)
	}

	var w wireItinerary
	if err := json.Unmarshal([]byte(span), &w); err != nil {
		return Fallback(req)
	}
	// No recognizable per-day list means the model answered something else
	// entirely. An empty-but-present list is accepted as-is.
	if w.DayItineraries == nil {
		return Fallback(req)
	}

	return normalize(w, req)
}

// extractJSON strips markdown code fences and returns the first top-level
// object span (first '{' to last '}'). The prompt asks for a single object, so
// a greedy match is enough.
func extractJSON(raw string) (string, bool) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return cleaned[start : end+1], true
}

// normalize applies defaults field by field. Missing values are filled, never
// left absent; costs and durations end up non-negative.
func normalize(w wireItinerary, req Request) Itinerary {
	out := Itinerary{
		Destination:        strOr(w.Destination, req.Destination),
		Days:               intOr(w.Days, req.Days),
		DayItineraries:     make([]DayItinerary, 0, len(w.DayItineraries)),
		TotalEstimatedCost: nonNegative(floatOr(w.TotalEstimatedCost, 0)),
	}

	for _, d := range w.DayItineraries {
		dayNum := intOr(d.Day, 0)
		day := DayItinerary{
			Day:                dayNum,
			Title:              strOr(d.Title, fmt.Sprintf("Day %d", dayNum)),
			Activities:         make([]Activity, 0, len(d.Activities)),
			TotalEstimatedCost: nonNegative(floatOr(d.TotalEstimatedCost, 0)),
			Notes:              strOr(d.Notes, ""),
		}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, Activity{
				Time:          strOr(a.Time, "09:00"),
				Name:          strOr(a.Name, "Activity"),
				Category:      strOr(a.Category, "General"),
				Description:   strOr(a.Description, ""),
				EstimatedCost: nonNegative(floatOr(a.EstimatedCost, 0)),
				Duration:      nonNegativeInt(intOr(a.Duration, 60)),
				Location:      strOr(a.Location, ""),
			})
		}
		out.DayItineraries = append(out.DayItineraries, day)
	}

	return out
}

func strOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func nonNegativeInt(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
