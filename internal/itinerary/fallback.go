// README: Deterministic offline itinerary synthesis (no upstream call).
package itinerary

import "fmt"

// Flat template costs in soles, one per daily slot. Day totals are the exact
// sum of these (160/day) regardless of tier; the tier only drives the
// display-only budget note.
const (
	costMorningSlot   = 30
	costLandmarkSlot  = 45
	costLunchSlot     = 45
	costAfternoonSlot = 40
)

// dailyBudget returns the per-day spend constant for a tier, quoted in the
// day-one note.
func dailyBudget(tier string) int {
	switch tier {
	case BudgetLow:
		return 100
	case BudgetHigh:
		return 300
	default:
		return 200
	}
}

// landmarkName picks the midday cultural slot for a day. Keyed only on the day
// index so the output is stable for a fixed request.
func landmarkName(day int) string {
	switch day {
	case 1:
		return "Museo Tumbas Reales de Sipán"
	case 2:
		return "Chan Chan (Trujillo)"
	default:
		return "Mercado Artesanal"
	}
}

// Fallback builds a plausible itinerary without any upstream call. It is the
// path taken whenever the API key is absent or every model candidate failed,
// and it is the one place where the cost sums are guaranteed to be consistent:
// each day totals its four activities exactly and the grand total is the sum
// of the day totals. Day numbers are exactly 1..req.Days.
func Fallback(req Request) Itinerary {
	budget := dailyBudget(req.budgetTier())

	out := Itinerary{
		Destination:    req.Destination,
		Days:           req.Days,
		DayItineraries: make([]DayItinerary, 0, max(req.Days, 0)),
	}

	for day := 1; day <= req.Days; day++ {
		first := day == 1
		last := day == req.Days

		morning := Activity{
			Time:          "09:00",
			Name:          "Breakfast at a local spot",
			Category:      "Food",
			Description:   "Typical breakfast of the region",
			EstimatedCost: costMorningSlot,
			Duration:      60,
			Location:      req.Destination,
		}
		if first {
			morning.Name = "Arrival and check-in"
			morning.Category = "Arrival"
			morning.Description = "Arrival at the destination and settling in"
		}

		afternoon := Activity{
			Time:          "16:00",
			Name:          "Local cultural experience",
			Category:      "Local Experience",
			Description:   "Authentic cultural activity",
			EstimatedCost: costAfternoonSlot,
			Duration:      120,
			Location:      req.Destination,
		}
		if last {
			afternoon.Name = "Shopping and farewell"
		}

		activities := []Activity{
			morning,
			{
				Time:          "11:00",
				Name:          landmarkName(day),
				Category:      "Archaeology",
				Description:   "Visit to a major archaeological site",
				EstimatedCost: costLandmarkSlot,
				Duration:      120,
				Location:      req.Destination,
			},
			{
				Time:          "14:00",
				Name:          "Lunch at a local restaurant",
				Category:      "Food",
				Description:   "Typical Peruvian lunch",
				EstimatedCost: costLunchSlot,
				Duration:      90,
				Location:      req.Destination,
			},
			afternoon,
		}

		var dayTotal float64
		for _, a := range activities {
			dayTotal += a.EstimatedCost
		}

		d := DayItinerary{
			Day:                day,
			Title:              fmt.Sprintf("Day %d: Exploring %s", day, req.Destination),
			Activities:         activities,
			TotalEstimatedCost: dayTotal,
		}
		if first {
			d.Notes = fmt.Sprintf("Arrival and orientation day. Plan around S/. %d per day.", budget)
		}

		out.DayItineraries = append(out.DayItineraries, d)
		out.TotalEstimatedCost += dayTotal
	}

	return out
}
