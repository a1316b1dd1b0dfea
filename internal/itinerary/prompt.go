// README: Prompt construction for the itinerary generation call.
package itinerary

import (
	"fmt"
	"strings"
)

// budgetGuidance maps a tier to the daily-spend band quoted in the prompt.
func budgetGuidance(tier string) string {
	switch tier {
	case BudgetLow:
		return "Tight budget: at most S/. 80-100 per day"
	case BudgetHigh:
		return "High budget: S/. 300-500 per day"
	default:
		return "Medium budget: S/. 150-250 per day"
	}
}

// buildPrompt renders the full generation prompt for a request. Deterministic;
// the only variable parts come from the request itself.
//
// The embedded example pins the exact field names and nesting the parser
// expects. Models still wrap the payload in prose or code fences often enough
// that the parser has to strip both anyway.
func buildPrompt(req Request) string {
	interestsText := "General interest in authentic local tourism."
	if len(req.Interests) > 0 {
		interestsText = fmt.Sprintf("Specific interests: %s.", strings.Join(req.Interests, ", "))
	}

	return fmt.Sprintf(`You are an expert in authentic, responsible tourism in %s. Generate a detailed, coherent %d-day itinerary for visiting %s.

CONTEXT AND REQUIREMENTS:
- %s
- %s
- Focus on authentic, local and sustainable experiences
- Prioritize small businesses, local communities and family restaurants
- Account for realistic transport times between places
- Build a coherent day-by-day narrative
- Use realistic times for every activity
- Estimate realistic costs in Peruvian soles (S/.)

REQUIRED STRUCTURE:
For each day include:
- A descriptive title for the day
- Activities ordered by time, from early to late
- A short description of each activity
- Estimated cost per activity
- Estimated duration in minutes
- A category (Attraction, Food, Local Experience, Archaeology, Nature, etc.)

RESPONSE FORMAT (strict JSON):
{
  "destination": "%s",
  "days": %d,
  "dayItineraries": [
    {
      "day": 1,
      "title": "Descriptive title for day 1",
      "activities": [
        {
          "time": "08:00",
          "name": "Activity name",
          "category": "Category",
          "description": "Detailed description of the activity",
          "estimatedCost": 50,
          "duration": 120,
          "location": "Specific location"
        }
      ],
      "totalEstimatedCost": 150,
      "notes": "Optional notes for the day"
    }
  ],
  "totalEstimatedCost": 450
}

IMPORTANT:
- Use realistic, sequential times (09:00, 11:30, 14:00, ...)
- Every day needs at least 3-4 main activities
- Activity costs should roughly add up to the daily budget
- Keep days geographically coherent (no long jumps within one day)
- Leave room for lunch and rest

Respond ONLY with the valid JSON, no extra text and no markdown.`,
		req.regionOrDefault(), req.Days, req.Destination,
		interestsText, budgetGuidance(req.budgetTier()),
		req.Destination, req.Days)
}
