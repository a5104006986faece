package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/pgvector/pgvector-go"
)

// PlanRequest carries the user's trip parameters into the AI planner.
type PlanRequest struct {
	Source      string
	Destination string
	Days        int
	Budget      float64
	Preferences []string
}

// PlannerClientInterface generates the raw itinerary plan as a JSON string.
// The payload shape is loose on purpose; normalization happens downstream.
type PlannerClientInterface interface {
	GenerateItineraryJSON(ctx context.Context, req PlanRequest) (string, error)
}

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// BuildItineraryPrompt produces the JSON-only planning prompt. The schema
// keys here are the ones the normalizer and the front-end agree on.
func BuildItineraryPrompt(req PlanRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed %d-day travel itinerary from %s to %s with a budget of ₹%s.\n",
		req.Days, req.Source, req.Destination, FormatINR(req.Budget))
	fmt.Fprintf(&b, "Preferences: %s.\n\n", strings.Join(req.Preferences, ", "))

	b.WriteString("IMPORTANT REQUIREMENTS:\n")
	fmt.Fprintf(&b, "1. You MUST create activities for ALL %d days of the trip\n", req.Days)
	b.WriteString("2. Each day must have at least 3-4 activities\n")
	b.WriteString("3. Activities should be spread throughout the day (morning, afternoon, evening)\n")
	b.WriteString("4. Include realistic time slots and durations\n")
	fmt.Fprintf(&b, "5. Ensure the total cost stays within the budget of ₹%s\n\n", FormatINR(req.Budget))

	b.WriteString(`Your response MUST be a valid JSON object with the following structure:
{
  "summary": "Brief overview of the trip",
  "budget_breakdown": {
    "total": 0,
    "categories": [
      {"category": "transportation", "amount": 0, "percentage": 0},
      {"category": "accommodation", "amount": 0, "percentage": 0},
      {"category": "activities", "amount": 0, "percentage": 0},
      {"category": "food", "amount": 0, "percentage": 0},
      {"category": "miscellaneous", "amount": 0, "percentage": 0}
    ]
  },
  "daily_itinerary": [
    {"day": 1, "activities": [{"activity": "...", "time_slot": "09:00 - 11:00", "details": "...", "cost": 0}]}
  ],
  "restaurant_recommendations": [],
  "transportation_details": [],
  "emergency_info": {"police": "number", "ambulance": "number", "fire": "number", "embassy": "address and number", "hospital": "address and number"},
  "local_tips": [],
  "cultural_notes": []
}

`)
	fmt.Fprintf(&b, "The daily_itinerary array must contain exactly %d entries, day = 1..%d with no gaps.\n", req.Days, req.Days)
	b.WriteString("Do not include any text before or after the JSON object. Return JSON only, no comments, no markdown.")

	return b.String()
}

// StripCodeFences removes a surrounding ```json ... ``` block when a model
// wraps its output despite the JSON-only instruction.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
