package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestNormalizeEmptyPayloadDefaults(t *testing.T) {
	n := NewNormalizerService()

	detail := n.Normalize(map[string]interface{}{})

	assert.Equal(t, "N/A", detail.Source)
	assert.Equal(t, "N/A", detail.Destination)
	assert.Equal(t, 0, detail.Days)
	assert.Equal(t, 0.0, detail.Budget)
	assert.Equal(t, "None specified", detail.Preferences)
	assert.Equal(t, "", detail.Summary)
	assert.Nil(t, detail.BudgetBreakdown)

	// Collections are always non-nil.
	assert.NotNil(t, detail.DailyItinerary)
	assert.NotNil(t, detail.RestaurantRecommendations)
	assert.NotNil(t, detail.TransportationDetails)
	assert.NotNil(t, detail.CulturalNotes)
	assert.NotNil(t, detail.LocalTips)
	assert.NotNil(t, detail.EmergencyInfo)
	assert.Empty(t, detail.DailyItinerary)
}

func TestNormalizeNonMapPayload(t *testing.T) {
	n := NewNormalizerService()

	for _, raw := range []interface{}{nil, "garbage", []interface{}{1, 2}, 42.0} {
		detail := n.Normalize(raw)
		assert.Equal(t, "N/A", detail.Source)
		assert.NotNil(t, detail.EmergencyInfo)
	}
}

func TestNormalizeFlatEnvelope(t *testing.T) {
	n := NewNormalizerService()

	raw := decode(t, `{
		"source": "Delhi",
		"destination": "Jaipur",
		"days": 3,
		"budget": "₹15,000",
		"preferences": ["food", "history"],
		"itinerary": {
			"summary": "Three days in the Pink City",
			"daily_itinerary": [
				{"day": 1, "activities": [{"activity": "Amber Fort", "time_slot": "9 AM", "cost": 500}]}
			]
		}
	}`)

	detail := n.Normalize(raw)

	assert.Equal(t, "Delhi", detail.Source)
	assert.Equal(t, "Jaipur", detail.Destination)
	assert.Equal(t, 3, detail.Days)
	assert.Equal(t, 15000.0, detail.Budget)
	assert.Equal(t, "food, history", detail.Preferences)
	assert.Equal(t, "Three days in the Pink City", detail.Summary)

	require.Len(t, detail.DailyItinerary, 1)
	require.Len(t, detail.DailyItinerary[0].Activities, 1)
	act := detail.DailyItinerary[0].Activities[0]
	assert.Equal(t, "Amber Fort", act.Name)
	assert.Equal(t, "9 AM", act.Time)
	assert.Equal(t, 500.0, act.Cost)
}

func TestNormalizeMergedEnvelope(t *testing.T) {
	n := NewNormalizerService()

	// The merged create-response shape has no "itinerary" sub-object;
	// detail fields sit at the root next to the basic fields.
	raw := decode(t, `{
		"source": "Mumbai",
		"destination": "Goa",
		"days": 2,
		"budget": 20000,
		"summary": "Beach weekend",
		"local_tips": ["Carry sunscreen"]
	}`)

	detail := n.Normalize(raw)

	assert.Equal(t, "Mumbai", detail.Source)
	assert.Equal(t, "Beach weekend", detail.Summary)
	require.Len(t, detail.LocalTips, 1)
	assert.Equal(t, "Carry sunscreen", detail.LocalTips[0].Title)
	assert.Equal(t, "", detail.LocalTips[0].Subtext)
}

func TestNormalizeBasicFieldsRootWins(t *testing.T) {
	n := NewNormalizerService()

	raw := decode(t, `{
		"source": "Chennai",
		"itinerary": {"source": "WRONG", "summary": "nested summary"}
	}`)

	detail := n.Normalize(raw)

	assert.Equal(t, "Chennai", detail.Source)
	assert.Equal(t, "nested summary", detail.Summary)
}

func TestNormalizeBudgetBreakdownCategoriesArray(t *testing.T) {
	n := NewNormalizerService()

	raw := decode(t, `{
		"budget_breakdown": {
			"categories": [
				{"category": "Food", "amount": 4000, "percentage": 40},
				{"name": "Stay", "amount": 6000, "percentage": 60},
				{"amount": 100, "percentage": 1}
			],
			"total": 10100
		}
	}`)

	detail := n.Normalize(raw)

	bb := detail.BudgetBreakdown
	require.NotNil(t, bb)
	require.Len(t, bb.Categories, 3)
	assert.Equal(t, "Food", bb.Categories[0].Name)
	assert.Equal(t, "Stay", bb.Categories[1].Name)
	assert.Equal(t, "Other", bb.Categories[2].Name)
	require.NotNil(t, bb.Total)
	assert.Equal(t, 10100.0, *bb.Total)
}

func TestNormalizeBudgetBreakdownFlatMapping(t *testing.T) {
	n := NewNormalizerService()

	raw := decode(t, `{
		"budget_breakdown": {"food": 4000, "stay": 6000}
	}`)

	detail := n.Normalize(raw)

	bb := detail.BudgetBreakdown
	require.NotNil(t, bb)
	require.Len(t, bb.Categories, 2)

	// Keys come out sorted, percentages are shares of the sum.
	assert.Equal(t, "food", bb.Categories[0].Name)
	assert.Equal(t, 4000.0, bb.Categories[0].Amount)
	assert.Equal(t, 40.0, bb.Categories[0].Percentage)
	assert.Equal(t, "stay", bb.Categories[1].Name)
	assert.Equal(t, 60.0, bb.Categories[1].Percentage)

	require.NotNil(t, bb.Total)
	assert.Equal(t, 10000.0, *bb.Total)
}

func TestNormalizeBudgetBreakdownEmpty(t *testing.T) {
	n := NewNormalizerService()

	for _, raw := range []string{
		`{"budget_breakdown": {}}`,
		`{"budget_breakdown": {"note": "not numeric"}}`,
		`{"budget_breakdown": "free-form text"}`,
		`{}`,
	} {
		detail := n.Normalize(decode(t, raw))
		assert.Nil(t, detail.BudgetBreakdown, "payload: %s", raw)
	}
}

func TestNormalizeActivityCandidateKeys(t *testing.T) {
	n := NewNormalizerService()

	raw := decode(t, `{
		"daily_itinerary": [
			{"activities": [{"name": "Walk", "price": 250, "schedule": "9 AM"}]}
		]
	}`)

	detail := n.Normalize(raw)

	require.Len(t, detail.DailyItinerary, 1)
	require.Len(t, detail.DailyItinerary[0].Activities, 1)
	act := detail.DailyItinerary[0].Activities[0]
	assert.Equal(t, "Walk", act.Name)
	assert.Equal(t, "9 AM", act.Time)
	assert.Equal(t, 250.0, act.Cost)
	assert.Equal(t, "", act.Details)
}

func TestNormalizeActivityDefaults(t *testing.T) {
	n := NewNormalizerService()

	raw := decode(t, `{
		"daily_itinerary": [
			{"activities": [{}, "not a map"]}
		]
	}`)

	detail := n.Normalize(raw)

	require.Len(t, detail.DailyItinerary, 1)
	acts := detail.DailyItinerary[0].Activities
	require.Len(t, acts, 2)
	for _, act := range acts {
		assert.Equal(t, "Unnamed Activity", act.Name)
		assert.Equal(t, "Time not specified", act.Time)
		assert.Equal(t, 0.0, act.Cost)
	}
}

func TestNormalizeDayNumberFallback(t *testing.T) {
	n := NewNormalizerService()

	raw := decode(t, `{
		"daily_itinerary": [
			{"day": 5},
			{},
			"not a map"
		]
	}`)

	detail := n.Normalize(raw)

	require.Len(t, detail.DailyItinerary, 3)
	assert.Equal(t, 5, detail.DailyItinerary[0].Day)
	assert.Equal(t, 2, detail.DailyItinerary[1].Day)
	assert.Equal(t, 3, detail.DailyItinerary[2].Day)
	assert.NotNil(t, detail.DailyItinerary[2].Activities)
}

func TestNormalizeRestaurants(t *testing.T) {
	n := NewNormalizerService()

	raw := decode(t, `{
		"restaurant_recommendations": [
			"Spice Route",
			{"name": "Thali House", "cuisine": "North Indian", "average_cost": 350},
			{}
		]
	}`)

	detail := n.Normalize(raw)

	require.Len(t, detail.RestaurantRecommendations, 3)

	assert.Equal(t, "Spice Route", detail.RestaurantRecommendations[0].Name)
	assert.Equal(t, "", detail.RestaurantRecommendations[0].Detail)

	assert.Equal(t, "Thali House", detail.RestaurantRecommendations[1].Name)
	assert.Equal(t, "North Indian (₹350)", detail.RestaurantRecommendations[1].Detail)

	assert.Equal(t, "Unknown Restaurant", detail.RestaurantRecommendations[2].Name)
}

func TestNormalizeTransports(t *testing.T) {
	n := NewNormalizerService()

	raw := decode(t, `{
		"transportation_details": [
			"Local trains run all day",
			{"mode": "Taxi", "origin": "Airport", "end": "Hotel", "duration": "45 min", "price": 500},
			{}
		]
	}`)

	detail := n.Normalize(raw)

	require.Len(t, detail.TransportationDetails, 3)

	assert.Equal(t, "Local trains run all day", detail.TransportationDetails[0].Raw)

	second := detail.TransportationDetails[1]
	assert.Equal(t, "Taxi", second.Type)
	assert.Equal(t, "Airport", second.From)
	assert.Equal(t, "Hotel", second.To)
	assert.Equal(t, "45 min", second.Duration)
	assert.Equal(t, 500.0, second.Cost)

	third := detail.TransportationDetails[2]
	assert.Equal(t, "Transport", third.Type)
	assert.Equal(t, "Origin", third.From)
	assert.Equal(t, "Destination", third.To)
}

func TestNormalizeNotes(t *testing.T) {
	n := NewNormalizerService()

	raw := decode(t, `{
		"cultural_notes": [
			"Remove shoes before entering temples",
			{"title": "Dress code", "description": "Cover shoulders"},
			{}
		]
	}`)

	detail := n.Normalize(raw)

	require.Len(t, detail.CulturalNotes, 3)
	assert.Equal(t, "Remove shoes before entering temples", detail.CulturalNotes[0].Title)
	assert.Equal(t, "Dress code", detail.CulturalNotes[1].Title)
	assert.Equal(t, "Cover shoulders", detail.CulturalNotes[1].Subtext)
	assert.Equal(t, "Item 3", detail.CulturalNotes[2].Title)
}

func TestNormalizeEmergencyInfo(t *testing.T) {
	n := NewNormalizerService()

	raw := decode(t, `{
		"emergency_info": {
			"police": "100",
			"ambulance": 102,
			"tourist_helpline_available": true,
			"nested": {"ignored": true}
		}
	}`)

	detail := n.Normalize(raw)

	assert.Equal(t, map[string]string{
		"police":                     "100",
		"ambulance":                  "102",
		"tourist_helpline_available": "true",
	}, detail.EmergencyInfo)
}

func TestPreferencesString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, "None specified"},
		{"empty string", "", "None specified"},
		{"whitespace", "   ", "None specified"},
		{"plain string", "food, culture", "food, culture"},
		{"string slice", []interface{}{"food", "culture"}, "food, culture"},
		{"empty slice", []interface{}{}, "None specified"},
		{"mixed slice", []interface{}{"food", 7.0, ""}, "food"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preferencesString(tt.in))
		})
	}
}
