package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamconnect/internal/models/response_models"
)

func sampleDetail() *response_models.ItineraryDetail {
	total := 10000.0
	return &response_models.ItineraryDetail{
		Source:      "Delhi",
		Destination: "Jaipur",
		Days:        3,
		Budget:      15000,
		Preferences: "food, history",
		Summary:     "Three days in the Pink City",
		BudgetBreakdown: &response_models.BudgetBreakdown{
			Categories: []response_models.BudgetCategory{
				{Name: "food", Amount: 4000, Percentage: 40},
				{Name: "stay", Amount: 6000, Percentage: 60},
			},
			Total: &total,
		},
		DailyItinerary: []response_models.DayPlan{
			{Day: 1, Activities: []response_models.Activity{
				{Name: "Amber Fort", Time: "9 AM", Details: "Guided tour", Cost: 500},
			}},
			{Day: 2, Activities: []response_models.Activity{
				{Name: "City Palace", Time: "10 AM"},
			}},
		},
		RestaurantRecommendations: []response_models.RestaurantRef{
			{Name: "Thali House", Detail: "North Indian (₹350)"},
		},
		TransportationDetails: []response_models.TransportRef{
			{Type: "Taxi", From: "Airport", To: "Hotel", Cost: 500},
		},
		CulturalNotes: []response_models.NoteItem{{Title: "Dress modestly"}},
		LocalTips:     []response_models.NoteItem{{Title: "Bargain at bazaars"}},
		EmergencyInfo: map[string]string{"police": "100", "ambulance": "102"},
	}
}

func sectionKinds(view *response_models.ItineraryView) []string {
	kinds := make([]string, 0, len(view.Sections))
	for _, s := range view.Sections {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func TestBuildViewSectionOrder(t *testing.T) {
	svc := NewItineraryViewService()

	view := svc.BuildView(sampleDetail(), NewDaySelection())

	assert.Equal(t, []string{
		response_models.SectionHeader,
		response_models.SectionBasicInfo,
		response_models.SectionSummary,
		response_models.SectionBudgetBreakdown,
		response_models.SectionDailyItinerary,
		response_models.SectionRestaurants,
		response_models.SectionTransportation,
		response_models.SectionCulturalNotes,
		response_models.SectionLocalTips,
		response_models.SectionEmergencyInfo,
	}, sectionKinds(view))

	assert.Equal(t, "Delhi to Jaipur", view.Sections[0].Title)
}

func TestBuildViewOmitsEmptySections(t *testing.T) {
	svc := NewItineraryViewService()

	detail := &response_models.ItineraryDetail{
		Source:                    "N/A",
		Destination:               "N/A",
		Preferences:               "None specified",
		DailyItinerary:            []response_models.DayPlan{},
		RestaurantRecommendations: []response_models.RestaurantRef{},
		TransportationDetails:     []response_models.TransportRef{},
		CulturalNotes:             []response_models.NoteItem{},
		LocalTips:                 []response_models.NoteItem{},
		EmergencyInfo:             map[string]string{},
	}

	view := svc.BuildView(detail, NewDaySelection())

	// Header and basic info always render; everything else is empty.
	assert.Equal(t, []string{
		response_models.SectionHeader,
		response_models.SectionBasicInfo,
	}, sectionKinds(view))
}

func TestBuildViewBasicInfoFormatting(t *testing.T) {
	svc := NewItineraryViewService()

	view := svc.BuildView(sampleDetail(), NewDaySelection())

	fields := view.Sections[1].Fields
	require.Len(t, fields, 3)
	assert.Equal(t, response_models.LabeledValue{Label: "Duration", Value: "3 days"}, fields[0])
	assert.Equal(t, response_models.LabeledValue{Label: "Budget", Value: "₹15,000"}, fields[1])
	assert.Equal(t, response_models.LabeledValue{Label: "Preferences", Value: "food, history"}, fields[2])
}

func TestBuildViewBudgetRows(t *testing.T) {
	svc := NewItineraryViewService()

	view := svc.BuildView(sampleDetail(), NewDaySelection())

	budget := view.Sections[3].Budget
	require.NotNil(t, budget)
	require.Len(t, budget.Rows, 2)
	assert.Equal(t, "₹4,000", budget.Rows[0].Amount)
	assert.Equal(t, 40.0, budget.Rows[0].Percentage)
	assert.Equal(t, "₹10,000", budget.Total)
}

func TestBuildViewDefaultExpandsDayOne(t *testing.T) {
	svc := NewItineraryViewService()

	view := svc.BuildView(sampleDetail(), NewDaySelection())

	days := view.Sections[4].Days
	require.Len(t, days, 2)
	assert.True(t, days[0].Expanded)
	assert.False(t, days[1].Expanded)

	require.Len(t, days[0].Activities, 1)
	assert.Equal(t, "Amber Fort", days[0].Activities[0].Name)
	assert.Equal(t, "₹500", days[0].Activities[0].Cost)
	assert.Empty(t, days[1].Activities)
}

func TestBuildViewCollapsedSelection(t *testing.T) {
	svc := NewItineraryViewService()

	sel := NewDaySelection()
	sel.Toggle(1) // collapse the default day

	view := svc.BuildView(sampleDetail(), sel)

	for _, d := range view.Sections[4].Days {
		assert.False(t, d.Expanded)
		assert.Empty(t, d.Activities)
	}
}

func TestBuildViewEmergencyFieldsSorted(t *testing.T) {
	svc := NewItineraryViewService()

	view := svc.BuildView(sampleDetail(), NewDaySelection())

	fields := view.Sections[9].Fields
	require.Len(t, fields, 2)
	assert.Equal(t, "ambulance", fields[0].Label)
	assert.Equal(t, "police", fields[1].Label)
}

func TestDaySelectionToggle(t *testing.T) {
	sel := NewDaySelection()
	day, expanded := sel.Expanded()
	assert.Equal(t, 1, day)
	assert.True(t, expanded)

	// Toggling another day moves the expansion there.
	sel.Toggle(2)
	day, expanded = sel.Expanded()
	assert.Equal(t, 2, day)
	assert.True(t, expanded)

	// Toggling the expanded day collapses everything.
	sel.Toggle(2)
	_, expanded = sel.Expanded()
	assert.False(t, expanded)

	// Toggling again from the collapsed state expands that day.
	sel.Toggle(3)
	day, expanded = sel.Expanded()
	assert.Equal(t, 3, day)
	assert.True(t, expanded)
}

func TestDaySelectionAt(t *testing.T) {
	sel := DaySelectionAt(4)
	day, expanded := sel.Expanded()
	assert.Equal(t, 4, day)
	assert.True(t, expanded)

	sel = DaySelectionAt(0)
	_, expanded = sel.Expanded()
	assert.False(t, expanded)
}

func TestTransportLine(t *testing.T) {
	tests := []struct {
		name string
		in   response_models.TransportRef
		want string
	}{
		{
			"raw passes through",
			response_models.TransportRef{Raw: "Local trains run all day"},
			"Local trains run all day",
		},
		{
			"full structure",
			response_models.TransportRef{Type: "Taxi", From: "Airport", To: "Hotel", Duration: "45 min", Cost: 500},
			"Taxi from Airport to Hotel (45 min) - ₹500",
		},
		{
			"no duration",
			response_models.TransportRef{Type: "Taxi", From: "Airport", To: "Hotel", Cost: 500},
			"Taxi from Airport to Hotel - ₹500",
		},
		{
			"no cost",
			response_models.TransportRef{Type: "Bus", From: "Delhi", To: "Jaipur", Duration: "5 hrs"},
			"Bus from Delhi to Jaipur (5 hrs)",
		},
		{
			"defaults only",
			response_models.TransportRef{Type: "Transport", From: "Origin", To: "Destination"},
			"Transport from Origin to Destination",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TransportLine(tt.in))
		})
	}
}
