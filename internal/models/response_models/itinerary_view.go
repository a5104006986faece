package response_models

// Section kinds, in their fixed display order.
const (
	SectionHeader          = "header"
	SectionBasicInfo       = "basic_info"
	SectionSummary         = "summary"
	SectionBudgetBreakdown = "budget_breakdown"
	SectionDailyItinerary  = "daily_itinerary"
	SectionRestaurants     = "restaurants"
	SectionTransportation  = "transportation"
	SectionCulturalNotes   = "cultural_notes"
	SectionLocalTips       = "local_tips"
	SectionEmergencyInfo   = "emergency_info"
)

// ItineraryView is the ready-to-render section tree. Sections whose backing
// data is empty are omitted entirely.
type ItineraryView struct {
	Sections []ItinerarySection `json:"sections"`
}

type ItinerarySection struct {
	Kind    string               `json:"kind"`
	Title   string               `json:"title,omitempty"`
	Text    string               `json:"text,omitempty"`
	Fields  []LabeledValue       `json:"fields,omitempty"`
	Budget  *BudgetBreakdownView `json:"budget,omitempty"`
	Days    []DayView            `json:"days,omitempty"`
	Entries []EntryView          `json:"entries,omitempty"`
	Lines   []string             `json:"lines,omitempty"`
}

type LabeledValue struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type BudgetBreakdownView struct {
	Rows  []BudgetRowView `json:"rows"`
	Total string          `json:"total,omitempty"`
}

type BudgetRowView struct {
	Name       string  `json:"name"`
	Amount     string  `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type DayView struct {
	Day        int            `json:"day"`
	Expanded   bool           `json:"expanded"`
	Activities []ActivityView `json:"activities,omitempty"`
}

type ActivityView struct {
	Name    string `json:"name"`
	Time    string `json:"time"`
	Details string `json:"details,omitempty"`
	Cost    string `json:"cost,omitempty"`
}

type EntryView struct {
	Title   string `json:"title"`
	Subtext string `json:"subtext,omitempty"`
}
