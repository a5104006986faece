package response_models

// ItineraryDetail is the canonical, default-filled form of a raw plan
// payload. Every collection is non-nil after normalization so consumers
// never branch on missing lists.
type ItineraryDetail struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
	Days        int    `json:"days"`
	Budget      float64 `json:"budget"`
	Preferences string `json:"preferences"`
	Summary     string `json:"summary,omitempty"`

	BudgetBreakdown           *BudgetBreakdown  `json:"budget_breakdown,omitempty"`
	DailyItinerary            []DayPlan         `json:"daily_itinerary"`
	RestaurantRecommendations []RestaurantRef   `json:"restaurant_recommendations"`
	TransportationDetails     []TransportRef    `json:"transportation_details"`
	CulturalNotes             []NoteItem        `json:"cultural_notes"`
	LocalTips                 []NoteItem        `json:"local_tips"`
	EmergencyInfo             map[string]string `json:"emergency_info"`
}

type BudgetBreakdown struct {
	Categories []BudgetCategory `json:"categories"`
	Total      *float64         `json:"total,omitempty"`
}

type BudgetCategory struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

type Activity struct {
	Name    string  `json:"name"`
	Time    string  `json:"time"`
	Details string  `json:"details,omitempty"`
	Cost    float64 `json:"cost"`
}

type RestaurantRef struct {
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
}

// TransportRef keeps the probed fields; when the raw item was a plain
// string it lands in Raw and is rendered verbatim.
type TransportRef struct {
	Raw      string  `json:"raw,omitempty"`
	Type     string  `json:"type,omitempty"`
	From     string  `json:"from,omitempty"`
	To       string  `json:"to,omitempty"`
	Duration string  `json:"duration,omitempty"`
	Cost     float64 `json:"cost,omitempty"`
}

type NoteItem struct {
	Title   string `json:"title"`
	Subtext string `json:"subtext,omitempty"`
}
