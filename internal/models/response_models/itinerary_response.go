package response_models

// ItineraryRecord is the GET-by-id payload: basic fields at the root with
// the raw plan nested under "itinerary" (the flat envelope shape).
type ItineraryRecord struct {
	ID          string                 `json:"id"`
	Budget      float64                `json:"budget"`
	Source      string                 `json:"source"`
	Destination string                 `json:"destination"`
	Days        int                    `json:"days"`
	Preferences []string               `json:"preferences"`
	Itinerary   map[string]interface{} `json:"itinerary"`
	CreatedAt   string                 `json:"created_at"`
}

// ItinerarySummary is one row of the collection listing (no plan payload).
type ItinerarySummary struct {
	ID          string   `json:"id"`
	Budget      float64  `json:"budget"`
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	Days        int      `json:"days"`
	Preferences []string `json:"preferences"`
	CreatedAt   string   `json:"created_at"`
}

type SimilarItinerary struct {
	ID          string  `json:"id"`
	Source      string  `json:"source"`
	Destination string  `json:"destination"`
	Similarity  float64 `json:"similarity"`
}
