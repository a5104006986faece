package request_models

// CreateItineraryRequest mirrors what the front-end form submits. Days and
// budget frequently arrive as strings, preferences as either a string or a
// list; the service coerces before planning.
type CreateItineraryRequest struct {
	Source      string      `json:"source" binding:"required"`
	Destination string      `json:"destination" binding:"required"`
	Days        interface{} `json:"days" binding:"required"`
	Budget      interface{} `json:"budget" binding:"required"`
	Preferences interface{} `json:"preferences"`
}
