package db_models

import (
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Itinerary stores the trip parameters plus the planner's raw JSON payload.
// The payload is kept verbatim; shape tolerance lives in the normalizer.
type Itinerary struct {
	BaseModel
	Source      string
	Destination string
	Days        int
	Budget      float64
	Preferences pq.StringArray `gorm:"type:text[]"`
	PlanData    datatypes.JSON `gorm:"type:jsonb"`
}
