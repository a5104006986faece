package db_models

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

type ItineraryEmbedding struct {
	ItineraryID string `gorm:"primaryKey;column:itinerary_id"`
	Source      string
	Destination string
	Embedding   pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt   time.Time       `gorm:"autoCreateTime"`
}
