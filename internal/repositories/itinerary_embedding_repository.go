package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"roamconnect/internal/models/db_models"
)

type IItineraryEmbeddingRepository interface {
	CreateItineraryEmbedding(embedding db_models.ItineraryEmbedding) error
	GetSimilarByVector(vector pgvector.Vector, excludeID string) ([]SimilarItineraryRow, error)
	DeleteByItineraryId(itineraryID string) error
}

type SimilarItineraryRow struct {
	db_models.ItineraryEmbedding
	Similarity float64
}

type itineraryEmbeddingRepository struct {
	db *gorm.DB
}

func NewItineraryEmbeddingRepository(db *gorm.DB) IItineraryEmbeddingRepository {
	return &itineraryEmbeddingRepository{
		db: db,
	}
}

func (r *itineraryEmbeddingRepository) CreateItineraryEmbedding(embedding db_models.ItineraryEmbedding) error {
	return r.db.Create(&embedding).Error
}

func (r *itineraryEmbeddingRepository) GetSimilarByVector(vector pgvector.Vector, excludeID string) ([]SimilarItineraryRow, error) {
	var results []SimilarItineraryRow

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM itinerary_embeddings
        WHERE itinerary_id <> $2
          AND (1 - (embedding <=> $1)) > 0.7  -- Only return results with >70% similarity
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT 15
    `

	err := r.db.Raw(query, vecStr, excludeID).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *itineraryEmbeddingRepository) DeleteByItineraryId(itineraryID string) error {
	return r.db.Delete(&db_models.ItineraryEmbedding{}, "itinerary_id = ?", itineraryID).Error
}
