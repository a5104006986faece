package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamconnect/internal/models/db_models"
)

type ItineraryRepository interface {
	Insert(ctx context.Context, itinerary *db_models.Itinerary) error
	FindById(ctx context.Context, id string) (*db_models.Itinerary, error)
	ListAll(ctx context.Context) ([]db_models.Itinerary, error)
	DeleteById(ctx context.Context, id string) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{
		db: db,
	}
}

func (r *itineraryRepository) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Create(itinerary).Error
}

func (r *itineraryRepository) FindById(ctx context.Context, id string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).First(&itinerary, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}

func (r *itineraryRepository) ListAll(ctx context.Context) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&itineraries).Error
	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) DeleteById(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&db_models.Itinerary{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
