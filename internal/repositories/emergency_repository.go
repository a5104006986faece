package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamconnect/internal/models/db_models"
)

type EmergencyContactRepository interface {
	Insert(ctx context.Context, contact *db_models.EmergencyContact) error
	FindById(ctx context.Context, id string) (*db_models.EmergencyContact, error)
	ListWithCreators(ctx context.Context) ([]db_models.EmergencyContact, error)
	Update(ctx context.Context, contact *db_models.EmergencyContact) error
	DeleteById(ctx context.Context, id string) error
}

type emergencyContactRepository struct {
	db *gorm.DB
}

func NewEmergencyContactRepository(db *gorm.DB) EmergencyContactRepository {
	return &emergencyContactRepository{
		db: db,
	}
}

func (r *emergencyContactRepository) Insert(ctx context.Context, contact *db_models.EmergencyContact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *emergencyContactRepository) FindById(ctx context.Context, id string) (*db_models.EmergencyContact, error) {
	var contact db_models.EmergencyContact
	err := r.db.WithContext(ctx).
		Preload("Creator").
		First(&contact, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &contact, nil
}

func (r *emergencyContactRepository) ListWithCreators(ctx context.Context) ([]db_models.EmergencyContact, error) {
	var contacts []db_models.EmergencyContact
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *emergencyContactRepository) Update(ctx context.Context, contact *db_models.EmergencyContact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *emergencyContactRepository) DeleteById(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&db_models.EmergencyContact{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
