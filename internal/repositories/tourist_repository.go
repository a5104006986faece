package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamconnect/internal/models/db_models"
)

type TouristRepository interface {
	Insert(ctx context.Context, tourist *db_models.Tourist) error
	FindById(ctx context.Context, id string) (*db_models.Tourist, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Tourist, error)
	ListAll(ctx context.Context) ([]db_models.Tourist, error)
	Update(ctx context.Context, tourist *db_models.Tourist) error
	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	DeleteById(ctx context.Context, id string) error
}

type touristRepository struct {
	db *gorm.DB
}

func NewTouristRepository(db *gorm.DB) TouristRepository {
	return &touristRepository{
		db: db,
	}
}

func (r *touristRepository) Insert(ctx context.Context, tourist *db_models.Tourist) error {
	return r.db.WithContext(ctx).Create(tourist).Error
}

func (r *touristRepository) FindById(ctx context.Context, id string) (*db_models.Tourist, error) {
	var tourist db_models.Tourist
	err := r.db.WithContext(ctx).First(&tourist, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &tourist, nil
}

func (r *touristRepository) FindByEmail(ctx context.Context, email string) (*db_models.Tourist, error) {
	var tourist db_models.Tourist
	err := r.db.WithContext(ctx).First(&tourist, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &tourist, nil
}

func (r *touristRepository) ListAll(ctx context.Context) ([]db_models.Tourist, error) {
	var tourists []db_models.Tourist
	if err := r.db.WithContext(ctx).Find(&tourists).Error; err != nil {
		return nil, err
	}
	return tourists, nil
}

func (r *touristRepository) Update(ctx context.Context, tourist *db_models.Tourist) error {
	return r.db.WithContext(ctx).Save(tourist).Error
}

func (r *touristRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Tourist{}).
		Where("email = ?", email).
		Update("password_hash", passwordHash).Error
}

func (r *touristRepository) DeleteById(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&db_models.Tourist{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
