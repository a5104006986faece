package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"roamconnect/internal/models/db_models"
)

type PostRepository interface {
	Insert(ctx context.Context, post *db_models.Post) error
	FindById(ctx context.Context, id string) (*db_models.Post, error)
	ListWithCreators(ctx context.Context) ([]db_models.Post, error)
	Update(ctx context.Context, post *db_models.Post) error
	DeleteById(ctx context.Context, id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db: db,
	}
}

func (r *postRepository) Insert(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) FindById(ctx context.Context, id string) (*db_models.Post, error) {
	var post db_models.Post
	err := r.db.WithContext(ctx).
		Preload("Creator").
		First(&post, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &post, nil
}

func (r *postRepository) ListWithCreators(ctx context.Context) ([]db_models.Post, error) {
	var posts []db_models.Post
	err := r.db.WithContext(ctx).
		Preload("Creator").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) Update(ctx context.Context, post *db_models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) DeleteById(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&db_models.Post{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
