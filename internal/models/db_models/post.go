package db_models

import "github.com/google/uuid"

type Post struct {
	BaseModel
	CreatedBy uuid.UUID
	Title     string
	Content   string
	LocLink   string
	ImageURL  *string

	Creator *Tourist `gorm:"foreignKey:CreatedBy"`
}
