package db_models

import "github.com/google/uuid"

type EmergencyContact struct {
	BaseModel
	CreatedBy uuid.UUID
	Name      string
	Phno      string
	Loc       string
	Latitude  float64
	Longitude float64
	Link      *string

	Creator *Tourist `gorm:"foreignKey:CreatedBy"`
}
