package db_models

type Badge string

const (
	BadgeLvl0 Badge = "lvl0"
	BadgeLvl1 Badge = "lvl1"
	BadgeLvl2 Badge = "lvl2"
	BadgeLvl3 Badge = "lvl3"
)

func (b Badge) Valid() bool {
	switch b {
	case BadgeLvl0, BadgeLvl1, BadgeLvl2, BadgeLvl3:
		return true
	}
	return false
}

type Tourist struct {
	BaseModel
	Name            string
	Email           string `gorm:"uniqueIndex"`
	PasswordHash    string
	Badge           Badge `gorm:"size:8;default:lvl0"`
	Bio             *string
	ProfileImage    *string
	BackgroundImage *string

	Posts             []Post             `gorm:"foreignKey:CreatedBy"`
	EmergencyContacts []EmergencyContact `gorm:"foreignKey:CreatedBy"`
}
