package db_models

import "github.com/google/uuid"

type Question struct {
	BaseModel
	OrgID     uuid.UUID `gorm:"type:uuid;index"`
	Text      string    `gorm:"type:text;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedBy uuid.UUID `gorm:"type:uuid"`
}
