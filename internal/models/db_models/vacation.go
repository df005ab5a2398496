package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Vacation struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Note      string
}
