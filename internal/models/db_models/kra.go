package db_models

import (
	"time"

	"github.com/google/uuid"
)

type KRAAssignmentStatus string

const (
	KRAStatusAssigned   KRAAssignmentStatus = "assigned"
	KRAStatusInProgress KRAAssignmentStatus = "in_progress"
	KRAStatusCompleted  KRAAssignmentStatus = "completed"
)

type KRATemplate struct {
	BaseModel
	OrgID       uuid.UUID   `gorm:"type:uuid;index"`
	Title       string      `gorm:"not null"`
	Description string      `gorm:"type:text"`
	Items       KRAItemList `gorm:"type:jsonb"`
	CreatedBy   uuid.UUID   `gorm:"type:uuid"`

	Assignments []KRAAssignment `gorm:"foreignKey:TemplateID"`
}

type KRAAssignment struct {
	BaseModel
	TemplateID uuid.UUID           `gorm:"type:uuid;not null;index"`
	UserID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	AssignedBy uuid.UUID           `gorm:"type:uuid"`
	DueDate    *time.Time          `gorm:"type:date"`
	Status     KRAAssignmentStatus `gorm:"type:varchar(16);not null;default:'assigned'"`
}
