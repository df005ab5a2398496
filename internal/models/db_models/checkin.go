package db_models

import (
	"time"

	"github.com/google/uuid"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusReviewed ReviewStatus = "reviewed"
)

// Review outcome is carried as a tag inside ReviewComments, not as a third
// status value. See ReviewCommentText.
const (
	ReviewTagApproved         = "[APPROVED]"
	ReviewTagNeedsImprovement = "[NEEDS IMPROVEMENT]"
)

type Checkin struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_checkins_user_week"`
	// WeekOf is always the canonical Friday of the reporting week, never the
	// submission timestamp.
	WeekOf            time.Time `gorm:"type:date;not null;uniqueIndex:idx_checkins_user_week"`
	OverallMood       int       `gorm:"not null;check:overall_mood >= 1 AND overall_mood <= 5"`
	Responses         JSONMap   `gorm:"type:jsonb"`
	QuestionSnapshots JSONMap   `gorm:"type:jsonb"`

	ReviewStatus     ReviewStatus `gorm:"type:varchar(16);not null;default:'pending';index"`
	ReviewComments   string
	ReviewedAt       *time.Time
	ReviewerID       *uuid.UUID `gorm:"type:uuid"`
	ResponseComments JSONMap    `gorm:"type:jsonb"`
	ResponseFlags    FlagMap    `gorm:"type:jsonb"`

	SubmittedAt time.Time

	Comments []CheckinComment `gorm:"foreignKey:CheckinID"`
}

type CheckinComment struct {
	BaseModel
	CheckinID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Content   string    `gorm:"type:text;not null"`
}
