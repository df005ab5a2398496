package db_models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotifyCheckinReminder NotificationKind = "checkin_reminder"
	NotifyCheckinReviewed NotificationKind = "checkin_reviewed"
	NotifyNewComment      NotificationKind = "new_comment"
	NotifyNewWin          NotificationKind = "new_win"
	NotifyKRAAssigned     NotificationKind = "kra_assigned"
)

// NotificationPreference is an explicit toggle matrix rather than an
// open-ended map, so every kind/channel pair is a named column.
type NotificationPreference struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	CheckinReminderEmail bool `gorm:"not null;default:true"`
	CheckinReminderInApp bool `gorm:"not null;default:true"`
	CheckinReviewedEmail bool `gorm:"not null;default:true"`
	CheckinReviewedInApp bool `gorm:"not null;default:true"`
	NewCommentEmail      bool `gorm:"not null;default:false"`
	NewCommentInApp      bool `gorm:"not null;default:true"`
	NewWinEmail          bool `gorm:"not null;default:false"`
	NewWinInApp          bool `gorm:"not null;default:true"`
	KRAAssignedEmail     bool `gorm:"not null;default:true"`
	KRAAssignedInApp     bool `gorm:"not null;default:true"`
}

// Allows reports whether the given kind may be delivered on a channel.
func (p *NotificationPreference) Allows(kind NotificationKind, email bool) bool {
	switch kind {
	case NotifyCheckinReminder:
		if email {
			return p.CheckinReminderEmail
		}
		return p.CheckinReminderInApp
	case NotifyCheckinReviewed:
		if email {
			return p.CheckinReviewedEmail
		}
		return p.CheckinReviewedInApp
	case NotifyNewComment:
		if email {
			return p.NewCommentEmail
		}
		return p.NewCommentInApp
	case NotifyNewWin:
		if email {
			return p.NewWinEmail
		}
		return p.NewWinInApp
	case NotifyKRAAssigned:
		if email {
			return p.KRAAssignedEmail
		}
		return p.KRAAssignedInApp
	default:
		return false
	}
}

type Notification struct {
	BaseModel
	UserID uuid.UUID        `gorm:"type:uuid;not null;index"`
	Kind   NotificationKind `gorm:"type:varchar(32);not null"`
	Title  string           `gorm:"not null"`
	Body   string           `gorm:"type:text"`
	ReadAt *time.Time
}
