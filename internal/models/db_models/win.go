package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Win struct {
	BaseModel
	OrgID       uuid.UUID      `gorm:"type:uuid;index"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;not null"`
	RecipientID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Content     string         `gorm:"type:text;not null"`
	Category    string         `gorm:"type:varchar(32)"`
	Tags        pq.StringArray `gorm:"type:text[]"`

	Reactions []WinReaction `gorm:"foreignKey:WinID"`
}

type WinReaction struct {
	BaseModel
	WinID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_win_reactions_unique"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_win_reactions_unique"`
	Emoji  string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_win_reactions_unique"`
}
