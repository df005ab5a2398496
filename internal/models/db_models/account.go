package db_models

import "github.com/google/uuid"

const (
	RoleMember     = "member"
	RoleManager    = "manager"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

type Account struct {
	BaseModel
	OrgID        uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string     `gorm:"type:varchar(16);not null;default:'member'"`
	ManagerID    *uuid.UUID `gorm:"type:uuid;index"`

	Checkins []Checkin `gorm:"foreignKey:UserID"`
}
