package db_models

type OrgStatus string

const (
	OrgStatusActive    OrgStatus = "active"
	OrgStatusSuspended OrgStatus = "suspended"
)

type Organization struct {
	BaseModel
	Name   string    `gorm:"not null"`
	Slug   string    `gorm:"uniqueIndex;not null"`
	Status OrgStatus `gorm:"type:varchar(16);not null;default:'active'"`

	Accounts []Account `gorm:"foreignKey:OrgID"`
}
