package entity

import "github.com/google/uuid"

// DefaultDesignation is assigned when a staff account registers without one.
const DefaultDesignation = "Unassigned"

// StaffProfile represents staff-specific profile data
type StaffProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Designation string    `gorm:"type:varchar(100);not null;default:'Unassigned'" json:"designation"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (StaffProfile) TableName() string {
	return "staff_profiles"
}
