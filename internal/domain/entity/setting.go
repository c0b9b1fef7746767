package entity

import "time"

// SettingRowID is the fixed primary key of the settings singleton.
const SettingRowID = 1

// Setting is the single-row hospital configuration record.
type Setting struct {
	ID           int       `gorm:"primaryKey" json:"id"`
	HospitalName string    `gorm:"type:varchar(255)" json:"hospital_name"`
	Address      string    `gorm:"type:text" json:"address,omitempty"`
	ContactEmail string    `gorm:"type:varchar(255)" json:"contact_email,omitempty"`
	ContactPhone string    `gorm:"type:varchar(20)" json:"contact_phone,omitempty"`
	OpeningHours string    `gorm:"type:varchar(100)" json:"opening_hours,omitempty"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}
