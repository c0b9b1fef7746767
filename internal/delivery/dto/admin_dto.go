package dto

import (
	"time"

	"github.com/google/uuid"
)

// Flattened identity + role-profile records for the admin listings.

type AdminDoctorResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Specialization string    `json:"specialization,omitempty"`
	LicenseNumber  string    `json:"license_number,omitempty"`
}

type AdminPatientResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Age        int       `json:"age,omitempty"`
	BloodGroup string    `json:"blood_group,omitempty"`
	City       string    `json:"city,omitempty"`
}

type UpdateSettingsRequest struct {
	HospitalName string `json:"hospital_name" validate:"required,max=255"`
	Address      string `json:"address" validate:"omitempty,max=1000"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"omitempty,max=20"`
	OpeningHours string `json:"opening_hours" validate:"omitempty,max=100"`
}

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	UserID    *uuid.UUID             `json:"user_id,omitempty"`
	UserName  string                 `json:"user_name,omitempty"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
