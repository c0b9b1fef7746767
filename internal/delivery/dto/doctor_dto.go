package dto

import "github.com/google/uuid"

type DoctorProfileResponse struct {
	UserID         uuid.UUID `json:"user_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	Specialization string    `json:"specialization,omitempty"`
	LicenseNumber  string    `json:"license_number,omitempty"`
	Bio            string    `json:"bio,omitempty"`
}
