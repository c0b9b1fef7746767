package dto

// Request DTOs

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=5"`
	Role     string `json:"role" validate:"required,oneof=patient doctor staff admin"`

	// Role-specific optional fields
	Designation    string `json:"designation" validate:"omitempty,max=100"`    // staff
	Specialization string `json:"specialization" validate:"omitempty,max=100"` // doctor
	LicenseNumber  string `json:"license_number" validate:"omitempty,max=50"`  // doctor
	BloodGroup     string `json:"blood_group" validate:"omitempty,max=5"`      // patient
	Age            int    `json:"age" validate:"omitempty,gte=0,lte=150"`      // patient
	City           string `json:"city" validate:"omitempty,max=100"`           // patient
	PhoneNumber    string `json:"phone_number" validate:"omitempty,max=20"`    // patient
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type AuthResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
