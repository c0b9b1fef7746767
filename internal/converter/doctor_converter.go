package converter

import (
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
)

// DoctorProfileToResponse joins an identity with its doctor profile.
func DoctorProfileToResponse(user *entity.User, profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if user == nil || profile == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		UserID:         user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role.String(),
		Specialization: profile.Specialization,
		LicenseNumber:  profile.LicenseNumber,
		Bio:            profile.Bio,
	}
}
