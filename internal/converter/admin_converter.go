package converter

import (
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
)

// DoctorProfilesToAdminResponses flattens doctor profiles joined with their
// identity rows into the admin listing shape.
func DoctorProfilesToAdminResponses(profiles []entity.DoctorProfile) []dto.AdminDoctorResponse {
	responses := make([]dto.AdminDoctorResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, dto.AdminDoctorResponse{
			ID:             profile.UserID,
			Name:           profile.User.Name,
			Email:          profile.User.Email,
			Specialization: profile.Specialization,
			LicenseNumber:  profile.LicenseNumber,
		})
	}
	return responses
}

// PatientProfilesToAdminResponses flattens patient profiles joined with
// their identity rows into the admin listing shape.
func PatientProfilesToAdminResponses(profiles []entity.PatientProfile) []dto.AdminPatientResponse {
	responses := make([]dto.AdminPatientResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, dto.AdminPatientResponse{
			ID:         profile.UserID,
			Name:       profile.User.Name,
			Email:      profile.User.Email,
			Age:        profile.Age,
			BloodGroup: profile.BloodGroup,
			City:       profile.City,
		})
	}
	return responses
}

// AuditLogsToResponses converts audit log rows for the admin listing.
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, 0, len(logs))
	for _, log := range logs {
		response := dto.AuditLogResponse{
			ID:        log.ID,
			UserID:    log.UserID,
			Action:    log.Action,
			Metadata:  log.Metadata,
			CreatedAt: log.CreatedAt,
		}
		if log.User != nil {
			response.UserName = log.User.Name
		}
		responses = append(responses, response)
	}
	return responses
}
