package repository

import (
	"context"

	"hospital-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type DoctorProfileRepository interface {
	Create(ctx context.Context, profile *entity.DoctorProfile) error
	// FindByUserID returns nil when the user has no doctor profile.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAllWithUser(ctx context.Context, offset, limit int) ([]entity.DoctorProfile, int64, error)
}

type PatientProfileRepository interface {
	Create(ctx context.Context, profile *entity.PatientProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error)
	FindAllWithUser(ctx context.Context, offset, limit int) ([]entity.PatientProfile, int64, error)
}

type StaffProfileRepository interface {
	Create(ctx context.Context, profile *entity.StaffProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StaffProfile, error)
}
