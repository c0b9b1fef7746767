package usecase

import (
	"context"
	"errors"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

type DoctorUsecase interface {
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorProfileResponse, error)
}

type doctorUsecase struct {
	log               *logrus.Logger
	userRepo          repository.UserRepository
	doctorProfileRepo repository.DoctorProfileRepository
}

func NewDoctorUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
) DoctorUsecase {
	return &doctorUsecase{
		log:               log,
		userRepo:          userRepo,
		doctorProfileRepo: doctorProfileRepo,
	}
}

// GetMyProfile returns the caller's identity joined with their doctor profile.
func (u *doctorUsecase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*dto.DoctorProfileResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", userID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := u.doctorProfileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile for %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorProfileNotFound
	}

	return converter.DoctorProfileToResponse(user, profile), nil
}
