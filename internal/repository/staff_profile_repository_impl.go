package repository

import (
	"context"
	"errors"

	"hospital-backend/internal/domain/entity"
	domainRepo "hospital-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type staffProfileRepository struct {
	db *gorm.DB
}

func NewStaffProfileRepository(db *gorm.DB) domainRepo.StaffProfileRepository {
	return &staffProfileRepository{db: db}
}

func (r *staffProfileRepository) Create(ctx context.Context, profile *entity.StaffProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *staffProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StaffProfile, error) {
	var profile entity.StaffProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
