package repository

import (
	"context"

	"hospital-backend/internal/domain/entity"
)

type SettingRepository interface {
	// Get returns nil when the singleton row has not been created yet.
	Get(ctx context.Context) (*entity.Setting, error)
	Upsert(ctx context.Context, setting *entity.Setting) error
}
