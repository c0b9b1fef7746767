package repository

import (
	"context"

	"hospital-backend/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, offset, limit int) ([]entity.AuditLog, int64, error)
}
