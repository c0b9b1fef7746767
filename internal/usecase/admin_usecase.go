package usecase

import (
	"context"
	"errors"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrSettingsNotFound means the settings singleton row has not been created.
// Surfaced as an explicit not-found, never an unhandled failure.
var ErrSettingsNotFound = errors.New("settings record not found")

type AdminUsecase interface {
	ListDoctors(ctx context.Context, page, limit int) ([]dto.AdminDoctorResponse, int64, error)
	ListPatients(ctx context.Context, page, limit int) ([]dto.AdminPatientResponse, int64, error)
	GetSettings(ctx context.Context) (*entity.Setting, error)
	UpdateSettings(ctx context.Context, actorID uuid.UUID, req *dto.UpdateSettingsRequest) (*entity.Setting, error)
	ListAuditLogs(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, int64, error)
}

type adminUsecase struct {
	log                *logrus.Logger
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	settingRepo        repository.SettingRepository
	auditLogRepo       repository.AuditLogRepository
	auditService       service.AuditService
	cacheService       *service.CacheService
}

func NewAdminUsecase(
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	settingRepo repository.SettingRepository,
	auditLogRepo repository.AuditLogRepository,
	auditService service.AuditService,
	cacheService *service.CacheService,
) AdminUsecase {
	return &adminUsecase{
		log:                log,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		settingRepo:        settingRepo,
		auditLogRepo:       auditLogRepo,
		auditService:       auditService,
		cacheService:       cacheService,
	}
}

func (u *adminUsecase) ListDoctors(ctx context.Context, page, limit int) ([]dto.AdminDoctorResponse, int64, error) {
	offset := (page - 1) * limit
	profiles, total, err := u.doctorProfileRepo.FindAllWithUser(ctx, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, 0, err
	}
	return converter.DoctorProfilesToAdminResponses(profiles), total, nil
}

func (u *adminUsecase) ListPatients(ctx context.Context, page, limit int) ([]dto.AdminPatientResponse, int64, error) {
	offset := (page - 1) * limit
	profiles, total, err := u.patientProfileRepo.FindAllWithUser(ctx, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, 0, err
	}
	return converter.PatientProfilesToAdminResponses(profiles), total, nil
}

// GetSettings reads through the redis cache; the database is the source of
// truth on any miss.
func (u *adminUsecase) GetSettings(ctx context.Context) (*entity.Setting, error) {
	if u.cacheService != nil {
		if cached := u.cacheService.GetSettings(ctx); cached != nil {
			return cached, nil
		}
	}

	setting, err := u.settingRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to load settings: %+v", err)
		return nil, err
	}
	if setting == nil {
		return nil, ErrSettingsNotFound
	}

	if u.cacheService != nil {
		u.cacheService.SetSettings(ctx, setting)
	}
	return setting, nil
}

func (u *adminUsecase) UpdateSettings(ctx context.Context, actorID uuid.UUID, req *dto.UpdateSettingsRequest) (*entity.Setting, error) {
	setting := &entity.Setting{
		HospitalName: req.HospitalName,
		Address:      req.Address,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		OpeningHours: req.OpeningHours,
	}

	if err := u.settingRepo.Upsert(ctx, setting); err != nil {
		u.log.Warnf("Failed to upsert settings: %+v", err)
		return nil, err
	}

	if u.cacheService != nil {
		u.cacheService.InvalidateSettings(ctx)
	}

	u.auditService.Record(ctx, &actorID, entity.AuditActionSettingsUpdate, entity.JSON{
		"hospital_name": req.HospitalName,
	})

	return setting, nil
}

func (u *adminUsecase) ListAuditLogs(ctx context.Context, page, limit int) ([]dto.AuditLogResponse, int64, error) {
	offset := (page - 1) * limit
	logs, total, err := u.auditLogRepo.FindAll(ctx, offset, limit)
	if err != nil {
		u.log.Warnf("Failed to list audit logs: %+v", err)
		return nil, 0, err
	}
	return converter.AuditLogsToResponses(logs), total, nil
}
