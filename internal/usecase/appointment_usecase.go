package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-backend/internal/converter"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrDoctorProfileNotFound means the authenticated caller has no doctor
	// profile of their own.
	ErrDoctorProfileNotFound = errors.New("doctor profile not found")
	ErrInvalidDate           = errors.New("invalid date format, use YYYY-MM-DD")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListForDoctor(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListForPatient(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log               *logrus.Logger
	appointmentRepo   repository.AppointmentRepository
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:               log,
		appointmentRepo:   appointmentRepo,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
	}
}

// Book persists a new appointment with status Scheduled. The patient id is
// always the authenticated caller's; a patient cannot book on behalf of
// another identity.
func (u *appointmentUsecase) Book(ctx context.Context, patientID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	doctor, err := u.doctorProfileRepo.FindByUserID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to look up doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &patientID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor_id":      doctorID.String(),
		"date":           req.AppointmentDate,
		"time":           req.AppointmentTime,
	})

	return converter.AppointmentToResponse(appointment), nil
}

// ListForDoctor returns the caller's own schedule. The doctor id is derived
// from the caller's profile, never from client input, so one doctor cannot
// enumerate another's appointments.
func (u *appointmentUsecase) ListForDoctor(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error) {
	profile, err := u.doctorProfileRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to look up doctor profile for %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorProfileNotFound
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, profile.UserID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s: %+v", profile.UserID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// ListForPatient returns the caller's own appointments.
func (u *appointmentUsecase) ListForPatient(ctx context.Context, userID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", userID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
