package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"hospital-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// In-memory repository fakes shared by the usecase tests.

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	createErr error
	deleteErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return errors.New("duplicate key value violates unique constraint \"idx_users_email\"")
		}
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type fakeDoctorProfileRepo struct {
	mu        sync.Mutex
	profiles  map[uuid.UUID]*entity.DoctorProfile
	createErr error
}

func newFakeDoctorProfileRepo() *fakeDoctorProfileRepo {
	return &fakeDoctorProfileRepo{profiles: map[uuid.UUID]*entity.DoctorProfile{}}
}

func (r *fakeDoctorProfileRepo) Create(ctx context.Context, profile *entity.DoctorProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakeDoctorProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeDoctorProfileRepo) FindAllWithUser(ctx context.Context, offset, limit int) ([]entity.DoctorProfile, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]entity.DoctorProfile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		all = append(all, *profile)
	}
	return all, int64(len(all)), nil
}

type fakePatientProfileRepo struct {
	mu        sync.Mutex
	profiles  map[uuid.UUID]*entity.PatientProfile
	createErr error
}

func newFakePatientProfileRepo() *fakePatientProfileRepo {
	return &fakePatientProfileRepo{profiles: map[uuid.UUID]*entity.PatientProfile{}}
}

func (r *fakePatientProfileRepo) Create(ctx context.Context, profile *entity.PatientProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakePatientProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PatientProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (r *fakePatientProfileRepo) FindAllWithUser(ctx context.Context, offset, limit int) ([]entity.PatientProfile, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]entity.PatientProfile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		all = append(all, *profile)
	}
	return all, int64(len(all)), nil
}

type fakeStaffProfileRepo struct {
	mu        sync.Mutex
	profiles  map[uuid.UUID]*entity.StaffProfile
	createErr error
}

func newFakeStaffProfileRepo() *fakeStaffProfileRepo {
	return &fakeStaffProfileRepo{profiles: map[uuid.UUID]*entity.StaffProfile{}}
}

func (r *fakeStaffProfileRepo) Create(ctx context.Context, profile *entity.StaffProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakeStaffProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.StaffProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	appointments []entity.Appointment
	createErr    error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	r.appointments = append(r.appointments, *appointment)
	return nil
}

func (r *fakeAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.DoctorID == doctorID {
			result = append(result, appointment)
		}
	}
	return result, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []entity.Appointment
	for _, appointment := range r.appointments {
		if appointment.PatientID == patientID {
			result = append(result, appointment)
		}
	}
	return result, nil
}

type fakeSettingRepo struct {
	mu        sync.Mutex
	setting   *entity.Setting
	upsertErr error
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{}
}

func (r *fakeSettingRepo) Get(ctx context.Context) (*entity.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.setting == nil {
		return nil, nil
	}
	copied := *r.setting
	return &copied, nil
}

func (r *fakeSettingRepo) Upsert(ctx context.Context, setting *entity.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.upsertErr != nil {
		return r.upsertErr
	}
	copied := *setting
	r.setting = &copied
	return nil
}

type fakeAuditLogRepo struct {
	mu   sync.Mutex
	logs []entity.AuditLog
}

func newFakeAuditLogRepo() *fakeAuditLogRepo {
	return &fakeAuditLogRepo{}
}

func (r *fakeAuditLogRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.ID = int64(len(r.logs) + 1)
	r.logs = append(r.logs, *log)
	return nil
}

func (r *fakeAuditLogRepo) FindAll(ctx context.Context, offset, limit int) ([]entity.AuditLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := int64(len(r.logs))
	if offset >= len(r.logs) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(r.logs) {
		end = len(r.logs)
	}
	return append([]entity.AuditLog(nil), r.logs[offset:end]...), total, nil
}

func (r *fakeAuditLogRepo) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]string, 0, len(r.logs))
	for _, log := range r.logs {
		result = append(result, log.Action)
	}
	return result
}
