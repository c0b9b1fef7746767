package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-backend/config"
	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/jwt"
)

type authFixture struct {
	users    *fakeUserRepo
	doctors  *fakeDoctorProfileRepo
	patients *fakePatientProfileRepo
	staff    *fakeStaffProfileRepo
	audit    *fakeAuditLogRepo
	jwt      *jwt.JWTService
	usecase  AuthUsecase
}

func newAuthFixture() *authFixture {
	log := testLogger()
	f := &authFixture{
		users:    newFakeUserRepo(),
		doctors:  newFakeDoctorProfileRepo(),
		patients: newFakePatientProfileRepo(),
		staff:    newFakeStaffProfileRepo(),
		audit:    newFakeAuditLogRepo(),
		jwt:      jwt.NewJWTService(config.JWTConfig{Secret: "test-signing-secret"}),
	}
	f.usecase = NewAuthUsecase(
		log,
		f.users,
		f.doctors,
		f.patients,
		f.staff,
		f.jwt,
		service.NewAuditService(log, f.audit),
	)
	return f
}

func registerRequest(role string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@x.com",
		Password: "pw123",
		Role:     role,
	}
}

func TestRegisterThenLogin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	registered, err := f.usecase.Register(ctx, registerRequest("patient"))
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if registered.Role != "patient" {
		t.Errorf("Register() role = %q, want %q", registered.Role, "patient")
	}
	if registered.Token == "" {
		t.Fatal("Register() returned empty token")
	}

	loggedIn, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: "asha@x.com", Password: "pw123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	claims, err := f.jwt.Validate(loggedIn.Token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.Role != entity.RolePatient {
		t.Errorf("token role = %q, want %q", claims.Role, entity.RolePatient)
	}

	user, err := f.users.FindByEmail(ctx, "asha@x.com")
	if err != nil || user == nil {
		t.Fatalf("FindByEmail() = %v, %v", user, err)
	}
	if claims.UserID != user.ID {
		t.Errorf("token subject = %s, want %s", claims.UserID, user.ID)
	}
	if user.Password == "pw123" {
		t.Error("password stored in plaintext")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.usecase.Register(ctx, registerRequest("patient")); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	// Same email with different casing must still collide.
	req := registerRequest("doctor")
	req.Email = "ASHA@X.COM"
	_, err := f.usecase.Register(ctx, req)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("Register() error = %v, want ErrEmailAlreadyExists", err)
	}

	if f.users.count() != 1 {
		t.Errorf("user count = %d after duplicate registration, want 1", f.users.count())
	}
}

func TestRegisterCreatesRoleProfile(t *testing.T) {
	tests := []struct {
		name string
		role string
	}{
		{"patient", "patient"},
		{"doctor", "doctor"},
		{"staff", "staff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture()
			ctx := context.Background()

			if _, err := f.usecase.Register(ctx, registerRequest(tt.role)); err != nil {
				t.Fatalf("Register() error = %v", err)
			}

			user, _ := f.users.FindByEmail(ctx, "asha@x.com")
			if user == nil {
				t.Fatal("user not created")
			}

			switch tt.role {
			case "patient":
				if profile, _ := f.patients.FindByUserID(ctx, user.ID); profile == nil {
					t.Error("patient profile not created")
				}
			case "doctor":
				if profile, _ := f.doctors.FindByUserID(ctx, user.ID); profile == nil {
					t.Error("doctor profile not created")
				}
			case "staff":
				if profile, _ := f.staff.FindByUserID(ctx, user.ID); profile == nil {
					t.Error("staff profile not created")
				}
			}
		})
	}
}

func TestRegisterAdminHasNoProfile(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.usecase.Register(ctx, registerRequest("admin")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, _ := f.users.FindByEmail(ctx, "asha@x.com")
	if profile, _ := f.patients.FindByUserID(ctx, user.ID); profile != nil {
		t.Error("admin should not own a patient profile")
	}
	if profile, _ := f.doctors.FindByUserID(ctx, user.ID); profile != nil {
		t.Error("admin should not own a doctor profile")
	}
	if profile, _ := f.staff.FindByUserID(ctx, user.ID); profile != nil {
		t.Error("admin should not own a staff profile")
	}
}

func TestRegisterStaffDefaultDesignation(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.usecase.Register(ctx, registerRequest("staff")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, _ := f.users.FindByEmail(ctx, "asha@x.com")
	profile, _ := f.staff.FindByUserID(ctx, user.ID)
	if profile == nil {
		t.Fatal("staff profile not created")
	}
	if profile.Designation != entity.DefaultDesignation {
		t.Errorf("designation = %q, want %q", profile.Designation, entity.DefaultDesignation)
	}
}

func TestRegisterNormalizesRoleAndEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	req := registerRequest("Patient")
	req.Email = "Asha@X.com"
	if _, err := f.usecase.Register(ctx, req); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	user, _ := f.users.FindByEmail(ctx, "asha@x.com")
	if user == nil {
		t.Fatal("user not found by lowercased email")
	}
	if user.Email != "asha@x.com" {
		t.Errorf("stored email = %q, want lowercase", user.Email)
	}
	if user.Role != entity.RolePatient {
		t.Errorf("stored role = %q, want %q", user.Role, entity.RolePatient)
	}
}

func TestRegisterUnknownRole(t *testing.T) {
	f := newAuthFixture()

	_, err := f.usecase.Register(context.Background(), registerRequest("superuser"))
	if !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("Register() error = %v, want ErrUnknownRole", err)
	}
	if f.users.count() != 0 {
		t.Error("no user row should exist after a rejected role")
	}
}

func TestRegisterCompensatesOnProfileFailure(t *testing.T) {
	f := newAuthFixture()
	f.patients.createErr = errors.New("profile insert failed")

	_, err := f.usecase.Register(context.Background(), registerRequest("patient"))
	if err == nil {
		t.Fatal("Register() should fail when profile creation fails")
	}
	if errors.Is(err, ErrPartialRegistration) {
		t.Fatal("compensation succeeded, error should be the profile failure")
	}
	if f.users.count() != 0 {
		t.Errorf("user count = %d after compensation, want 0 (no orphan rows)", f.users.count())
	}
}

func TestRegisterPartialWhenCompensationFails(t *testing.T) {
	f := newAuthFixture()
	f.patients.createErr = errors.New("profile insert failed")
	f.users.deleteErr = errors.New("delete failed")

	_, err := f.usecase.Register(context.Background(), registerRequest("patient"))
	if !errors.Is(err, ErrPartialRegistration) {
		t.Fatalf("Register() error = %v, want ErrPartialRegistration", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.usecase.Register(ctx, registerRequest("patient")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown email", "nobody@x.com", "pw123"},
		{"wrong password", "asha@x.com", "wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: tt.email, Password: tt.password})
			// Unknown email and wrong password must be indistinguishable.
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestAuthEventsAreAudited(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	if _, err := f.usecase.Register(ctx, registerRequest("patient")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := f.usecase.Login(ctx, &dto.LoginRequest{Email: "asha@x.com", Password: "pw123"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	actions := f.audit.actions()
	if len(actions) != 2 || actions[0] != entity.AuditActionUserRegister || actions[1] != entity.AuditActionUserLogin {
		t.Errorf("audit actions = %v, want [user.register user.login]", actions)
	}
}
