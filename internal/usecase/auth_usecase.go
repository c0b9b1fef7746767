package usecase

import (
	"context"
	"errors"
	"strings"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/internal/domain/repository"
	"hospital-backend/internal/service"
	"hospital-backend/pkg/jwt"
	"hospital-backend/pkg/password"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so login failures never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrPartialRegistration means the user row was created but the role
	// profile was not, and the compensating cleanup also failed.
	ErrPartialRegistration = errors.New("registration left incomplete")
	ErrUnknownRole         = errors.New("unknown role")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authUsecase struct {
	log                *logrus.Logger
	userRepo           repository.UserRepository
	doctorProfileRepo  repository.DoctorProfileRepository
	patientProfileRepo repository.PatientProfileRepository
	staffProfileRepo   repository.StaffProfileRepository
	jwtService         *jwt.JWTService
	auditService       service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorProfileRepo repository.DoctorProfileRepository,
	patientProfileRepo repository.PatientProfileRepository,
	staffProfileRepo repository.StaffProfileRepository,
	jwtService *jwt.JWTService,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:                log,
		userRepo:           userRepo,
		doctorProfileRepo:  doctorProfileRepo,
		patientProfileRepo: patientProfileRepo,
		staffProfileRepo:   staffProfileRepo,
		jwtService:         jwtService,
		auditService:       auditService,
	}
}

// Register creates the identity and its role profile as one logical unit:
// if the profile insert fails, the just-created user row is deleted before
// the error surfaces.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role, err := entity.ParseRole(req.Role)
	if err != nil {
		return nil, ErrUnknownRole
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:     req.Name,
		Email:    email,
		Password: hashed,
		Role:     role,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.createRoleProfile(ctx, user, req); err != nil {
		u.log.Warnf("Failed to create %s profile for %s, compensating: %+v", role, user.ID, err)
		if deleteErr := u.userRepo.Delete(ctx, user.ID); deleteErr != nil {
			u.log.Errorf("Failed to delete user %s after profile failure, orphan row remains: %+v", user.ID, deleteErr)
			return nil, ErrPartialRegistration
		}
		return nil, err
	}

	u.auditService.Record(ctx, &user.ID, entity.AuditActionUserRegister, entity.JSON{
		"email": user.Email,
		"role":  role.String(),
	})

	token, err := u.jwtService.Generate(user.ID, role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		Role:  role.String(),
	}, nil
}

// createRoleProfile dispatches over the closed role set. Admin accounts are
// identity-only.
func (u *authUsecase) createRoleProfile(ctx context.Context, user *entity.User, req *dto.RegisterRequest) error {
	switch user.Role {
	case entity.RolePatient:
		return u.patientProfileRepo.Create(ctx, &entity.PatientProfile{
			UserID:      user.ID,
			BloodGroup:  req.BloodGroup,
			Age:         req.Age,
			City:        req.City,
			PhoneNumber: req.PhoneNumber,
		})
	case entity.RoleDoctor:
		return u.doctorProfileRepo.Create(ctx, &entity.DoctorProfile{
			UserID:         user.ID,
			Specialization: req.Specialization,
			LicenseNumber:  req.LicenseNumber,
		})
	case entity.RoleStaff:
		designation := req.Designation
		if designation == "" {
			designation = entity.DefaultDesignation
		}
		return u.staffProfileRepo.Create(ctx, &entity.StaffProfile{
			UserID:      user.ID,
			Designation: designation,
		})
	case entity.RoleAdmin:
		return nil
	}
	return ErrUnknownRole
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := u.jwtService.Generate(user.ID, user.Role)
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &user.ID, entity.AuditActionUserLogin, entity.JSON{
		"email": user.Email,
		"role":  user.Role.String(),
	})

	return &dto.AuthResponse{
		Token: token,
		Role:  user.Role.String(),
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
