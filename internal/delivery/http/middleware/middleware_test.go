package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-backend/config"
	"hospital-backend/internal/domain/entity"
	"hospital-backend/pkg/jwt"

	"github.com/google/uuid"
)

func newTestAuthMiddleware() (*AuthMiddleware, *jwt.JWTService) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-signing-secret"})
	return NewAuthMiddleware(jwtService), jwtService
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateRejections(t *testing.T) {
	middleware, _ := newTestAuthMiddleware()

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc123"},
		{"missing token", "Bearer"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			middleware.Authenticate(okHandler()).ServeHTTP(recorder, req)

			if recorder.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", recorder.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	middleware, jwtService := newTestAuthMiddleware()
	userID := uuid.New()

	token, err := jwtService.Generate(userID, entity.RoleDoctor)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var gotUserID uuid.UUID
	var gotRole entity.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserIDFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	middleware.Authenticate(next).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusOK)
	}
	if gotUserID != userID {
		t.Errorf("context user id = %s, want %s", gotUserID, userID)
	}
	if gotRole != entity.RoleDoctor {
		t.Errorf("context role = %q, want %q", gotRole, entity.RoleDoctor)
	}
}

func requestWithRole(role entity.Role) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin/doctors", nil)
	ctx := context.WithValue(req.Context(), UserIDKey, uuid.New())
	ctx = context.WithValue(ctx, RoleKey, role)
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       entity.Role
		wantStatus int
	}{
		{"admin allowed", entity.RoleAdmin, http.StatusOK},
		{"legacy casing allowed", entity.Role("Admin"), http.StatusOK},
		{"patient forbidden", entity.RolePatient, http.StatusForbidden},
		{"doctor forbidden", entity.RoleDoctor, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			RequireAdmin(okHandler()).ServeHTTP(recorder, requestWithRole(tt.role))

			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireRoleWithoutAuthentication(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/doctors", nil)
	recorder := httptest.NewRecorder()

	RequireAdmin(okHandler()).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusUnauthorized)
	}
}

func TestRequireRoleMultiple(t *testing.T) {
	handler := RequireRole(entity.RoleAdmin, entity.RoleStaff)(okHandler())

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, requestWithRole(entity.RoleStaff))
	if recorder.Code != http.StatusOK {
		t.Errorf("staff status = %d, want %d", recorder.Code, http.StatusOK)
	}

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, requestWithRole(entity.RolePatient))
	if recorder.Code != http.StatusForbidden {
		t.Errorf("patient status = %d, want %d", recorder.Code, http.StatusForbidden)
	}
}
