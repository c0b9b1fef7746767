package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospital-backend/internal/delivery/dto"
	"hospital-backend/internal/delivery/http/middleware"
	"hospital-backend/internal/usecase"
	"hospital-backend/pkg/response"
	"hospital-backend/pkg/validator"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validator.CustomValidator
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase, validator *validator.CustomValidator) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
	}
}

// GetAllDoctors lists all doctors with identity fields flattened in
// @Summary List all doctors
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/doctors [get]
func (h *AdminHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	doctors, total, err := h.adminUsecase.ListDoctors(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", doctors, buildMeta(page, limit, total))
}

// GetAllPatients lists all patients with identity fields flattened in
// @Summary List all patients
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/patients [get]
func (h *AdminHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	patients, total, err := h.adminUsecase.ListPatients(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get patients")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", patients, buildMeta(page, limit, total))
}

// GetSettings returns the hospital settings singleton
// @Summary Get settings
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/settings [get]
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.adminUsecase.GetSettings(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrSettingsNotFound:
			response.NotFound(w, "Settings record not found. Please create initial record.")
		default:
			response.InternalServerError(w, "Failed to get settings")
		}
		return
	}

	response.Success(w, http.StatusOK, "Settings retrieved successfully", settings)
}

// UpdateSettings upserts the hospital settings singleton
// @Summary Update settings
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/settings [put]
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	settings, err := h.adminUsecase.UpdateSettings(r.Context(), actorID, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to update settings")
		return
	}

	response.Success(w, http.StatusOK, "Settings updated successfully", settings)
}

// GetAuditLogs lists recorded auth and booking events, newest first
// @Summary List audit logs
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/audit-logs [get]
func (h *AdminHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	logs, total, err := h.adminUsecase.ListAuditLogs(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", logs, buildMeta(page, limit, total))
}

func parsePagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func buildMeta(page, limit int, total int64) *response.Meta {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
