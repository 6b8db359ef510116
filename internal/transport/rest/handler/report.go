package handler

import (
	"errors"
	"net/http"

	"careercompass/internal/service"
	"careercompass/internal/transport/rest/middleware"
)

// ReportHandler handles assessment report endpoints
type ReportHandler struct {
	reportSvc *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportSvc *service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// GetReport handles GET /v1/reports/me
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	assessment, err := h.reportSvc.GetAssessment(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoAssessment) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// GetRoles handles GET /v1/reports/me/roles
func (h *ReportHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	roles, err := h.reportSvc.GetRoleRecommendations(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoAssessment) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"roles": roles})
}
