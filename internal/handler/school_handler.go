package handler

import (
	"context"
	"net/http"

	"school-api/internal/model"
	"school-api/internal/service"
	"school-api/pkg/apierror"
)

type schoolReader interface {
	ListStudents(ctx context.Context, limit int) ([]model.Student, error)
	ListTeachers(ctx context.Context) ([]model.Teacher, error)
	ListGroups(ctx context.Context) ([]model.Group, error)
	DashboardStats(ctx context.Context) (model.DashboardStats, error)
}

type SchoolHandler struct {
	service schoolReader
}

func NewSchoolHandler(service schoolReader) *SchoolHandler {
	return &SchoolHandler{service: service}
}

func (h *SchoolHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.DashboardStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, stats)
}

func (h *SchoolHandler) Students(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("limit")
	limit, ok := parseIntOrDefault(raw, service.DefaultStudentLimit)
	if !ok {
		writeError(w, apierror.BadRequest("limit must be an integer", raw))
		return
	}

	students, err := h.service.ListStudents(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, students)
}

func (h *SchoolHandler) Teachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.service.ListTeachers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teachers)
}

func (h *SchoolHandler) Groups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.service.ListGroups(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, groups)
}
