package service

import (
	"context"
	"errors"
	"strconv"

	"school-api/internal/model"
	"school-api/pkg/apierror"
)

const (
	DefaultStudentLimit = 50
	MaxStudentLimit     = 1000
)

type SchoolStore interface {
	ListStudents(ctx context.Context, limit int) ([]model.Student, error)
	ListTeachers(ctx context.Context) ([]model.Teacher, error)
	ListActiveGroups(ctx context.Context) ([]model.Group, error)
	DashboardStats(ctx context.Context) (model.DashboardStats, error)
}

type SchoolService struct {
	store SchoolStore
}

func NewSchoolService(store SchoolStore) (*SchoolService, error) {
	if store == nil {
		return nil, errors.New("school service requires a store")
	}
	return &SchoolService{store: store}, nil
}

func (s *SchoolService) ListStudents(ctx context.Context, limit int) ([]model.Student, error) {
	if limit < 1 || limit > MaxStudentLimit {
		return nil, apierror.BadRequest("limit must be between 1 and "+strconv.Itoa(MaxStudentLimit), strconv.Itoa(limit))
	}

	return s.store.ListStudents(ctx, limit)
}

func (s *SchoolService) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	return s.store.ListTeachers(ctx)
}

func (s *SchoolService) ListGroups(ctx context.Context) ([]model.Group, error) {
	return s.store.ListActiveGroups(ctx)
}

func (s *SchoolService) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	return s.store.DashboardStats(ctx)
}
