package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"school-api/internal/model"
)

type mockCredentialStore struct {
	mock.Mock
}

func (m *mockCredentialStore) FindActiveByUsername(ctx context.Context, username string) (model.Credential, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.Credential), args.Error(1)
}

func (m *mockCredentialStore) FindByUsername(ctx context.Context, username string) (model.Credential, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.Credential), args.Error(1)
}

type mockSchoolStore struct {
	mock.Mock
}

func (m *mockSchoolStore) ListStudents(ctx context.Context, limit int) ([]model.Student, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Student), args.Error(1)
}

func (m *mockSchoolStore) ListTeachers(ctx context.Context) ([]model.Teacher, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Teacher), args.Error(1)
}

func (m *mockSchoolStore) ListActiveGroups(ctx context.Context) ([]model.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Group), args.Error(1)
}

func (m *mockSchoolStore) DashboardStats(ctx context.Context) (model.DashboardStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.DashboardStats), args.Error(1)
}
