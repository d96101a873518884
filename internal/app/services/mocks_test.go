package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/schoolregistry/internal/app/models"
	"github.com/yigit/schoolregistry/internal/app/repositories"
)

// MockStudentStore is a testify mock of StudentStore
type MockStudentStore struct {
	mock.Mock
}

func (m *MockStudentStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Student), args.Error(1)
}

func (m *MockStudentStore) GetByUniqueIdentifier(ctx context.Context, column repositories.StudentColumn, value string) (*models.Student, error) {
	args := m.Called(ctx, column, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentStore) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	args := m.Called(ctx, student)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentStore) DeleteByUniqueIdentifier(ctx context.Context, column repositories.StudentColumn, value string) error {
	return m.Called(ctx, column, value).Error(0)
}

func (m *MockStudentStore) UpdateByUniqueIdentifier(ctx context.Context, column repositories.StudentColumn, value string, student *models.Student) (*models.Student, error) {
	args := m.Called(ctx, column, value, student)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

// MockEmployeeStore is a testify mock of EmployeeStore
type MockEmployeeStore struct {
	mock.Mock
}

func (m *MockEmployeeStore) GetAll(ctx context.Context) ([]*models.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Employee), args.Error(1)
}

func (m *MockEmployeeStore) GetByUniqueIdentifier(ctx context.Context, column repositories.EmployeeColumn, value string) (*models.Employee, error) {
	args := m.Called(ctx, column, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeStore) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *MockEmployeeStore) DeleteByUniqueIdentifier(ctx context.Context, column repositories.EmployeeColumn, value string) error {
	return m.Called(ctx, column, value).Error(0)
}

func (m *MockEmployeeStore) UpdateByUniqueIdentifier(ctx context.Context, column repositories.EmployeeColumn, value string, employee *models.Employee) (*models.Employee, error) {
	args := m.Called(ctx, column, value, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}
