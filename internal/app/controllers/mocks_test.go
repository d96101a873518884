package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/schoolregistry/internal/app/models"
)

type MockStudentService struct {
	mock.Mock
}

func (m *MockStudentService) GetAll(ctx context.Context) ([]*models.Student, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Student), args.Error(1)
}

func (m *MockStudentService) Get(ctx context.Context, uuid string) (*models.Student, error) {
	return m.student(m.Called(ctx, uuid))
}

func (m *MockStudentService) GetByCedula(ctx context.Context, cedula string) (*models.Student, error) {
	return m.student(m.Called(ctx, cedula))
}

func (m *MockStudentService) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	return m.student(m.Called(ctx, studentID))
}

func (m *MockStudentService) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	return m.student(m.Called(ctx, student))
}

func (m *MockStudentService) Update(ctx context.Context, uuid string, student *models.Student) (*models.Student, error) {
	return m.student(m.Called(ctx, uuid, student))
}

func (m *MockStudentService) Delete(ctx context.Context, uuid string) error {
	return m.Called(ctx, uuid).Error(0)
}

func (m *MockStudentService) student(args mock.Arguments) (*models.Student, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) GetAll(ctx context.Context) ([]*models.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Employee), args.Error(1)
}

func (m *MockEmployeeService) Get(ctx context.Context, uuid string) (*models.Employee, error) {
	return m.employee(m.Called(ctx, uuid))
}

func (m *MockEmployeeService) GetByCedula(ctx context.Context, cedula string) (*models.Employee, error) {
	return m.employee(m.Called(ctx, cedula))
}

func (m *MockEmployeeService) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	return m.employee(m.Called(ctx, employee))
}

func (m *MockEmployeeService) Update(ctx context.Context, uuid string, employee *models.Employee) (*models.Employee, error) {
	return m.employee(m.Called(ctx, uuid, employee))
}

func (m *MockEmployeeService) Delete(ctx context.Context, uuid string) error {
	return m.Called(ctx, uuid).Error(0)
}

func (m *MockEmployeeService) employee(args mock.Arguments) (*models.Employee, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}
