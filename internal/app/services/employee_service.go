package services

import (
	"context"
	"fmt"

	"github.com/yigit/schoolregistry/internal/app/models"
	"github.com/yigit/schoolregistry/internal/app/repositories"
	"github.com/yigit/schoolregistry/internal/pkg/apperrors"
)

// EmployeeStore is the persistence surface the employee service depends on
type EmployeeStore interface {
	GetAll(ctx context.Context) ([]*models.Employee, error)
	GetByUniqueIdentifier(ctx context.Context, column repositories.EmployeeColumn, value string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	DeleteByUniqueIdentifier(ctx context.Context, column repositories.EmployeeColumn, value string) error
	UpdateByUniqueIdentifier(ctx context.Context, column repositories.EmployeeColumn, value string, employee *models.Employee) (*models.Employee, error)
}

// EmployeeService defines the interface for employee-related operations
type EmployeeService interface {
	GetAll(ctx context.Context) ([]*models.Employee, error)
	Get(ctx context.Context, uuid string) (*models.Employee, error)
	GetByCedula(ctx context.Context, cedula string) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) (*models.Employee, error)
	Update(ctx context.Context, uuid string, employee *models.Employee) (*models.Employee, error)
	Delete(ctx context.Context, uuid string) error
}

type employeeServiceImpl struct {
	employeeRepo EmployeeStore
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(employeeRepo EmployeeStore) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

func (s *employeeServiceImpl) GetAll(ctx context.Context) ([]*models.Employee, error) {
	return s.employeeRepo.GetAll(ctx)
}

func (s *employeeServiceImpl) Get(ctx context.Context, uuid string) (*models.Employee, error) {
	if err := requireIdentifier("uuid", uuid); err != nil {
		return nil, err
	}
	return s.employeeRepo.GetByUniqueIdentifier(ctx, repositories.EmployeeColumnUUID, uuid)
}

func (s *employeeServiceImpl) GetByCedula(ctx context.Context, cedula string) (*models.Employee, error) {
	if err := requireIdentifier("cedula", cedula); err != nil {
		return nil, err
	}
	return s.employeeRepo.GetByUniqueIdentifier(ctx, repositories.EmployeeColumnCedula, cedula)
}

func (s *employeeServiceImpl) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if employee == nil {
		return nil, fmt.Errorf("%w: employee is nil", apperrors.ErrValidationFailed)
	}
	if err := validateEntity(employee); err != nil {
		return nil, err
	}
	return s.employeeRepo.Create(ctx, employee)
}

func (s *employeeServiceImpl) Update(ctx context.Context, uuid string, employee *models.Employee) (*models.Employee, error) {
	if err := requireIdentifier("uuid", uuid); err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: employee is nil", apperrors.ErrValidationFailed)
	}
	if err := validateEntity(employee); err != nil {
		return nil, err
	}
	return s.employeeRepo.UpdateByUniqueIdentifier(ctx, repositories.EmployeeColumnUUID, uuid, employee)
}

func (s *employeeServiceImpl) Delete(ctx context.Context, uuid string) error {
	if err := requireIdentifier("uuid", uuid); err != nil {
		return err
	}
	return s.employeeRepo.DeleteByUniqueIdentifier(ctx, repositories.EmployeeColumnUUID, uuid)
}
