package services

import (
	"context"
	"fmt"

	"github.com/yigit/schoolregistry/internal/app/models"
	"github.com/yigit/schoolregistry/internal/app/repositories"
	"github.com/yigit/schoolregistry/internal/pkg/apperrors"
)

// StudentStore is the persistence surface the student service depends on.
// *repositories.StudentRepository implements it.
type StudentStore interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByUniqueIdentifier(ctx context.Context, column repositories.StudentColumn, value string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	DeleteByUniqueIdentifier(ctx context.Context, column repositories.StudentColumn, value string) error
	UpdateByUniqueIdentifier(ctx context.Context, column repositories.StudentColumn, value string, student *models.Student) (*models.Student, error)
}

// StudentService defines the interface for student-related operations, keyed by uuid
type StudentService interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	Get(ctx context.Context, uuid string) (*models.Student, error)
	GetByCedula(ctx context.Context, cedula string) (*models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) (*models.Student, error)
	Update(ctx context.Context, uuid string, student *models.Student) (*models.Student, error)
	Delete(ctx context.Context, uuid string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo StudentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo StudentStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

func (s *studentServiceImpl) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.studentRepo.GetAll(ctx)
}

func (s *studentServiceImpl) Get(ctx context.Context, uuid string) (*models.Student, error) {
	if err := requireIdentifier("uuid", uuid); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByUniqueIdentifier(ctx, repositories.StudentColumnUUID, uuid)
}

func (s *studentServiceImpl) GetByCedula(ctx context.Context, cedula string) (*models.Student, error) {
	if err := requireIdentifier("cedula", cedula); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByUniqueIdentifier(ctx, repositories.StudentColumnCedula, cedula)
}

func (s *studentServiceImpl) GetByStudentID(ctx context.Context, studentID string) (*models.Student, error) {
	if err := requireIdentifier("studentId", studentID); err != nil {
		return nil, err
	}
	return s.studentRepo.GetByUniqueIdentifier(ctx, repositories.StudentColumnStudentID, studentID)
}

// Create validates and persists a new student
func (s *studentServiceImpl) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student == nil {
		return nil, fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if err := validateEntity(student); err != nil {
		return nil, err
	}
	return s.studentRepo.Create(ctx, student)
}

// Update replaces the student identified by uuid. The stored uuid never changes.
func (s *studentServiceImpl) Update(ctx context.Context, uuid string, student *models.Student) (*models.Student, error) {
	if err := requireIdentifier("uuid", uuid); err != nil {
		return nil, err
	}
	if student == nil {
		return nil, fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if err := validateEntity(student); err != nil {
		return nil, err
	}
	return s.studentRepo.UpdateByUniqueIdentifier(ctx, repositories.StudentColumnUUID, uuid, student)
}

func (s *studentServiceImpl) Delete(ctx context.Context, uuid string) error {
	if err := requireIdentifier("uuid", uuid); err != nil {
		return err
	}
	return s.studentRepo.DeleteByUniqueIdentifier(ctx, repositories.StudentColumnUUID, uuid)
}
