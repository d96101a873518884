package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/schoolregistry/internal/app/models"
	"github.com/yigit/schoolregistry/internal/db"
	"github.com/yigit/schoolregistry/internal/pkg/apperrors"
	"github.com/yigit/schoolregistry/internal/pkg/dberrors"
	"github.com/yigit/schoolregistry/internal/pkg/logger"
)

const (
	employeeUUIDConstraint   = "uq_employee_uuid"
	employeeCedulaConstraint = "uq_employee_cedula"
)

var employeeViewColumns = []string{
	"EmployeePk_id", "uuid", "firstName", "middleName", "firstSurname",
	"secondSurname", "cedula", "email", "role",
}

// EmployeeRepository handles employee database operations
type EmployeeRepository struct {
	pool   db.Pool
	sb     squirrel.StatementBuilderType
	roles  *LookupRepository
	phones *PhoneNumberRepository
	links  *PhoneLinkRepository
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(pool db.Pool, roles *LookupRepository, phones *PhoneNumberRepository) *EmployeeRepository {
	return &EmployeeRepository{
		pool:   pool,
		sb:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		roles:  roles,
		phones: phones,
		links:  NewPhoneLinkRepository(EmployeePhoneLinkTable),
	}
}

// GetAll retrieves every employee that is not soft-deleted, each with its phone numbers
func (r *EmployeeRepository) GetAll(ctx context.Context) ([]*models.Employee, error) {
	sql, args, err := r.sb.Select(employeeViewColumns...).
		From("VW_Employee").
		Where(squirrel.Eq{"MD_isDeleted": false}).
		OrderBy("EmployeePk_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all employees query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all employees query")
		return nil, fmt.Errorf("error querying employees: %w: %w", apperrors.ErrStoreUnavailable, err)
	}

	employees := []*models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("error scanning employee row: %w: %w", apperrors.ErrStoreUnavailable, err)
		}
		employees = append(employees, e)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating employee rows")
		return nil, fmt.Errorf("error iterating employee rows: %w: %w", apperrors.ErrStoreUnavailable, err)
	}

	// One phone query per employee
	for _, e := range employees {
		if e.PhoneNumbers, err = r.links.GetAll(ctx, r.pool, e.PkID); err != nil {
			return nil, err
		}
	}

	return employees, nil
}

// GetByUniqueIdentifier retrieves a non-deleted employee by one of its unique columns
func (r *EmployeeRepository) GetByUniqueIdentifier(ctx context.Context, column EmployeeColumn, value string) (*models.Employee, error) {
	name, err := column.sqlName()
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, r.pool, squirrel.Eq{name: value, "MD_isDeleted": false})
}

// Create inserts an employee and links its phone numbers in one transaction
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) (*models.Employee, error) {
	if employee.UUID == "" {
		employee.UUID = uuid.NewString()
	}

	var created *models.Employee
	err := db.RunInTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.checkUnique(ctx, tx, employee); err != nil {
			return err
		}

		roleKey, err := r.roleKey(ctx, tx, employee.Role)
		if err != nil {
			return err
		}

		sql, args, err := r.sb.Insert("Employee").
			Columns("uuid", "firstName", "middleName", "firstSurname", "secondSurname", "cedula", "email", "RolePk_id").
			Values(employee.UUID, employee.FirstName, employee.MiddleName, employee.FirstSurname,
				employee.SecondSurname, employee.Cedula, employee.Email, roleKey).
			Suffix("RETURNING EmployeePk_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create employee query: %w", err)
		}

		var pkID int64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&pkID); err != nil {
			if conflict := employeeConflict(err); conflict != nil {
				return conflict
			}
			logger.Error().Err(err).Str("uuid", employee.UUID).Msg("Error executing create employee query")
			return fmt.Errorf("error creating employee: %w: %w", apperrors.ErrStoreUnavailable, err)
		}

		if err := linkPhones(ctx, tx, r.phones, r.links, pkID, employee.PhoneNumbers); err != nil {
			return err
		}

		created, err = r.getOne(ctx, tx, squirrel.Eq{"EmployeePk_id": pkID})
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// DeleteByUniqueIdentifier soft-deletes an employee
func (r *EmployeeRepository) DeleteByUniqueIdentifier(ctx context.Context, column EmployeeColumn, value string) error {
	name, err := column.sqlName()
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("Employee").
		Set("MD_isDeleted", true).
		Where(squirrel.Eq{name: value}).
		Where(squirrel.Eq{"MD_isDeleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete employee query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("column", name).Str("value", value).Msg("Error executing delete employee query")
		return fmt.Errorf("error deleting employee: %w: %w", apperrors.ErrStoreUnavailable, err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrEmployeeNotFound
	}

	return nil
}

// UpdateByUniqueIdentifier fully replaces the matching employee, phone numbers included
func (r *EmployeeRepository) UpdateByUniqueIdentifier(ctx context.Context, column EmployeeColumn, value string, employee *models.Employee) (*models.Employee, error) {
	name, err := column.sqlName()
	if err != nil {
		return nil, err
	}

	var updated *models.Employee
	err = db.RunInTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		pkID, err := r.getPkID(ctx, tx, squirrel.Eq{name: value, "MD_isDeleted": false})
		if err != nil {
			return err
		}

		roleKey, err := r.roleKey(ctx, tx, employee.Role)
		if err != nil {
			return err
		}

		sql, args, err := r.sb.Update("Employee").
			Set("firstName", employee.FirstName).
			Set("middleName", employee.MiddleName).
			Set("firstSurname", employee.FirstSurname).
			Set("secondSurname", employee.SecondSurname).
			Set("cedula", employee.Cedula).
			Set("email", employee.Email).
			Set("RolePk_id", roleKey).
			Where(squirrel.Eq{"EmployeePk_id": pkID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update employee query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if conflict := employeeConflict(err); conflict != nil {
				return conflict
			}
			logger.Error().Err(err).Int64("employeePkID", pkID).Msg("Error executing update employee query")
			return fmt.Errorf("error updating employee: %w: %w", apperrors.ErrStoreUnavailable, err)
		}

		if _, err := r.links.UnlinkAll(ctx, tx, pkID); err != nil {
			return err
		}

		if err := linkPhones(ctx, tx, r.phones, r.links, pkID, employee.PhoneNumbers); err != nil {
			return err
		}

		updated, err = r.getOne(ctx, tx, squirrel.Eq{"EmployeePk_id": pkID})
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *EmployeeRepository) checkUnique(ctx context.Context, q db.Querier, employee *models.Employee) error {
	if _, err := r.getPkID(ctx, q, squirrel.Eq{"uuid": employee.UUID}); err == nil {
		return apperrors.ErrUUIDAlreadyExists
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}

	if _, err := r.getPkID(ctx, q, squirrel.Eq{"cedula": employee.Cedula}); err == nil {
		return apperrors.ErrCedulaAlreadyExists
	} else if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return err
	}

	return nil
}

func (r *EmployeeRepository) roleKey(ctx context.Context, q db.Querier, role models.EmployeeRole) (int64, error) {
	key, err := r.roles.GetKey(ctx, q, string(role))
	if err != nil {
		if errors.Is(err, ErrLookupNotFound) {
			return NotFoundKey, fmt.Errorf("%w: %q", apperrors.ErrInvalidEmployeeRole, role)
		}
		return NotFoundKey, err
	}
	return key, nil
}

func (r *EmployeeRepository) getPkID(ctx context.Context, q db.Querier, where squirrel.Eq) (int64, error) {
	sql, args, err := r.sb.Select("EmployeePk_id").
		From("VW_Employee").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return NotFoundKey, fmt.Errorf("failed to build employee key query: %w", err)
	}

	var pkID int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&pkID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NotFoundKey, apperrors.ErrEmployeeNotFound
		}
		logger.Error().Err(err).Msg("Error resolving employee key")
		return NotFoundKey, fmt.Errorf("error resolving employee key: %w: %w", apperrors.ErrStoreUnavailable, err)
	}

	return pkID, nil
}

func (r *EmployeeRepository) getOne(ctx context.Context, q db.Querier, where squirrel.Eq) (*models.Employee, error) {
	sql, args, err := r.sb.Select(employeeViewColumns...).
		From("VW_Employee").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get employee query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get employee query")
		return nil, fmt.Errorf("error getting employee: %w: %w", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error getting employee: %w: %w", apperrors.ErrStoreUnavailable, err)
		}
		return nil, apperrors.ErrEmployeeNotFound
	}

	employee, err := scanEmployee(rows)
	if err != nil {
		return nil, fmt.Errorf("error scanning employee row: %w: %w", apperrors.ErrStoreUnavailable, err)
	}
	rows.Close()

	if employee.PhoneNumbers, err = r.links.GetAll(ctx, q, employee.PkID); err != nil {
		return nil, err
	}

	return employee, nil
}

func scanEmployee(rows pgx.Rows) (*models.Employee, error) {
	e := &models.Employee{}
	var role string
	err := rows.Scan(&e.PkID, &e.UUID, &e.FirstName, &e.MiddleName, &e.FirstSurname,
		&e.SecondSurname, &e.Cedula, &e.Email, &role)
	if err != nil {
		return nil, err
	}
	e.Role = models.EmployeeRole(role)
	return e, nil
}

func employeeConflict(err error) error {
	if !dberrors.IsUniqueViolation(err) {
		return nil
	}

	switch dberrors.ConstraintName(err) {
	case employeeUUIDConstraint:
		return apperrors.ErrUUIDAlreadyExists
	case employeeCedulaConstraint:
		return apperrors.ErrCedulaAlreadyExists
	default:
		return fmt.Errorf("%w: %w", apperrors.ErrConflict, err)
	}
}
