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

// Unique constraints on the Student table
const (
	studentUUIDConstraint      = "uq_student_uuid"
	studentCedulaConstraint    = "uq_student_cedula"
	studentStudentIDConstraint = "uq_student_studentid"
)

var studentViewColumns = []string{
	"StudentPk_id", "uuid", "studentId", "firstName", "middleName", "firstSurname",
	"secondSurname", "cedula", "email", "address", "status",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	pool     db.Pool
	sb       squirrel.StatementBuilderType
	statuses *LookupRepository
	phones   *PhoneNumberRepository
	links    *PhoneLinkRepository
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(pool db.Pool, statuses *LookupRepository, phones *PhoneNumberRepository) *StudentRepository {
	return &StudentRepository{
		pool:     pool,
		sb:       squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		statuses: statuses,
		phones:   phones,
		links:    NewPhoneLinkRepository(StudentPhoneLinkTable),
	}
}

// GetAll retrieves every student that is not soft-deleted, each with its phone numbers
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentViewColumns...).
		From("VW_Student").
		Where(squirrel.Eq{"MD_isDeleted": false}).
		OrderBy("StudentPk_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all students query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, fmt.Errorf("error querying students: %w: %w", apperrors.ErrStoreUnavailable, err)
	}

	students := []*models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			rows.Close()
			logger.Error().Err(err).Msg("Error scanning student row during get all")
			return nil, fmt.Errorf("error scanning student row: %w: %w", apperrors.ErrStoreUnavailable, err)
		}
		students = append(students, s)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student rows")
		return nil, fmt.Errorf("error iterating student rows: %w: %w", apperrors.ErrStoreUnavailable, err)
	}

	// One phone query per student
	for _, s := range students {
		if s.PhoneNumbers, err = r.links.GetAll(ctx, r.pool, s.PkID); err != nil {
			return nil, err
		}
	}

	return students, nil
}

// GetByUniqueIdentifier retrieves a non-deleted student by one of its unique columns
func (r *StudentRepository) GetByUniqueIdentifier(ctx context.Context, column StudentColumn, value string) (*models.Student, error) {
	name, err := column.sqlName()
	if err != nil {
		return nil, err
	}

	return r.getOne(ctx, r.pool, squirrel.Eq{name: value, "MD_isDeleted": false})
}

// Create inserts a student and links its phone numbers in one transaction.
// A caller that leaves UUID empty gets a generated one.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (*models.Student, error) {
	if student.UUID == "" {
		student.UUID = uuid.NewString()
	}

	var created *models.Student
	err := db.RunInTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		if err := r.checkUnique(ctx, tx, student); err != nil {
			return err
		}

		statusKey, err := r.statusKey(ctx, tx, student.Status)
		if err != nil {
			return err
		}

		sql, args, err := r.sb.Insert("Student").
			Columns("uuid", "studentId", "firstName", "middleName", "firstSurname",
				"secondSurname", "cedula", "email", "address", "StatusPk_id").
			Values(student.UUID, student.StudentID, student.FirstName, student.MiddleName, student.FirstSurname,
				student.SecondSurname, student.Cedula, student.Email, student.Address, statusKey).
			Suffix("RETURNING StudentPk_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build create student query: %w", err)
		}

		var pkID int64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&pkID); err != nil {
			if conflict := studentConflict(err); conflict != nil {
				return conflict
			}
			logger.Error().Err(err).Str("uuid", student.UUID).Msg("Error executing create student query")
			return fmt.Errorf("error creating student: %w: %w", apperrors.ErrStoreUnavailable, err)
		}

		if err := linkPhones(ctx, tx, r.phones, r.links, pkID, student.PhoneNumbers); err != nil {
			return err
		}

		created, err = r.getOne(ctx, tx, squirrel.Eq{"StudentPk_id": pkID})
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// DeleteByUniqueIdentifier soft-deletes a student. Phone links are left in place.
func (r *StudentRepository) DeleteByUniqueIdentifier(ctx context.Context, column StudentColumn, value string) error {
	name, err := column.sqlName()
	if err != nil {
		return err
	}

	sql, args, err := r.sb.Update("Student").
		Set("MD_isDeleted", true).
		Where(squirrel.Eq{name: value}).
		Where(squirrel.Eq{"MD_isDeleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("column", name).Str("value", value).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w: %w", apperrors.ErrStoreUnavailable, err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdateByUniqueIdentifier overwrites every scalar column of the matching student and
// replaces its phone-number set with exactly the supplied one, in one transaction.
func (r *StudentRepository) UpdateByUniqueIdentifier(ctx context.Context, column StudentColumn, value string, student *models.Student) (*models.Student, error) {
	name, err := column.sqlName()
	if err != nil {
		return nil, err
	}

	var updated *models.Student
	err = db.RunInTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		pkID, err := r.getPkID(ctx, tx, squirrel.Eq{name: value, "MD_isDeleted": false})
		if err != nil {
			return err
		}

		statusKey, err := r.statusKey(ctx, tx, student.Status)
		if err != nil {
			return err
		}

		sql, args, err := r.sb.Update("Student").
			Set("studentId", student.StudentID).
			Set("firstName", student.FirstName).
			Set("middleName", student.MiddleName).
			Set("firstSurname", student.FirstSurname).
			Set("secondSurname", student.SecondSurname).
			Set("cedula", student.Cedula).
			Set("email", student.Email).
			Set("address", student.Address).
			Set("StatusPk_id", statusKey).
			Where(squirrel.Eq{"StudentPk_id": pkID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build update student query: %w", err)
		}

		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			if conflict := studentConflict(err); conflict != nil {
				return conflict
			}
			logger.Error().Err(err).Int64("studentPkID", pkID).Msg("Error executing update student query")
			return fmt.Errorf("error updating student: %w: %w", apperrors.ErrStoreUnavailable, err)
		}

		if _, err := r.links.UnlinkAll(ctx, tx, pkID); err != nil {
			return err
		}

		if err := linkPhones(ctx, tx, r.phones, r.links, pkID, student.PhoneNumbers); err != nil {
			return err
		}

		updated, err = r.getOne(ctx, tx, squirrel.Eq{"StudentPk_id": pkID})
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// checkUnique rejects a student whose uuid, cedula or student ID is already taken.
// Soft-deleted rows still hold their values.
func (r *StudentRepository) checkUnique(ctx context.Context, q db.Querier, student *models.Student) error {
	checks := []struct {
		column string
		value  string
		err    error
	}{
		{"uuid", student.UUID, apperrors.ErrUUIDAlreadyExists},
		{"cedula", student.Cedula, apperrors.ErrCedulaAlreadyExists},
		{"studentId", student.StudentID, apperrors.ErrStudentIDAlreadyExists},
	}

	for _, c := range checks {
		_, err := r.getPkID(ctx, q, squirrel.Eq{c.column: c.value})
		if err == nil {
			return c.err
		}
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			return err
		}
	}
	return nil
}

func (r *StudentRepository) statusKey(ctx context.Context, q db.Querier, status models.StudentStatus) (int64, error) {
	key, err := r.statuses.GetKey(ctx, q, string(status))
	if err != nil {
		if errors.Is(err, ErrLookupNotFound) {
			return NotFoundKey, fmt.Errorf("%w: %q", apperrors.ErrInvalidStudentStatus, status)
		}
		return NotFoundKey, err
	}
	return key, nil
}

// getPkID resolves the surrogate key of the student matching where
func (r *StudentRepository) getPkID(ctx context.Context, q db.Querier, where squirrel.Eq) (int64, error) {
	sql, args, err := r.sb.Select("StudentPk_id").
		From("VW_Student").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return NotFoundKey, fmt.Errorf("failed to build student key query: %w", err)
	}

	var pkID int64
	if err := q.QueryRow(ctx, sql, args...).Scan(&pkID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NotFoundKey, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Interface("where", where).Msg("Error resolving student key")
		return NotFoundKey, fmt.Errorf("error resolving student key: %w: %w", apperrors.ErrStoreUnavailable, err)
	}

	return pkID, nil
}

func (r *StudentRepository) getOne(ctx context.Context, q db.Querier, where squirrel.Eq) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentViewColumns...).
		From("VW_Student").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get student query")
		return nil, fmt.Errorf("error getting student: %w: %w", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("error getting student: %w: %w", apperrors.ErrStoreUnavailable, err)
		}
		return nil, apperrors.ErrStudentNotFound
	}

	student, err := scanStudent(rows)
	if err != nil {
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error scanning student row: %w: %w", apperrors.ErrStoreUnavailable, err)
	}
	rows.Close()

	if student.PhoneNumbers, err = r.links.GetAll(ctx, q, student.PkID); err != nil {
		return nil, err
	}

	return student, nil
}

func scanStudent(rows pgx.Rows) (*models.Student, error) {
	s := &models.Student{}
	var status string
	err := rows.Scan(&s.PkID, &s.UUID, &s.StudentID, &s.FirstName, &s.MiddleName, &s.FirstSurname,
		&s.SecondSurname, &s.Cedula, &s.Email, &s.Address, &status)
	if err != nil {
		return nil, err
	}
	s.Status = models.StudentStatus(status)
	return s, nil
}

// studentConflict maps a unique violation to the matching conflict error, or nil
func studentConflict(err error) error {
	if !dberrors.IsUniqueViolation(err) {
		return nil
	}

	switch dberrors.ConstraintName(err) {
	case studentUUIDConstraint:
		return apperrors.ErrUUIDAlreadyExists
	case studentCedulaConstraint:
		return apperrors.ErrCedulaAlreadyExists
	case studentStudentIDConstraint:
		return apperrors.ErrStudentIDAlreadyExists
	default:
		return fmt.Errorf("%w: %w", apperrors.ErrConflict, err)
	}
}
