package repositories

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schoolregistry/internal/app/models"
	"github.com/yigit/schoolregistry/internal/pkg/apperrors"
)

func newEmployee(uuid, cedula string, phones ...models.PhoneNumber) *models.Employee {
	return &models.Employee{
		UUID: uuid,
		PersonName: models.PersonName{
			FirstName:     "Luis",
			FirstSurname:  "Gomez",
			SecondSurname: strPtr("Diaz"),
		},
		Cedula:       cedula,
		Email:        "luis@school.edu",
		Role:         models.EmployeeRoleProfessor,
		PhoneNumbers: phones,
	}
}

func TestEmployeeRepository_CreateSharesPhoneWithStudent(t *testing.T) {
	mock, repos := newMockRepos(t, nil)

	// 555-0100/MOBILE already belongs to a student; the employee links the same row
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EmployeePk_id FROM VW_Employee WHERE uuid`).WithArgs("e-1").WillReturnRows(noRows("EmployeePk_id"))
	mock.ExpectQuery(`SELECT EmployeePk_id FROM VW_Employee WHERE cedula`).WithArgs("E1").WillReturnRows(noRows("EmployeePk_id"))
	mock.ExpectQuery(`SELECT pk_id FROM EmployeeRole WHERE name`).WithArgs("PROFESSOR").WillReturnRows(keyRow("pk_id", 1))
	mock.ExpectQuery(`INSERT INTO Employee .* RETURNING EmployeePk_id`).
		WithArgs("e-1", "Luis", (*string)(nil), "Gomez", strPtr("Diaz"), "E1", "luis@school.edu", int64(1)).
		WillReturnRows(keyRow("EmployeePk_id", 5))
	expectResolveExisting(mock, "555-0100", "MOBILE", 1, 42)
	mock.ExpectExec(`INSERT INTO EmployeeHasPhoneNumber`).WithArgs(int64(5), int64(42)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`FROM VW_Employee WHERE EmployeePk_id`).WithArgs(int64(5)).WillReturnRows(employeeRow(5, "e-1", "E1"))
	mock.ExpectQuery(`FROM VW_PhoneNumber p JOIN EmployeeHasPhoneNumber`).WithArgs(int64(5), false).
		WillReturnRows(pgxmock.NewRows(phoneCols).AddRow(int64(42), "p-1", "555-0100", "MOBILE"))
	mock.ExpectCommit()

	created, err := repos.EmployeeRepository.Create(context.Background(),
		newEmployee("e-1", "E1", models.PhoneNumber{Number: "555-0100", Type: models.PhoneTypeMobile}))
	require.NoError(t, err)
	assert.Equal(t, models.EmployeeRoleProfessor, created.Role)
	require.Len(t, created.PhoneNumbers, 1)
	assert.Equal(t, int64(42), created.PhoneNumbers[0].PkID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create_CedulaInUse(t *testing.T) {
	mock, repos := newMockRepos(t, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EmployeePk_id FROM VW_Employee WHERE uuid`).WithArgs("e-2").WillReturnRows(noRows("EmployeePk_id"))
	mock.ExpectQuery(`SELECT EmployeePk_id FROM VW_Employee WHERE cedula`).WithArgs("E1").WillReturnRows(keyRow("EmployeePk_id", 5))
	mock.ExpectRollback()

	_, err := repos.EmployeeRepository.Create(context.Background(), newEmployee("e-2", "E1"))
	assert.ErrorIs(t, err, apperrors.ErrCedulaAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create_UUIDInUse(t *testing.T) {
	mock, repos := newMockRepos(t, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EmployeePk_id FROM VW_Employee WHERE uuid`).WithArgs("e-1").WillReturnRows(keyRow("EmployeePk_id", 5))
	mock.ExpectRollback()

	_, err := repos.EmployeeRepository.Create(context.Background(), newEmployee("e-1", "E9"))
	assert.ErrorIs(t, err, apperrors.ErrUUIDAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create_UnknownRole(t *testing.T) {
	mock, repos := newMockRepos(t, nil)

	employee := newEmployee("e-3", "E3")
	employee.Role = "JANITOR"

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EmployeePk_id FROM VW_Employee WHERE uuid`).WithArgs("e-3").WillReturnRows(noRows("EmployeePk_id"))
	mock.ExpectQuery(`SELECT EmployeePk_id FROM VW_Employee WHERE cedula`).WithArgs("E3").WillReturnRows(noRows("EmployeePk_id"))
	mock.ExpectQuery(`SELECT pk_id FROM EmployeeRole`).WithArgs("JANITOR").WillReturnRows(noRows("pk_id"))
	mock.ExpectRollback()

	_, err := repos.EmployeeRepository.Create(context.Background(), employee)
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmployeeRole)
	assert.ErrorIs(t, err, apperrors.ErrMalformedEntity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Create_UniqueViolation(t *testing.T) {
	mock, repos := newMockRepos(t, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EmployeePk_id FROM VW_Employee WHERE uuid`).WithArgs("e-4").WillReturnRows(noRows("EmployeePk_id"))
	mock.ExpectQuery(`SELECT EmployeePk_id FROM VW_Employee WHERE cedula`).WithArgs("E4").WillReturnRows(noRows("EmployeePk_id"))
	mock.ExpectQuery(`SELECT pk_id FROM EmployeeRole`).WithArgs("PROFESSOR").WillReturnRows(keyRow("pk_id", 1))
	mock.ExpectQuery(`INSERT INTO Employee `).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_uuid"})
	mock.ExpectRollback()

	_, err := repos.EmployeeRepository.Create(context.Background(), newEmployee("e-4", "E4"))
	assert.ErrorIs(t, err, apperrors.ErrUUIDAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetAll(t *testing.T) {
	mock, repos := newMockRepos(t, nil)

	mock.ExpectQuery(`FROM VW_Employee WHERE MD_isDeleted = .+ ORDER BY EmployeePk_id`).WithArgs(false).
		WillReturnRows(employeeRow(5, "e-1", "E1"))
	mock.ExpectQuery(`FROM VW_PhoneNumber p JOIN EmployeeHasPhoneNumber`).WithArgs(int64(5), false).
		WillReturnRows(noRows(phoneCols...))

	employees, err := repos.EmployeeRepository.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "e-1", employees[0].UUID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByCedula(t *testing.T) {
	mock, repos := newMockRepos(t, nil)

	mock.ExpectQuery(`FROM VW_Employee WHERE MD_isDeleted = .+ AND cedula`).WithArgs(false, "E1").
		WillReturnRows(employeeRow(5, "e-1", "E1"))
	mock.ExpectQuery(`FROM VW_PhoneNumber`).WithArgs(int64(5), false).WillReturnRows(noRows(phoneCols...))

	employee, err := repos.EmployeeRepository.GetByUniqueIdentifier(context.Background(), EmployeeColumnCedula, "E1")
	require.NoError(t, err)
	assert.Equal(t, "Luis", employee.FirstName)
	assert.Nil(t, employee.MiddleName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete(t *testing.T) {
	mock, repos := newMockRepos(t, nil)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE Employee SET MD_isDeleted`).WithArgs(true, "e-1", false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE Employee SET MD_isDeleted`).WithArgs(true, "e-1", false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	require.NoError(t, repos.EmployeeRepository.DeleteByUniqueIdentifier(ctx, EmployeeColumnUUID, "e-1"))
	assert.ErrorIs(t, repos.EmployeeRepository.DeleteByUniqueIdentifier(ctx, EmployeeColumnUUID, "e-1"), apperrors.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_UpdateEmptyPhoneSet(t *testing.T) {
	mock, repos := newMockRepos(t, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT EmployeePk_id FROM VW_Employee WHERE MD_isDeleted = .+ AND uuid`).WithArgs(false, "e-1").
		WillReturnRows(keyRow("EmployeePk_id", 5))
	mock.ExpectQuery(`SELECT pk_id FROM EmployeeRole`).WithArgs("DIRECTOR").WillReturnRows(keyRow("pk_id", 4))
	mock.ExpectExec(`UPDATE Employee SET firstName`).
		WithArgs("Luis", (*string)(nil), "Gomez", strPtr("Diaz"), "E1", "luis@school.edu", int64(4), int64(5)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`DELETE FROM EmployeeHasPhoneNumber WHERE EmployeePk_id`).WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectQuery(`FROM VW_Employee WHERE EmployeePk_id`).WithArgs(int64(5)).WillReturnRows(employeeRow(5, "e-1", "E1"))
	mock.ExpectQuery(`FROM VW_PhoneNumber`).WithArgs(int64(5), false).WillReturnRows(noRows(phoneCols...))
	mock.ExpectCommit()

	employee := newEmployee("", "E1")
	employee.Role = models.EmployeeRoleDirector

	updated, err := repos.EmployeeRepository.UpdateByUniqueIdentifier(context.Background(), EmployeeColumnUUID, "e-1", employee)
	require.NoError(t, err)
	assert.Empty(t, updated.PhoneNumbers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_RejectsColumnOutsideAllowList(t *testing.T) {
	_, repos := newMockRepos(t, nil)

	_, err := repos.EmployeeRepository.GetByUniqueIdentifier(context.Background(), EmployeeColumn(3), "x")
	assert.ErrorIs(t, err, apperrors.ErrInvalidLookupColumn)
}
