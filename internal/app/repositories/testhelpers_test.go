package repositories

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var (
	studentCols  = []string{"StudentPk_id", "uuid", "studentId", "firstName", "middleName", "firstSurname", "secondSurname", "cedula", "email", "address", "status"}
	employeeCols = []string{"EmployeePk_id", "uuid", "firstName", "middleName", "firstSurname", "secondSurname", "cedula", "email", "role"}
	phoneCols    = []string{"PhoneNumberPk_id", "uuid", "phoneNumber", "phoneType"}
)

func newMockRepos(t *testing.T, cache KeyCache) (pgxmock.PgxPoolIface, *Repositories) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewRepositories(mock, cache)
}

func strPtr(s string) *string { return &s }

func noRows(cols ...string) *pgxmock.Rows {
	return pgxmock.NewRows(cols)
}

func keyRow(col string, key int64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{col}).AddRow(key)
}

func studentRow(pk int64, uuid, studentID, cedula string) *pgxmock.Rows {
	return pgxmock.NewRows(studentCols).
		AddRow(pk, uuid, studentID, "Ana", strPtr("Maria"), "Perez", (*string)(nil), cedula, "ana@school.edu", "Calle 1", "ACTIVE")
}

func employeeRow(pk int64, uuid, cedula string) *pgxmock.Rows {
	return pgxmock.NewRows(employeeCols).
		AddRow(pk, uuid, "Luis", (*string)(nil), "Gomez", strPtr("Diaz"), cedula, "luis@school.edu", "PROFESSOR")
}

// expectResolveExisting expects a phone resolve that finds the row already stored
func expectResolveExisting(mock pgxmock.PgxPoolIface, number, phoneType string, typeKey, phoneKey int64) {
	mock.ExpectQuery(`SELECT pk_id FROM PhoneType`).WithArgs(phoneType).WillReturnRows(keyRow("pk_id", typeKey))
	mock.ExpectQuery(`SELECT pk_id FROM PhoneNumber`).WithArgs(typeKey, number).WillReturnRows(keyRow("pk_id", phoneKey))
}

// expectResolveNew expects a phone resolve that inserts a new row
func expectResolveNew(mock pgxmock.PgxPoolIface, number, phoneType string, typeKey, phoneKey int64) {
	mock.ExpectQuery(`SELECT pk_id FROM PhoneType`).WithArgs(phoneType).WillReturnRows(keyRow("pk_id", typeKey))
	mock.ExpectQuery(`SELECT pk_id FROM PhoneNumber`).WithArgs(typeKey, number).WillReturnRows(noRows("pk_id"))
	mock.ExpectQuery(`INSERT INTO PhoneNumber`).
		WithArgs(pgxmock.AnyArg(), number, typeKey).
		WillReturnRows(keyRow("pk_id", phoneKey))
}
