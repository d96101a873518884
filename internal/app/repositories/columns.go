package repositories

import (
	"fmt"

	"github.com/yigit/schoolregistry/internal/pkg/apperrors"
)

// StudentColumn enumerates the unique student columns a lookup may be keyed by.
// Values outside the enumeration never reach SQL text.
type StudentColumn int

const (
	StudentColumnUUID StudentColumn = iota + 1
	StudentColumnCedula
	StudentColumnStudentID
)

var studentColumns = map[StudentColumn]string{
	StudentColumnUUID:      "uuid",
	StudentColumnCedula:    "cedula",
	StudentColumnStudentID: "studentId",
}

func (c StudentColumn) String() string {
	if name, ok := studentColumns[c]; ok {
		return name
	}
	return fmt.Sprintf("StudentColumn(%d)", int(c))
}

func (c StudentColumn) sqlName() (string, error) {
	name, ok := studentColumns[c]
	if !ok {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidLookupColumn, c)
	}
	return name, nil
}

// EmployeeColumn enumerates the unique employee columns a lookup may be keyed by.
type EmployeeColumn int

const (
	EmployeeColumnUUID EmployeeColumn = iota + 1
	EmployeeColumnCedula
)

var employeeColumns = map[EmployeeColumn]string{
	EmployeeColumnUUID:   "uuid",
	EmployeeColumnCedula: "cedula",
}

func (c EmployeeColumn) String() string {
	if name, ok := employeeColumns[c]; ok {
		return name
	}
	return fmt.Sprintf("EmployeeColumn(%d)", int(c))
}

func (c EmployeeColumn) sqlName() (string, error) {
	name, ok := employeeColumns[c]
	if !ok {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidLookupColumn, c)
	}
	return name, nil
}
