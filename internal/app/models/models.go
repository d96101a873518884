package models

// StudentStatus is the lifecycle state of a student, stored by reference to StudentStatus.
type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "ACTIVE"
	StudentStatusInactive  StudentStatus = "INACTIVE"
	StudentStatusGraduated StudentStatus = "GRADUATED"
	StudentStatusSuspended StudentStatus = "SUSPENDED"
	StudentStatusWithdrawn StudentStatus = "WITHDRAWN"
)

// EmployeeRole is the role of an employee, stored by reference to EmployeeRole.
type EmployeeRole string

const (
	EmployeeRoleProfessor      EmployeeRole = "PROFESSOR"
	EmployeeRoleAdministrative EmployeeRole = "ADMINISTRATIVE"
	EmployeeRoleSupport        EmployeeRole = "SUPPORT"
	EmployeeRoleDirector       EmployeeRole = "DIRECTOR"
)

// PhoneType is the kind of a phone number, stored by reference to PhoneType.
type PhoneType string

const (
	PhoneTypeMobile PhoneType = "MOBILE"
	PhoneTypeHome   PhoneType = "HOME"
	PhoneTypeWork   PhoneType = "WORK"
	PhoneTypeFax    PhoneType = "FAX"
	PhoneTypeOther  PhoneType = "OTHER"
)

// PersonName holds the name parts shared by students and employees.
// MiddleName and SecondSurname are optional.
type PersonName struct {
	FirstName     string  `json:"firstName" db:"firstName" validate:"required,max=100"`
	MiddleName    *string `json:"middleName,omitempty" db:"middleName" validate:"omitempty,max=100"`
	FirstSurname  string  `json:"firstSurname" db:"firstSurname" validate:"required,max=100"`
	SecondSurname *string `json:"secondSurname,omitempty" db:"secondSurname" validate:"omitempty,max=100"`
}
