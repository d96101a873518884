package models

// Employee defines the employee model based on the VW_Employee view
type Employee struct {
	PkID int64  `json:"-" db:"EmployeePk_id"`
	UUID string `json:"uuid" db:"uuid" validate:"omitempty,max=64"`
	PersonName
	Cedula string       `json:"cedula" db:"cedula" validate:"required,max=32"`
	Email  string       `json:"email" db:"email" validate:"required,email,max=255"`
	Role   EmployeeRole `json:"role" db:"role" validate:"required"`

	PhoneNumbers []PhoneNumber `json:"phoneNumbers" validate:"dive"`
}
