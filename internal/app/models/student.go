package models

// Student defines the student model based on the VW_Student view
type Student struct {
	PkID      int64  `json:"-" db:"StudentPk_id"`                                // Surrogate key, stays inside the persistence layer
	UUID      string `json:"uuid" db:"uuid" validate:"omitempty,max=64"`         // External stable identifier
	StudentID string `json:"studentId" db:"studentId" validate:"required,max=32"` // Externally assigned student number
	PersonName
	Cedula  string        `json:"cedula" db:"cedula" validate:"required,max=32"`
	Email   string        `json:"email" db:"email" validate:"required,email,max=255"`
	Address string        `json:"address" db:"address" validate:"max=255"`
	Status  StudentStatus `json:"status" db:"status" validate:"required"`

	// Relations (populated on every read)
	PhoneNumbers []PhoneNumber `json:"phoneNumbers" validate:"dive"`
}
