package models

// PhoneNumber is a shared, deduplicated value object. The pair (Number, Type) is
// unique across the store and a row may be linked to any number of parents.
type PhoneNumber struct {
	PkID   int64     `json:"-" db:"PhoneNumberPk_id"`
	UUID   string    `json:"uuid,omitempty" db:"uuid"`
	Number string    `json:"phoneNumber" db:"phoneNumber" validate:"required,max=32"`
	Type   PhoneType `json:"type" db:"phoneType" validate:"required"`
}
