package dto

import "github.com/yigit/schoolregistry/internal/app/models"

// PhoneNumberDTO is the wire form of a phone number. Type is resolved against the
// PhoneType lookup table, so an unknown value is rejected by the store layer.
type PhoneNumberDTO struct {
	UUID        string `json:"uuid,omitempty" xml:"uuid,omitempty"`
	PhoneNumber string `json:"phoneNumber" xml:"phoneNumber" binding:"required,max=32" example:"555-0100"`
	Type        string `json:"type" xml:"type" binding:"required" example:"MOBILE" enums:"MOBILE,HOME,WORK,FAX,OTHER"`
}

// ToModel converts the DTO to a models.PhoneNumber
func (p PhoneNumberDTO) ToModel() models.PhoneNumber {
	return models.PhoneNumber{
		Number: p.PhoneNumber,
		Type:   models.PhoneType(p.Type),
	}
}

func phoneNumbersToModels(in []PhoneNumberDTO) []models.PhoneNumber {
	out := make([]models.PhoneNumber, 0, len(in))
	for _, p := range in {
		out = append(out, p.ToModel())
	}
	return out
}

func phoneNumbersFromModels(in []models.PhoneNumber) []PhoneNumberDTO {
	out := make([]PhoneNumberDTO, 0, len(in))
	for _, p := range in {
		out = append(out, PhoneNumberDTO{
			UUID:        p.UUID,
			PhoneNumber: p.Number,
			Type:        string(p.Type),
		})
	}
	return out
}
