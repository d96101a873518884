package dto

import (
	"encoding/xml"

	"github.com/yigit/schoolregistry/internal/app/models"
)

// StudentRequest represents the body of a student create or full-replacement update
type StudentRequest struct {
	XMLName       xml.Name         `json:"-" xml:"student"`
	UUID          string           `json:"uuid,omitempty" xml:"uuid,omitempty" binding:"omitempty,max=64"`
	StudentID     string           `json:"studentId" xml:"studentId" binding:"required,max=32" example:"A100"`
	FirstName     string           `json:"firstName" xml:"firstName" binding:"required,max=100"`
	MiddleName    *string          `json:"middleName,omitempty" xml:"middleName,omitempty" binding:"omitempty,max=100"`
	FirstSurname  string           `json:"firstSurname" xml:"firstSurname" binding:"required,max=100"`
	SecondSurname *string          `json:"secondSurname,omitempty" xml:"secondSurname,omitempty" binding:"omitempty,max=100"`
	Cedula        string           `json:"cedula" xml:"cedula" binding:"required,max=32" example:"N1"`
	Email         string           `json:"email" xml:"email" binding:"required,email"`
	Address       string           `json:"address" xml:"address" binding:"max=255"`
	Status        string           `json:"status" xml:"status" binding:"required" example:"ACTIVE" enums:"ACTIVE,INACTIVE,GRADUATED,SUSPENDED,WITHDRAWN"`
	PhoneNumbers  []PhoneNumberDTO `json:"phoneNumbers" xml:"phoneNumbers>phoneNumber" binding:"dive"`
}

// ToModel converts the request to a models.Student
func (r *StudentRequest) ToModel() *models.Student {
	return &models.Student{
		UUID:      r.UUID,
		StudentID: r.StudentID,
		PersonName: models.PersonName{
			FirstName:     r.FirstName,
			MiddleName:    r.MiddleName,
			FirstSurname:  r.FirstSurname,
			SecondSurname: r.SecondSurname,
		},
		Cedula:       r.Cedula,
		Email:        r.Email,
		Address:      r.Address,
		Status:       models.StudentStatus(r.Status),
		PhoneNumbers: phoneNumbersToModels(r.PhoneNumbers),
	}
}

// StudentResponse is the external representation of a student
type StudentResponse struct {
	XMLName       xml.Name         `json:"-" xml:"student"`
	UUID          string           `json:"uuid" xml:"uuid"`
	StudentID     string           `json:"studentId" xml:"studentId"`
	FirstName     string           `json:"firstName" xml:"firstName"`
	MiddleName    *string          `json:"middleName,omitempty" xml:"middleName,omitempty"`
	FirstSurname  string           `json:"firstSurname" xml:"firstSurname"`
	SecondSurname *string          `json:"secondSurname,omitempty" xml:"secondSurname,omitempty"`
	Cedula        string           `json:"cedula" xml:"cedula"`
	Email         string           `json:"email" xml:"email"`
	Address       string           `json:"address" xml:"address"`
	Status        string           `json:"status" xml:"status"`
	PhoneNumbers  []PhoneNumberDTO `json:"phoneNumbers" xml:"phoneNumbers>phoneNumber"`
}

// NewStudentResponse maps a models.Student to its response form
func NewStudentResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		UUID:          s.UUID,
		StudentID:     s.StudentID,
		FirstName:     s.FirstName,
		MiddleName:    s.MiddleName,
		FirstSurname:  s.FirstSurname,
		SecondSurname: s.SecondSurname,
		Cedula:        s.Cedula,
		Email:         s.Email,
		Address:       s.Address,
		Status:        string(s.Status),
		PhoneNumbers:  phoneNumbersFromModels(s.PhoneNumbers),
	}
}

// StudentList wraps a list of students so it has a root element in XML
type StudentList struct {
	XMLName  xml.Name          `json:"-" xml:"students"`
	Students []StudentResponse `json:"students" xml:"student"`
}

// NewStudentList maps a slice of models.Student to a StudentList
func NewStudentList(students []*models.Student) StudentList {
	list := StudentList{Students: make([]StudentResponse, 0, len(students))}
	for _, s := range students {
		list.Students = append(list.Students, NewStudentResponse(s))
	}
	return list
}
