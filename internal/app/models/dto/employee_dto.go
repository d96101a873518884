package dto

import (
	"encoding/xml"

	"github.com/yigit/schoolregistry/internal/app/models"
)

// EmployeeRequest represents the body of an employee create or full-replacement update
type EmployeeRequest struct {
	XMLName       xml.Name         `json:"-" xml:"employee"`
	UUID          string           `json:"uuid,omitempty" xml:"uuid,omitempty" binding:"omitempty,max=64"`
	FirstName     string           `json:"firstName" xml:"firstName" binding:"required,max=100"`
	MiddleName    *string          `json:"middleName,omitempty" xml:"middleName,omitempty" binding:"omitempty,max=100"`
	FirstSurname  string           `json:"firstSurname" xml:"firstSurname" binding:"required,max=100"`
	SecondSurname *string          `json:"secondSurname,omitempty" xml:"secondSurname,omitempty" binding:"omitempty,max=100"`
	Cedula        string           `json:"cedula" xml:"cedula" binding:"required,max=32"`
	Email         string           `json:"email" xml:"email" binding:"required,email"`
	Role          string           `json:"role" xml:"role" binding:"required" example:"PROFESSOR" enums:"PROFESSOR,ADMINISTRATIVE,SUPPORT,DIRECTOR"`
	PhoneNumbers  []PhoneNumberDTO `json:"phoneNumbers" xml:"phoneNumbers>phoneNumber" binding:"dive"`
}

// ToModel converts the request to a models.Employee
func (r *EmployeeRequest) ToModel() *models.Employee {
	return &models.Employee{
		UUID: r.UUID,
		PersonName: models.PersonName{
			FirstName:     r.FirstName,
			MiddleName:    r.MiddleName,
			FirstSurname:  r.FirstSurname,
			SecondSurname: r.SecondSurname,
		},
		Cedula:       r.Cedula,
		Email:        r.Email,
		Role:         models.EmployeeRole(r.Role),
		PhoneNumbers: phoneNumbersToModels(r.PhoneNumbers),
	}
}

// EmployeeResponse is the external representation of an employee
type EmployeeResponse struct {
	XMLName       xml.Name         `json:"-" xml:"employee"`
	UUID          string           `json:"uuid" xml:"uuid"`
	FirstName     string           `json:"firstName" xml:"firstName"`
	MiddleName    *string          `json:"middleName,omitempty" xml:"middleName,omitempty"`
	FirstSurname  string           `json:"firstSurname" xml:"firstSurname"`
	SecondSurname *string          `json:"secondSurname,omitempty" xml:"secondSurname,omitempty"`
	Cedula        string           `json:"cedula" xml:"cedula"`
	Email         string           `json:"email" xml:"email"`
	Role          string           `json:"role" xml:"role"`
	PhoneNumbers  []PhoneNumberDTO `json:"phoneNumbers" xml:"phoneNumbers>phoneNumber"`
}

// NewEmployeeResponse maps a models.Employee to its response form
func NewEmployeeResponse(e *models.Employee) EmployeeResponse {
	return EmployeeResponse{
		UUID:          e.UUID,
		FirstName:     e.FirstName,
		MiddleName:    e.MiddleName,
		FirstSurname:  e.FirstSurname,
		SecondSurname: e.SecondSurname,
		Cedula:        e.Cedula,
		Email:         e.Email,
		Role:          string(e.Role),
		PhoneNumbers:  phoneNumbersFromModels(e.PhoneNumbers),
	}
}

// EmployeeList wraps a list of employees so it has a root element in XML
type EmployeeList struct {
	XMLName   xml.Name           `json:"-" xml:"employees"`
	Employees []EmployeeResponse `json:"employees" xml:"employee"`
}

// NewEmployeeList maps a slice of models.Employee to an EmployeeList
func NewEmployeeList(employees []*models.Employee) EmployeeList {
	list := EmployeeList{Employees: make([]EmployeeResponse, 0, len(employees))}
	for _, e := range employees {
		list.Employees = append(list.Employees, NewEmployeeResponse(e))
	}
	return list
}
