package services

import "github.com/yigit/schoolregistry/internal/app/repositories"

// Services holds the gateway services exposed to the HTTP layer
type Services struct {
	StudentService  StudentService
	EmployeeService EmployeeService
}

// NewServices wires every service to its repository
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		StudentService:  NewStudentService(repos.StudentRepository),
		EmployeeService: NewEmployeeService(repos.EmployeeRepository),
	}
}
