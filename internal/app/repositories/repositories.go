package repositories

import (
	"github.com/yigit/schoolregistry/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentStatusRepository *LookupRepository
	EmployeeRoleRepository  *LookupRepository
	PhoneTypeRepository     *LookupRepository
	PhoneNumberRepository   *PhoneNumberRepository
	StudentRepository       *StudentRepository
	EmployeeRepository      *EmployeeRepository
}

// NewRepositories initializes all repositories. cache may be nil.
func NewRepositories(pool db.Pool, cache KeyCache) *Repositories {
	statuses := NewLookupRepository(StudentStatusTable, cache)
	roles := NewLookupRepository(EmployeeRoleTable, cache)
	phoneTypes := NewLookupRepository(PhoneTypeTable, cache)
	phones := NewPhoneNumberRepository(phoneTypes)

	return &Repositories{
		StudentStatusRepository: statuses,
		EmployeeRoleRepository:  roles,
		PhoneTypeRepository:     phoneTypes,
		PhoneNumberRepository:   phones,
		StudentRepository:       NewStudentRepository(pool, statuses, phones),
		EmployeeRepository:      NewEmployeeRepository(pool, roles, phones),
	}
}
