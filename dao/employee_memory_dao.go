// dao/employee_memory_dao.go
package dao

import (
	"context"
	"sort"
	"sync"
	"time"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	"github.com/dev-mohitbeniwal/employee-management/model"
)

// MemoryEmployeeDAO keeps employees in process memory. It backs the
// "memory" database driver used for demos.
type MemoryEmployeeDAO struct {
	mu        sync.RWMutex
	employees map[int]model.Employee
	nextID    int
}

var _ EmployeeRepository = &MemoryEmployeeDAO{}

// NewMemoryEmployeeDAO returns a repository seeded with three employees.
func NewMemoryEmployeeDAO() *MemoryEmployeeDAO {
	dao := &MemoryEmployeeDAO{employees: make(map[int]model.Employee), nextID: 1}
	now := time.Now()
	for _, e := range []model.Employee{
		{Name: "Mary", Department: model.DeptHR, Email: "mary@pragimtech.com"},
		{Name: "John", Department: model.DeptIT, Email: "john@pragimtech.com"},
		{Name: "Sam", Department: model.DeptIT, Email: "sam@pragimtech.com"},
	} {
		e.ID = dao.nextID
		e.CreatedAt, e.UpdatedAt = now, now
		dao.employees[e.ID] = e
		dao.nextID++
	}
	return dao
}

func (dao *MemoryEmployeeDAO) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	dao.mu.Lock()
	defer dao.mu.Unlock()

	employee.ID = dao.nextID
	dao.nextID++
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = employee.CreatedAt
	dao.employees[employee.ID] = *employee
	return nil
}

func (dao *MemoryEmployeeDAO) GetEmployee(ctx context.Context, employeeID int) (*model.Employee, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()

	e, ok := dao.employees[employeeID]
	if !ok {
		return nil, echo_errors.ErrEmployeeNotFound
	}
	return &e, nil
}

func (dao *MemoryEmployeeDAO) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()

	employees := make([]*model.Employee, 0, len(dao.employees))
	for _, e := range dao.employees {
		e := e
		employees = append(employees, &e)
	}
	sort.Slice(employees, func(i, j int) bool { return employees[i].ID < employees[j].ID })
	return employees, nil
}

func (dao *MemoryEmployeeDAO) UpdateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	dao.mu.Lock()
	defer dao.mu.Unlock()

	e, ok := dao.employees[employee.ID]
	if !ok {
		return nil, echo_errors.ErrEmployeeNotFound
	}
	e.Name = employee.Name
	e.Email = employee.Email
	e.Department = employee.Department
	e.PhotoPath = employee.PhotoPath
	e.UpdatedAt = time.Now()
	dao.employees[e.ID] = e
	return &e, nil
}

func (dao *MemoryEmployeeDAO) DeleteEmployee(ctx context.Context, employeeID int) (*model.Employee, error) {
	dao.mu.Lock()
	defer dao.mu.Unlock()

	e, ok := dao.employees[employeeID]
	if !ok {
		return nil, echo_errors.ErrEmployeeNotFound
	}
	delete(dao.employees, employeeID)
	return &e, nil
}
