// model/employee.go
package model

import "time"

// Dept is the department an employee belongs to.
type Dept string

const (
	DeptNone    Dept = "None"
	DeptHR      Dept = "HR"
	DeptIT      Dept = "IT"
	DeptPayroll Dept = "Payroll"
)

// Valid reports whether d is one of the known departments.
func (d Dept) Valid() bool {
	switch d {
	case DeptNone, DeptHR, DeptIT, DeptPayroll:
		return true
	}
	return false
}

type Employee struct {
	ID          int       `json:"-" gorm:"primaryKey;autoIncrement"`
	EncryptedID string    `json:"encrypted_id" gorm:"-"`
	Name        string    `json:"name" gorm:"not null"`
	Email       string    `json:"email" gorm:"not null"`
	Department  Dept      `json:"department" gorm:"not null"`
	PhotoPath   string    `json:"photo_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmployeeForm is the multipart form used to create or edit an employee.
// The photo travels as a separate file field.
type EmployeeForm struct {
	Name       string `form:"name" binding:"required,max=50"`
	Email      string `form:"email" binding:"required,email"`
	Department Dept   `form:"department" binding:"required"`
}
