// errors/employee_errors.go
package errors

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrInvalidEmployeeData = errors.New("invalid employee data")
	ErrPhotoUpload         = errors.New("photo upload failed")
)
