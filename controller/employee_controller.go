// controller/employee_controller.go
package controller

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	"github.com/dev-mohitbeniwal/employee-management/model"
	"github.com/dev-mohitbeniwal/employee-management/service"
	"github.com/dev-mohitbeniwal/employee-management/util"
)

type EmployeeController struct {
	employeeService service.IEmployeeService
}

func NewEmployeeController(employeeService service.IEmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// RegisterRoutes registers the employee routes. Reads are anonymous; changes
// go through auth.
func (ec *EmployeeController) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	employees := r.Group("/employees")
	{
		employees.GET("", ec.ListEmployees)
		employees.GET("/:id", ec.GetEmployee)
		employees.POST("", auth, ec.CreateEmployee)
		employees.PUT("/:id", auth, ec.UpdateEmployee)
		employees.DELETE("/:id", auth, ec.DeleteEmployee)
	}
}

// ListEmployees endpoint
func (ec *EmployeeController) ListEmployees(c *gin.Context) {
	employees, err := ec.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, employees)
}

// GetEmployee endpoint
func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	employee, err := ec.employeeService.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to get employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// CreateEmployee endpoint
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	form, photo, ok := bindEmployeeForm(c)
	if !ok {
		return
	}

	employee, err := ec.employeeService.CreateEmployee(c.Request.Context(), form, photo)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// UpdateEmployee endpoint
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	form, photo, ok := bindEmployeeForm(c)
	if !ok {
		return
	}

	employee, err := ec.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), form, photo)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee endpoint
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	if err := ec.employeeService.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete employee")
		return
	}
	c.Status(http.StatusNoContent)
}

func bindEmployeeForm(c *gin.Context) (model.EmployeeForm, *multipart.FileHeader, bool) {
	var form model.EmployeeForm
	if err := c.ShouldBind(&form); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee data", echo_errors.ErrInvalidEmployeeData)
		return form, nil, false
	}

	photo, err := c.FormFile("photo")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid photo upload", echo_errors.ErrPhotoUpload)
		return form, nil, false
	}
	return form, photo, true
}
