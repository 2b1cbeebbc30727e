// dao/employee_dao.go
package dao

import (
	"context"
	"errors"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dev-mohitbeniwal/employee-management/audit"
	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/model"
)

// EmployeeRepository is the storage contract of the employee directory.
type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *model.Employee) error
	GetEmployee(ctx context.Context, employeeID int) (*model.Employee, error)
	ListEmployees(ctx context.Context) ([]*model.Employee, error)
	UpdateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID int) (*model.Employee, error)
}

type EmployeeDAO struct {
	DB           *gorm.DB
	AuditService audit.Service
}

var _ EmployeeRepository = &EmployeeDAO{}

func NewEmployeeDAO(db *gorm.DB, auditService audit.Service) *EmployeeDAO {
	return &EmployeeDAO{DB: db, AuditService: auditService}
}

func (dao *EmployeeDAO) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	start := time.Now()
	logger.Info("Creating new employee", zap.String("name", employee.Name))

	if err := dao.DB.WithContext(ctx).Create(employee).Error; err != nil {
		logger.Error("Failed to create employee",
			zap.Error(err),
			zap.String("name", employee.Name),
			zap.Duration("duration", time.Since(start)))
		return dbError(err, nil, nil)
	}

	logger.Info("Employee created successfully",
		zap.Int("employeeID", employee.ID),
		zap.Duration("duration", time.Since(start)))
	audit.Record(ctx, dao.AuditService, "CREATE_EMPLOYEE", strconv.Itoa(employee.ID), true, employee)
	return nil
}

func (dao *EmployeeDAO) GetEmployee(ctx context.Context, employeeID int) (*model.Employee, error) {
	var employee model.Employee
	if err := dao.DB.WithContext(ctx).First(&employee, employeeID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to retrieve employee", zap.Error(err), zap.Int("employeeID", employeeID))
		}
		return nil, dbError(err, echo_errors.ErrEmployeeNotFound, nil)
	}
	return &employee, nil
}

func (dao *EmployeeDAO) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	var employees []*model.Employee
	if err := dao.DB.WithContext(ctx).Order("id").Find(&employees).Error; err != nil {
		logger.Error("Failed to list employees", zap.Error(err))
		return nil, dbError(err, nil, nil)
	}
	return employees, nil
}

func (dao *EmployeeDAO) UpdateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	start := time.Now()
	logger.Info("Updating employee", zap.Int("employeeID", employee.ID))

	var updated model.Employee
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&updated, employee.ID).Error; err != nil {
			return err
		}
		updated.Name = employee.Name
		updated.Email = employee.Email
		updated.Department = employee.Department
		updated.PhotoPath = employee.PhotoPath
		return tx.Save(&updated).Error
	})
	if err != nil {
		logger.Error("Failed to update employee",
			zap.Error(err),
			zap.Int("employeeID", employee.ID),
			zap.Duration("duration", time.Since(start)))
		return nil, dbError(err, echo_errors.ErrEmployeeNotFound, nil)
	}

	logger.Info("Employee updated successfully",
		zap.Int("employeeID", employee.ID),
		zap.Duration("duration", time.Since(start)))
	audit.Record(ctx, dao.AuditService, "UPDATE_EMPLOYEE", strconv.Itoa(updated.ID), true, updated)
	return &updated, nil
}

func (dao *EmployeeDAO) DeleteEmployee(ctx context.Context, employeeID int) (*model.Employee, error) {
	var deleted model.Employee
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, employeeID).Error; err != nil {
			return err
		}
		return tx.Delete(&deleted).Error
	})
	if err != nil {
		logger.Error("Failed to delete employee", zap.Error(err), zap.Int("employeeID", employeeID))
		return nil, dbError(err, echo_errors.ErrEmployeeNotFound, nil)
	}

	logger.Info("Employee deleted successfully", zap.Int("employeeID", employeeID))
	audit.Record(ctx, dao.AuditService, "DELETE_EMPLOYEE", strconv.Itoa(deleted.ID), true, deleted)
	return &deleted, nil
}
