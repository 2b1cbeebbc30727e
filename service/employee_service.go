// service/employee_service.go
package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/employee-management/dao"
	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/model"
	"github.com/dev-mohitbeniwal/employee-management/security"
	"github.com/dev-mohitbeniwal/employee-management/util"
)

// IEmployeeService works on employees addressed by their obfuscated ids.
type IEmployeeService interface {
	ListEmployees(ctx context.Context) ([]*model.Employee, error)
	GetEmployee(ctx context.Context, encryptedID string) (*model.Employee, error)
	CreateEmployee(ctx context.Context, form model.EmployeeForm, photo *multipart.FileHeader) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, encryptedID string, form model.EmployeeForm, photo *multipart.FileHeader) (*model.Employee, error)
	DeleteEmployee(ctx context.Context, encryptedID string) error
}

type EmployeeService struct {
	repo            dao.EmployeeRepository
	obfuscator      *security.IDObfuscator
	validationUtil  *util.ValidationUtil
	cacheService    *util.CacheService
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
	photos          *util.PhotoStore
}

var _ IEmployeeService = &EmployeeService{}

func NewEmployeeService(
	repo dao.EmployeeRepository,
	obfuscator *security.IDObfuscator,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
	photos *util.PhotoStore,
) *EmployeeService {
	service := &EmployeeService{
		repo:            repo,
		obfuscator:      obfuscator,
		validationUtil:  validationUtil,
		cacheService:    cacheService,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
		photos:          photos,
	}

	eventBus.Subscribe(util.EventEmployeeCreated, service.handleEmployeeChanged)
	eventBus.Subscribe(util.EventEmployeeUpdated, service.handleEmployeeChanged)
	eventBus.Subscribe(util.EventEmployeeDeleted, service.handleEmployeeDeleted)

	return service
}

func (s *EmployeeService) handleEmployeeChanged(ctx context.Context, event util.Event) error {
	employee := event.Payload.(model.Employee)
	changeType := "created"
	if event.Type == util.EventEmployeeUpdated {
		changeType = "updated"
	}
	if err := s.notificationSvc.NotifyEmployeeChange(ctx, changeType, employee); err != nil {
		logger.Warn("Failed to send employee notification", zap.Error(err), zap.Int("employeeID", employee.ID))
	}
	return nil
}

func (s *EmployeeService) handleEmployeeDeleted(ctx context.Context, event util.Event) error {
	employee := event.Payload.(model.Employee)
	s.photos.Remove(employee.PhotoPath)
	if err := s.notificationSvc.NotifyEmployeeChange(ctx, "deleted", employee); err != nil {
		logger.Warn("Failed to send employee deletion notification", zap.Error(err), zap.Int("employeeID", employee.ID))
	}
	return nil
}

// decodeID turns a route value back into a primary key. Tokens that do not
// decrypt are reported as a missing employee.
func (s *EmployeeService) decodeID(encryptedID string) (int, error) {
	id, err := s.obfuscator.Deobfuscate(encryptedID, security.EmployeeIDRouteValue)
	if err != nil {
		logger.Warn("Rejected employee route value", zap.Error(err))
		return 0, echo_errors.ErrEmployeeNotFound
	}
	return id, nil
}

func (s *EmployeeService) encode(employee *model.Employee) error {
	token, err := s.obfuscator.Obfuscate(employee.ID, security.EmployeeIDRouteValue)
	if err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInternalServer, err)
	}
	employee.EncryptedID = token
	return nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context) ([]*model.Employee, error) {
	employees, err := s.repo.ListEmployees(ctx)
	if err != nil {
		logger.Error("Error listing employees", zap.Error(err))
		return nil, err
	}
	for _, e := range employees {
		if err := s.encode(e); err != nil {
			return nil, err
		}
	}
	return employees, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, encryptedID string) (*model.Employee, error) {
	id, err := s.decodeID(encryptedID)
	if err != nil {
		return nil, err
	}

	employee, err := s.cacheService.GetEmployee(ctx, id)
	if err != nil {
		logger.Warn("Failed to read employee from cache", zap.Error(err), zap.Int("employeeID", id))
	}
	if employee == nil {
		employee, err = s.repo.GetEmployee(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cacheService.SetEmployee(ctx, *employee); err != nil {
			logger.Warn("Failed to cache employee", zap.Error(err), zap.Int("employeeID", id))
		}
	}

	if err := s.encode(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, form model.EmployeeForm, photo *multipart.FileHeader) (*model.Employee, error) {
	employee := model.Employee{Name: form.Name, Email: form.Email, Department: form.Department}
	if err := s.validationUtil.ValidateEmployee(employee); err != nil {
		return nil, err
	}

	photoPath, err := s.photos.Save(photo)
	if err != nil {
		return nil, err
	}
	employee.PhotoPath = photoPath

	if err := s.repo.CreateEmployee(ctx, &employee); err != nil {
		s.photos.Remove(photoPath)
		logger.Error("Error creating employee", zap.Error(err))
		return nil, err
	}

	if err := s.cacheService.SetEmployee(ctx, employee); err != nil {
		logger.Warn("Failed to cache employee", zap.Error(err), zap.Int("employeeID", employee.ID))
	}
	s.eventBus.Publish(context.WithoutCancel(ctx), util.EventEmployeeCreated, employee)

	if err := s.encode(&employee); err != nil {
		return nil, err
	}
	logger.Info("Employee created successfully", zap.Int("employeeID", employee.ID))
	return &employee, nil
}

// UpdateEmployee replaces the editable fields. A new photo replaces and
// removes the stored one; without a photo the old one is kept.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, encryptedID string, form model.EmployeeForm, photo *multipart.FileHeader) (*model.Employee, error) {
	id, err := s.decodeID(encryptedID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	employee := *existing
	employee.Name, employee.Email, employee.Department = form.Name, form.Email, form.Department
	if err := s.validationUtil.ValidateEmployee(employee); err != nil {
		return nil, err
	}

	if photo != nil {
		photoPath, err := s.photos.Save(photo)
		if err != nil {
			return nil, err
		}
		employee.PhotoPath = photoPath
	}

	updated, err := s.repo.UpdateEmployee(ctx, &employee)
	if err != nil {
		if photo != nil {
			s.photos.Remove(employee.PhotoPath)
		}
		logger.Error("Error updating employee", zap.Error(err), zap.Int("employeeID", id))
		return nil, err
	}
	if photo != nil && existing.PhotoPath != "" {
		s.photos.Remove(existing.PhotoPath)
	}

	if err := s.cacheService.SetEmployee(ctx, *updated); err != nil {
		logger.Warn("Failed to update employee in cache", zap.Error(err), zap.Int("employeeID", id))
	}
	s.eventBus.Publish(context.WithoutCancel(ctx), util.EventEmployeeUpdated, *updated)

	if err := s.encode(updated); err != nil {
		return nil, err
	}
	logger.Info("Employee updated successfully", zap.Int("employeeID", id))
	return updated, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, encryptedID string) error {
	id, err := s.decodeID(encryptedID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteEmployee(ctx, id)
	if err != nil {
		logger.Error("Error deleting employee", zap.Error(err), zap.Int("employeeID", id))
		return err
	}

	if err := s.cacheService.DeleteEmployee(ctx, id); err != nil {
		logger.Warn("Failed to delete employee from cache", zap.Error(err), zap.Int("employeeID", id))
	}
	s.eventBus.Publish(context.WithoutCancel(ctx), util.EventEmployeeDeleted, *deleted)

	logger.Info("Employee deleted successfully", zap.Int("employeeID", id))
	return nil
}
