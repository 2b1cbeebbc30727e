// dao/role_dao.go
package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dev-mohitbeniwal/employee-management/audit"
	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/model"
)

type RoleDAO struct {
	DB           *gorm.DB
	AuditService audit.Service
}

func NewRoleDAO(db *gorm.DB, auditService audit.Service) *RoleDAO {
	return &RoleDAO{DB: db, AuditService: auditService}
}

func (dao *RoleDAO) CreateRole(ctx context.Context, role *model.Role) error {
	start := time.Now()
	logger.Info("Creating new role", zap.String("roleName", role.Name))

	if role.ID == "" {
		role.ID = uuid.New().String()
	}
	if err := dao.DB.WithContext(ctx).Create(role).Error; err != nil {
		logger.Error("Failed to create role",
			zap.Error(err),
			zap.String("roleName", role.Name),
			zap.Duration("duration", time.Since(start)))
		return dbError(err, nil, echo_errors.ErrRoleConflict)
	}

	logger.Info("Role created successfully",
		zap.String("roleID", role.ID),
		zap.Duration("duration", time.Since(start)))
	audit.Record(ctx, dao.AuditService, "CREATE_ROLE", role.ID, true, role.Name)
	return nil
}

func (dao *RoleDAO) GetRole(ctx context.Context, roleID string) (*model.Role, error) {
	var role model.Role
	if err := dao.DB.WithContext(ctx).Where("id = ?", roleID).First(&role).Error; err != nil {
		return nil, dbError(err, echo_errors.ErrRoleNotFound, nil)
	}
	return &role, nil
}

// FindByName looks a role up by name, ignoring case.
func (dao *RoleDAO) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := dao.DB.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&role).Error; err != nil {
		return nil, dbError(err, echo_errors.ErrRoleNotFound, nil)
	}
	return &role, nil
}

func (dao *RoleDAO) ListRoles(ctx context.Context) ([]*model.Role, error) {
	var roles []*model.Role
	if err := dao.DB.WithContext(ctx).Order("name").Find(&roles).Error; err != nil {
		logger.Error("Failed to list roles", zap.Error(err))
		return nil, dbError(err, nil, nil)
	}
	return roles, nil
}

func (dao *RoleDAO) UpdateRole(ctx context.Context, role *model.Role) (*model.Role, error) {
	var updated model.Role
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", role.ID).First(&updated).Error; err != nil {
			return err
		}
		updated.Name = role.Name
		return tx.Save(&updated).Error
	})
	if err != nil {
		logger.Error("Failed to update role", zap.Error(err), zap.String("roleID", role.ID))
		return nil, dbError(err, echo_errors.ErrRoleNotFound, echo_errors.ErrRoleConflict)
	}

	logger.Info("Role updated successfully", zap.String("roleID", role.ID))
	audit.Record(ctx, dao.AuditService, "UPDATE_ROLE", role.ID, true, role.Name)
	return &updated, nil
}

// DeleteRole removes a role that no user holds. A role with members fails
// with ErrRoleInUse.
func (dao *RoleDAO) DeleteRole(ctx context.Context, roleID string) error {
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var role model.Role
		if err := tx.Where("id = ?", roleID).First(&role).Error; err != nil {
			return err
		}
		var members int64
		if err := tx.Table("user_roles").Where("role_id = ?", roleID).Count(&members).Error; err != nil {
			return err
		}
		if members > 0 {
			return echo_errors.ErrRoleInUse
		}
		return tx.Delete(&role).Error
	})
	if err == echo_errors.ErrRoleInUse {
		logger.Warn("Refusing to delete role in use", zap.String("roleID", roleID))
		return err
	}
	if err != nil {
		logger.Error("Failed to delete role", zap.Error(err), zap.String("roleID", roleID))
		return dbError(err, echo_errors.ErrRoleNotFound, nil)
	}

	logger.Info("Role deleted successfully", zap.String("roleID", roleID))
	audit.Record(ctx, dao.AuditService, "DELETE_ROLE", roleID, true, nil)
	return nil
}
