// dao/user_dao.go
package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dev-mohitbeniwal/employee-management/audit"
	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/model"
)

type UserDAO struct {
	DB           *gorm.DB
	AuditService audit.Service
}

func NewUserDAO(db *gorm.DB, auditService audit.Service) *UserDAO {
	return &UserDAO{DB: db, AuditService: auditService}
}

func (dao *UserDAO) CreateUser(ctx context.Context, user *model.User) error {
	start := time.Now()
	logger.Info("Creating new user", zap.String("username", user.UserName))

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.SecurityStamp == "" {
		user.SecurityStamp = uuid.New().String()
	}

	if err := dao.DB.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.UserName),
			zap.Duration("duration", time.Since(start)))
		return dbError(err, nil, echo_errors.ErrUserConflict)
	}

	logger.Info("User created successfully",
		zap.String("userID", user.ID),
		zap.Duration("duration", time.Since(start)))
	audit.Record(ctx, dao.AuditService, "CREATE_USER", user.ID, true, map[string]string{
		"user_name": user.UserName,
		"email":     user.Email,
	})
	return nil
}

func (dao *UserDAO) GetUser(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	if err := dao.DB.WithContext(ctx).Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, dbError(err, echo_errors.ErrUserNotFound, nil)
	}
	return &user, nil
}

// FindByEmail looks a user up by email, ignoring case.
func (dao *UserDAO) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := dao.DB.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error; err != nil {
		return nil, dbError(err, echo_errors.ErrUserNotFound, nil)
	}
	return &user, nil
}

// FindByUserName looks a user up by user name, ignoring case.
func (dao *UserDAO) FindByUserName(ctx context.Context, userName string) (*model.User, error) {
	var user model.User
	if err := dao.DB.WithContext(ctx).Where("LOWER(user_name) = LOWER(?)", userName).First(&user).Error; err != nil {
		return nil, dbError(err, echo_errors.ErrUserNotFound, nil)
	}
	return &user, nil
}

// FindByLogin returns the user linked to an external login.
func (dao *UserDAO) FindByLogin(ctx context.Context, provider, providerKey string) (*model.User, error) {
	var login model.UserLogin
	err := dao.DB.WithContext(ctx).
		Where("login_provider = ? AND provider_key = ?", provider, providerKey).
		First(&login).Error
	if err != nil {
		return nil, dbError(err, echo_errors.ErrUserNotFound, nil)
	}
	return dao.GetUser(ctx, login.UserID)
}

func (dao *UserDAO) AddLogin(ctx context.Context, login model.UserLogin) error {
	if err := dao.DB.WithContext(ctx).Create(&login).Error; err != nil {
		logger.Error("Failed to add external login",
			zap.Error(err),
			zap.String("userID", login.UserID),
			zap.String("provider", login.LoginProvider))
		return dbError(err, nil, echo_errors.ErrUserConflict)
	}
	return nil
}

func (dao *UserDAO) ListUsers(ctx context.Context, limit int, offset int) ([]*model.User, error) {
	var users []*model.User
	q := dao.DB.WithContext(ctx).Order("user_name")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	if err := q.Find(&users).Error; err != nil {
		logger.Error("Failed to list users", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, dbError(err, nil, nil)
	}
	return users, nil
}

// UpdateUser persists the scalar fields of user.
func (dao *UserDAO) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	logger.Info("Updating user", zap.String("userID", user.ID))

	var updated model.User
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", user.ID).First(&updated).Error; err != nil {
			return err
		}
		updated.UserName = user.UserName
		updated.Email = user.Email
		updated.EmailConfirmed = user.EmailConfirmed
		updated.PasswordHash = user.PasswordHash
		if user.SecurityStamp != "" {
			updated.SecurityStamp = user.SecurityStamp
		}
		updated.City = user.City
		return tx.Omit(clause.Associations).Save(&updated).Error
	})
	if err != nil {
		logger.Error("Failed to update user",
			zap.Error(err),
			zap.String("userID", user.ID),
			zap.Duration("duration", time.Since(start)))
		return nil, dbError(err, echo_errors.ErrUserNotFound, echo_errors.ErrUserConflict)
	}

	logger.Info("User updated successfully",
		zap.String("userID", user.ID),
		zap.Duration("duration", time.Since(start)))
	audit.Record(ctx, dao.AuditService, "UPDATE_USER", user.ID, true, map[string]string{
		"user_name": updated.UserName,
		"email":     updated.Email,
		"city":      updated.City,
	})
	return &updated, nil
}

// DeleteUser removes the user with its claims, logins and role memberships.
func (dao *UserDAO) DeleteUser(ctx context.Context, userID string) error {
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return err
		}
		return tx.Select(clause.Associations).Delete(&user).Error
	})
	if err != nil {
		logger.Error("Failed to delete user", zap.Error(err), zap.String("userID", userID))
		return dbError(err, echo_errors.ErrUserNotFound, nil)
	}

	logger.Info("User deleted successfully", zap.String("userID", userID))
	audit.Record(ctx, dao.AuditService, "DELETE_USER", userID, true, nil)
	return nil
}

func (dao *UserDAO) GetClaims(ctx context.Context, userID string) ([]model.UserClaim, error) {
	var claims []model.UserClaim
	if err := dao.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&claims).Error; err != nil {
		return nil, dbError(err, nil, nil)
	}
	return claims, nil
}

// rotateStamp gives the user a new security stamp, which ends every session
// and purpose token issued under the old one.
func rotateStamp(tx *gorm.DB, userID string) error {
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		Update("security_stamp", uuid.NewString()).Error
}

// ReplaceClaims swaps every claim of the user for claims in one transaction.
func (dao *UserDAO) ReplaceClaims(ctx context.Context, userID string, claims []model.UserClaim) error {
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&model.UserClaim{}).Error; err != nil {
			return err
		}
		if len(claims) > 0 {
			for i := range claims {
				claims[i].ID = 0
				claims[i].UserID = userID
			}
			if err := tx.Create(&claims).Error; err != nil {
				return err
			}
		}
		return rotateStamp(tx, userID)
	})
	if err != nil {
		logger.Error("Failed to replace user claims", zap.Error(err), zap.String("userID", userID))
		return dbError(err, nil, nil)
	}
	audit.Record(ctx, dao.AuditService, "UPDATE_USER_CLAIMS", userID, true, claims)
	return nil
}

func (dao *UserDAO) GetRoles(ctx context.Context, userID string) ([]model.Role, error) {
	var roles []model.Role
	err := dao.DB.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.name").
		Find(&roles).Error
	if err != nil {
		return nil, dbError(err, nil, nil)
	}
	return roles, nil
}

// ReplaceRoles sets the role memberships of the user to exactly roles.
func (dao *UserDAO) ReplaceRoles(ctx context.Context, userID string, roles []model.Role) error {
	user := model.User{ID: userID}
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Association("Roles").Replace(roles); err != nil {
			return err
		}
		return rotateStamp(tx, userID)
	})
	if err != nil {
		logger.Error("Failed to replace user roles", zap.Error(err), zap.String("userID", userID))
		return dbError(err, nil, nil)
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	audit.Record(ctx, dao.AuditService, "UPDATE_USER_ROLES", userID, true, names)
	return nil
}

func (dao *UserDAO) AddToRole(ctx context.Context, userID string, role model.Role) error {
	user := model.User{ID: userID}
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Association("Roles").Append(&role); err != nil {
			return err
		}
		return rotateStamp(tx, userID)
	})
	if err != nil {
		return dbError(err, nil, nil)
	}
	audit.Record(ctx, dao.AuditService, "ADD_USER_TO_ROLE", userID, true, role.Name)
	return nil
}

func (dao *UserDAO) RemoveFromRole(ctx context.Context, userID string, role model.Role) error {
	user := model.User{ID: userID}
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&user).Association("Roles").Delete(&role); err != nil {
			return err
		}
		return rotateStamp(tx, userID)
	})
	if err != nil {
		return dbError(err, nil, nil)
	}
	audit.Record(ctx, dao.AuditService, "REMOVE_USER_FROM_ROLE", userID, true, role.Name)
	return nil
}

func (dao *UserDAO) IsInRole(ctx context.Context, userID, roleID string) (bool, error) {
	var count int64
	err := dao.DB.WithContext(ctx).Table("user_roles").
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Count(&count).Error
	if err != nil {
		return false, dbError(err, nil, nil)
	}
	return count > 0, nil
}

// UsersInRole returns the members of a role ordered by user name.
func (dao *UserDAO) UsersInRole(ctx context.Context, roleID string) ([]*model.User, error) {
	var users []*model.User
	err := dao.DB.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Where("user_roles.role_id = ?", roleID).
		Order("users.user_name").
		Find(&users).Error
	if err != nil {
		return nil, dbError(err, nil, nil)
	}
	return users, nil
}

// IsNotFound reports whether err means the user does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, echo_errors.ErrUserNotFound) ||
		errors.Is(err, echo_errors.ErrRoleNotFound) ||
		errors.Is(err, echo_errors.ErrEmployeeNotFound)
}
