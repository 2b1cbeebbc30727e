// service/administration_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/employee-management/audit"
	"github.com/dev-mohitbeniwal/employee-management/dao"
	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/model"
	"github.com/dev-mohitbeniwal/employee-management/security"
	"github.com/dev-mohitbeniwal/employee-management/util"
)

// IAdministrationService manages roles, users and user claims. Callers are
// expected to have checked the Admin role and, where required, Decide.
type IAdministrationService interface {
	CreateRole(ctx context.Context, name string) (*model.Role, error)
	ListRoles(ctx context.Context) ([]*model.Role, error)
	GetRole(ctx context.Context, roleID string) (*model.RoleDetails, error)
	UpdateRole(ctx context.Context, roleID, name string) (*model.RoleDetails, error)
	DeleteRole(ctx context.Context, roleID string) error
	GetUsersInRole(ctx context.Context, roleID string) ([]model.UserRoleSelection, error)
	UpdateUsersInRole(ctx context.Context, roleID string, selections []model.UserRoleSelection) error

	ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error)
	GetUser(ctx context.Context, userID string) (*model.UserDetails, error)
	EditUser(ctx context.Context, userID string, req model.EditUserRequest) (*model.UserDetails, error)
	DeleteUser(ctx context.Context, userID string) error

	GetUserRoles(ctx context.Context, userID string) ([]model.RoleSelection, error)
	UpdateUserRoles(ctx context.Context, userID string, selections []model.RoleSelection) error
	GetUserClaims(ctx context.Context, userID string) (*model.UserClaimsView, error)
	UpdateUserClaims(ctx context.Context, userID string, claims []model.ClaimSelection) error

	RecordDecision(ctx context.Context, action, targetUserID string, decision security.Decision)
	QueryAuditLogs(ctx context.Context, from, to time.Time, userID, resourceID string) ([]audit.AuditLog, error)
}

type AdministrationService struct {
	userDAO        *dao.UserDAO
	roleDAO        *dao.RoleDAO
	claimsStore    *security.ClaimsStore
	validationUtil *util.ValidationUtil
	auditService   audit.Service
}

var _ IAdministrationService = &AdministrationService{}

func NewAdministrationService(userDAO *dao.UserDAO, roleDAO *dao.RoleDAO, claimsStore *security.ClaimsStore, validationUtil *util.ValidationUtil, auditService audit.Service) *AdministrationService {
	return &AdministrationService{
		userDAO:        userDAO,
		roleDAO:        roleDAO,
		claimsStore:    claimsStore,
		validationUtil: validationUtil,
		auditService:   auditService,
	}
}

func (s *AdministrationService) CreateRole(ctx context.Context, name string) (*model.Role, error) {
	if err := s.validationUtil.ValidateRoleName(name); err != nil {
		return nil, err
	}
	role := &model.Role{Name: strings.TrimSpace(name)}
	if err := s.roleDAO.CreateRole(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *AdministrationService) ListRoles(ctx context.Context) ([]*model.Role, error) {
	return s.roleDAO.ListRoles(ctx)
}

func (s *AdministrationService) roleDetails(ctx context.Context, role *model.Role) (*model.RoleDetails, error) {
	members, err := s.userDAO.UsersInRole(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	details := &model.RoleDetails{ID: role.ID, RoleName: role.Name, Users: make([]string, 0, len(members))}
	for _, u := range members {
		details.Users = append(details.Users, u.UserName)
	}
	return details, nil
}

func (s *AdministrationService) GetRole(ctx context.Context, roleID string) (*model.RoleDetails, error) {
	role, err := s.roleDAO.GetRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	return s.roleDetails(ctx, role)
}

func (s *AdministrationService) UpdateRole(ctx context.Context, roleID, name string) (*model.RoleDetails, error) {
	if err := s.validationUtil.ValidateRoleName(name); err != nil {
		return nil, err
	}
	role, err := s.roleDAO.UpdateRole(ctx, &model.Role{ID: roleID, Name: strings.TrimSpace(name)})
	if err != nil {
		return nil, err
	}
	return s.roleDetails(ctx, role)
}

func (s *AdministrationService) DeleteRole(ctx context.Context, roleID string) error {
	return s.roleDAO.DeleteRole(ctx, roleID)
}

func (s *AdministrationService) GetUsersInRole(ctx context.Context, roleID string) ([]model.UserRoleSelection, error) {
	if _, err := s.roleDAO.GetRole(ctx, roleID); err != nil {
		return nil, err
	}
	users, err := s.userDAO.ListUsers(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	selections := make([]model.UserRoleSelection, 0, len(users))
	for _, u := range users {
		in, err := s.userDAO.IsInRole(ctx, u.ID, roleID)
		if err != nil {
			return nil, err
		}
		selections = append(selections, model.UserRoleSelection{UserID: u.ID, UserName: u.UserName, IsSelected: in})
	}
	return selections, nil
}

// UpdateUsersInRole adds selected users to the role and removes unselected
// members. Users not listed are left alone.
func (s *AdministrationService) UpdateUsersInRole(ctx context.Context, roleID string, selections []model.UserRoleSelection) error {
	role, err := s.roleDAO.GetRole(ctx, roleID)
	if err != nil {
		return err
	}
	for _, sel := range selections {
		if _, err := s.userDAO.GetUser(ctx, sel.UserID); err != nil {
			return err
		}
		in, err := s.userDAO.IsInRole(ctx, sel.UserID, roleID)
		if err != nil {
			return err
		}
		switch {
		case sel.IsSelected && !in:
			err = s.userDAO.AddToRole(ctx, sel.UserID, *role)
		case !sel.IsSelected && in:
			err = s.userDAO.RemoveFromRole(ctx, sel.UserID, *role)
		}
		if err != nil {
			return err
		}
	}
	logger.Info("Role membership updated", zap.String("roleID", roleID), zap.Int("selections", len(selections)))
	return nil
}

func (s *AdministrationService) ListUsers(ctx context.Context, limit, offset int) ([]*model.User, error) {
	return s.userDAO.ListUsers(ctx, limit, offset)
}

func (s *AdministrationService) userDetails(ctx context.Context, user *model.User) (*model.UserDetails, error) {
	roles, err := s.userDAO.GetRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	claims, err := s.userDAO.GetClaims(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	details := &model.UserDetails{
		ID:       user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		City:     user.City,
		Roles:    make([]string, 0, len(roles)),
		Claims:   make([]string, 0, len(claims)),
	}
	for _, r := range roles {
		details.Roles = append(details.Roles, r.Name)
	}
	for _, c := range claims {
		details.Claims = append(details.Claims, c.ClaimType+" : "+c.ClaimValue)
	}
	return details, nil
}

func (s *AdministrationService) GetUser(ctx context.Context, userID string) (*model.UserDetails, error) {
	user, err := s.userDAO.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.userDetails(ctx, user)
}

func (s *AdministrationService) EditUser(ctx context.Context, userID string, req model.EditUserRequest) (*model.UserDetails, error) {
	if err := s.validationUtil.ValidateUserEdit(req); err != nil {
		return nil, err
	}
	user, err := s.userDAO.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.UserName, user.Email, user.City = req.UserName, req.Email, req.City
	updated, err := s.userDAO.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return s.userDetails(ctx, updated)
}

func (s *AdministrationService) DeleteUser(ctx context.Context, userID string) error {
	return s.userDAO.DeleteUser(ctx, userID)
}

func (s *AdministrationService) GetUserRoles(ctx context.Context, userID string) ([]model.RoleSelection, error) {
	if _, err := s.userDAO.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	roles, err := s.roleDAO.ListRoles(ctx)
	if err != nil {
		return nil, err
	}
	held, err := s.userDAO.GetRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	heldIDs := make(map[string]bool, len(held))
	for _, r := range held {
		heldIDs[r.ID] = true
	}
	selections := make([]model.RoleSelection, 0, len(roles))
	for _, r := range roles {
		selections = append(selections, model.RoleSelection{RoleID: r.ID, RoleName: r.Name, IsSelected: heldIDs[r.ID]})
	}
	return selections, nil
}

// UpdateUserRoles makes the selected roles the complete role set of the user.
func (s *AdministrationService) UpdateUserRoles(ctx context.Context, userID string, selections []model.RoleSelection) error {
	if _, err := s.userDAO.GetUser(ctx, userID); err != nil {
		return err
	}
	var roles []model.Role
	for _, sel := range selections {
		if !sel.IsSelected {
			continue
		}
		role, err := s.roleDAO.GetRole(ctx, sel.RoleID)
		if err != nil {
			return err
		}
		roles = append(roles, *role)
	}
	return s.userDAO.ReplaceRoles(ctx, userID, roles)
}

// GetUserClaims lists every catalog claim type; a type is selected when the
// user holds it with the value "true".
func (s *AdministrationService) GetUserClaims(ctx context.Context, userID string) (*model.UserClaimsView, error) {
	if _, err := s.userDAO.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	existing, err := s.userDAO.GetClaims(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &model.UserClaimsView{UserID: userID}
	for _, claimType := range s.claimsStore.AllClaimTypes() {
		selected := false
		for _, c := range existing {
			if strings.EqualFold(c.ClaimType, claimType) && c.ClaimValue == security.ClaimGranted {
				selected = true
				break
			}
		}
		view.Claims = append(view.Claims, model.ClaimSelection{ClaimType: claimType, IsSelected: selected})
	}
	return view, nil
}

// UpdateUserClaims stores every catalog claim type with "true" or "false".
func (s *AdministrationService) UpdateUserClaims(ctx context.Context, userID string, claims []model.ClaimSelection) error {
	if _, err := s.userDAO.GetUser(ctx, userID); err != nil {
		return err
	}
	selected := make(map[string]bool, len(claims))
	for _, c := range claims {
		if !s.claimsStore.Contains(c.ClaimType) {
			return fmt.Errorf("%w: unknown claim type %q", echo_errors.ErrInvalidClaimData, c.ClaimType)
		}
		selected[strings.ToLower(c.ClaimType)] = c.IsSelected
	}

	catalog := s.claimsStore.AllClaimTypes()
	stored := make([]model.UserClaim, 0, len(catalog))
	for _, claimType := range catalog {
		value := "false"
		if selected[strings.ToLower(claimType)] {
			value = security.ClaimGranted
		}
		stored = append(stored, model.UserClaim{UserID: userID, ClaimType: claimType, ClaimValue: value})
	}
	return s.userDAO.ReplaceClaims(ctx, userID, stored)
}

func (s *AdministrationService) RecordDecision(ctx context.Context, action, targetUserID string, decision security.Decision) {
	if decision != security.Granted {
		logger.Warn("Access denied", zap.String("action", action), zap.String("targetUserID", targetUserID))
	}
	audit.Record(ctx, s.auditService, action, targetUserID, decision == security.Granted, map[string]string{
		"decision": decision.String(),
	})
}

func (s *AdministrationService) QueryAuditLogs(ctx context.Context, from, to time.Time, userID, resourceID string) ([]audit.AuditLog, error) {
	logs, err := s.auditService.QueryLogs(ctx, from, to, userID, resourceID)
	if err != nil {
		logger.Error("Failed to query audit logs", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrInternalServer, err)
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}
	return logs, nil
}
