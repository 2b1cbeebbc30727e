// controller/administration_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	"github.com/dev-mohitbeniwal/employee-management/middleware"
	"github.com/dev-mohitbeniwal/employee-management/model"
	"github.com/dev-mohitbeniwal/employee-management/security"
	"github.com/dev-mohitbeniwal/employee-management/service"
	"github.com/dev-mohitbeniwal/employee-management/util"
	helper_util "github.com/dev-mohitbeniwal/employee-management/util/helper"
)

const (
	ActionManageUserRoles  = "MANAGE_USER_ROLES"
	ActionManageUserClaims = "MANAGE_USER_CLAIMS"
)

type AdministrationController struct {
	adminService service.IAdministrationService
}

func NewAdministrationController(adminService service.IAdministrationService) *AdministrationController {
	return &AdministrationController{
		adminService: adminService,
	}
}

// RegisterRoutes registers the administration routes behind auth and the
// Admin role.
func (ac *AdministrationController) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	admin := r.Group("/administration", auth, middleware.RequireRole(security.AdminRole))
	{
		admin.POST("/roles", ac.CreateRole)
		admin.GET("/roles", ac.ListRoles)
		admin.GET("/roles/:id", ac.GetRole)
		admin.PUT("/roles/:id", ac.UpdateRole)
		admin.DELETE("/roles/:id", middleware.RequireDeleteRoleClaim(), ac.DeleteRole)
		admin.GET("/roles/:id/users", ac.GetUsersInRole)
		admin.PUT("/roles/:id/users", ac.UpdateUsersInRole)

		admin.GET("/users", ac.ListUsers)
		admin.GET("/users/:id", ac.GetUser)
		admin.PUT("/users/:id", ac.EditUser)
		admin.DELETE("/users/:id", ac.DeleteUser)

		admin.GET("/user-roles", ac.GetUserRoles)
		admin.PUT("/user-roles", ac.UpdateUserRoles)
		admin.GET("/user-claims", ac.GetUserClaims)
		admin.PUT("/user-claims", ac.UpdateUserClaims)

		admin.GET("/audit-logs", ac.QueryAuditLogs)
	}
}

// CreateRole endpoint
func (ac *AdministrationController) CreateRole(c *gin.Context) {
	var req model.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role data", echo_errors.ErrInvalidRoleData)
		return
	}

	role, err := ac.adminService.CreateRole(c.Request.Context(), req.RoleName)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create role")
		return
	}
	c.JSON(http.StatusCreated, role)
}

// ListRoles endpoint
func (ac *AdministrationController) ListRoles(c *gin.Context) {
	roles, err := ac.adminService.ListRoles(c.Request.Context())
	if err != nil {
		respondWithServiceError(c, err, "Failed to list roles")
		return
	}
	c.JSON(http.StatusOK, roles)
}

// GetRole endpoint
func (ac *AdministrationController) GetRole(c *gin.Context) {
	details, err := ac.adminService.GetRole(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to get role")
		return
	}
	c.JSON(http.StatusOK, details)
}

// UpdateRole endpoint
func (ac *AdministrationController) UpdateRole(c *gin.Context) {
	var req model.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role data", echo_errors.ErrInvalidRoleData)
		return
	}

	details, err := ac.adminService.UpdateRole(c.Request.Context(), c.Param("id"), req.RoleName)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update role")
		return
	}
	c.JSON(http.StatusOK, details)
}

// DeleteRole endpoint
func (ac *AdministrationController) DeleteRole(c *gin.Context) {
	if err := ac.adminService.DeleteRole(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete role")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUsersInRole endpoint
func (ac *AdministrationController) GetUsersInRole(c *gin.Context) {
	selections, err := ac.adminService.GetUsersInRole(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to get users in role")
		return
	}
	c.JSON(http.StatusOK, selections)
}

// UpdateUsersInRole endpoint
func (ac *AdministrationController) UpdateUsersInRole(c *gin.Context) {
	var selections []model.UserRoleSelection
	if err := c.ShouldBindJSON(&selections); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role membership data", echo_errors.ErrInvalidRoleData)
		return
	}

	if err := ac.adminService.UpdateUsersInRole(c.Request.Context(), c.Param("id"), selections); err != nil {
		respondWithServiceError(c, err, "Failed to update users in role")
		return
	}
	c.Status(http.StatusNoContent)
}

// ListUsers endpoint
func (ac *AdministrationController) ListUsers(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	users, err := ac.adminService.ListUsers(c.Request.Context(), limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser endpoint
func (ac *AdministrationController) GetUser(c *gin.Context) {
	details, err := ac.adminService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to get user")
		return
	}
	c.JSON(http.StatusOK, details)
}

// EditUser endpoint
func (ac *AdministrationController) EditUser(c *gin.Context) {
	var req model.EditUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", echo_errors.ErrInvalidUserData)
		return
	}

	details, err := ac.adminService.EditUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to edit user")
		return
	}
	c.JSON(http.StatusOK, details)
}

// DeleteUser endpoint
func (ac *AdministrationController) DeleteUser(c *gin.Context) {
	if err := ac.adminService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete user")
		return
	}
	c.Status(http.StatusNoContent)
}

// authorizeUserEdit runs Decide for the userId in the query string and
// records the outcome. It answers 403 and returns false when denied.
func (ac *AdministrationController) authorizeUserEdit(c *gin.Context, action string) (string, bool) {
	targetUserID := c.Query("userId")
	principal, _ := util.GetPrincipalFromContext(c)

	decision := security.Decide(principal, targetUserID)
	ac.adminService.RecordDecision(c.Request.Context(), action, targetUserID, decision)
	if decision != security.Granted {
		util.RespondWithError(c, http.StatusForbidden, "Access denied", echo_errors.ErrAccessDenied)
		return "", false
	}
	return targetUserID, true
}

// GetUserRoles endpoint
func (ac *AdministrationController) GetUserRoles(c *gin.Context) {
	userID, ok := ac.authorizeUserEdit(c, ActionManageUserRoles)
	if !ok {
		return
	}

	selections, err := ac.adminService.GetUserRoles(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to get user roles")
		return
	}
	c.JSON(http.StatusOK, selections)
}

// UpdateUserRoles endpoint
func (ac *AdministrationController) UpdateUserRoles(c *gin.Context) {
	userID, ok := ac.authorizeUserEdit(c, ActionManageUserRoles)
	if !ok {
		return
	}

	var selections []model.RoleSelection
	if err := c.ShouldBindJSON(&selections); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role selection", echo_errors.ErrInvalidRoleData)
		return
	}

	if err := ac.adminService.UpdateUserRoles(c.Request.Context(), userID, selections); err != nil {
		respondWithServiceError(c, err, "Failed to update user roles")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetUserClaims endpoint
func (ac *AdministrationController) GetUserClaims(c *gin.Context) {
	userID, ok := ac.authorizeUserEdit(c, ActionManageUserClaims)
	if !ok {
		return
	}

	view, err := ac.adminService.GetUserClaims(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to get user claims")
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateUserClaims endpoint
func (ac *AdministrationController) UpdateUserClaims(c *gin.Context) {
	userID, ok := ac.authorizeUserEdit(c, ActionManageUserClaims)
	if !ok {
		return
	}

	var view model.UserClaimsView
	if err := c.ShouldBindJSON(&view); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid claim selection", echo_errors.ErrInvalidClaimData)
		return
	}

	if err := ac.adminService.UpdateUserClaims(c.Request.Context(), userID, view.Claims); err != nil {
		respondWithServiceError(c, err, "Failed to update user claims")
		return
	}
	c.Status(http.StatusNoContent)
}

// QueryAuditLogs endpoint
func (ac *AdministrationController) QueryAuditLogs(c *gin.Context) {
	from, to, err := helper_util.ParseTimeRange(c.Query("from"), c.Query("to"), time.Now())
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid time range", err)
		return
	}

	logs, err := ac.adminService.QueryAuditLogs(c.Request.Context(), from, to, c.Query("userId"), c.Query("resourceId"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to query audit logs")
		return
	}
	c.JSON(http.StatusOK, logs)
}
