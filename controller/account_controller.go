// controller/account_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/middleware"
	"github.com/dev-mohitbeniwal/employee-management/model"
	"github.com/dev-mohitbeniwal/employee-management/security"
	"github.com/dev-mohitbeniwal/employee-management/service"
	"github.com/dev-mohitbeniwal/employee-management/util"
)

// ExternalLoginAssertionHeader carries the signed assertion from the proxy
// that terminates the external OAuth flow.
const ExternalLoginAssertionHeader = "X-External-Login-Assertion"

// ExternalLoginVerifier checks external login assertions.
type ExternalLoginVerifier interface {
	ParseExternalLogin(assertion string) (*security.ExternalLoginClaims, error)
}

type AccountController struct {
	accountService service.IAccountService
	external       ExternalLoginVerifier
}

func NewAccountController(accountService service.IAccountService, external ExternalLoginVerifier) *AccountController {
	return &AccountController{
		accountService: accountService,
		external:       external,
	}
}

// RegisterRoutes registers the account routes. auth guards the routes that
// need a signed in user.
func (ac *AccountController) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	account := r.Group("/account")
	{
		account.POST("/register", ac.Register)
		account.POST("/login", ac.Login)
		account.GET("/email-in-use", ac.IsEmailInUse)
		account.GET("/confirm-email", ac.ConfirmEmail)
		account.POST("/forgot-password", ac.ForgotPassword)
		account.POST("/reset-password", ac.ResetPassword)
		account.POST("/external-login/callback", ac.ExternalLoginCallback)

		account.POST("/logout", auth, ac.Logout)
		account.POST("/change-password", auth, ac.ChangePassword)
		account.POST("/add-password", auth, ac.AddPassword)
		account.GET("/password", auth, ac.HasPassword)
	}
}

// Register endpoint
func (ac *AccountController) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid registration data", echo_errors.ErrInvalidAccountData)
		return
	}

	user, err := ac.accountService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to register user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user_id": user.ID,
		"message": "Registration successful. Before you can login, please confirm your email by clicking on the link we have emailed you.",
	})
}

// Login endpoint
func (ac *AccountController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid login data", echo_errors.ErrInvalidAccountData)
		return
	}

	resp, err := ac.accountService.Login(c.Request.Context(), req, c.Query("returnUrl"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to login")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout endpoint
func (ac *AccountController) Logout(c *gin.Context) {
	session, ok := middleware.SessionFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", echo_errors.ErrUnauthorized)
		return
	}

	if err := ac.accountService.Logout(c.Request.Context(), session.ID, session.ExpiresAt.Time); err != nil {
		respondWithServiceError(c, err, "Failed to logout")
		return
	}
	c.Status(http.StatusNoContent)
}

// IsEmailInUse endpoint
func (ac *AccountController) IsEmailInUse(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		util.RespondWithError(c, http.StatusBadRequest, "Email is required", echo_errors.ErrInvalidAccountData)
		return
	}

	inUse, err := ac.accountService.IsEmailInUse(c.Request.Context(), email)
	if err != nil {
		respondWithServiceError(c, err, "Failed to check email")
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email, "in_use": inUse})
}

// ConfirmEmail endpoint
func (ac *AccountController) ConfirmEmail(c *gin.Context) {
	if err := ac.accountService.ConfirmEmail(c.Request.Context(), c.Query("userId"), c.Query("token")); err != nil {
		respondWithServiceError(c, err, "Failed to confirm email")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email confirmed"})
}

// ForgotPassword endpoint
func (ac *AccountController) ForgotPassword(c *gin.Context) {
	var req model.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid email", echo_errors.ErrInvalidAccountData)
		return
	}

	if err := ac.accountService.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondWithServiceError(c, err, "Failed to process password reset")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a password reset link has been sent"})
}

// ResetPassword endpoint
func (ac *AccountController) ResetPassword(c *gin.Context) {
	var req model.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid password reset data", echo_errors.ErrInvalidAccountData)
		return
	}

	if err := ac.accountService.ResetPassword(c.Request.Context(), req); err != nil {
		respondWithServiceError(c, err, "Failed to reset password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset"})
}

// ChangePassword endpoint
func (ac *AccountController) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid password data", echo_errors.ErrInvalidAccountData)
		return
	}

	resp, err := ac.accountService.ChangePassword(c.Request.Context(), util.GetUserIDFromContext(c), req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to change password")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddPassword endpoint
func (ac *AccountController) AddPassword(c *gin.Context) {
	var req model.AddPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid password data", echo_errors.ErrInvalidAccountData)
		return
	}

	resp, err := ac.accountService.AddPassword(c.Request.Context(), util.GetUserIDFromContext(c), req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to add password")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HasPassword endpoint
func (ac *AccountController) HasPassword(c *gin.Context) {
	has, err := ac.accountService.HasPassword(c.Request.Context(), util.GetUserIDFromContext(c))
	if err != nil {
		respondWithServiceError(c, err, "Failed to check password")
		return
	}
	c.JSON(http.StatusOK, gin.H{"has_password": has})
}

// ExternalLoginCallback endpoint
func (ac *AccountController) ExternalLoginCallback(c *gin.Context) {
	if remoteError := c.Query("remoteError"); remoteError != "" {
		logger.Warn("External provider reported an error", zap.String("remoteError", remoteError))
		util.RespondWithError(c, http.StatusBadRequest, "Error from external provider: "+remoteError, echo_errors.ErrExternalLoginFailed)
		return
	}

	assertion, err := ac.external.ParseExternalLogin(c.GetHeader(ExternalLoginAssertionHeader))
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Error loading external login information", err)
		return
	}
	info := model.ExternalLoginInfo{
		LoginProvider: assertion.Provider,
		ProviderKey:   assertion.ProviderKey,
		Email:         assertion.Email,
		Name:          assertion.Name,
	}

	result, err := ac.accountService.ExternalLoginCallback(c.Request.Context(), info, c.Query("returnUrl"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to complete external login")
		return
	}

	if result.Status == model.ExternalLoginConfirmationPending {
		c.JSON(http.StatusAccepted, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
