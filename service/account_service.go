// service/account_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/employee-management/dao"
	"github.com/dev-mohitbeniwal/employee-management/db"
	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/model"
	"github.com/dev-mohitbeniwal/employee-management/security"
	"github.com/dev-mohitbeniwal/employee-management/util"
)

// TwitterProvider does not share a verified email, so its users are
// confirmed on first sign-in.
const TwitterProvider = "Twitter"

const defaultReturnURL = "/"

type IAccountService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req model.LoginRequest, returnURL string) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsEmailInUse(ctx context.Context, email string) (bool, error)
	ConfirmEmail(ctx context.Context, userID, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID string, req model.ChangePasswordRequest) (*model.LoginResponse, error)
	AddPassword(ctx context.Context, userID string, req model.AddPasswordRequest) (*model.LoginResponse, error)
	HasPassword(ctx context.Context, userID string) (bool, error)
	ExternalLoginCallback(ctx context.Context, info model.ExternalLoginInfo, returnURL string) (*model.ExternalLoginResult, error)
	ValidateSession(ctx context.Context, session *security.TokenClaims) (security.Principal, error)
}

type AccountService struct {
	userDAO        *dao.UserDAO
	tokens         *security.TokenProvider
	validationUtil *util.ValidationUtil
	mailer         util.EmailSender
	publicURL      string
}

var _ IAccountService = &AccountService{}

func NewAccountService(userDAO *dao.UserDAO, tokens *security.TokenProvider, validationUtil *util.ValidationUtil, mailer util.EmailSender, publicURL string) *AccountService {
	return &AccountService{
		userDAO:        userDAO,
		tokens:         tokens,
		validationUtil: validationUtil,
		mailer:         mailer,
		publicURL:      strings.TrimRight(publicURL, "/"),
	}
}

func localReturnURL(returnURL string) string {
	if util.IsLocalURL(returnURL) {
		return returnURL
	}
	return defaultReturnURL
}

// principalFor loads the roles and claims that go into a session token.
func (s *AccountService) principalFor(ctx context.Context, user *model.User) (security.Principal, error) {
	roles, err := s.userDAO.GetRoles(ctx, user.ID)
	if err != nil {
		return security.Principal{}, err
	}
	claims, err := s.userDAO.GetClaims(ctx, user.ID)
	if err != nil {
		return security.Principal{}, err
	}

	p := security.Principal{ID: user.ID}
	for _, r := range roles {
		p.Roles = append(p.Roles, r.Name)
	}
	for _, c := range claims {
		p.Claims = append(p.Claims, security.Claim{Type: c.ClaimType, Value: c.ClaimValue})
	}
	return p, nil
}

// ValidateSession reloads the session's user and returns its current
// principal. Sessions of deleted users, or issued before the security stamp
// last changed, are rejected.
func (s *AccountService) ValidateSession(ctx context.Context, session *security.TokenClaims) (security.Principal, error) {
	user, err := s.currentUser(ctx, session.Subject)
	if err != nil {
		return security.Principal{}, err
	}
	if user.SecurityStamp != session.Stamp {
		logger.Warn("Session predates security stamp change", zap.String("userID", user.ID))
		return security.Principal{}, echo_errors.ErrSessionRevoked
	}
	return s.principalFor(ctx, user)
}

func (s *AccountService) signIn(ctx context.Context, user *model.User, returnURL string) (*model.LoginResponse, error) {
	principal, err := s.principalFor(ctx, user)
	if err != nil {
		return nil, err
	}
	token, claims, err := s.tokens.IssueSession(principal, user.SecurityStamp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrInternalServer, err)
	}
	logger.Info("User signed in", zap.String("userID", user.ID))
	return &model.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Unix(),
		ReturnURL: localReturnURL(returnURL),
	}, nil
}

func (s *AccountService) sendConfirmationLink(ctx context.Context, user *model.User) error {
	token, err := s.tokens.GenerateUserToken(user.ID, user.SecurityStamp, security.PurposeEmailConfirmation)
	if err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInternalServer, err)
	}
	link := fmt.Sprintf("%s/api/v1/account/confirm-email?userId=%s&token=%s",
		s.publicURL, url.QueryEscape(user.ID), url.QueryEscape(token))
	return s.mailer.SendEmail(ctx, user.Email, "Confirm your email", link)
}

func (s *AccountService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if err := s.validationUtil.ValidateRegistration(req); err != nil {
		return nil, err
	}

	inUse, err := s.IsEmailInUse(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if inUse {
		return nil, fmt.Errorf("%w: email %s is already in use", echo_errors.ErrUserConflict, req.Email)
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrInternalServer, err)
	}

	user := &model.User{
		UserName:     req.Email,
		Email:        req.Email,
		City:         req.City,
		PasswordHash: hash,
	}
	if err := s.userDAO.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.sendConfirmationLink(ctx, user); err != nil {
		logger.Error("Failed to send confirmation link", zap.Error(err), zap.String("userID", user.ID))
	}
	logger.Info("User registered", zap.String("userID", user.ID))
	return user, nil
}

// Login signs a user in with a password. A correct password on an
// unconfirmed account is reported as such; every other failure is the same
// generic error.
func (s *AccountService) Login(ctx context.Context, req model.LoginRequest, returnURL string) (*model.LoginResponse, error) {
	user, err := s.userDAO.FindByUserName(ctx, req.Email)
	if errors.Is(err, echo_errors.ErrUserNotFound) {
		return nil, echo_errors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !security.CheckPassword(user.PasswordHash, req.Password) {
		logger.Warn("Invalid login attempt", zap.String("userID", user.ID))
		return nil, echo_errors.ErrInvalidCredentials
	}
	if !user.EmailConfirmed {
		return nil, echo_errors.ErrEmailNotConfirmed
	}
	return s.signIn(ctx, user, returnURL)
}

func (s *AccountService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if err := db.RevokeSession(ctx, tokenID, expiresAt); err != nil {
		logger.Error("Failed to revoke session", zap.Error(err))
		return err
	}
	return nil
}

func (s *AccountService) IsEmailInUse(ctx context.Context, email string) (bool, error) {
	_, err := s.userDAO.FindByEmail(ctx, email)
	if errors.Is(err, echo_errors.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *AccountService) ConfirmEmail(ctx context.Context, userID, token string) error {
	if userID == "" || token == "" {
		return fmt.Errorf("%w: userId and token are required", echo_errors.ErrInvalidAccountData)
	}

	user, err := s.userDAO.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.tokens.ValidateUserToken(token, user.ID, user.SecurityStamp, security.PurposeEmailConfirmation); err != nil {
		logger.Warn("Email confirmation failed", zap.String("userID", userID))
		return err
	}

	user.EmailConfirmed = true
	if _, err := s.userDAO.UpdateUser(ctx, user); err != nil {
		return err
	}
	logger.Info("Email confirmed", zap.String("userID", userID))
	return nil
}

// ForgotPassword sends a reset link to confirmed accounts. It reports
// success for unknown addresses too.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userDAO.FindByEmail(ctx, email)
	if errors.Is(err, echo_errors.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !user.EmailConfirmed {
		return nil
	}

	token, err := s.tokens.GenerateUserToken(user.ID, user.SecurityStamp, security.PurposeResetPassword)
	if err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInternalServer, err)
	}
	link := fmt.Sprintf("%s/api/v1/account/reset-password?email=%s&token=%s",
		s.publicURL, url.QueryEscape(email), url.QueryEscape(token))
	if err := s.mailer.SendEmail(ctx, user.Email, "Reset your password", link); err != nil {
		logger.Error("Failed to send password reset link", zap.Error(err), zap.String("userID", user.ID))
	}
	return nil
}

func (s *AccountService) ResetPassword(ctx context.Context, req model.ResetPasswordRequest) error {
	if err := s.validationUtil.ValidateNewPassword(req.Password, req.ConfirmPassword); err != nil {
		return err
	}

	user, err := s.userDAO.FindByEmail(ctx, req.Email)
	if errors.Is(err, echo_errors.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.tokens.ValidateUserToken(req.Token, user.ID, user.SecurityStamp, security.PurposeResetPassword); err != nil {
		logger.Warn("Password reset rejected", zap.String("userID", user.ID))
		return err
	}
	if err := s.setPassword(ctx, user, req.Password); err != nil {
		return err
	}
	logger.Info("Password reset", zap.String("userID", user.ID))
	return nil
}

// setPassword stores a new hash and rotates the security stamp, which
// invalidates outstanding purpose tokens.
func (s *AccountService) setPassword(ctx context.Context, user *model.User, password string) error {
	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInternalServer, err)
	}
	user.PasswordHash = hash
	user.SecurityStamp = uuid.New().String()
	_, err = s.userDAO.UpdateUser(ctx, user)
	return err
}

func (s *AccountService) currentUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.userDAO.GetUser(ctx, userID)
	if errors.Is(err, echo_errors.ErrUserNotFound) {
		return nil, echo_errors.ErrUnauthorized
	}
	return user, err
}

func (s *AccountService) ChangePassword(ctx context.Context, userID string, req model.ChangePasswordRequest) (*model.LoginResponse, error) {
	user, err := s.currentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasPassword() {
		return nil, echo_errors.ErrPasswordNotSet
	}
	if err := s.validationUtil.ValidateNewPassword(req.NewPassword, req.ConfirmPassword); err != nil {
		return nil, err
	}
	if !security.CheckPassword(user.PasswordHash, req.CurrentPassword) {
		return nil, fmt.Errorf("%w: incorrect password", echo_errors.ErrInvalidAccountData)
	}
	if err := s.setPassword(ctx, user, req.NewPassword); err != nil {
		return nil, err
	}
	logger.Info("Password changed", zap.String("userID", userID))
	return s.signIn(ctx, user, defaultReturnURL)
}

func (s *AccountService) AddPassword(ctx context.Context, userID string, req model.AddPasswordRequest) (*model.LoginResponse, error) {
	user, err := s.currentUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HasPassword() {
		return nil, echo_errors.ErrPasswordAlreadySet
	}
	if err := s.validationUtil.ValidateNewPassword(req.Password, req.ConfirmPassword); err != nil {
		return nil, err
	}
	if err := s.setPassword(ctx, user, req.Password); err != nil {
		return nil, err
	}
	logger.Info("Password added", zap.String("userID", userID))
	return s.signIn(ctx, user, defaultReturnURL)
}

func (s *AccountService) HasPassword(ctx context.Context, userID string) (bool, error) {
	user, err := s.currentUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.HasPassword(), nil
}

// ExternalLoginCallback finishes a sign-in at an external provider. Existing
// accounts sign in only through a login already linked to them.
func (s *AccountService) ExternalLoginCallback(ctx context.Context, info model.ExternalLoginInfo, returnURL string) (*model.ExternalLoginResult, error) {
	if info.LoginProvider == "" || info.ProviderKey == "" {
		return nil, fmt.Errorf("%w: error loading external login information", echo_errors.ErrExternalLoginFailed)
	}
	userName := info.Email
	if userName == "" {
		userName = info.Name
	}
	if userName == "" {
		return nil, fmt.Errorf("%w: provider sent neither email nor name", echo_errors.ErrExternalLoginFailed)
	}

	user, err := s.userDAO.FindByUserName(ctx, userName)
	if err != nil && !errors.Is(err, echo_errors.ErrUserNotFound) {
		return nil, err
	}

	if user != nil {
		if info.LoginProvider != TwitterProvider && !user.EmailConfirmed {
			return nil, echo_errors.ErrEmailNotConfirmed
		}
		return s.externalSignIn(ctx, info, returnURL)
	}

	user = &model.User{UserName: userName}
	if info.LoginProvider == TwitterProvider {
		user.EmailConfirmed = true
	} else {
		user.Email = userName
	}
	if err := s.userDAO.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	if err := s.userDAO.AddLogin(ctx, model.UserLogin{
		LoginProvider: info.LoginProvider,
		ProviderKey:   info.ProviderKey,
		UserID:        user.ID,
	}); err != nil {
		return nil, err
	}

	if info.LoginProvider == TwitterProvider {
		session, err := s.signIn(ctx, user, returnURL)
		if err != nil {
			return nil, err
		}
		return &model.ExternalLoginResult{
			Status:    model.ExternalLoginSignedIn,
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
			ReturnURL: session.ReturnURL,
		}, nil
	}

	if err := s.sendConfirmationLink(ctx, user); err != nil {
		logger.Error("Failed to send confirmation link", zap.Error(err), zap.String("userID", user.ID))
	}
	return &model.ExternalLoginResult{Status: model.ExternalLoginConfirmationPending}, nil
}

func (s *AccountService) externalSignIn(ctx context.Context, info model.ExternalLoginInfo, returnURL string) (*model.ExternalLoginResult, error) {
	linked, err := s.userDAO.FindByLogin(ctx, info.LoginProvider, info.ProviderKey)
	if errors.Is(err, echo_errors.ErrUserNotFound) {
		return nil, fmt.Errorf("%w: could not login with %s", echo_errors.ErrExternalLoginFailed, info.LoginProvider)
	}
	if err != nil {
		return nil, err
	}
	session, err := s.signIn(ctx, linked, returnURL)
	if err != nil {
		return nil, err
	}
	return &model.ExternalLoginResult{
		Status:    model.ExternalLoginSignedIn,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		ReturnURL: session.ReturnURL,
	}, nil
}
