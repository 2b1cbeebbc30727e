package controller_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/employee-management/controller"
	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
	"github.com/dev-mohitbeniwal/employee-management/middleware"
	"github.com/dev-mohitbeniwal/employee-management/model"
	"github.com/dev-mohitbeniwal/employee-management/security"
	"github.com/dev-mohitbeniwal/employee-management/service"
	mock_service "github.com/dev-mohitbeniwal/employee-management/test/service_mock"
)

const jsonContent = "application/json"

func TestAccountController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := newTokens(t)
	mockAccountService := mock_service.NewMockIAccountService(ctrl)
	accountController := controller.NewAccountController(mockAccountService, tokens)
	router := setupRouter()
	accountController.RegisterRoutes(router.Group("/"), middleware.Authenticate(tokens, tokenSessions{}))

	auth := bearer(t, tokens, security.Principal{ID: "u1"})

	t.Run("Register_Success", func(t *testing.T) {
		mockAccountService.EXPECT().
			Register(gomock.Any(), model.RegisterRequest{Email: "a@example.com", Password: "Passw0rd", ConfirmPassword: "Passw0rd"}).
			Return(&model.User{ID: "u1"}, nil)

		body := strings.NewReader(`{"email":"a@example.com","password":"Passw0rd","confirm_password":"Passw0rd"}`)
		w := serve(router, "POST", "/account/register", "", jsonContent, body)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	})

	t.Run("Register_Conflict", func(t *testing.T) {
		mockAccountService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, echo_errors.ErrUserConflict)

		body := strings.NewReader(`{"email":"a@example.com","password":"Passw0rd","confirm_password":"Passw0rd"}`)
		w := serve(router, "POST", "/account/register", "", jsonContent, body)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Register_ValidationErrors", func(t *testing.T) {
		w := serve(router, "POST", "/account/register", "", jsonContent, strings.NewReader(`{"email":"nope"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		for _, err := range []error{echo_errors.ErrPasswordMismatch, echo_errors.ErrWeakPassword, echo_errors.ErrEmailDomainNotAllowed} {
			mockAccountService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, err)
			body := strings.NewReader(`{"email":"a@example.com","password":"x","confirm_password":"y"}`)
			w := serve(router, "POST", "/account/register", "", jsonContent, body)
			assert.Equal(t, http.StatusBadRequest, w.Code, err.Error())
		}
	})

	t.Run("Login_PassesReturnURL", func(t *testing.T) {
		mockAccountService.EXPECT().
			Login(gomock.Any(), gomock.Any(), "/employees").
			Return(&model.LoginResponse{Token: "tok", ReturnURL: "/employees"}, nil)

		body := strings.NewReader(`{"email":"a@example.com","password":"Passw0rd"}`)
		w := serve(router, "POST", "/account/login?returnUrl=/employees", "", jsonContent, body)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok"`)
	})

	t.Run("Login_Failures", func(t *testing.T) {
		mockAccountService.EXPECT().Login(gomock.Any(), gomock.Any(), "").Return(nil, echo_errors.ErrEmailNotConfirmed)
		body := strings.NewReader(`{"email":"a@example.com","password":"Passw0rd"}`)
		w := serve(router, "POST", "/account/login", "", jsonContent, body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"email not confirmed yet"}`, w.Body.String())

		mockAccountService.EXPECT().Login(gomock.Any(), gomock.Any(), "").Return(nil, echo_errors.ErrInvalidCredentials)
		body = strings.NewReader(`{"email":"a@example.com","password":"wrong"}`)
		w = serve(router, "POST", "/account/login", "", jsonContent, body)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"login attempt failed"}`, w.Body.String())
	})

	t.Run("Logout_RevokesSession", func(t *testing.T) {
		token, session, err := tokens.IssueSession(security.Principal{ID: "u1"}, "stamp")
		require.NoError(t, err)
		mockAccountService.EXPECT().
			Logout(gomock.Any(), session.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, expiresAt time.Time) error {
				assert.WithinDuration(t, session.ExpiresAt.Time, expiresAt, time.Second)
				return nil
			})

		w := serve(router, "POST", "/account/logout", "Bearer "+token, "", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Logout_RequiresAuth", func(t *testing.T) {
		w := serve(router, "POST", "/account/logout", "", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("IsEmailInUse", func(t *testing.T) {
		mockAccountService.EXPECT().IsEmailInUse(gomock.Any(), "a@example.com").Return(true, nil)
		w := serve(router, "GET", "/account/email-in-use?email=a@example.com", "", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"email":"a@example.com","in_use":true}`, w.Body.String())

		w = serve(router, "GET", "/account/email-in-use", "", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ConfirmEmail", func(t *testing.T) {
		mockAccountService.EXPECT().ConfirmEmail(gomock.Any(), "u1", "tok").Return(nil)
		w := serve(router, "GET", "/account/confirm-email?userId=u1&token=tok", "", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		mockAccountService.EXPECT().ConfirmEmail(gomock.Any(), "u1", "bad").Return(echo_errors.ErrInvalidToken)
		w = serve(router, "GET", "/account/confirm-email?userId=u1&token=bad", "", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		mockAccountService.EXPECT().ConfirmEmail(gomock.Any(), "ghost", "tok").Return(echo_errors.ErrUserNotFound)
		w = serve(router, "GET", "/account/confirm-email?userId=ghost&token=tok", "", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("ForgotAndResetPassword", func(t *testing.T) {
		mockAccountService.EXPECT().ForgotPassword(gomock.Any(), "a@example.com").Return(nil)
		w := serve(router, "POST", "/account/forgot-password", "", jsonContent, strings.NewReader(`{"email":"a@example.com"}`))
		assert.Equal(t, http.StatusOK, w.Code)

		mockAccountService.EXPECT().
			ResetPassword(gomock.Any(), model.ResetPasswordRequest{Email: "a@example.com", Token: "t", Password: "Passw0rd", ConfirmPassword: "Passw0rd"}).
			Return(nil)
		body := strings.NewReader(`{"email":"a@example.com","token":"t","password":"Passw0rd","confirm_password":"Passw0rd"}`)
		w = serve(router, "POST", "/account/reset-password", "", jsonContent, body)
		assert.Equal(t, http.StatusOK, w.Code)

		w = serve(router, "POST", "/account/reset-password", "", jsonContent, strings.NewReader(`{"email":"a@example.com"}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ChangePassword_UsesSignedInUser", func(t *testing.T) {
		mockAccountService.EXPECT().
			ChangePassword(gomock.Any(), "u1", gomock.Any()).
			Return(&model.LoginResponse{Token: "fresh"}, nil)

		body := strings.NewReader(`{"current_password":"Passw0rd","new_password":"Passw0rd2","confirm_password":"Passw0rd2"}`)
		w := serve(router, "POST", "/account/change-password", auth, jsonContent, body)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"fresh"`)
	})

	t.Run("ChangePassword_WithoutLocalPassword", func(t *testing.T) {
		mockAccountService.EXPECT().
			ChangePassword(gomock.Any(), "u1", gomock.Any()).
			Return(nil, echo_errors.ErrPasswordNotSet)

		body := strings.NewReader(`{"current_password":"x","new_password":"Passw0rd2","confirm_password":"Passw0rd2"}`)
		w := serve(router, "POST", "/account/change-password", auth, jsonContent, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("AddPassword", func(t *testing.T) {
		mockAccountService.EXPECT().
			AddPassword(gomock.Any(), "u1", gomock.Any()).
			Return(nil, echo_errors.ErrPasswordAlreadySet)

		body := strings.NewReader(`{"password":"Passw0rd","confirm_password":"Passw0rd"}`)
		w := serve(router, "POST", "/account/add-password", auth, jsonContent, body)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("HasPassword", func(t *testing.T) {
		mockAccountService.EXPECT().HasPassword(gomock.Any(), "u1").Return(false, nil)
		w := serve(router, "GET", "/account/password", auth, "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"has_password":false}`, w.Body.String())
	})

	t.Run("ExternalLoginCallback", func(t *testing.T) {
		external := func(path string, claims *security.ExternalLoginClaims) *http.Request {
			req, _ := http.NewRequest("POST", path, nil)
			if claims != nil {
				assertion, err := tokens.SignExternalLogin(*claims)
				require.NoError(t, err)
				req.Header.Set(controller.ExternalLoginAssertionHeader, assertion)
			}
			return req
		}
		google := &security.ExternalLoginClaims{Provider: "Google", ProviderKey: "key-1", Email: "b@example.com", Name: "Bob"}

		mockAccountService.EXPECT().
			ExternalLoginCallback(gomock.Any(), model.ExternalLoginInfo{
				LoginProvider: "Google", ProviderKey: "key-1", Email: "b@example.com", Name: "Bob",
			}, "/").
			Return(&model.ExternalLoginResult{Status: model.ExternalLoginConfirmationPending}, nil)
		w := serveRequest(router, external("/account/external-login/callback?returnUrl=/", google))
		assert.Equal(t, http.StatusAccepted, w.Code)

		mockAccountService.EXPECT().
			ExternalLoginCallback(gomock.Any(), gomock.Any(), "").
			Return(&model.ExternalLoginResult{Status: model.ExternalLoginSignedIn, Token: "tok"}, nil)
		w = serveRequest(router, external("/account/external-login/callback",
			&security.ExternalLoginClaims{Provider: service.TwitterProvider, ProviderKey: "42", Name: "bob"}))
		assert.Equal(t, http.StatusOK, w.Code)

		mockAccountService.EXPECT().
			ExternalLoginCallback(gomock.Any(), gomock.Any(), "").
			Return(nil, echo_errors.ErrExternalLoginFailed)
		w = serveRequest(router, external("/account/external-login/callback", google))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = serveRequest(router, external("/account/external-login/callback?remoteError=access_denied", google))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ExternalLoginCallback_RefusesUnsignedHeaders", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/account/external-login/callback", nil)
		req.Header.Set("X-External-Provider", service.TwitterProvider)
		req.Header.Set("X-External-Provider-Key", "12345")
		req.Header.Set("X-External-Name", "mallory")
		w := serveRequest(router, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"error":"Error loading external login information"}`, w.Body.String())

		req, _ = http.NewRequest("POST", "/account/external-login/callback", nil)
		req.Header.Set(controller.ExternalLoginAssertionHeader, "eyJhbGciOiJub25lIn0.eyJwcm92aWRlciI6IlR3aXR0ZXIifQ.")
		assert.Equal(t, http.StatusUnauthorized, serveRequest(router, req).Code)
	})

	t.Run("ExternalLoginCallback_RefusesForeignSignature", func(t *testing.T) {
		forger, err := security.NewTokenProvider([]byte("controller-secret"), security.TokenOptions{
			ExternalLoginSecret: []byte("guessed-secret"),
		})
		require.NoError(t, err)
		assertion, err := forger.SignExternalLogin(security.ExternalLoginClaims{Provider: service.TwitterProvider, ProviderKey: "12345"})
		require.NoError(t, err)

		req, _ := http.NewRequest("POST", "/account/external-login/callback", nil)
		req.Header.Set(controller.ExternalLoginAssertionHeader, assertion)
		assert.Equal(t, http.StatusUnauthorized, serveRequest(router, req).Code)
	})
}
