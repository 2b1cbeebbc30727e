package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
)

func newTestTokenProvider(t *testing.T) *TokenProvider {
	t.Helper()
	p, err := NewTokenProvider([]byte("test-secret"), TokenOptions{
		SessionTTL:           time.Hour,
		EmailConfirmationTTL: 72 * time.Hour,
		PasswordResetTTL:     5 * time.Hour,
		ExternalLoginSecret:  []byte("proxy-secret"),
	})
	require.NoError(t, err)
	return p
}

func TestSessionTokenCarriesPrincipal(t *testing.T) {
	p := newTestTokenProvider(t)
	principal := editor("admin-1")

	token, issued, err := p.IssueSession(principal, "stamp-1")
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)

	claims, err := p.ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, principal, claims.Principal())
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, "stamp-1", claims.Stamp)
}

func TestSessionTokenExpires(t *testing.T) {
	p := newTestTokenProvider(t)
	token, _, err := p.IssueSession(editor("admin-1"), "stamp")
	require.NoError(t, err)

	p.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = p.ParseSession(token)
	assert.ErrorIs(t, err, echo_errors.ErrUnauthorized)
}

func TestSessionTokenRejectsOtherSecret(t *testing.T) {
	token, _, err := newTestTokenProvider(t).IssueSession(editor("admin-1"), "stamp")
	require.NoError(t, err)

	other, err := NewTokenProvider([]byte("other-secret"), TokenOptions{})
	require.NoError(t, err)
	_, err = other.ParseSession(token)
	assert.ErrorIs(t, err, echo_errors.ErrUnauthorized)
}

func TestPurposeTokenIsNotASession(t *testing.T) {
	p := newTestTokenProvider(t)
	token, err := p.GenerateUserToken("u1", "stamp", PurposeEmailConfirmation)
	require.NoError(t, err)

	_, err = p.ParseSession(token)
	assert.ErrorIs(t, err, echo_errors.ErrUnauthorized)
}

func TestUserTokenValidation(t *testing.T) {
	p := newTestTokenProvider(t)
	token, err := p.GenerateUserToken("u1", "stamp-1", PurposeResetPassword)
	require.NoError(t, err)

	assert.NoError(t, p.ValidateUserToken(token, "u1", "stamp-1", PurposeResetPassword))
	assert.ErrorIs(t, p.ValidateUserToken(token, "u2", "stamp-1", PurposeResetPassword), echo_errors.ErrInvalidToken)
	assert.ErrorIs(t, p.ValidateUserToken(token, "u1", "stamp-2", PurposeResetPassword), echo_errors.ErrInvalidToken)
	assert.ErrorIs(t, p.ValidateUserToken(token, "u1", "stamp-1", PurposeEmailConfirmation), echo_errors.ErrInvalidToken)
	assert.ErrorIs(t, p.ValidateUserToken("garbage", "u1", "stamp-1", PurposeResetPassword), echo_errors.ErrInvalidToken)
}

func TestUserTokenLifetimes(t *testing.T) {
	p := newTestTokenProvider(t)
	reset, err := p.GenerateUserToken("u1", "s", PurposeResetPassword)
	require.NoError(t, err)
	confirm, err := p.GenerateUserToken("u1", "s", PurposeEmailConfirmation)
	require.NoError(t, err)

	p.now = func() time.Time { return time.Now().Add(6 * time.Hour) }
	assert.ErrorIs(t, p.ValidateUserToken(reset, "u1", "s", PurposeResetPassword), echo_errors.ErrInvalidToken)
	assert.NoError(t, p.ValidateUserToken(confirm, "u1", "s", PurposeEmailConfirmation))
}

func TestGenerateUserTokenRejectsSessionPurpose(t *testing.T) {
	_, err := newTestTokenProvider(t).GenerateUserToken("u1", "s", PurposeSession)
	assert.Error(t, err)
}

func TestNewTokenProviderRequiresSecret(t *testing.T) {
	_, err := NewTokenProvider(nil, TokenOptions{})
	assert.Error(t, err)
}

func TestExternalLoginAssertion(t *testing.T) {
	p := newTestTokenProvider(t)
	assertion, err := p.SignExternalLogin(ExternalLoginClaims{
		Provider: "Twitter", ProviderKey: "12345", Name: "bob",
	})
	require.NoError(t, err)

	claims, err := p.ParseExternalLogin(assertion)
	require.NoError(t, err)
	assert.Equal(t, "Twitter", claims.Provider)
	assert.Equal(t, "12345", claims.ProviderKey)
	assert.Equal(t, "bob", claims.Name)
}

func TestExternalLoginAssertionRejected(t *testing.T) {
	p := newTestTokenProvider(t)

	t.Run("Missing", func(t *testing.T) {
		_, err := p.ParseExternalLogin("")
		assert.ErrorIs(t, err, echo_errors.ErrExternalLoginFailed)
	})

	t.Run("SessionSecret", func(t *testing.T) {
		token, _, err := p.IssueSession(editor("admin-1"), "stamp")
		require.NoError(t, err)
		_, err = p.ParseExternalLogin(token)
		assert.ErrorIs(t, err, echo_errors.ErrExternalLoginFailed)
	})

	t.Run("Expired", func(t *testing.T) {
		assertion, err := p.SignExternalLogin(ExternalLoginClaims{Provider: "Google", ProviderKey: "k"})
		require.NoError(t, err)
		later := &TokenProvider{secret: p.secret, opts: p.opts, now: func() time.Time { return time.Now().Add(10 * time.Minute) }}
		_, err = later.ParseExternalLogin(assertion)
		assert.ErrorIs(t, err, echo_errors.ErrExternalLoginFailed)
	})

	t.Run("LongLivedAssertion", func(t *testing.T) {
		claims := ExternalLoginClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Provider:    "Google",
			ProviderKey: "k",
		}
		assertion, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString([]byte("proxy-secret"))
		require.NoError(t, err)
		_, err = p.ParseExternalLogin(assertion)
		assert.ErrorIs(t, err, echo_errors.ErrExternalLoginFailed)
	})

	t.Run("NoProviderKey", func(t *testing.T) {
		assertion, err := p.SignExternalLogin(ExternalLoginClaims{Provider: "Google"})
		require.NoError(t, err)
		_, err = p.ParseExternalLogin(assertion)
		assert.ErrorIs(t, err, echo_errors.ErrExternalLoginFailed)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		assertion, err := p.SignExternalLogin(ExternalLoginClaims{Provider: "Google", ProviderKey: "k"})
		require.NoError(t, err)
		bare, err := NewTokenProvider([]byte("test-secret"), TokenOptions{})
		require.NoError(t, err)
		_, err = bare.ParseExternalLogin(assertion)
		assert.ErrorIs(t, err, echo_errors.ErrExternalLoginFailed)
	})
}
