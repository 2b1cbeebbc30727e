// security/tokens.go
package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
)

type TokenPurpose string

const (
	PurposeSession           TokenPurpose = "Session"
	PurposeEmailConfirmation TokenPurpose = "EmailConfirmation"
	PurposeResetPassword     TokenPurpose = "ResetPassword"
)

// TokenClaims is the JWT body shared by session and purpose tokens.
type TokenClaims struct {
	jwt.RegisteredClaims
	Purpose TokenPurpose `json:"purpose"`
	Roles   []string     `json:"roles,omitempty"`
	Claims  []Claim      `json:"claims,omitempty"`
	Stamp   string       `json:"stamp,omitempty"`
}

// Principal rebuilds the request principal carried by a session token.
func (c *TokenClaims) Principal() Principal {
	return Principal{ID: c.Subject, Roles: c.Roles, Claims: c.Claims}
}

type TokenOptions struct {
	SessionTTL           time.Duration
	EmailConfirmationTTL time.Duration
	PasswordResetTTL     time.Duration
	// ExternalLoginSecret verifies assertions from the proxy that finishes
	// external OAuth challenges. Empty disables external login.
	ExternalLoginSecret []byte
	ExternalLoginTTL    time.Duration
}

// ExternalLoginClaims is the assertion the OAuth proxy signs after a
// successful challenge at an external provider.
type ExternalLoginClaims struct {
	jwt.RegisteredClaims
	Provider    string `json:"provider"`
	ProviderKey string `json:"provider_key"`
	Email       string `json:"email,omitempty"`
	Name        string `json:"name,omitempty"`
}

// TokenProvider signs and verifies HS256 tokens for sign-in sessions, email
// confirmation and password reset.
type TokenProvider struct {
	secret []byte
	opts   TokenOptions
	now    func() time.Time
}

func NewTokenProvider(secret []byte, opts TokenOptions) (*TokenProvider, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token signing secret cannot be empty")
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 12 * time.Hour
	}
	if opts.EmailConfirmationTTL <= 0 {
		opts.EmailConfirmationTTL = 72 * time.Hour
	}
	if opts.PasswordResetTTL <= 0 {
		opts.PasswordResetTTL = 5 * time.Hour
	}
	if opts.ExternalLoginTTL <= 0 {
		opts.ExternalLoginTTL = 5 * time.Minute
	}
	return &TokenProvider{secret: secret, opts: opts, now: time.Now}, nil
}

func (p *TokenProvider) ttl(purpose TokenPurpose) time.Duration {
	switch purpose {
	case PurposeEmailConfirmation:
		return p.opts.EmailConfirmationTTL
	case PurposeResetPassword:
		return p.opts.PasswordResetTTL
	default:
		return p.opts.SessionTTL
	}
}

func (p *TokenProvider) sign(claims *TokenClaims) (string, error) {
	now := p.now()
	claims.ID = uuid.New().String()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(p.ttl(claims.Purpose)))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *TokenProvider) parse(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(p.now))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// IssueSession signs a session token for principal. stamp is the user's
// security stamp at sign-in; the session dies when it changes.
func (p *TokenProvider) IssueSession(principal Principal, stamp string) (string, *TokenClaims, error) {
	claims := &TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: principal.ID},
		Purpose:          PurposeSession,
		Roles:            principal.Roles,
		Claims:           principal.Claims,
		Stamp:            stamp,
	}
	token, err := p.sign(claims)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

// ParseSession verifies a session token.
func (p *TokenProvider) ParseSession(token string) (*TokenClaims, error) {
	claims, err := p.parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrUnauthorized, err)
	}
	if claims.Purpose != PurposeSession || claims.Subject == "" {
		return nil, echo_errors.ErrUnauthorized
	}
	return claims, nil
}

// GenerateUserToken signs a single-purpose token bound to a user and the
// user's current security stamp.
func (p *TokenProvider) GenerateUserToken(userID, stamp string, purpose TokenPurpose) (string, error) {
	if purpose == PurposeSession {
		return "", errors.New("session tokens are issued with IssueSession")
	}
	return p.sign(&TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
		Purpose:          purpose,
		Stamp:            stamp,
	})
}

// ValidateUserToken checks a token from GenerateUserToken. Tokens issued
// before the stamp changed are rejected.
func (p *TokenProvider) ValidateUserToken(token, userID, stamp string, purpose TokenPurpose) error {
	claims, err := p.parse(token)
	if err != nil {
		return echo_errors.ErrInvalidToken
	}
	if claims.Purpose != purpose || claims.Subject != userID || claims.Stamp != stamp {
		return echo_errors.ErrInvalidToken
	}
	return nil
}

// SignExternalLogin signs an external login assertion the way the OAuth
// proxy does.
func (p *TokenProvider) SignExternalLogin(claims ExternalLoginClaims) (string, error) {
	if len(p.opts.ExternalLoginSecret) == 0 {
		return "", errors.New("external login secret is not configured")
	}
	now := p.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(p.opts.ExternalLoginTTL))
	return jwt.NewWithClaims(jwt.SigningMethodHS256, &claims).SignedString(p.opts.ExternalLoginSecret)
}

// ParseExternalLogin verifies an assertion from the OAuth proxy. Assertions
// without an expiry, provider or provider key, or issued more than
// ExternalLoginTTL ago, are rejected.
func (p *TokenProvider) ParseExternalLogin(assertion string) (*ExternalLoginClaims, error) {
	if len(p.opts.ExternalLoginSecret) == 0 {
		return nil, fmt.Errorf("%w: external login is not configured", echo_errors.ErrExternalLoginFailed)
	}
	if assertion == "" {
		return nil, fmt.Errorf("%w: missing external login assertion", echo_errors.ErrExternalLoginFailed)
	}
	claims := &ExternalLoginClaims{}
	_, err := jwt.ParseWithClaims(assertion, claims, func(t *jwt.Token) (interface{}, error) {
		return p.opts.ExternalLoginSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrExternalLoginFailed, err)
	}
	if claims.IssuedAt == nil || p.now().Sub(claims.IssuedAt.Time) > p.opts.ExternalLoginTTL {
		return nil, fmt.Errorf("%w: stale external login assertion", echo_errors.ErrExternalLoginFailed)
	}
	if claims.Provider == "" || claims.ProviderKey == "" {
		return nil, fmt.Errorf("%w: error loading external login information", echo_errors.ErrExternalLoginFailed)
	}
	return claims, nil
}
