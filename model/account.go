// model/account.go
package model

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	City            string `json:"city"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password"`
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	ReturnURL string `json:"return_url"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Token           string `json:"token" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type AddPasswordRequest struct {
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password"`
}

// ExternalLoginInfo is what the external login provider reported about the
// user after a successful challenge.
type ExternalLoginInfo struct {
	LoginProvider string
	ProviderKey   string
	Email         string
	Name          string
}

// ExternalLoginStatus is the outcome of an external login callback.
type ExternalLoginStatus string

const (
	ExternalLoginSignedIn            ExternalLoginStatus = "signed_in"
	ExternalLoginConfirmationPending ExternalLoginStatus = "confirmation_pending"
)

type ExternalLoginResult struct {
	Status    ExternalLoginStatus `json:"status"`
	Token     string              `json:"token,omitempty"`
	ExpiresAt int64               `json:"expires_at,omitempty"`
	ReturnURL string              `json:"return_url,omitempty"`
}
