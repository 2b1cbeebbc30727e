// model/user.go
package model

import "time"

// User is an identity account able to sign in.
type User struct {
	ID             string      `json:"id" gorm:"primaryKey;size:36"`
	UserName       string      `json:"user_name" gorm:"uniqueIndex;not null"`
	Email          string      `json:"email" gorm:"index"`
	EmailConfirmed bool        `json:"email_confirmed"`
	PasswordHash   string      `json:"-"`
	SecurityStamp  string      `json:"-"`
	City           string      `json:"city,omitempty"`
	Roles          []Role      `json:"-" gorm:"many2many:user_roles;constraint:OnDelete:CASCADE"`
	Claims         []UserClaim `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Logins         []UserLogin `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// HasPassword reports whether the user can sign in with a local password.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

type UserClaim struct {
	ID         uint   `json:"-" gorm:"primaryKey"`
	UserID     string `json:"-" gorm:"index;size:36"`
	ClaimType  string `json:"claim_type"`
	ClaimValue string `json:"claim_value"`
}

// UserLogin links a user to an account at an external login provider.
type UserLogin struct {
	LoginProvider string `json:"login_provider" gorm:"primaryKey"`
	ProviderKey   string `json:"provider_key" gorm:"primaryKey"`
	UserID        string `json:"-" gorm:"index;size:36"`
}
