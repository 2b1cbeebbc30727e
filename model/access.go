// model/access.go
package model

import "time"

type Role struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoleRequest struct {
	RoleName string `json:"role_name" binding:"required"`
}

// RoleDetails is a role together with the emails of its members.
type RoleDetails struct {
	ID       string   `json:"id"`
	RoleName string   `json:"role_name"`
	Users    []string `json:"users"`
}

// UserRoleSelection marks whether a user is a member of a given role.
type UserRoleSelection struct {
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	IsSelected bool   `json:"is_selected"`
}

// RoleSelection marks whether a given user holds a role.
type RoleSelection struct {
	RoleID     string `json:"role_id"`
	RoleName   string `json:"role_name"`
	IsSelected bool   `json:"is_selected"`
}

type ClaimSelection struct {
	ClaimType  string `json:"claim_type"`
	IsSelected bool   `json:"is_selected"`
}

type UserClaimsView struct {
	UserID string           `json:"user_id"`
	Claims []ClaimSelection `json:"claims"`
}

// UserDetails is the administration view of a user.
type UserDetails struct {
	ID       string   `json:"id"`
	UserName string   `json:"user_name"`
	Email    string   `json:"email"`
	City     string   `json:"city"`
	Roles    []string `json:"roles"`
	Claims   []string `json:"claims"`
}

type EditUserRequest struct {
	UserName string `json:"user_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	City     string `json:"city"`
}
