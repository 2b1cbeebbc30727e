// security/authorization.go
package security

import "strings"

const (
	AdminRole = "Admin"

	CreateRoleClaim = "Create Role"
	EditRoleClaim   = "Edit Role"
	DeleteRoleClaim = "Delete Role"

	// ClaimGranted is the only claim value that counts as holding a claim.
	ClaimGranted = "true"
)

// Claim is a (type, value) attribute asserted about a principal.
type Claim struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	ID     string   `json:"id"`
	Roles  []string `json:"roles"`
	Claims []Claim  `json:"claims"`
}

// IsInRole reports whether the principal is a member of role.
func (p Principal) IsInRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// HasClaim reports whether the principal carries a claim of claimType with
// exactly value. Claim types compare case-insensitively, values do not.
func (p Principal) HasClaim(claimType, value string) bool {
	for _, c := range p.Claims {
		if strings.EqualFold(c.Type, claimType) && c.Value == value {
			return true
		}
	}
	return false
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	Denied Decision = iota
	Granted
)

func (d Decision) String() string {
	if d == Granted {
		return "granted"
	}
	return "denied"
}

// Decide reports whether principal may manage the roles and claims of the
// user identified by targetUserID. An admin holding the Edit Role claim may
// edit anyone except themselves. A principal without an identifier is denied.
func Decide(principal Principal, targetUserID string) Decision {
	if principal.ID == "" {
		return Denied
	}
	if !principal.IsInRole(AdminRole) || !principal.HasClaim(EditRoleClaim, ClaimGranted) {
		return Denied
	}
	if strings.EqualFold(principal.ID, targetUserID) {
		return Denied
	}
	return Granted
}

// CanDeleteRoles is the delete-role policy: the Delete Role claim set to true.
func CanDeleteRoles(principal Principal) bool {
	return principal.HasClaim(DeleteRoleClaim, ClaimGranted)
}
