package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func editor(id string) Principal {
	return Principal{
		ID:     id,
		Roles:  []string{AdminRole},
		Claims: []Claim{{Type: EditRoleClaim, Value: "true"}},
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		principal Principal
		target    string
		want      Decision
	}{
		{"admin editing another admin", editor("admin-1"), "admin-2", Granted},
		{"admin editing self", editor("admin-1"), "admin-1", Denied},
		{"self with different casing", editor("Admin-1"), "ADMIN-1", Denied},
		{"empty target resolves from role and claim", editor("admin-1"), "", Granted},
		{"missing identifier fails closed", editor(""), "admin-2", Denied},
		{"missing identifier and empty target", editor(""), "", Denied},
		{
			"not an admin",
			Principal{ID: "u1", Roles: []string{"User"}, Claims: []Claim{{EditRoleClaim, "true"}}},
			"u2",
			Denied,
		},
		{
			"role name is case sensitive",
			Principal{ID: "u1", Roles: []string{"admin"}, Claims: []Claim{{EditRoleClaim, "true"}}},
			"u2",
			Denied,
		},
		{
			"claim missing",
			Principal{ID: "u1", Roles: []string{AdminRole}},
			"u2",
			Denied,
		},
		{
			"claim false",
			Principal{ID: "u1", Roles: []string{AdminRole}, Claims: []Claim{{EditRoleClaim, "false"}}},
			"u2",
			Denied,
		},
		{
			"claim value case variant",
			Principal{ID: "u1", Roles: []string{AdminRole}, Claims: []Claim{{EditRoleClaim, "True"}}},
			"u2",
			Denied,
		},
		{
			"other claim only",
			Principal{ID: "u1", Roles: []string{AdminRole}, Claims: []Claim{{DeleteRoleClaim, "true"}}},
			"u2",
			Denied,
		},
		{
			"claim type compares case-insensitively",
			Principal{ID: "u1", Roles: []string{AdminRole}, Claims: []Claim{{"edit role", "true"}}},
			"u2",
			Granted,
		},
		{
			"superadmin gets no bypass on self",
			Principal{ID: "u1", Roles: []string{AdminRole, "Superadmin"}, Claims: []Claim{{EditRoleClaim, "true"}}},
			"U1",
			Denied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.principal, tt.target))
		})
	}
}

func TestDecideScenario(t *testing.T) {
	p := editor("admin-1")
	assert.Equal(t, Granted, Decide(p, "admin-2"))
	assert.Equal(t, Denied, Decide(p, "admin-1"))

	p.Claims = nil
	assert.Equal(t, Denied, Decide(p, "admin-2"))
}

func TestCanDeleteRoles(t *testing.T) {
	assert.True(t, CanDeleteRoles(Principal{Claims: []Claim{{DeleteRoleClaim, "true"}}}))
	assert.False(t, CanDeleteRoles(Principal{Claims: []Claim{{DeleteRoleClaim, "false"}}}))
	assert.False(t, CanDeleteRoles(Principal{}))
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "granted", Granted.String())
	assert.Equal(t, "denied", Denied.String())
}
