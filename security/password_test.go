package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
)

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Passw0rd"))
	assert.NoError(t, ValidatePassword("Ab1cde"))

	for _, weak := range []string{"", "Ab1", "password1", "PASSWORD1", "Password"} {
		assert.ErrorIs(t, ValidatePassword(weak), echo_errors.ErrWeakPassword, weak)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Passw0rd")
	require.NoError(t, err)
	assert.NotEqual(t, "Passw0rd", hash)

	assert.True(t, CheckPassword(hash, "Passw0rd"))
	assert.False(t, CheckPassword(hash, "passw0rd"))
	assert.False(t, CheckPassword("", "Passw0rd"))
}

func TestClaimsStore(t *testing.T) {
	store := NewClaimsStore(nil)
	assert.Equal(t, []string{"Create Role", "Edit Role", "Delete Role"}, store.AllClaimTypes())
	assert.True(t, store.Contains("Edit Role"))
	assert.False(t, store.Contains("edit role"))

	custom := NewClaimsStore([]string{"Delete Role", "Edit Role"})
	types := custom.AllClaimTypes()
	types[0] = "mutated"
	assert.Equal(t, []string{"Delete Role", "Edit Role"}, custom.AllClaimTypes())
}
