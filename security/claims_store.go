// security/claims_store.go
package security

// DefaultClaimTypes is the claim catalog used when none is configured.
var DefaultClaimTypes = []string{CreateRoleClaim, EditRoleClaim, DeleteRoleClaim}

// ClaimsStore is the ordered list of claim types an administrator can grant.
type ClaimsStore struct {
	types []string
}

func NewClaimsStore(types []string) *ClaimsStore {
	if len(types) == 0 {
		types = DefaultClaimTypes
	}
	cp := make([]string, len(types))
	copy(cp, types)
	return &ClaimsStore{types: cp}
}

// AllClaimTypes returns a copy of the catalog in display order.
func (s *ClaimsStore) AllClaimTypes() []string {
	cp := make([]string, len(s.types))
	copy(cp, s.types)
	return cp
}

// Contains reports whether claimType is part of the catalog.
func (s *ClaimsStore) Contains(claimType string) bool {
	for _, t := range s.types {
		if t == claimType {
			return true
		}
	}
	return false
}
