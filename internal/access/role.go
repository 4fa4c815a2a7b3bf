package access

import "fmt"

// Role identifies a class of actor with an associated feature set.
type Role string

const (
	// RoleOwner is the account owner. Every feature, including billing.
	RoleOwner Role = "owner"

	// RoleAdmin manages day-to-day settings and users but not billing.
	RoleAdmin Role = "admin"

	// RoleMember is a regular account member.
	RoleMember Role = "member"

	// RolePlatformAdmin is an operator of the hosting platform itself,
	// not a member of any tenant account.
	RolePlatformAdmin Role = "platformAdmin"
)

// knownRoles is the closed role enumeration in canonical order.
var knownRoles = []Role{RoleOwner, RoleAdmin, RoleMember, RolePlatformAdmin}

// KnownRoles returns the role enumeration in canonical order.
// The returned slice is a copy.
func KnownRoles() []Role {
	roles := make([]Role, len(knownRoles))
	copy(roles, knownRoles)
	return roles
}

// IsKnown reports whether r belongs to the role enumeration.
func (r Role) IsKnown() bool {
	for _, k := range knownRoles {
		if r == k {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// ParseRole converts configuration text into a Role.
// Matching is exact; role names are case-sensitive ("platformAdmin").
// Returns ErrUnknownRole for names outside the enumeration.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsKnown() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}
