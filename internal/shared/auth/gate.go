package auth

import "github.com/google/uuid"

// Capability is a single permission required by an operation.
type Capability string

const (
	CapabilityView   Capability = "view"
	CapabilityCreate Capability = "create"
	CapabilityEdit   Capability = "edit"
	CapabilityDelete Capability = "delete"
)

// Role determines which capabilities an authenticated user holds.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
	RoleMember    Role = "member"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleMember:
		return true
	}
	return false
}

// rolePermissions maps each role to its fixed capability set.
var rolePermissions = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapabilityView:   true,
		CapabilityCreate: true,
		CapabilityEdit:   true,
		CapabilityDelete: true,
	},
	RoleLibrarian: {
		CapabilityView:   true,
		CapabilityCreate: true,
		CapabilityEdit:   true,
	},
	RoleMember: {
		CapabilityView: true,
	},
}

// Identity is the authenticated caller extracted from a JWT.
// A nil *Identity means the request is anonymous.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Role     Role
}

// Decision is the outcome of a gate check.
type Decision int

const (
	Allow Decision = iota
	// DenyUnauthenticated: no credentials were presented at all.
	DenyUnauthenticated
	// DenyForbidden: authenticated but the role lacks the capability.
	DenyForbidden
)

// Decide checks whether identity may perform an operation requiring the
// given capability. Anonymous callers may only view. The function has no
// HTTP dependencies so it can be tested directly.
func Decide(identity *Identity, capability Capability) Decision {
	if identity == nil {
		if capability == CapabilityView {
			return Allow
		}
		return DenyUnauthenticated
	}

	perms, ok := rolePermissions[identity.Role]
	if !ok {
		// Unknown role: treat like an anonymous viewer.
		if capability == CapabilityView {
			return Allow
		}
		return DenyForbidden
	}

	if perms[capability] {
		return Allow
	}
	return DenyForbidden
}
