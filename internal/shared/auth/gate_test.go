package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func identityWithRole(role Role) *Identity {
	return &Identity{
		UserID:   uuid.New(),
		Username: "tester",
		Role:     role,
	}
}

func TestDecide_Anonymous(t *testing.T) {
	assert.Equal(t, Allow, Decide(nil, CapabilityView))
	assert.Equal(t, DenyUnauthenticated, Decide(nil, CapabilityCreate))
	assert.Equal(t, DenyUnauthenticated, Decide(nil, CapabilityEdit))
	assert.Equal(t, DenyUnauthenticated, Decide(nil, CapabilityDelete))
}

func TestDecide_Admin(t *testing.T) {
	admin := identityWithRole(RoleAdmin)

	for _, capability := range []Capability{CapabilityView, CapabilityCreate, CapabilityEdit, CapabilityDelete} {
		assert.Equal(t, Allow, Decide(admin, capability), "admin should hold %s", capability)
	}
}

func TestDecide_Librarian(t *testing.T) {
	librarian := identityWithRole(RoleLibrarian)

	assert.Equal(t, Allow, Decide(librarian, CapabilityView))
	assert.Equal(t, Allow, Decide(librarian, CapabilityCreate))
	assert.Equal(t, Allow, Decide(librarian, CapabilityEdit))
	assert.Equal(t, DenyForbidden, Decide(librarian, CapabilityDelete))
}

func TestDecide_Member(t *testing.T) {
	member := identityWithRole(RoleMember)

	assert.Equal(t, Allow, Decide(member, CapabilityView))
	assert.Equal(t, DenyForbidden, Decide(member, CapabilityCreate))
	assert.Equal(t, DenyForbidden, Decide(member, CapabilityEdit))
	assert.Equal(t, DenyForbidden, Decide(member, CapabilityDelete))
}

func TestDecide_UnknownRoleActsAsViewer(t *testing.T) {
	unknown := identityWithRole(Role("superuser"))

	assert.Equal(t, Allow, Decide(unknown, CapabilityView))
	assert.Equal(t, DenyForbidden, Decide(unknown, CapabilityCreate))
	assert.Equal(t, DenyForbidden, Decide(unknown, CapabilityDelete))
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleAdmin.IsValid())
	assert.True(t, RoleLibrarian.IsValid())
	assert.True(t, RoleMember.IsValid())
	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
}
