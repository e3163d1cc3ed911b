package main

import (
	"testing"

	"marketplace/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoles(t *testing.T) {
	roles := defaultRoles()
	require.Len(t, roles, 4)

	byName := make(map[entity.RoleName]*entity.Role, len(roles))
	for _, r := range roles {
		assert.True(t, r.Name.IsValid())
		assert.Equal(t, r.Name.Priority(), r.Priority)
		byName[r.Name] = r
	}

	admin := byName[entity.RoleAdmin]
	for _, r := range roles {
		for _, p := range r.Permissions {
			assert.True(t, admin.HasPermission(p.Resource, p.Action), "admin lacks %s", p.Key())
		}
	}

	assert.True(t, byName[entity.RoleCustomer].HasPermission("order", "create"))
	assert.False(t, byName[entity.RoleCustomer].HasPermission("product", "create"))
	assert.True(t, byName[entity.RoleSeller].HasPermission("product", "create"))
	assert.True(t, byName[entity.RoleSupport].HasPermission("review", "moderate"))
	assert.False(t, byName[entity.RoleSupport].HasPermission("seller", "moderate"))
}

func TestDefaultRoles_NoDuplicatePermissions(t *testing.T) {
	for _, r := range defaultRoles() {
		seen := make(map[string]bool)
		for _, p := range r.Permissions {
			assert.False(t, seen[p.Key()], "%s repeats %s", r.Name, p.Key())
			seen[p.Key()] = true
		}
	}
}
