package staff

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMember_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		m := NewMember("cashier1", "hash", RoleStaff)
		assert.NoError(t, m.Validate(ctx))
	})

	t.Run("blank username", func(t *testing.T) {
		m := NewMember("   ", "hash", RoleStaff)
		assert.Error(t, m.Validate(ctx))
	})

	t.Run("missing password hash", func(t *testing.T) {
		m := NewMember("cashier1", "", RoleStaff)
		assert.Error(t, m.Validate(ctx))
	})

	t.Run("unknown role", func(t *testing.T) {
		m := NewMember("cashier1", "hash", Role("MANAGER"))
		assert.Error(t, m.Validate(ctx))
	})

	t.Run("bad email", func(t *testing.T) {
		m := NewMember("cashier1", "hash", RoleStaff)
		m.Email = "nope"
		assert.Error(t, m.Validate(ctx))
	})
}

func TestRole(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleStaff.Valid())
	assert.False(t, Role("OWNER").Valid())

	assert.True(t, NewMember("a", "h", RoleAdmin).IsAdmin())
	assert.False(t, NewMember("b", "h", RoleStaff).IsAdmin())
}
