package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("SUPERADMIN").Valid())
	assert.False(t, Role("admin").Valid())
}

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, RoleUser.IsAdmin())
	assert.False(t, Role("").IsAdmin())
}

func TestPrincipalCanModify(t *testing.T) {
	tests := []struct {
		name      string
		principal *Principal
		owner     string
		want      bool
	}{
		{
			name:      "owner may modify own resource",
			principal: &Principal{UserID: uuid.New(), Username: "alice", Role: RoleUser},
			owner:     "alice",
			want:      true,
		},
		{
			name:      "user may not modify another user's resource",
			principal: &Principal{UserID: uuid.New(), Username: "alice", Role: RoleUser},
			owner:     "bob",
			want:      false,
		},
		{
			name:      "admin may modify any resource",
			principal: &Principal{UserID: uuid.New(), Username: "root", Role: RoleAdmin},
			owner:     "bob",
			want:      true,
		},
		{
			name:      "admin may modify own resource",
			principal: &Principal{UserID: uuid.New(), Username: "root", Role: RoleAdmin},
			owner:     "root",
			want:      true,
		},
		{
			name:      "nil principal may modify nothing",
			principal: nil,
			owner:     "alice",
			want:      false,
		},
		{
			name:      "username match is case sensitive",
			principal: &Principal{UserID: uuid.New(), Username: "Alice", Role: RoleUser},
			owner:     "alice",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.principal.CanModify(tt.owner))
		})
	}
}
