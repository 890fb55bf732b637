package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanModify(t *testing.T) {
	cases := []struct {
		name     string
		user     User
		authorID string
		want     bool
	}{
		{"author edits own", User{ID: "a", Role: RoleUser}, "a", true},
		{"stranger denied", User{ID: "b", Role: RoleUser}, "a", false},
		{"moderator edits any", User{ID: "m", Role: RoleModerator}, "a", true},
		{"admin edits any", User{ID: "x", Role: RoleAdmin}, "a", true},
		{"staff edits any", User{ID: "s", Role: RoleUser, IsStaff: true}, "a", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.user.CanModify(tc.authorID))
		})
	}
}

func TestIsAdminUser(t *testing.T) {
	assert.True(t, (&User{Role: RoleAdmin}).IsAdminUser())
	assert.True(t, (&User{Role: RoleUser, IsStaff: true}).IsAdminUser())
	assert.False(t, (&User{Role: RoleModerator}).IsAdminUser())
	assert.False(t, (&User{Role: RoleUser}).IsAdminUser())
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleUser))
	assert.True(t, ValidRole(RoleModerator))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("superuser"))
}
