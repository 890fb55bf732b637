package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values. A user's capabilities come from these plus the staff flag.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

type User struct {
	ID        string     `gorm:"primaryKey;type:uuid" json:"id"`
	Username  string     `gorm:"uniqueIndex;not null;size:150" json:"username"`
	Email     string     `gorm:"uniqueIndex;not null" json:"email"`
	Role      string     `gorm:"default:'user';not null;size:20" json:"role"`
	IsStaff   bool       `gorm:"default:false;not null" json:"is_staff"`
	FirstName string     `gorm:"size:150" json:"first_name,omitempty"`
	LastName  string     `gorm:"size:150" json:"last_name,omitempty"`
	Bio       string     `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}

// IsAdminUser reports whether the user holds admin-level capabilities.
// Staff is treated as admin, matching the role hierarchy.
func (u *User) IsAdminUser() bool {
	return u.Role == RoleAdmin || u.IsStaff
}

func (u *User) IsModeratorUser() bool {
	return u.Role == RoleModerator
}

// CanModify is the single object-level capability check: a user may mutate
// an owned object if they authored it or hold an elevated role.
func (u *User) CanModify(authorID string) bool {
	return u.IsAdminUser() || u.IsModeratorUser() || u.ID == authorID
}

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}
