package users

import "time"

const (
	RoleViewer  = "viewer"
	RoleCurator = "curator"
)

type User struct {
	ID       uint `gorm:"primaryKey"`
	Name     string
	Lastname string
	Email    string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password *string // nil for Google-only accounts

	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`

	Role string `gorm:"not null;default:'viewer'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPrivileged is the only auth signal the archive core consumes.
func (u User) IsPrivileged() bool {
	return u.Role == RoleCurator
}
