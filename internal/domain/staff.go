package domain

import "time"

type StaffRole string

const (
	RoleClient       StaffRole = "client"
	RoleReceptionist StaffRole = "receptionist"
	RoleSupervisor   StaffRole = "supervisor"
	RoleSuperadmin   StaffRole = "superadmin"
)

// Valid reports whether r is a known role.
func (r StaffRole) Valid() bool {
	switch r {
	case RoleClient, RoleReceptionist, RoleSupervisor, RoleSuperadmin:
		return true
	}
	return false
}

type Staff struct {
	ID           int64      `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	PasswordHash string     `json:"-"`
	Role         StaffRole  `json:"role"`
	Active       bool       `json:"active"`
	TwoFAEnabled bool       `json:"two_fa_enabled"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
