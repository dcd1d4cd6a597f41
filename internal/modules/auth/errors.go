package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrTwoFARequired      = errors.New("two-factor code required")
	ErrTwoFAInvalid       = errors.New("invalid two-factor code")
	ErrEmailTaken         = errors.New("email already registered")
	ErrStaffNotFound      = errors.New("staff member not found")
	ErrInvalidRole        = errors.New("invalid role")
)
