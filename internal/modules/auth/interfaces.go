package auth

import (
	"context"

	"hotelops/internal/domain"
)

type StaffRepository interface {
	Create(ctx context.Context, s *domain.Staff) error
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	GetByEmail(ctx context.Context, email string) (*domain.Staff, error)
	List(ctx context.Context) ([]domain.Staff, error)
	UpdateRole(ctx context.Context, id int64, role domain.StaffRole) error
	Deactivate(ctx context.Context, id int64) error
	TouchLastLogin(ctx context.Context, id int64) error
}

type TokenIssuer interface {
	GenerateToken(staffID int64, role string) (string, error)
}

// TwoFactorVerifier checks a TOTP code for accounts with 2FA enabled. Code
// generation and enrollment live outside this service; a nil verifier
// disables the check entirely.
type TwoFactorVerifier interface {
	Verify(ctx context.Context, staffID int64, code string) (bool, error)
}
