package auth

import (
	"context"
	"errors"
	"strings"

	"hotelops/internal/domain"
	"hotelops/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	staff  StaffRepository
	tokens TokenIssuer
	twoFA  TwoFactorVerifier
	log    *logrus.Logger
}

type LoginResult struct {
	Staff       *domain.Staff
	AccessToken string
}

func NewService(staff StaffRepository, tokens TokenIssuer, twoFA TwoFactorVerifier, log *logrus.Logger) *Service {
	return &Service{staff: staff, tokens: tokens, twoFA: twoFA, log: log}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	member, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !member.Active {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if member.TwoFAEnabled && s.twoFA != nil {
		if req.TOTP == "" {
			return nil, ErrTwoFARequired
		}
		ok, err := s.twoFA.Verify(ctx, member.ID, req.TOTP)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrTwoFAInvalid
		}
	}

	token, err := s.tokens.GenerateToken(member.ID, string(member.Role))
	if err != nil {
		return nil, err
	}

	if err := s.staff.TouchLastLogin(ctx, member.ID); err != nil {
		s.log.WithField("staff_id", member.ID).WithError(err).Warn("failed to record last login")
	}

	return &LoginResult{Staff: member, AccessToken: token}, nil
}

func (s *Service) CreateStaff(ctx context.Context, req CreateStaffRequest) (*domain.Staff, error) {
	role := domain.StaffRole(req.Role)
	if !role.Valid() || role == domain.RoleClient {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	member := &domain.Staff{
		FullName:     req.FullName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.staff.Create(ctx, member); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return member, nil
}

func (s *Service) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	return s.staff.List(ctx)
}

func (s *Service) UpdateStaffRole(ctx context.Context, id int64, role domain.StaffRole) (*domain.Staff, error) {
	if !role.Valid() || role == domain.RoleClient {
		return nil, ErrInvalidRole
	}
	if err := s.staff.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	member, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *Service) DeactivateStaff(ctx context.Context, id int64) error {
	if err := s.staff.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStaffNotFound
		}
		return err
	}
	return nil
}
