package auth

import (
	"context"
	"io"
	"testing"

	"hotelops/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mocks
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) Create(ctx context.Context, s *domain.Staff) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockStaffRepository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) List(ctx context.Context) ([]domain.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *MockStaffRepository) UpdateRole(ctx context.Context, id int64, role domain.StaffRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockStaffRepository) Deactivate(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStaffRepository) TouchLastLogin(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(staffID int64, role string) (string, error) {
	args := m.Called(staffID, role)
	return args.String(0), args.Error(1)
}

type MockTwoFactorVerifier struct {
	mock.Mock
}

func (m *MockTwoFactorVerifier) Verify(ctx context.Context, staffID int64, code string) (bool, error) {
	args := m.Called(ctx, staffID, code)
	return args.Bool(0), args.Error(1)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func hashOf(password string) string {
	h, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(h)
}

func activeStaff(role domain.StaffRole) *domain.Staff {
	return &domain.Staff{
		ID:           42,
		Email:        "ngozi@hotelops.local",
		PasswordHash: hashOf("secret-pass"),
		Role:         role,
		Active:       true,
	}
}

func TestLogin_Success(t *testing.T) {
	staff := new(MockStaffRepository)
	tokens := new(MockTokenIssuer)
	svc := NewService(staff, tokens, nil, testLogger())

	staff.On("GetByEmail", mock.Anything, "ngozi@hotelops.local").
		Return(activeStaff(domain.RoleReceptionist), nil)
	tokens.On("GenerateToken", int64(42), "receptionist").Return("signed-token", nil)
	staff.On("TouchLastLogin", mock.Anything, int64(42)).Return(nil)

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "  Ngozi@HotelOps.local ",
		Password: "secret-pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", res.AccessToken)
	assert.Equal(t, int64(42), res.Staff.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	staff := new(MockStaffRepository)
	svc := NewService(staff, new(MockTokenIssuer), nil, testLogger())

	staff.On("GetByEmail", mock.Anything, "ngozi@hotelops.local").
		Return(activeStaff(domain.RoleReceptionist), nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ngozi@hotelops.local",
		Password: "not-the-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	staff := new(MockStaffRepository)
	svc := NewService(staff, new(MockTokenIssuer), nil, testLogger())

	staff.On("GetByEmail", mock.Anything, "ghost@hotelops.local").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@hotelops.local",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_DisabledAccount(t *testing.T) {
	staff := new(MockStaffRepository)
	svc := NewService(staff, new(MockTokenIssuer), nil, testLogger())

	member := activeStaff(domain.RoleReceptionist)
	member.Active = false
	staff.On("GetByEmail", mock.Anything, "ngozi@hotelops.local").Return(member, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ngozi@hotelops.local",
		Password: "secret-pass",
	})

	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestLogin_TwoFARequired(t *testing.T) {
	staff := new(MockStaffRepository)
	twoFA := new(MockTwoFactorVerifier)
	svc := NewService(staff, new(MockTokenIssuer), twoFA, testLogger())

	member := activeStaff(domain.RoleSupervisor)
	member.TwoFAEnabled = true
	staff.On("GetByEmail", mock.Anything, "ngozi@hotelops.local").Return(member, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ngozi@hotelops.local",
		Password: "secret-pass",
	})

	assert.ErrorIs(t, err, ErrTwoFARequired)
}

func TestLogin_TwoFAInvalidCode(t *testing.T) {
	staff := new(MockStaffRepository)
	twoFA := new(MockTwoFactorVerifier)
	svc := NewService(staff, new(MockTokenIssuer), twoFA, testLogger())

	member := activeStaff(domain.RoleSupervisor)
	member.TwoFAEnabled = true
	staff.On("GetByEmail", mock.Anything, "ngozi@hotelops.local").Return(member, nil)
	twoFA.On("Verify", mock.Anything, int64(42), "000000").Return(false, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ngozi@hotelops.local",
		Password: "secret-pass",
		TOTP:     "000000",
	})

	assert.ErrorIs(t, err, ErrTwoFAInvalid)
}

func TestCreateStaff_ClientRoleRejected(t *testing.T) {
	svc := NewService(new(MockStaffRepository), new(MockTokenIssuer), nil, testLogger())

	_, err := svc.CreateStaff(context.Background(), CreateStaffRequest{
		FullName: "Test",
		Email:    "t@hotelops.local",
		Password: "long-enough",
		Role:     "client",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCreateStaff_HashesPasswordAndNormalizesEmail(t *testing.T) {
	staff := new(MockStaffRepository)
	svc := NewService(staff, new(MockTokenIssuer), nil, testLogger())

	staff.On("Create", mock.Anything, mock.Anything).Return(nil)

	member, err := svc.CreateStaff(context.Background(), CreateStaffRequest{
		FullName: "Front Desk",
		Email:    " Desk@HotelOps.local ",
		Password: "secret-pass",
		Role:     "receptionist",
	})

	assert.NoError(t, err)
	assert.Equal(t, "desk@hotelops.local", member.Email)
	assert.NotEqual(t, "secret-pass", member.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte("secret-pass")))
}

func TestUpdateStaffRole_InvalidRole(t *testing.T) {
	svc := NewService(new(MockStaffRepository), new(MockTokenIssuer), nil, testLogger())

	_, err := svc.UpdateStaffRole(context.Background(), 42, domain.StaffRole("janitor"))

	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestDeactivateStaff_NotFound(t *testing.T) {
	staff := new(MockStaffRepository)
	svc := NewService(staff, new(MockTokenIssuer), nil, testLogger())

	staff.On("Deactivate", mock.Anything, int64(99)).Return(gorm.ErrRecordNotFound)

	err := svc.DeactivateStaff(context.Background(), 99)

	assert.ErrorIs(t, err, ErrStaffNotFound)
}
