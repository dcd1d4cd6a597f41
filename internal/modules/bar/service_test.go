package bar

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"hotelops/internal/domain"
	"hotelops/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mocks
type MockBarRepository struct {
	mock.Mock
}

func (m *MockBarRepository) CreateDrink(ctx context.Context, d *domain.Drink) error {
	args := m.Called(ctx, d)
	if d != nil {
		d.ID = 5 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBarRepository) GetDrink(ctx context.Context, id int64) (*domain.Drink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drink), args.Error(1)
}

func (m *MockBarRepository) ListDrinks(ctx context.Context) ([]domain.Drink, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Drink), args.Error(1)
}

func (m *MockBarRepository) UpdateDrink(ctx context.Context, id int64, price *float64, stock *int) (*domain.Drink, error) {
	args := m.Called(ctx, id, price, stock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Drink), args.Error(1)
}

func (m *MockBarRepository) DeactivateDrink(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBarRepository) RecordSale(ctx context.Context, sale *domain.BarSale) error {
	args := m.Called(ctx, sale)
	if args.Error(0) == nil && sale != nil {
		sale.ID = 77
		sale.UnitPrice = 2500
		sale.Total = 2500 * float64(sale.Quantity)
	}
	return args.Error(0)
}

func (m *MockBarRepository) ListSales(ctx context.Context, from, to time.Time, limit, offset int) ([]domain.BarSale, error) {
	args := m.Called(ctx, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BarSale), args.Error(1)
}

func (m *MockBarRepository) SalesRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestCreateDrink_Valid(t *testing.T) {
	repo := new(MockBarRepository)
	svc := NewService(repo, testLogger())

	repo.On("CreateDrink", mock.Anything, mock.Anything).Return(nil)

	d, err := svc.CreateDrink(context.Background(), CreateDrinkRequest{
		Name: "Chapman", Category: "cocktail", Price: 2500, Stock: 40,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5), d.ID)
	assert.Equal(t, "Chapman", d.Name)
}

func TestCreateDrink_NonPositivePriceRejected(t *testing.T) {
	svc := NewService(new(MockBarRepository), testLogger())

	_, err := svc.CreateDrink(context.Background(), CreateDrinkRequest{Name: "Free Beer", Price: 0, Stock: 10})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateDrink_DuplicateName(t *testing.T) {
	repo := new(MockBarRepository)
	svc := NewService(repo, testLogger())

	repo.On("CreateDrink", mock.Anything, mock.Anything).
		Return(errors.New("UNIQUE constraint failed: drinks.name"))

	_, err := svc.CreateDrink(context.Background(), CreateDrinkRequest{Name: "Chapman", Price: 2500, Stock: 40})

	assert.ErrorIs(t, err, ErrDuplicateDrink)
}

func TestRecordSale_PricedServerSide(t *testing.T) {
	repo := new(MockBarRepository)
	svc := NewService(repo, testLogger())

	repo.On("RecordSale", mock.Anything, mock.Anything).Return(nil)

	sale, err := svc.RecordSale(context.Background(), RecordSaleRequest{DrinkID: 5, Quantity: 3},
		42, domain.RoleReceptionist)

	assert.NoError(t, err)
	assert.Equal(t, 3, sale.Quantity)
	assert.Equal(t, 7500.0, sale.Total)
	assert.Equal(t, int64(42), sale.SoldByID)
	assert.Equal(t, domain.RoleReceptionist, sale.SoldByRole)
}

func TestRecordSale_NonPositiveQuantityRejected(t *testing.T) {
	svc := NewService(new(MockBarRepository), testLogger())

	_, err := svc.RecordSale(context.Background(), RecordSaleRequest{DrinkID: 5, Quantity: 0},
		42, domain.RoleReceptionist)

	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordSale_InsufficientStock(t *testing.T) {
	repo := new(MockBarRepository)
	svc := NewService(repo, testLogger())

	repo.On("RecordSale", mock.Anything, mock.Anything).Return(repository.ErrInsufficientStock)

	_, err := svc.RecordSale(context.Background(), RecordSaleRequest{DrinkID: 5, Quantity: 500},
		42, domain.RoleReceptionist)

	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestRecordSale_UnknownDrink(t *testing.T) {
	repo := new(MockBarRepository)
	svc := NewService(repo, testLogger())

	repo.On("RecordSale", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	_, err := svc.RecordSale(context.Background(), RecordSaleRequest{DrinkID: 404, Quantity: 1},
		42, domain.RoleReceptionist)

	assert.ErrorIs(t, err, ErrDrinkNotFound)
}

func TestUpdateDrink_InvalidPrice(t *testing.T) {
	svc := NewService(new(MockBarRepository), testLogger())

	bad := -1.0
	_, err := svc.UpdateDrink(context.Background(), 5, UpdateDrinkRequest{Price: &bad})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestDeactivateDrink_NotFound(t *testing.T) {
	repo := new(MockBarRepository)
	svc := NewService(repo, testLogger())

	repo.On("DeactivateDrink", mock.Anything, int64(404)).Return(gorm.ErrRecordNotFound)

	err := svc.DeactivateDrink(context.Background(), 404)

	assert.ErrorIs(t, err, ErrDrinkNotFound)
}
