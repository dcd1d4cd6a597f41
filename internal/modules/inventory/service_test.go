package inventory

import (
	"context"
	"io"
	"testing"

	"hotelops/internal/domain"
	"hotelops/internal/modules/catalog"
	"hotelops/internal/pkg/cache"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mocks
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(ctx context.Context, rec *domain.InventoryRecord) error {
	args := m.Called(ctx, rec)
	if rec != nil {
		rec.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockInventoryRepository) GetByRoomType(ctx context.Context, roomTypeID string) (*domain.InventoryRecord, error) {
	args := m.Called(ctx, roomTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) Update(ctx context.Context, roomTypeID string, totalRooms, availableRooms *int, active *bool) (*domain.InventoryRecord, error) {
	args := m.Called(ctx, roomTypeID, totalRooms, availableRooms, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryRecord), args.Error(1)
}

func (m *MockInventoryRepository) Deactivate(ctx context.Context, roomTypeID string) error {
	args := m.Called(ctx, roomTypeID)
	return args.Error(0)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(records *MockInventoryRepository) *Service {
	// nil Redis client: cache degrades to a no-op
	return NewService(records, catalog.Default(), cache.New(nil, "test", 0), testLogger())
}

func TestCreate_NewRoomType(t *testing.T) {
	records := new(MockInventoryRepository)
	svc := newTestService(records)

	records.On("GetByRoomType", mock.Anything, "deluxe").Return(nil, gorm.ErrRecordNotFound)
	records.On("Create", mock.Anything, mock.Anything).Return(nil)

	rec, err := svc.Create(context.Background(), CreateInventoryRequest{RoomTypeID: "deluxe", TotalRooms: 6})

	assert.NoError(t, err)
	assert.Equal(t, "deluxe", rec.RoomTypeID)
	assert.Equal(t, 6, rec.TotalRooms)
	assert.Equal(t, 6, rec.AvailableRooms)
}

func TestCreate_UnknownRoomTypeRejected(t *testing.T) {
	svc := newTestService(new(MockInventoryRepository))

	_, err := svc.Create(context.Background(), CreateInventoryRequest{RoomTypeID: "penthouse", TotalRooms: 2})

	assert.ErrorIs(t, err, ErrUnknownRoomType)
}

func TestCreate_DuplicateRejected(t *testing.T) {
	records := new(MockInventoryRepository)
	svc := newTestService(records)

	records.On("GetByRoomType", mock.Anything, "deluxe").
		Return(&domain.InventoryRecord{RoomTypeID: "deluxe", TotalRooms: 6}, nil)

	_, err := svc.Create(context.Background(), CreateInventoryRequest{RoomTypeID: "deluxe", TotalRooms: 6})

	assert.ErrorIs(t, err, ErrDuplicateInventory)
	records.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_ExplicitAvailableClampedToTotal(t *testing.T) {
	records := new(MockInventoryRepository)
	svc := newTestService(records)

	records.On("GetByRoomType", mock.Anything, "deluxe").Return(nil, gorm.ErrRecordNotFound)
	records.On("Create", mock.Anything, mock.Anything).Return(nil)

	over := 10 // more than total, ignored
	rec, err := svc.Create(context.Background(), CreateInventoryRequest{
		RoomTypeID: "deluxe", TotalRooms: 6, AvailableRooms: &over,
	})

	assert.NoError(t, err)
	assert.Equal(t, 6, rec.AvailableRooms)
}

func TestUpdate_NegativeCountsRejected(t *testing.T) {
	svc := newTestService(new(MockInventoryRepository))

	bad := -1
	_, err := svc.Update(context.Background(), "deluxe", UpdateInventoryRequest{TotalRooms: &bad})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdate_MissingRow(t *testing.T) {
	records := new(MockInventoryRepository)
	svc := newTestService(records)

	records.On("Update", mock.Anything, "deluxe", (*int)(nil), (*int)(nil), (*bool)(nil)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Update(context.Background(), "deluxe", UpdateInventoryRequest{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeactivate_MissingRow(t *testing.T) {
	records := new(MockInventoryRepository)
	svc := newTestService(records)

	records.On("Deactivate", mock.Anything, "deluxe").Return(gorm.ErrRecordNotFound)

	err := svc.Deactivate(context.Background(), "deluxe")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_Found(t *testing.T) {
	records := new(MockInventoryRepository)
	svc := newTestService(records)

	records.On("GetByRoomType", mock.Anything, "family").
		Return(&domain.InventoryRecord{RoomTypeID: "family", TotalRooms: 4, AvailableRooms: 2, Active: true}, nil)

	rec, err := svc.Get(context.Background(), "family")

	assert.NoError(t, err)
	assert.Equal(t, 2, rec.AvailableRooms)
}
