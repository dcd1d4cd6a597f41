package booking

import (
	"context"
	"time"

	"hotelops/internal/domain"
)

// BookingRepository is the ledger: the authoritative record of every booking.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTransactionRef(ctx context.Context, ref string) (*domain.Booking, error)
	CountOverlapping(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error)
	List(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	MarkPaidConfirmed(ctx context.Context, id int64) (changed bool, err error)
	Delete(ctx context.Context, id int64) error
}

// InventoryStore exposes the capacity row and the best-effort cached counter.
type InventoryStore interface {
	GetByRoomType(ctx context.Context, roomTypeID string) (*domain.InventoryRecord, error)
	IncrementAvailable(ctx context.Context, roomTypeID string, delta int) (*domain.InventoryRecord, error)
}

// RoomCatalog resolves static room-type reference data.
type RoomCatalog interface {
	Get(id string) (*domain.RoomType, error)
}

// NotificationSender dispatches guest email asynchronously. Implementations
// must never block the caller; failures are logged, not returned.
type NotificationSender interface {
	BookingCreated(b *domain.Booking, roomType *domain.RoomType)
	BookingStatusChanged(b *domain.Booking)
}
