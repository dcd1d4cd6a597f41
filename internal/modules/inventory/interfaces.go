package inventory

import (
	"context"
	"time"

	"hotelops/internal/domain"
	"hotelops/internal/modules/booking"
)

type InventoryRepository interface {
	Create(ctx context.Context, rec *domain.InventoryRecord) error
	GetByRoomType(ctx context.Context, roomTypeID string) (*domain.InventoryRecord, error)
	List(ctx context.Context) ([]domain.InventoryRecord, error)
	Update(ctx context.Context, roomTypeID string, totalRooms, availableRooms *int, active *bool) (*domain.InventoryRecord, error)
	Deactivate(ctx context.Context, roomTypeID string) error
}

type RoomCatalog interface {
	Get(id string) (*domain.RoomType, error)
}

// AvailabilityChecker is the live calculator; the check-availability endpoint
// delegates to it instead of reading the cached counter.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (*booking.AvailabilityResult, error)
}
