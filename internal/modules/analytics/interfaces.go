package analytics

import (
	"context"
	"time"

	"hotelops/internal/domain"
	"hotelops/internal/repository"
)

// BookingAggregator reads booking rollups from storage.
type BookingAggregator interface {
	AggregateByStatus(ctx context.Context, from, to time.Time) ([]repository.StatusCount, error)
	CountActiveByRoomType(ctx context.Context) ([]repository.RoomTypeCount, error)
}

// InventoryLister reads the room inventory table.
type InventoryLister interface {
	List(ctx context.Context) ([]domain.InventoryRecord, error)
}

// BarLedger reads bar takings.
type BarLedger interface {
	SalesRevenue(ctx context.Context, from, to time.Time) (float64, error)
}
