package analytics

import (
	"context"
	"fmt"
	"time"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/cache"

	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// Statuses whose totals never materialized as income.
var nonRevenueStatuses = map[string]bool{
	string(domain.BookingCancelled): true,
	string(domain.BookingNoShow):    true,
	string(domain.BookingVoided):    true,
}

type Service struct {
	bookings  BookingAggregator
	inventory InventoryLister
	bar       BarLedger
	cache     *cache.Service
	log       *logrus.Logger
}

func NewService(bookings BookingAggregator, inventory InventoryLister, bar BarLedger, c *cache.Service, log *logrus.Logger) *Service {
	return &Service{bookings: bookings, inventory: inventory, bar: bar, cache: c, log: log}
}

// Summarize builds the dashboard rollup for [from, to). Results are cached
// per window; writes elsewhere tolerate slightly stale dashboards.
func (s *Service) Summarize(ctx context.Context, from, to time.Time) (*Summary, error) {
	key := fmt.Sprintf("analytics:summary:%s:%s", from.Format(dateLayout), to.Format(dateLayout))
	var cached Summary
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	buckets, err := s.bookings.AggregateByStatus(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("aggregate bookings: %w", err)
	}

	out := &Summary{
		From:     from.Format(dateLayout),
		To:       to.Format(dateLayout),
		Bookings: make([]StatusBucket, 0, len(buckets)),
	}
	for _, b := range buckets {
		out.Bookings = append(out.Bookings, StatusBucket{Status: b.Status, Count: b.Count, Revenue: b.Revenue})
		out.TotalBookings += b.Count
		if !nonRevenueStatuses[b.Status] {
			out.RoomRevenue += b.Revenue
		}
	}

	out.BarRevenue, err = s.bar.SalesRevenue(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("bar revenue: %w", err)
	}
	out.TotalRevenue = out.RoomRevenue + out.BarRevenue

	out.Occupancy, err = s.occupancy(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, key, out)
	return out, nil
}

func (s *Service) occupancy(ctx context.Context) ([]Occupancy, error) {
	records, err := s.inventory.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	active, err := s.bookings.CountActiveByRoomType(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active bookings: %w", err)
	}

	occupied := make(map[string]int64, len(active))
	for _, a := range active {
		occupied[a.RoomTypeID] = a.Count
	}

	out := make([]Occupancy, 0, len(records))
	for _, rec := range records {
		if !rec.Active {
			continue
		}
		o := Occupancy{
			RoomTypeID:     rec.RoomTypeID,
			TotalRooms:     rec.TotalRooms,
			OccupiedRooms:  occupied[rec.RoomTypeID],
			AvailableRooms: rec.AvailableRooms,
		}
		if rec.TotalRooms > 0 {
			o.OccupancyRate = float64(o.OccupiedRooms) / float64(rec.TotalRooms)
		}
		out = append(out, o)
	}
	return out, nil
}
