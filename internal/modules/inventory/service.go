package inventory

import (
	"context"
	"errors"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/cache"
	"hotelops/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const cacheKeyList = "inventory:list"

type Service struct {
	records InventoryRepository
	catalog RoomCatalog
	cache   *cache.Service
	log     *logrus.Logger
}

func NewService(records InventoryRepository, catalog RoomCatalog, cacheSvc *cache.Service, log *logrus.Logger) *Service {
	return &Service{records: records, catalog: catalog, cache: cacheSvc, log: log}
}

// Create registers the capacity row for a room type. One active row per
// type; the catalog is the gatekeeper for valid ids.
func (s *Service) Create(ctx context.Context, req CreateInventoryRequest) (*domain.InventoryRecord, error) {
	if req.TotalRooms < 0 {
		return nil, ErrValidation
	}
	if _, err := s.catalog.Get(req.RoomTypeID); err != nil {
		return nil, ErrUnknownRoomType
	}

	if existing, err := s.records.GetByRoomType(ctx, req.RoomTypeID); err == nil && existing != nil {
		return nil, ErrDuplicateInventory
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	available := req.TotalRooms
	if req.AvailableRooms != nil && *req.AvailableRooms >= 0 && *req.AvailableRooms <= req.TotalRooms {
		available = *req.AvailableRooms
	}

	rec := &domain.InventoryRecord{
		RoomTypeID:     req.RoomTypeID,
		TotalRooms:     req.TotalRooms,
		AvailableRooms: available,
	}
	if err := s.records.Create(ctx, rec); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDuplicateInventory
		}
		return nil, err
	}

	s.invalidate(ctx)
	return rec, nil
}

func (s *Service) Get(ctx context.Context, roomTypeID string) (*domain.InventoryRecord, error) {
	rec, err := s.records.GetByRoomType(ctx, roomTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	var cached []domain.InventoryRecord
	if s.cache.GetJSON(ctx, cacheKeyList, &cached) {
		return cached, nil
	}

	rows, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, cacheKeyList, rows)
	return rows, nil
}

// Update applies admin edits to capacity or the cached counter. It does not
// validate against live bookings; the availability calculator remains the
// arbiter at booking time.
func (s *Service) Update(ctx context.Context, roomTypeID string, req UpdateInventoryRequest) (*domain.InventoryRecord, error) {
	if req.TotalRooms != nil && *req.TotalRooms < 0 {
		return nil, ErrValidation
	}
	if req.AvailableRooms != nil && *req.AvailableRooms < 0 {
		return nil, ErrValidation
	}

	rec, err := s.records.Update(ctx, roomTypeID, req.TotalRooms, req.AvailableRooms, req.Active)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.invalidate(ctx)
	return rec, nil
}

// Deactivate soft-deletes the row. Existing bookings keep their room type
// reference; the calculator treats the type as zero capacity from here on.
func (s *Service) Deactivate(ctx context.Context, roomTypeID string) error {
	if err := s.records.Deactivate(ctx, roomTypeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	s.cache.DeletePattern(ctx, "inventory:*")
}
