package repository

import (
	"context"
	"time"

	"hotelops/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

type inventoryModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	RoomTypeID     string    `gorm:"column:room_type_id;uniqueIndex"`
	TotalRooms     int       `gorm:"column:total_rooms"`
	AvailableRooms int       `gorm:"column:available_rooms"`
	Active         bool      `gorm:"column:active"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (inventoryModel) TableName() string { return "room_inventory" }

func toDomainInventory(m inventoryModel) *domain.InventoryRecord {
	return &domain.InventoryRecord{
		ID:             m.ID,
		RoomTypeID:     m.RoomTypeID,
		TotalRooms:     m.TotalRooms,
		AvailableRooms: m.AvailableRooms,
		Active:         m.Active,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *InventoryRepository) Create(ctx context.Context, rec *domain.InventoryRecord) error {
	m := inventoryModel{
		RoomTypeID:     rec.RoomTypeID,
		TotalRooms:     rec.TotalRooms,
		AvailableRooms: rec.AvailableRooms,
		Active:         true,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rec = *toDomainInventory(m)
	return nil
}

// GetByRoomType returns the active inventory row for a room type.
func (r *InventoryRepository) GetByRoomType(ctx context.Context, roomTypeID string) (*domain.InventoryRecord, error) {
	var m inventoryModel
	tx := r.db.WithContext(ctx).
		Where("room_type_id = ? AND active = ?", roomTypeID, true).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainInventory(m), nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	var rows []inventoryModel
	tx := r.db.WithContext(ctx).Order("room_type_id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.InventoryRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainInventory(m))
	}
	return out, nil
}

// Update applies partial admin edits. Nil fields are left untouched. The
// available counter is still clamped to [0, totalRooms] so a direct edit
// cannot produce an impossible row.
func (r *InventoryRepository) Update(ctx context.Context, roomTypeID string, totalRooms, availableRooms *int, active *bool) (*domain.InventoryRecord, error) {
	var out *domain.InventoryRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m inventoryModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_type_id = ?", roomTypeID).
			First(&m).Error; err != nil {
			return err
		}

		if totalRooms != nil {
			m.TotalRooms = *totalRooms
		}
		if availableRooms != nil {
			m.AvailableRooms = *availableRooms
		}
		if active != nil {
			m.Active = *active
		}
		m.AvailableRooms = clampInt(m.AvailableRooms, 0, m.TotalRooms)
		m.UpdatedAt = time.Now().UTC()

		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		out = toDomainInventory(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deactivate soft-deletes the row. Bookings keep referencing the room type;
// the availability calculator treats a missing active row as zero capacity.
func (r *InventoryRepository) Deactivate(ctx context.Context, roomTypeID string) error {
	tx := r.db.WithContext(ctx).
		Model(&inventoryModel{}).
		Where("room_type_id = ? AND active = ?", roomTypeID, true).
		Updates(map[string]any{"active": false, "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementAvailable adjusts the cached available counter by delta, clamped
// to [0, totalRooms]. It is expressed as a locked read-modify-write rather
// than an unconditional overwrite so concurrent call paths cannot lose
// updates. Best-effort cache maintenance only: never the arbiter of whether
// a booking is accepted.
func (r *InventoryRepository) IncrementAvailable(ctx context.Context, roomTypeID string, delta int) (*domain.InventoryRecord, error) {
	var out *domain.InventoryRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m inventoryModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("room_type_id = ? AND active = ?", roomTypeID, true).
			First(&m).Error; err != nil {
			return err
		}

		m.AvailableRooms = clampInt(m.AvailableRooms+delta, 0, m.TotalRooms)
		m.UpdatedAt = time.Now().UTC()

		if err := tx.Model(&inventoryModel{}).Where("id = ?", m.ID).
			Updates(map[string]any{"available_rooms": m.AvailableRooms, "updated_at": m.UpdatedAt}).Error; err != nil {
			return err
		}
		out = toDomainInventory(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
