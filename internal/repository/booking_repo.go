package repository

import (
	"context"
	"time"

	"hotelops/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	RoomTypeID     string    `gorm:"column:room_type_id;index"`
	GuestName      string    `gorm:"column:guest_name"`
	GuestEmail     string    `gorm:"column:guest_email"`
	GuestPhone     string    `gorm:"column:guest_phone"`
	CheckIn        time.Time `gorm:"column:check_in"`
	CheckOut       time.Time `gorm:"column:check_out"`
	GuestCount     int       `gorm:"column:guest_count"`
	Nights         int       `gorm:"column:nights"`
	BaseTotal      float64   `gorm:"column:base_total"`
	TransactionFee float64   `gorm:"column:transaction_fee"`
	TotalAmount    float64   `gorm:"column:total_amount"`
	Status         string    `gorm:"column:status;index"`
	PaymentStatus  string    `gorm:"column:payment_status"`
	CreatedByRole  string    `gorm:"column:created_by_role"`
	TransactionRef string    `gorm:"column:transaction_ref;uniqueIndex"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:             m.ID,
		RoomTypeID:     m.RoomTypeID,
		GuestName:      m.GuestName,
		GuestEmail:     m.GuestEmail,
		GuestPhone:     m.GuestPhone,
		CheckIn:        m.CheckIn,
		CheckOut:       m.CheckOut,
		GuestCount:     m.GuestCount,
		Nights:         m.Nights,
		BaseTotal:      m.BaseTotal,
		TransactionFee: m.TransactionFee,
		TotalAmount:    m.TotalAmount,
		Status:         domain.BookingStatus(m.Status),
		PaymentStatus:  domain.PaymentStatus(m.PaymentStatus),
		CreatedByRole:  domain.StaffRole(m.CreatedByRole),
		TransactionRef: m.TransactionRef,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:             b.ID,
		RoomTypeID:     b.RoomTypeID,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		GuestPhone:     b.GuestPhone,
		CheckIn:        b.CheckIn,
		CheckOut:       b.CheckOut,
		GuestCount:     b.GuestCount,
		Nights:         b.Nights,
		BaseTotal:      b.BaseTotal,
		TransactionFee: b.TransactionFee,
		TotalAmount:    b.TotalAmount,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		CreatedByRole:  string(b.CreatedByRole),
		TransactionRef: b.TransactionRef,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByTransactionRef(ctx context.Context, ref string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("transaction_ref = ?", ref).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CountOverlapping counts bookings for a room type that still hold a room and
// whose date range overlaps [checkIn, checkOut). Half-open semantics: a
// checkout on day N does not collide with a check-in on day N.
func (r *BookingRepository) CountOverlapping(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (int, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("room_type_id = ?", roomTypeID).
		Where("status NOT IN ?", domain.RoomFreeingStatuses()).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return int(cnt), nil
}

func (r *BookingRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var rows []bookingModel
	if tx := q.Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now().UTC()}).Error
}

// MarkPaidConfirmed applies the payment-success update. It is idempotent at
// the row level: the WHERE clause only matches an unpaid booking, so applying
// the same webhook twice reports changed=false the second time and callers
// skip their side effects.
func (r *BookingRepository) MarkPaidConfirmed(ctx context.Context, id int64) (changed bool, err error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND payment_status <> ?", id, string(domain.PaymentPaid)).
		Updates(map[string]any{
			"payment_status": string(domain.PaymentPaid),
			"status":         string(domain.BookingConfirmed),
			"updated_at":     time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookingModel{}, id).Error
}

// StatusCount is one analytics bucket.
type StatusCount struct {
	Status  string  `gorm:"column:status"`
	Count   int64   `gorm:"column:count"`
	Revenue float64 `gorm:"column:revenue"`
}

// AggregateByStatus groups bookings created in [from, to) by status with
// count and summed totals.
func (r *BookingRepository) AggregateByStatus(ctx context.Context, from, to time.Time) ([]StatusCount, error) {
	var rows []StatusCount
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("status, COUNT(1) AS count, COALESCE(SUM(total_amount), 0) AS revenue").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("status").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// RoomTypeCount is bookings held per room type, for occupancy reporting.
type RoomTypeCount struct {
	RoomTypeID string `gorm:"column:room_type_id"`
	Count      int64  `gorm:"column:count"`
}

// CountActiveByRoomType counts bookings currently holding a room, per type.
func (r *BookingRepository) CountActiveByRoomType(ctx context.Context) ([]RoomTypeCount, error) {
	var rows []RoomTypeCount
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("room_type_id, COUNT(1) AS count").
		Where("status NOT IN ?", domain.RoomFreeingStatuses()).
		Group("room_type_id").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
