package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/keylock"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings  BookingRepository
	inventory InventoryStore
	catalog   RoomCatalog
	calc      *Calculator
	notifs    NotificationSender
	locks     *keylock.KeyedMutex
	log       *logrus.Logger
}

func NewService(
	bookings BookingRepository,
	inventory InventoryStore,
	catalog RoomCatalog,
	notifs NotificationSender,
	log *logrus.Logger,
) *Service {
	return &Service{
		bookings:  bookings,
		inventory: inventory,
		catalog:   catalog,
		calc:      NewCalculator(bookings, inventory),
		notifs:    notifs,
		locks:     keylock.New(),
		log:       log,
	}
}

// CheckAvailability exposes the calculator to the availability endpoint.
func (s *Service) CheckAvailability(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	return s.calc.Check(ctx, roomTypeID, checkIn, checkOut)
}

// ParseStayDates parses the wire format for check-in/check-out days.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrValidation
	}
	return in, out, nil
}

// CreateBooking prices the stay, verifies capacity and inserts the ledger
// row. The check-then-insert sequence runs under a per-room-type mutex so
// two concurrent requests cannot both take the last room. A staff actor gets
// status confirmed; the public flow starts pending until payment lands.
// Nothing touches the inventory counter here: capacity is derived live from
// the ledger, and the cached counter is allowed to drift until a freeing
// event corrects it.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest, actorRole domain.StaffRole) (*domain.Booking, *Quote, error) {
	if req.GuestName == "" || req.GuestEmail == "" || req.GuestPhone == "" {
		return nil, nil, ErrValidation
	}
	guests := req.Guests
	if guests <= 0 {
		guests = 1
	}

	checkIn, checkOut, err := ParseStayDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, nil, err
	}

	roomType, err := s.catalog.Get(req.RoomTypeID)
	if err != nil {
		return nil, nil, ErrUnknownRoomType
	}
	if guests > roomType.MaxOccupancy {
		return nil, nil, ErrValidation
	}

	quote, err := PriceStay(roomType.NightlyRate, checkIn, checkOut)
	if err != nil {
		return nil, nil, err
	}

	s.locks.Lock(req.RoomTypeID)
	defer s.locks.Unlock(req.RoomTypeID)

	avail, err := s.calc.Check(ctx, req.RoomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, nil, err
	}
	if !avail.Available {
		s.log.WithFields(logrus.Fields{
			"room_type": req.RoomTypeID,
			"check_in":  req.CheckIn,
			"check_out": req.CheckOut,
			"total":     avail.TotalRooms,
			"booked":    avail.Booked,
		}).Warn("booking rejected, no rooms available")
		return nil, nil, &CapacityError{Result: *avail, CheckIn: req.CheckIn, CheckOut: req.CheckOut}
	}

	status := domain.BookingConfirmed
	if actorRole == domain.RoleClient {
		status = domain.BookingPending
	}

	b := &domain.Booking{
		RoomTypeID:     req.RoomTypeID,
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     req.GuestPhone,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		GuestCount:     guests,
		Nights:         quote.Nights,
		BaseTotal:      quote.BaseTotal,
		TransactionFee: quote.TransactionFee,
		TotalAmount:    quote.TotalAmount,
		Status:         status,
		PaymentStatus:  domain.PaymentPending,
		CreatedByRole:  actorRole,
		TransactionRef: fmt.Sprintf("BK-%d", time.Now().UnixMilli()),
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		s.log.WithFields(logrus.Fields{
			"room_type": req.RoomTypeID,
			"check_in":  req.CheckIn,
			"check_out": req.CheckOut,
			"operation": "create_booking",
		}).WithError(err).Error("booking insert failed")
		return nil, nil, err
	}

	if s.notifs != nil {
		s.notifs.BookingCreated(b, roomType)
	}
	return b, quote, nil
}

func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBookings(ctx context.Context, status string, limit, offset int) ([]domain.Booking, error) {
	if status != "" && !domain.BookingStatus(status).Valid() {
		return nil, ErrInvalidStatus
	}
	return s.bookings.List(ctx, status, limit, offset)
}

// Transition moves a booking to newStatus and applies the edge-triggered
// inventory side effect: entering the room-freeing set from outside it
// restores one room to the cached counter. Re-applying a freeing status, or
// moving between freeing statuses, does nothing. The reverse edge (an
// administrative un-free) only logs a warning: decrementing on out-of-order
// corrections could push availability negative, so reconciliation is left to
// the operator.
func (s *Service) Transition(ctx context.Context, bookingID int64, newStatus domain.BookingStatus, actorRole domain.StaffRole) (*domain.Booking, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	prev := b.Status

	if !isNominalTransition(prev, newStatus) && prev != newStatus {
		s.log.WithFields(logrus.Fields{
			"booking_id": bookingID,
			"from":       prev,
			"to":         newStatus,
			"actor_role": actorRole,
		}).Warn("off-path status transition")
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		s.log.WithFields(logrus.Fields{
			"booking_id": bookingID,
			"room_type":  b.RoomTypeID,
			"operation":  "update_status",
		}).WithError(err).Error("status update failed")
		return nil, err
	}

	switch {
	case newStatus.IsRoomFreeing() && !prev.IsRoomFreeing():
		s.restoreRoom(ctx, b, string(newStatus))
	case !newStatus.IsRoomFreeing() && prev.IsRoomFreeing():
		s.log.WithFields(logrus.Fields{
			"booking_id": bookingID,
			"room_type":  b.RoomTypeID,
			"from":       prev,
			"to":         newStatus,
		}).Warn("booking un-freed without inventory decrement, counter may overstate availability")
	}

	updated, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if s.notifs != nil && prev != newStatus {
		s.notifs.BookingStatusChanged(updated)
	}
	return updated, nil
}

// ApplyPaymentSuccess marks the booking paid and confirmed for a gateway
// reference. Both the synchronous verify call and the webhook land here, and
// replays are harmless: the repository update only matches an unpaid row.
func (s *Service) ApplyPaymentSuccess(ctx context.Context, transactionRef string) (*domain.Booking, error) {
	b, err := s.bookings.GetByTransactionRef(ctx, transactionRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	changed, err := s.bookings.MarkPaidConfirmed(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if !changed {
		s.log.WithFields(logrus.Fields{
			"booking_id": b.ID,
			"reference":  transactionRef,
		}).Info("payment success replayed, booking already paid")
		return b, nil
	}

	updated, err := s.GetBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if s.notifs != nil {
		s.notifs.BookingStatusChanged(updated)
	}
	return updated, nil
}

// DeleteBooking removes a ledger row outright. Superadmin only, and only for
// bookings still holding a room: a freed booking has already been accounted
// for, so deleting it would either double-free or destroy the audit trail.
// Status transitions to cancelled/voided are the preferred path; this exists
// for error correction.
func (s *Service) DeleteBooking(ctx context.Context, bookingID int64, actorRole domain.StaffRole) error {
	if actorRole != domain.RoleSuperadmin {
		return ErrForbidden
	}

	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.Status.IsRoomFreeing() {
		return ErrCannotDeleteFreed
	}

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return err
	}
	s.restoreRoom(ctx, b, "delete")
	return nil
}

// restoreRoom bumps the cached available counter after a room is released.
// Failures are logged with enough context for manual reconciliation, never
// propagated: the ledger write already succeeded and remains authoritative.
func (s *Service) restoreRoom(ctx context.Context, b *domain.Booking, cause string) {
	if _, err := s.inventory.IncrementAvailable(ctx, b.RoomTypeID, 1); err != nil {
		s.log.WithFields(logrus.Fields{
			"booking_id": b.ID,
			"room_type":  b.RoomTypeID,
			"check_in":   b.CheckIn.Format(dateLayout),
			"check_out":  b.CheckOut.Format(dateLayout),
			"cause":      cause,
			"operation":  "increment_available",
		}).WithError(err).Error("inventory restoration failed, counter diverged from ledger")
	}
}
