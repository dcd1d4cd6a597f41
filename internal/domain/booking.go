package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingNoShow     BookingStatus = "no_show"
	BookingVoided     BookingStatus = "voided"
)

// roomFreeingStatuses are the statuses under which a booking no longer holds
// a room and must not count against capacity.
var roomFreeingStatuses = map[BookingStatus]bool{
	BookingCheckedOut: true,
	BookingCompleted:  true,
	BookingCancelled:  true,
	BookingNoShow:     true,
	BookingVoided:     true,
}

// IsRoomFreeing reports whether a booking in status s has released its room.
func (s BookingStatus) IsRoomFreeing() bool { return roomFreeingStatuses[s] }

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut,
		BookingCompleted, BookingCancelled, BookingNoShow, BookingVoided:
		return true
	}
	return false
}

// RoomFreeingStatuses returns the freeing set as strings, for query filters.
func RoomFreeingStatuses() []string {
	return []string{
		string(BookingCheckedOut),
		string(BookingCompleted),
		string(BookingCancelled),
		string(BookingNoShow),
		string(BookingVoided),
	}
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

type Booking struct {
	ID             int64         `json:"id"`
	RoomTypeID     string        `json:"room_type_id"`
	GuestName      string        `json:"guest_name"`
	GuestEmail     string        `json:"guest_email"`
	GuestPhone     string        `json:"guest_phone"`
	CheckIn        time.Time     `json:"check_in"`
	CheckOut       time.Time     `json:"check_out"`
	GuestCount     int           `json:"guest_count"`
	Nights         int           `json:"nights"`
	BaseTotal      float64       `json:"base_total"`
	TransactionFee float64       `json:"transaction_fee"`
	TotalAmount    float64       `json:"total_amount"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	CreatedByRole  StaffRole     `json:"created_by_role"`
	TransactionRef string        `json:"transaction_ref"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
