package booking

import "hotelops/internal/domain"

// nominalTransitions is the expected status flow: pending -> confirmed ->
// checked_in -> checked_out -> completed, with cancel/no-show/void as
// administrative branches off any room-holding status. Transitions outside
// this map are not rejected (operators correct mistakes by writing statuses
// directly) but they are logged, and inventory restoration stays
// edge-triggered so off-path writes can never double-free a room.
var nominalTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingPending: {
		domain.BookingConfirmed,
		domain.BookingCancelled, domain.BookingNoShow, domain.BookingVoided,
	},
	domain.BookingConfirmed: {
		domain.BookingCheckedIn,
		domain.BookingCancelled, domain.BookingNoShow, domain.BookingVoided,
	},
	domain.BookingCheckedIn: {
		domain.BookingCheckedOut,
		domain.BookingCancelled, domain.BookingNoShow, domain.BookingVoided,
	},
	domain.BookingCheckedOut: {
		domain.BookingCompleted,
	},
}

func isNominalTransition(from, to domain.BookingStatus) bool {
	for _, next := range nominalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
