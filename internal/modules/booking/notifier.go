package booking

import (
	"fmt"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/mailer"
)

// MailNotifier renders guest notifications onto the async mail queue.
type MailNotifier struct {
	queue *mailer.Queue
}

func NewMailNotifier(queue *mailer.Queue) *MailNotifier {
	return &MailNotifier{queue: queue}
}

func (n *MailNotifier) BookingCreated(b *domain.Booking, roomType *domain.RoomType) {
	n.queue.Enqueue(mailer.Message{
		To:      b.GuestEmail,
		Subject: fmt.Sprintf("Booking %s received", b.TransactionRef),
		Body: fmt.Sprintf(
			"Dear %s,\n\nYour booking for a %s room from %s to %s has been recorded.\nTotal due: %.2f\nReference: %s\n",
			b.GuestName, roomType.DisplayName,
			b.CheckIn.Format(dateLayout), b.CheckOut.Format(dateLayout),
			b.TotalAmount, b.TransactionRef,
		),
	})
}

func (n *MailNotifier) BookingStatusChanged(b *domain.Booking) {
	n.queue.Enqueue(mailer.Message{
		To:      b.GuestEmail,
		Subject: fmt.Sprintf("Booking %s is now %s", b.TransactionRef, b.Status),
		Body: fmt.Sprintf(
			"Dear %s,\n\nYour booking %s has been updated to status: %s.\n",
			b.GuestName, b.TransactionRef, b.Status,
		),
	})
}
