package payment

import (
	"context"
	"time"

	"hotelops/internal/domain"
)

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.GatewayPayment) error
	GetByReference(ctx context.Context, reference string) (*domain.GatewayPayment, error)
	MarkPaidIdempotent(ctx context.Context, reference string, paidAt time.Time) (changed bool, err error)
	MarkFailed(ctx context.Context, reference string) error
	LogWebhookEvent(ctx context.Context, reference, eventType string, payload []byte) error
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByTransactionRef(ctx context.Context, ref string) (*domain.Booking, error)
}

// BookingConfirmer applies the paid/confirmed state to the ledger. The
// booking service implements it; applying twice must be a no-op.
type BookingConfirmer interface {
	ApplyPaymentSuccess(ctx context.Context, transactionRef string) (*domain.Booking, error)
}
