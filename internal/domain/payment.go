package domain

import "time"

type GatewayPaymentStatus string

const (
	GatewayPaymentCreated GatewayPaymentStatus = "created"
	GatewayPaymentPaid    GatewayPaymentStatus = "paid"
	GatewayPaymentFailed  GatewayPaymentStatus = "failed"
)

// GatewayPayment records one payment initiation against the gateway and its
// reconciliation state. Reference mirrors the booking's transaction ref.
type GatewayPayment struct {
	ID               int64                `json:"id"`
	BookingID        int64                `json:"booking_id"`
	Reference        string               `json:"reference"`
	Amount           float64              `json:"amount"`
	Currency         string               `json:"currency"`
	AuthorizationURL string               `json:"authorization_url,omitempty"`
	Status           GatewayPaymentStatus `json:"status"`
	IdempotencyKey   string               `json:"idempotency_key"`
	PaidAt           *time.Time           `json:"paid_at,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}
