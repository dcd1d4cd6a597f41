package repository

import (
	"context"
	"time"

	"hotelops/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

type gatewayPaymentModel struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	BookingID        int64      `gorm:"column:booking_id;index"`
	Reference        string     `gorm:"column:reference;uniqueIndex"`
	Amount           float64    `gorm:"column:amount"`
	Currency         string     `gorm:"column:currency"`
	AuthorizationURL string     `gorm:"column:authorization_url"`
	Status           string     `gorm:"column:status"`
	IdempotencyKey   string     `gorm:"column:idempotency_key"`
	PaidAt           *time.Time `gorm:"column:paid_at"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (gatewayPaymentModel) TableName() string { return "gateway_payments" }

// webhookEventModel is the audit log of raw gateway deliveries, kept verbatim
// so disputes can be reconciled against what the gateway actually sent.
type webhookEventModel struct {
	ID        int64          `gorm:"column:id;primaryKey"`
	Reference string         `gorm:"column:reference;index"`
	EventType string         `gorm:"column:event_type"`
	Payload   datatypes.JSON `gorm:"column:payload"`
	CreatedAt time.Time      `gorm:"column:created_at"`
}

func (webhookEventModel) TableName() string { return "webhook_events" }

func toDomainPayment(m gatewayPaymentModel) *domain.GatewayPayment {
	return &domain.GatewayPayment{
		ID:               m.ID,
		BookingID:        m.BookingID,
		Reference:        m.Reference,
		Amount:           m.Amount,
		Currency:         m.Currency,
		AuthorizationURL: m.AuthorizationURL,
		Status:           domain.GatewayPaymentStatus(m.Status),
		IdempotencyKey:   m.IdempotencyKey,
		PaidAt:           m.PaidAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.GatewayPayment) error {
	m := gatewayPaymentModel{
		BookingID:        p.BookingID,
		Reference:        p.Reference,
		Amount:           p.Amount,
		Currency:         p.Currency,
		AuthorizationURL: p.AuthorizationURL,
		Status:           string(p.Status),
		IdempotencyKey:   p.IdempotencyKey,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayment(m)
	return nil
}

func (r *PaymentRepository) GetByReference(ctx context.Context, reference string) (*domain.GatewayPayment, error) {
	var m gatewayPaymentModel
	tx := r.db.WithContext(ctx).Where("reference = ?", reference).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPayment(m), nil
}

// MarkPaidIdempotent flips the payment to paid exactly once. Replays match
// zero rows and report changed=false.
func (r *PaymentRepository) MarkPaidIdempotent(ctx context.Context, reference string, paidAt time.Time) (changed bool, err error) {
	tx := r.db.WithContext(ctx).
		Model(&gatewayPaymentModel{}).
		Where("reference = ? AND status <> ?", reference, string(domain.GatewayPaymentPaid)).
		Updates(map[string]any{
			"status":     string(domain.GatewayPaymentPaid),
			"paid_at":    paidAt,
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// LogWebhookEvent appends the delivery to the audit table.
func (r *PaymentRepository) LogWebhookEvent(ctx context.Context, reference, eventType string, payload []byte) error {
	m := webhookEventModel{
		Reference: reference,
		EventType: eventType,
		Payload:   datatypes.JSON(payload),
	}
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, reference string) error {
	tx := r.db.WithContext(ctx).
		Model(&gatewayPaymentModel{}).
		Where("reference = ? AND status = ?", reference, string(domain.GatewayPaymentCreated)).
		Updates(map[string]any{"status": string(domain.GatewayPaymentFailed), "updated_at": time.Now().UTC()})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
