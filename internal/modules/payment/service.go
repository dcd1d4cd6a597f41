package payment

import (
	"context"
	"errors"
	"math"
	"time"

	"hotelops/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Service struct {
	payments PaymentRepository
	bookings BookingReader
	confirm  BookingConfirmer
	gateway  Gateway
	currency string
	log      *logrus.Logger
}

func NewService(
	payments PaymentRepository,
	bookings BookingReader,
	confirm BookingConfirmer,
	gateway Gateway,
	currency string,
	log *logrus.Logger,
) *Service {
	return &Service{
		payments: payments,
		bookings: bookings,
		confirm:  confirm,
		gateway:  gateway,
		currency: currency,
		log:      log,
	}
}

// Initiate creates a gateway authorization for the booking's total under its
// transaction ref. The local payment row is written before the booking is
// touched so a verify or webhook replay always finds its anchor.
func (s *Service) Initiate(ctx context.Context, bookingID int64) (*InitiatePaymentResponse, error) {
	b, err := s.bookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus == domain.PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	authURL, err := s.gateway.Initialize(ctx, b.GuestEmail, b.TransactionRef, s.currency, b.TotalAmount)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"booking_id": b.ID,
			"reference":  b.TransactionRef,
			"operation":  "initiate_payment",
		}).WithError(err).Error("gateway initialize failed")
		return nil, err
	}

	p := &domain.GatewayPayment{
		BookingID:        b.ID,
		Reference:        b.TransactionRef,
		Amount:           b.TotalAmount,
		Currency:         s.currency,
		AuthorizationURL: authURL,
		Status:           domain.GatewayPaymentCreated,
		IdempotencyKey:   uuid.NewString(),
	}
	if err := s.payments.Create(ctx, p); err != nil {
		// A previous initiate already stored the row; reuse is fine, the
		// reference is the identity.
		if existing, gerr := s.payments.GetByReference(ctx, b.TransactionRef); gerr == nil {
			p = existing
			p.AuthorizationURL = authURL
		} else {
			return nil, err
		}
	}

	return &InitiatePaymentResponse{
		Reference:        p.Reference,
		Amount:           p.Amount,
		Currency:         p.Currency,
		AuthorizationURL: authURL,
	}, nil
}

// Verify asks the gateway whether the reference succeeded and, if so, settles
// it. Safe to call any number of times.
func (s *Service) Verify(ctx context.Context, reference string) (*domain.Booking, error) {
	res, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !res.Success {
		_ = s.payments.MarkFailed(ctx, reference)
		return nil, ErrNotSuccessful
	}
	return s.settle(ctx, reference, res.Amount)
}

// HandleWebhook settles an asynchronous charge.success event. It converges
// on exactly the same idempotent path as Verify, so receiving both (or the
// same event twice) leaves one paid booking and one restored counter state.
// Every delivery is appended to the audit log, settled or not.
func (s *Service) HandleWebhook(ctx context.Context, event webhookEvent, raw []byte) (*domain.Booking, error) {
	if err := s.payments.LogWebhookEvent(ctx, event.Data.Reference, event.Event, raw); err != nil {
		s.log.WithField("reference", event.Data.Reference).WithError(err).Warn("webhook audit write failed")
	}

	if event.Event != "charge.success" || event.Data.Status != "success" {
		s.log.WithFields(logrus.Fields{"event": event.Event, "reference": event.Data.Reference}).
			Info("ignoring non-success webhook event")
		return nil, nil
	}
	return s.settle(ctx, event.Data.Reference, fromMinorUnits(event.Data.Amount))
}

func (s *Service) settle(ctx context.Context, reference string, paidAmount float64) (*domain.Booking, error) {
	p, err := s.payments.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	if math.Abs(paidAmount-p.Amount) >= 0.01 {
		s.log.WithFields(logrus.Fields{
			"reference": reference,
			"expected":  p.Amount,
			"received":  paidAmount,
		}).Error("gateway amount mismatch, refusing to settle")
		return nil, ErrAmountMismatch
	}

	changed, err := s.payments.MarkPaidIdempotent(ctx, reference, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !changed {
		s.log.WithField("reference", reference).Info("payment settle replayed, already paid")
	}

	// ApplyPaymentSuccess is itself idempotent; running it on a replay is a
	// read, not a second confirmation.
	return s.confirm.ApplyPaymentSuccess(ctx, reference)
}

func (s *Service) bookingByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}
