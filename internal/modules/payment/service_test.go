package payment

import (
	"context"
	"io"
	"testing"
	"time"

	"hotelops/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mocks
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *domain.GatewayPayment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByReference(ctx context.Context, reference string) (*domain.GatewayPayment, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GatewayPayment), args.Error(1)
}

func (m *MockPaymentRepository) MarkPaidIdempotent(ctx context.Context, reference string, paidAt time.Time) (bool, error) {
	args := m.Called(ctx, reference, paidAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) MarkFailed(ctx context.Context, reference string) error {
	args := m.Called(ctx, reference)
	return args.Error(0)
}

func (m *MockPaymentRepository) LogWebhookEvent(ctx context.Context, reference, eventType string, payload []byte) error {
	args := m.Called(ctx, reference, eventType, payload)
	return args.Error(0)
}

type MockBookingReader struct {
	mock.Mock
}

func (m *MockBookingReader) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingReader) GetByTransactionRef(ctx context.Context, ref string) (*domain.Booking, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) ApplyPaymentSuccess(ctx context.Context, transactionRef string) (*domain.Booking, error) {
	args := m.Called(ctx, transactionRef)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Initialize(ctx context.Context, email, reference, currency string, amount float64) (string, error) {
	args := m.Called(ctx, email, reference, currency, amount)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) Verify(ctx context.Context, reference string) (*VerifyResult, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*VerifyResult), args.Error(1)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(payments *MockPaymentRepository, bookings *MockBookingReader, confirm *MockConfirmer, gw *MockGateway) *Service {
	return NewService(payments, bookings, confirm, gw, "NGN", testLogger())
}

func TestInitiate_CreatesGatewayPayment(t *testing.T) {
	payments := new(MockPaymentRepository)
	bookings := new(MockBookingReader)
	gw := new(MockGateway)
	svc := newTestService(payments, bookings, new(MockConfirmer), gw)

	b := &domain.Booking{
		ID:             7,
		GuestEmail:     "ada@example.com",
		TotalAmount:    50796,
		TransactionRef: "BK-1700000000000",
		PaymentStatus:  domain.PaymentPending,
	}
	bookings.On("GetByID", mock.Anything, int64(7)).Return(b, nil)
	gw.On("Initialize", mock.Anything, "ada@example.com", "BK-1700000000000", "NGN", 50796.0).
		Return("https://gateway.test/pay/abc", nil)
	payments.On("Create", mock.Anything, mock.Anything).Return(nil)

	res, err := svc.Initiate(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, "BK-1700000000000", res.Reference)
	assert.Equal(t, 50796.0, res.Amount)
	assert.Equal(t, "NGN", res.Currency)
	assert.Equal(t, "https://gateway.test/pay/abc", res.AuthorizationURL)
	payments.AssertExpectations(t)
}

func TestInitiate_PaidBookingRejected(t *testing.T) {
	bookings := new(MockBookingReader)
	svc := newTestService(new(MockPaymentRepository), bookings, new(MockConfirmer), new(MockGateway))

	b := &domain.Booking{ID: 7, PaymentStatus: domain.PaymentPaid}
	bookings.On("GetByID", mock.Anything, int64(7)).Return(b, nil)

	_, err := svc.Initiate(context.Background(), 7)

	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestVerify_SuccessSettles(t *testing.T) {
	payments := new(MockPaymentRepository)
	confirm := new(MockConfirmer)
	gw := new(MockGateway)
	svc := newTestService(payments, new(MockBookingReader), confirm, gw)

	gw.On("Verify", mock.Anything, "BK-1").Return(&VerifyResult{Success: true, Amount: 50796}, nil)
	payments.On("GetByReference", mock.Anything, "BK-1").
		Return(&domain.GatewayPayment{Reference: "BK-1", Amount: 50796}, nil)
	payments.On("MarkPaidIdempotent", mock.Anything, "BK-1", mock.Anything).Return(true, nil)
	confirm.On("ApplyPaymentSuccess", mock.Anything, "BK-1").
		Return(&domain.Booking{ID: 7, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPaid}, nil)

	b, err := svc.Verify(context.Background(), "BK-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
}

func TestVerify_FailureMarksFailed(t *testing.T) {
	payments := new(MockPaymentRepository)
	gw := new(MockGateway)
	svc := newTestService(payments, new(MockBookingReader), new(MockConfirmer), gw)

	gw.On("Verify", mock.Anything, "BK-1").Return(&VerifyResult{Success: false}, nil)
	payments.On("MarkFailed", mock.Anything, "BK-1").Return(nil)

	_, err := svc.Verify(context.Background(), "BK-1")

	assert.ErrorIs(t, err, ErrNotSuccessful)
	payments.AssertCalled(t, "MarkFailed", mock.Anything, "BK-1")
}

func TestSettle_AmountMismatchRefused(t *testing.T) {
	payments := new(MockPaymentRepository)
	confirm := new(MockConfirmer)
	gw := new(MockGateway)
	svc := newTestService(payments, new(MockBookingReader), confirm, gw)

	gw.On("Verify", mock.Anything, "BK-1").Return(&VerifyResult{Success: true, Amount: 100}, nil)
	payments.On("GetByReference", mock.Anything, "BK-1").
		Return(&domain.GatewayPayment{Reference: "BK-1", Amount: 50796}, nil)

	_, err := svc.Verify(context.Background(), "BK-1")

	assert.ErrorIs(t, err, ErrAmountMismatch)
	confirm.AssertNotCalled(t, "ApplyPaymentSuccess", mock.Anything, mock.Anything)
}

func TestSettle_ReplayConvergesWithoutSecondConfirm(t *testing.T) {
	payments := new(MockPaymentRepository)
	confirm := new(MockConfirmer)
	gw := new(MockGateway)
	svc := newTestService(payments, new(MockBookingReader), confirm, gw)

	gw.On("Verify", mock.Anything, "BK-1").Return(&VerifyResult{Success: true, Amount: 50796}, nil)
	payments.On("GetByReference", mock.Anything, "BK-1").
		Return(&domain.GatewayPayment{Reference: "BK-1", Amount: 50796}, nil)
	payments.On("MarkPaidIdempotent", mock.Anything, "BK-1", mock.Anything).Return(false, nil)
	confirm.On("ApplyPaymentSuccess", mock.Anything, "BK-1").
		Return(&domain.Booking{ID: 7, PaymentStatus: domain.PaymentPaid}, nil)

	b, err := svc.Verify(context.Background(), "BK-1")

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
}

func TestHandleWebhook_NonSuccessEventIgnored(t *testing.T) {
	payments := new(MockPaymentRepository)
	svc := newTestService(payments, new(MockBookingReader), new(MockConfirmer), new(MockGateway))

	var event webhookEvent
	event.Event = "charge.failed"
	event.Data.Reference = "BK-1"

	payments.On("LogWebhookEvent", mock.Anything, "BK-1", "charge.failed", mock.Anything).Return(nil)

	b, err := svc.HandleWebhook(context.Background(), event, []byte(`{"event":"charge.failed"}`))

	assert.NoError(t, err)
	assert.Nil(t, b)
	payments.AssertNotCalled(t, "GetByReference", mock.Anything, mock.Anything)
}

func TestHandleWebhook_SuccessSettlesFromMinorUnits(t *testing.T) {
	payments := new(MockPaymentRepository)
	confirm := new(MockConfirmer)
	svc := newTestService(payments, new(MockBookingReader), confirm, new(MockGateway))

	var event webhookEvent
	event.Event = "charge.success"
	event.Data.Reference = "BK-1"
	event.Data.Status = "success"
	event.Data.Amount = 5079600 // kobo

	payments.On("LogWebhookEvent", mock.Anything, "BK-1", "charge.success", mock.Anything).Return(nil)
	payments.On("GetByReference", mock.Anything, "BK-1").
		Return(&domain.GatewayPayment{Reference: "BK-1", Amount: 50796}, nil)
	payments.On("MarkPaidIdempotent", mock.Anything, "BK-1", mock.Anything).Return(true, nil)
	confirm.On("ApplyPaymentSuccess", mock.Anything, "BK-1").
		Return(&domain.Booking{ID: 7, PaymentStatus: domain.PaymentPaid}, nil)

	b, err := svc.HandleWebhook(context.Background(), event, []byte(`{"event":"charge.success"}`))

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, b.PaymentStatus)
}
