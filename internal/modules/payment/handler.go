package payment

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"

	"hotelops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service       *Service
	webhookSecret string
}

// NewHandler wires the payment routes. webhookSecret is the gateway secret key
// used to authenticate webhook deliveries; empty disables the check (dev only).
func NewHandler(service *Service, webhookSecret string) *Handler {
	return &Handler{service: service, webhookSecret: webhookSecret}
}

// RegisterPublicRoutes: verify is hit by the guest's redirect page and the
// webhook by the gateway itself, so neither carries a staff token.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments/verify/:reference", h.Verify)
	rg.POST("/payments/webhook", h.Webhook)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/initiate", h.Initiate)
}

func (h *Handler) Initiate(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	out, err := h.service.Initiate(c.Request.Context(), req.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrAlreadyPaid):
			response.Error(c, http.StatusBadRequest, "ALREADY_PAID", "Booking is already paid")
		case errors.Is(err, ErrGateway):
			response.Error(c, http.StatusBadGateway, "GATEWAY_ERROR", "Payment gateway unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to initiate payment")
		}
		return
	}
	response.Success(c, http.StatusOK, out)
}

func (h *Handler) Verify(c *gin.Context) {
	b, err := h.service.Verify(c.Request.Context(), c.Param("reference"))
	if err != nil {
		switch {
		case errors.Is(err, ErrPaymentNotFound), errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "PAYMENT_NOT_FOUND", "Unknown payment reference")
		case errors.Is(err, ErrNotSuccessful):
			response.Error(c, http.StatusBadRequest, "PAYMENT_NOT_SUCCESSFUL", "Payment was not successful")
		case errors.Is(err, ErrAmountMismatch):
			response.Error(c, http.StatusBadRequest, "AMOUNT_MISMATCH", "Paid amount does not match booking total")
		case errors.Is(err, ErrGateway):
			response.Error(c, http.StatusBadGateway, "GATEWAY_ERROR", "Payment gateway unavailable")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify payment")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Webhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid webhook payload")
		return
	}
	if h.webhookSecret != "" && !validSignature(body, c.GetHeader("x-paystack-signature"), h.webhookSecret) {
		response.Error(c, http.StatusUnauthorized, "INVALID_SIGNATURE", "Webhook signature verification failed")
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid webhook payload")
		return
	}

	// The gateway retries on anything but 200, so settle errors other than
	// store failures are acknowledged and logged rather than bounced.
	b, err := h.service.HandleWebhook(c.Request.Context(), event, body)
	if err != nil && !errors.Is(err, ErrPaymentNotFound) &&
		!errors.Is(err, ErrAmountMismatch) && !errors.Is(err, ErrBookingNotFound) {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to process webhook")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"processed": b != nil})
}

// validSignature checks the HMAC-SHA512 hex digest the gateway sends with
// every delivery.
func validSignature(body []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
