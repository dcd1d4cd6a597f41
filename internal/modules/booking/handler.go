package booking

import (
	"errors"
	"net/http"
	"strconv"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/response"
	"hotelops/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the unauthenticated customer flow.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings/public", h.CreatePublicBooking)
}

// RegisterRoutes exposes the staff surface behind the auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.PUT("/bookings/:id", h.UpdateStatus)
	rg.DELETE("/bookings/:id", h.DeleteBooking)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	h.create(c, domain.StaffRole(c.GetString("role")))
}

func (h *Handler) CreatePublicBooking(c *gin.Context) {
	h.create(c, domain.RoleClient)
}

func (h *Handler) create(c *gin.Context, actorRole domain.StaffRole) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrs := validator.Validate(&req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Invalid booking fields", fieldErrs)
		return
	}

	b, quote, err := h.service.CreateBooking(c.Request.Context(), req, actorRole)
	if err != nil {
		var capErr *CapacityError
		switch {
		case errors.As(err, &capErr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "NO_ROOMS_AVAILABLE",
				"No rooms available for the selected dates", capErr.Result)
		case errors.Is(err, ErrInvalidDateRange):
			response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-out must be after check-in")
		case errors.Is(err, ErrUnknownRoomType):
			response.Error(c, http.StatusBadRequest, "UNKNOWN_ROOM_TYPE", "Unknown room type")
		case errors.Is(err, ErrRoomTypeNotFound):
			response.Error(c, http.StatusBadRequest, "ROOM_TYPE_NOT_FOUND", "No active inventory for room type")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid booking fields")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"booking":         b,
		"base_total":      quote.BaseTotal,
		"transaction_fee": quote.TransactionFee,
		"total_amount":    quote.TotalAmount,
	})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) ListBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.service.ListBookings(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown booking status filter")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": items})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Transition(c.Request.Context(), id,
		domain.BookingStatus(req.Status), domain.StaffRole(c.GetString("role")))
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown booking status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update booking")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.service.DeleteBooking(c.Request.Context(), id, domain.StaffRole(c.GetString("role")))
	if err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only a superadmin may delete bookings")
		case errors.Is(err, ErrBookingNotFound):
			response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
		case errors.Is(err, ErrCannotDeleteFreed):
			response.Error(c, http.StatusBadRequest, "CANNOT_DELETE_FREED_BOOKING",
				"Booking already freed its room; transition it instead of deleting")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete booking")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking id")
		return 0, false
	}
	return id, true
}
