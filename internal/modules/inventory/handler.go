package inventory

import (
	"errors"
	"net/http"

	bookingmod "hotelops/internal/modules/booking"
	"hotelops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service      *Service
	availability AvailabilityChecker
}

func NewHandler(service *Service, availability AvailabilityChecker) *Handler {
	return &Handler{service: service, availability: availability}
}

// RegisterPublicRoutes exposes the availability probe used by the booking
// widget before a guest commits.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/room-inventory/check-availability", h.CheckAvailability)
}

// RegisterAdminRoutes exposes inventory mutation, superadmin only.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/room-inventory", h.Create)
	rg.GET("/room-inventory", h.List)
	rg.GET("/room-inventory/:roomTypeId", h.Get)
	rg.PUT("/room-inventory/:roomTypeId", h.Update)
	rg.DELETE("/room-inventory/:roomTypeId", h.Deactivate)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	roomTypeID := c.Query("roomTypeId")
	checkIn, checkOut, err := bookingmod.ParseStayDates(c.Query("checkIn"), c.Query("checkOut"))
	if roomTypeID == "" || err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"roomTypeId, checkIn and checkOut (YYYY-MM-DD) are required")
		return
	}

	result, err := h.availability.CheckAvailability(c.Request.Context(), roomTypeID, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, bookingmod.ErrInvalidDateRange):
			response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "Check-out must be after check-in")
		case errors.Is(err, bookingmod.ErrRoomTypeNotFound):
			response.Error(c, http.StatusNotFound, "ROOM_TYPE_NOT_FOUND", "No active inventory for room type")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Availability check failed")
		}
		return
	}
	response.Success(c, http.StatusOK, result)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rec, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownRoomType):
			response.Error(c, http.StatusBadRequest, "UNKNOWN_ROOM_TYPE", "Unknown room type")
		case errors.Is(err, ErrDuplicateInventory):
			response.Error(c, http.StatusBadRequest, "DUPLICATE_INVENTORY", "Inventory already exists for room type")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid inventory values")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create inventory")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"inventory": rec})
}

func (h *Handler) Get(c *gin.Context) {
	rec, err := h.service.Get(c.Request.Context(), c.Param("roomTypeId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "INVENTORY_NOT_FOUND", "Inventory record not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load inventory")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inventory": rec})
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list inventory")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inventory": rows})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rec, err := h.service.Update(c.Request.Context(), c.Param("roomTypeId"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "INVENTORY_NOT_FOUND", "Inventory record not found")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid inventory values")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update inventory")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"inventory": rec})
}

func (h *Handler) Deactivate(c *gin.Context) {
	if err := h.service.Deactivate(c.Request.Context(), c.Param("roomTypeId")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "INVENTORY_NOT_FOUND", "Inventory record not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to deactivate inventory")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}
