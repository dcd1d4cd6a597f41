package bar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hotelops/internal/domain"
	"hotelops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes exposes the bar surface behind the auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bar/drinks", h.CreateDrink)
	rg.GET("/bar/drinks", h.ListDrinks)
	rg.PUT("/bar/drinks/:id", h.UpdateDrink)
	rg.DELETE("/bar/drinks/:id", h.DeactivateDrink)
	rg.POST("/bar/sales", h.RecordSale)
	rg.GET("/bar/sales", h.ListSales)
}

func (h *Handler) CreateDrink(c *gin.Context) {
	var req CreateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.CreateDrink(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Price must be positive and stock non-negative")
		case errors.Is(err, ErrDuplicateDrink):
			response.Error(c, http.StatusConflict, "DUPLICATE_DRINK", "A drink with that name already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create drink")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"drink": d})
}

func (h *Handler) ListDrinks(c *gin.Context) {
	items, err := h.service.ListDrinks(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list drinks")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"drinks": items})
}

func (h *Handler) UpdateDrink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateDrinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	d, err := h.service.UpdateDrink(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Price must be positive and stock non-negative")
		case errors.Is(err, ErrDrinkNotFound):
			response.Error(c, http.StatusNotFound, "DRINK_NOT_FOUND", "Drink not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update drink")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"drink": d})
}

func (h *Handler) DeactivateDrink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeactivateDrink(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrDrinkNotFound) {
			response.Error(c, http.StatusNotFound, "DRINK_NOT_FOUND", "Drink not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to deactivate drink")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) RecordSale(c *gin.Context) {
	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sale, err := h.service.RecordSale(c.Request.Context(), req,
		c.GetInt64("staff_id"), domain.StaffRole(c.GetString("role")))
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quantity must be positive")
		case errors.Is(err, ErrDrinkNotFound):
			response.Error(c, http.StatusNotFound, "DRINK_NOT_FOUND", "Drink not found")
		case errors.Is(err, ErrInsufficientStock):
			response.Error(c, http.StatusBadRequest, "INSUFFICIENT_STOCK", "Not enough stock for this sale")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record sale")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"sale": sale})
}

func (h *Handler) ListSales(c *gin.Context) {
	from, to, ok := parseWindow(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.service.ListSales(c.Request.Context(), from, to, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list sales")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"sales": items})
}

func parseWindow(c *gin.Context) (time.Time, time.Time, bool) {
	var from, to time.Time
	var err error
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse("2006-01-02", v); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be YYYY-MM-DD")
			return from, to, false
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse("2006-01-02", v); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be YYYY-MM-DD")
			return from, to, false
		}
	}
	return from, to, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid drink id")
		return 0, false
	}
	return id, true
}
