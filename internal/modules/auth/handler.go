package auth

import (
	"errors"
	"net/http"
	"strconv"

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/login", h.Login)
}

// RegisterAdminRoutes exposes staff management, superadmin only.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	staff := rg.Group("/staff")
	{
		staff.POST("", h.CreateStaff)
		staff.GET("", h.ListStaff)
		staff.PUT("/:id/role", h.UpdateStaffRole)
		staff.DELETE("/:id", h.DeactivateStaff)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email and password are required")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
		case errors.Is(err, ErrAccountDisabled):
			response.Error(c, http.StatusForbidden, "ACCOUNT_DISABLED", "Account is disabled")
		case errors.Is(err, ErrTwoFARequired):
			response.Error(c, http.StatusUnauthorized, "TWO_FA_REQUIRED", "Two-factor code required")
		case errors.Is(err, ErrTwoFAInvalid):
			response.Error(c, http.StatusUnauthorized, "TWO_FA_INVALID", "Invalid two-factor code")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": result.AccessToken,
		"staff": result.Staff,
	})
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	member, err := h.service.CreateStaff(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Unknown staff role")
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusBadRequest, "EMAIL_TAKEN", "Email already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create staff member")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"staff": member})
}

func (h *Handler) ListStaff(c *gin.Context) {
	members, err := h.service.ListStaff(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list staff")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": members})
}

func (h *Handler) UpdateStaffRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid staff id")
		return
	}

	var req UpdateStaffRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	member, err := h.service.UpdateStaffRole(c.Request.Context(), id, domain.StaffRole(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Unknown staff role")
		case errors.Is(err, ErrStaffNotFound):
			response.Error(c, http.StatusNotFound, "STAFF_NOT_FOUND", "Staff member not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update staff role")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"staff": member})
}

func (h *Handler) DeactivateStaff(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid staff id")
		return
	}

	if err := h.service.DeactivateStaff(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrStaffNotFound) {
			response.Error(c, http.StatusNotFound, "STAFF_NOT_FOUND", "Staff member not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to deactivate staff member")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}
