package analytics

import (
	"net/http"
	"time"

	"hotelops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/summary", h.Summary)
}

// Summary serves the dashboard rollup. The window defaults to the trailing
// 30 days when from/to are omitted.
func (h *Handler) Summary(c *gin.Context) {
	now := time.Now().UTC().Truncate(24 * time.Hour)
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 1)

	var err error
	if v := c.Query("from"); v != "" {
		if from, err = time.Parse(dateLayout, v); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "from must be YYYY-MM-DD")
			return
		}
	}
	if v := c.Query("to"); v != "" {
		if to, err = time.Parse(dateLayout, v); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "to must be YYYY-MM-DD")
			return
		}
	}
	if !to.After(from) {
		response.Error(c, http.StatusBadRequest, "INVALID_DATE_RANGE", "to must be after from")
		return
	}

	summary, err := h.service.Summarize(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build summary")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}
