package catalog

import (
	"net/http"

	"hotelops/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/room-types", h.ListRoomTypes)
	rg.GET("/room-types/:id", h.GetRoomType)
}

func (h *Handler) ListRoomTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"room_types": h.catalog.List()})
}

func (h *Handler) GetRoomType(c *gin.Context) {
	t, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "ROOM_TYPE_NOT_FOUND", "Unknown room type")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"room_type": t})
}
