package admin

import (
	"net/http"

	"github.com/alamin-islam0/artify-server-assignment/internal/api/respond"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Aggregator *Aggregator
}

func NewHandler(agg *Aggregator) *Handler {
	return &Handler{Aggregator: agg}
}

// GET /admin/stats
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.Aggregator.Stats()
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
