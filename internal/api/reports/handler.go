package reports

import (
	"net/http"

	"github.com/alamin-islam0/artify-server-assignment/internal/api/respond"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// POST /reports
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.Store.Submit(req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// GET /admin/reports
func (h *Handler) ListAll(c *gin.Context) {
	all, err := h.Store.ListAll()
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// DELETE /admin/reports/:id
func (h *Handler) Resolve(c *gin.Context) {
	result, err := h.Store.Resolve(c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
