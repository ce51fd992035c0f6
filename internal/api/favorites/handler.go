package favorites

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

// POST /favorites
func (h *Handler) Add(c *gin.Context) {
	var req AddInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Store.Add(req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /favorites?email=
func (h *Handler) ListForUser(c *gin.Context) {
	favs, err := h.Store.ListForUser(c.Query("email"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, favs)
}

// DELETE /favorites/:id
func (h *Handler) Remove(c *gin.Context) {
	result, err := h.Store.Remove(c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
