package users

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

// POST /users/sync
func (h *Handler) Sync(c *gin.Context) {
	var req SyncInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Store.SyncOnLogin(req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /admin/users
func (h *Handler) ListAll(c *gin.Context) {
	users, err := h.Store.ListAll()
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /users/admin/:email
func (h *Handler) CheckAdmin(c *gin.Context) {
	isAdmin, err := h.Store.IsAdmin(c.Param("email"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

// PATCH /admin/users/:id/role
func (h *Handler) SetRole(c *gin.Context) {
	var req struct {
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.Store.SetRole(c.Param("id"), req.Role)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DELETE /admin/users/:id
func (h *Handler) Delete(c *gin.Context) {
	result, err := h.Store.Delete(c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
