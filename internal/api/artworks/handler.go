package artworks

import (
	"net/http"
	"strconv"

	"github.com/alamin-islam0/artify-server-assignment/internal/api/respond"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 8

type Handler struct {
	Store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{Store: store}
}

// POST /artworks
func (h *Handler) Create(c *gin.Context) {
	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	art, err := h.Store.Create(req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, art)
}

// GET /artworks
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))

	result, err := h.Store.List(ListParams{
		Page:        page,
		Limit:       limit,
		Category:    c.Query("category"),
		AuthorEmail: c.Query("email"),
		Search:      c.Query("search"),
		Sort:        c.Query("sort"),
	})
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /artworks/featured
func (h *Handler) Featured(c *gin.Context) {
	arts, err := h.Store.Featured()
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, arts)
}

// GET /artworks/author/:email
func (h *Handler) ByAuthor(c *gin.Context) {
	arts, err := h.Store.ByAuthor(c.Param("email"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, arts)
}

// GET /artworks/:id
func (h *Handler) GetByID(c *gin.Context) {
	art, artist, err := h.Store.GetByID(c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"art": art, "artist": artist})
}

// PATCH /artworks/:id
func (h *Handler) Update(c *gin.Context) {
	var req UpdateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	art, err := h.Store.Update(c.Param("id"), req)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, art)
}

// PATCH /artworks/:id/like
func (h *Handler) Like(c *gin.Context) {
	likes, err := h.Store.Like(c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// PATCH /artworks/:id/unlike
func (h *Handler) Unlike(c *gin.Context) {
	likes, err := h.Store.Unlike(c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// DELETE /artworks/:id
func (h *Handler) Delete(c *gin.Context) {
	result, err := h.Store.Delete(c.Param("id"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
