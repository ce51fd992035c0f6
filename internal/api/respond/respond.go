package respond

import (
	"errors"
	"log"
	"net/http"

	"github.com/alamin-islam0/artify-server-assignment/internal/apperr"
	"github.com/gin-gonic/gin"
)

// Error maps a store error onto the contractual status codes. Unexpected
// errors never leak detail to the caller; they are logged and answered with
// a generic 500.
func Error(c *gin.Context, err error) {
	switch {
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperr.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
	case errors.Is(err, apperr.ErrLikesExhausted):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No likes to remove"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
