package handler

import (
	"errors"
	"net/http"

	"afftrack/internal/attribution"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps pipeline errors to HTTP statuses. Typed attribution
// errors carry code/field/message straight into the response body; anything
// unexpected becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	if ae := attribution.AsError(err); ae != nil {
		status := http.StatusBadRequest
		switch ae.Code {
		case attribution.CodeDuplicateConversion, attribution.CodeInvalidTransition:
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{"error": ae})
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := parseUint(c.Param(name))
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
