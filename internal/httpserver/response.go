package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/internal/backend"
	"shopfront/internal/domain"
)

// writeError maps service failures onto HTTP statuses: missing entities
// become 404, field validation failures become 422 with per-field messages,
// backend transport failures become 502, and backend api failures pass their
// status through.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}
	if v, ok := domain.AsValidationErrors(err); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": "validation failed",
			"errors":  v.Fields,
		})
		return
	}
	if be, ok := backend.AsError(err); ok {
		if be.Kind == backend.KindTransport {
			c.JSON(http.StatusBadGateway, gin.H{"message": "billing backend unreachable"})
			return
		}
		c.JSON(be.Status, gin.H{"message": be.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}
