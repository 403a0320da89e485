package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// parseDateField parses an optional request date, falling back when it
// is absent. On a malformed value it writes the error response and
// returns ok=false.
func parseDateField(c *gin.Context, raw *string, fallback time.Time) (time.Time, bool) {
	if raw == nil || *raw == "" {
		return fallback, true
	}

	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		// Try fallback formats
		layouts := []string{"2006-01-02", "2006-01-02 15:04", "2006-01-02 15:04:05"}
		for _, layout := range layouts {
			if t, e := time.Parse(layout, *raw); e == nil {
				return t, true
			}
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use RFC3339 or YYYY-MM-DD"})
		return time.Time{}, false
	}
	return parsed, true
}
