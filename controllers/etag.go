package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	utils "github.com/ledosportsacademy/club-manager-go/utils"
)

// notModified implements the conditional GET on list responses: the
// tag derives from the most recently updated record. A matching
// If-None-Match short-circuits with 304 and returns true; otherwise
// the ETag and Last-Modified headers are set for the full response.
func notModified(c *gin.Context, id primitive.ObjectID, updatedAt time.Time) bool {
	etag := utils.GenerateETag(id, updatedAt)
	if match := c.GetHeader("If-None-Match"); match != "" && match == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	c.Header("ETag", etag)
	c.Header("Last-Modified", updatedAt.UTC().Format(http.TimeFormat))
	return false
}
