package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	analysis "github.com/ledosportsacademy/club-manager-go/analysis"
	config "github.com/ledosportsacademy/club-manager-go/config"
	models "github.com/ledosportsacademy/club-manager-go/models"
)

// ---------------- ANALYSIS ----------------
// GetAnalysis reads the three collections and returns the financial
// summary. Donations and expenses honor the date range; members do
// not (the fee figures always cover the whole roster, matching the
// numbers the dashboard has always shown).
func GetAnalysis(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		typ := c.Query("type")
		if !analysis.ValidType(typ) {
			c.JSON(http.StatusBadRequest, gin.H{"error": analysis.ErrInvalidType.Error()})
			return
		}

		dateRange, err := analysis.ParseRange(c.Query("startDate"), c.Query("endDate"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		dateFilter := bson.M{}
		if !dateRange.IsZero() {
			dateFilter["date"] = bson.M{"$gte": dateRange.Start, "$lte": dateRange.End}
		}

		db := cfg.MongoClient.Database(cfg.DBName)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var members []models.Member
		cursor, err := db.Collection("members").Find(ctx, bson.M{})
		if err == nil {
			err = cursor.All(ctx, &members)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate analysis"})
			return
		}

		var donations []models.Donation
		cursor, err = db.Collection("donations").Find(ctx, dateFilter)
		if err == nil {
			err = cursor.All(ctx, &donations)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate analysis"})
			return
		}

		var expenses []models.Expense
		cursor, err = db.Collection("expenses").Find(ctx, dateFilter)
		if err == nil {
			err = cursor.All(ctx, &expenses)
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate analysis"})
			return
		}

		c.JSON(http.StatusOK, analysis.Compute(members, donations, expenses, typ))
	}
}
