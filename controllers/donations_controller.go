package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	config "github.com/ledosportsacademy/club-manager-go/config"
	models "github.com/ledosportsacademy/club-manager-go/models"
)

// ---------------- CREATE ----------------
func CreateDonation(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			DonorName string   `json:"donorName"`
			Amount    *float64 `json:"amount"`
			Items     string   `json:"items"`
			Date      *string  `json:"date"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.DonorName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "donorName is required"})
			return
		}
		if input.Items == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "items is required"})
			return
		}
		if input.Amount != nil && *input.Amount < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must not be negative"})
			return
		}

		now := time.Now()
		date, ok := parseDateField(c, input.Date, now)
		if !ok {
			return
		}

		donation := models.Donation{
			ID:        primitive.NewObjectID(),
			DonorName: input.DonorName,
			Amount:    input.Amount,
			Items:     input.Items,
			Date:      date,
			CreatedAt: now,
			UpdatedAt: now,
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("donations")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, donation); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create donation"})
			return
		}

		c.JSON(http.StatusCreated, donation)
	}
}

// ---------------- LIST ----------------
func ListDonations(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection("donations")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch donations"})
			return
		}

		var donations []models.Donation
		if err := cursor.All(ctx, &donations); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode donations"})
			return
		}

		if len(donations) == 0 {
			c.JSON(http.StatusOK, []models.Donation{})
			return
		}

		// --- Pick the most recently updated donation ---
		latest := donations[0]
		for _, d := range donations {
			if d.UpdatedAt.After(latest.UpdatedAt) {
				latest = d
			}
		}

		if notModified(c, latest.ID, latest.UpdatedAt) {
			return
		}

		c.JSON(http.StatusOK, donations)
	}
}
