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
func CreateExperience(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     string  `form:"name" json:"name"`
			Message  string  `form:"message" json:"message"`
			ImageURL string  `form:"imageUrl" json:"imageUrl"`
			Date     *string `form:"date" json:"date"`
		}
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if input.Message == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
			return
		}

		now := time.Now()
		date, ok := parseDateField(c, input.Date, now)
		if !ok {
			return
		}

		imageURL, ok := uploadedImageURL(c, cfg, "experiences", input.ImageURL)
		if !ok {
			return
		}

		experience := models.Experience{
			ID:        primitive.NewObjectID(),
			Name:      input.Name,
			Message:   input.Message,
			ImageURL:  imageURL,
			Date:      date,
			CreatedAt: now,
			UpdatedAt: now,
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("experiences")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, experience); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create experience"})
			return
		}

		c.JSON(http.StatusCreated, experience)
	}
}

// ---------------- LIST ----------------
func ListExperiences(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection("experiences")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch experiences"})
			return
		}

		var experiences []models.Experience
		if err := cursor.All(ctx, &experiences); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode experiences"})
			return
		}

		if len(experiences) == 0 {
			c.JSON(http.StatusOK, []models.Experience{})
			return
		}

		// --- Pick the most recently updated experience ---
		latest := experiences[0]
		for _, e := range experiences {
			if e.UpdatedAt.After(latest.UpdatedAt) {
				latest = e
			}
		}

		if notModified(c, latest.ID, latest.UpdatedAt) {
			return
		}

		c.JSON(http.StatusOK, experiences)
	}
}
