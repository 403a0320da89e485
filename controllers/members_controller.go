package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	config "github.com/ledosportsacademy/club-manager-go/config"
	models "github.com/ledosportsacademy/club-manager-go/models"
)

// ---------------- CREATE ----------------
func CreateMember(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name     string `form:"name" json:"name"`
			Mobile   string `form:"mobile" json:"mobile"`
			ImageURL string `form:"imageUrl" json:"imageUrl"`
		}
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if input.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if input.Mobile == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "mobile is required"})
			return
		}

		imageURL, ok := uploadedImageURL(c, cfg, "members", input.ImageURL)
		if !ok {
			return
		}

		now := time.Now()
		member := models.Member{
			ID:               primitive.NewObjectID(),
			Name:             input.Name,
			Mobile:           input.Mobile,
			ImageURL:         imageURL,
			HasPaidWeeklyFee: false,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("members")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, member); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create member"})
			return
		}

		c.JSON(http.StatusCreated, member)
	}
}

// ---------------- LIST ----------------
func ListMembers(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection("members")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		cursor, err := col.Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch members"})
			return
		}

		var members []models.Member
		if err := cursor.All(ctx, &members); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode members"})
			return
		}

		if len(members) == 0 {
			c.JSON(http.StatusOK, []models.Member{})
			return
		}

		// --- Pick the most recently updated member ---
		latest := members[0]
		for _, m := range members {
			if m.UpdatedAt.After(latest.UpdatedAt) {
				latest = m
			}
		}

		if notModified(c, latest.ID, latest.UpdatedAt) {
			return
		}

		c.JSON(http.StatusOK, members)
	}
}

// feeStatusUpdate holds the PATCH body for the weekly fee toggle.
type feeStatusUpdate struct {
	HasPaidWeeklyFee bool       `json:"hasPaidWeeklyFee"`
	LastPaymentDate  *time.Time `json:"lastPaymentDate"`
}

// buildFeeStatusUpdate maps the toggle onto a $set document. Marking a
// member unpaid always clears the payment date; marking paid without
// an explicit date stamps now.
func buildFeeStatusUpdate(input feeStatusUpdate, now time.Time) bson.M {
	set := bson.M{
		"hasPaidWeeklyFee": input.HasPaidWeeklyFee,
		"updated_at":       now,
	}
	switch {
	case !input.HasPaidWeeklyFee:
		set["lastPaymentDate"] = nil
	case input.LastPaymentDate != nil:
		set["lastPaymentDate"] = *input.LastPaymentDate
	default:
		set["lastPaymentDate"] = now
	}
	return set
}

// ---------------- UPDATE FEE STATUS ----------------
func UpdateMemberFeeStatus(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
			return
		}

		var input feeStatusUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("members")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// last write wins on concurrent toggles, acceptable at this scale
		res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": buildFeeStatusUpdate(input, time.Now())})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update member"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}

		var updated models.Member
		if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve updated member"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}
