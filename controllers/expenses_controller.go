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

type expenseInput struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        *string  `json:"date"`
}

// validate reports the first missing or invalid field, if any.
func (in expenseInput) validate() string {
	if in.Description == "" {
		return "description is required"
	}
	if in.Amount == nil {
		return "amount is required"
	}
	if *in.Amount < 0 {
		return "amount must not be negative"
	}
	return ""
}

// ---------------- CREATE ----------------
func CreateExpense(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input expenseInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		now := time.Now()
		date, ok := parseDateField(c, input.Date, now)
		if !ok {
			return
		}

		expense := models.Expense{
			ID:          primitive.NewObjectID(),
			Description: input.Description,
			Amount:      *input.Amount,
			Date:        date,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("expenses")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if _, err := col.InsertOne(ctx, expense); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create expense"})
			return
		}

		c.JSON(http.StatusCreated, expense)
	}
}

// ---------------- LIST ----------------
func ListExpenses(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		col := cfg.MongoClient.Database(cfg.DBName).Collection("expenses")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
		cursor, err := col.Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch expenses"})
			return
		}

		var expenses []models.Expense
		if err := cursor.All(ctx, &expenses); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not decode expenses"})
			return
		}

		if len(expenses) == 0 {
			c.JSON(http.StatusOK, []models.Expense{})
			return
		}

		// --- Pick the most recently updated expense ---
		latest := expenses[0]
		for _, e := range expenses {
			if e.UpdatedAt.After(latest.UpdatedAt) {
				latest = e
			}
		}

		if notModified(c, latest.ID, latest.UpdatedAt) {
			return
		}

		c.JSON(http.StatusOK, expenses)
	}
}

// ---------------- UPDATE ----------------
// Full field replace, per the dashboard's edit form.
func UpdateExpense(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		oid, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid expense id"})
			return
		}

		var input expenseInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		now := time.Now()
		date, ok := parseDateField(c, input.Date, now)
		if !ok {
			return
		}

		update := bson.M{
			"description": input.Description,
			"amount":      *input.Amount,
			"date":        date,
			"updated_at":  now,
		}

		col := cfg.MongoClient.Database(cfg.DBName).Collection("expenses")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update expense"})
			return
		}
		if res.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "expense not found"})
			return
		}

		var updated models.Expense
		if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&updated); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve updated expense"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}
