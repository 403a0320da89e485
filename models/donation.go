package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Donation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DonorName string             `bson:"donorName" json:"donorName"`
	Amount    *float64           `bson:"amount,omitempty" json:"amount,omitempty"` // optional, in-kind donations carry items only
	Items     string             `bson:"items" json:"items"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
