package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Member struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Mobile           string             `bson:"mobile" json:"mobile"`
	ImageURL         string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	HasPaidWeeklyFee bool               `bson:"hasPaidWeeklyFee" json:"hasPaidWeeklyFee"`
	LastPaymentDate  *time.Time         `bson:"lastPaymentDate,omitempty" json:"lastPaymentDate,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}
