package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment records are written once after a successful charge and never
// updated.
type Payment struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email          string             `json:"email" bson:"email"`
	CampName       string             `json:"campName,omitempty" bson:"campName,omitempty"`
	Amount         float64            `json:"amount" bson:"amount"`
	TransactionID  string             `json:"transactionId,omitempty" bson:"transactionId,omitempty"`
	RegistrationID string             `json:"registrationId,omitempty" bson:"registrationId,omitempty"`
	Date           string             `json:"date,omitempty" bson:"date,omitempty"`
}
