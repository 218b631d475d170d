package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment and confirmation status move independently of each other.
// payment_status only ever advances unpaid -> paid.
const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"

	ConfirmationPending   = "pending"
	ConfirmationConfirmed = "confirmed"
)

// Registration snapshots the camp fields it was created from, so deleting a
// camp leaves existing registrations readable. CampID is the camp's hex id as
// sent by clients.
type Registration struct {
	ID                 primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CampID             string             `json:"campId" bson:"campId"`
	CampName           string             `json:"campName,omitempty" bson:"campName,omitempty"`
	CampFees           float64            `json:"campFees,omitempty" bson:"campFees,omitempty"`
	Location           string             `json:"location,omitempty" bson:"location,omitempty"`
	ParticipantName    string             `json:"participantName,omitempty" bson:"participantName,omitempty"`
	ParticipantEmail   string             `json:"participantEmail" bson:"participantEmail"`
	Age                int                `json:"age,omitempty" bson:"age,omitempty"`
	Phone              string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Gender             string             `json:"gender,omitempty" bson:"gender,omitempty"`
	EmergencyContact   string             `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`
	PaymentStatus      string             `json:"payment_status" bson:"payment_status"`
	ConfirmationStatus string             `json:"confirmation_status" bson:"confirmation_status"`
}
