package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Camp struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	CampName         string             `json:"campName" bson:"campName"`
	CampFees         float64            `json:"campFees" bson:"campFees"`
	Location         string             `json:"location,omitempty" bson:"location,omitempty"`
	ProfessionalName string             `json:"professionalName,omitempty" bson:"professionalName,omitempty"`
	Date             string             `json:"date,omitempty" bson:"date,omitempty"`
	Time             string             `json:"time,omitempty" bson:"time,omitempty"`
	Details          string             `json:"details,omitempty" bson:"details,omitempty"`
	ImageURL         string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	AddedBy          string             `json:"addedBy,omitempty" bson:"addedBy,omitempty"`
}
