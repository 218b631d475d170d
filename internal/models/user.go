package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name,omitempty" bson:"name,omitempty"`
	Email    string             `json:"email" bson:"email"`
	PhotoURL string             `json:"photoURL,omitempty" bson:"photoURL,omitempty"`
	Role     string             `json:"role,omitempty" bson:"role,omitempty"`
}
