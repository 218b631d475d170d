package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campdoc/campdoc-api/internal/database"
	"github.com/campdoc/campdoc-api/internal/models"
)

type CampHandler struct {
	store *database.Store
}

func NewCampHandler(store *database.Store) *CampHandler {
	return &CampHandler{store: store}
}

// CampFields are the mutable parts of a camp document, shared between the
// create and update bodies. The id and addedBy are never replaced by an
// update.
type CampFields struct {
	CampName         string  `json:"campName" doc:"Camp title"`
	CampFees         float64 `json:"campFees" doc:"Participation fee in major units"`
	Location         string  `json:"location,omitempty"`
	ProfessionalName string  `json:"professionalName,omitempty" doc:"Attending healthcare professional"`
	Date             string  `json:"date,omitempty"`
	Time             string  `json:"time,omitempty"`
	Details          string  `json:"details,omitempty"`
	ImageURL         string  `json:"image_url,omitempty"`
}

type CreateCampInput struct {
	Body struct {
		CampFields
		AddedBy string `json:"addedBy,omitempty" doc:"Email of the organizing admin"`
	}
}

type InsertOutput struct {
	Body *database.InsertResult
}

func (h *CampHandler) HandleCreate(ctx context.Context, input *CreateCampInput) (*InsertOutput, error) {
	result, err := h.store.Camps.InsertOne(ctx, models.Camp{
		CampName:         input.Body.CampName,
		CampFees:         input.Body.CampFees,
		Location:         input.Body.Location,
		ProfessionalName: input.Body.ProfessionalName,
		Date:             input.Body.Date,
		Time:             input.Body.Time,
		Details:          input.Body.Details,
		ImageURL:         input.Body.ImageURL,
		AddedBy:          input.Body.AddedBy,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to create camp: " + err.Error())
	}
	return &InsertOutput{Body: result}, nil
}

type ListCampsOutput struct {
	Body []models.Camp
}

func (h *CampHandler) HandleAvailable(ctx context.Context, _ *struct{}) (*ListCampsOutput, error) {
	camps := []models.Camp{}
	if err := h.store.Camps.Find(ctx, bson.M{}, &camps); err != nil {
		return nil, huma.Error500InternalServerError("Failed to list camps: " + err.Error())
	}
	return &ListCampsOutput{Body: camps}, nil
}

type ManageCampsInput struct {
	AddedBy string `query:"addedBy" doc:"Organizer email to filter by"`
}

func (h *CampHandler) HandleManage(ctx context.Context, input *ManageCampsInput) (*ListCampsOutput, error) {
	camps := []models.Camp{}
	if err := h.store.Camps.Find(ctx, bson.M{"addedBy": input.AddedBy}, &camps); err != nil {
		return nil, huma.Error500InternalServerError("Failed to list camps: " + err.Error())
	}
	return &ListCampsOutput{Body: camps}, nil
}

type CampIDInput struct {
	ID string `path:"id" doc:"Camp document id"`
}

type GetCampOutput struct {
	Body *models.Camp
}

// HandleGet returns the camp, or a null body when the id matches nothing.
func (h *CampHandler) HandleGet(ctx context.Context, input *CampIDInput) (*GetCampOutput, error) {
	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid camp id")
	}

	var camp models.Camp
	err = h.store.Camps.FindOne(ctx, bson.M{"_id": id}, &camp)
	if err == database.ErrNotFound {
		return &GetCampOutput{}, nil
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load camp: " + err.Error())
	}
	return &GetCampOutput{Body: &camp}, nil
}

type UpdateCampInput struct {
	ID   string `path:"id" doc:"Camp document id"`
	Body CampFields
}

// HandleUpdate replaces the mutable camp fields. The document id and addedBy
// stay untouched.
func (h *CampHandler) HandleUpdate(ctx context.Context, input *UpdateCampInput) (*UpdateOutput, error) {
	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid camp id")
	}

	result, err := h.store.Camps.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"campName":         input.Body.CampName,
		"campFees":         input.Body.CampFees,
		"location":         input.Body.Location,
		"professionalName": input.Body.ProfessionalName,
		"date":             input.Body.Date,
		"time":             input.Body.Time,
		"details":          input.Body.Details,
		"image_url":        input.Body.ImageURL,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to update camp: " + err.Error())
	}
	return &UpdateOutput{Body: result}, nil
}

type DeleteOutput struct {
	Body *database.DeleteResult
}

// HandleDelete removes the camp. Registrations referencing it are not
// cascaded; they keep their snapshot of the camp fields.
func (h *CampHandler) HandleDelete(ctx context.Context, input *CampIDInput) (*DeleteOutput, error) {
	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid camp id")
	}

	result, err := h.store.Camps.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to delete camp: " + err.Error())
	}
	return &DeleteOutput{Body: result}, nil
}
