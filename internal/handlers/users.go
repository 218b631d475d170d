package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/campdoc/campdoc-api/internal/auth"
	"github.com/campdoc/campdoc-api/internal/database"
	"github.com/campdoc/campdoc-api/internal/models"
)

type UserHandler struct {
	store       *database.Store
	authHandler *auth.AuthHandler
}

func NewUserHandler(store *database.Store, authHandler *auth.AuthHandler) *UserHandler {
	return &UserHandler{store: store, authHandler: authHandler}
}

type RegisterUserInput struct {
	Body struct {
		Name     string `json:"name,omitempty" doc:"Display name"`
		Email    string `json:"email" doc:"Unique email address"`
		PhotoURL string `json:"photoURL,omitempty" doc:"Avatar URL"`
	}
}

type RegisterUserOutput struct {
	Body struct {
		Message    string `json:"message,omitempty"`
		InsertedID any    `json:"insertedId"`
	}
}

// HandleRegister inserts a user unless the email is already taken. The
// duplicate case is a soft success so a returning user signing in again does
// not surface an error.
func (h *UserHandler) HandleRegister(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error) {
	resp := &RegisterUserOutput{}

	var existing models.User
	err := h.store.Users.FindOne(ctx, bson.M{"email": input.Body.Email}, &existing)
	if err == nil {
		resp.Body.Message = "user already exists"
		return resp, nil
	}
	if err != database.ErrNotFound {
		return nil, huma.Error500InternalServerError("Failed to look up user: " + err.Error())
	}

	result, err := h.store.Users.InsertOne(ctx, models.User{
		Name:     input.Body.Name,
		Email:    input.Body.Email,
		PhotoURL: input.Body.PhotoURL,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to register user: " + err.Error())
	}

	resp.Body.InsertedID = result.InsertedID
	return resp, nil
}

type ListUsersOutput struct {
	Body []models.User
}

func (h *UserHandler) HandleList(ctx context.Context, _ *struct{}) (*ListUsersOutput, error) {
	users := []models.User{}
	if err := h.store.Users.Find(ctx, bson.M{}, &users); err != nil {
		return nil, huma.Error500InternalServerError("Failed to list users: " + err.Error())
	}
	return &ListUsersOutput{Body: users}, nil
}

type AdminStatusInput struct {
	Email string `path:"id" doc:"Email address to check; must be the caller's own"`
}

type AdminStatusOutput struct {
	Body struct {
		Admin bool `json:"admin"`
	}
}

// HandleAdminStatus reports whether the caller is an admin. Callers may only
// ask about their own email.
func (h *UserHandler) HandleAdminStatus(ctx context.Context, input *AdminStatusInput) (*AdminStatusOutput, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok || claims.Email != input.Email {
		return nil, forbidden()
	}

	admin, err := h.authHandler.IsAdmin(ctx, input.Email)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to look up user: " + err.Error())
	}

	resp := &AdminStatusOutput{}
	resp.Body.Admin = admin
	return resp, nil
}

type PromoteUserInput struct {
	ID string `path:"id" doc:"User document id"`
}

type UpdateOutput struct {
	Body *database.UpdateResult
}

// HandlePromote overwrites the user's role with admin.
func (h *UserHandler) HandlePromote(ctx context.Context, input *PromoteUserInput) (*UpdateOutput, error) {
	id, err := primitive.ObjectIDFromHex(input.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("invalid user id")
	}

	result, err := h.store.Users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to promote user: " + err.Error())
	}
	return &UpdateOutput{Body: result}, nil
}
