package handlers

import (
	"context"
	"log"

	"github.com/danielgtaylor/huma/v2"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/campdoc/campdoc-api/internal/database"
	"github.com/campdoc/campdoc-api/internal/models"
	"github.com/campdoc/campdoc-api/internal/payments"
)

type PaymentHandler struct {
	store   *database.Store
	intents payments.IntentCreator
}

func NewPaymentHandler(store *database.Store, intents payments.IntentCreator) *PaymentHandler {
	return &PaymentHandler{store: store, intents: intents}
}

type CreateIntentInput struct {
	Body struct {
		Price float64 `json:"price" doc:"Camp fee in major units"`
	}
}

type CreateIntentOutput struct {
	Body struct {
		ClientSecret string `json:"clientSecret"`
	}
}

// HandleCreateIntent asks the payment provider for a client secret. The
// charge completes on the client; this service only learns about it through
// the later mark-paid and record-payment calls.
func (h *PaymentHandler) HandleCreateIntent(ctx context.Context, input *CreateIntentInput) (*CreateIntentOutput, error) {
	if input.Body.Price <= 0 {
		return nil, huma.Error400BadRequest("price must be a positive amount")
	}

	secret, err := h.intents.CreateIntent(ctx, input.Body.Price)
	if err != nil {
		log.Printf("payment intent for %.2f failed: %v", input.Body.Price, err)
		return nil, paymentProviderError()
	}

	resp := &CreateIntentOutput{}
	resp.Body.ClientSecret = secret
	return resp, nil
}

type RecordPaymentInput struct {
	Body struct {
		Email          string  `json:"email" doc:"Paying participant"`
		CampName       string  `json:"campName,omitempty"`
		Amount         float64 `json:"amount,omitempty" doc:"Amount charged, in major units"`
		TransactionID  string  `json:"transactionId,omitempty" doc:"Provider transaction id"`
		RegistrationID string  `json:"registrationId,omitempty" doc:"Registration the payment covers"`
		Date           string  `json:"date,omitempty"`
	}
}

// HandleRecord inserts a payment record. There is no idempotency key: a
// client that retries after a crash inserts a second record.
func (h *PaymentHandler) HandleRecord(ctx context.Context, input *RecordPaymentInput) (*InsertOutput, error) {
	result, err := h.store.Payments.InsertOne(ctx, models.Payment{
		Email:          input.Body.Email,
		CampName:       input.Body.CampName,
		Amount:         input.Body.Amount,
		TransactionID:  input.Body.TransactionID,
		RegistrationID: input.Body.RegistrationID,
		Date:           input.Body.Date,
	})
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to record payment: " + err.Error())
	}
	return &InsertOutput{Body: result}, nil
}

type ListPaymentsInput struct {
	Email string `query:"email" doc:"Participant email to filter by"`
}

type ListPaymentsOutput struct {
	Body []models.Payment
}

func (h *PaymentHandler) HandleList(ctx context.Context, input *ListPaymentsInput) (*ListPaymentsOutput, error) {
	records := []models.Payment{}
	if err := h.store.Payments.Find(ctx, bson.M{"email": input.Email}, &records); err != nil {
		return nil, huma.Error500InternalServerError("Failed to list payments: " + err.Error())
	}
	return &ListPaymentsOutput{Body: records}, nil
}
