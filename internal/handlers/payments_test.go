package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/danielgtaylor/huma/v2"

	"github.com/campdoc/campdoc-api/internal/database"
)

type stubIntents struct {
	lastPrice float64
	secret    string
	err       error
}

func (s *stubIntents) CreateIntent(_ context.Context, price float64) (string, error) {
	s.lastPrice = price
	if s.err != nil {
		return "", s.err
	}
	return s.secret, nil
}

func TestHandleCreateIntent(t *testing.T) {
	stub := &stubIntents{secret: "cs_test_123"}
	handler := NewPaymentHandler(database.NewMemoryStore(), stub)
	ctx := context.Background()

	input := &CreateIntentInput{}
	input.Body.Price = 19.99
	resp, err := handler.HandleCreateIntent(ctx, input)
	if err != nil {
		t.Fatalf("HandleCreateIntent returned error: %v", err)
	}
	if resp.Body.ClientSecret != "cs_test_123" {
		t.Errorf("expected client secret from provider, got %q", resp.Body.ClientSecret)
	}
	if stub.lastPrice != 19.99 {
		t.Errorf("expected price to be passed through, got %v", stub.lastPrice)
	}
}

func TestHandleCreateIntent_NonPositivePrice(t *testing.T) {
	handler := NewPaymentHandler(database.NewMemoryStore(), &stubIntents{secret: "cs"})

	for _, price := range []float64{0, -5} {
		input := &CreateIntentInput{}
		input.Body.Price = price
		_, err := handler.HandleCreateIntent(context.Background(), input)
		se, ok := err.(huma.StatusError)
		if !ok || se.GetStatus() != 400 {
			t.Errorf("expected 400 for price %v, got %v", price, err)
		}
	}
}

func TestHandleCreateIntent_ProviderError(t *testing.T) {
	stub := &stubIntents{err: errors.New("stripe is down")}
	handler := NewPaymentHandler(database.NewMemoryStore(), stub)

	input := &CreateIntentInput{}
	input.Body.Price = 19.99
	_, err := handler.HandleCreateIntent(context.Background(), input)
	me, ok := err.(*messageError)
	if !ok || me.GetStatus() != 502 {
		t.Errorf("expected 502 messageError on provider failure, got %v", err)
	}
}

func TestHandleRecordAndListPayments(t *testing.T) {
	handler := NewPaymentHandler(database.NewMemoryStore(), &stubIntents{})
	ctx := context.Background()

	record := &RecordPaymentInput{}
	record.Body.Email = "p@x.com"
	record.Body.Amount = 19.99
	record.Body.TransactionID = "pi_123"

	if _, err := handler.HandleRecord(ctx, record); err != nil {
		t.Fatalf("HandleRecord returned error: %v", err)
	}
	// A retried record call is not deduplicated.
	if _, err := handler.HandleRecord(ctx, record); err != nil {
		t.Fatalf("second HandleRecord returned error: %v", err)
	}

	resp, err := handler.HandleList(ctx, &ListPaymentsInput{Email: "p@x.com"})
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if len(resp.Body) != 2 {
		t.Errorf("expected 2 payment records, got %d", len(resp.Body))
	}

	empty, err := handler.HandleList(ctx, &ListPaymentsInput{Email: "q@x.com"})
	if err != nil {
		t.Fatalf("HandleList returned error: %v", err)
	}
	if len(empty.Body) != 0 {
		t.Errorf("expected no records for q@x.com, got %d", len(empty.Body))
	}
}
