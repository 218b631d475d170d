package handlers

import "net/http"

// messageError is returned where the wire contract is a bare
// {"message": "..."} object rather than huma's default error model.
type messageError struct {
	Message string `json:"message"`
	status  int
}

func (e *messageError) Error() string  { return e.Message }
func (e *messageError) GetStatus() int { return e.status }

func forbidden() error {
	return &messageError{Message: "forbidden access", status: http.StatusForbidden}
}

func paymentProviderError() error {
	return &messageError{Message: "payment provider error", status: http.StatusBadGateway}
}
