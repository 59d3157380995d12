package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		if e.Error() != "PAYMENT_NOT_FOUND: Payment not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Success || body.Code != "PAYMENT_NOT_FOUND" || body.Details != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("amount must be at least 0.50")
		e := NewDomainError("INVALID_REQUEST", "Invalid request", cause, http.StatusBadRequest)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if got := e.ToHTTPError().Details; got != cause.Error() {
			t.Fatalf("expected details %q, got %q", cause.Error(), got)
		}
	})
}
