package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IWebhookUseCase authenticates and dispatches inbound gateway notifications.
type IWebhookUseCase interface {
	VerifySignature(body []byte, signature string) error
	Handle(ctx context.Context, n entities.WebhookNotification) (entities.WebhookEvent, error)
}

type WebhookUseCase struct {
	secret string
	sinks  []interfaces.INotificationSink
	now    func() time.Time
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

// NewWebhookUseCase builds the dispatcher. An empty secret disables signature checks.
func NewWebhookUseCase(secret string, sinks ...interfaces.INotificationSink) *WebhookUseCase {
	var active []interfaces.INotificationSink
	for _, s := range sinks {
		if s != nil {
			active = append(active, s)
		}
	}
	return &WebhookUseCase{secret: secret, sinks: active, now: time.Now}
}

// VerifySignature checks a hex HMAC-SHA256 of body. An optional "sha256="
// prefix is accepted.
func (u *WebhookUseCase) VerifySignature(body []byte, signature string) error {
	if u.secret == "" {
		return nil
	}
	signature = strings.TrimSpace(signature)
	signature = strings.TrimPrefix(signature, "sha256=")
	if signature == "" {
		return &entities.SignatureError{Reason: "missing signature"}
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return &entities.SignatureError{Reason: "signature is not hex"}
	}

	mac := hmac.New(sha256.New, []byte(u.secret))
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return &entities.SignatureError{Reason: "signature mismatch"}
	}
	return nil
}

// Handle classifies the notification and hands it to every sink. Sink
// failures are logged and never change the outcome.
func (u *WebhookUseCase) Handle(ctx context.Context, n entities.WebhookNotification) (entities.WebhookEvent, error) {
	n.TransactionID = strings.TrimSpace(n.TransactionID)
	if n.TransactionID == "" {
		log.Printf("[webhook][usecase] rejected gateway=%s flow=%s action=%s reason=missing-id", n.Gateway, n.Flow, n.Action)
		return entities.WebhookEvent{}, entities.NewValidationError("id", "transaction id is required")
	}
	if n.ReceivedAt.IsZero() {
		n.ReceivedAt = u.now().UTC()
	}

	ev := entities.WebhookEvent{
		ID:           uuid.NewString(),
		Kind:         entities.ClassifyWebhookEvent(n.Event, n.Status),
		Notification: n,
	}

	switch ev.Kind {
	case entities.WebhookEventPaid:
		log.Printf("[webhook][usecase] payment confirmed gateway=%s id=%s amount=%s", n.Gateway, n.TransactionID, n.Amount.StringFixed(2))
	case entities.WebhookEventCreated:
		log.Printf("[webhook][usecase] payment created gateway=%s id=%s", n.Gateway, n.TransactionID)
	case entities.WebhookEventExpiredOrFailed:
		log.Printf("[webhook][usecase] payment expired-or-failed gateway=%s id=%s status=%s", n.Gateway, n.TransactionID, n.Status)
	case entities.WebhookEventCancelled:
		log.Printf("[webhook][usecase] payment cancelled gateway=%s id=%s", n.Gateway, n.TransactionID)
	case entities.WebhookEventRefunded:
		log.Printf("[webhook][usecase] payment refunded gateway=%s id=%s amount=%s", n.Gateway, n.TransactionID, n.Amount.StringFixed(2))
	default:
		log.Printf("[webhook][usecase] unhandled event gateway=%s id=%s event=%q status=%q", n.Gateway, n.TransactionID, n.Event, n.Status)
	}

	for _, sink := range u.sinks {
		if err := sink.Publish(ctx, ev); err != nil {
			log.Printf("[webhook][usecase] sink publish failed event_id=%s id=%s err=%v", ev.ID, n.TransactionID, err)
		}
	}
	return ev, nil
}
