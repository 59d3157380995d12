package entities

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WebhookEventKind is the dispatch branch chosen for an inbound notification.
type WebhookEventKind string

const (
	WebhookEventCreated         WebhookEventKind = "created"
	WebhookEventPaid            WebhookEventKind = "paid"
	WebhookEventExpiredOrFailed WebhookEventKind = "expired_or_failed"
	WebhookEventCancelled       WebhookEventKind = "cancelled"
	WebhookEventRefunded        WebhookEventKind = "refunded"
	WebhookEventUnknown         WebhookEventKind = "unknown"
)

// WebhookNotification is a gateway push, normalized from its wire shape.
type WebhookNotification struct {
	Gateway       GatewayTag
	Flow          string
	Action        string
	TransactionID string
	Event         string
	Status        string
	Amount        decimal.Decimal
	Raw           json.RawMessage
	ReceivedAt    time.Time
}

// WebhookEvent is what the dispatcher hands to the notification sink.
type WebhookEvent struct {
	ID           string
	Kind         WebhookEventKind
	Notification WebhookNotification
}

var webhookKinds = map[string]WebhookEventKind{
	"created":         WebhookEventCreated,
	"create":          WebhookEventCreated,
	"generated":       WebhookEventCreated,
	"pending":         WebhookEventCreated,
	"waiting_payment": WebhookEventCreated,

	"paid":      WebhookEventPaid,
	"completed": WebhookEventPaid,
	"approved":  WebhookEventPaid,
	"confirmed": WebhookEventPaid,

	"expired":  WebhookEventExpiredOrFailed,
	"failed":   WebhookEventExpiredOrFailed,
	"rejected": WebhookEventExpiredOrFailed,
	"error":    WebhookEventExpiredOrFailed,

	"cancelled": WebhookEventCancelled,
	"canceled":  WebhookEventCancelled,

	"refunded":     WebhookEventRefunded,
	"chargeback":   WebhookEventRefunded,
	"charged_back": WebhookEventRefunded,
	"reversed":     WebhookEventRefunded,
}

// ClassifyWebhookEvent picks the dispatch branch from the declared event,
// falling back to the status when the event name says nothing useful
// (e.g. "cashin.update").
func ClassifyWebhookEvent(event, status string) WebhookEventKind {
	if kind := classifyWebhookTerm(event); kind != WebhookEventUnknown {
		return kind
	}
	return classifyWebhookTerm(status)
}

func classifyWebhookTerm(term string) WebhookEventKind {
	term = strings.ToLower(strings.TrimSpace(term))
	if i := strings.LastIndexAny(term, ".:/"); i >= 0 {
		term = term[i+1:]
	}
	if kind, ok := webhookKinds[term]; ok {
		return kind
	}
	return WebhookEventUnknown
}
