package interfaces

import (
	"context"

	"pix_checkout/internal/domain/entities"
)

// INotificationSink receives every dispatched webhook event (fulfillment, audit journal).
type INotificationSink interface {
	Publish(ctx context.Context, ev entities.WebhookEvent) error
}
