package interfaces

import (
	"context"

	"pix_checkout/internal/domain/entities"
)

// IStatusSource is what the status poller queries on every tick.
type IStatusSource interface {
	GetStatus(ctx context.Context, id string) (*entities.PaymentRecord, error)
}
