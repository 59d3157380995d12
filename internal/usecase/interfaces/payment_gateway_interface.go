package interfaces

import (
	"context"

	"pix_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts an external PIX provider (SyncPay, PushinPay, Mercado Pago).
//
// GetStatus returns (nil, nil) when the provider reports the transaction as not found.
// ListPayments fails with *entities.UnsupportedOperationError on providers without listing.
type IPaymentGateway interface {
	Name() entities.GatewayTag
	MinimumAmountCents() int64
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error)
	GetStatus(ctx context.Context, id string) (*entities.PaymentRecord, error)
	ListPayments(ctx context.Context, filters entities.PaymentFilters) ([]entities.PaymentRecord, error)
}

// ITokenInvalidator is implemented by gateways that cache credentials.
type ITokenInvalidator interface {
	InvalidateToken()
}
