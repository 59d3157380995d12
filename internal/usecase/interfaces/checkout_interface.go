package interfaces

import (
	"context"

	"pix_checkout/internal/domain/entities"
)

// ICheckoutAPI is the checkout client's view of the payments backend.
type ICheckoutAPI interface {
	CreatePix(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error)
	GetStatus(ctx context.Context, id string) (*entities.PaymentRecord, error)
	Plans(ctx context.Context) (entities.Catalog, error)
}

// ICheckoutRenderer draws the checkout state for the buyer.
type ICheckoutRenderer interface {
	ShowPix(rec entities.PaymentRecord)
	ShowStatus(rec entities.PaymentRecord)
	Redirect(rec entities.PaymentRecord)
	ShowNotPaid(rec entities.PaymentRecord)
	Close()
}
