package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
)

// CheckoutUseCase drives one buyer through plan selection, PIX creation
// and status polling.
type CheckoutUseCase struct {
	api    interfaces.ICheckoutAPI
	poller *StatusPoller
}

func NewCheckoutUseCase(api interfaces.ICheckoutAPI, interval, redirectDelay time.Duration) *CheckoutUseCase {
	return &CheckoutUseCase{api: api, poller: NewStatusPoller(api, interval, redirectDelay)}
}

// BuildOrder resolves the plan and bump ids against the backend catalog.
func (u *CheckoutUseCase) BuildOrder(ctx context.Context, planID string, bumpIDs []string) (entities.Order, error) {
	catalog, err := u.api.Plans(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	return OrderFromCatalog(catalog, planID, bumpIDs)
}

func OrderFromCatalog(catalog entities.Catalog, planID string, bumpIDs []string) (entities.Order, error) {
	plan, ok := catalog.FindPlan(strings.TrimSpace(planID))
	if !ok {
		return entities.Order{}, entities.NewValidationError("plan", "unknown plan %q", planID)
	}
	order := entities.Order{Plan: plan}
	for _, id := range bumpIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		bump, ok := catalog.FindBump(id)
		if !ok {
			return entities.Order{}, entities.NewValidationError("bump", "unknown bump %q", id)
		}
		order.Bumps = append(order.Bumps, bump)
	}
	return order, nil
}

// Checkout creates the PIX charge, renders it and follows its status until
// a terminal state or until ctx is cancelled. The renderer is always closed.
func (u *CheckoutUseCase) Checkout(ctx context.Context, order entities.Order, customer entities.Customer, renderer interfaces.ICheckoutRenderer) (PollResult, error) {
	defer renderer.Close()

	log.Printf("[checkout][usecase] submit plan=%s bumps=%d total=%s", order.Plan.ID, len(order.Bumps), order.Total().StringFixed(2))
	rec, err := u.api.CreatePix(ctx, entities.PaymentRequest{
		Amount:      order.Total(),
		Description: order.Description(),
		Customer:    customer,
	})
	if err != nil {
		log.Printf("[checkout][usecase] create failed err=%v", err)
		return PollResult{State: PollStateIdle}, err
	}
	renderer.ShowPix(rec)

	res := u.poller.Run(ctx, rec.ID, PollHooks{
		OnUpdate:   renderer.ShowStatus,
		OnRedirect: renderer.Redirect,
		OnNotPaid:  renderer.ShowNotPaid,
	})
	log.Printf("[checkout][usecase] finished id=%s state=%s queries=%d", rec.ID, res.State, res.Queries)
	return res, nil
}
