package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
)

const (
	defaultCustomerName     = "Cliente"
	defaultCustomerEmail    = "cliente@email.com"
	defaultCustomerDocument = "00000000000"
	defaultCustomerPhone    = "11999999999"
)

// IPaymentUseCase is the gateway-agnostic facade used by the HTTP layer.
type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error)
	GetStatus(ctx context.Context, id string) (*entities.PaymentRecord, error)
	GetStatusFrom(ctx context.Context, gateway entities.GatewayTag, id string) (*entities.PaymentRecord, error)
	ListPayments(ctx context.Context, filters entities.PaymentFilters) ([]entities.PaymentRecord, error)
	ActiveGateway() entities.GatewayTag
	Gateways() []entities.GatewayTag
	SwitchGateway(tag string) (entities.GatewayTag, error)
}

type PaymentUseCase struct {
	mu       sync.RWMutex
	active   entities.GatewayTag
	gateways map[entities.GatewayTag]interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase registers the given gateways by their Name(). Nil entries are skipped.
func NewPaymentUseCase(active entities.GatewayTag, gateways ...interfaces.IPaymentGateway) *PaymentUseCase {
	registry := make(map[entities.GatewayTag]interfaces.IPaymentGateway, len(gateways))
	for _, g := range gateways {
		if g == nil {
			continue
		}
		registry[g.Name()] = g
	}
	return &PaymentUseCase{active: active, gateways: registry}
}

func (u *PaymentUseCase) activeGateway() (entities.GatewayTag, interfaces.IPaymentGateway, error) {
	u.mu.RLock()
	tag := u.active
	u.mu.RUnlock()
	g, ok := u.gateways[tag]
	if !ok {
		return tag, nil, ErrGatewayNotConfigured
	}
	return tag, g, nil
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
	tag, gateway, err := u.activeGateway()
	if err != nil {
		log.Printf("[payment][usecase] create failed gateway=%s err=%v", tag, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[payment][usecase] create start gateway=%s amount=%s", tag, req.Amount.StringFixed(2))

	if !req.Amount.IsPositive() {
		log.Printf("[payment][usecase] invalid amount gateway=%s amount=%s", tag, req.Amount.String())
		return entities.PaymentRecord{}, entities.NewValidationError("amount", "must be greater than zero")
	}
	if minCents := gateway.MinimumAmountCents(); req.AmountCents() < minCents {
		log.Printf("[payment][usecase] amount below minimum gateway=%s amount_cents=%d min_cents=%d", tag, req.AmountCents(), minCents)
		return entities.PaymentRecord{}, entities.NewValidationError("amount", "must be at least %s for %s",
			entities.FromCents(minCents).StringFixed(2), tag)
	}

	req = withRequestDefaults(req)
	rec, err := gateway.CreatePayment(ctx, req)
	if err != nil {
		log.Printf("[payment][usecase] create failed gateway=%s external_id=%s err=%v", tag, req.ExternalID, err)
		return entities.PaymentRecord{}, err
	}
	if rec.Gateway == "" {
		rec.Gateway = tag
	}
	log.Printf("[payment][usecase] create success gateway=%s id=%s status=%s external_id=%s", tag, rec.ID, rec.Status, req.ExternalID)
	return rec, nil
}

func withRequestDefaults(req entities.PaymentRequest) entities.PaymentRequest {
	if strings.TrimSpace(req.ExternalID) == "" {
		req.ExternalID = uuid.NewString()
	}
	if strings.TrimSpace(req.Customer.Name) == "" {
		req.Customer.Name = defaultCustomerName
	}
	if strings.TrimSpace(req.Customer.Email) == "" {
		req.Customer.Email = defaultCustomerEmail
	}
	if strings.TrimSpace(req.Customer.Document) == "" {
		req.Customer.Document = defaultCustomerDocument
	}
	if strings.TrimSpace(req.Customer.Phone) == "" {
		req.Customer.Phone = defaultCustomerPhone
	}
	return req
}

func (u *PaymentUseCase) GetStatus(ctx context.Context, id string) (*entities.PaymentRecord, error) {
	return u.GetStatusFrom(ctx, u.ActiveGateway(), id)
}

// GetStatusFrom queries a specific gateway regardless of the active one.
// A nil record with a nil error means the gateway does not know the id.
func (u *PaymentUseCase) GetStatusFrom(ctx context.Context, tag entities.GatewayTag, id string) (*entities.PaymentRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidPaymentID
	}
	gateway, ok := u.gateways[tag]
	if !ok {
		log.Printf("[payment][usecase] status failed gateway=%s id=%s err=%v", tag, id, ErrGatewayNotConfigured)
		return nil, ErrGatewayNotConfigured
	}

	rec, err := gateway.GetStatus(ctx, id)
	if err != nil {
		log.Printf("[payment][usecase] status failed gateway=%s id=%s err=%v", tag, id, err)
		return nil, err
	}
	if rec == nil {
		log.Printf("[payment][usecase] status not-found gateway=%s id=%s", tag, id)
		return nil, nil
	}
	if rec.Gateway == "" {
		rec.Gateway = tag
	}
	log.Printf("[payment][usecase] status success gateway=%s id=%s status=%s raw=%s", tag, id, rec.Status, rec.RawStatus)
	return rec, nil
}

func (u *PaymentUseCase) ListPayments(ctx context.Context, filters entities.PaymentFilters) ([]entities.PaymentRecord, error) {
	tag, gateway, err := u.activeGateway()
	if err != nil {
		return nil, err
	}
	if filters.Limit < 0 || filters.Offset < 0 {
		return nil, entities.NewValidationError("limit", "limit and offset must not be negative")
	}
	recs, err := gateway.ListPayments(ctx, filters)
	if err != nil {
		log.Printf("[payment][usecase] list failed gateway=%s err=%v", tag, err)
		return nil, err
	}
	log.Printf("[payment][usecase] list success gateway=%s results=%d", tag, len(recs))
	return recs, nil
}

func (u *PaymentUseCase) ActiveGateway() entities.GatewayTag {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.active
}

// Gateways lists the configured gateways in a stable order.
func (u *PaymentUseCase) Gateways() []entities.GatewayTag {
	tags := make([]entities.GatewayTag, 0, len(u.gateways))
	for tag := range u.gateways {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// SwitchGateway changes the active gateway and drops every cached credential.
func (u *PaymentUseCase) SwitchGateway(raw string) (entities.GatewayTag, error) {
	tag, ok := entities.ParseGatewayTag(raw)
	if !ok {
		return "", entities.NewValidationError("gateway", "unknown gateway %q", raw)
	}
	if _, ok := u.gateways[tag]; !ok {
		return "", entities.NewValidationError("gateway", "%s is not configured", tag)
	}

	u.mu.Lock()
	previous := u.active
	u.active = tag
	u.mu.Unlock()

	for _, g := range u.gateways {
		if inv, ok := g.(interfaces.ITokenInvalidator); ok {
			inv.InvalidateToken()
		}
	}
	log.Printf("[payment][usecase] gateway switched from=%s to=%s", previous, tag)
	return tag, nil
}
