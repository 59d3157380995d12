package payments

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	pushinPayCashInPath      = "/api/pix/cashIn"
	pushinPayTransactionPath = "/api/transactions/"
)

type PushinPayOptions struct {
	BaseURL        string
	Token          string
	WebhookURL     string
	MinAmountCents int64
	Timeout        time.Duration
	HTTPClient     *http.Client
}

// PushinPayGateway uses a long-lived bearer token; there is no refresh.
type PushinPayGateway struct {
	api     *jsonHTTPClient
	opts    PushinPayOptions
	nowFunc func() time.Time
}

var _ interfaces.IPaymentGateway = (*PushinPayGateway)(nil)

func NewPushinPayGateway(opts PushinPayOptions) *PushinPayGateway {
	g := &PushinPayGateway{
		api:     newJSONHTTPClient(entities.GatewayPushinPay, opts.BaseURL, opts.Timeout, opts.HTTPClient),
		opts:    opts,
		nowFunc: time.Now,
	}
	log.Printf("[payment][gateway] pushinpay client initialized base_url=%s min_amount_cents=%d", g.api.baseURL, opts.MinAmountCents)
	return g
}

func (g *PushinPayGateway) Name() entities.GatewayTag {
	return entities.GatewayPushinPay
}

func (g *PushinPayGateway) MinimumAmountCents() int64 {
	return g.opts.MinAmountCents
}

type pushinPayCashInRequest struct {
	Value      int64                `json:"value"`
	WebhookURL string               `json:"webhook_url,omitempty"`
	SplitRules []entities.SplitRule `json:"split_rules"`
}

type pushinPayTransaction struct {
	ID           string          `json:"id"`
	QRCode       string          `json:"qr_code"`
	QRCodeBase64 string          `json:"qr_code_base64"`
	Status       string          `json:"status"`
	Value        decimal.Decimal `json:"value"`
	CreatedAt    string          `json:"created_at"`
}

func (t pushinPayTransaction) toRecord() entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:        t.ID,
		Status:    entities.NormalizeStatus(t.Status),
		RawStatus: t.Status,
		Amount:    t.Value.Shift(-2),
		PixCode:   t.QRCode,
		QRCode:    t.QRCodeBase64,
		Gateway:   entities.GatewayPushinPay,
		CreatedAt: parseTimestamp(t.CreatedAt),
	}
}

func (g *PushinPayGateway) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
	if err := validateAmount(req, g.opts.MinAmountCents); err != nil {
		return entities.PaymentRecord{}, err
	}
	cents := req.AmountCents()
	if err := validateSplitRules(req.SplitRules, cents); err != nil {
		return entities.PaymentRecord{}, err
	}
	if g.opts.Token == "" {
		return entities.PaymentRecord{}, &entities.AuthError{Gateway: entities.GatewayPushinPay, Err: fmt.Errorf("token not configured")}
	}

	splits := req.SplitRules
	if splits == nil {
		splits = []entities.SplitRule{}
	}
	log.Printf("[payment][gateway] pushinpay create start value=%d splits=%d", cents, len(splits))

	status, body, err := g.api.send(ctx, "cash-in", http.MethodPost, pushinPayCashInPath, g.opts.Token, pushinPayCashInRequest{
		Value:      cents,
		WebhookURL: g.opts.WebhookURL,
		SplitRules: splits,
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if !isSuccess(status) {
		return entities.PaymentRecord{}, g.api.upstreamError("cash-in", status, body)
	}

	var resp pushinPayTransaction
	if err := g.api.decode("cash-in", status, body, &resp); err != nil {
		return entities.PaymentRecord{}, err
	}
	if resp.ID == "" {
		return entities.PaymentRecord{}, g.api.upstreamError("cash-in", status, body)
	}

	rec := resp.toRecord()
	if rec.Status == entities.PaymentStatusUnknown {
		rec.Status = entities.PaymentStatusPending
	}
	if rec.Amount.IsZero() {
		rec.Amount = req.Amount
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = g.nowFunc().UTC()
	}
	log.Printf("[payment][gateway] pushinpay create success id=%s status=%s", rec.ID, rec.RawStatus)
	return rec, nil
}

func (g *PushinPayGateway) GetStatus(ctx context.Context, id string) (*entities.PaymentRecord, error) {
	status, body, err := g.api.send(ctx, "transaction", http.MethodGet, pushinPayTransactionPath+url.PathEscape(id), g.opts.Token, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		log.Printf("[payment][gateway] pushinpay transaction not-found id=%s", id)
		return nil, nil
	}
	if !isSuccess(status) {
		return nil, g.api.upstreamError("transaction", status, body)
	}

	// The API answers an empty list (or null) for unknown ids.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("[]")) || bytes.Equal(trimmed, []byte("null")) {
		log.Printf("[payment][gateway] pushinpay transaction empty id=%s", id)
		return nil, nil
	}

	var resp pushinPayTransaction
	if err := g.api.decode("transaction", status, trimmed, &resp); err != nil {
		return nil, err
	}
	rec := resp.toRecord()
	if rec.ID == "" {
		rec.ID = id
	}
	return &rec, nil
}

func (g *PushinPayGateway) ListPayments(_ context.Context, _ entities.PaymentFilters) ([]entities.PaymentRecord, error) {
	return nil, &entities.UnsupportedOperationError{Gateway: entities.GatewayPushinPay, Operation: "list payments"}
}
