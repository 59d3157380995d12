package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const (
	syncPayAuthPath        = "/api/partner/v1/auth-token"
	syncPayCashInPath      = "/api/partner/v1/cash-in"
	syncPayTransactionPath = "/api/partner/v1/transaction/"
)

type SyncPayOptions struct {
	BaseURL           string
	ClientID          string
	ClientSecret      string
	WebhookURL        string
	MinAmountCents    int64
	TokenSafetyMargin time.Duration
	Timeout           time.Duration
	HTTPClient        *http.Client
}

// SyncPayGateway talks to the SyncPay partner API using short-lived tokens
// obtained from client credentials.
type SyncPayGateway struct {
	api     *jsonHTTPClient
	opts    SyncPayOptions
	tokens  *TokenCache
	nowFunc func() time.Time
}

var (
	_ interfaces.IPaymentGateway   = (*SyncPayGateway)(nil)
	_ interfaces.ITokenInvalidator = (*SyncPayGateway)(nil)
)

func NewSyncPayGateway(opts SyncPayOptions) *SyncPayGateway {
	g := &SyncPayGateway{
		api:     newJSONHTTPClient(entities.GatewaySyncPay, opts.BaseURL, opts.Timeout, opts.HTTPClient),
		opts:    opts,
		nowFunc: time.Now,
	}
	g.tokens = NewTokenCache(g.fetchToken, opts.TokenSafetyMargin)
	log.Printf("[payment][gateway] syncpay client initialized base_url=%s", g.api.baseURL)
	return g
}

func (g *SyncPayGateway) Name() entities.GatewayTag {
	return entities.GatewaySyncPay
}

func (g *SyncPayGateway) MinimumAmountCents() int64 {
	return g.opts.MinAmountCents
}

// Tokens exposes the cache so callers can force a refresh after a 401.
func (g *SyncPayGateway) Tokens() *TokenCache {
	return g.tokens
}

func (g *SyncPayGateway) InvalidateToken() {
	g.tokens.Invalidate()
}

type syncPayAuthRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type syncPayAuthResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   decimal.Decimal `json:"expires_in"`
	ExpiresAt   string          `json:"expires_at"`
}

func (g *SyncPayGateway) fetchToken(ctx context.Context) (string, time.Time, error) {
	if g.opts.ClientID == "" || g.opts.ClientSecret == "" {
		return "", time.Time{}, &entities.AuthError{Gateway: entities.GatewaySyncPay, Err: fmt.Errorf("client credentials not configured")}
	}
	log.Printf("[payment][gateway] syncpay auth start")

	status, body, err := g.api.send(ctx, "auth", http.MethodPost, syncPayAuthPath, "", syncPayAuthRequest{
		ClientID:     g.opts.ClientID,
		ClientSecret: g.opts.ClientSecret,
	})
	if err != nil {
		return "", time.Time{}, &entities.AuthError{Gateway: entities.GatewaySyncPay, Err: err}
	}
	if !isSuccess(status) {
		return "", time.Time{}, &entities.AuthError{Gateway: entities.GatewaySyncPay, Err: g.api.upstreamError("auth", status, body)}
	}

	var resp syncPayAuthResponse
	if err := g.api.decode("auth", status, body, &resp); err != nil {
		return "", time.Time{}, &entities.AuthError{Gateway: entities.GatewaySyncPay, Err: err}
	}
	if resp.AccessToken == "" {
		return "", time.Time{}, &entities.AuthError{Gateway: entities.GatewaySyncPay, Err: fmt.Errorf("empty access_token")}
	}

	expiresAt := parseTimestamp(resp.ExpiresAt)
	if expiresAt.IsZero() {
		expiresAt = g.nowFunc().Add(time.Duration(resp.ExpiresIn.IntPart()) * time.Second)
	}
	log.Printf("[payment][gateway] syncpay auth success expires_at=%s", expiresAt.Format(time.RFC3339))
	return resp.AccessToken, expiresAt, nil
}

func (g *SyncPayGateway) token(ctx context.Context) (string, error) {
	tok, err := g.tokens.GetValidToken(ctx)
	if err != nil {
		var authErr *entities.AuthError
		if errors.As(err, &authErr) {
			return "", authErr
		}
		return "", &entities.AuthError{Gateway: entities.GatewaySyncPay, Err: err}
	}
	return tok, nil
}

type syncPayClient struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type syncPayCashInRequest struct {
	Amount      json.Number   `json:"amount"`
	Description string        `json:"description,omitempty"`
	WebhookURL  string        `json:"webhook_url,omitempty"`
	Client      syncPayClient `json:"client"`
}

type syncPayCashInResponse struct {
	Message    string `json:"message"`
	PixCode    string `json:"pix_code"`
	Identifier string `json:"identifier"`
}

func (g *SyncPayGateway) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
	if err := validateAmount(req, g.opts.MinAmountCents); err != nil {
		return entities.PaymentRecord{}, err
	}
	tok, err := g.token(ctx)
	if err != nil {
		log.Printf("[payment][gateway] syncpay create auth failed err=%v", err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[payment][gateway] syncpay create start amount=%s", req.Amount.StringFixed(2))

	status, body, err := g.api.send(ctx, "cash-in", http.MethodPost, syncPayCashInPath, tok, syncPayCashInRequest{
		Amount:      json.Number(req.Amount.StringFixed(2)),
		Description: req.Description,
		WebhookURL:  g.opts.WebhookURL,
		Client: syncPayClient{
			Name:  req.Customer.Name,
			CPF:   req.Customer.Document,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if !isSuccess(status) {
		return entities.PaymentRecord{}, g.api.upstreamError("cash-in", status, body)
	}

	var resp syncPayCashInResponse
	if err := g.api.decode("cash-in", status, body, &resp); err != nil {
		return entities.PaymentRecord{}, err
	}
	if resp.Identifier == "" {
		return entities.PaymentRecord{}, g.api.upstreamError("cash-in", status, body)
	}
	log.Printf("[payment][gateway] syncpay create success id=%s", resp.Identifier)

	return entities.PaymentRecord{
		ID:        resp.Identifier,
		Status:    entities.PaymentStatusPending,
		RawStatus: string(entities.PaymentStatusPending),
		Amount:    req.Amount,
		PixCode:   resp.PixCode,
		Gateway:   entities.GatewaySyncPay,
		CreatedAt: g.nowFunc().UTC(),
	}, nil
}

type syncPayTransactionResponse struct {
	Data struct {
		ReferenceID string          `json:"reference_id"`
		Status      string          `json:"status"`
		Amount      decimal.Decimal `json:"amount"`
		PixCode     string          `json:"pix_code"`
		CreatedAt   string          `json:"created_at"`
	} `json:"data"`
}

func (g *SyncPayGateway) GetStatus(ctx context.Context, id string) (*entities.PaymentRecord, error) {
	tok, err := g.token(ctx)
	if err != nil {
		return nil, err
	}

	status, body, err := g.api.send(ctx, "transaction", http.MethodGet, syncPayTransactionPath+url.PathEscape(id), tok, nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		log.Printf("[payment][gateway] syncpay transaction not-found id=%s", id)
		return nil, nil
	}
	if !isSuccess(status) {
		return nil, g.api.upstreamError("transaction", status, body)
	}

	var resp syncPayTransactionResponse
	if err := g.api.decode("transaction", status, body, &resp); err != nil {
		return nil, err
	}
	if strings.TrimSpace(resp.Data.Status) == "" && resp.Data.ReferenceID == "" {
		return nil, nil
	}

	recID := resp.Data.ReferenceID
	if recID == "" {
		recID = id
	}
	return &entities.PaymentRecord{
		ID:        recID,
		Status:    entities.NormalizeStatus(resp.Data.Status),
		RawStatus: resp.Data.Status,
		Amount:    resp.Data.Amount,
		PixCode:   resp.Data.PixCode,
		Gateway:   entities.GatewaySyncPay,
		CreatedAt: parseTimestamp(resp.Data.CreatedAt),
	}, nil
}

func (g *SyncPayGateway) ListPayments(_ context.Context, _ entities.PaymentFilters) ([]entities.PaymentRecord, error) {
	return nil, &entities.UnsupportedOperationError{Gateway: entities.GatewaySyncPay, Operation: "list payments"}
}
