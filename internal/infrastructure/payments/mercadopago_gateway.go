package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const mercadoPagoDefaultSearchLimit = 30

// mercadoPagoPayments is the subset of payment.Client used here.
type mercadoPagoPayments interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Get(ctx context.Context, id int) (*payment.Response, error)
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
}

type MercadoPagoOptions struct {
	AccessToken    string
	WebhookURL     string
	MinAmountCents int64
	Mock           bool
}

type MercadoPagoGateway struct {
	client   mercadoPagoPayments
	opts     MercadoPagoOptions
	mockMode bool
	nowFunc  func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(opts MercadoPagoOptions) (*MercadoPagoGateway, error) {
	if opts.Mock {
		log.Printf("[payment][gateway] mercadopago mock mode enabled")
		return &MercadoPagoGateway{opts: opts, mockMode: true, nowFunc: time.Now}, nil
	}

	if opts.AccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] mercadopago client initialized")

	return newMercadoPagoGatewayWithClient(payment.NewClient(cfg), opts), nil
}

func newMercadoPagoGatewayWithClient(client mercadoPagoPayments, opts MercadoPagoOptions) *MercadoPagoGateway {
	return &MercadoPagoGateway{client: client, opts: opts, nowFunc: time.Now}
}

func (g *MercadoPagoGateway) Name() entities.GatewayTag {
	return entities.GatewayMercadoPago
}

func (g *MercadoPagoGateway) MinimumAmountCents() int64 {
	return g.opts.MinAmountCents
}

// mercadoPagoPaymentView picks the fields we need from the SDK response by
// their wire names.
type mercadoPagoPaymentView struct {
	ID                 int64           `json:"id"`
	Status             string          `json:"status"`
	TransactionAmount  decimal.Decimal `json:"transaction_amount"`
	DateCreated        string          `json:"date_created"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (v mercadoPagoPaymentView) toRecord() entities.PaymentRecord {
	return entities.PaymentRecord{
		ID:        strconv.FormatInt(v.ID, 10),
		Status:    entities.NormalizeStatus(v.Status),
		RawStatus: v.Status,
		Amount:    v.TransactionAmount,
		PixCode:   v.PointOfInteraction.TransactionData.QRCode,
		QRCode:    v.PointOfInteraction.TransactionData.QRCodeBase64,
		Gateway:   entities.GatewayMercadoPago,
		CreatedAt: parseTimestamp(v.DateCreated),
	}
}

func toPaymentView(operation string, resp any) (mercadoPagoPaymentView, error) {
	var view mercadoPagoPaymentView
	b, err := json.Marshal(resp)
	if err != nil {
		return view, fmt.Errorf("mercadopago %s: marshal response: %w", operation, err)
	}
	if err := json.Unmarshal(b, &view); err != nil {
		return view, fmt.Errorf("mercadopago %s: decode response: %w", operation, err)
	}
	return view, nil
}

type mercadoPagoPayer struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
}

type mercadoPagoCreateBody struct {
	TransactionAmount json.Number       `json:"transaction_amount"`
	Description       string            `json:"description,omitempty"`
	PaymentMethodID   string            `json:"payment_method_id"`
	ExternalReference string            `json:"external_reference,omitempty"`
	NotificationURL   string            `json:"notification_url,omitempty"`
	Payer             *mercadoPagoPayer `json:"payer,omitempty"`
}

// newMercadoPagoRequest builds the SDK request from its wire form.
func newMercadoPagoRequest(req entities.PaymentRequest, webhookURL string) (payment.Request, error) {
	body := mercadoPagoCreateBody{
		TransactionAmount: json.Number(req.Amount.StringFixed(2)),
		Description:       req.Description,
		PaymentMethodID:   "pix",
		ExternalReference: req.ExternalID,
		NotificationURL:   webhookURL,
	}
	if req.Customer.Email != "" || req.Customer.Name != "" {
		body.Payer = &mercadoPagoPayer{Email: req.Customer.Email, FirstName: req.Customer.Name}
	}

	var out payment.Request
	b, err := json.Marshal(body)
	if err != nil {
		return out, fmt.Errorf("mercadopago create: encode request: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("mercadopago create: build request: %w", err)
	}
	return out, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
	if err := validateAmount(req, g.opts.MinAmountCents); err != nil {
		return entities.PaymentRecord{}, err
	}

	if g.mockMode {
		id := strconv.FormatInt(g.nowFunc().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mercadopago mock create success id=%s", id)
		return entities.PaymentRecord{
			ID:        id,
			Status:    entities.PaymentStatusPending,
			RawStatus: "pending",
			Amount:    req.Amount,
			PixCode:   "00020126MOCKPIX" + id,
			Gateway:   entities.GatewayMercadoPago,
			CreatedAt: g.nowFunc().UTC(),
		}, nil
	}
	if g.client == nil {
		return entities.PaymentRecord{}, &entities.AuthError{Gateway: entities.GatewayMercadoPago, Err: ErrMissingMercadoPagoAccessToken}
	}
	log.Printf("[payment][gateway] mercadopago create start amount=%s external_reference=%s", req.Amount.StringFixed(2), req.ExternalID)

	sdkReq, err := newMercadoPagoRequest(req, g.opts.WebhookURL)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		log.Printf("[payment][gateway] mercadopago sdk create failed err=%v", err)
		return entities.PaymentRecord{}, mercadoPagoError("create", err)
	}

	view, err := toPaymentView("create", resp)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	rec := view.toRecord()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = g.nowFunc().UTC()
	}
	log.Printf("[payment][gateway] mercadopago create success id=%s status=%s", rec.ID, rec.RawStatus)
	return rec, nil
}

func (g *MercadoPagoGateway) GetStatus(ctx context.Context, id string) (*entities.PaymentRecord, error) {
	numericID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		log.Printf("[payment][gateway] mercadopago non-numeric id=%s", id)
		return nil, nil
	}

	if g.mockMode {
		return &entities.PaymentRecord{
			ID:        id,
			Status:    entities.PaymentStatusPaid,
			RawStatus: "approved",
			Gateway:   entities.GatewayMercadoPago,
		}, nil
	}
	if g.client == nil {
		return nil, &entities.AuthError{Gateway: entities.GatewayMercadoPago, Err: ErrMissingMercadoPagoAccessToken}
	}

	resp, err := g.client.Get(ctx, numericID)
	if err != nil {
		if isMercadoPagoNotFound(err) {
			log.Printf("[payment][gateway] mercadopago payment not-found id=%s", id)
			return nil, nil
		}
		return nil, mercadoPagoError("get", err)
	}

	view, err := toPaymentView("get", resp)
	if err != nil {
		return nil, err
	}
	rec := view.toRecord()
	return &rec, nil
}

func (g *MercadoPagoGateway) ListPayments(ctx context.Context, filters entities.PaymentFilters) ([]entities.PaymentRecord, error) {
	if g.mockMode {
		return []entities.PaymentRecord{}, nil
	}
	if g.client == nil {
		return nil, &entities.AuthError{Gateway: entities.GatewayMercadoPago, Err: ErrMissingMercadoPagoAccessToken}
	}

	search := payment.SearchRequest{
		Filters: map[string]string{"payment_method_id": "pix"},
		Limit:   filters.Limit,
		Offset:  filters.Offset,
	}
	if search.Limit <= 0 {
		search.Limit = mercadoPagoDefaultSearchLimit
	}
	if filters.Status != "" {
		search.Filters["status"] = filters.Status
	}
	if filters.ExternalID != "" {
		search.Filters["external_reference"] = filters.ExternalID
	}
	log.Printf("[payment][gateway] mercadopago search start status=%s external_reference=%s limit=%d offset=%d", filters.Status, filters.ExternalID, search.Limit, search.Offset)

	resp, err := g.client.Search(ctx, search)
	if err != nil {
		return nil, mercadoPagoError("search", err)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("mercadopago search: marshal response: %w", err)
	}
	var page struct {
		Results []mercadoPagoPaymentView `json:"results"`
	}
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, fmt.Errorf("mercadopago search: decode response: %w", err)
	}

	out := make([]entities.PaymentRecord, 0, len(page.Results))
	for _, v := range page.Results {
		out = append(out, v.toRecord())
	}
	log.Printf("[payment][gateway] mercadopago search success results=%d", len(out))
	return out, nil
}

// mercadoPagoStatus extracts the HTTP status from an SDK error, 0 when the
// request never got an answer.
func mercadoPagoStatus(err error) (int, string) {
	var respErr *mperror.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode, respErr.Message
	}
	return 0, ""
}

func isMercadoPagoNotFound(err error) bool {
	status, _ := mercadoPagoStatus(err)
	return status == http.StatusNotFound
}

func mercadoPagoError(operation string, err error) error {
	status, body := mercadoPagoStatus(err)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &entities.AuthError{Gateway: entities.GatewayMercadoPago, Err: err}
	case status != 0:
		if len(body) > maxErrorBodyLen {
			body = body[:maxErrorBodyLen]
		}
		return &entities.UpstreamError{Gateway: entities.GatewayMercadoPago, Operation: operation, StatusCode: status, Body: body}
	}
	return &entities.UpstreamError{Gateway: entities.GatewayMercadoPago, Operation: operation, Err: err}
}
