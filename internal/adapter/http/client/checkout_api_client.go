package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase/interfaces"
	"pix_checkout/pkg"
)

const (
	PathCreatePix     = "/api/payments/pix/create"
	PathPaymentStatus = "/api/payments/%s/status"
	PathPlans         = "/api/plans"
)

// CheckoutAPIClient talks to the payments backend on behalf of the checkout
// CLI. Non-2xx answers come back as *pkg.AppError built from the error body.
//
// The gateway that created each payment is remembered so status lookups keep
// hitting it after the backend's active gateway changes.
type CheckoutAPIClient struct {
	baseURL string
	http    *http.Client

	mu       sync.Mutex
	gateways map[string]entities.GatewayTag
}

var _ interfaces.ICheckoutAPI = (*CheckoutAPIClient)(nil)

func NewCheckoutAPIClient(baseURL string, timeout time.Duration) *CheckoutAPIClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CheckoutAPIClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: timeout},
		gateways: make(map[string]entities.GatewayTag),
	}
}

func (c *CheckoutAPIClient) CreatePix(ctx context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
	var out response.CreatePaymentResponse
	found, err := c.do(ctx, http.MethodPost, PathCreatePix, request.FromPaymentRequest(req), &out)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if !found || out.Data.ID == "" {
		return entities.PaymentRecord{}, fmt.Errorf("create pix: empty response")
	}
	rec := out.Data.ToDomain()
	if rec.Gateway == "" {
		rec.Gateway = entities.GatewayTag(out.Gateway)
	}
	if rec.Gateway != "" {
		c.mu.Lock()
		c.gateways[rec.ID] = rec.Gateway
		c.mu.Unlock()
	}
	log.Printf("[checkout][client] created id=%s gateway=%s", rec.ID, rec.Gateway)
	return rec, nil
}

// GetStatus returns nil, nil when the backend answers 404.
func (c *CheckoutAPIClient) GetStatus(ctx context.Context, id string) (*entities.PaymentRecord, error) {
	path := fmt.Sprintf(PathPaymentStatus, url.PathEscape(id))
	c.mu.Lock()
	gateway := c.gateways[id]
	c.mu.Unlock()
	if gateway != "" {
		path += "?" + url.Values{"gateway": {string(gateway)}}.Encode()
	}

	var out response.PaymentStatusResponse
	found, err := c.do(ctx, http.MethodGet, path, nil, &out)
	if err != nil || !found {
		return nil, err
	}
	rec := out.Data.ToDomain()
	return &rec, nil
}

func (c *CheckoutAPIClient) Plans(ctx context.Context) (entities.Catalog, error) {
	var out response.CatalogResponse
	found, err := c.do(ctx, http.MethodGet, PathPlans, nil, &out)
	if err != nil {
		return entities.Catalog{}, err
	}
	if !found {
		return entities.Catalog{}, fmt.Errorf("plans: not found")
	}
	return out.ToDomain(), nil
}

func (c *CheckoutAPIClient) do(ctx context.Context, method, path string, payload any, out any) (bool, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return false, err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, decodeAPIError(resp.StatusCode, raw)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%s %s: decode: %w", method, path, err)
	}
	return true, nil
}

func decodeAPIError(status int, raw []byte) error {
	var body pkg.HTTPError
	if err := json.Unmarshal(raw, &body); err != nil || body.Code == "" {
		return pkg.NewDomainErrorSimple("HTTP_"+strconv.Itoa(status), strings.TrimSpace(string(raw)), status)
	}
	var cause error
	if body.Details != "" {
		cause = errors.New(body.Details)
	}
	return pkg.NewDomainError(body.Code, body.Message, cause, status)
}
