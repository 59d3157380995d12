package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
)

const maxErrorBodyLen = 512

// jsonHTTPClient is the small REST helper shared by the gateways that ship no Go SDK.
type jsonHTTPClient struct {
	gateway entities.GatewayTag
	baseURL string
	http    *http.Client
}

func newJSONHTTPClient(gateway entities.GatewayTag, baseURL string, timeout time.Duration, hc *http.Client) *jsonHTTPClient {
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	return &jsonHTTPClient{
		gateway: gateway,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// send performs the request and returns the raw status and body. Transport
// failures come back as *entities.UpstreamError; HTTP errors are left to the caller.
func (c *jsonHTTPClient) send(ctx context.Context, operation, method, path, bearer string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("%s %s: encode payload: %w", c.gateway, operation, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: build request: %w", c.gateway, operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[payment][gateway] %s %s transport error err=%v", c.gateway, operation, err)
		return 0, nil, &entities.UpstreamError{Gateway: c.gateway, Operation: operation, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &entities.UpstreamError{Gateway: c.gateway, Operation: operation, StatusCode: resp.StatusCode, Err: err}
	}
	log.Printf("[payment][gateway] %s %s status=%d elapsed=%s", c.gateway, operation, resp.StatusCode, time.Since(start).Round(time.Millisecond))
	return resp.StatusCode, raw, nil
}

func (c *jsonHTTPClient) upstreamError(operation string, status int, body []byte) *entities.UpstreamError {
	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBodyLen {
		text = text[:maxErrorBodyLen]
	}
	return &entities.UpstreamError{Gateway: c.gateway, Operation: operation, StatusCode: status, Body: text}
}

func (c *jsonHTTPClient) decode(operation string, status int, body []byte, out any) error {
	if err := json.Unmarshal(body, out); err != nil {
		return &entities.UpstreamError{Gateway: c.gateway, Operation: operation, StatusCode: status, Body: string(body), Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// parseTimestamp accepts the timestamp layouts seen across gateways; zero on failure.
func parseTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000000Z", "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
