package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/config"
	"pix_checkout/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func newPushinPayStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/pix/cashIn", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Value      int64  `json:"value"`
			WebhookURL string `json:"webhook_url"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Value != 1990 {
			t.Errorf("expected 1990 cents, got %d", body.Value)
		}
		if body.WebhookURL != "https://checkout.example.com/webhook/pushinpay" {
			t.Errorf("unexpected webhook url %q", body.WebhookURL)
		}
		_, _ = w.Write([]byte(`{"id":"pp-100","qr_code":"00020126pix","status":"created","value":1990}`))
	})
	mux.HandleFunc("GET /api/transactions/pp-100", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"pp-100","qr_code":"00020126pix","status":"paid","value":1990}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T, pushinURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.Config{
		Gateway: config.GatewayConfig{
			Active:  entities.GatewayPushinPay,
			Timeout: 5 * time.Second,
			SyncPay: config.SyncPayConfig{BaseURL: "http://127.0.0.1:1", MinAmountCents: 100, TokenSafetyMargin: 30 * time.Second},
			PushinPay: config.PushinPayConfig{
				BaseURL:        pushinURL,
				Token:          "pp-token",
				MinAmountCents: 50,
			},
		},
		Webhook: config.WebhookConfig{BaseURL: "https://checkout.example.com"},
		Poller:  config.PollerConfig{Interval: time.Second, RedirectDelay: time.Second},
		Catalog: config.DefaultCatalog(),
	}
	router, err := NewRouter(cfg)
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return router
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_MonthlyPlanOnPushinPay(t *testing.T) {
	r := newTestRouter(t, newPushinPayStub(t).URL)

	w := serve(r, http.MethodPost, "/api/payments/pix/create", `{"amount":19.90,"description":"1 mês"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d %s", w.Code, w.Body.String())
	}
	var created response.CreatePaymentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Data.ID != "pp-100" || created.Data.Status != string(entities.PaymentStatusPending) || created.Gateway != "pushinpay" {
		t.Fatalf("unexpected create response %+v", created)
	}

	for _, path := range []string{"/api/payments/pp-100/status", "/api/transaction-status/pp-100"} {
		w = serve(r, http.MethodGet, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		var status response.PaymentStatusResponse
		if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
			t.Fatalf("decode: %v", err)
		}
		rec := status.Data.ToDomain()
		if !rec.Status.IsPaid() || !rec.Status.IsTerminal() || rec.RawStatus != "paid" {
			t.Fatalf("%s: unexpected record %+v", path, rec)
		}
	}
}

func TestRouter_Surface(t *testing.T) {
	r := newTestRouter(t, newPushinPayStub(t).URL)

	t.Run("ping", func(t *testing.T) {
		if w := serve(r, http.MethodGet, "/ping", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("below minimum", func(t *testing.T) {
		w := serve(r, http.MethodPost, "/api/payments/pix/create", `{"amount":0.49}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateways", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/gateways", "")
		var body response.GatewaysResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Active != "pushinpay" || strings.Join(body.Available, ",") != "pushinpay,syncpay" {
			t.Fatalf("unexpected gateways %+v", body)
		}
	})

	t.Run("list unsupported", func(t *testing.T) {
		if w := serve(r, http.MethodGet, "/api/payments", ""); w.Code != http.StatusNotImplemented {
			t.Fatalf("expected 501, got %d", w.Code)
		}
	})

	t.Run("plans", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/plans", "")
		var body response.CatalogResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Plans) != 3 || body.Plans[0].ID != "monthly" {
			t.Fatalf("unexpected catalog %+v", body)
		}
	})

	t.Run("webhooks", func(t *testing.T) {
		paths := []string{"/webhook/pushinpay", "/webhooks/syncpay"}
		for _, flow := range syncPayFlows {
			for _, action := range syncPayActions {
				paths = append(paths, "/webhooks/syncpay/"+flow+"/"+action)
			}
		}
		for _, path := range paths {
			if w := serve(r, http.MethodPost, path, `{"id":"tx-1","status":"paid"}`); w.Code != http.StatusOK {
				t.Fatalf("%s: expected 200, got %d", path, w.Code)
			}
			if w := serve(r, http.MethodPost, path, `{"status":"paid"}`); w.Code != http.StatusBadRequest {
				t.Fatalf("%s without id: expected 400, got %d", path, w.Code)
			}
		}
	})

	t.Run("mercadopago webhook", func(t *testing.T) {
		if w := serve(r, http.MethodPost, PathWebhookMercadoPago, `{"action":"payment.updated","type":"payment","data":{"id":"123"}}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := serve(r, http.MethodPost, PathWebhookMercadoPago+"?type=payment&data.id=123", ""); w.Code != http.StatusOK {
			t.Fatalf("ipn: expected 200, got %d", w.Code)
		}
		if w := serve(r, http.MethodPost, PathWebhookMercadoPago, `{"action":"payment.updated"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("without id: expected 400, got %d", w.Code)
		}
	})
}

func TestMercadoPagoOptions_WebhookURL(t *testing.T) {
	cfg := config.Config{
		Gateway: config.GatewayConfig{MercadoPago: config.MercadoPagoConfig{AccessToken: "TEST-1", MinAmountCents: 1}},
		Webhook: config.WebhookConfig{BaseURL: "https://checkout.example.com"},
	}
	opts := mercadoPagoOptions(cfg)
	if opts.WebhookURL != "https://checkout.example.com/webhooks/mercadopago" || opts.AccessToken != "TEST-1" {
		t.Fatalf("unexpected options %+v", opts)
	}

	cfg.Webhook.BaseURL = ""
	if opts := mercadoPagoOptions(cfg); opts.WebhookURL != "" {
		t.Fatalf("expected no webhook url, got %q", opts.WebhookURL)
	}
}
