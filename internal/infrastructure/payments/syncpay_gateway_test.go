package payments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pix_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newSyncPayTestServer(t *testing.T, authCalls *int32, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc(syncPayAuthPath, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(authCalls, 1)
		var body syncPayAuthRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.ClientID != "cid" || body.ClientSecret != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
			return
		}
		_, _ = w.Write([]byte(`{"access_token":"tok-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/", handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestSyncPay(baseURL string) *SyncPayGateway {
	return NewSyncPayGateway(SyncPayOptions{
		BaseURL:           baseURL,
		ClientID:          "cid",
		ClientSecret:      "secret",
		WebhookURL:        "https://checkout.example.com/webhooks/syncpay",
		MinAmountCents:    100,
		TokenSafetyMargin: 30 * time.Second,
		Timeout:           5 * time.Second,
	})
}

func TestSyncPayGateway_CreatePayment(t *testing.T) {
	var authCalls int32
	srv := newSyncPayTestServer(t, &authCalls, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != syncPayCashInPath || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "Bearer tok-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["amount"] != 19.9 || body["webhook_url"] == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		client := body["client"].(map[string]any)
		if client["cpf"] != "12345678900" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"message":"ok","pix_code":"000201PIX","identifier":"sp-1"}`))
	})
	g := newTestSyncPay(srv.URL)

	req := entities.PaymentRequest{
		Amount:      decimal.RequireFromString("19.90"),
		Description: "1 mês",
		Customer:    entities.Customer{Name: "Ana", Email: "ana@example.com", Document: "12345678900", Phone: "11999999999"},
	}
	for i := 0; i < 2; i++ {
		rec, err := g.CreatePayment(context.Background(), req)
		require.NoError(t, err)
		require.Equal(t, "sp-1", rec.ID)
		require.Equal(t, "000201PIX", rec.PixCode)
		require.Equal(t, entities.PaymentStatusPending, rec.Status)
		require.Equal(t, entities.GatewaySyncPay, rec.Gateway)
		require.True(t, rec.Amount.Equal(req.Amount))
	}
	require.Equal(t, int32(1), atomic.LoadInt32(&authCalls), "token must be reused")

	g.InvalidateToken()
	_, err := g.CreatePayment(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(&authCalls))
}

func TestSyncPayGateway_CreatePayment_Errors(t *testing.T) {
	t.Run("non-positive amount never reaches the network", func(t *testing.T) {
		var authCalls int32
		srv := newSyncPayTestServer(t, &authCalls, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected call %s", r.URL.Path)
		})
		g := newTestSyncPay(srv.URL)

		for _, amount := range []string{"0", "-1", "0.99"} {
			_, err := g.CreatePayment(context.Background(), entities.PaymentRequest{Amount: decimal.RequireFromString(amount)})
			var vErr *entities.ValidationError
			require.ErrorAs(t, err, &vErr, amount)
		}
		require.Equal(t, int32(0), atomic.LoadInt32(&authCalls))
	})

	t.Run("auth failure", func(t *testing.T) {
		var authCalls int32
		srv := newSyncPayTestServer(t, &authCalls, func(w http.ResponseWriter, r *http.Request) {})
		g := newTestSyncPay(srv.URL)
		g.opts.ClientSecret = "wrong"

		_, err := g.CreatePayment(context.Background(), entities.PaymentRequest{Amount: decimal.NewFromInt(10)})
		var authErr *entities.AuthError
		require.ErrorAs(t, err, &authErr)
		var upErr *entities.UpstreamError
		require.ErrorAs(t, err, &upErr)
		require.Equal(t, http.StatusUnauthorized, upErr.StatusCode)
	})

	t.Run("upstream error carries status and body", func(t *testing.T) {
		var authCalls int32
		srv := newSyncPayTestServer(t, &authCalls, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"cpf inválido"}`))
		})
		g := newTestSyncPay(srv.URL)

		_, err := g.CreatePayment(context.Background(), entities.PaymentRequest{Amount: decimal.NewFromInt(10)})
		var upErr *entities.UpstreamError
		require.ErrorAs(t, err, &upErr)
		require.Equal(t, http.StatusUnprocessableEntity, upErr.StatusCode)
		require.Contains(t, upErr.Body, "cpf inválido")
	})

	t.Run("401 is not retried", func(t *testing.T) {
		var authCalls, cashIns int32
		srv := newSyncPayTestServer(t, &authCalls, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&cashIns, 1)
			w.WriteHeader(http.StatusUnauthorized)
		})
		g := newTestSyncPay(srv.URL)

		_, err := g.CreatePayment(context.Background(), entities.PaymentRequest{Amount: decimal.NewFromInt(10)})
		require.Error(t, err)
		require.Equal(t, int32(1), atomic.LoadInt32(&cashIns))
		require.Equal(t, int32(1), atomic.LoadInt32(&authCalls))
	})
}

func TestSyncPayGateway_GetStatus(t *testing.T) {
	var authCalls int32
	srv := newSyncPayTestServer(t, &authCalls, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case syncPayTransactionPath + "sp-1":
			_, _ = w.Write([]byte(`{"data":{"reference_id":"sp-1","status":"completed","amount":19.9,"pix_code":"000201PIX","created_at":"2024-05-01T10:00:00Z"}}`))
		case syncPayTransactionPath + "sp-500":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	g := newTestSyncPay(srv.URL)

	rec, err := g.GetStatus(context.Background(), "sp-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, entities.PaymentStatusPaid, rec.Status)
	require.Equal(t, "completed", rec.RawStatus)
	require.True(t, rec.Amount.Equal(decimal.RequireFromString("19.90")))
	require.Equal(t, 2024, rec.CreatedAt.Year())

	rec, err = g.GetStatus(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, rec)

	_, err = g.GetStatus(context.Background(), "sp-500")
	var upErr *entities.UpstreamError
	require.True(t, errors.As(err, &upErr))
}

func TestSyncPayGateway_ListPaymentsUnsupported(t *testing.T) {
	g := newTestSyncPay("http://127.0.0.1:0")
	_, err := g.ListPayments(context.Background(), entities.PaymentFilters{})
	var unsupported *entities.UnsupportedOperationError
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, entities.GatewaySyncPay, unsupported.Gateway)
}
