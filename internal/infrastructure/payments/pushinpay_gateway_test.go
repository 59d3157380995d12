package payments

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pix_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestPushinPay(t *testing.T, calls *int32, handler http.HandlerFunc) *PushinPayGateway {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if r.Header.Get("Authorization") != "Bearer pp-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewPushinPayGateway(PushinPayOptions{
		BaseURL:        srv.URL,
		Token:          "pp-token",
		WebhookURL:     "https://checkout.example.com/webhook/pushinpay",
		MinAmountCents: 50,
		Timeout:        5 * time.Second,
	})
}

func echoCashIn(w http.ResponseWriter, r *http.Request) {
	var body pushinPayCashInRequest
	_ = json.NewDecoder(r.Body).Decode(&body)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":             "pp-1",
		"qr_code":        "000201PUSHIN",
		"qr_code_base64": "data:image/png;base64,AAAA",
		"status":         "created",
		"value":          body.Value,
	})
}

func TestPushinPayGateway_MinimumAmount(t *testing.T) {
	var calls int32
	g := newTestPushinPay(t, &calls, echoCashIn)

	_, err := g.CreatePayment(context.Background(), entities.PaymentRequest{Amount: decimal.RequireFromString("0.49")})
	var vErr *entities.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Contains(t, vErr.Message, "0.50")
	require.Equal(t, int32(0), atomic.LoadInt32(&calls))

	rec, err := g.CreatePayment(context.Background(), entities.PaymentRequest{Amount: decimal.RequireFromString("0.50")})
	require.NoError(t, err)
	require.Equal(t, "pp-1", rec.ID)
	require.True(t, rec.Amount.Equal(decimal.RequireFromString("0.50")))
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, err = g.CreatePayment(context.Background(), entities.PaymentRequest{Amount: decimal.Zero})
	require.ErrorAs(t, err, &vErr)
}

func TestPushinPayGateway_SplitRules(t *testing.T) {
	var calls int32
	var sent pushinPayCashInRequest
	g := newTestPushinPay(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&sent)
		_, _ = w.Write([]byte(`{"id":"pp-2","qr_code":"000201","status":"created","value":1990}`))
	})

	cases := []struct {
		name  string
		rules []entities.SplitRule
	}{
		{"sum above total", []entities.SplitRule{{Value: 1000, AccountID: "a"}, {Value: 991, AccountID: "b"}}},
		{"zero value", []entities.SplitRule{{Value: 0, AccountID: "a"}}},
		{"missing account", []entities.SplitRule{{Value: 10, AccountID: " "}}},
		{"values that overflow the sum", []entities.SplitRule{{Value: math.MaxInt64/2 + 1, AccountID: "a"}, {Value: math.MaxInt64/2 + 1, AccountID: "b"}}},
		{"single value above total", []entities.SplitRule{{Value: math.MaxInt64, AccountID: "a"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.CreatePayment(context.Background(), entities.PaymentRequest{Amount: decimal.RequireFromString("19.90"), SplitRules: tc.rules})
			var vErr *entities.ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
	require.Equal(t, int32(0), atomic.LoadInt32(&calls))

	rules := []entities.SplitRule{{Value: 1000, AccountID: "a"}, {Value: 990, AccountID: "b"}}
	rec, err := g.CreatePayment(context.Background(), entities.PaymentRequest{Amount: decimal.RequireFromString("19.90"), SplitRules: rules})
	require.NoError(t, err)
	require.Equal(t, entities.PaymentStatusPending, rec.Status)
	require.True(t, rec.Amount.Equal(decimal.RequireFromString("19.90")))
	require.Equal(t, int64(1990), sent.Value)
	require.Len(t, sent.SplitRules, 2)
	require.Equal(t, "https://checkout.example.com/webhook/pushinpay", sent.WebhookURL)
}

func TestPushinPayGateway_GetStatus(t *testing.T) {
	var calls int32
	g := newTestPushinPay(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case pushinPayTransactionPath + "pp-1":
			_, _ = w.Write([]byte(`{"id":"pp-1","status":"paid","value":1990,"qr_code":"000201"}`))
		case pushinPayTransactionPath + "empty":
			_, _ = w.Write([]byte(`[]`))
		case pushinPayTransactionPath + "bad":
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`upstream down`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	rec, err := g.GetStatus(context.Background(), "pp-1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, entities.PaymentStatusPaid, rec.Status)
	require.True(t, rec.Status.IsTerminal())
	require.True(t, rec.Amount.Equal(decimal.RequireFromString("19.90")))

	for _, id := range []string{"empty", "missing"} {
		rec, err = g.GetStatus(context.Background(), id)
		require.NoError(t, err, id)
		require.Nil(t, rec, id)
	}

	_, err = g.GetStatus(context.Background(), "bad")
	var upErr *entities.UpstreamError
	require.ErrorAs(t, err, &upErr)
	require.Equal(t, http.StatusBadGateway, upErr.StatusCode)
	require.Equal(t, "upstream down", upErr.Body)
}

func TestPushinPayGateway_TransportError(t *testing.T) {
	g := NewPushinPayGateway(PushinPayOptions{BaseURL: "http://127.0.0.1:1", Token: "pp-token", MinAmountCents: 50, Timeout: time.Second})
	_, err := g.CreatePayment(context.Background(), entities.PaymentRequest{Amount: decimal.NewFromInt(1)})
	var upErr *entities.UpstreamError
	require.ErrorAs(t, err, &upErr)
	require.Equal(t, 0, upErr.StatusCode)
	require.Error(t, upErr.Err)

	_, err = g.ListPayments(context.Background(), entities.PaymentFilters{})
	var unsupported *entities.UnsupportedOperationError
	require.ErrorAs(t, err, &unsupported)
}
