package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newRootForTest(sub *cobra.Command) *cobra.Command {
	root := &cobra.Command{Use: "checkout"}
	root.PersistentFlags().String("api-url", defaultAPIURL, "")
	root.PersistentFlags().Duration("timeout", defaultTimeout, "")
	root.AddCommand(sub)
	return root
}

func TestLoadSettings(t *testing.T) {
	t.Run("env over defaults", func(t *testing.T) {
		t.Setenv("CHECKOUT_API_URL", "http://api.example.com/")
		t.Setenv("CHECKOUT_POLL_INTERVAL", "250ms")

		var got settings
		cmd := payCmd()
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			var err error
			got, err = loadSettings(cmd)
			return err
		}
		root := newRootForTest(cmd)
		root.SetArgs([]string{"pay", "--plan", "monthly"})
		require.NoError(t, root.Execute())

		require.Equal(t, "http://api.example.com", got.APIURL)
		require.Equal(t, 250*time.Millisecond, got.PollInterval)
		require.Equal(t, defaultRedirectDelay, got.RedirectDelay)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("CHECKOUT_POLL_INTERVAL", "250ms")

		var got settings
		cmd := payCmd()
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			var err error
			got, err = loadSettings(cmd)
			return err
		}
		root := newRootForTest(cmd)
		root.SetArgs([]string{"pay", "--plan", "monthly", "--poll-interval", "1s", "--api-url", "http://flag"})
		require.NoError(t, root.Execute())

		require.Equal(t, time.Second, got.PollInterval)
		require.Equal(t, "http://flag", got.APIURL)
	})

	t.Run("rejects zero interval", func(t *testing.T) {
		cmd := payCmd()
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			_, err := loadSettings(cmd)
			return err
		}
		root := newRootForTest(cmd)
		root.SetArgs([]string{"pay", "--plan", "monthly", "--poll-interval", "0s"})
		root.SilenceErrors, root.SilenceUsage = true, true
		require.Error(t, root.Execute())
	})
}

func TestTerminalRenderer(t *testing.T) {
	var out bytes.Buffer
	r := newTerminalRenderer(&out, "https://example.com/obrigado")

	rec := entities.PaymentRecord{ID: "tx-1", PixCode: "000201pix", Status: entities.PaymentStatusPending, Gateway: entities.GatewayPushinPay, Amount: decimal.RequireFromString("19.90")}
	r.ShowPix(rec)
	r.ShowStatus(rec)
	r.ShowStatus(rec)
	rec.Status = entities.PaymentStatusPaid
	r.ShowStatus(rec)
	r.Redirect(rec)
	r.Close()
	r.ShowStatus(entities.PaymentRecord{Status: entities.PaymentStatusExpired})

	text := out.String()
	require.Contains(t, text, "000201pix")
	require.Equal(t, 0, strings.Count(text, "Status: pending"))
	require.Equal(t, 1, strings.Count(text, "Status: paid"))
	require.Contains(t, text, "R$ 19.90")
	require.Contains(t, text, "https://example.com/obrigado")
	require.NotContains(t, text, "expired")
}

func TestPayOutcome(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, payOutcome(ctx, usecase.PollResult{State: usecase.PollStatePaid}))
	require.Error(t, payOutcome(ctx, usecase.PollResult{State: usecase.PollStateNotPaid, Record: &entities.PaymentRecord{Status: entities.PaymentStatusExpired}}))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err := payOutcome(cancelled, usecase.PollResult{State: usecase.PollStateClosed})
	require.EqualError(t, err, "checkout cancelled")
}

func TestPayCommand(t *testing.T) {
	var polls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/plans", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"plans":[{"id":"monthly","label":"1 mês","price":19.9}],"bumps":[{"id":"vip","label":"Suporte VIP","price":9.9}]}`))
	})
	mux.HandleFunc("POST /api/payments/pix/create", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"gateway":"pushinpay","data":{"id":"tx-9","pix_code":"000201pix","status":"pending","amount":29.8,"gateway":"pushinpay"}}`))
	})
	mux.HandleFunc("GET /api/payments/tx-9/status", func(w http.ResponseWriter, r *http.Request) {
		status := "pending"
		if polls.Add(1) >= 2 {
			status = "paid"
		}
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"tx-9","status":"` + status + `","amount":29.8,"gateway":"pushinpay"}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	var out bytes.Buffer
	root := newRootForTest(payCmd())
	root.SetOut(&out)
	root.SetArgs([]string{"pay", "--plan", "monthly", "--bump", "vip", "--api-url", srv.URL, "--poll-interval", "5ms", "--redirect-delay", "1ms"})

	require.NoError(t, root.Execute())
	require.Equal(t, int32(2), polls.Load())
	require.Contains(t, out.String(), "1 mês + Suporte VIP: R$ 29.80")
	require.Contains(t, out.String(), "Pagamento confirmado!")
}
