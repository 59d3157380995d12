package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pix_checkout/internal/adapter/http/handlers/mocks"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.POST("/api/payments/pix/create", h.CreatePixPayment)
	r.GET("/api/payments/:id/status", h.GetPaymentStatus)
	r.GET("/api/payments", h.ListPayments)
	return r, uc
}

func TestPaymentHandler_CreatePixPayment(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/api/payments/pix/create", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", entities.NewValidationError("amount", "must be greater than zero"), http.StatusBadRequest},
		{"upstream", &entities.UpstreamError{Gateway: entities.GatewayPushinPay, Operation: "cash-in", StatusCode: 500}, http.StatusBadGateway},
		{"auth", &entities.AuthError{Gateway: entities.GatewaySyncPay, Err: errors.New("401")}, http.StatusBadGateway},
		{"not configured", usecase.ErrGatewayNotConfigured, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newPaymentRouter(t)
			uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/api/payments/pix/create", bytes.NewBufferString(`{"amount":19.90}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d body=%s", tc.want, w.Code, w.Body.String())
			}
			var body map[string]any
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["success"] != false {
				t.Fatalf("expected success=false, got %s", w.Body.String())
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		now := time.Now().UTC()
		uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
			if !req.Amount.Equal(decimal.RequireFromString("19.90")) || req.Description != "1 mês" {
				t.Fatalf("unexpected request %+v", req)
			}
			return entities.PaymentRecord{
				ID: "pp-1", Status: entities.PaymentStatusPending, Amount: req.Amount,
				PixCode: "000201", Gateway: entities.GatewayPushinPay, CreatedAt: now,
			}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/api/payments/pix/create", bytes.NewBufferString(`{"amount":"19.90","description":"1 mês"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Success bool   `json:"success"`
			Gateway string `json:"gateway"`
			Data    struct {
				ID      string  `json:"id"`
				PixCode string  `json:"pix_code"`
				Status  string  `json:"status"`
				Amount  float64 `json:"amount"`
			} `json:"data"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if !body.Success || body.Gateway != "pushinpay" || body.Data.ID != "pp-1" || body.Data.Status != "pending" || body.Data.Amount != 19.9 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentHandler_CreatePixPayment_FlatCustomer(t *testing.T) {
	r, uc := newPaymentRouter(t)
	want := entities.Customer{Name: "Ana Souza", Email: "ana@example.com", Document: "12345678900", Phone: "11999999999"}
	uc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PaymentRequest) (entities.PaymentRecord, error) {
		if req.Customer != want {
			t.Errorf("unexpected customer %+v", req.Customer)
		}
		return entities.PaymentRecord{ID: "pp-2", Status: entities.PaymentStatusPending, Amount: req.Amount, Gateway: entities.GatewayPushinPay}, nil
	})

	body := `{"amount":19.90,"customer_name":"Ana Souza","customer_email":"ana@example.com","customer_document":"123.456.789-00","customer_phone":"(11) 99999-9999"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payments/pix/create", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestPaymentHandler_GetPaymentStatus(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetStatus(gomock.Any(), "pp-404").Return(nil, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments/pp-404/status", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("named gateway", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().GetStatusFrom(gomock.Any(), entities.GatewaySyncPay, "sp-1").Return(&entities.PaymentRecord{ID: "sp-1", Status: entities.PaymentStatusPaid, Gateway: entities.GatewaySyncPay}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments/sp-1/status?gateway=SyncPay", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		data := body["data"].(map[string]any)
		if data["status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unknown gateway", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments/x/status?gateway=stripe", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	t.Run("unsupported", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		uc.EXPECT().ListPayments(gomock.Any(), gomock.Any()).Return(nil, &entities.UnsupportedOperationError{Gateway: entities.GatewaySyncPay, Operation: "list payments"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments", nil))
		if w.Code != http.StatusNotImplemented {
			t.Fatalf("expected 501, got %d", w.Code)
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments?limit=ten", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with filters", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		want := entities.PaymentFilters{Status: "approved", ExternalID: "ext-1", Limit: 10, Offset: 20}
		uc.EXPECT().ListPayments(gomock.Any(), want).Return([]entities.PaymentRecord{{ID: "1"}, {ID: "2"}}, nil)
		uc.EXPECT().ActiveGateway().Return(entities.GatewayMercadoPago)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments?status=approved&external_id=ext-1&limit=10&offset=20", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["count"] != float64(2) || body["gateway"] != "mercadopago" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
