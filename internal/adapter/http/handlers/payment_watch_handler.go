package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"slices"
	"strings"
	"time"

	"pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const watchWriteWait = 10 * time.Second

var watchUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// WatchMessage is one frame of the status stream.
type WatchMessage struct {
	Type  string                          `json:"type"`
	State usecase.PollState               `json:"state,omitempty"`
	Data  *response.PaymentRecordResponse `json:"data,omitempty"`
	Error string                          `json:"error,omitempty"`
}

const (
	WatchTypeStatus   = "status"
	WatchTypeRedirect = "redirect"
	WatchTypeNotPaid  = "not_paid"
	WatchTypeError    = "error"
	WatchTypeDone     = "done"
)

// PaymentWatchHandler streams status updates over a websocket, driven by the
// same poller the checkout client uses. Closing the socket stops the poller.
type PaymentWatchHandler struct {
	usecase       usecase.IPaymentUseCase
	interval      time.Duration
	redirectDelay time.Duration
}

func NewPaymentWatchHandler(uc usecase.IPaymentUseCase, interval, redirectDelay time.Duration) *PaymentWatchHandler {
	return &PaymentWatchHandler{usecase: uc, interval: interval, redirectDelay: redirectDelay}
}

type gatewayStatusSource struct {
	usecase usecase.IPaymentUseCase
	gateway entities.GatewayTag
}

func (s gatewayStatusSource) GetStatus(ctx context.Context, id string) (*entities.PaymentRecord, error) {
	return s.usecase.GetStatusFrom(ctx, s.gateway, id)
}

// Watch godoc
// @Summary  Websocket stream of status updates until a terminal state
// @Tags     payments
// @Param    id       path   string  true   "Transaction id"
// @Param    gateway  query  string  false  "Gateway tag"
// @Router   /payments/{id}/watch [get]
func (h *PaymentWatchHandler) Watch(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	gateway := h.usecase.ActiveGateway()
	if raw := strings.TrimSpace(c.Query("gateway")); raw != "" {
		tag, ok := entities.ParseGatewayTag(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "code": "INVALID_REQUEST", "message": "Unknown gateway"})
			return
		}
		gateway = tag
	}
	if !slices.Contains(h.usecase.Gateways(), gateway) {
		log.Printf("[payment][watch] rejected id=%s gateway=%s reason=not-configured", id, gateway)
		abortWithError(c, usecase.ErrGatewayNotConfigured)
		return
	}

	conn, err := watchUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[payment][watch] upgrade failed id=%s err=%v", id, err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// The client only ever closes; any read error ends the watch.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	send := func(msg WatchMessage) {
		b, err := json.Marshal(msg)
		if err != nil {
			return
		}
		_ = conn.SetWriteDeadline(time.Now().Add(watchWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
			cancel()
		}
	}
	frame := func(kind string) func(entities.PaymentRecord) {
		return func(rec entities.PaymentRecord) {
			data := response.FromPaymentRecord(rec)
			send(WatchMessage{Type: kind, Data: &data})
		}
	}

	log.Printf("[payment][watch] start id=%s gateway=%s", id, gateway)
	poller := usecase.NewStatusPoller(gatewayStatusSource{usecase: h.usecase, gateway: gateway}, h.interval, h.redirectDelay)
	res := poller.Run(ctx, id, usecase.PollHooks{
		OnUpdate:   frame(WatchTypeStatus),
		OnRedirect: frame(WatchTypeRedirect),
		OnNotPaid:  frame(WatchTypeNotPaid),
		OnError:    func(err error) { send(WatchMessage{Type: WatchTypeError, Error: err.Error()}) },
	})
	log.Printf("[payment][watch] finished id=%s state=%s queries=%d", id, res.State, res.Queries)

	if res.State != usecase.PollStateClosed {
		send(WatchMessage{Type: WatchTypeDone, State: res.State})
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, string(res.State)), time.Now().Add(watchWriteWait))
	}
}
