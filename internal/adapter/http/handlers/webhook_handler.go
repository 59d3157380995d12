package handlers

import (
	"log"
	"net/http"

	"pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderWebhookSignature = "X-Webhook-Signature"
	HeaderSignature        = "X-Signature"
)

// WebhookHandler receives gateway notifications. Anything with a
// transaction id is acknowledged with 200, whatever its status.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// PushinPay godoc
// @Summary  PushinPay webhook (JSON or form-encoded)
// @Tags     webhooks
// @Accept   json
// @Produce  json
// @Success  200  {object}  response.WebhookAckResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  401  {object}  pkg.HTTPError
// @Router   /webhook/pushinpay [post]
func (h *WebhookHandler) PushinPay(c *gin.Context) {
	body, ok := h.readVerified(c)
	if !ok {
		return
	}
	n, err := request.ParsePushinPayWebhook(c.ContentType(), body)
	h.dispatch(c, n, err)
}

// SyncPay returns the handler for one SyncPay webhook route. flow and action
// are empty for the generic /webhooks/syncpay route.
//
// @Summary  SyncPay webhook
// @Tags     webhooks
// @Accept   json
// @Produce  json
// @Success  200  {object}  response.WebhookAckResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /webhooks/syncpay [post]
func (h *WebhookHandler) SyncPay(flow, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, ok := h.readVerified(c)
		if !ok {
			return
		}
		n, err := request.ParseSyncPayWebhook(flow, action, body)
		h.dispatch(c, n, err)
	}
}

// MercadoPago godoc
// @Summary  Mercado Pago webhook (JSON body or IPN query parameters)
// @Tags     webhooks
// @Accept   json
// @Produce  json
// @Param    data.id  query  string  false  "Payment id (IPN)"
// @Param    type     query  string  false  "Notification topic (IPN)"
// @Success  200  {object}  response.WebhookAckResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /webhooks/mercadopago [post]
func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	// Mercado Pago signs with its own x-signature manifest, not the shared
	// body HMAC, so the notification is journaled without that check.
	body, ok := readBody(c)
	if !ok {
		return
	}
	n, err := request.ParseMercadoPagoWebhook(c.Request.URL.Query(), body)
	h.dispatch(c, n, err)
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] read body failed path=%s err=%v", c.FullPath(), err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return nil, false
	}
	return body, true
}

func (h *WebhookHandler) readVerified(c *gin.Context) ([]byte, bool) {
	body, ok := readBody(c)
	if !ok {
		return nil, false
	}

	signature := c.GetHeader(HeaderWebhookSignature)
	if signature == "" {
		signature = c.GetHeader(HeaderSignature)
	}
	if err := h.usecase.VerifySignature(body, signature); err != nil {
		log.Printf("[webhook][handler] signature rejected path=%s err=%v", c.FullPath(), err)
		abortWithError(c, err)
		return nil, false
	}
	return body, true
}

func (h *WebhookHandler) dispatch(c *gin.Context, n entities.WebhookNotification, parseErr error) {
	if parseErr != nil {
		log.Printf("[webhook][handler] unparsable body path=%s err=%v", c.FullPath(), parseErr)
		abortWithError(c, parseErr)
		return
	}

	ev, err := h.usecase.Handle(c.Request.Context(), n)
	if err != nil {
		log.Printf("[webhook][handler] rejected path=%s err=%v", c.FullPath(), err)
		abortWithError(c, err)
		return
	}
	log.Printf("[webhook][handler] received path=%s id=%s kind=%s", c.FullPath(), n.TransactionID, ev.Kind)
	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
}
