package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes PIX creation, status and listing.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePixPayment godoc
// @Summary      Create a PIX charge on the active gateway
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreatePixPaymentRequest  true  "Charge"
// @Success      200   {object}  response.CreatePaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Router       /payments/pix/create [post]
func (h *PaymentHandler) CreatePixPayment(c *gin.Context) {
	var body request.CreatePixPaymentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Printf("[payment][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create start amount=%s", body.Amount.String())

	rec, err := h.usecase.CreatePayment(c.Request.Context(), body.ToDomain())
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		abortWithError(c, err)
		return
	}
	log.Printf("[payment][handler] create success id=%s gateway=%s", rec.ID, rec.Gateway)

	c.JSON(http.StatusOK, response.CreatePaymentResponse{
		Success: true,
		Gateway: string(rec.Gateway),
		Data:    response.FromPaymentRecord(rec),
	})
}

// GetPaymentStatus godoc
// @Summary      Query a payment status
// @Tags         payments
// @Produce      json
// @Param        id       path   string  true   "Transaction id"
// @Param        gateway  query  string  false  "Gateway tag (defaults to the active one)"
// @Success      200  {object}  response.PaymentStatusResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id}/status [get]
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	id := c.Param("id")

	var (
		rec *entities.PaymentRecord
		err error
	)
	if raw := strings.TrimSpace(c.Query("gateway")); raw != "" {
		tag, ok := entities.ParseGatewayTag(raw)
		if !ok {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Unknown gateway", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		rec, err = h.usecase.GetStatusFrom(c.Request.Context(), tag, id)
	} else {
		rec, err = h.usecase.GetStatus(c.Request.Context(), id)
	}
	if err != nil {
		log.Printf("[payment][handler] status failed id=%s err=%v", id, err)
		abortWithError(c, err)
		return
	}
	if rec == nil {
		log.Printf("[payment][handler] status not-found id=%s", id)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PaymentStatusResponse{Success: true, Data: response.FromPaymentRecord(*rec)})
}

// ListPayments godoc
// @Summary      List payments on the active gateway
// @Tags         payments
// @Produce      json
// @Param        status       query  string  false  "Upstream status filter"
// @Param        external_id  query  string  false  "External reference"
// @Param        limit        query  int     false  "Page size"
// @Param        offset       query  int     false  "Page offset"
// @Success      200  {object}  response.PaymentListResponse
// @Failure      501  {object}  pkg.HTTPError
// @Router       /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	filters := entities.PaymentFilters{
		Status:     strings.TrimSpace(c.Query("status")),
		ExternalID: strings.TrimSpace(c.Query("external_id")),
	}
	var err error
	if filters.Limit, err = queryInt(c, "limit"); err != nil {
		abortWithError(c, entities.NewValidationError("limit", "must be an integer"))
		return
	}
	if filters.Offset, err = queryInt(c, "offset"); err != nil {
		abortWithError(c, entities.NewValidationError("offset", "must be an integer"))
		return
	}

	recs, err := h.usecase.ListPayments(c.Request.Context(), filters)
	if err != nil {
		log.Printf("[payment][handler] list failed err=%v", err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(h.usecase.ActiveGateway(), recs))
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
