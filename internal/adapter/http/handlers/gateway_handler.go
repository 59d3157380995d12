package handlers

import (
	"log"
	"net/http"

	"pix_checkout/internal/adapter/http/dto/request"
	"pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
)

type GatewayHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewGatewayHandler(uc usecase.IPaymentUseCase) *GatewayHandler {
	return &GatewayHandler{usecase: uc}
}

// ListGateways godoc
// @Summary  Configured gateways and the active one
// @Tags     gateways
// @Produce  json
// @Success  200  {object}  response.GatewaysResponse
// @Router   /gateways [get]
func (h *GatewayHandler) ListGateways(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromGateways(h.usecase.ActiveGateway(), h.usecase.Gateways()))
}

// CurrentGateway godoc
// @Summary  Active gateway
// @Tags     gateways
// @Produce  json
// @Success  200  {object}  map[string]interface{}
// @Router   /gateways/current [get]
func (h *GatewayHandler) CurrentGateway(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "gateway": string(h.usecase.ActiveGateway())})
}

// SwitchGateway godoc
// @Summary  Change the active gateway
// @Tags     gateways
// @Accept   json
// @Produce  json
// @Param    body  body      request.SwitchGatewayRequest  true  "Target gateway"
// @Success  200   {object}  map[string]interface{}
// @Failure  400   {object}  pkg.HTTPError
// @Router   /gateways/switch [post]
func (h *GatewayHandler) SwitchGateway(c *gin.Context) {
	var body request.SwitchGatewayRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	previous := h.usecase.ActiveGateway()
	tag, err := h.usecase.SwitchGateway(body.Gateway)
	if err != nil {
		log.Printf("[payment][handler] switch failed target=%s err=%v", body.Gateway, err)
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "previous": string(previous), "gateway": string(tag)})
}
