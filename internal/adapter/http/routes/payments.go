package routes

import (
	"pix_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments          = "/payments"
	PathTransactionStatus = "/transaction-status"
	PathGateways          = "/gateways"
	PathPlans             = "/plans"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, watchHandler *handlers.PaymentWatchHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/pix/create", paymentHandler.CreatePixPayment)
		payments.GET("", paymentHandler.ListPayments)
		payments.GET("/:id/status", paymentHandler.GetPaymentStatus)
		payments.GET("/:id/watch", watchHandler.Watch)
	}

	// Legacy alias used by older checkout pages.
	rg.GET(PathTransactionStatus+"/:id", paymentHandler.GetPaymentStatus)
}

func addGatewayRoutes(rg *gin.RouterGroup, gatewayHandler *handlers.GatewayHandler) {
	gateways := rg.Group(PathGateways)
	{
		gateways.GET("", gatewayHandler.ListGateways)
		gateways.GET("/current", gatewayHandler.CurrentGateway)
		gateways.POST("/switch", gatewayHandler.SwitchGateway)
	}
}

func addPlanRoutes(rg *gin.RouterGroup, planHandler *handlers.PlanHandler) {
	rg.GET(PathPlans, planHandler.ListPlans)
}
