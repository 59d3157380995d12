package routes

import (
	"pix_checkout/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

var (
	syncPayFlows   = []string{"cashin", "cashout"}
	syncPayActions = []string{"create", "update"}
)

func addWebhookRoutes(router *gin.Engine, webhookHandler *handlers.WebhookHandler) {
	router.POST(PathWebhookPushin, webhookHandler.PushinPay)
	router.POST(PathWebhookSyncPay, webhookHandler.SyncPay("", ""))
	router.POST(PathWebhookMercadoPago, webhookHandler.MercadoPago)

	syncpay := router.Group(PathWebhookSyncPay)
	for _, flow := range syncPayFlows {
		for _, action := range syncPayActions {
			syncpay.POST("/"+flow+"/"+action, webhookHandler.SyncPay(flow, action))
		}
	}
}
