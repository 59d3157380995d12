package routes

import (
	"context"
	"log"
	"strconv"

	_ "pix_checkout/docs"
	"pix_checkout/internal/adapter/http/handlers"
	"pix_checkout/internal/adapter/persistence/repository"
	"pix_checkout/internal/config"
	"pix_checkout/internal/infrastructure/database"
	"pix_checkout/internal/infrastructure/payments"
	"pix_checkout/internal/usecase"
	"pix_checkout/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathAPI            = "/api"
	PathWebhookPushin  = "/webhook/pushinpay"
	PathWebhookSyncPay = "/webhooks/syncpay"

	PathWebhookMercadoPago = "/webhooks/mercadopago"
)

// Run loads the configuration and starts the server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	router, err := NewRouter(cfg)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	log.Printf("[server] listening port=%d gateway=%s", cfg.Server.Port, cfg.Gateway.Active)
	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires gateways, use cases and handlers from cfg.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(router)

	paymentUseCase := usecase.NewPaymentUseCase(cfg.Gateway.Active, buildGateways(cfg)...)

	sinks, err := buildSinks(cfg)
	if err != nil {
		return nil, err
	}
	webhookUseCase := usecase.NewWebhookUseCase(cfg.Webhook.Secret, sinks...)

	api := router.Group(PathAPI)
	addPaymentRoutes(api,
		handlers.NewPaymentHandler(paymentUseCase),
		handlers.NewPaymentWatchHandler(paymentUseCase, cfg.Poller.Interval, cfg.Poller.RedirectDelay),
	)
	addGatewayRoutes(api, handlers.NewGatewayHandler(paymentUseCase))
	addPlanRoutes(api, handlers.NewPlanHandler(cfg.Catalog))
	addWebhookRoutes(router, handlers.NewWebhookHandler(webhookUseCase))

	return router, nil
}

// buildGateways always registers SyncPay and PushinPay so that switching to
// them works; missing credentials surface as auth errors per call.
// Mercado Pago needs an access token (or mock mode) to be registered at all.
func buildGateways(cfg config.Config) []interfaces.IPaymentGateway {
	gw := cfg.Gateway
	if gw.SyncPay.ClientID == "" || gw.SyncPay.ClientSecret == "" {
		log.Printf("[server] syncpay credentials missing; calls will fail with auth errors")
	}
	if gw.PushinPay.Token == "" {
		log.Printf("[server] pushinpay token missing; calls will fail with auth errors")
	}

	gateways := []interfaces.IPaymentGateway{
		payments.NewSyncPayGateway(payments.SyncPayOptions{
			BaseURL:           gw.SyncPay.BaseURL,
			ClientID:          gw.SyncPay.ClientID,
			ClientSecret:      gw.SyncPay.ClientSecret,
			WebhookURL:        webhookURL(cfg, PathWebhookSyncPay),
			MinAmountCents:    gw.SyncPay.MinAmountCents,
			TokenSafetyMargin: gw.SyncPay.TokenSafetyMargin,
			Timeout:           gw.Timeout,
		}),
		payments.NewPushinPayGateway(payments.PushinPayOptions{
			BaseURL:        gw.PushinPay.BaseURL,
			Token:          gw.PushinPay.Token,
			WebhookURL:     webhookURL(cfg, PathWebhookPushin),
			MinAmountCents: gw.PushinPay.MinAmountCents,
			Timeout:        gw.Timeout,
		}),
	}

	mp, err := payments.NewMercadoPagoGateway(mercadoPagoOptions(cfg))
	if err != nil {
		log.Printf("[server] mercadopago gateway not configured: %v", err)
	} else {
		gateways = append(gateways, mp)
	}
	return gateways
}

func mercadoPagoOptions(cfg config.Config) payments.MercadoPagoOptions {
	mp := cfg.Gateway.MercadoPago
	return payments.MercadoPagoOptions{
		AccessToken:    mp.AccessToken,
		WebhookURL:     webhookURL(cfg, PathWebhookMercadoPago),
		MinAmountCents: mp.MinAmountCents,
		Mock:           mp.Mock,
	}
}

// buildSinks enables the DynamoDB webhook journal when a table is configured.
func buildSinks(cfg config.Config) ([]interfaces.INotificationSink, error) {
	if cfg.Journal.TableName == "" {
		return nil, nil
	}
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.Journal)
	if err != nil {
		return nil, err
	}
	log.Printf("[server] webhook journal enabled table=%s region=%s", cfg.Journal.TableName, cfg.Journal.Region)
	return []interfaces.INotificationSink{repository.NewWebhookEventDynamoRepository(ddb, cfg.Journal.TableName)}, nil
}

func webhookURL(cfg config.Config, path string) string {
	if cfg.Webhook.BaseURL == "" {
		return ""
	}
	return cfg.Webhook.BaseURL + path
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
