package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"
)

// Config is resolved once at startup and handed to the components that need it.
type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Webhook WebhookConfig
	Poller  PollerConfig
	Journal JournalConfig
	Catalog entities.Catalog
}

type ServerConfig struct {
	Port int
}

type GatewayConfig struct {
	Active      entities.GatewayTag
	Timeout     time.Duration
	SyncPay     SyncPayConfig
	PushinPay   PushinPayConfig
	MercadoPago MercadoPagoConfig
}

type SyncPayConfig struct {
	BaseURL           string
	ClientID          string
	ClientSecret      string
	MinAmountCents    int64
	TokenSafetyMargin time.Duration
}

type PushinPayConfig struct {
	BaseURL        string
	Token          string
	MinAmountCents int64
}

type MercadoPagoConfig struct {
	AccessToken    string
	MinAmountCents int64
	Mock           bool
}

type WebhookConfig struct {
	BaseURL string
	Secret  string
}

type PollerConfig struct {
	Interval      time.Duration
	RedirectDelay time.Duration
}

// JournalConfig enables the DynamoDB webhook journal when TableName is set.
type JournalConfig struct {
	TableName string
	Region    string
	Endpoint  string
}

// Load reads the configuration from the environment.
//
// Supported env vars (defaults in parentheses):
//   - PORT (8080)
//   - PAYMENT_GATEWAY (pushinpay): syncpay | pushinpay | mercadopago
//   - GATEWAY_TIMEOUT (30s)
//   - SYNCPAY_BASE_URL, SYNCPAY_CLIENT_ID, SYNCPAY_CLIENT_SECRET,
//     SYNCPAY_MIN_AMOUNT_CENTS (100), SYNCPAY_TOKEN_SAFETY_MARGIN (30s)
//   - PUSHINPAY_BASE_URL, PUSHINPAY_TOKEN, PUSHINPAY_MIN_AMOUNT_CENTS (50)
//   - MERCADOPAGO_ACCESS_TOKEN, MERCADOPAGO_MIN_AMOUNT_CENTS (1), PAYMENT_GATEWAY_MOCK
//   - WEBHOOK_BASE_URL, WEBHOOK_SECRET
//   - POLL_INTERVAL (5s), POLL_REDIRECT_DELAY (2s)
//   - PLANS_FILE, PLAN_<ID>_PRICE, PLAN_<ID>_LABEL
//   - WEBHOOK_EVENTS_TABLE, AWS_REGION (us-east-1), DYNAMODB_ENDPOINT
func Load() (Config, error) {
	var cfg Config
	var err error

	if cfg.Server.Port, err = getenvInt("PORT", 8080); err != nil {
		return Config{}, err
	}

	active, ok := entities.ParseGatewayTag(getenvDefault("PAYMENT_GATEWAY", string(entities.GatewayPushinPay)))
	if !ok {
		return Config{}, fmt.Errorf("invalid PAYMENT_GATEWAY %q", os.Getenv("PAYMENT_GATEWAY"))
	}
	cfg.Gateway.Active = active
	if cfg.Gateway.Timeout, err = getenvDuration("GATEWAY_TIMEOUT", 30*time.Second); err != nil {
		return Config{}, err
	}

	cfg.Gateway.SyncPay = SyncPayConfig{
		BaseURL:      getenvDefault("SYNCPAY_BASE_URL", "https://api.syncpayments.com.br"),
		ClientID:     os.Getenv("SYNCPAY_CLIENT_ID"),
		ClientSecret: os.Getenv("SYNCPAY_CLIENT_SECRET"),
	}
	if cfg.Gateway.SyncPay.MinAmountCents, err = getenvInt64("SYNCPAY_MIN_AMOUNT_CENTS", 100); err != nil {
		return Config{}, err
	}
	if cfg.Gateway.SyncPay.TokenSafetyMargin, err = getenvDuration("SYNCPAY_TOKEN_SAFETY_MARGIN", 30*time.Second); err != nil {
		return Config{}, err
	}

	cfg.Gateway.PushinPay = PushinPayConfig{
		BaseURL: getenvDefault("PUSHINPAY_BASE_URL", "https://api.pushinpay.com.br"),
		Token:   os.Getenv("PUSHINPAY_TOKEN"),
	}
	if cfg.Gateway.PushinPay.MinAmountCents, err = getenvInt64("PUSHINPAY_MIN_AMOUNT_CENTS", 50); err != nil {
		return Config{}, err
	}

	cfg.Gateway.MercadoPago = MercadoPagoConfig{
		AccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		Mock:        isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
	}
	if cfg.Gateway.MercadoPago.MinAmountCents, err = getenvInt64("MERCADOPAGO_MIN_AMOUNT_CENTS", 1); err != nil {
		return Config{}, err
	}

	cfg.Webhook = WebhookConfig{
		BaseURL: strings.TrimRight(os.Getenv("WEBHOOK_BASE_URL"), "/"),
		Secret:  os.Getenv("WEBHOOK_SECRET"),
	}

	if cfg.Poller.Interval, err = getenvDuration("POLL_INTERVAL", 5*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.Poller.RedirectDelay, err = getenvDuration("POLL_REDIRECT_DELAY", 2*time.Second); err != nil {
		return Config{}, err
	}

	cfg.Journal = JournalConfig{
		TableName: os.Getenv("WEBHOOK_EVENTS_TABLE"),
		Region:    getenvDefault("AWS_REGION", "us-east-1"),
		Endpoint:  os.Getenv("DYNAMODB_ENDPOINT"),
	}

	if cfg.Catalog, err = LoadCatalog(os.Getenv("PLANS_FILE")); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getenvInt64(key string, def int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, v)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
