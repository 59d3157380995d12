package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GatewayTag identifies the upstream payment provider that owns a transaction.
type GatewayTag string

const (
	GatewaySyncPay     GatewayTag = "syncpay"
	GatewayPushinPay   GatewayTag = "pushinpay"
	GatewayMercadoPago GatewayTag = "mercadopago"
)

// ParseGatewayTag accepts the tag case-insensitively.
func ParseGatewayTag(raw string) (GatewayTag, bool) {
	switch GatewayTag(strings.ToLower(strings.TrimSpace(raw))) {
	case GatewaySyncPay:
		return GatewaySyncPay, true
	case GatewayPushinPay:
		return GatewayPushinPay, true
	case GatewayMercadoPago:
		return GatewayMercadoPago, true
	}
	return "", false
}

type Customer struct {
	Name     string
	Email    string
	Document string
	Phone    string
}

// SplitRule routes Value (minor units) of a transaction to AccountID.
type SplitRule struct {
	Value     int64  `json:"value"`
	AccountID string `json:"account_id"`
}

// PaymentRequest is the gateway-agnostic PIX charge request.
//
// Amount is expressed in major units (e.g. 19.90 BRL).
type PaymentRequest struct {
	Amount      decimal.Decimal
	Description string
	Customer    Customer
	ExternalID  string
	SplitRules  []SplitRule
}

// AmountCents converts Amount to minor units, rounding to the nearest cent.
func (r PaymentRequest) AmountCents() int64 {
	return ToCents(r.Amount)
}

func ToCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// PaymentRecord is the normalized view of an upstream transaction.
//
// Everything but Status/RawStatus is fixed once the gateway answers the create call.
type PaymentRecord struct {
	ID        string
	Status    PaymentStatus
	RawStatus string
	Amount    decimal.Decimal
	PixCode   string
	QRCode    string
	Gateway   GatewayTag
	CreatedAt time.Time
}

type PaymentFilters struct {
	Status     string
	ExternalID string
	Limit      int
	Offset     int
}
