package request

import (
	"strings"

	"pix_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Document string `json:"document"`
	CPF      string `json:"cpf"`
	Phone    string `json:"phone"`
}

type SplitRuleRequest struct {
	Value     int64  `json:"value"`
	AccountID string `json:"account_id"`
}

// CreatePixPaymentRequest is the body of POST /api/payments/pix/create.
//
// amount is in major units and accepts either a JSON number or a string.
type CreatePixPaymentRequest struct {
	Amount      decimal.Decimal    `json:"amount" swaggertype:"number" example:"19.90"`
	Description string             `json:"description" example:"1 mês"`
	ExternalID  string             `json:"external_id"`
	Customer    *CustomerRequest   `json:"customer"`
	SplitRules  []SplitRuleRequest `json:"split_rules"`

	// Flat customer fields fill whatever the customer object leaves empty.
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	CustomerDocument string `json:"customer_document"`
	CustomerPhone    string `json:"customer_phone"`
}

func (r CreatePixPaymentRequest) ToDomain() entities.PaymentRequest {
	req := entities.PaymentRequest{
		Amount:      r.Amount,
		Description: strings.TrimSpace(r.Description),
		ExternalID:  strings.TrimSpace(r.ExternalID),
	}
	var c CustomerRequest
	if r.Customer != nil {
		c = *r.Customer
	}
	doc := firstNonEmpty(c.Document, c.CPF, r.CustomerDocument)
	req.Customer = entities.Customer{
		Name:     firstNonEmpty(c.Name, r.CustomerName),
		Email:    firstNonEmpty(c.Email, r.CustomerEmail),
		Document: onlyDigits(doc),
		Phone:    onlyDigits(firstNonEmpty(c.Phone, r.CustomerPhone)),
	}
	for _, s := range r.SplitRules {
		req.SplitRules = append(req.SplitRules, entities.SplitRule{Value: s.Value, AccountID: strings.TrimSpace(s.AccountID)})
	}
	return req
}

// FromPaymentRequest builds the wire body sent by the checkout client.
func FromPaymentRequest(req entities.PaymentRequest) CreatePixPaymentRequest {
	out := CreatePixPaymentRequest{
		Amount:      req.Amount,
		Description: req.Description,
		ExternalID:  req.ExternalID,
	}
	if req.Customer != (entities.Customer{}) {
		out.Customer = &CustomerRequest{
			Name:     req.Customer.Name,
			Email:    req.Customer.Email,
			Document: req.Customer.Document,
			Phone:    req.Customer.Phone,
		}
	}
	for _, s := range req.SplitRules {
		out.SplitRules = append(out.SplitRules, SplitRuleRequest{Value: s.Value, AccountID: s.AccountID})
	}
	return out
}

type SwitchGatewayRequest struct {
	Gateway string `json:"gateway" binding:"required" example:"pushinpay"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
