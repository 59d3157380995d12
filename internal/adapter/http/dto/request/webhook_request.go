package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"time"

	"pix_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidWebhookBody = errors.New("invalid webhook body")

// looseString accepts any JSON scalar. Objects and arrays decode as empty
// so one odd field never rejects the whole notification.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	switch b[0] {
	case '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
	case '{', '[':
		*s = ""
	default:
		*s = looseString(b)
	}
	return nil
}

// looseAmount accepts a number or a numeric string ("10.00", "R$ 10,00").
// Anything else decodes as zero.
type looseAmount struct {
	decimal.Decimal
}

func (a *looseAmount) UnmarshalJSON(b []byte) error {
	var raw looseString
	if err := raw.UnmarshalJSON(b); err != nil {
		return nil
	}
	a.Decimal = parseLooseAmount(string(raw))
	return nil
}

func parseLooseAmount(raw string) decimal.Decimal {
	v := strings.TrimSpace(raw)
	v = strings.TrimSpace(strings.TrimPrefix(v, "R$"))
	if strings.Contains(v, ",") {
		v = strings.ReplaceAll(v, ".", "")
		v = strings.ReplaceAll(v, ",", ".")
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

type pushinPayWebhookBody struct {
	ID     looseString `json:"id"`
	Status looseString `json:"status"`
	Event  looseString `json:"event"`
	Value  looseAmount `json:"value"`
}

// ParsePushinPayWebhook accepts the JSON body or the form-encoded variant
// ({id,status,value}). value is in cents.
func ParsePushinPayWebhook(contentType string, body []byte) (entities.WebhookNotification, error) {
	var parsed pushinPayWebhookBody
	raw := json.RawMessage(bytes.TrimSpace(body))

	if isFormEncoded(contentType, raw) {
		form, err := url.ParseQuery(string(raw))
		if err != nil {
			return entities.WebhookNotification{}, ErrInvalidWebhookBody
		}
		flat := make(map[string]string, len(form))
		for k := range form {
			flat[k] = form.Get(k)
		}
		parsed.ID = looseString(flat["id"])
		parsed.Status = looseString(flat["status"])
		parsed.Event = looseString(flat["event"])
		parsed.Value.Decimal = parseLooseAmount(flat["value"])
		if raw, err = json.Marshal(flat); err != nil {
			return entities.WebhookNotification{}, ErrInvalidWebhookBody
		}
	} else if err := json.Unmarshal(raw, &parsed); err != nil {
		return entities.WebhookNotification{}, ErrInvalidWebhookBody
	}

	return entities.WebhookNotification{
		Gateway:       entities.GatewayPushinPay,
		TransactionID: strings.TrimSpace(string(parsed.ID)),
		Event:         string(parsed.Event),
		Status:        string(parsed.Status),
		Amount:        parsed.Value.Shift(-2),
		Raw:           raw,
		ReceivedAt:    time.Now().UTC(),
	}, nil
}

func isFormEncoded(contentType string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "application/x-www-form-urlencoded") {
		return true
	}
	return len(body) > 0 && body[0] != '{' && body[0] != '[' && bytes.Contains(body, []byte("="))
}

type syncPayWebhookFields struct {
	ID          looseString `json:"id"`
	Identifier  looseString `json:"identifier"`
	ReferenceID looseString `json:"reference_id"`
	Status      looseString `json:"status"`
	Amount      looseAmount `json:"amount"`
}

func (f syncPayWebhookFields) transactionID() string {
	for _, v := range []looseString{f.ID, f.Identifier, f.ReferenceID} {
		if s := strings.TrimSpace(string(v)); s != "" {
			return s
		}
	}
	return ""
}

type syncPayWebhookBody struct {
	syncPayWebhookFields
	Event looseString     `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ParseSyncPayWebhook reads {data:{id,status,amount}} or the same fields at the
// top level. flow and action come from the route (cashin|cashout, create|update).
func ParseSyncPayWebhook(flow, action string, body []byte) (entities.WebhookNotification, error) {
	raw := json.RawMessage(bytes.TrimSpace(body))
	var parsed syncPayWebhookBody
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return entities.WebhookNotification{}, ErrInvalidWebhookBody
	}

	fields := parsed.syncPayWebhookFields
	var data syncPayWebhookFields
	if len(parsed.Data) > 0 && json.Unmarshal(parsed.Data, &data) == nil && data.transactionID() != "" {
		fields = data
	}

	event := string(parsed.Event)
	if event == "" && flow != "" && action != "" {
		event = flow + "." + action
	}
	return entities.WebhookNotification{
		Gateway:       entities.GatewaySyncPay,
		Flow:          flow,
		Action:        action,
		TransactionID: fields.transactionID(),
		Event:         event,
		Status:        string(fields.Status),
		Amount:        fields.Amount.Decimal,
		Raw:           raw,
		ReceivedAt:    time.Now().UTC(),
	}, nil
}

type mercadoPagoWebhookBody struct {
	ID     looseString `json:"id"`
	Type   looseString `json:"type"`
	Topic  looseString `json:"topic"`
	Action looseString `json:"action"`
	Data   struct {
		ID looseString `json:"id"`
	} `json:"data"`
}

// ParseMercadoPagoWebhook reads a Mercado Pago notification. The payment id
// comes from data.id in the body, or from the data.id / id query parameters
// used by the IPN-style calls, which may arrive with an empty body.
func ParseMercadoPagoWebhook(query url.Values, body []byte) (entities.WebhookNotification, error) {
	raw := json.RawMessage(bytes.TrimSpace(body))
	var parsed mercadoPagoWebhookBody
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return entities.WebhookNotification{}, ErrInvalidWebhookBody
		}
	} else {
		raw = nil
	}

	topic := firstNonEmpty(string(parsed.Type), string(parsed.Topic), query.Get("type"), query.Get("topic"))
	id := firstNonEmpty(string(parsed.Data.ID), query.Get("data.id"))
	if id == "" && (topic == "" || topic == "payment") {
		id = firstNonEmpty(query.Get("id"))
	}

	return entities.WebhookNotification{
		Gateway:       entities.GatewayMercadoPago,
		TransactionID: id,
		Event:         firstNonEmpty(string(parsed.Action), topic),
		Raw:           raw,
		ReceivedAt:    time.Now().UTC(),
	}, nil
}

