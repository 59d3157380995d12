package response

import (
	"time"

	"pix_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentRecordResponse struct {
	ID        string     `json:"id"`
	PixCode   string     `json:"pix_code"`
	QRCode    string     `json:"qr_code,omitempty"`
	Status    string     `json:"status"`
	RawStatus string     `json:"raw_status,omitempty"`
	Amount    float64    `json:"amount"`
	Gateway   string     `json:"gateway"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func FromPaymentRecord(rec entities.PaymentRecord) PaymentRecordResponse {
	out := PaymentRecordResponse{
		ID:        rec.ID,
		PixCode:   rec.PixCode,
		QRCode:    rec.QRCode,
		Status:    string(rec.Status),
		RawStatus: rec.RawStatus,
		Amount:    rec.Amount.Round(2).InexactFloat64(),
		Gateway:   string(rec.Gateway),
	}
	if !rec.CreatedAt.IsZero() {
		createdAt := rec.CreatedAt.UTC()
		out.CreatedAt = &createdAt
	}
	return out
}

// ToDomain rebuilds the record on the client side. The canonical status is
// re-derived when the server sent one this build does not know.
func (r PaymentRecordResponse) ToDomain() entities.PaymentRecord {
	status := entities.PaymentStatus(r.Status)
	switch status {
	case entities.PaymentStatusPending, entities.PaymentStatusPaid, entities.PaymentStatusExpired,
		entities.PaymentStatusCancelled, entities.PaymentStatusFailed, entities.PaymentStatusUnknown:
	default:
		status = entities.NormalizeStatus(r.Status)
	}
	rec := entities.PaymentRecord{
		ID:        r.ID,
		Status:    status,
		RawStatus: r.RawStatus,
		Amount:    decimal.NewFromFloat(r.Amount).Round(2),
		PixCode:   r.PixCode,
		QRCode:    r.QRCode,
		Gateway:   entities.GatewayTag(r.Gateway),
	}
	if r.CreatedAt != nil {
		rec.CreatedAt = *r.CreatedAt
	}
	return rec
}

type CreatePaymentResponse struct {
	Success bool                  `json:"success"`
	Gateway string                `json:"gateway"`
	Data    PaymentRecordResponse `json:"data"`
}

type PaymentStatusResponse struct {
	Success bool                  `json:"success"`
	Data    PaymentRecordResponse `json:"data"`
}

type PaymentListResponse struct {
	Success bool                    `json:"success"`
	Gateway string                  `json:"gateway"`
	Count   int                     `json:"count"`
	Data    []PaymentRecordResponse `json:"data"`
}

func FromPaymentRecords(gateway entities.GatewayTag, recs []entities.PaymentRecord) PaymentListResponse {
	out := PaymentListResponse{Success: true, Gateway: string(gateway), Count: len(recs), Data: make([]PaymentRecordResponse, 0, len(recs))}
	for _, rec := range recs {
		out.Data = append(out.Data, FromPaymentRecord(rec))
	}
	return out
}

type GatewaysResponse struct {
	Success   bool     `json:"success"`
	Active    string   `json:"active"`
	Available []string `json:"available"`
}

func FromGateways(active entities.GatewayTag, available []entities.GatewayTag) GatewaysResponse {
	out := GatewaysResponse{Success: true, Active: string(active), Available: make([]string, 0, len(available))}
	for _, tag := range available {
		out.Available = append(out.Available, string(tag))
	}
	return out
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
}
