package entities

import "strings"

// PaymentStatus is the canonical status shared by every gateway.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusExpired   PaymentStatus = "expired"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusUnknown   PaymentStatus = "unknown"
)

var upstreamStatuses = map[string]PaymentStatus{
	"created":         PaymentStatusPending,
	"pending":         PaymentStatusPending,
	"waiting":         PaymentStatusPending,
	"waiting_payment": PaymentStatusPending,
	"processing":      PaymentStatusPending,
	"in_process":      PaymentStatusPending,
	"authorized":      PaymentStatusPending,
	"in_mediation":    PaymentStatusPending,

	"paid":      PaymentStatusPaid,
	"completed": PaymentStatusPaid,
	"approved":  PaymentStatusPaid,
	"confirmed": PaymentStatusPaid,
	"success":   PaymentStatusPaid,

	"expired": PaymentStatusExpired,

	"cancelled":    PaymentStatusCancelled,
	"canceled":     PaymentStatusCancelled,
	"refunded":     PaymentStatusCancelled,
	"charged_back": PaymentStatusCancelled,
	"chargeback":   PaymentStatusCancelled,
	"reversed":     PaymentStatusCancelled,

	"failed":   PaymentStatusFailed,
	"rejected": PaymentStatusFailed,
	"error":    PaymentStatusFailed,
	"refused":  PaymentStatusFailed,
	"denied":   PaymentStatusFailed,
}

// NormalizeStatus maps any upstream status string onto the canonical set.
// Unrecognized values map to PaymentStatusUnknown.
func NormalizeStatus(raw string) PaymentStatus {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	if s, ok := upstreamStatuses[key]; ok {
		return s
	}
	return PaymentStatusUnknown
}

// IsTerminal reports whether no further transition is expected.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusExpired, PaymentStatusCancelled, PaymentStatusFailed:
		return true
	}
	return false
}

func (s PaymentStatus) IsPaid() bool {
	return s == PaymentStatusPaid
}
