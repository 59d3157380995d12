package payments

import (
	"strings"

	"pix_checkout/internal/domain/entities"
)

// validateAmount rejects non-positive amounts and amounts below the gateway
// minimum. The minimum itself is accepted.
func validateAmount(req entities.PaymentRequest, minCents int64) error {
	if !req.Amount.IsPositive() {
		return entities.NewValidationError("amount", "must be greater than zero")
	}
	if cents := req.AmountCents(); cents < minCents {
		return entities.NewValidationError("amount", "must be at least %s (got %s)",
			entities.FromCents(minCents).StringFixed(2), entities.FromCents(cents).StringFixed(2))
	}
	return nil
}

// validateSplitRules requires positive values, non-empty account ids and a
// sum that does not exceed the charge.
func validateSplitRules(rules []entities.SplitRule, totalCents int64) error {
	var sum int64
	for i, r := range rules {
		if r.Value <= 0 {
			return entities.NewValidationError("split_rules", "rule %d: value must be greater than zero", i)
		}
		if strings.TrimSpace(r.AccountID) == "" {
			return entities.NewValidationError("split_rules", "rule %d: account_id is required", i)
		}
		if r.Value > totalCents-sum {
			return entities.NewValidationError("split_rules", "sum exceeds total %d at rule %d", totalCents, i)
		}
		sum += r.Value
	}
	return nil
}
