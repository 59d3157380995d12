package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Plan is a purchasable subscription plan or order-bump item.
type Plan struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price"`
}

// Catalog holds the base plans and the optional bumps offered at checkout.
type Catalog struct {
	Plans []Plan `json:"plans"`
	Bumps []Plan `json:"bumps"`
}

func (c Catalog) FindPlan(id string) (Plan, bool) {
	return findPlan(c.Plans, id)
}

func (c Catalog) FindBump(id string) (Plan, bool) {
	return findPlan(c.Bumps, id)
}

func findPlan(items []Plan, id string) (Plan, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, p := range items {
		if strings.ToLower(p.ID) == id {
			return p, true
		}
	}
	return Plan{}, false
}

// Order is a base plan plus the bumps the buyer ticked.
type Order struct {
	Plan  Plan
	Bumps []Plan
}

func (o Order) Total() decimal.Decimal {
	total := o.Plan.Price
	for _, b := range o.Bumps {
		total = total.Add(b.Price)
	}
	return total
}

// Description joins every item label, e.g. "1 mês + Suporte VIP".
func (o Order) Description() string {
	labels := make([]string, 0, len(o.Bumps)+1)
	labels = append(labels, o.Plan.Label)
	for _, b := range o.Bumps {
		labels = append(labels, b.Label)
	}
	return strings.Join(labels, " + ")
}
