package response

import (
	"pix_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PlanResponse struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type CatalogResponse struct {
	Success bool           `json:"success"`
	Plans   []PlanResponse `json:"plans"`
	Bumps   []PlanResponse `json:"bumps"`
}

func FromCatalog(c entities.Catalog) CatalogResponse {
	return CatalogResponse{Success: true, Plans: fromPlans(c.Plans), Bumps: fromPlans(c.Bumps)}
}

func (r CatalogResponse) ToDomain() entities.Catalog {
	return entities.Catalog{Plans: toPlans(r.Plans), Bumps: toPlans(r.Bumps)}
}

func fromPlans(plans []entities.Plan) []PlanResponse {
	out := make([]PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, PlanResponse{ID: p.ID, Label: p.Label, Price: p.Price.InexactFloat64()})
	}
	return out
}

func toPlans(plans []PlanResponse) []entities.Plan {
	out := make([]entities.Plan, 0, len(plans))
	for _, p := range plans {
		out = append(out, entities.Plan{ID: p.ID, Label: p.Label, Price: decimal.NewFromFloat(p.Price).Round(2)})
	}
	return out
}
