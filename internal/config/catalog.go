package config

import (
	"fmt"
	"os"
	"strings"

	"pix_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Plans []catalogItem `yaml:"plans"`
	Bumps []catalogItem `yaml:"bumps"`
}

type catalogItem struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Price string `yaml:"price"`
}

// DefaultCatalog is used when no PLANS_FILE is configured.
func DefaultCatalog() entities.Catalog {
	return entities.Catalog{
		Plans: []entities.Plan{
			{ID: "monthly", Label: "1 mês", Price: decimal.RequireFromString("19.90")},
			{ID: "quarterly", Label: "3 meses", Price: decimal.RequireFromString("49.90")},
			{ID: "semiannual", Label: "6 meses", Price: decimal.RequireFromString("89.90")},
		},
		Bumps: []entities.Plan{
			{ID: "vip", Label: "Suporte VIP", Price: decimal.RequireFromString("9.90")},
		},
	}
}

// LoadCatalog reads the plan catalog from a YAML file (or the defaults when
// path is empty) and then applies PLAN_<ID>_PRICE / PLAN_<ID>_LABEL overrides.
func LoadCatalog(path string) (entities.Catalog, error) {
	catalog := DefaultCatalog()
	if path = strings.TrimSpace(path); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return entities.Catalog{}, fmt.Errorf("read plans file: %w", err)
		}
		if catalog, err = parseCatalog(raw); err != nil {
			return entities.Catalog{}, fmt.Errorf("parse plans file %s: %w", path, err)
		}
	}

	for i := range catalog.Plans {
		if err := applyPlanOverrides(&catalog.Plans[i]); err != nil {
			return entities.Catalog{}, err
		}
	}
	for i := range catalog.Bumps {
		if err := applyPlanOverrides(&catalog.Bumps[i]); err != nil {
			return entities.Catalog{}, err
		}
	}
	return catalog, nil
}

func parseCatalog(raw []byte) (entities.Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return entities.Catalog{}, err
	}
	if len(f.Plans) == 0 {
		return entities.Catalog{}, fmt.Errorf("at least one plan is required")
	}

	var catalog entities.Catalog
	for _, it := range f.Plans {
		p, err := it.toPlan()
		if err != nil {
			return entities.Catalog{}, err
		}
		catalog.Plans = append(catalog.Plans, p)
	}
	for _, it := range f.Bumps {
		p, err := it.toPlan()
		if err != nil {
			return entities.Catalog{}, err
		}
		catalog.Bumps = append(catalog.Bumps, p)
	}
	return catalog, nil
}

func (it catalogItem) toPlan() (entities.Plan, error) {
	id := strings.TrimSpace(it.ID)
	if id == "" {
		return entities.Plan{}, fmt.Errorf("plan id is required")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(it.Price))
	if err != nil {
		return entities.Plan{}, fmt.Errorf("plan %s: invalid price %q", id, it.Price)
	}
	if !price.IsPositive() {
		return entities.Plan{}, fmt.Errorf("plan %s: price must be positive", id)
	}
	label := strings.TrimSpace(it.Label)
	if label == "" {
		label = id
	}
	return entities.Plan{ID: id, Label: label, Price: price}, nil
}

func applyPlanOverrides(p *entities.Plan) error {
	prefix := "PLAN_" + strings.ToUpper(p.ID) + "_"
	if v := strings.TrimSpace(os.Getenv(prefix + "PRICE")); v != "" {
		price, err := decimal.NewFromString(strings.ReplaceAll(v, ",", "."))
		if err != nil || !price.IsPositive() {
			return fmt.Errorf("invalid %sPRICE %q", prefix, v)
		}
		p.Price = price
	}
	if v := strings.TrimSpace(os.Getenv(prefix + "LABEL")); v != "" {
		p.Label = v
	}
	return nil
}
