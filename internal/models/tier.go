package models

import (
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Tier is one level of the club ladder. MinSpent is the cumulative spend
// threshold in store currency, Multiplier scales the points earned per order.
type Tier struct {
	ID         int
	Name       string
	MinSpent   decimal.Decimal
	Multiplier decimal.Decimal
}

// DefaultTiers returns the compiled-in club ladder. Tier 0 and tier 1 share
// the zero threshold: 0 means not enrolled, 1 is the enrolled base tier.
func DefaultTiers() []Tier {
	return []Tier{
		{ID: 0, Name: "Fora do clube", MinSpent: decimal.Zero, Multiplier: decimal.NewFromInt(1)},
		{ID: 1, Name: "Bronze", MinSpent: decimal.Zero, Multiplier: decimal.NewFromInt(1)},
		{ID: 2, Name: "Prata", MinSpent: decimal.NewFromInt(180), Multiplier: decimal.NewFromFloat(1.2)},
		{ID: 3, Name: "Ouro", MinSpent: decimal.NewFromInt(600), Multiplier: decimal.NewFromFloat(1.4)},
		{ID: 4, Name: "Diamante", MinSpent: decimal.NewFromInt(1600), Multiplier: decimal.NewFromFloat(1.6)},
	}
}

type tierFile struct {
	Tiers []struct {
		ID         int     `yaml:"id"`
		Name       string  `yaml:"name"`
		MinSpent   float64 `yaml:"min_spent"`
		Multiplier float64 `yaml:"multiplier"`
	} `yaml:"tiers"`
}

// LoadTiers reads a club ladder from a YAML file. The result is sorted by
// ascending spend threshold.
func LoadTiers(path string) ([]Tier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf tierFile
	if err := yaml.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parsing tier table: %w", err)
	}
	if len(tf.Tiers) == 0 {
		return nil, fmt.Errorf("tier table %s has no tiers", path)
	}

	seen := make(map[int]struct{}, len(tf.Tiers))
	tiers := make([]Tier, 0, len(tf.Tiers))
	for _, t := range tf.Tiers {
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("tier table %s: duplicate tier id %d", path, t.ID)
		}
		seen[t.ID] = struct{}{}
		tiers = append(tiers, Tier{
			ID:         t.ID,
			Name:       t.Name,
			MinSpent:   decimal.NewFromFloat(t.MinSpent),
			Multiplier: decimal.NewFromFloat(t.Multiplier),
		})
	}

	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].MinSpent.LessThan(tiers[j].MinSpent)
	})

	return tiers, nil
}
