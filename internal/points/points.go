package points

import (
	"sort"
	"strconv"
	"strings"

	"github.com/clubedepontos/loyaltyhook/internal/models"
	"github.com/shopspring/decimal"
)

// exact description of a points-redemption discount line
const pointsDiscountDescription = "Pontos de vantagem"

// one point is worth R$0.08
var pointsToRealRatio = decimal.NewFromFloat(0.08)

// Calculator computes point debits, credits and club levels from an
// immutable tier table.
type Calculator struct {
	multipliers map[int]decimal.Decimal
	// ladder sorted by descending spend threshold; ties broken by higher
	// tier id so the enrolled base tier wins over "not enrolled"
	byThreshold []models.Tier
}

// NewCalculator creates new Calculator instance over the given tier table.
func NewCalculator(tiers []models.Tier) *Calculator {
	multipliers := make(map[int]decimal.Decimal, len(tiers))
	for _, t := range tiers {
		multipliers[t.ID] = t.Multiplier
	}

	byThreshold := make([]models.Tier, len(tiers))
	copy(byThreshold, tiers)
	sort.SliceStable(byThreshold, func(i, j int) bool {
		if byThreshold[i].MinSpent.Equal(byThreshold[j].MinSpent) {
			return byThreshold[i].ID > byThreshold[j].ID
		}
		return byThreshold[i].MinSpent.GreaterThan(byThreshold[j].MinSpent)
	})

	return &Calculator{
		multipliers: multipliers,
		byThreshold: byThreshold,
	}
}

// Multiplier returns the points multiplier for a tier, defaulting to 1 for
// unknown tier ids.
func (c *Calculator) Multiplier(tierID int) decimal.Decimal {
	if m, ok := c.multipliers[tierID]; ok {
		return m
	}
	return decimal.NewFromInt(1)
}

// PointsToDebit returns the points redeemed on an order. A matching discount
// application wins over the note attributes; the first match in list order is
// used. With no debit source present the result is zero.
func (c *Calculator) PointsToDebit(order *models.Order) decimal.Decimal {
	for _, d := range order.DiscountApplications {
		lower := strings.ToLower(d.Description)
		if d.Description != pointsDiscountDescription &&
			!strings.Contains(lower, "pontos") &&
			!strings.Contains(lower, "points") {
			continue
		}
		value, err := decimal.NewFromString(d.Value)
		if err != nil {
			return decimal.Zero
		}
		// round half away from zero
		return value.Div(pointsToRealRatio).Round(0)
	}

	for _, attr := range order.NoteAttributes {
		if attr.Name != "pointsToUse" && attr.Name != "points_used" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(attr.Value))
		if err != nil {
			return decimal.Zero
		}
		return decimal.NewFromInt(int64(n))
	}

	return decimal.Zero
}

// PointsToAdd returns the points earned on an order:
// floor(total price) times the tier multiplier. The result can be fractional.
func (c *Calculator) PointsToAdd(totalPrice string, tierID int) decimal.Decimal {
	total, err := decimal.NewFromString(totalPrice)
	if err != nil {
		total = decimal.Zero
	}
	return total.Floor().Mul(c.Multiplier(tierID))
}

// ResolveTier maps cumulative spend to a club level. Tier 0 customers are
// not enrolled and stay at 0 regardless of spend; otherwise the highest tier
// whose threshold does not exceed the spend wins.
func (c *Calculator) ResolveTier(totalSpent decimal.Decimal, currentTier int) int {
	if currentTier == 0 {
		return 0
	}
	for _, t := range c.byThreshold {
		if totalSpent.GreaterThanOrEqual(t.MinSpent) {
			return t.ID
		}
	}
	return currentTier
}

// FinalBalance applies the clamped debit and the earned points to the
// current balance. The debit never drives the balance negative; the addition
// is never clamped. It returns the debit actually applied and the new
// balance.
func FinalBalance(current, debit, add decimal.Decimal) (applied, final decimal.Decimal) {
	applied = decimal.Zero
	if debit.IsPositive() {
		applied = decimal.Min(debit, current)
	}
	return applied, current.Sub(applied).Add(add)
}
