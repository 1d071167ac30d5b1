package types

import "github.com/shopspring/decimal"

// FeeSchedule captures the ancillary carrier fees applied on top of the
// base freight price. Percentage fees carry an optional minimum charge;
// Fixed holds flat per-shipment fees keyed by fee code (toll, dispatch, ...).
type FeeSchedule struct {
	GrisPercent decimal.Decimal            `json:"gris_percent"`
	GrisMin     decimal.Decimal            `json:"gris_min"`
	AdvPercent  decimal.Decimal            `json:"adv_percent"`
	AdvMin      decimal.Decimal            `json:"adv_min"`
	Fixed       map[string]decimal.Decimal `json:"fixed,omitempty"`
}

// Total computes the fee amount for the given base, returning the total and
// the per-fee breakdown.
func (f *FeeSchedule) Total(base decimal.Decimal) (decimal.Decimal, map[string]decimal.Decimal) {
	breakdown := map[string]decimal.Decimal{}
	total := decimal.Zero

	if f == nil {
		return total, breakdown
	}

	hundred := decimal.NewFromInt(100)

	if f.GrisPercent.IsPositive() {
		gris := base.Mul(f.GrisPercent).Div(hundred)
		if gris.LessThan(f.GrisMin) {
			gris = f.GrisMin
		}
		breakdown["gris"] = gris
		total = total.Add(gris)
	}

	if f.AdvPercent.IsPositive() {
		adv := base.Mul(f.AdvPercent).Div(hundred)
		if adv.LessThan(f.AdvMin) {
			adv = f.AdvMin
		}
		breakdown["adv"] = adv
		total = total.Add(adv)
	}

	for code, amount := range f.Fixed {
		if amount.IsPositive() {
			breakdown[code] = amount
			total = total.Add(amount)
		}
	}

	return total, breakdown
}
