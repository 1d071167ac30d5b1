package shipping

import "github.com/shopspring/decimal"

// CheapestOption returns the lowest-priced option, or nil for an empty list.
// Options arrive price-sorted from the calculator, but selection does not
// rely on that.
func CheapestOption(options []ShippingOption) *ShippingOption {
	var best *ShippingOption
	for i := range options {
		if best == nil || options[i].Price.LessThan(best.Price) {
			best = &options[i]
		}
	}
	return best
}

// FastestOption returns the option with the smallest minimum delivery days,
// preferring the cheaper one on ties.
func FastestOption(options []ShippingOption) *ShippingOption {
	var best *ShippingOption
	for i := range options {
		opt := &options[i]
		if best == nil {
			best = opt
			continue
		}
		if opt.DeliveryDaysMin < best.DeliveryDaysMin {
			best = opt
			continue
		}
		if opt.DeliveryDaysMin == best.DeliveryDaysMin && opt.Price.LessThan(best.Price) {
			best = opt
		}
	}
	return best
}

// CartShippingTotal sums the prices of the options a buyer selected, one per
// seller. Free options contribute zero.
func CartShippingTotal(selected []ShippingOption) decimal.Decimal {
	total := decimal.Zero
	for _, opt := range selected {
		total = total.Add(opt.Price)
	}
	return total.Round(2)
}
