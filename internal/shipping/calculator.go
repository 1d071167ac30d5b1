package shipping

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mercadoviva/shipping-backend/pkg/config"
	"github.com/mercadoviva/shipping-backend/pkg/db/models"
	"github.com/mercadoviva/shipping-backend/pkg/enums"
	pkgerrors "github.com/mercadoviva/shipping-backend/pkg/errors"
)

// Calculator prices one seller group against the modalities resolved for a
// zone. It is pure arithmetic: all I/O happens before it runs.
type Calculator struct {
	defaultItemWeight decimal.Decimal // kg
	volumetricDivisor decimal.Decimal
}

// NewCalculator builds a calculator from the shipping configuration.
func NewCalculator(cfg config.ShippingConfig) *Calculator {
	grams := cfg.DefaultItemWeightGrams
	if grams <= 0 {
		grams = 300
	}
	divisor := cfg.VolumetricDivisor
	if divisor <= 0 {
		divisor = 5000
	}
	return &Calculator{
		defaultItemWeight: decimal.NewFromInt(int64(grams)).Div(decimal.NewFromInt(1000)),
		volumetricDivisor: decimal.NewFromInt(int64(divisor)),
	}
}

// CalculateQuote prices the seller's items for every resolved modality.
// Invalid items (non-positive quantity, negative weight or price) are a
// caller error and fail the call; an empty modality list is a soft outcome
// recorded on the quote itself.
func (c *Calculator) CalculateQuote(sellerID, sellerName string, items []CartItem, zone *models.ShippingZone, modalities []RatedModality) (*SellerQuote, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	totalWeight, chargeableWeight := c.weights(items)
	totalValue := totalItemValue(items)

	quote := &SellerQuote{
		SellerID:    sellerID,
		SellerName:  sellerName,
		Items:       items,
		Options:     []ShippingOption{},
		TotalWeight: totalWeight,
		TotalValue:  totalValue,
	}

	if len(modalities) == 0 {
		quote.Error = "no shipping rates configured for this zone"
		return quote, nil
	}

	for _, m := range modalities {
		quote.Options = append(quote.Options, c.buildOption(m, zone, items, totalValue, chargeableWeight))
	}

	sortOptions(quote.Options)
	quote.Success = true
	return quote, nil
}

func (c *Calculator) buildOption(m RatedModality, zone *models.ShippingZone, items []CartItem, totalValue, chargeableWeight decimal.Decimal) ShippingOption {
	totalQty := 0
	for _, item := range items {
		totalQty += item.Quantity
	}

	var basePrice decimal.Decimal
	if m.PricingType == enums.PricingPerItem {
		basePrice = m.RatePerItem.Mul(decimal.NewFromInt(int64(totalQty)))
	} else {
		basePrice = m.RatePerShipment
	}
	if m.RatePerKg != nil {
		basePrice = basePrice.Add(m.RatePerKg.Mul(chargeableWeight))
	}

	price := basePrice.Mul(m.PriceMultiplier)
	markup := price.Mul(m.MarkupPercent).Div(decimal.NewFromInt(100))
	feeTotal, feeBreakdown := m.Fees.Total(price.Add(markup))

	originalPrice := price.Add(markup).Add(feeTotal)
	if m.MinPrice != nil && originalPrice.LessThan(*m.MinPrice) {
		originalPrice = *m.MinPrice
	}
	if m.MaxPrice != nil && originalPrice.GreaterThan(*m.MaxPrice) {
		originalPrice = *m.MaxPrice
	}
	originalPrice = originalPrice.Round(2)

	daysMin := scaleDays(m.DeliveryDaysMin, m.DaysMultiplier)
	daysMax := scaleDays(m.DeliveryDaysMax, m.DaysMultiplier)

	opt := ShippingOption{
		ID:              fmt.Sprintf("%s-%s", zone.CarrierID, m.ModalityID),
		Name:            optionName(m.Name, daysMin, m.PricingType),
		Description:     m.Description,
		Price:           originalPrice,
		OriginalPrice:   originalPrice,
		DeliveryDaysMin: daysMin,
		DeliveryDaysMax: daysMax,
		ModalityID:      m.ModalityID.String(),
		ModalityCode:    m.Code,
		PricingType:     m.PricingType,
		CarrierID:       zone.CarrierID,
		CarrierName:     zone.CarrierName,
		ZoneName:        zone.Name,
		Priority:        m.Priority,
		Breakdown: Breakdown{
			BasePrice: basePrice.Round(2),
			Markup:    markup.Round(2),
			Taxes:     roundFees(feeBreakdown),
		},
	}

	if reason, free := freeShippingReason(m, items, totalValue); free {
		opt.IsFree = true
		opt.FreeReason = reason
		opt.Price = decimal.Zero
		opt.Breakdown.FreeShippingDiscount = originalPrice
	}

	return opt
}

func errInvalidItem(msg string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, msg)
}

func validateItems(items []CartItem) error {
	for _, item := range items {
		if item.Quantity <= 0 {
			return errInvalidItem("item quantity must be positive")
		}
		if item.WeightKg.IsNegative() {
			return errInvalidItem("item weight must not be negative")
		}
		if item.UnitPrice.IsNegative() {
			return errInvalidItem("item price must not be negative")
		}
	}
	return nil
}

// weights returns the real total weight and the chargeable weight, which is
// the larger of real and volumetric (volume cm3 over the road divisor).
func (c *Calculator) weights(items []CartItem) (real, chargeable decimal.Decimal) {
	volume := decimal.Zero
	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))

		weight := item.WeightKg
		if weight.IsZero() {
			weight = c.defaultItemWeight
		}
		real = real.Add(weight.Mul(qty))

		volume = volume.Add(item.HeightCm.Mul(item.WidthCm).Mul(item.LengthCm).Mul(qty))
	}

	volumetric := volume.Div(c.volumetricDivisor)
	chargeable = real
	if volumetric.GreaterThan(chargeable) {
		chargeable = volumetric
	}
	return real, chargeable
}

func totalItemValue(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// freeShippingReason checks the configured conditions in precedence order:
// order value threshold, then product list, then category list.
func freeShippingReason(m RatedModality, items []CartItem, totalValue decimal.Decimal) (enums.FreeShippingReason, bool) {
	if m.Threshold != nil && totalValue.GreaterThanOrEqual(*m.Threshold) {
		return enums.FreeReasonOrderAboveThreshold, true
	}

	if len(m.FreeProducts) > 0 {
		for _, item := range items {
			for _, productID := range m.FreeProducts {
				if item.ProductID == productID {
					return enums.FreeReasonProduct, true
				}
			}
		}
	}

	if len(m.FreeCategories) > 0 {
		for _, item := range items {
			if item.CategoryID == "" {
				continue
			}
			for _, categoryID := range m.FreeCategories {
				if item.CategoryID == categoryID {
					return enums.FreeReasonCategory, true
				}
			}
		}
	}

	return "", false
}

// scaleDays multiplies a delivery day bound by the modality multiplier and
// rounds half-up to whole days.
func scaleDays(days int, multiplier decimal.Decimal) int {
	if multiplier.IsZero() {
		return days
	}
	return int(decimal.NewFromInt(int64(days)).Mul(multiplier).Round(0).IntPart())
}

func optionName(modalityName string, daysMin int, pricingType enums.PricingType) string {
	name := modalityName
	switch daysMin {
	case 0:
		name += " - Entrega Hoje"
	case 1:
		name += " - Entrega Amanhã"
	default:
		name += fmt.Sprintf(" - %d dias úteis", daysMin)
	}
	if pricingType == enums.PricingPerItem {
		name += " (por item)"
	}
	return name
}

func sortOptions(options []ShippingOption) {
	sort.SliceStable(options, func(i, j int) bool {
		if cmp := options[i].Price.Cmp(options[j].Price); cmp != 0 {
			return cmp < 0
		}
		if options[i].Priority != options[j].Priority {
			return options[i].Priority < options[j].Priority
		}
		return options[i].DeliveryDaysMin < options[j].DeliveryDaysMin
	})
}

func roundFees(fees map[string]decimal.Decimal) map[string]decimal.Decimal {
	if len(fees) == 0 {
		return nil
	}
	rounded := make(map[string]decimal.Decimal, len(fees))
	for code, amount := range fees {
		rounded[code] = amount.Round(2)
	}
	return rounded
}
