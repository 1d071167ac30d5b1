package enums

// PricingType selects how a modality charges a seller group.
type PricingType string

const (
	// PricingPerItem charges the item rate once per unit in the group.
	PricingPerItem PricingType = "per_item"
	// PricingPerShipment charges a single rate for the whole group.
	PricingPerShipment PricingType = "per_shipment"
)

// Valid reports whether the value is a known pricing type.
func (p PricingType) Valid() bool {
	switch p {
	case PricingPerItem, PricingPerShipment:
		return true
	}
	return false
}

// FreeShippingReason explains why an option carries a zero price.
type FreeShippingReason string

const (
	FreeReasonOrderAboveThreshold FreeShippingReason = "order_above_threshold"
	FreeReasonProduct             FreeShippingReason = "product_free_shipping"
	FreeReasonCategory            FreeShippingReason = "category_free_shipping"
)
