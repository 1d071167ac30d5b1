package shipping

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercadoviva/shipping-backend/pkg/enums"
	"github.com/mercadoviva/shipping-backend/pkg/types"
)

// CartItem is the read-only snapshot of one cart line handed to the quote
// pipeline. Dimensions are in centimeters, weight in kilograms.
type CartItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName,omitempty"`
	SellerID    string          `json:"sellerId"`
	SellerName  string          `json:"sellerName,omitempty"`
	CategoryID  string          `json:"categoryId,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	WeightKg    decimal.Decimal `json:"weightKg"`
	HeightCm    decimal.Decimal `json:"heightCm"`
	WidthCm     decimal.Decimal `json:"widthCm"`
	LengthCm    decimal.Decimal `json:"lengthCm"`
}

// SellerGroup is one seller's slice of the cart, in cart order.
type SellerGroup struct {
	SellerID   string
	SellerName string
	Items      []CartItem
}

// RatedModality is the merged view of a modality and the rate row that won
// for it (seller-specific when present, otherwise global). This is what the
// calculator prices against.
type RatedModality struct {
	ModalityID      uuid.UUID
	Code            string
	Name            string
	Description     string
	PricingType     enums.PricingType
	RatePerItem     decimal.Decimal
	RatePerShipment decimal.Decimal
	RatePerKg       *decimal.Decimal
	PriceMultiplier decimal.Decimal
	DaysMultiplier  decimal.Decimal
	DeliveryDaysMin int
	DeliveryDaysMax int
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	Priority        int
	MarkupPercent   decimal.Decimal
	Fees            *types.FeeSchedule
	Threshold       *decimal.Decimal
	FreeProducts    []string
	FreeCategories  []string
	SellerSpecific  bool
}

// Breakdown itemizes how an option's price was assembled.
type Breakdown struct {
	BasePrice            decimal.Decimal            `json:"basePrice"`
	Markup               decimal.Decimal            `json:"markup"`
	Taxes                map[string]decimal.Decimal `json:"taxes"`
	Discounts            decimal.Decimal            `json:"discounts"`
	FreeShippingDiscount decimal.Decimal            `json:"freeShippingDiscount"`
}

// ShippingOption is one priced modality for a seller group. Built fresh per
// quote request, never persisted.
type ShippingOption struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Description     string                   `json:"description,omitempty"`
	Price           decimal.Decimal          `json:"price"`
	OriginalPrice   decimal.Decimal          `json:"originalPrice"`
	DeliveryDaysMin int                      `json:"deliveryDaysMin"`
	DeliveryDaysMax int                      `json:"deliveryDaysMax"`
	ModalityID      string                   `json:"modalityId"`
	ModalityCode    string                   `json:"modalityCode"`
	PricingType     enums.PricingType        `json:"pricingType"`
	CarrierID       string                   `json:"carrierId"`
	CarrierName     string                   `json:"carrierName"`
	ZoneName        string                   `json:"zoneName"`
	IsFree          bool                     `json:"isFree"`
	FreeReason      enums.FreeShippingReason `json:"freeReason,omitempty"`
	Priority        int                      `json:"-"`
	Breakdown       Breakdown                `json:"breakdown"`
}

// SellerQuote is the per-seller result. A soft failure (no zone, no rates)
// leaves Success false and Error set while the rest of the cart proceeds.
type SellerQuote struct {
	SellerID    string           `json:"sellerId"`
	SellerName  string           `json:"sellerName"`
	Items       []CartItem       `json:"items"`
	Options     []ShippingOption `json:"options"`
	TotalWeight decimal.Decimal  `json:"totalWeight"`
	TotalValue  decimal.Decimal  `json:"totalValue"`
	Success     bool             `json:"success"`
	Error       string           `json:"error,omitempty"`
}

// Summary aggregates cart-level figures across all seller quotes.
type Summary struct {
	TotalSellers    int             `json:"totalSellers"`
	TotalOptions    int             `json:"totalOptions"`
	HasFreeShipping bool            `json:"hasFreeShipping"`
	CheapestTotal   decimal.Decimal `json:"cheapestTotal"`
}

// AggregateResult is the full cart response: one quote per seller in cart
// order plus the summary.
type AggregateResult struct {
	Quotes  []SellerQuote `json:"quotes"`
	Summary Summary       `json:"summary"`
}
