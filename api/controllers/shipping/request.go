package shipping

import (
	"github.com/shopspring/decimal"

	shippingsvc "github.com/mercadoviva/shipping-backend/internal/shipping"
)

// QuoteItemRequest mirrors one cart line in quote payloads.
type QuoteItemRequest struct {
	ProductID   string          `json:"productId" validate:"required"`
	ProductName string          `json:"productName"`
	SellerID    string          `json:"sellerId"`
	SellerName  string          `json:"sellerName"`
	CategoryID  string          `json:"categoryId"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	WeightKg    decimal.Decimal `json:"weightKg"`
	HeightCm    decimal.Decimal `json:"heightCm"`
	WidthCm     decimal.Decimal `json:"widthCm"`
	LengthCm    decimal.Decimal `json:"lengthCm"`
}

// CartQuoteRequest asks for quotes across the whole cart.
type CartQuoteRequest struct {
	PostalCode string             `json:"postalCode" validate:"required"`
	Items      []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SellerQuoteRequest asks for a single seller's quote; the seller comes from
// the URL.
type SellerQuoteRequest struct {
	PostalCode string             `json:"postalCode" validate:"required"`
	Items      []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SelectedOptionRequest is one chosen option per seller for the summary
// endpoint.
type SelectedOptionRequest struct {
	SellerID        string          `json:"sellerId" validate:"required"`
	OptionID        string          `json:"optionId"`
	Price           decimal.Decimal `json:"price"`
	DeliveryDaysMin int             `json:"deliveryDaysMin"`
	DeliveryDaysMax int             `json:"deliveryDaysMax"`
	IsFree          bool            `json:"isFree"`
}

// SummaryRequest totals the buyer's selected options.
type SummaryRequest struct {
	Options []SelectedOptionRequest `json:"options" validate:"required,min=1,dive"`
}

func toCartItems(items []QuoteItemRequest) []shippingsvc.CartItem {
	out := make([]shippingsvc.CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, shippingsvc.CartItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			SellerID:    item.SellerID,
			SellerName:  item.SellerName,
			CategoryID:  item.CategoryID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			WeightKg:    item.WeightKg,
			HeightCm:    item.HeightCm,
			WidthCm:     item.WidthCm,
			LengthCm:    item.LengthCm,
		})
	}
	return out
}

func toSelectedOptions(options []SelectedOptionRequest) []shippingsvc.ShippingOption {
	out := make([]shippingsvc.ShippingOption, 0, len(options))
	for _, opt := range options {
		out = append(out, shippingsvc.ShippingOption{
			ID:              opt.OptionID,
			Price:           opt.Price,
			DeliveryDaysMin: opt.DeliveryDaysMin,
			DeliveryDaysMax: opt.DeliveryDaysMax,
			IsFree:          opt.IsFree,
		})
	}
	return out
}
