package shipping

import (
	"github.com/shopspring/decimal"

	shippingsvc "github.com/mercadoviva/shipping-backend/internal/shipping"
)

// CartQuoteResponse wraps the aggregation result with the formatted postal
// code the quotes were computed for.
type CartQuoteResponse struct {
	PostalCode string                   `json:"postalCode"`
	Quotes     []shippingsvc.SellerQuote `json:"quotes"`
	Summary    shippingsvc.Summary       `json:"summary"`
}

// SellerQuoteResponse wraps a single seller quote.
type SellerQuoteResponse struct {
	PostalCode string                  `json:"postalCode"`
	Quote      shippingsvc.SellerQuote `json:"quote"`
}

// SummaryResponse carries the shipping total for the selected options.
type SummaryResponse struct {
	Total    decimal.Decimal           `json:"total"`
	Cheapest *shippingsvc.ShippingOption `json:"cheapest,omitempty"`
	Fastest  *shippingsvc.ShippingOption `json:"fastest,omitempty"`
}

func newCartQuoteResponse(postalCode string, result *shippingsvc.AggregateResult) CartQuoteResponse {
	return CartQuoteResponse{
		PostalCode: shippingsvc.FormatPostalCode(postalCode),
		Quotes:     result.Quotes,
		Summary:    result.Summary,
	}
}

func newSellerQuoteResponse(postalCode string, quote *shippingsvc.SellerQuote) SellerQuoteResponse {
	return SellerQuoteResponse{
		PostalCode: shippingsvc.FormatPostalCode(postalCode),
		Quote:      *quote,
	}
}
