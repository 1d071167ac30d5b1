package shipping

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mercadoviva/shipping-backend/api/responses"
	"github.com/mercadoviva/shipping-backend/api/validators"
	shippingsvc "github.com/mercadoviva/shipping-backend/internal/shipping"
	pkgerrors "github.com/mercadoviva/shipping-backend/pkg/errors"
	"github.com/mercadoviva/shipping-backend/pkg/logger"
)

// CalculateCartQuote quotes shipping for the whole cart, one quote per
// seller.
func CalculateCartQuote(svc shippingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shipping service unavailable"))
			return
		}

		var payload CartQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.CalculateShippingForCart(r.Context(), payload.PostalCode, toCartItems(payload.Items))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartQuoteResponse(payload.PostalCode, result))
	}
}

// CalculateSellerQuote quotes shipping for one seller's items.
func CalculateSellerQuote(svc shippingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shipping service unavailable"))
			return
		}

		sellerID := chi.URLParam(r, "sellerId")
		if sellerID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "seller id is required"))
			return
		}

		var payload SellerQuoteRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.CalculateShippingForSeller(r.Context(), sellerID, payload.PostalCode, toCartItems(payload.Items))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newSellerQuoteResponse(payload.PostalCode, quote))
	}
}

// QuoteSummary totals the options a buyer picked, one per seller.
func QuoteSummary(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload SummaryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		seen := map[string]struct{}{}
		for _, opt := range payload.Options {
			if _, dup := seen[opt.SellerID]; dup {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "one option per seller allowed"))
				return
			}
			seen[opt.SellerID] = struct{}{}
		}

		selected := toSelectedOptions(payload.Options)
		responses.WriteSuccess(w, SummaryResponse{
			Total:    shippingsvc.CartShippingTotal(selected),
			Cheapest: shippingsvc.CheapestOption(selected),
			Fastest:  shippingsvc.FastestOption(selected),
		})
	}
}
