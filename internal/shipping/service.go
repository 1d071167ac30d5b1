package shipping

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mercadoviva/shipping-backend/pkg/cache"
	"github.com/mercadoviva/shipping-backend/pkg/config"
	pkgerrors "github.com/mercadoviva/shipping-backend/pkg/errors"
	"github.com/mercadoviva/shipping-backend/pkg/logger"
	"github.com/mercadoviva/shipping-backend/pkg/metrics"
	"github.com/shopspring/decimal"
)

const quoteCachePrefix = "shipping_quote"

// Service exposes the quote aggregation operations consumed by the route
// layer.
type Service interface {
	CalculateShippingForCart(ctx context.Context, postalCode string, items []CartItem) (*AggregateResult, error)
	CalculateShippingForSeller(ctx context.Context, sellerID, postalCode string, items []CartItem) (*SellerQuote, error)
	InvalidateQuotes(ctx context.Context, postalCode string) error
}

type service struct {
	repo     Repository
	calc     *Calculator
	cache    cache.Cache
	metrics  *metrics.QuoteMetrics
	logg     *logger.Logger
	timeout  time.Duration
	cacheTTL time.Duration
}

// NewService builds the aggregation service. Cache and metrics are optional;
// everything else is required.
func NewService(repo Repository, calc *Calculator, quoteCache cache.Cache, m *metrics.QuoteMetrics, logg *logger.Logger, cfg config.ShippingConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shipping repository required")
	}
	if calc == nil {
		return nil, fmt.Errorf("quote calculator required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	timeout := cfg.QuoteTimeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &service{
		repo:     repo,
		calc:     calc,
		cache:    quoteCache,
		metrics:  m,
		logg:     logg,
		timeout:  timeout,
		cacheTTL: cfg.CacheTTL,
	}, nil
}

// CalculateShippingForCart partitions the cart by seller and quotes every
// group under a single deadline. One seller's missing coverage or rates never
// blocks the rest; only a malformed postal code, a data store outage before
// any seller work lands, or the deadline itself fail the whole request.
func (s *service) CalculateShippingForCart(ctx context.Context, postalCode string, items []CartItem) (*AggregateResult, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveDuration("aggregate", time.Since(start))
	}()

	code, err := ValidatePostalCode(postalCode)
	if err != nil {
		return nil, err
	}

	ctx = s.logg.WithPostalCode(ctx, code)

	groups := PartitionBySeller(items)
	result := &AggregateResult{Quotes: make([]SellerQuote, 0, len(groups))}
	if len(groups) == 0 {
		result.Summary = summarize(result.Quotes)
		return result, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	for i, group := range groups {
		if err := ctx.Err(); err != nil {
			return nil, s.timeoutError(ctx)
		}

		quote, err := s.quoteSeller(ctx, code, group)
		if err != nil {
			if isDeadline(err) {
				return nil, s.timeoutError(ctx)
			}
			if appErr := pkgerrors.As(err); appErr != nil && appErr.Code() == pkgerrors.CodeValidation {
				return nil, err
			}
			// A data store outage before the first seller completes fails
			// the request; after that it degrades to a per-seller failure.
			if i == 0 {
				return nil, err
			}
			s.logg.Error(s.logg.WithSellerID(ctx, group.SellerID), "seller quote failed, continuing", err)
			s.metrics.IncSellerFailure("data_store")
			quote = errorQuote(group, "shipping temporarily unavailable for this seller")
		}

		result.Quotes = append(result.Quotes, *quote)
	}

	if ctx.Err() != nil {
		return nil, s.timeoutError(ctx)
	}

	result.Summary = summarize(result.Quotes)
	return result, nil
}

// CalculateShippingForSeller quotes a single seller's items, same rules as
// the cart path but without partial-failure handling.
func (s *service) CalculateShippingForSeller(ctx context.Context, sellerID, postalCode string, items []CartItem) (*SellerQuote, error) {
	code, err := ValidatePostalCode(postalCode)
	if err != nil {
		return nil, err
	}

	ctx = s.logg.WithPostalCode(s.logg.WithSellerID(ctx, sellerID), code)
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	group := SellerGroup{SellerID: sellerID, Items: items}
	if sellerID == "" {
		group.SellerID = DefaultSellerKey
	}
	for _, item := range items {
		if item.SellerName != "" {
			group.SellerName = item.SellerName
			break
		}
	}

	quote, err := s.quoteSeller(ctx, code, group)
	if err != nil {
		if isDeadline(err) {
			return nil, s.timeoutError(ctx)
		}
		return nil, err
	}
	return quote, nil
}

// quoteSeller runs zone resolution, rate lookup and calculation for one
// group, consulting the quote cache first. Soft conditions (no zone, no
// rates) come back as failed quotes, not errors.
func (s *service) quoteSeller(ctx context.Context, postalCode string, group SellerGroup) (*SellerQuote, error) {
	key := quoteCacheKey(postalCode, group.SellerID, group.Items)

	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			var cached SellerQuote
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				s.metrics.IncCacheHit()
				return &cached, nil
			}
		}
		s.metrics.IncCacheMiss()
	}

	zone, err := s.repo.FindZoneByPostalCode(ctx, postalCode)
	if err != nil {
		if appErr := pkgerrors.As(err); appErr != nil && appErr.Code() == pkgerrors.CodeNotFound {
			s.metrics.IncSellerFailure("zone_not_found")
			return errorQuote(group, "no shipping available for this postal code"), nil
		}
		return nil, err
	}

	rates, err := s.repo.RatesForZoneAndSeller(ctx, zone.ID, realSellerID(group.SellerID))
	if err != nil {
		return nil, err
	}

	quote, err := s.calc.CalculateQuote(group.SellerID, group.SellerName, group.Items, zone, rates)
	if err != nil {
		return nil, err
	}

	if !quote.Success {
		s.metrics.IncSellerFailure("no_rates")
		return quote, nil
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if raw, err := json.Marshal(quote); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
				s.logg.Warn(ctx, "caching seller quote failed")
			}
		}
	}

	return quote, nil
}

// InvalidateQuotes drops every cached quote for a postal code, for example
// after rate table changes.
func (s *service) InvalidateQuotes(ctx context.Context, postalCode string) error {
	if s.cache == nil {
		return nil
	}
	code := NormalizePostalCode(postalCode)
	return s.cache.DeletePrefix(ctx, fmt.Sprintf("%s:%s:", quoteCachePrefix, code))
}

func (s *service) timeoutError(ctx context.Context) error {
	s.metrics.IncTimeout()
	return pkgerrors.Wrap(pkgerrors.CodeTimeout, ctx.Err(), "shipping calculation timed out")
}

func errorQuote(group SellerGroup, message string) *SellerQuote {
	return &SellerQuote{
		SellerID:    group.SellerID,
		SellerName:  group.SellerName,
		Items:       group.Items,
		Options:     []ShippingOption{},
		TotalWeight: decimal.Zero,
		TotalValue:  decimal.Zero,
		Error:       message,
	}
}

func summarize(quotes []SellerQuote) Summary {
	summary := Summary{TotalSellers: len(quotes), CheapestTotal: decimal.Zero}
	for _, quote := range quotes {
		summary.TotalOptions += len(quote.Options)
		if cheapest := CheapestOption(quote.Options); cheapest != nil {
			summary.CheapestTotal = summary.CheapestTotal.Add(cheapest.Price)
		}
		for _, opt := range quote.Options {
			if opt.IsFree {
				summary.HasFreeShipping = true
				break
			}
		}
	}
	return summary
}

// realSellerID maps the partitioner's fallback key back to "no seller" for
// rate lookup, so fallback groups only match global rate rows.
func realSellerID(sellerID string) string {
	if sellerID == DefaultSellerKey {
		return ""
	}
	return sellerID
}

func quoteCacheKey(postalCode, sellerID string, items []CartItem) string {
	h := sha256.New()
	for _, item := range items {
		fmt.Fprintf(h, "%s|%d|%s;", item.ProductID, item.Quantity, item.UnitPrice.String())
	}
	digest := hex.EncodeToString(h.Sum(nil))[:16]
	return strings.Join([]string{quoteCachePrefix, postalCode, sellerID, digest}, ":")
}

func isDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
