package shipping

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mercadoviva/shipping-backend/pkg/db/models"
	pkgerrors "github.com/mercadoviva/shipping-backend/pkg/errors"
)

// Repository is the read-only data store surface for quote calculation.
type Repository interface {
	FindZoneByPostalCode(ctx context.Context, postalCode string) (*models.ShippingZone, error)
	RatesForZoneAndSeller(ctx context.Context, zoneID uuid.UUID, sellerID string) ([]RatedModality, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository returns a shipping repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindZoneByPostalCode resolves the active zone covering the normalized
// 8-digit code. A CodeNotFound error means no coverage, which callers treat
// as a soft condition rather than a failure.
func (r *repository) FindZoneByPostalCode(ctx context.Context, postalCode string) (*models.ShippingZone, error) {
	var zones []models.ShippingZone
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&zones).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading shipping zones")
	}

	// Range containment lives in jsonb, so the match runs in process.
	for i := range zones {
		if zones[i].PostalRanges.Contains(postalCode) {
			return &zones[i], nil
		}
	}

	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no shipping zone covers this postal code")
}

// RatesForZoneAndSeller loads the active rate rows for the zone and merges
// them per modality: a seller-specific row completely shadows the global row
// for the same modality. Results come back ordered by modality priority then
// minimum delivery days. An empty slice is a valid "nothing configured"
// answer, not an error.
func (r *repository) RatesForZoneAndSeller(ctx context.Context, zoneID uuid.UUID, sellerID string) ([]RatedModality, error) {
	var rows []models.ShippingRate
	query := r.db.WithContext(ctx).
		Preload("Modality").
		Where("zone_id = ? AND is_active = ?", zoneID, true)
	if sellerID == "" {
		query = query.Where("seller_id IS NULL")
	} else {
		query = query.Where("seller_id IS NULL OR seller_id = ?", sellerID)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading shipping rates")
	}

	byModality := map[uuid.UUID]models.ShippingRate{}
	for _, row := range rows {
		if !row.Modality.IsActive {
			continue
		}
		existing, seen := byModality[row.ModalityID]
		if seen && existing.SellerID != nil {
			continue
		}
		if seen && row.SellerID == nil {
			continue
		}
		byModality[row.ModalityID] = row
	}

	rated := make([]RatedModality, 0, len(byModality))
	for _, row := range byModality {
		rated = append(rated, ratedFromRow(row))
	}

	sort.Slice(rated, func(i, j int) bool {
		if rated[i].Priority != rated[j].Priority {
			return rated[i].Priority < rated[j].Priority
		}
		return rated[i].DeliveryDaysMin < rated[j].DeliveryDaysMin
	})

	return rated, nil
}

func ratedFromRow(row models.ShippingRate) RatedModality {
	m := row.Modality
	return RatedModality{
		ModalityID:      m.ID,
		Code:            m.Code,
		Name:            m.Name,
		Description:     m.Description,
		PricingType:     m.PricingType,
		RatePerItem:     row.RatePerItem,
		RatePerShipment: row.RatePerShipment,
		RatePerKg:       row.RatePerKg,
		PriceMultiplier: m.PriceMultiplier,
		DaysMultiplier:  m.DaysMultiplier,
		DeliveryDaysMin: m.DeliveryDaysMin,
		DeliveryDaysMax: m.DeliveryDaysMax,
		MinPrice:        m.MinPrice,
		MaxPrice:        m.MaxPrice,
		Priority:        m.Priority,
		MarkupPercent:   row.MarkupPercent,
		Fees:            row.Fees,
		Threshold:       row.FreeShippingThreshold,
		FreeProducts:    row.FreeShippingProducts,
		FreeCategories:  row.FreeShippingCategories,
		SellerSpecific:  row.SellerID != nil,
	}
}
