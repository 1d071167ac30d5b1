package shipping

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mercadoviva/shipping-backend/pkg/db/models"
	"github.com/mercadoviva/shipping-backend/pkg/enums"
	pkgerrors "github.com/mercadoviva/shipping-backend/pkg/errors"
	"github.com/mercadoviva/shipping-backend/pkg/types"
)

func setupShippingTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	zones := `
CREATE TABLE IF NOT EXISTS shipping_zones (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  state_code TEXT NOT NULL,
  carrier_id TEXT NOT NULL,
  carrier_name TEXT NOT NULL,
  postal_ranges TEXT NOT NULL,
  delivery_days_min INTEGER NOT NULL,
  delivery_days_max INTEGER NOT NULL,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	modalities := `
CREATE TABLE IF NOT EXISTS shipping_modalities (
  id TEXT PRIMARY KEY,
  code TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  description TEXT,
  pricing_type TEXT NOT NULL,
  price_multiplier TEXT NOT NULL DEFAULT '1',
  days_multiplier TEXT NOT NULL DEFAULT '1',
  delivery_days_min INTEGER NOT NULL,
  delivery_days_max INTEGER NOT NULL,
  min_price TEXT,
  max_price TEXT,
  is_default INTEGER NOT NULL DEFAULT 0,
  priority INTEGER NOT NULL DEFAULT 100,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	rates := `
CREATE TABLE IF NOT EXISTS shipping_rates (
  id TEXT PRIMARY KEY,
  zone_id TEXT NOT NULL,
  modality_id TEXT NOT NULL,
  seller_id TEXT,
  rate_per_item TEXT NOT NULL DEFAULT '0',
  rate_per_shipment TEXT NOT NULL DEFAULT '0',
  rate_per_kg TEXT,
  markup_percent TEXT NOT NULL DEFAULT '0',
  fees TEXT,
  free_shipping_threshold TEXT,
  free_shipping_products TEXT,
  free_shipping_categories TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`

	for _, stmt := range []string{zones, modalities, rates} {
		require.NoError(t, db.Exec(stmt).Error)
	}

	return db
}

func seedZone(t *testing.T, db *gorm.DB, from, to string, active bool) *models.ShippingZone {
	t.Helper()
	zone := &models.ShippingZone{
		ID:              uuid.New(),
		Name:            "Grande São Paulo",
		StateCode:       "SP",
		CarrierID:       "correios",
		CarrierName:     "Correios",
		PostalRanges:    types.PostalRanges{{From: from, To: to}},
		DeliveryDaysMin: 3,
		DeliveryDaysMax: 5,
		IsActive:        active,
	}
	require.NoError(t, db.Create(zone).Error)
	return zone
}

func seedModality(t *testing.T, db *gorm.DB, code string, priority int, active bool) *models.ShippingModality {
	t.Helper()
	m := &models.ShippingModality{
		ID:              uuid.New(),
		Code:            code,
		Name:            code,
		PricingType:     enums.PricingPerShipment,
		PriceMultiplier: dec("1"),
		DaysMultiplier:  dec("1"),
		DeliveryDaysMin: 3,
		DeliveryDaysMax: 5,
		Priority:        priority,
		IsActive:        active,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func seedRate(t *testing.T, db *gorm.DB, zoneID, modalityID uuid.UUID, sellerID *string, perShipment string, active bool) *models.ShippingRate {
	t.Helper()
	rate := &models.ShippingRate{
		ID:              uuid.New(),
		ZoneID:          zoneID,
		ModalityID:      modalityID,
		SellerID:        sellerID,
		RatePerItem:     dec("0"),
		RatePerShipment: dec(perShipment),
		MarkupPercent:   dec("0"),
		IsActive:        active,
	}
	require.NoError(t, db.Create(rate).Error)
	return rate
}

func strPtr(s string) *string { return &s }

func TestFindZoneByPostalCode(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	zone := seedZone(t, db, "01000000", "01999999", true)
	seedZone(t, db, "20000000", "20999999", false)

	found, err := repo.FindZoneByPostalCode(ctx, "01310100")
	require.NoError(t, err)
	assert.Equal(t, zone.ID, found.ID)
	assert.Equal(t, "Correios", found.CarrierName)

	// inactive zone never matches even when the range covers the code
	_, err = repo.FindZoneByPostalCode(ctx, "20100000")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())

	_, err = repo.FindZoneByPostalCode(ctx, "00000000")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestRatesForZoneAndSellerOverride(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	zone := seedZone(t, db, "01000000", "01999999", true)
	economy := seedModality(t, db, "economy", 100, true)
	express := seedModality(t, db, "express", 10, true)

	seedRate(t, db, zone.ID, economy.ID, nil, "20", true)
	seedRate(t, db, zone.ID, economy.ID, strPtr("seller-1"), "12", true)
	seedRate(t, db, zone.ID, express.ID, nil, "40", true)

	rated, err := repo.RatesForZoneAndSeller(ctx, zone.ID, "seller-1")
	require.NoError(t, err)
	require.Len(t, rated, 2)

	// priority ordering: express (10) before economy (100)
	assert.Equal(t, "express", rated[0].Code)
	assert.Equal(t, "economy", rated[1].Code)

	// seller row shadows the global economy rate
	assert.True(t, rated[1].SellerSpecific)
	assert.True(t, rated[1].RatePerShipment.Equal(dec("12")))
	assert.False(t, rated[0].SellerSpecific)

	// another seller only sees global rows
	other, err := repo.RatesForZoneAndSeller(ctx, zone.ID, "seller-2")
	require.NoError(t, err)
	require.Len(t, other, 2)
	assert.True(t, other[1].RatePerShipment.Equal(dec("20")))
}

func TestRatesForZoneAndSellerSkipsInactive(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	zone := seedZone(t, db, "01000000", "01999999", true)
	active := seedModality(t, db, "economy", 100, true)
	retired := seedModality(t, db, "retired", 5, false)

	seedRate(t, db, zone.ID, active.ID, nil, "20", true)
	seedRate(t, db, zone.ID, retired.ID, nil, "10", true)
	seedRate(t, db, zone.ID, active.ID, strPtr("seller-1"), "8", false)

	rated, err := repo.RatesForZoneAndSeller(ctx, zone.ID, "seller-1")
	require.NoError(t, err)
	require.Len(t, rated, 1)
	assert.Equal(t, "economy", rated[0].Code)
	// the inactive seller override must not shadow the global row
	assert.True(t, rated[0].RatePerShipment.Equal(dec("20")))
}

func TestRatesForZoneAndSellerEmpty(t *testing.T) {
	db := setupShippingTestDB(t)
	repo := NewRepository(db)

	rated, err := repo.RatesForZoneAndSeller(context.Background(), uuid.New(), "seller-1")
	require.NoError(t, err)
	assert.Empty(t, rated)
}
