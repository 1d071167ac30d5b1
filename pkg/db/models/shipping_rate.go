package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercadoviva/shipping-backend/pkg/types"
)

// ShippingRate binds a modality to a zone with the base freight prices and
// the seller-level configuration. A NULL seller_id row is the global default;
// a seller-specific row for the same (zone, modality) shadows it entirely.
type ShippingRate struct {
	ID                     uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ZoneID                 uuid.UUID          `gorm:"column:zone_id;type:uuid;not null;index"`
	ModalityID             uuid.UUID          `gorm:"column:modality_id;type:uuid;not null;index"`
	SellerID               *string            `gorm:"column:seller_id;index"`
	RatePerItem            decimal.Decimal    `gorm:"column:rate_per_item;type:numeric(12,2);not null;default:0"`
	RatePerShipment        decimal.Decimal    `gorm:"column:rate_per_shipment;type:numeric(12,2);not null;default:0"`
	RatePerKg              *decimal.Decimal   `gorm:"column:rate_per_kg;type:numeric(12,2)"`
	MarkupPercent          decimal.Decimal    `gorm:"column:markup_percent;type:numeric(8,3);not null;default:0"`
	Fees                   *types.FeeSchedule `gorm:"column:fees;type:jsonb;serializer:json"`
	FreeShippingThreshold  *decimal.Decimal   `gorm:"column:free_shipping_threshold;type:numeric(12,2)"`
	FreeShippingProducts   []string           `gorm:"column:free_shipping_products;type:jsonb;serializer:json"`
	FreeShippingCategories []string           `gorm:"column:free_shipping_categories;type:jsonb;serializer:json"`
	IsActive               bool               `gorm:"column:is_active;not null;default:true"`
	CreatedAt              time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt              time.Time          `gorm:"column:updated_at;autoUpdateTime"`

	Modality ShippingModality `gorm:"foreignKey:ModalityID"`
}

func (ShippingRate) TableName() string {
	return "shipping_rates"
}
