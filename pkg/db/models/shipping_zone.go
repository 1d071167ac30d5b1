package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/mercadoviva/shipping-backend/pkg/types"
)

// ShippingZone maps postal code ranges to a carrier coverage area.
// Zones are admin-maintained reference data; quote calculation only reads them.
type ShippingZone struct {
	ID              uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string             `gorm:"column:name;not null"`
	StateCode       string             `gorm:"column:state_code;not null"`
	CarrierID       string             `gorm:"column:carrier_id;not null"`
	CarrierName     string             `gorm:"column:carrier_name;not null"`
	PostalRanges    types.PostalRanges `gorm:"column:postal_ranges;type:jsonb;serializer:json;not null"`
	DeliveryDaysMin int                `gorm:"column:delivery_days_min;not null"`
	DeliveryDaysMax int                `gorm:"column:delivery_days_max;not null"`
	IsActive        bool               `gorm:"column:is_active;not null;default:true"`
	CreatedAt       time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}

func (ShippingZone) TableName() string {
	return "shipping_zones"
}
