package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mercadoviva/shipping-backend/pkg/enums"
)

// ShippingModality is a service level (economy, express, pickup...) with its
// pricing shape and delivery window adjustments. Lower priority sorts first.
type ShippingModality struct {
	ID              uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code            string            `gorm:"column:code;not null;uniqueIndex"`
	Name            string            `gorm:"column:name;not null"`
	Description     string            `gorm:"column:description"`
	PricingType     enums.PricingType `gorm:"column:pricing_type;type:text;not null"`
	PriceMultiplier decimal.Decimal   `gorm:"column:price_multiplier;type:numeric(8,3);not null;default:1"`
	DaysMultiplier  decimal.Decimal   `gorm:"column:days_multiplier;type:numeric(8,3);not null;default:1"`
	DeliveryDaysMin int               `gorm:"column:delivery_days_min;not null"`
	DeliveryDaysMax int               `gorm:"column:delivery_days_max;not null"`
	MinPrice        *decimal.Decimal  `gorm:"column:min_price;type:numeric(12,2)"`
	MaxPrice        *decimal.Decimal  `gorm:"column:max_price;type:numeric(12,2)"`
	IsDefault       bool              `gorm:"column:is_default;not null;default:false"`
	Priority        int               `gorm:"column:priority;not null;default:100"`
	IsActive        bool              `gorm:"column:is_active;not null;default:true"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (ShippingModality) TableName() string {
	return "shipping_modalities"
}
