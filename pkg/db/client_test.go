package db

import (
	"context"
	"errors"
	"testing"

	"github.com/mercadoviva/shipping-backend/pkg/config"
)

func TestNewRequiresDSN(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{}, nil); err == nil {
		t.Fatal("expected error when DSN is empty")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil, "") {
		t.Fatal("nil error should not be a unique violation")
	}
	err := errors.New(`duplicate key value violates unique constraint "shipping_rates_zone_modality_seller_key"`)
	if !IsUniqueViolation(err, "") {
		t.Fatal("expected generic duplicate key detection")
	}
	if !IsUniqueViolation(err, "shipping_rates_zone_modality_seller_key") {
		t.Fatal("expected named constraint detection")
	}
	if IsUniqueViolation(err, "other_constraint") {
		t.Fatal("unexpected match for unrelated constraint")
	}
}
