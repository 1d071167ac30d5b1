package shipping

import "testing"

func TestCheapestOption(t *testing.T) {
	if CheapestOption(nil) != nil {
		t.Fatal("expected nil for empty list")
	}

	options := []ShippingOption{
		{ID: "a", Price: dec("30"), DeliveryDaysMin: 2},
		{ID: "b", Price: dec("12.50"), DeliveryDaysMin: 7},
		{ID: "c", Price: dec("20"), DeliveryDaysMin: 4},
	}
	if got := CheapestOption(options); got.ID != "b" {
		t.Fatalf("expected b, got %s", got.ID)
	}
}

func TestFastestOption(t *testing.T) {
	options := []ShippingOption{
		{ID: "a", Price: dec("30"), DeliveryDaysMin: 2},
		{ID: "b", Price: dec("12.50"), DeliveryDaysMin: 7},
		{ID: "c", Price: dec("20"), DeliveryDaysMin: 2},
	}
	// ties on days resolve to the cheaper option
	if got := FastestOption(options); got.ID != "c" {
		t.Fatalf("expected c, got %s", got.ID)
	}
	if FastestOption(nil) != nil {
		t.Fatal("expected nil for empty list")
	}
}

func TestCartShippingTotal(t *testing.T) {
	selected := []ShippingOption{
		{Price: dec("12.50")},
		{Price: dec("0"), IsFree: true},
		{Price: dec("20")},
	}
	if total := CartShippingTotal(selected); !total.Equal(dec("32.5")) {
		t.Fatalf("expected 32.50, got %s", total)
	}
	if !CartShippingTotal(nil).IsZero() {
		t.Fatal("expected zero for no selection")
	}
}
