package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryGetSet(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	if _, ok, _ := mem.Get(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	if err := mem.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	value, ok, err := mem.Get(ctx, "k")
	if err != nil || !ok || value != "v" {
		t.Fatalf("unexpected get result value=%q ok=%v err=%v", value, ok, err)
	}
}

func TestMemoryExpiryUsesInjectedClock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mem := NewMemoryWithClock(func() time.Time { return now })

	if err := mem.Set(ctx, "quote", "cached", time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if _, ok, _ := mem.Get(ctx, "quote"); !ok {
		t.Fatal("expected hit before expiry")
	}

	now = now.Add(time.Hour + time.Minute)
	if _, ok, _ := mem.Get(ctx, "quote"); ok {
		t.Fatal("expected miss after TTL elapsed")
	}
	if mem.Len() != 0 {
		t.Fatalf("expired entry should be evicted on read, len=%d", mem.Len())
	}
}

func TestMemoryDeletePrefix(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()

	_ = mem.Set(ctx, "shipping_quote:01310100:a", "1", 0)
	_ = mem.Set(ctx, "shipping_quote:01310100:b", "2", 0)
	_ = mem.Set(ctx, "shipping_quote:99999999:c", "3", 0)

	if err := mem.DeletePrefix(ctx, "shipping_quote:01310100"); err != nil {
		t.Fatalf("delete prefix failed: %v", err)
	}

	if _, ok, _ := mem.Get(ctx, "shipping_quote:01310100:a"); ok {
		t.Fatal("expected prefix entry removed")
	}
	if _, ok, _ := mem.Get(ctx, "shipping_quote:99999999:c"); !ok {
		t.Fatal("unrelated entry should survive")
	}
}
