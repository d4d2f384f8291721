package order

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreLookupHit(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	ord, err := store.Lookup(context.Background(), "bob@example.com")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if ord.OrderID != "ORD54321" {
		t.Fatalf("unexpected order id: %s", ord.OrderID)
	}
	if ord.Status != StatusDelivered {
		t.Fatalf("unexpected status: %s", ord.Status)
	}
	if ord.Amount != 1549 {
		t.Fatalf("unexpected amount: %d", ord.Amount)
	}
	if !ord.Delivered() {
		t.Fatal("Delivered() = false for delivered order")
	}
}

func TestMemoryStoreLookupNormalizesEmail(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	ord, err := store.Lookup(context.Background(), "  Sara@Example.COM ")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if ord.OrderID != "ORD98765" {
		t.Fatalf("unexpected order id: %s", ord.OrderID)
	}
	if ord.Delivered() {
		t.Fatal("Delivered() = true for processing order")
	}
}

func TestMemoryStoreLookupMiss(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	if _, err := store.Lookup(context.Background(), "nobody@example.com"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := store.Lookup(context.Background(), "   "); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	first, err := store.Lookup(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	first.Status = StatusDelivered
	first.Amount = 0

	second, err := store.Lookup(context.Background(), "john@example.com")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if second.Status != StatusOutForDelivery {
		t.Fatalf("stored order mutated: status = %s", second.Status)
	}
	if second.Amount != 1299 {
		t.Fatalf("stored order mutated: amount = %d", second.Amount)
	}
}

func TestMockOrdersCoverAllStatuses(t *testing.T) {
	t.Parallel()

	seen := map[Status]bool{}
	for _, o := range MockOrders() {
		seen[o.Status] = true
		if o.Amount <= 0 {
			t.Fatalf("order %s has non-positive amount", o.OrderID)
		}
	}

	for _, s := range []Status{StatusProcessing, StatusShipped, StatusOutForDelivery, StatusDelivered} {
		if !seen[s] {
			t.Fatalf("mock order book missing status %q", s)
		}
	}
}
