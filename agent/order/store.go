package order

import (
	"context"
	"errors"
	"strings"

	"github.com/uptrace/bun"
)

var (
	ErrOrderNotFound = errors.New("no order for email")
	ErrInvalidEmail  = errors.New("email is empty")
)

// Status is the delivery status vocabulary of an order.
type Status string

const (
	StatusProcessing     Status = "Processing"
	StatusShipped        Status = "Shipped"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
)

// Order is the record describing one customer's order. It is the single source
// of truth every category handler consults; handlers never mutate it.
type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	Email            string `bun:"email,pk" json:"email"`
	OrderID          string `bun:"order_id,notnull" json:"order_id"`
	Status           Status `bun:"status,notnull" json:"status"`
	Carrier          string `bun:"carrier" json:"carrier"`
	ExpectedDelivery string `bun:"expected_delivery" json:"expected_delivery"`
	TrackingLink     string `bun:"tracking_link" json:"tracking_link"`
	Amount           int    `bun:"amount,notnull" json:"amount"`
}

// Delivered reports whether the order has reached the customer. The refund and
// return handlers branch on this instead of asking the model to interpret the
// status text.
func (o *Order) Delivered() bool {
	return o != nil && o.Status == StatusDelivered
}

// Store is the lookup contract used by the category handlers.
type Store interface {
	Lookup(ctx context.Context, email string) (*Order, error)
}

// MockOrders returns the demo order book keyed by customer email.
func MockOrders() []Order {
	return []Order{
		{
			Email:            "john@example.com",
			OrderID:          "ORD12345",
			Status:           StatusOutForDelivery,
			Carrier:          "BlueDart",
			ExpectedDelivery: "2025-07-06",
			TrackingLink:     "https://track.bluedart.com/ORD12345",
			Amount:           1299,
		},
		{
			Email:            "alice@example.com",
			OrderID:          "ORD67890",
			Status:           StatusShipped,
			Carrier:          "Delhivery",
			ExpectedDelivery: "2025-07-08",
			TrackingLink:     "https://track.delhivery.com/ORD67890",
			Amount:           899,
		},
		{
			Email:            "bob@example.com",
			OrderID:          "ORD54321",
			Status:           StatusDelivered,
			Carrier:          "Xpressbees",
			ExpectedDelivery: "2025-07-02",
			TrackingLink:     "https://xpressbees.com/track/ORD54321",
			Amount:           1549,
		},
		{
			Email:            "sara@example.com",
			OrderID:          "ORD98765",
			Status:           StatusProcessing,
			Carrier:          "Ecom Express",
			ExpectedDelivery: "2025-07-10",
			TrackingLink:     "https://ecomexpress.in/track/ORD98765",
			Amount:           2199,
		},
	}
}

// MemoryStore is a read-only in-memory order book.
type MemoryStore struct {
	orders map[string]Order
}

// NewMemoryStore builds a MemoryStore holding the demo order book.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWith(MockOrders())
}

// NewMemoryStoreWith builds a MemoryStore from the given records.
func NewMemoryStoreWith(orders []Order) *MemoryStore {
	m := make(map[string]Order, len(orders))
	for _, o := range orders {
		m[normalizeEmail(o.Email)] = o
	}
	return &MemoryStore{orders: m}
}

// Lookup returns a copy of the order for email, or ErrOrderNotFound.
func (s *MemoryStore) Lookup(_ context.Context, email string) (*Order, error) {
	key := normalizeEmail(email)
	if key == "" {
		return nil, ErrInvalidEmail
	}
	o, ok := s.orders[key]
	if !ok {
		return nil, ErrOrderNotFound
	}
	clone := o
	return &clone, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
