// Package store holds sample commerce types used to exercise the resolver
// pipeline end to end. Several unrelated types deliberately share the
// AccountId property.
package store

import (
	"time"
)

//resolver:generate AccountId

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64       `json:"id"`
	AccountId  string      `json:"account_id"`
	Status     OrderStatus `json:"status"`
	TotalCents int64       `json:"total_cents"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

// Customer represents the user placing orders. AccountId is optional here:
// guest checkouts have none.
type Customer struct {
	ID        int64    `json:"id"`
	AccountId *string  `json:"account_id,omitempty"`
	Email     string   `json:"email"`
	FullName  string   `json:"full_name"`
	Tags      []string `json:"tags,omitempty"`
}

// Refund references the order it reverses.
type Refund struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"order_id"`
	AccountId   string `json:"account_id"`
	AmountCents int64  `json:"amount_cents"`
}

// Tracked wraps any value with audit information. Being parameterized, it
// never enters the catalog even though it carries AccountId.
type Tracked[T any] struct {
	AccountId string
	Value     T
	SeenAt    time.Time
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// receipt is unexported and therefore invisible to the catalog.
type receipt struct {
	AccountId string
	Total     int64
}
