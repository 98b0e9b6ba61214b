// Package warehouse holds sample logistics types for the resolver pipeline.
// They share the AccountId property with the store types without any common
// interface or embedding.
package warehouse

import (
	"time"
)

//resolver:generate Carrier include=resolver-generator/warehouse

// Shipment represents one outbound delivery.
type Shipment struct {
	ID          uint       `json:"id"`
	AccountId   string     `json:"account_id"`
	Carrier     string     `json:"carrier"`
	TrackingRef *string    `json:"tracking_ref,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// Inventory tracks stock per SKU. Note the different AccountID casing;
// matching is case-insensitive.
type Inventory struct {
	SKU       string `json:"sku"`
	AccountID string `json:"account_id"`
	OnHand    int    `json:"on_hand"`
	Reserved  int    `json:"reserved"`
}

// Location is a physical storage site. It has no AccountId on purpose.
type Location struct {
	Code     string `json:"code"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}
