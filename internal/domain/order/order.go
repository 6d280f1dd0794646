package order

import (
	"time"

	domcart "example.com/clothing-shop/internal/domain/cart"
	dompricing "example.com/clothing-shop/internal/domain/pricing"
)

// Order is the snapshot produced by a successful checkout. There is no
// payment or fulfillment state: checkout is synchronous and simulated,
// so an order is final the moment it exists.
type Order struct {
	ID          string                    `json:"id"`
	Lines       []domcart.LineItem        `json:"lines"`
	Breakdown   dompricing.Breakdown      `json:"breakdown"`
	Destination dompricing.Destination    `json:"destination"`
	Method      dompricing.ShippingMethod `json:"shipping_method"`
	PlacedAt    time.Time                 `json:"placed_at"`
}
