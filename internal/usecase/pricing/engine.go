package pricing

import (
	domcart "example.com/clothing-shop/internal/domain/cart"
	dompricing "example.com/clothing-shop/internal/domain/pricing"
)

const (
	// freeShippingThreshold is inclusive: a merchandise total of
	// exactly 500 still pays shipping, anything above ships free.
	freeShippingThreshold = 500.0
	caTaxRate             = 0.05
)

// Engine computes pricing breakdowns from cart lines and a shipping
// selection. It holds only the rate table and is safe to call on every
// cart, destination or method change; it never mutates its input.
type Engine struct {
	rates map[dompricing.ShippingMethod]map[dompricing.Destination]float64
}

func NewEngine() *Engine {
	return &Engine{
		rates: map[dompricing.ShippingMethod]map[dompricing.Destination]float64{
			dompricing.ShippingStandard: {
				dompricing.DestinationCA:  10,
				dompricing.DestinationUS:  15,
				dompricing.DestinationINT: 20,
			},
			dompricing.ShippingExpress: {
				dompricing.DestinationCA:  25,
				dompricing.DestinationUS:  25,
				dompricing.DestinationINT: 30,
			},
			dompricing.ShippingPriority: {
				dompricing.DestinationCA:  35,
				dompricing.DestinationUS:  50,
				dompricing.DestinationINT: 50,
			},
		},
	}
}

// Compute derives the full breakdown for the given lines. Shipping
// applies only while 0 < merchandise total <= the free-shipping
// threshold; an empty cart ships for nothing too. Tax is a flat 5% for
// CA destinations. Amounts keep full precision; presentation rounds.
func (e *Engine) Compute(lines []domcart.LineItem, dest dompricing.Destination, method dompricing.ShippingMethod) (dompricing.Breakdown, error) {
	if !dest.IsValid() {
		return dompricing.Breakdown{}, dompricing.ErrInvalidDestination
	}
	if !method.IsValid() {
		return dompricing.Breakdown{}, dompricing.ErrInvalidShippingMethod
	}

	var merch float64
	for _, line := range lines {
		merch += line.UnitPrice * float64(line.Quantity)
	}

	var shipping float64
	if merch > 0 && merch <= freeShippingThreshold {
		shipping = e.rates[method][dest]
	}

	var tax float64
	if dest == dompricing.DestinationCA {
		tax = merch * caTaxRate
	}

	return dompricing.Breakdown{
		MerchandiseTotal: merch,
		ShippingCost:     shipping,
		Tax:              tax,
		GrandTotal:       merch + shipping + tax,
	}, nil
}
