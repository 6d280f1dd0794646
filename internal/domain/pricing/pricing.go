package pricing

import "fmt"

type Destination string

const (
	DestinationCA  Destination = "CA"
	DestinationUS  Destination = "US"
	DestinationINT Destination = "INT"
)

func (d Destination) IsValid() bool {
	switch d {
	case DestinationCA, DestinationUS, DestinationINT:
		return true
	default:
		return false
	}
}

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
	ShippingPriority ShippingMethod = "priority"
)

func (m ShippingMethod) IsValid() bool {
	switch m {
	case ShippingStandard, ShippingExpress, ShippingPriority:
		return true
	default:
		return false
	}
}

// Breakdown is a derived pricing summary, never stored. Amounts carry
// full float precision; rounding to 2 decimals happens only at
// presentation via FormatAmount.
type Breakdown struct {
	MerchandiseTotal float64 `json:"merchandise_total"`
	ShippingCost     float64 `json:"shipping_cost"`
	Tax              float64 `json:"tax"`
	GrandTotal       float64 `json:"grand_total"`
}

// FormatAmount renders a monetary amount for display, rounded to two
// decimal places.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
