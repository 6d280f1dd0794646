package product

// Color is one of the swatches a product is offered in. Hex is the
// CSS color used by the UI layer.
type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// Product is an immutable catalog entry supplied by the catalog feed.
// JSON tags match the upstream feed format.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Gender      string   `json:"gender"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []Color  `json:"color"`
	Description string   `json:"description"`
	Material    string   `json:"material"`
}

// HasSize reports whether size is one of the product's offered sizes.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}

// DefaultSize returns the first offered size, or "" when the product
// has none.
func (p Product) DefaultSize() string {
	if len(p.Sizes) == 0 {
		return ""
	}
	return p.Sizes[0]
}
