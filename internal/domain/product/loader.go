package product

import "context"

// Loader fetches the full product list from wherever the catalog
// lives. Implementations are free to fail; the catalog service turns
// a failed load into a degraded empty catalog.
type Loader interface {
	LoadCatalog(ctx context.Context) ([]Product, error)
}
