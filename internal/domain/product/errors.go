package product

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidSortKey     = errors.New("invalid sort key")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)
