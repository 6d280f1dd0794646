package cart

import "errors"

var (
	ErrMissingSize  = errors.New("a size must be selected")
	ErrInvalidSize  = errors.New("size not offered for this product")
	ErrLineNotFound = errors.New("cart line not found")
)
