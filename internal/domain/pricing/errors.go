package pricing

import "errors"

var (
	ErrInvalidDestination    = errors.New("invalid shipping destination")
	ErrInvalidShippingMethod = errors.New("invalid shipping method")
)
