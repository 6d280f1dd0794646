package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domcart "example.com/clothing-shop/internal/domain/cart"
	domorder "example.com/clothing-shop/internal/domain/order"
	dompricing "example.com/clothing-shop/internal/domain/pricing"
	"example.com/clothing-shop/internal/domain/storage"
)

type CartService interface {
	Items(ctx context.Context, sessionID string) ([]domcart.LineItem, error)
	Clear(ctx context.Context, sessionID string) error
}

type Pricer interface {
	Compute(lines []domcart.LineItem, dest dompricing.Destination, method dompricing.ShippingMethod) (dompricing.Breakdown, error)
}

// Service is the checkout flow: validate the cart is non-empty, freeze
// an order snapshot, clear the cart. The flow is synchronous and never
// reaches an external service, so there is no processing state and no
// partial failure to recover from.
type Service struct {
	carts  CartService
	pricer Pricer
	store  storage.Store
	log    logrus.FieldLogger
}

func NewService(carts CartService, pricer Pricer, store storage.Store, log logrus.FieldLogger) *Service {
	return &Service{
		carts:  carts,
		pricer: pricer,
		store:  store,
		log:    log,
	}
}

// Checkout places an order for the session's cart. An empty cart is
// rejected with ErrEmptyCart and nothing changes. On success the order
// is appended to the session's history and the cart is cleared.
func (s *Service) Checkout(ctx context.Context, sessionID string, dest dompricing.Destination, method dompricing.ShippingMethod) (*domorder.Order, error) {
	lines, err := s.carts.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domorder.ErrEmptyCart
	}

	breakdown, err := s.pricer.Compute(lines, dest, method)
	if err != nil {
		return nil, err
	}

	placed := domorder.Order{
		ID:          uuid.NewString(),
		Lines:       lines,
		Breakdown:   breakdown,
		Destination: dest,
		Method:      method,
		PlacedAt:    time.Now().UTC(),
	}

	history, err := s.Orders(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	history = append(history, placed)

	data, err := json.Marshal(history)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, storage.OrdersKey(sessionID), data); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return &placed, nil
}

// Orders lists the session's placed orders, oldest first. Corrupt
// history resets to empty, mirroring the cart snapshot policy.
func (s *Service) Orders(ctx context.Context, sessionID string) ([]domorder.Order, error) {
	data, err := s.store.Get(ctx, storage.OrdersKey(sessionID))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []domorder.Order{}, nil
		}
		return nil, err
	}

	var orders []domorder.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		s.log.WithError(err).WithField("session_id", sessionID).
			Warn("stored order history is corrupt, resetting to empty")
		return []domorder.Order{}, nil
	}
	return orders, nil
}
