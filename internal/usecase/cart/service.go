package cart

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	domcart "example.com/clothing-shop/internal/domain/cart"
	domproduct "example.com/clothing-shop/internal/domain/product"
	"example.com/clothing-shop/internal/domain/storage"
)

// Service manages one cart snapshot per session. Every mutation loads
// the snapshot, applies the change, and saves before returning, so the
// persisted representation never diverges from what the caller
// observed.
type Service struct {
	store storage.Store
	log   logrus.FieldLogger
}

func NewService(store storage.Store, log logrus.FieldLogger) *Service {
	return &Service{store: store, log: log}
}

// Items returns the session's cart lines in insertion order. An absent
// or corrupt snapshot yields an empty cart, never an error: corruption
// is logged and the cart resets.
func (s *Service) Items(ctx context.Context, sessionID string) ([]domcart.LineItem, error) {
	data, err := s.store.Get(ctx, storage.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []domcart.LineItem{}, nil
		}
		return nil, err
	}

	lines, err := domcart.DecodeSnapshot(data)
	if err != nil {
		s.log.WithError(err).WithField("session_id", sessionID).
			Warn("stored cart is corrupt, resetting to empty")
		return []domcart.LineItem{}, nil
	}
	return lines, nil
}

// AddItem puts quantity units of product in the given size into the
// cart. A missing size is rejected, as is a size the product is not
// offered in; a quantity below 1 is normalized to 1. Adding an
// existing (product, size) combination increments that line instead
// of appending a duplicate row. Name and price are snapshotted from
// the product at this moment.
func (s *Service) AddItem(ctx context.Context, sessionID string, p domproduct.Product, size string, quantity int64) error {
	if size == "" {
		return domcart.ErrMissingSize
	}
	if !p.HasSize(size) {
		return domcart.ErrInvalidSize
	}
	if quantity < 1 {
		quantity = 1
	}

	lines, err := s.Items(ctx, sessionID)
	if err != nil {
		return err
	}

	merged := false
	for i := range lines {
		if lines[i].ProductID == p.ID && lines[i].Size == size {
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, domcart.LineItem{
			LineID:    domcart.NewLineID(),
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Size:      size,
			Quantity:  quantity,
		})
	}

	return s.save(ctx, sessionID, lines)
}

// UpdateQuantity sets the quantity of the line identified by lineID.
// Invalid quantities are normalized to 1, never rejected.
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int64) error {
	if quantity < 1 {
		quantity = 1
	}

	lines, err := s.Items(ctx, sessionID)
	if err != nil {
		return err
	}

	for i := range lines {
		if lines[i].LineID == lineID {
			lines[i].Quantity = quantity
			return s.save(ctx, sessionID, lines)
		}
	}
	return domcart.ErrLineNotFound
}

// RemoveLine deletes exactly the line identified by lineID.
func (s *Service) RemoveLine(ctx context.Context, sessionID, lineID string) error {
	lines, err := s.Items(ctx, sessionID)
	if err != nil {
		return err
	}

	for i := range lines {
		if lines[i].LineID == lineID {
			lines = append(lines[:i], lines[i+1:]...)
			return s.save(ctx, sessionID, lines)
		}
	}
	return domcart.ErrLineNotFound
}

// Clear empties the cart, persisting the empty snapshot.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.save(ctx, sessionID, []domcart.LineItem{})
}

// TotalItemCount sums all line quantities (the nav badge).
func (s *Service) TotalItemCount(ctx context.Context, sessionID string) (int64, error) {
	lines, err := s.Items(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return domcart.TotalItemCount(lines), nil
}

func (s *Service) save(ctx context.Context, sessionID string, lines []domcart.LineItem) error {
	data, err := domcart.EncodeSnapshot(lines)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, storage.CartKey(sessionID), data)
}
