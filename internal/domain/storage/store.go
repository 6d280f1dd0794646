// Package storage defines the key-value snapshot store the cart,
// catalog cache and order history persist through. Every Set replaces
// the whole value for its key, so callers never see a partial write.
package storage

import (
	"context"
	"errors"
)

var ErrKeyNotFound = errors.New("key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// CatalogKey holds the cached product feed.
const CatalogKey = "catalog"

// CartKey is the snapshot key for one session's cart.
func CartKey(sessionID string) string {
	return "cart:" + sessionID
}

// OrdersKey is the snapshot key for one session's placed orders.
func OrdersKey(sessionID string) string {
	return "orders:" + sessionID
}
