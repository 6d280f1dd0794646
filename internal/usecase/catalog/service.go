package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	domproduct "example.com/clothing-shop/internal/domain/product"
	"example.com/clothing-shop/internal/domain/storage"
)

// relatedLimit caps the "you may also like" panel.
const relatedLimit = 4

// Service owns the loaded product list. Load runs once at startup;
// after that the catalog is read-only, so no locking is needed for
// concurrent queries.
type Service struct {
	loader  domproduct.Loader
	cache   storage.Store
	log     logrus.FieldLogger
	items   []domproduct.Product
	loadErr error
}

func NewService(loader domproduct.Loader, cache storage.Store, log logrus.FieldLogger) *Service {
	return &Service{
		loader: loader,
		cache:  cache,
		log:    log,
	}
}

// Load populates the catalog, preferring the cached snapshot over a
// fresh fetch. A corrupt cache falls through to the fetch; a failed
// fetch leaves the service in a degraded state (empty catalog, Err
// set) rather than returning a fatal error. Cart and filter operations
// stay valid either way.
func (s *Service) Load(ctx context.Context) error {
	s.items = nil
	s.loadErr = nil

	if data, err := s.cache.Get(ctx, storage.CatalogKey); err == nil {
		var cached []domproduct.Product
		decodeErr := json.Unmarshal(data, &cached)
		if decodeErr == nil {
			s.items = cached
			return nil
		}
		s.log.WithError(decodeErr).Warn("cached catalog is corrupt, refetching")
	} else if !errors.Is(err, storage.ErrKeyNotFound) {
		s.log.WithError(err).Warn("catalog cache read failed, refetching")
	}

	items, err := s.loader.LoadCatalog(ctx)
	if err != nil {
		s.loadErr = fmt.Errorf("%w: %v", domproduct.ErrCatalogUnavailable, err)
		s.log.WithError(err).Error("catalog load failed, serving empty catalog")
		return s.loadErr
	}
	s.items = items

	if data, err := json.Marshal(items); err == nil {
		if err := s.cache.Set(ctx, storage.CatalogKey, data); err != nil {
			s.log.WithError(err).Warn("catalog cache write failed")
		}
	}
	return nil
}

// Err reports the degraded-state flag: non-nil when the last Load
// could produce no catalog.
func (s *Service) Err() error {
	return s.loadErr
}

// Products returns the full loaded catalog in feed order.
func (s *Service) Products() []domproduct.Product {
	return s.items
}

// List applies the browse filter and sort to the catalog.
func (s *Service) List(f domproduct.Filter) []domproduct.Product {
	return domproduct.Apply(s.items, f)
}

// Get looks a product up by id.
func (s *Service) Get(id string) (*domproduct.Product, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			p := s.items[i]
			return &p, nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

// Related returns the products shown alongside id on its detail page:
// same gender and category, excluding the product itself.
func (s *Service) Related(id string) ([]domproduct.Product, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return domproduct.Related(s.items, *p, relatedLimit), nil
}
