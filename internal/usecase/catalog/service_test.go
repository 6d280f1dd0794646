package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	domproduct "example.com/clothing-shop/internal/domain/product"
	"example.com/clothing-shop/internal/domain/storage"
	"example.com/clothing-shop/internal/infra/persistence/memory"
)

type mockLoader struct {
	items []domproduct.Product
	err   error
	calls int
}

func (m *mockLoader) LoadCatalog(ctx context.Context) ([]domproduct.Product, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

func feed() []domproduct.Product {
	return []domproduct.Product{
		{ID: "P1", Name: "Wool Sweater", Price: 89.99, Gender: "Mens", Category: "Tops", Sizes: []string{"M"}},
		{ID: "P2", Name: "Linen Shirt", Price: 49.99, Gender: "Mens", Category: "Tops", Sizes: []string{"L"}},
		{ID: "P3", Name: "Denim Jacket", Price: 129.99, Gender: "Womens", Category: "Outerwear"},
	}
}

func TestLoad_FetchesAndCaches(t *testing.T) {
	loader := &mockLoader{items: feed()}
	cache := memory.NewStore()
	svc := NewService(loader, cache, testLogger())

	err := svc.Load(context.Background())

	require.NoError(t, err)
	require.NoError(t, svc.Err())
	require.Len(t, svc.Products(), 3)
	require.Equal(t, 1, loader.calls)

	cached, err := cache.Get(context.Background(), storage.CatalogKey)
	require.NoError(t, err)
	var items []domproduct.Product
	require.NoError(t, json.Unmarshal(cached, &items))
	require.Len(t, items, 3)
}

func TestLoad_PrefersCache(t *testing.T) {
	loader := &mockLoader{items: feed()}
	cache := memory.NewStore()
	data, err := json.Marshal(feed()[:1])
	require.NoError(t, err)
	require.NoError(t, cache.Set(context.Background(), storage.CatalogKey, data))

	svc := NewService(loader, cache, testLogger())
	require.NoError(t, svc.Load(context.Background()))

	require.Len(t, svc.Products(), 1)
	require.Zero(t, loader.calls, "a valid cache skips the fetch")
}

func TestLoad_CorruptCacheFallsThroughToFetch(t *testing.T) {
	loader := &mockLoader{items: feed()}
	cache := memory.NewStore()
	require.NoError(t, cache.Set(context.Background(), storage.CatalogKey, []byte("<html>")))

	svc := NewService(loader, cache, testLogger())
	require.NoError(t, svc.Load(context.Background()))

	require.Len(t, svc.Products(), 3)
	require.Equal(t, 1, loader.calls)
}

func TestLoad_CorruptCacheWarningCarriesDecodeError(t *testing.T) {
	loader := &mockLoader{items: feed()}
	cache := memory.NewStore()
	require.NoError(t, cache.Set(context.Background(), storage.CatalogKey, []byte("<html>")))

	logger, hook := logtest.NewNullLogger()
	svc := NewService(loader, cache, logger)
	require.NoError(t, svc.Load(context.Background()))

	var warned *logrus.Entry
	for i := range hook.Entries {
		if hook.Entries[i].Level == logrus.WarnLevel {
			warned = &hook.Entries[i]
			break
		}
	}
	require.NotNil(t, warned)
	require.Contains(t, warned.Message, "corrupt")
	require.NotNil(t, warned.Data[logrus.ErrorKey], "the warning must carry the decode failure")
}

func TestLoad_FailureDegradesToEmptyCatalog(t *testing.T) {
	loader := &mockLoader{err: errors.New("network down")}
	svc := NewService(loader, memory.NewStore(), testLogger())

	err := svc.Load(context.Background())

	require.ErrorIs(t, err, domproduct.ErrCatalogUnavailable)
	require.ErrorIs(t, svc.Err(), domproduct.ErrCatalogUnavailable)
	require.Empty(t, svc.Products())

	// Filtering still works, it just sees no products.
	require.Empty(t, svc.List(domproduct.DefaultFilter()))
}

func TestList_AppliesFilter(t *testing.T) {
	loader := &mockLoader{items: feed()}
	svc := NewService(loader, memory.NewStore(), testLogger())
	require.NoError(t, svc.Load(context.Background()))

	f := domproduct.DefaultFilter()
	f.Gender = "Womens"

	result := svc.List(f)

	require.Len(t, result, 1)
	require.Equal(t, "P3", result[0].ID)
}

func TestGet(t *testing.T) {
	loader := &mockLoader{items: feed()}
	svc := NewService(loader, memory.NewStore(), testLogger())
	require.NoError(t, svc.Load(context.Background()))

	p, err := svc.Get("P2")
	require.NoError(t, err)
	require.Equal(t, "Linen Shirt", p.Name)

	_, err = svc.Get("nope")
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}

func TestRelated(t *testing.T) {
	loader := &mockLoader{items: feed()}
	svc := NewService(loader, memory.NewStore(), testLogger())
	require.NoError(t, svc.Load(context.Background()))

	related, err := svc.Related("P1")
	require.NoError(t, err)
	require.Len(t, related, 1)
	require.Equal(t, "P2", related[0].ID)

	_, err = svc.Related("nope")
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}
