package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	domproduct "example.com/clothing-shop/internal/domain/product"
	"example.com/clothing-shop/internal/infra/persistence/memory"
	"example.com/clothing-shop/internal/infra/security"
	cartuc "example.com/clothing-shop/internal/usecase/cart"
	cataloguc "example.com/clothing-shop/internal/usecase/catalog"
	checkoutuc "example.com/clothing-shop/internal/usecase/checkout"
	pricinguc "example.com/clothing-shop/internal/usecase/pricing"
)

type stubLoader struct {
	items []domproduct.Product
}

func (s *stubLoader) LoadCatalog(ctx context.Context) ([]domproduct.Product, error) {
	return s.items, nil
}

func testFeed() []domproduct.Product {
	return []domproduct.Product{
		{
			ID: "P1", Name: "Wool Sweater", Price: 29.99, Gender: "Mens", Category: "Tops",
			Sizes:  []string{"S", "M", "L"},
			Colors: []domproduct.Color{{Name: "Navy", Hex: "#001f3f"}},
		},
		{
			ID: "P2", Name: "Linen Shirt", Price: 49.99, Gender: "Mens", Category: "Tops",
			Sizes:  []string{"M", "L"},
			Colors: []domproduct.Color{{Name: "White", Hex: "#ffffff"}},
		},
		{
			ID: "P3", Name: "Gift Card", Price: 25.00, Gender: "Unisex", Category: "Accessories",
			// No sizes: adding without a size selection must fail.
		},
	}
}

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

// newTestServer wires the full API over an in-memory store and returns
// the handler together with a valid session token.
func newTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()

	store := memory.NewStore()
	catalogSvc := cataloguc.NewService(&stubLoader{items: testFeed()}, store, testLogger())
	require.NoError(t, catalogSvc.Load(context.Background()))

	cartSvc := cartuc.NewService(store, testLogger())
	engine := pricinguc.NewEngine()
	checkoutSvc := checkoutuc.NewService(cartSvc, engine, store, testLogger())
	sessions := security.NewSessionService("test-secret", time.Hour)

	api := NewAPI(Dependencies{
		CatalogService:  catalogSvc,
		CartService:     cartSvc,
		PricingEngine:   engine,
		CheckoutService: checkoutSvc,
		TokenService:    sessions,
	})

	token, _, err := sessions.IssueToken()
	require.NoError(t, err)
	return api.Router(), token
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}
