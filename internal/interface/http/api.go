package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domcart "example.com/clothing-shop/internal/domain/cart"
	domorder "example.com/clothing-shop/internal/domain/order"
	dompricing "example.com/clothing-shop/internal/domain/pricing"
	domproduct "example.com/clothing-shop/internal/domain/product"
	cartuc "example.com/clothing-shop/internal/usecase/cart"
	cataloguc "example.com/clothing-shop/internal/usecase/catalog"
	checkoutuc "example.com/clothing-shop/internal/usecase/checkout"
	pricinguc "example.com/clothing-shop/internal/usecase/pricing"
)

// TokenService issues and parses guest session tokens.
type TokenService interface {
	IssueToken() (token string, sessionID string, err error)
	ParseToken(token string) (sessionID string, err error)
}

type API struct {
	catalogSvc  *cataloguc.Service
	cartSvc     *cartuc.Service
	pricing     *pricinguc.Engine
	checkoutSvc *checkoutuc.Service
	tokenSvc    TokenService
	validator   *validator.Validate
}

type Dependencies struct {
	CatalogService  *cataloguc.Service
	CartService     *cartuc.Service
	PricingEngine   *pricinguc.Engine
	CheckoutService *checkoutuc.Service
	TokenService    TokenService
}

func NewAPI(deps Dependencies) *API {
	return &API{
		catalogSvc:  deps.CatalogService,
		cartSvc:     deps.CartService,
		pricing:     deps.PricingEngine,
		checkoutSvc: deps.CheckoutService,
		tokenSvc:    deps.TokenService,
		validator:   validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/session", a.handleCreateSession)
		r.Get("/products", a.handleListProducts)
		r.Get("/products/{id}", a.handleGetProduct)
		r.Get("/products/{id}/related", a.handleRelatedProducts)

		r.Group(func(sr chi.Router) {
			sr.Use(a.sessionMiddleware)
			sr.Get("/me/cart", a.handleGetCart)
			sr.Post("/me/cart/items", a.handleAddCartItem)
			sr.Patch("/me/cart/items/{lineID}", a.handleUpdateCartItem)
			sr.Delete("/me/cart/items/{lineID}", a.handleRemoveCartItem)
			sr.Delete("/me/cart", a.handleClearCart)
			sr.Get("/me/cart/summary", a.handleCartSummary)
			sr.Post("/me/checkout", a.handleCheckout)
			sr.Get("/me/orders", a.handleListOrders)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func mapProduct(p *domproduct.Product) map[string]any {
	colors := make([]map[string]string, 0, len(p.Colors))
	for _, c := range p.Colors {
		colors = append(colors, map[string]string{"name": c.Name, "hex": c.Hex})
	}
	return map[string]any{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price,
		"gender":      p.Gender,
		"category":    p.Category,
		"sizes":       p.Sizes,
		"colors":      colors,
		"description": p.Description,
		"material":    p.Material,
	}
}

func mapLineItem(line domcart.LineItem) map[string]any {
	return map[string]any{
		"line_id":    line.LineID,
		"product_id": line.ProductID,
		"name":       line.Name,
		"price":      line.UnitPrice,
		"size":       line.Size,
		"quantity":   line.Quantity,
		"line_total": line.UnitPrice * float64(line.Quantity),
	}
}

func mapBreakdown(b dompricing.Breakdown) map[string]any {
	return map[string]any{
		"merchandise_total": dompricing.FormatAmount(b.MerchandiseTotal),
		"shipping_cost":     dompricing.FormatAmount(b.ShippingCost),
		"tax":               dompricing.FormatAmount(b.Tax),
		"grand_total":       dompricing.FormatAmount(b.GrandTotal),
	}
}

func mapOrder(o *domorder.Order) map[string]any {
	lines := make([]map[string]any, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, mapLineItem(line))
	}
	return map[string]any{
		"id":              o.ID,
		"lines":           lines,
		"breakdown":       mapBreakdown(o.Breakdown),
		"destination":     o.Destination,
		"shipping_method": o.Method,
		"placed_at":       o.PlacedAt,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domcart.ErrMissingSize),
		errors.Is(err, domcart.ErrInvalidSize),
		errors.Is(err, domorder.ErrEmptyCart),
		errors.Is(err, dompricing.ErrInvalidDestination),
		errors.Is(err, dompricing.ErrInvalidShippingMethod):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domcart.ErrLineNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domproduct.ErrInvalidSortKey):
		respondError(w, http.StatusBadRequest, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
