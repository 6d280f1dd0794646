package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	dompricing "example.com/clothing-shop/internal/domain/pricing"
)

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	// Size intentionally has no validate tag: an omitted size means
	// quick add, and a sizeless product must surface the domain's
	// missing-size error, not a 400.
	Size string `json:"size"`
	// Quantity below 1 is normalized, never rejected.
	Quantity int64 `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	p, err := a.catalogSvc.Get(req.ProductID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	// Quick add: an omitted size falls back to the product's first
	// offered size. Sizeless products still fail with missing-size.
	size := req.Size
	if size == "" {
		size = p.DefaultSize()
	}

	sessionID := getSessionID(r.Context())
	if err := a.cartSvc.AddItem(r.Context(), sessionID, *p, size, req.Quantity); err != nil {
		handleDomainError(w, err)
		return
	}

	count, err := a.cartSvc.TotalItemCount(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"status":      "added",
		"total_items": count,
	})
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	lines, err := a.cartSvc.Items(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	items := make([]map[string]any, 0, len(lines))
	var total int64
	for _, line := range lines {
		items = append(items, mapLineItem(line))
		total += line.Quantity
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":       items,
		"total_items": total,
	})
}

func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sessionID := getSessionID(r.Context())
	lineID := chi.URLParam(r, "lineID")
	if err := a.cartSvc.UpdateQuantity(r.Context(), sessionID, lineID, req.Quantity); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	lineID := chi.URLParam(r, "lineID")
	if err := a.cartSvc.RemoveLine(r.Context(), sessionID, lineID); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	if err := a.cartSvc.Clear(r.Context(), sessionID); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// shippingSelection pulls destination and method from the query,
// defaulting to the UI's initial CA/standard selection.
func shippingSelection(r *http.Request) (dompricing.Destination, dompricing.ShippingMethod) {
	dest := dompricing.DestinationCA
	if v := r.URL.Query().Get("destination"); v != "" {
		dest = dompricing.Destination(v)
	}
	method := dompricing.ShippingStandard
	if v := r.URL.Query().Get("shipping_method"); v != "" {
		method = dompricing.ShippingMethod(v)
	}
	return dest, method
}

func (a *API) handleCartSummary(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	lines, err := a.cartSvc.Items(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	dest, method := shippingSelection(r)
	breakdown, err := a.pricing.Compute(lines, dest, method)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapBreakdown(breakdown))
}
