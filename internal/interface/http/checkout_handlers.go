package http

import (
	"net/http"

	dompricing "example.com/clothing-shop/internal/domain/pricing"
)

type checkoutRequest struct {
	Destination    string `json:"destination" validate:"required"`
	ShippingMethod string `json:"shipping_method" validate:"required"`
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sessionID := getSessionID(r.Context())
	placed, err := a.checkoutSvc.Checkout(
		r.Context(),
		sessionID,
		dompricing.Destination(req.Destination),
		dompricing.ShippingMethod(req.ShippingMethod),
	)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapOrder(placed))
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	sessionID := getSessionID(r.Context())
	orders, err := a.checkoutSvc.Orders(r.Context(), sessionID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	payload := make([]map[string]any, 0, len(orders))
	for i := range orders {
		payload = append(payload, mapOrder(&orders[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"orders": payload,
		"count":  len(payload),
	})
}
