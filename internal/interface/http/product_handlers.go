package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domproduct "example.com/clothing-shop/internal/domain/product"
)

func (a *API) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	token, sessionID, err := a.tokenSvc.IssueToken()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"token":      token,
		"session_id": sessionID,
	})
}

// filterFromQuery builds the browse filter from query parameters,
// defaulting every dimension to "all" and the sort to name.
func filterFromQuery(r *http.Request) (domproduct.Filter, error) {
	f := domproduct.DefaultFilter()

	if v := r.URL.Query().Get("gender"); v != "" {
		f.Gender = v
	}
	if v := r.URL.Query().Get("category"); v != "" {
		f.Category = v
	}
	if v := r.URL.Query().Get("size"); v != "" {
		f.Size = v
	}
	if v := r.URL.Query().Get("color"); v != "" {
		f.Color = v
	}

	sortKey, err := domproduct.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		return f, err
	}
	f.Sort = sortKey
	return f, nil
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	list := a.catalogSvc.List(filter)
	products := make([]map[string]any, 0, len(list))
	for i := range list {
		products = append(products, mapProduct(&list[i]))
	}

	payload := map[string]any{
		"products": products,
		"count":    len(products),
	}
	if err := a.catalogSvc.Err(); err != nil {
		payload["degraded"] = true
		payload["error"] = err.Error()
	}
	writeJSON(w, http.StatusOK, payload)
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.catalogSvc.Get(chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapProduct(p))
}

func (a *API) handleRelatedProducts(w http.ResponseWriter, r *http.Request) {
	related, err := a.catalogSvc.Related(chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}

	products := make([]map[string]any, 0, len(related))
	for i := range related {
		products = append(products, mapProduct(&related[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"count":    len(products),
	})
}
