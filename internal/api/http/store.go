package http

import (
	"net/http"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/service"
)

type StoreHandler struct {
	store service.StoreService
}

func NewStoreHandler(store service.StoreService) *StoreHandler {
	return &StoreHandler{store: store}
}

func (h *StoreHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.store.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

type cartRequest struct {
	Items []cartItemRequest `json:"items" validate:"required,min=1,dive"`
}

type cartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

func (req cartRequest) toDomain() []domain.CartItem {
	items := make([]domain.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items
}

func (h *StoreHandler) PreviewTotals(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	totals, err := h.store.PreviewTotals(r.Context(), userIDFrom(r.Context()), req.toDomain())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *StoreHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req cartRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	order, err := h.store.Checkout(r.Context(), userIDFrom(r.Context()), req.toDomain())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *StoreHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.ListOrders(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
