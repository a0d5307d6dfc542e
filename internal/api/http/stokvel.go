package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/service"
)

type StokvelHandler struct {
	stokvels service.StokvelService
}

func NewStokvelHandler(stokvels service.StokvelService) *StokvelHandler {
	return &StokvelHandler{stokvels: stokvels}
}

func (h *StokvelHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.stokvels.ListStokvelTypes(r.Context()))
}

type joinStokvelRequest struct {
	StokvelType         domain.StokvelType `json:"stokvel_type" validate:"required"`
	MonthlyContribution decimal.Decimal    `json:"monthly_contribution"`
}

func (h *StokvelHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req joinStokvelRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	m, err := h.stokvels.Join(r.Context(), userIDFrom(r.Context()), req.StokvelType, req.MonthlyContribution)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *StokvelHandler) List(w http.ResponseWriter, r *http.Request) {
	memberships, err := h.stokvels.ListMemberships(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, memberships)
}

func (h *StokvelHandler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.stokvels.GetMembership(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *StokvelHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	m, err := h.stokvels.Contribute(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"], req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *StokvelHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	withdrawal, err := h.stokvels.RequestWithdrawal(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"], req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, withdrawal)
}

func (h *StokvelHandler) CumulativeSavings(w http.ResponseWriter, r *http.Request) {
	total, err := h.stokvels.CumulativeSavings(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]decimal.Decimal{"cumulative_savings": total})
}
