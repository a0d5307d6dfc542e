package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/service"
)

type FuneralHandler struct {
	funerals service.FuneralService
}

func NewFuneralHandler(funerals service.FuneralService) *FuneralHandler {
	return &FuneralHandler{funerals: funerals}
}

func (h *FuneralHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.funerals.ListPlans(r.Context()))
}

type premiumQuoteRequest struct {
	PlanID             domain.FuneralPlanID `json:"plan_id" validate:"required"`
	AdditionalBenefits []string             `json:"additional_benefits"`
}

func (h *FuneralHandler) QuotePremium(w http.ResponseWriter, r *http.Request) {
	var req premiumQuoteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	premium, err := h.funerals.QuotePremium(r.Context(), req.PlanID, req.AdditionalBenefits)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"monthly_premium": premium.StringFixed(2)})
}

type activateCoverRequest struct {
	PlanID             domain.FuneralPlanID  `json:"plan_id" validate:"required"`
	AdditionalBenefits []string              `json:"additional_benefits"`
	Family             *domain.FamilyDetails `json:"family"`
}

func (h *FuneralHandler) Activate(w http.ResponseWriter, r *http.Request) {
	var req activateCoverRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	m, err := h.funerals.Activate(r.Context(), userIDFrom(r.Context()), req.PlanID, req.AdditionalBenefits, req.Family)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *FuneralHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.funerals.Cancel(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type claimRequest struct {
	CauseOfDeath   domain.CauseOfDeath   `json:"cause_of_death" validate:"required"`
	MemberCategory domain.MemberCategory `json:"member_category" validate:"required"`
}

func (h *FuneralHandler) SubmitClaim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	claim, err := h.funerals.SubmitClaim(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"], req.CauseOfDeath, req.MemberCategory)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, claim)
}

func (h *FuneralHandler) GetActiveCover(w http.ResponseWriter, r *http.Request) {
	m, err := h.funerals.GetActiveCover(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}
