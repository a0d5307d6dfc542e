package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"stokvel-backend/internal/service"
)

type LoanHandler struct {
	loans service.LoanService
}

func NewLoanHandler(loans service.LoanService) *LoanHandler {
	return &LoanHandler{loans: loans}
}

type loanQuoteRequest struct {
	Principal  decimal.Decimal `json:"principal"`
	TermMonths int             `json:"term_months" validate:"required,min=1"`
}

func (h *LoanHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req loanQuoteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	quote, err := h.loans.QuoteLoan(r.Context(), req.Principal, req.TermMonths)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func (h *LoanHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req loanQuoteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	loan, err := h.loans.ApplyForLoan(r.Context(), userIDFrom(r.Context()), req.Principal, req.TermMonths)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, loan)
}

func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	loan, err := h.loans.GetLoan(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	loans, err := h.loans.ListLoans(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loans)
}

type loanPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *LoanHandler) MakePayment(w http.ResponseWriter, r *http.Request) {
	var req loanPaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	loan, err := h.loans.MakePayment(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"], req.Amount)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

// Approve and Reject back the internal review console.

func (h *LoanHandler) Approve(w http.ResponseWriter, r *http.Request) {
	loan, err := h.loans.ApproveLoan(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}

type loanRejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *LoanHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req loanRejectRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	loan, err := h.loans.RejectLoan(r.Context(), mux.Vars(r)["id"], req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, loan)
}
