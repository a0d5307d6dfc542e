package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"stokvel-backend/internal/service"
)

type NotificationHandler struct {
	notes     service.NotificationService
	referrals service.ReferralService
}

func NewNotificationHandler(notes service.NotificationService, referrals service.ReferralService) *NotificationHandler {
	return &NotificationHandler{notes: notes, referrals: referrals}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	notes, err := h.notes.List(r.Context(), userIDFrom(r.Context()), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notes.MarkAsRead(r.Context(), mux.Vars(r)["id"], userIDFrom(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *NotificationHandler) ListReferrals(w http.ResponseWriter, r *http.Request) {
	referrals, err := h.referrals.ListReferrals(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, referrals)
}
