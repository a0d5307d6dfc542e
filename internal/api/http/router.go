package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"stokvel-backend/internal/domain"
	"stokvel-backend/internal/security"
	"stokvel-backend/internal/service"
)

type RouterConfig struct {
	Tokens        security.TokenManager
	Auth          service.AuthService
	Users         service.UserService
	Loans         service.LoanService
	Stokvels      service.StokvelService
	Funerals      service.FuneralService
	Store         service.StoreService
	Referrals     service.ReferralService
	Notifications service.NotificationService
}

// NewRouter wires every handler under /api/v1. Everything except signup,
// login, refresh and forgot-password sits behind the bearer-token check.
func NewRouter(cfg RouterConfig) http.Handler {
	authHandler := NewAuthHandler(cfg.Auth, cfg.Users)
	loanHandler := NewLoanHandler(cfg.Loans)
	stokvelHandler := NewStokvelHandler(cfg.Stokvels)
	funeralHandler := NewFuneralHandler(cfg.Funerals)
	storeHandler := NewStoreHandler(cfg.Store)
	noteHandler := NewNotificationHandler(cfg.Notifications, cfg.Referrals)

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/forgot-password", authHandler.ForgotPassword).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware(cfg.Tokens))

	protected.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/profile", authHandler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/profile", authHandler.UpdateProfile).Methods(http.MethodPut)

	protected.HandleFunc("/loans/quote", loanHandler.Quote).Methods(http.MethodPost)
	protected.HandleFunc("/loans", loanHandler.Apply).Methods(http.MethodPost)
	protected.HandleFunc("/loans", loanHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/loans/{id}", loanHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/loans/{id}/payments", loanHandler.MakePayment).Methods(http.MethodPost)

	protected.HandleFunc("/stokvels/types", stokvelHandler.ListTypes).Methods(http.MethodGet)
	protected.HandleFunc("/stokvels/savings", stokvelHandler.CumulativeSavings).Methods(http.MethodGet)
	protected.HandleFunc("/stokvels", stokvelHandler.Join).Methods(http.MethodPost)
	protected.HandleFunc("/stokvels", stokvelHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/stokvels/{id}", stokvelHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/stokvels/{id}/contributions", stokvelHandler.Contribute).Methods(http.MethodPost)
	protected.HandleFunc("/stokvels/{id}/withdrawals", stokvelHandler.RequestWithdrawal).Methods(http.MethodPost)

	protected.HandleFunc("/funeral/plans", funeralHandler.ListPlans).Methods(http.MethodGet)
	protected.HandleFunc("/funeral/quote", funeralHandler.QuotePremium).Methods(http.MethodPost)
	protected.HandleFunc("/funeral/cover", funeralHandler.Activate).Methods(http.MethodPost)
	protected.HandleFunc("/funeral/cover", funeralHandler.GetActiveCover).Methods(http.MethodGet)
	protected.HandleFunc("/funeral/cover/{id}", funeralHandler.Cancel).Methods(http.MethodDelete)
	protected.HandleFunc("/funeral/cover/{id}/claims", funeralHandler.SubmitClaim).Methods(http.MethodPost)

	protected.HandleFunc("/products", storeHandler.ListProducts).Methods(http.MethodGet)
	protected.HandleFunc("/orders/preview", storeHandler.PreviewTotals).Methods(http.MethodPost)
	protected.HandleFunc("/orders", storeHandler.Checkout).Methods(http.MethodPost)
	protected.HandleFunc("/orders", storeHandler.ListOrders).Methods(http.MethodGet)

	// Loan review is back-office only.
	admin := protected.NewRoute().Subrouter()
	admin.Use(requireRole(string(domain.UserRoleAdmin)))
	admin.HandleFunc("/loans/{id}/approve", loanHandler.Approve).Methods(http.MethodPost)
	admin.HandleFunc("/loans/{id}/reject", loanHandler.Reject).Methods(http.MethodPost)

	protected.HandleFunc("/referrals", noteHandler.ListReferrals).Methods(http.MethodGet)
	protected.HandleFunc("/notifications", noteHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", noteHandler.MarkAsRead).Methods(http.MethodPost)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
