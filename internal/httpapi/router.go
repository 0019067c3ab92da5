package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the HTTP routing table for the back-office API.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", h.ListActiveAccounts)
			r.Post("/", h.OpenAccount)
			r.Route("/{accountID}", func(r chi.Router) {
				r.Get("/", h.GetAccount)
				r.Post("/close", h.CloseAccount)
				r.Post("/deposits", h.Deposit)
				r.Post("/transfers", h.Transfer)
				r.Get("/transactions", h.TransactionHistory)
			})
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.ListCustomers)
			r.Post("/", h.CreateCustomer)
			r.Get("/{customerID}/accounts", h.ListCustomerAccounts)
		})
	})

	return r
}
