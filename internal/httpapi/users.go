package httpapi

import (
	"encoding/json"
	"net/http"
)

type createCustomerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// CreateCustomer registers a new customer.
func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_REQUEST", "failed to parse request body")
		return
	}

	user, err := h.users.CreateCustomer(r.Context(), req.Username, req.Password, req.FirstName, req.LastName)
	if err != nil {
		sendDomainError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, toUserResponse(user))
}

// ListCustomers lists all registered customers.
func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.users.Customers(r.Context())
	if err != nil {
		sendDomainError(w, err)
		return
	}

	responses := make([]userResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, toUserResponse(c))
	}

	sendJSON(w, http.StatusOK, responses)
}
