package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/easybanking/backoffice/internal/domain"
)

type openAccountRequest struct {
	CustomerID string `json:"customerId"`
	Currency   string `json:"currency"`
}

type depositRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type transferRequest struct {
	ToAccountID string `json:"toAccountId"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
}

// OpenAccount opens a new bank account for a customer.
func (h *Handler) OpenAccount(w http.ResponseWriter, r *http.Request) {
	var req openAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_REQUEST", "failed to parse request body")
		return
	}

	customerID, err := domain.ParseCustomerID(req.CustomerID)
	if err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	account, err := h.accounts.Open(r.Context(), customerID, req.Currency)
	if err != nil {
		sendDomainError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, toAccountResponse(account))
}

// CloseAccount withdraws any remaining balance and closes the account.
func (h *Handler) CloseAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	if err := h.accounts.Close(r.Context(), accountID); err != nil {
		sendDomainError(w, err)
		return
	}

	sendJSON(w, http.StatusNoContent, nil)
}

// GetAccount retrieves a single account.
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	account, err := h.accounts.Get(r.Context(), accountID)
	if err != nil {
		sendDomainError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, toAccountResponse(account))
}

// ListActiveAccounts lists every account that has not been closed.
func (h *Handler) ListActiveAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accounts.AllActive(r.Context())
	if err != nil {
		sendDomainError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, toAccountResponses(accounts))
}

// ListCustomerAccounts lists the accounts owned by a customer.
func (h *Handler) ListCustomerAccounts(w http.ResponseWriter, r *http.Request) {
	customerID, err := domain.ParseCustomerID(chi.URLParam(r, "customerID"))
	if err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	accounts, err := h.accounts.AccountsByCustomer(r.Context(), customerID)
	if err != nil {
		sendDomainError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, toAccountResponses(accounts))
}

// Deposit deposits cash into an account.
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_REQUEST", "failed to parse request body")
		return
	}

	transaction, err := h.transactions.Deposit(r.Context(), accountID, req.Amount, req.Currency)
	if err != nil {
		sendDomainError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, toTransactionResponse(*transaction))
}

// Transfer moves money from this account to another.
func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	fromAccountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_REQUEST", "failed to parse request body")
		return
	}

	toAccountID, err := domain.ParseBankAccountID(req.ToAccountID)
	if err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return
	}

	transaction, err := h.transactions.Transfer(r.Context(), fromAccountID, toAccountID, req.Amount, req.Currency)
	if err != nil {
		sendDomainError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, toTransactionResponse(*transaction))
}

// TransactionHistory lists an account's transactions, newest first.
func (h *Handler) TransactionHistory(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDParam(w, r)
	if !ok {
		return
	}

	transactions, err := h.transactions.History(r.Context(), accountID)
	if err != nil {
		sendDomainError(w, err)
		return
	}

	responses := make([]transactionResponse, 0, len(transactions))
	for _, t := range transactions {
		responses = append(responses, toTransactionResponse(t))
	}

	sendJSON(w, http.StatusOK, responses)
}

func accountIDParam(w http.ResponseWriter, r *http.Request) (domain.BankAccountID, bool) {
	accountID, err := domain.ParseBankAccountID(chi.URLParam(r, "accountID"))
	if err != nil {
		sendError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
		return domain.BankAccountID{}, false
	}
	return accountID, true
}
