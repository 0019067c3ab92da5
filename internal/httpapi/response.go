package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/easybanking/backoffice/internal/domain"
)

// errorResponse is the error envelope returned by every failing endpoint.
type errorResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
}

type amountPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type accountResponse struct {
	ID         string        `json:"id"`
	IBAN       string        `json:"iban"`
	CustomerID string        `json:"customerId"`
	Balance    amountPayload `json:"balance"`
	IsActive   bool          `json:"isActive"`
}

type transactionResponse struct {
	ID             string        `json:"id"`
	Type           string        `json:"type"`
	BankAccountID  string        `json:"bankAccountId"`
	Amount         amountPayload `json:"amount"`
	OriginalAmount amountPayload `json:"originalAmount"`
	ExchangeRate   float64       `json:"exchangeRate"`
	OccurredAt     time.Time     `json:"occurredAt"`
}

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsActive  bool   `json:"isActive"`
	Role      string `json:"role"`
}

func toAmountPayload(m domain.Money) amountPayload {
	return amountPayload{Amount: m.Amount, Currency: m.Currency.String()}
}

func toAccountResponse(a *domain.BankAccount) accountResponse {
	return accountResponse{
		ID:         a.ID.String(),
		IBAN:       a.IBAN.String(),
		CustomerID: a.CustomerID.String(),
		Balance:    toAmountPayload(a.Balance),
		IsActive:   a.IsActive,
	}
}

func toAccountResponses(accounts []*domain.BankAccount) []accountResponse {
	responses := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		responses = append(responses, toAccountResponse(a))
	}
	return responses
}

func toTransactionResponse(t domain.Transaction) transactionResponse {
	return transactionResponse{
		ID:             t.ID.String(),
		Type:           string(t.Type),
		BankAccountID:  t.BankAccountID.String(),
		Amount:         toAmountPayload(t.Amount),
		OriginalAmount: toAmountPayload(t.OriginalAmount),
		ExchangeRate:   t.Rate.Rate,
		OccurredAt:     t.OccurredAt,
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IsActive:  u.IsActive,
		Role:      string(u.Role),
	}
}

func sendJSON(w http.ResponseWriter, statusCode int, payload any) {
	if payload == nil {
		w.WriteHeader(statusCode)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func sendError(w http.ResponseWriter, statusCode int, code, description string) {
	sendJSON(w, statusCode, errorResponse{
		ID:          uuid.New(),
		Code:        code,
		Description: description,
	})
}

// sendDomainError maps domain errors to HTTP statuses: absent resources are
// 404, validation failures 400, business-rule violations 422 and conflicts
// (IBAN/username collisions, lost compare-and-set writes) 409.
func sendDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		sendError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrUnknownCurrency),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrInvalidIBAN),
		errors.Is(err, domain.ErrInvalidAccountNumber),
		errors.Is(err, domain.ErrInvalidUser):
		sendError(w, http.StatusBadRequest, "INVALID_ARGUMENT", err.Error())
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrNonZeroBalance),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrRateNotFound):
		sendError(w, http.StatusUnprocessableEntity, "FAILED_PRECONDITION", err.Error())
	case errors.Is(err, domain.ErrIBANExists),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrConcurrentModification):
		sendError(w, http.StatusConflict, "CONFLICT", err.Error())
	default:
		log.Printf("internal error: %v", err)
		sendError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred")
	}
}
