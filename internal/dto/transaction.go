package dto

import (
	"github.com/floner-app/floner_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for recording a ledger entry.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Category    domain.Category        `json:"category" binding:"required,oneof=Food Transport Shopping Bills Entertainment Healthcare Education Salary Business Investment Other"`
	Kind        domain.TransactionKind `json:"kind" binding:"required,oneof=income expense"`
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
	Account     string                 `json:"account" binding:"required"`
}

// TransactionResponse represents a single ledger entry in API responses.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Kind          string          `json:"kind"`
	Date          string          `json:"date"`
	Account       string          `json:"account"`
	CreatedAt     string          `json:"createdAt"`
}

// ListTransactionsResponse is the tier-limited ledger view. HiddenCount tells
// the UI how many more matching transactions exist beyond the plan's window.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	HiddenCount  int                   `json:"hiddenCount"`
	WindowSize   int                   `json:"windowSize"`
}

// ToTransactionResponse converts a domain transaction to its API shape.
// Monetary values are rounded to 2 decimal places for display here and
// nowhere earlier.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount.Round(2),
		Description:   txn.Description,
		Category:      string(txn.Category),
		Kind:          string(txn.Kind),
		Date:          txn.Date.Format("2006-01-02"),
		Account:       txn.Account,
		CreatedAt:     txn.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToListTransactionsResponse converts a transaction page to its API shape.
func ToListTransactionsResponse(page domain.TransactionPage) ListTransactionsResponse {
	response := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, len(page.Transactions)),
		HiddenCount:  page.HiddenCount,
		WindowSize:   page.WindowSize,
	}
	for i, txn := range page.Transactions {
		response.Transactions[i] = ToTransactionResponse(txn)
	}
	return response
}
