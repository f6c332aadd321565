package handlers

import (
	"encoding/csv"
	"log/slog"
	"net/http"

	"github.com/floner-app/floner_backend/internal/core/domain"
	portssvc "github.com/floner-app/floner_backend/internal/core/ports/services"
	"github.com/floner-app/floner_backend/internal/dto"
	"github.com/floner-app/floner_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the transaction ledger.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvc
}

func newTransactionHandler(ls portssvc.LedgerSvc) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers all ledger-related routes.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/export", h.exportTransactions)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Appends an income or expense entry to the caller's ledger.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.AddTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondServiceError(c, err, "Failed to record transaction")
		return
	}

	logger.Info("Transaction recorded", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns the caller's ledger view: filtered, sorted, then truncated to the plan's history window.
// @Tags transactions
// @Produce json
// @Param filter query string false "Kind filter" Enums(all, income, expense) default(all)
// @Param sortBy query string false "Sort key" Enums(date, amount, description) default(date)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	filter := domain.TransactionFilter(c.DefaultQuery("filter", string(domain.FilterAll)))
	sortBy := domain.TransactionSortKey(c.DefaultQuery("sortBy", string(domain.SortByDate)))

	page, err := h.ledgerService.ListTransactions(c.Request.Context(), userID, filter, sortBy)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(*page))
}

// exportTransactions godoc
// @Summary Export transactions as CSV
// @Description Streams the caller's full ledger as a CSV file. Ultra plan only.
// @Tags transactions
// @Produce text/csv
// @Success 200 {string} string "CSV data"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/export [get]
func (h *transactionHandler) exportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	transactions, err := h.ledgerService.ExportTransactions(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to export transactions")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"date", "description", "category", "kind", "amount", "account"})
	for _, txn := range transactions {
		_ = w.Write([]string{
			txn.Date.Format("2006-01-02"),
			txn.Description,
			string(txn.Category),
			string(txn.Kind),
			txn.Amount.Round(2).String(),
			txn.Account,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to write CSV export", slog.String("error", err.Error()))
	}

	logger.Info("Ledger exported", slog.Int("count", len(transactions)))
}
