package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fsbooks/bookkeeping_backend/internal/apperrors"
	portssvc "github.com/fsbooks/bookkeeping_backend/internal/core/ports/services"
	"github.com/fsbooks/bookkeeping_backend/internal/dto"
	"github.com/fsbooks/bookkeeping_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// RegisterTransactionRoutes registers routes related to transactions and the
// per-holder report.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.GET("/account/:accountHolder", h.listTransactionsByAccountHolder)
		transactions.PUT("/:transactionID", h.updateTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}

	report := rg.Group("/report")
	{
		report.GET("/transactions", h.reportTransactions)
	}
}

// createTransaction godoc
// @Summary Post a new transaction
// @Description Records a Credit or Debit against a bank and adjusts the bank's balance atomically
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Account holder or bank not found"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create transaction",
		slog.String("account_holder", req.AccountHolder),
		slog.String("bank_id", req.BankID))

	createdTxn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Referenced entity not found", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", createdTxn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(createdTxn))
}

// listTransactions godoc
// @Summary List all transactions
// @Description Retrieves all transactions across banks and holders, newest date first
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list transactions")

	txns, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(txns)))
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponseSlice(txns)})
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves a single transaction
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to get transaction"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	logger.Info("Received request to get transaction", slog.String("transaction_id", transactionID))

	txn, err := h.transactionService.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// listTransactionsByAccountHolder godoc
// @Summary List transactions of one account holder
// @Description Retrieves all of the holder's transactions, newest date first
// @Tags transactions
// @Produce  json
// @Param   accountHolder path string true "Account holder name"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions/account/{accountHolder} [get]
func (h *transactionHandler) listTransactionsByAccountHolder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountHolder := c.Param("accountHolder")

	logger = logger.With(slog.String("account_holder", accountHolder))
	logger.Info("Received request to list transactions by account holder")

	txns, err := h.transactionService.ListTransactionsByAccountHolder(c.Request.Context(), accountHolder)
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(txns)))
	c.JSON(http.StatusOK, dto.ListTransactionsResponse{Transactions: dto.ToTransactionResponseSlice(txns)})
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Updates the amount, product or volume of a transaction; an amount change re-adjusts the bank balance by the difference
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("transaction_id", transactionID))
	logger.Info("Received request to update transaction")

	updatedTxn, err := h.transactionService.UpdateTransaction(c.Request.Context(), transactionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to update transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	logger.Info("Transaction updated successfully")
	c.JSON(http.StatusOK, dto.ToTransactionResponse(updatedTxn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction and reverses its effect on the bank balance
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	logger = logger.With(slog.String("transaction_id", transactionID))
	logger.Info("Received request to delete transaction")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to delete transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		}
		return
	}

	logger.Info("Transaction deleted successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// reportTransactions godoc
// @Summary Report one holder's transactions
// @Description Retrieves the holder's transactions oldest first with their net total, restricted to the inclusive date range when both bounds are given
// @Tags report
// @Produce  json
// @Param   accountHolder query string true "Account holder name"
// @Param   startDate query string false "Range start (YYYY-MM-DD)"
// @Param   endDate query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /report/transactions [get]
func (h *transactionHandler) reportTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ReportTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("account_holder", params.AccountHolder))
	logger.Info("Received request for transaction report")

	report, err := h.transactionService.ReportTransactions(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error building report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build report in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		}
		return
	}

	logger.Info("Report built successfully", slog.Int("count", len(report.Transactions)))
	c.JSON(http.StatusOK, report)
}
