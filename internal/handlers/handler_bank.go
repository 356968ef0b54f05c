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

// bankHandler handles HTTP requests related to banks.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{
		bankService: bs,
	}
}

// RegisterBankRoutes registers routes related to banks.
func RegisterBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.POST("", h.createBank)
		banks.GET("", h.listBanks)
		banks.GET("/:bankID/transactions", h.getBankStatement)
	}
}

// createBank godoc
// @Summary Create a new bank
// @Description Registers a bank account with a zero opening balance
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   bank body dto.CreateBankRequest true "Bank details"
// @Success 201 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create bank"
// @Router /banks [post]
func (h *bankHandler) createBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBank", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create bank", slog.String("bank_name", req.BankName))

	createdBank, err := h.bankService.CreateBank(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating bank", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate bank", slog.String("account_number", req.AccountNumber))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create bank in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bank"})
		}
		return
	}

	logger.Info("Bank created successfully", slog.String("bank_id", createdBank.BankID))
	c.JSON(http.StatusCreated, dto.ToBankResponse(createdBank))
}

// listBanks godoc
// @Summary List all banks
// @Description Retrieves all bank accounts with their current balances, oldest first
// @Tags banks
// @Produce  json
// @Success 200 {object} dto.ListBanksResponse
// @Failure 500 {object} map[string]string "Failed to list banks"
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list banks")

	banks, err := h.bankService.ListBanks(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list banks from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list banks"})
		return
	}

	logger.Info("Banks listed successfully", slog.Int("count", len(banks)))
	c.JSON(http.StatusOK, dto.ListBanksResponse{Banks: dto.ToBankResponseSlice(banks)})
}

// getBankStatement godoc
// @Summary Get a paginated bank statement
// @Description Retrieves one page of the bank's transactions newest first, with the page count and the balance computed over all of its transactions
// @Tags banks
// @Produce  json
// @Param   bankID path string true "Bank ID"
// @Param   page query int false "Page number (1-based)" default(1)
// @Param   limit query int false "Page size" default(15)
// @Success 200 {object} dto.BankStatementResponse
// @Failure 400 {object} map[string]string "Invalid pagination parameters"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 500 {object} map[string]string "Failed to get bank statement"
// @Router /banks/{bankID}/transactions [get]
func (h *bankHandler) getBankStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankID := c.Param("bankID")

	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for GetBankStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("bank_id", bankID))
	logger.Info("Received request for bank statement", slog.Int("page", params.Page), slog.Int("limit", params.Limit))

	statement, err := h.bankService.GetBankStatement(c.Request.Context(), bankID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Bank not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Bank not found"})
		} else {
			logger.Error("Failed to get bank statement from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get bank statement"})
		}
		return
	}

	logger.Info("Bank statement retrieved successfully", slog.Int("count", len(statement.Transactions)))
	c.JSON(http.StatusOK, statement)
}
