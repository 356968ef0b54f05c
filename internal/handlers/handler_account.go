package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fsbooks/bookkeeping_backend/internal/apperrors"
	"github.com/fsbooks/bookkeeping_backend/internal/core/domain"
	portssvc "github.com/fsbooks/bookkeeping_backend/internal/core/ports/services"
	"github.com/fsbooks/bookkeeping_backend/internal/dto"
	"github.com/fsbooks/bookkeeping_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// RegisterAccountRoutes registers routes related to accounts.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/type/:accountType", h.listAccountsByType)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Registers a new account holder in one of the fixed account categories
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create account", slog.String("name", req.Name))

	createdAccount, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate account", slog.String("name", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	logger.Info("Account created successfully", slog.String("account_id", createdAccount.AccountID))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(createdAccount))
}

// getAccount godoc
// @Summary Get an account by ID
// @Description Retrieves a single account
// @Tags accounts
// @Produce  json
// @Param   accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to get account"
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	logger.Info("Received request to get account", slog.String("account_id", accountID))

	account, err := h.accountService.GetAccount(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found", slog.String("account_id", accountID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		} else {
			logger.Error("Failed to get account from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get account"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccountsByType godoc
// @Summary List accounts of one type
// @Description Retrieves all accounts belonging to the given account category, oldest first
// @Tags accounts
// @Produce  json
// @Param   accountType path string true "Account type" Enums(Customers, Feedstock Vendors, Regular, Employees)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} map[string]string "Unknown account type"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Router /accounts/type/{accountType} [get]
func (h *accountHandler) listAccountsByType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountType := domain.AccountType(c.Param("accountType"))

	logger.Info("Received request to list accounts by type", slog.String("account_type", string(accountType)))

	accounts, err := h.accountService.ListAccountsByType(c.Request.Context(), accountType)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Unknown account type requested", slog.String("account_type", string(accountType)))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		}
		return
	}

	logger.Info("Accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToAccountResponseSlice(accounts)})
}
