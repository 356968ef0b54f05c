package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fsbooks/bookkeeping_backend/internal/core/ports/services"
	"github.com/fsbooks/bookkeeping_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// searchHandler handles the global search endpoint.
type searchHandler struct {
	searchService portssvc.SearchSvcFacade
}

func newSearchHandler(ss portssvc.SearchSvcFacade) *searchHandler {
	return &searchHandler{
		searchService: ss,
	}
}

// RegisterSearchRoutes registers the global search route.
func RegisterSearchRoutes(rg *gin.RouterGroup, searchService portssvc.SearchSvcFacade) {
	h := newSearchHandler(searchService)

	rg.GET("/search", h.search)
}

// search godoc
// @Summary Search accounts, transactions and banks
// @Description Case-insensitive substring search across all three entity lists; numeric queries also match amounts and balances exactly. A blank query returns three empty lists.
// @Tags search
// @Produce  json
// @Param   q query string false "Search query"
// @Success 200 {object} dto.SearchResponse
// @Failure 500 {object} map[string]string "Search failed"
// @Router /search [get]
func (h *searchHandler) search(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query := c.Query("q")

	logger.Info("Received search request", slog.String("query", query))

	result, err := h.searchService.Search(c.Request.Context(), query)
	if err != nil {
		logger.Error("Search failed in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	logger.Info("Search completed successfully",
		slog.Int("accounts", len(result.Accounts)),
		slog.Int("transactions", len(result.Transactions)),
		slog.Int("banks", len(result.Banks)))
	c.JSON(http.StatusOK, result)
}
