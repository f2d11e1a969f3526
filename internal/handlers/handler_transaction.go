package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/dto"
	"github.com/dimasprayoga/pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles checkout and the sale query surface.
type transactionHandler struct {
	checkoutService    portssvc.CheckoutSvcFacade
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(checkoutService portssvc.CheckoutSvcFacade, transactionService portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		checkoutService:    checkoutService,
		transactionService: transactionService,
	}
}

// checkout godoc
// @Summary Convert a cart into a sale
// @Description Persists the transaction, its items, and the stock decrements as one atomic unit, then dispatches payment
// @Tags transactions
// @Accept json
// @Produce json
// @Param cart body dto.CheckoutRequest true "Cart and payment"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} map[string]string "Empty cart, insufficient stock, or insufficient payment"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /checkout [post]
func (h *transactionHandler) checkout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid checkout payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	cashierID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.checkoutService.Checkout(c.Request.Context(), cashierID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to complete checkout")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// listTransactions godoc
// @Summary List transactions
// @Description Most-recent-first paginated sale listing
// @Tags transactions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListTransactionsResponse
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves a sale with its line items and cashier name
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("transactionID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// RegisterTransactionRoutes registers checkout and the sale query routes.
func RegisterTransactionRoutes(group *gin.RouterGroup, checkoutService portssvc.CheckoutSvcFacade, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(checkoutService, transactionService)

	group.POST("/checkout", h.checkout)

	transactions := group.Group("/transactions")
	transactions.GET("", h.listTransactions)
	transactions.GET("/:transactionID", h.getTransaction)
}
