package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/dto"
	"github.com/dimasprayoga/pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles settlement and the deferred confirmation callback.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(paymentService portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

// processPayment godoc
// @Summary Settle a pending transaction
// @Description Dispatches settlement to the strategy for the given method
// @Tags payments
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param payment body dto.ProcessPaymentRequest true "Payment"
// @Success 200 {object} dto.PaymentResultResponse
// @Failure 400 {object} map[string]string "Unsupported method or insufficient payment"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction already settled"
// @Router /transactions/{transactionID}/payment [post]
func (h *paymentHandler) processPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.paymentService.ProcessPayment(c.Request.Context(), c.Param("transactionID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to process payment")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// paymentStatus godoc
// @Summary Get the payment status of a transaction
// @Tags payments
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.PaymentStatusResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Router /transactions/{transactionID}/payment/status [get]
func (h *paymentHandler) paymentStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	resp, err := h.paymentService.CheckStatus(c.Request.Context(), c.Param("transactionID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to check payment status")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// paymentWebhook godoc
// @Summary Payment provider confirmation callback
// @Description Finalizes a deferred-settlement transaction. Idempotent: replays of an already-confirmed transaction succeed without effect.
// @Tags payments
// @Accept json
// @Produce json
// @Param confirmation body dto.PaymentWebhookRequest true "Confirmation"
// @Success 200 {object} map[string]string "Confirmed"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Transaction in a failed state"
// @Router /payments/webhook [post]
func (h *paymentHandler) paymentWebhook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.paymentService.ConfirmPayment(c.Request.Context(), req.TransactionID); err != nil {
		respondServiceError(c, logger, err, "Failed to confirm payment")
		return
	}

	logger.Info("Payment webhook processed", slog.String("transaction_id", req.TransactionID))
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RegisterPaymentRoutes registers the authenticated settlement routes.
func RegisterPaymentRoutes(group *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	transactions := group.Group("/transactions")
	transactions.POST("/:transactionID/payment", h.processPayment)
	transactions.GET("/:transactionID/payment/status", h.paymentStatus)
}

// registerPaymentWebhookRoute registers the unauthenticated provider
// callback, rate limited since it is reachable without a session.
func registerPaymentWebhookRoute(r *gin.Engine, paymentService portssvc.PaymentSvcFacade, rateLimit gin.HandlerFunc) {
	h := newPaymentHandler(paymentService)
	r.POST("/api/v1/payments/webhook", rateLimit, h.paymentWebhook)
}
