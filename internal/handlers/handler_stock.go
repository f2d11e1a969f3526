package handlers

import (
	"net/http"

	portssvc "github.com/dimasprayoga/pos-backend/internal/core/ports/services"
	"github.com/dimasprayoga/pos-backend/internal/dto"
	"github.com/dimasprayoga/pos-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// stockHandler handles manual stock adjustments and movement history.
type stockHandler struct {
	stockService portssvc.StockSvcFacade
}

func newStockHandler(stockService portssvc.StockSvcFacade) *stockHandler {
	return &stockHandler{stockService: stockService}
}

// adjustStock godoc
// @Summary Apply a manual stock movement
// @Description Applies one IN/OUT movement and appends it to the audit log atomically
// @Tags stock
// @Accept json
// @Produce json
// @Param movement body dto.AdjustStockRequest true "Movement"
// @Success 200 {object} dto.AdjustStockResponse
// @Failure 400 {object} map[string]string "Invalid movement or insufficient stock"
// @Failure 404 {object} map[string]string "Product not found"
// @Router /stock/adjust [post]
func (h *stockHandler) adjustStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := h.stockService.AdjustStock(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to adjust stock")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listMovements godoc
// @Summary List stock movements
// @Description Cursor-paginated movement history, newest first
// @Tags stock
// @Produce json
// @Param productID query string false "Filter by product"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListStockMovementsResponse
// @Router /stock/movements [get]
func (h *stockHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.stockService.ListMovements(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list stock movements")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// registerStockRoutes registers stock routes. Adjustments are admin-only;
// the history is open to any authenticated user.
func registerStockRoutes(group *gin.RouterGroup, stockService portssvc.StockSvcFacade, adminOnly gin.HandlerFunc) {
	h := newStockHandler(stockService)

	stock := group.Group("/stock")
	stock.POST("/adjust", adminOnly, h.adjustStock)
	stock.GET("/movements", h.listMovements)
}
