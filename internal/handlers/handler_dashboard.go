package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	portssvc "github.com/muhasibpro/muhasib_app/internal/core/ports/services"
	"github.com/muhasibpro/muhasib_app/internal/dto"
	"github.com/muhasibpro/muhasib_app/internal/middleware"
)

// dashboardHandler handles HTTP requests for the dashboard roll-up.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

// registerDashboardRoutes registers the dashboard route.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := &dashboardHandler{dashboardService: dashboardService}

	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get the dashboard summary
// @Description Aggregates sales, purchases and stock for a reporting window
// @Tags dashboard
// @Produce  json
// @Param   range query string false "Window preset" Enums(all, today, week, month, custom) default(all)
// @Param   start query string false "Custom range start (YYYY-MM-DD)"
// @Param   end query string false "Custom range end (YYYY-MM-DD)"
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} map[string]string "Invalid range parameters"
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	window, err := domain.ResolveRange(params.Range, params.Start, params.End, time.Now())
	if err != nil {
		logger.Warn("Failed to resolve dashboard range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.dashboardService.Summarize(c.Request.Context(), window)
	if err != nil {
		logger.Error("Failed to build dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	resp := dto.DashboardResponse{
		Range:          summary.Range,
		TotalSales:     summary.TotalSales,
		TotalCashSales: summary.TotalCashSales,
		TotalPurchases: summary.TotalPurchases,
		NetFlow:        summary.NetFlow,
		LowStockCount:  summary.LowStockCount,
		Chart:          make([]dto.ChartPointResponse, 0, len(summary.Chart)),
	}
	for _, p := range summary.Chart {
		resp.Chart = append(resp.Chart, dto.ChartPointResponse{
			Date:      p.Date,
			Sales:     p.Sales,
			Purchases: p.Purchases,
			Profit:    p.Profit,
		})
	}
	c.JSON(http.StatusOK, resp)
}
