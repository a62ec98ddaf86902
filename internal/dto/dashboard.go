package dto

import (
	"github.com/shopspring/decimal"
)

// DashboardParams selects the reporting window. Range is one of
// all|today|week|month|custom; custom requires start and end (YYYY-MM-DD).
type DashboardParams struct {
	Range string `form:"range,default=all" binding:"omitempty,oneof=all today week month custom"`
	Start string `form:"start"`
	End   string `form:"end"`
}

// ChartPointResponse is one calendar day of the dashboard chart series.
type ChartPointResponse struct {
	Date      string          `json:"date"`
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
	Profit    decimal.Decimal `json:"profit"`
}

// DashboardResponse is the time-windowed roll-up across closings and
// purchases plus the current low-stock snapshot.
type DashboardResponse struct {
	Range          string               `json:"range"`
	TotalSales     decimal.Decimal      `json:"totalSales"`
	TotalCashSales decimal.Decimal      `json:"totalCashSales"`
	TotalPurchases decimal.Decimal      `json:"totalPurchases"`
	NetFlow        decimal.Decimal      `json:"netFlow"`
	LowStockCount  int                  `json:"lowStockCount"`
	Chart          []ChartPointResponse `json:"chart"`
}
