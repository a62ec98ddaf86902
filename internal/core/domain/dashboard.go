package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Chart series caps: bounded windows show at most the last ChartCapPoints
// calendar days of the range, the all-time view the trailing week ending
// today.
const (
	ChartCapPoints  = 30
	ChartCapAllTime = 7
)

// ChartPoint is one calendar day of the sales-versus-purchases series.
type ChartPoint struct {
	Date      string
	Sales     decimal.Decimal
	Purchases decimal.Decimal
	Profit    decimal.Decimal
}

// DashboardSummary is the roll-up over closings and purchases inside a date
// window plus the current low-stock snapshot.
type DashboardSummary struct {
	Range          string
	TotalSales     decimal.Decimal
	TotalCashSales decimal.Decimal
	TotalPurchases decimal.Decimal
	NetFlow        decimal.Decimal
	LowStockCount  int
	Chart          []ChartPoint
}

// BuildDashboardSummary folds the records falling inside the window. Sales per
// day come from each closing's sales value, purchases from invoice amounts.
// The chart enumerates consecutive calendar days, zero-filled for days with no
// activity: the trailing ChartCapAllTime days ending today for the all-time
// view, otherwise the last ChartCapPoints days of the range ending at its end.
// Each day's point is drawn from the full collections, not the windowed ones.
// The low-stock count is taken from the product snapshot regardless of the
// window.
func BuildDashboardSummary(window DateRange, now time.Time, closings []DailyClosing, purchases []Purchase, products []Product) DashboardSummary {
	s := DashboardSummary{Range: window.Label}

	salesByDay := make(map[string]decimal.Decimal)
	for _, c := range closings {
		sales := c.SalesValue()
		if window.ContainsDay(c.Date) {
			s.TotalSales = s.TotalSales.Add(sales)
			s.TotalCashSales = s.TotalCashSales.Add(c.CashActual)
		}
		salesByDay[c.Date] = salesByDay[c.Date].Add(sales)
	}

	purchasesByDay := make(map[string]decimal.Decimal)
	for _, pu := range purchases {
		if window.ContainsDay(pu.Date) {
			s.TotalPurchases = s.TotalPurchases.Add(pu.Amount)
		}
		purchasesByDay[pu.Date] = purchasesByDay[pu.Date].Add(pu.Amount)
	}

	s.NetFlow = s.TotalSales.Sub(s.TotalPurchases)

	for _, pr := range products {
		if pr.LowStock() {
			s.LowStockCount++
		}
	}

	end := startOfDay(now)
	days := ChartCapAllTime
	if !window.Unbounded() {
		end = startOfDay(*window.End)
		days = 1
		for d := startOfDay(*window.Start).AddDate(0, 0, 1); !d.After(end) && days < ChartCapPoints; d = d.AddDate(0, 0, 1) {
			days++
		}
	}

	chart := make([]ChartPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := end.AddDate(0, 0, -i).Format(DateLayout)
		p := ChartPoint{
			Date:      date,
			Sales:     salesByDay[date],
			Purchases: purchasesByDay[date],
		}
		p.Profit = p.Sales.Sub(p.Purchases)
		chart = append(chart, p)
	}
	s.Chart = chart
	return s
}
