package dto

import (
	"encoding/json"
	"time"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClosingRequest defines a proposed daily closing. Variance is computed
// server-side from the counted and system totals; Details is stored verbatim.
type CreateClosingRequest struct {
	Date string `json:"date" binding:"required"`

	CashActual  decimal.Decimal `json:"cashActual"`
	CardActual  decimal.Decimal `json:"cardActual"`
	TotalActual decimal.Decimal `json:"totalActual"`

	CashSystem  decimal.Decimal `json:"cashSystem"`
	CardSystem  decimal.Decimal `json:"cardSystem"`
	TotalSystem decimal.Decimal `json:"totalSystem"`

	GrossSales     decimal.Decimal `json:"grossSales"`
	NetSales       decimal.Decimal `json:"netSales"`
	VATAmount      decimal.Decimal `json:"vatAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Tips           decimal.Decimal `json:"tips"`

	Details json.RawMessage `json:"details"`
}

// ClosingResponse defines the data returned for a daily closing.
type ClosingResponse struct {
	ClosingID string `json:"closingID"`
	Date      string `json:"date"`

	CashActual  decimal.Decimal `json:"cashActual"`
	CardActual  decimal.Decimal `json:"cardActual"`
	TotalActual decimal.Decimal `json:"totalActual"`

	CashSystem  decimal.Decimal `json:"cashSystem"`
	CardSystem  decimal.Decimal `json:"cardSystem"`
	TotalSystem decimal.Decimal `json:"totalSystem"`

	Variance decimal.Decimal `json:"variance"`

	GrossSales     decimal.Decimal `json:"grossSales"`
	NetSales       decimal.Decimal `json:"netSales"`
	VATAmount      decimal.Decimal `json:"vatAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Tips           decimal.Decimal `json:"tips"`

	Details json.RawMessage `json:"details"`

	CreatedAt time.Time `json:"createdAt"`
}

// ToClosingResponse converts a domain.DailyClosing to its response DTO.
func ToClosingResponse(c *domain.DailyClosing) ClosingResponse {
	return ClosingResponse{
		ClosingID:      c.ClosingID,
		Date:           c.Date,
		CashActual:     c.CashActual,
		CardActual:     c.CardActual,
		TotalActual:    c.TotalActual,
		CashSystem:     c.CashSystem,
		CardSystem:     c.CardSystem,
		TotalSystem:    c.TotalSystem,
		Variance:       c.Variance,
		GrossSales:     c.GrossSales,
		NetSales:       c.NetSales,
		VATAmount:      c.VATAmount,
		DiscountAmount: c.DiscountAmount,
		Tips:           c.Tips,
		Details:        c.Details,
		CreatedAt:      c.CreatedAt,
	}
}

// ListClosingsParams defines query parameters for listing closings.
type ListClosingsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListClosingsResponse wraps the list of closings.
type ListClosingsResponse struct {
	Closings []ClosingResponse `json:"closings"`
}
