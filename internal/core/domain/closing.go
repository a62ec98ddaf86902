package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DailyClosing is one business day's reconciliation record comparing
// system-reported (POS Z-report) totals against physically counted ones.
// Closings are immutable: a correction is a new record, and a second closing
// for the same date is a distinct record (duplicate detection is a caller
// concern).
type DailyClosing struct {
	ClosingID string `json:"closingID"`
	Date      string `json:"date"`

	// Physically counted
	CashActual  decimal.Decimal `json:"cashActual"`
	CardActual  decimal.Decimal `json:"cardActual"`
	TotalActual decimal.Decimal `json:"totalActual"`

	// System-reported
	CashSystem  decimal.Decimal `json:"cashSystem"`
	CardSystem  decimal.Decimal `json:"cardSystem"`
	TotalSystem decimal.Decimal `json:"totalSystem"`

	// Variance = totalActual - totalSystem. Positive means surplus cash.
	Variance decimal.Decimal `json:"variance"`

	GrossSales     decimal.Decimal `json:"grossSales"`
	NetSales       decimal.Decimal `json:"netSales"`
	VATAmount      decimal.Decimal `json:"vatAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	Tips           decimal.Decimal `json:"tips"`

	// Details is the free-form closing payload (denomination breakdown, card
	// reconcile inputs, POS inputs). Stored and returned verbatim.
	Details json.RawMessage `json:"details"`

	AuditFields
}

// ClosingVariance computes counted total minus system total.
func ClosingVariance(totalActual, totalSystem decimal.Decimal) decimal.Decimal {
	return totalActual.Sub(totalSystem)
}

// SalesValue is the closing's contribution to sales roll-ups: gross sales,
// falling back to the system total when gross was not captured.
func (c DailyClosing) SalesValue() decimal.Decimal {
	if !c.GrossSales.IsZero() {
		return c.GrossSales
	}
	return c.TotalSystem
}
