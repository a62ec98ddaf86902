package dto

import (
	"time"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenCustodyRequest defines the data needed to hand out a cash advance.
type OpenCustodyRequest struct {
	EmployeeID string          `json:"employeeID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	DateGiven  string          `json:"dateGiven"` // YYYY-MM-DD, defaults to today
	Notes      string          `json:"notes"`
}

// CloseCustodyRequest defines the data needed to close an active custody.
// Notes is a pointer so an explicit empty string clears the notes while an
// absent field keeps the ones recorded at open time.
type CloseCustodyRequest struct {
	Expenses decimal.Decimal `json:"expenses"`
	Notes    *string         `json:"notes"`
}

// CustodyResponse defines the data returned for a custody record.
type CustodyResponse struct {
	CustodyID    string               `json:"custodyID"`
	EmployeeID   string               `json:"employeeID"`
	Amount       decimal.Decimal      `json:"amount"`
	DateGiven    string               `json:"dateGiven"`
	Status       domain.CustodyStatus `json:"status"`
	Expenses     decimal.Decimal      `json:"expenses"`
	ReturnAmount decimal.Decimal      `json:"returnAmount"`
	Notes        string               `json:"notes"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"lastUpdatedAt"`
}

// ToCustodyResponse converts a domain.Custody to its response DTO.
func ToCustodyResponse(c *domain.Custody) CustodyResponse {
	return CustodyResponse{
		CustodyID:    c.CustodyID,
		EmployeeID:   c.EmployeeID,
		Amount:       c.Amount,
		DateGiven:    c.DateGiven,
		Status:       c.Status,
		Expenses:     c.Expenses,
		ReturnAmount: c.ReturnAmount,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.LastUpdatedAt,
	}
}

// ListCustodiesParams defines query parameters for listing custody records.
type ListCustodiesParams struct {
	EmployeeID string `form:"employeeID"`
}

// ListCustodiesResponse wraps the list of custody records.
type ListCustodiesResponse struct {
	Custodies []CustodyResponse `json:"custodies"`
}

// CustodyExposureResponse reports the outstanding exposure for one employee.
type CustodyExposureResponse struct {
	EmployeeID string          `json:"employeeID"`
	Exposure   decimal.Decimal `json:"exposure"`
}
