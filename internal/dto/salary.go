package dto

import (
	"time"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSalaryTransactionRequest defines a new wage-affecting record.
type CreateSalaryTransactionRequest struct {
	EmployeeID string                       `json:"employeeID" binding:"required"`
	Type       domain.SalaryTransactionType `json:"type" binding:"required,oneof=loan deduction meal shortage bonus salary_payment"`
	Amount     decimal.Decimal              `json:"amount" binding:"required"`
	Date       string                       `json:"date"` // YYYY-MM-DD, defaults to today
	Notes      string                       `json:"notes"`
}

// SalaryTransactionResponse defines the data returned for a transaction.
type SalaryTransactionResponse struct {
	TransactionID string                       `json:"transactionID"`
	EmployeeID    string                       `json:"employeeID"`
	Type          domain.SalaryTransactionType `json:"type"`
	Amount        decimal.Decimal              `json:"amount"`
	Date          string                       `json:"date"`
	Notes         string                       `json:"notes"`
	CreatedAt     time.Time                    `json:"createdAt"`
}

// ToSalaryTransactionResponse converts a domain record to its response DTO.
func ToSalaryTransactionResponse(t *domain.SalaryTransaction) SalaryTransactionResponse {
	return SalaryTransactionResponse{
		TransactionID: t.TransactionID,
		EmployeeID:    t.EmployeeID,
		Type:          t.Type,
		Amount:        t.Amount,
		Date:          t.Date,
		Notes:         t.Notes,
		CreatedAt:     t.CreatedAt,
	}
}

// ListSalaryTransactionsParams defines query parameters for listing
// transactions.
type ListSalaryTransactionsParams struct {
	EmployeeID string `form:"employeeID"`
}

// ListSalaryTransactionsResponse wraps the list of transactions.
type ListSalaryTransactionsResponse struct {
	Transactions []SalaryTransactionResponse `json:"transactions"`
}

// SalaryStatementResponse is the derived pay position for one employee.
type SalaryStatementResponse struct {
	EmployeeID      string          `json:"employeeID"`
	EmployeeName    string          `json:"employeeName"`
	BasicSalary     decimal.Decimal `json:"basicSalary"`
	Loans           decimal.Decimal `json:"loans"`
	Deductions      decimal.Decimal `json:"deductions"`
	Meals           decimal.Decimal `json:"meals"`
	Shortages       decimal.Decimal `json:"shortages"`
	Bonuses         decimal.Decimal `json:"bonuses"`
	SalaryPayments  decimal.Decimal `json:"salaryPayments"`
	CustodyExposure decimal.Decimal `json:"custodyExposure"`
	NetSalary       decimal.Decimal `json:"netSalary"`
}

// ToSalaryStatementResponse converts a domain statement to its response DTO.
func ToSalaryStatementResponse(s domain.SalaryStatement) SalaryStatementResponse {
	return SalaryStatementResponse{
		EmployeeID:      s.EmployeeID,
		EmployeeName:    s.EmployeeName,
		BasicSalary:     s.BasicSalary,
		Loans:           s.Loans,
		Deductions:      s.Deductions,
		Meals:           s.Meals,
		Shortages:       s.Shortages,
		Bonuses:         s.Bonuses,
		SalaryPayments:  s.SalaryPayments,
		CustodyExposure: s.CustodyExposure,
		NetSalary:       s.NetSalary,
	}
}
