package domain

import "github.com/shopspring/decimal"

// SalaryTransactionType classifies a wage-affecting transaction. Amounts are
// stored positive; the sign is applied by type when folding the statement.
type SalaryTransactionType string

const (
	TxnLoan          SalaryTransactionType = "loan"
	TxnDeduction     SalaryTransactionType = "deduction"
	TxnMeal          SalaryTransactionType = "meal"
	TxnShortage      SalaryTransactionType = "shortage"
	TxnBonus         SalaryTransactionType = "bonus"
	TxnSalaryPayment SalaryTransactionType = "salary_payment"
)

// ValidSalaryTransactionType reports whether t is a recognized type.
func ValidSalaryTransactionType(t SalaryTransactionType) bool {
	switch t {
	case TxnLoan, TxnDeduction, TxnMeal, TxnShortage, TxnBonus, TxnSalaryPayment:
		return true
	}
	return false
}

// SalaryTransaction is a single wage-affecting record for an employee.
// Immutable once created except for deletion.
type SalaryTransaction struct {
	TransactionID string                `json:"transactionID"`
	EmployeeID    string                `json:"employeeID"`
	Type          SalaryTransactionType `json:"type"`
	Amount        decimal.Decimal       `json:"amount"` // > 0, sign applied by type
	Date          string                `json:"date"`
	Notes         string                `json:"notes"`
	AuditFields
}

// SalaryStatement is the derived pay position for one employee: per-type sums
// of their transactions, outstanding custody exposure and the resulting net.
// Recomputed from a fresh snapshot on every request, never cached.
type SalaryStatement struct {
	EmployeeID      string          `json:"employeeID"`
	EmployeeName    string          `json:"employeeName"`
	BasicSalary     decimal.Decimal `json:"basicSalary"`
	Loans           decimal.Decimal `json:"loans"`
	Deductions      decimal.Decimal `json:"deductions"`
	Meals           decimal.Decimal `json:"meals"`
	Shortages       decimal.Decimal `json:"shortages"`
	Bonuses         decimal.Decimal `json:"bonuses"`
	SalaryPayments  decimal.Decimal `json:"salaryPayments"` // paid out, informational
	CustodyExposure decimal.Decimal `json:"custodyExposure"`
	NetSalary       decimal.Decimal `json:"netSalary"`
}

// FoldStatement computes the statement for one employee from its transactions
// and custody records:
//
//	net = basic + bonuses - loans - deductions - meals - shortages - exposure
//
// Salary payments are summed for display but do not enter the net.
func FoldStatement(emp Employee, txns []SalaryTransaction, custodies []Custody) SalaryStatement {
	st := SalaryStatement{
		EmployeeID:      emp.EmployeeID,
		EmployeeName:    emp.Name,
		BasicSalary:     emp.BasicSalary,
		Loans:           decimal.Zero,
		Deductions:      decimal.Zero,
		Meals:           decimal.Zero,
		Shortages:       decimal.Zero,
		Bonuses:         decimal.Zero,
		SalaryPayments:  decimal.Zero,
		CustodyExposure: TotalExposure(custodies),
	}

	for _, t := range txns {
		switch t.Type {
		case TxnLoan:
			st.Loans = st.Loans.Add(t.Amount)
		case TxnDeduction:
			st.Deductions = st.Deductions.Add(t.Amount)
		case TxnMeal:
			st.Meals = st.Meals.Add(t.Amount)
		case TxnShortage:
			st.Shortages = st.Shortages.Add(t.Amount)
		case TxnBonus:
			st.Bonuses = st.Bonuses.Add(t.Amount)
		case TxnSalaryPayment:
			st.SalaryPayments = st.SalaryPayments.Add(t.Amount)
		}
	}

	st.NetSalary = st.BasicSalary.
		Add(st.Bonuses).
		Sub(st.Loans).
		Sub(st.Deductions).
		Sub(st.Meals).
		Sub(st.Shortages).
		Sub(st.CustodyExposure)
	return st
}
