package domain

import "github.com/shopspring/decimal"

// CustodyStatus is the lifecycle state of a custody advance.
type CustodyStatus string

const (
	CustodyActive CustodyStatus = "active"
	CustodyClosed CustodyStatus = "closed"
)

// Custody is a cash advance handed to an employee, tracked until it is closed
// and reconciled. Expenses and ReturnAmount stay zero while active and are set
// exactly once at close; closed is terminal.
type Custody struct {
	CustodyID    string          `json:"custodyID"`
	EmployeeID   string          `json:"employeeID"`
	Amount       decimal.Decimal `json:"amount"` // > 0
	DateGiven    string          `json:"dateGiven"`
	Status       CustodyStatus   `json:"status"`
	Expenses     decimal.Decimal `json:"expenses"`
	ReturnAmount decimal.Decimal `json:"returnAmount"` // amount - expenses; may be negative
	Notes        string          `json:"notes"`
	AuditFields
}

// Exposure is the portion of the advance not yet accounted for by expenses
// and returns: amount - returnAmount - expenses. An active custody exposes its
// full amount; a consistently closed one nets to zero.
func (c Custody) Exposure() decimal.Decimal {
	return c.Amount.Sub(c.ReturnAmount).Sub(c.Expenses)
}

// TotalExposure sums Exposure over a set of custody records.
func TotalExposure(custodies []Custody) decimal.Decimal {
	total := decimal.Zero
	for _, c := range custodies {
		total = total.Add(c.Exposure())
	}
	return total
}
