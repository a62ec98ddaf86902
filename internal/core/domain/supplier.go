package domain

import "github.com/shopspring/decimal"

// Supplier is a vendor the business purchases from. Balance is the
// authoritative running amount still owed to the supplier (positive =
// outstanding credit purchases); it is maintained by explicit bookkeeping
// updates and is never recomputed from the purchase ledger.
type Supplier struct {
	SupplierID string          `json:"supplierID"`
	Code       string          `json:"code"` // Supplier prefix code, optional
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	TaxNumber  string          `json:"taxNumber"`
	Balance    decimal.Decimal `json:"balance"`
	AuditFields
}

// StatementLine is one categorized row of a supplier statement.
type StatementLine struct {
	PurchaseID    string          `json:"purchaseID"`
	Reference     string          `json:"reference"` // invoice number, or ID when absent
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Deferred      bool            `json:"deferred"` // credit invoice vs immediate payment
}

// SupplierStatement is the chronological (newest first), categorized view of
// a supplier's purchase history. CreditTotal and CashTotal partition the
// purchase amounts exhaustively; Balance echoes the stored running balance.
type SupplierStatement struct {
	Supplier    Supplier        `json:"supplier"`
	CreditTotal decimal.Decimal `json:"creditTotal"`
	CashTotal   decimal.Decimal `json:"cashTotal"`
	Lines       []StatementLine `json:"lines"`
}
