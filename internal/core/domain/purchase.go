package domain

import "github.com/shopspring/decimal"

// PaymentMethod is how a purchase invoice was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCredit   PaymentMethod = "credit"
	PaymentTransfer PaymentMethod = "transfer"
)

// ValidPaymentMethod reports whether m is a recognized settlement method.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentCash, PaymentCredit, PaymentTransfer:
		return true
	}
	return false
}

// Deferred reports whether the method leaves the amount owed to the supplier.
// Cash and transfer are both immediate payment.
func (m PaymentMethod) Deferred() bool {
	return m == PaymentCredit
}

// PurchaseItem is one invoice line. Items are owned by their purchase:
// created together and deleted together.
type PurchaseItem struct {
	ItemID      string          `json:"itemID"`
	PurchaseID  string          `json:"purchaseID"`
	Code        string          `json:"code"` // SKU or barcode, optional
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"` // quantity * unitPrice
}

// Purchase is a supplier invoice. InvoiceNumber is the visual reference and
// may repeat across suppliers.
type Purchase struct {
	PurchaseID    string          `json:"purchaseID"`
	SupplierID    string          `json:"supplierID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	TaxNumber     string          `json:"taxNumber"`
	Description   string          `json:"description"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Items         []PurchaseItem  `json:"items,omitempty"`
	AuditFields
}
