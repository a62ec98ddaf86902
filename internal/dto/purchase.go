package dto

import (
	"time"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseItemRequest is one invoice line in a create request. The line total
// is computed server-side.
type PurchaseItemRequest struct {
	Code        string          `json:"code"`
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreatePurchaseRequest defines a new supplier invoice with its line items.
type CreatePurchaseRequest struct {
	SupplierID    string                `json:"supplierID" binding:"required"`
	InvoiceNumber string                `json:"invoiceNumber"`
	Date          string                `json:"date" binding:"required"`
	Amount        decimal.Decimal       `json:"amount" binding:"required"`
	Currency      string                `json:"currency"`
	TaxNumber     string                `json:"taxNumber"`
	Description   string                `json:"description"`
	PaymentMethod domain.PaymentMethod  `json:"paymentMethod" binding:"required,oneof=cash credit transfer"`
	Items         []PurchaseItemRequest `json:"items"`
}

// PurchaseItemResponse is one invoice line in a response.
type PurchaseItemResponse struct {
	ItemID      string          `json:"itemID"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// PurchaseResponse defines the data returned for a purchase.
type PurchaseResponse struct {
	PurchaseID    string                 `json:"purchaseID"`
	SupplierID    string                 `json:"supplierID"`
	InvoiceNumber string                 `json:"invoiceNumber"`
	Date          string                 `json:"date"`
	Amount        decimal.Decimal        `json:"amount"`
	Currency      string                 `json:"currency"`
	TaxNumber     string                 `json:"taxNumber"`
	Description   string                 `json:"description"`
	PaymentMethod domain.PaymentMethod   `json:"paymentMethod"`
	Items         []PurchaseItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToPurchaseResponse converts a domain.Purchase to its response DTO.
func ToPurchaseResponse(p *domain.Purchase) PurchaseResponse {
	resp := PurchaseResponse{
		PurchaseID:    p.PurchaseID,
		SupplierID:    p.SupplierID,
		InvoiceNumber: p.InvoiceNumber,
		Date:          p.Date,
		Amount:        p.Amount,
		Currency:      p.Currency,
		TaxNumber:     p.TaxNumber,
		Description:   p.Description,
		PaymentMethod: p.PaymentMethod,
		CreatedAt:     p.CreatedAt,
	}
	for _, it := range p.Items {
		resp.Items = append(resp.Items, PurchaseItemResponse{
			ItemID:      it.ItemID,
			Code:        it.Code,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}
	return resp
}

// ListPurchasesParams defines query parameters for listing purchases.
type ListPurchasesParams struct {
	SupplierID string `form:"supplierID"`
	Limit      int    `form:"limit,default=20"`
	Offset     int    `form:"offset,default=0"`
}

// ListPurchasesResponse wraps the list of purchases.
type ListPurchasesResponse struct {
	Purchases []PurchaseResponse `json:"purchases"`
}
