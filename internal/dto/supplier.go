package dto

import (
	"time"

	"github.com/muhasibpro/muhasib_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest defines the data needed to register a supplier.
type CreateSupplierRequest struct {
	Code      string          `json:"code"`
	Name      string          `json:"name" binding:"required"`
	Phone     string          `json:"phone"`
	TaxNumber string          `json:"taxNumber"`
	Balance   decimal.Decimal `json:"balance"` // opening balance, optional
}

// UpdateSupplierRequest defines the fields allowed for updating a supplier.
// Balance updates are the explicit bookkeeping action that maintains the
// authoritative running balance.
type UpdateSupplierRequest struct {
	Code      *string          `json:"code"`
	Name      *string          `json:"name"`
	Phone     *string          `json:"phone"`
	TaxNumber *string          `json:"taxNumber"`
	Balance   *decimal.Decimal `json:"balance"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID string          `json:"supplierID"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	TaxNumber  string          `json:"taxNumber"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		Code:       s.Code,
		Name:       s.Name,
		Phone:      s.Phone,
		TaxNumber:  s.TaxNumber,
		Balance:    s.Balance,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.LastUpdatedAt,
	}
}

// ListSuppliersParams defines query parameters for listing suppliers.
type ListSuppliersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListSuppliersResponse wraps the list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// StatementLineResponse is one categorized row of a supplier statement.
type StatementLineResponse struct {
	PurchaseID    string               `json:"purchaseID"`
	Reference     string               `json:"reference"`
	Date          string               `json:"date"`
	Description   string               `json:"description"`
	Amount        decimal.Decimal      `json:"amount"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	Deferred      bool                 `json:"deferred"`
}

// SupplierStatementResponse is the categorized purchase statement.
type SupplierStatementResponse struct {
	Supplier    SupplierResponse        `json:"supplier"`
	CreditTotal decimal.Decimal         `json:"creditTotal"`
	CashTotal   decimal.Decimal         `json:"cashTotal"`
	Lines       []StatementLineResponse `json:"lines"`
}

// ToSupplierStatementResponse converts a domain statement to its DTO.
func ToSupplierStatementResponse(st domain.SupplierStatement) SupplierStatementResponse {
	resp := SupplierStatementResponse{
		Supplier:    ToSupplierResponse(&st.Supplier),
		CreditTotal: st.CreditTotal,
		CashTotal:   st.CashTotal,
		Lines:       make([]StatementLineResponse, 0, len(st.Lines)),
	}
	for _, l := range st.Lines {
		resp.Lines = append(resp.Lines, StatementLineResponse{
			PurchaseID:    l.PurchaseID,
			Reference:     l.Reference,
			Date:          l.Date,
			Description:   l.Description,
			Amount:        l.Amount,
			PaymentMethod: l.PaymentMethod,
			Deferred:      l.Deferred,
		})
	}
	return resp
}
