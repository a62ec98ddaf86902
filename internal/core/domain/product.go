package domain

import "github.com/shopspring/decimal"

// LowStockThreshold is the quantity below which a product counts as low
// stock on the dashboard.
const LowStockThreshold = 5

// Product is an inventory item. The dashboard's low-stock count is always a
// current snapshot of product quantities, never date-filtered.
type Product struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Category  string          `json:"category"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Cost      decimal.Decimal `json:"cost"`
	AuditFields
}

// LowStock reports whether the product is below the reorder threshold.
func (p Product) LowStock() bool {
	return p.Quantity < LowStockThreshold
}
