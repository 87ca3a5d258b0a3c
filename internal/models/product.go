package models

import "github.com/shopspring/decimal"

// Product represents a product entity in the pharmacy inventory.
type Product struct {
	ID            int64           `db:"id" json:"id"`
	Name          string          `db:"name" json:"name"`
	Brand         string          `db:"brand" json:"brand"`
	Quantity      int             `db:"quantity" json:"quantity"`
	Price         decimal.Decimal `db:"price" json:"price"`
	MinStockLevel int             `db:"min_stock_level" json:"min_stock_level"`
}

// LowStock reports whether the on-hand quantity has reached the minimum stock level.
func (p Product) LowStock() bool {
	return p.Quantity <= p.MinStockLevel
}
