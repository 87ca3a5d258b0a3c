package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is an append-only record of stock leaving the shelf. TotalPrice is
// captured when the sale is recorded and never follows later price changes.
type Sale struct {
	ID           int64           `db:"id" json:"id"`
	ProductID    int64           `db:"product_id" json:"product_id"`
	Quantity     int             `db:"quantity" json:"quantity"`
	TotalPrice   decimal.Decimal `db:"total_price" json:"total_price"`
	SoldAt       time.Time       `db:"sale_date" json:"sale_date"`
	AttendeeName string          `db:"attendee_name" json:"attendee_name"`
}

type SaleView struct {
	ID           int64           `db:"id" json:"id"`
	ProductID    int64           `db:"product_id" json:"product_id"`
	ProductName  string          `db:"product_name" json:"product_name"`
	Brand        string          `db:"brand" json:"brand"`
	Quantity     int             `db:"quantity" json:"quantity"`
	TotalPrice   decimal.Decimal `db:"total_price" json:"total_price"`
	SoldAt       time.Time       `db:"sale_date" json:"sale_date"`
	AttendeeName string          `db:"attendee_name" json:"attendee_name"`
}
