package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type DeliveryStatus string

const (
	DeliveryScheduled DeliveryStatus = "Scheduled"
	DeliveryReceived  DeliveryStatus = "Received"
)

// Delivery is incoming stock. A Scheduled delivery does not affect the
// product quantity until it is confirmed; a Received one already has.
type Delivery struct {
	ID          int64           `db:"id" json:"id"`
	ProductID   int64           `db:"product_id" json:"product_id"`
	Quantity    int             `db:"quantity" json:"quantity"`
	CostPrice   decimal.Decimal `db:"cost_price" json:"cost_price"`
	DeliveredAt time.Time       `db:"delivery_date" json:"delivery_date"`
	Handler     string          `db:"attendee_name" json:"handler"`
	Status      DeliveryStatus  `db:"status" json:"status"`
}

// TotalCost is quantity times unit cost.
func (d Delivery) TotalCost() decimal.Decimal {
	return d.CostPrice.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

// DeliveryView joins a delivery with the product fields shown to users.
type DeliveryView struct {
	ID          int64           `db:"id" json:"id"`
	ProductID   int64           `db:"product_id" json:"product_id"`
	ProductName string          `db:"product_name" json:"product_name"`
	Brand       string          `db:"brand" json:"brand"`
	Quantity    int             `db:"quantity" json:"quantity"`
	CostPrice   decimal.Decimal `db:"cost_price" json:"unit_cost"`
	TotalCost   decimal.Decimal `db:"total_cost" json:"total_cost"`
	DeliveredAt time.Time       `db:"delivery_date" json:"delivery_date"`
	Handler     string          `db:"attendee_name" json:"handler"`
	Status      DeliveryStatus  `db:"status" json:"status"`
}
