package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeSaleRecorded      = "sale.recorded"
	TypeStockReceived     = "stock.received"
	TypeDeliveryScheduled = "delivery.scheduled"
	TypeDeliveryConfirmed = "delivery.confirmed"
)

// Event describes a committed ledger change.
type Event struct {
	Type       string          `json:"type"`
	ProductID  int64           `json:"product_id"`
	DeliveryID int64           `json:"delivery_id,omitempty"`
	SaleID     int64           `json:"sale_id,omitempty"`
	Quantity   int             `json:"quantity"`
	Amount     decimal.Decimal `json:"amount"`
	Actor      string          `json:"actor"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
