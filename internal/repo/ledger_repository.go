package repo

import (
	"context"

	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/shopspring/decimal"
)

// LedgerStore is the durable record of products, sales and deliveries.
// Every mutation goes through WithTx; everything else is a plain read.
type LedgerStore interface {
	// WithTx runs fn inside one transaction. The transaction commits only
	// when fn returns nil and is rolled back on every other exit path.
	WithTx(ctx context.Context, fn func(tx LedgerTx) error) error

	Products(ctx context.Context) ([]models.Product, error)
	ProductByID(ctx context.Context, id int64) (models.Product, error)
	ScheduledDeliveries(ctx context.Context) ([]models.DeliveryView, error)
	AllDeliveries(ctx context.Context) ([]models.DeliveryView, error)
	SalesHistory(ctx context.Context) ([]models.SaleView, error)
	Totals(ctx context.Context) (Totals, error)
}

// LedgerTx is the set of primitives available inside a transaction. Rows
// read with the ForUpdate methods stay locked until the transaction ends.
type LedgerTx interface {
	LockCatalog(ctx context.Context) error
	CountProducts(ctx context.Context) (int, error)
	InsertProduct(ctx context.Context, p models.Product) (int64, error)
	ProductForUpdate(ctx context.Context, id int64) (models.Product, error)
	UpdatePrice(ctx context.Context, productID int64, price decimal.Decimal) (models.Product, error)
	AdjustQuantity(ctx context.Context, productID int64, delta int) (models.Product, error)
	InsertSale(ctx context.Context, s models.Sale) (int64, error)
	InsertDelivery(ctx context.Context, d models.Delivery) (int64, error)
	DeliveryForUpdate(ctx context.Context, id int64) (models.Delivery, error)
	MarkDeliveryReceived(ctx context.Context, id int64, handler string) error
}

// Totals are the ledger-wide sums used by the financial reports.
// Expense covers every delivery, scheduled or received.
type Totals struct {
	Revenue        decimal.Decimal `db:"revenue"`
	Expense        decimal.Decimal `db:"expense"`
	SalesCount     int             `db:"sales_count"`
	ScheduledCount int             `db:"scheduled_count"`
}
