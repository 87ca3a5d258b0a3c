package ledger

import (
	"context"
	"iter"
	"slices"
	"time"

	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/rogerio-castellano/pharmalink/internal/repo"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ProfitSummary counts every delivery as expense from the moment it is
// scheduled, not only once received.
type ProfitSummary struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	NetProfit    decimal.Decimal `json:"net_profit"`
}

type ProductRevenue struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitsSold   int             `json:"units_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type ProductStock struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// Dashboard is the owner's overview.
type Dashboard struct {
	TotalProducts     int              `json:"total_products"`
	LowStockCount     int              `json:"low_stock_count"`
	SalesCount        int              `json:"sales_count"`
	PendingDeliveries int              `json:"pending_deliveries"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	TotalExpense      decimal.Decimal  `json:"total_expense"`
	NetProfit         decimal.Decimal  `json:"net_profit"`
	RevenueByProduct  []ProductRevenue `json:"revenue_by_product"`
	StockDistribution []ProductStock   `json:"stock_distribution"`
}

// Reporter answers read-only questions about the ledger.
type Reporter struct {
	store   repo.LedgerStore
	logger  *zap.Logger
	tracer  trace.Tracer
	timeout time.Duration
}

func NewReporter(store repo.LedgerStore, opts ...Option) *Reporter {
	o := buildOptions(opts)
	return &Reporter{
		store:   store,
		logger:  o.logger.Named("reporting"),
		tracer:  o.tracer,
		timeout: o.timeout,
	}
}

func (r *Reporter) Inventory(ctx context.Context) ([]models.Product, error) {
	return read(ctx, r, "inventory", r.store.Products)
}

// LowStock yields the products at or below their minimum stock level, in
// store order. The sequence can be ranged over any number of times.
func (r *Reporter) LowStock(ctx context.Context) (iter.Seq[models.Product], error) {
	products, err := read(ctx, r, "low_stock", r.store.Products)
	if err != nil {
		return nil, err
	}
	return func(yield func(models.Product) bool) {
		for _, p := range products {
			if p.LowStock() && !yield(p) {
				return
			}
		}
	}, nil
}

func (r *Reporter) GetLowStock(ctx context.Context) ([]models.Product, error) {
	seq, err := r.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

func (r *Reporter) ScheduledDeliveries(ctx context.Context) ([]models.DeliveryView, error) {
	return read(ctx, r, "scheduled_deliveries", r.store.ScheduledDeliveries)
}

// AllDeliveries lists every delivery, newest first.
func (r *Reporter) AllDeliveries(ctx context.Context) ([]models.DeliveryView, error) {
	return read(ctx, r, "all_deliveries", r.store.AllDeliveries)
}

func (r *Reporter) SalesHistory(ctx context.Context) ([]models.SaleView, error) {
	return read(ctx, r, "sales_history", r.store.SalesHistory)
}

func (r *Reporter) ProfitSummary(ctx context.Context) (ProfitSummary, error) {
	t, err := read(ctx, r, "profit_summary", r.store.Totals)
	if err != nil {
		return ProfitSummary{}, err
	}
	return ProfitSummary{
		TotalRevenue: t.Revenue,
		TotalExpense: t.Expense,
		NetProfit:    t.Revenue.Sub(t.Expense),
	}, nil
}

// RevenueByProduct totals the sales of each product that has sold at
// least once, highest revenue first.
func (r *Reporter) RevenueByProduct(ctx context.Context) ([]ProductRevenue, error) {
	sales, err := read(ctx, r, "revenue_by_product", r.store.SalesHistory)
	if err != nil {
		return nil, err
	}
	return revenueByProduct(sales), nil
}

func revenueByProduct(sales []models.SaleView) []ProductRevenue {
	index := map[int64]int{}
	out := []ProductRevenue{}
	for _, s := range sales {
		i, ok := index[s.ProductID]
		if !ok {
			i = len(out)
			index[s.ProductID] = i
			out = append(out, ProductRevenue{ProductID: s.ProductID, ProductName: s.ProductName, Revenue: decimal.Zero})
		}
		out[i].UnitsSold += s.Quantity
		out[i].Revenue = out[i].Revenue.Add(s.TotalPrice)
	}
	slices.SortStableFunc(out, func(a, b ProductRevenue) int {
		return b.Revenue.Cmp(a.Revenue)
	})
	return out
}

func (r *Reporter) Dashboard(ctx context.Context) (Dashboard, error) {
	products, err := read(ctx, r, "dashboard", r.store.Products)
	if err != nil {
		return Dashboard{}, err
	}
	t, err := read(ctx, r, "dashboard", r.store.Totals)
	if err != nil {
		return Dashboard{}, err
	}
	sales, err := read(ctx, r, "dashboard", r.store.SalesHistory)
	if err != nil {
		return Dashboard{}, err
	}

	d := Dashboard{
		TotalProducts:     len(products),
		SalesCount:        t.SalesCount,
		PendingDeliveries: t.ScheduledCount,
		TotalRevenue:      t.Revenue,
		TotalExpense:      t.Expense,
		NetProfit:         t.Revenue.Sub(t.Expense),
		RevenueByProduct:  revenueByProduct(sales),
		StockDistribution: make([]ProductStock, 0, len(products)),
	}
	for _, p := range products {
		if p.LowStock() {
			d.LowStockCount++
		}
		d.StockDistribution = append(d.StockDistribution, ProductStock{ProductID: p.ID, ProductName: p.Name, Quantity: p.Quantity})
	}
	return d, nil
}

func read[T any](ctx context.Context, r *Reporter, op string, fn func(context.Context) (T, error)) (T, error) {
	ctx, span := r.tracer.Start(ctx, "ledger.report."+op)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	v, err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, op+" failed")
		r.logger.Error("Report query failed", zap.String("op", op), zap.Error(err))
		var zero T
		return zero, &StoreError{Op: op, Err: err}
	}
	return v, nil
}
