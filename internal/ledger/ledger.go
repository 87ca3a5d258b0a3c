package ledger

import (
	"context"
	"time"

	"github.com/rogerio-castellano/pharmalink/internal/events"
	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/rogerio-castellano/pharmalink/internal/repo"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	DefaultOpTimeout = 3 * time.Second

	tracerName = "github.com/rogerio-castellano/pharmalink/internal/ledger"
)

// Ledger is everything the presentation layer may ask of the core.
type Ledger interface {
	GetInventory(ctx context.Context) ([]models.Product, error)
	GetLowStock(ctx context.Context) ([]models.Product, error)
	ReceiveStock(ctx context.Context, productID int64, qty int, handler string, unitCost decimal.Decimal) error
	ScheduleDelivery(ctx context.Context, productID int64, qty int, scheduler string, unitCost decimal.Decimal) (int64, error)
	GetScheduledDeliveries(ctx context.Context) ([]models.DeliveryView, error)
	ConfirmDelivery(ctx context.Context, deliveryID int64, confirmer string) (Result, error)
	RecordSale(ctx context.Context, productID int64, qty int, attendant string) (Result, error)
	GetSalesHistory(ctx context.Context) ([]models.SaleView, error)
	GetAllDeliveries(ctx context.Context) ([]models.DeliveryView, error)
	GetProfitSummary(ctx context.Context) (ProfitSummary, error)
}

// Result is the outcome of an operation whose business failures are
// reported as values. Reason is nil when OK is true.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Reason  error  `json:"-"`
}

type options struct {
	logger    *zap.Logger
	tracer    trace.Tracer
	publisher events.Publisher
	timeout   time.Duration
}

type Option func(*options)

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

func WithTracer(t trace.Tracer) Option {
	return func(o *options) { o.tracer = t }
}

// WithPublisher sets where committed changes are announced.
func WithPublisher(p events.Publisher) Option {
	return func(o *options) { o.publisher = p }
}

// WithOpTimeout bounds every store call made by a single operation.
func WithOpTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger:    zap.NewNop(),
		tracer:    otel.Tracer(tracerName),
		publisher: events.Noop{},
		timeout:   DefaultOpTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Core bundles the inventory service and the reporting engine behind the
// Ledger interface.
type Core struct {
	*Service
	*Reporter
}

var _ Ledger = (*Core)(nil)

func New(store repo.LedgerStore, opts ...Option) *Core {
	return &Core{
		Service:  NewService(store, opts...),
		Reporter: NewReporter(store, opts...),
	}
}

func (c *Core) GetInventory(ctx context.Context) ([]models.Product, error) {
	return c.Reporter.Inventory(ctx)
}

func (c *Core) GetScheduledDeliveries(ctx context.Context) ([]models.DeliveryView, error) {
	return c.Reporter.ScheduledDeliveries(ctx)
}

func (c *Core) GetSalesHistory(ctx context.Context) ([]models.SaleView, error) {
	return c.Reporter.SalesHistory(ctx)
}

func (c *Core) GetAllDeliveries(ctx context.Context) ([]models.DeliveryView, error) {
	return c.Reporter.AllDeliveries(ctx)
}

func (c *Core) GetProfitSummary(ctx context.Context) (ProfitSummary, error) {
	return c.Reporter.ProfitSummary(ctx)
}
