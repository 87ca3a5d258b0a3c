package handlers

import (
	"context"

	"github.com/rogerio-castellano/pharmalink/internal/auth"
	"github.com/rogerio-castellano/pharmalink/internal/cart"
	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/rogerio-castellano/pharmalink/internal/notify"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LedgerAPI is the ledger plus the owner-only catalog and overview calls.
type LedgerAPI interface {
	ledger.Ledger
	CreateProduct(ctx context.Context, np ledger.NewProduct) (models.Product, error)
	UpdatePrice(ctx context.Context, productID int64, price decimal.Decimal) (models.Product, error)
	Dashboard(ctx context.Context) (ledger.Dashboard, error)
}

type Authenticator interface {
	Authenticate(username, password string) (models.User, error)
}

var (
	ledgerSvc LedgerAPI
	directory Authenticator
	cartStore cart.Store              = cart.NewMemoryStore()
	claimer   cart.Claimer            = cart.NewMemoryClaimer(idempotencyTTL)
	notifier  notify.SupplierNotifier = notify.NewMockNotifier(zap.NewNop())
	logger                            = zap.NewNop()
)

func SetLedger(l LedgerAPI) {
	ledgerSvc = l
}

func SetDirectory(d Authenticator) {
	directory = d
}

func SetCartStore(s cart.Store) {
	cartStore = s
}

func SetClaimer(c cart.Claimer) {
	claimer = c
}

func SetNotifier(n notify.SupplierNotifier) {
	notifier = n
}

func SetLogger(l *zap.Logger) {
	logger = l.Named("handlers")
}

var _ Authenticator = (*auth.Directory)(nil)
