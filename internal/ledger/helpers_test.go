package ledger

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rogerio-castellano/pharmalink/internal/db"
	"github.com/rogerio-castellano/pharmalink/internal/events"
	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/rogerio-castellano/pharmalink/internal/repo"
	"github.com/shopspring/decimal"
)

// forEachStore runs fn once against the in-memory store and once against a
// fresh SQLite database file.
func forEachStore(t *testing.T, fn func(t *testing.T, store repo.LedgerStore)) {
	t.Helper()
	t.Run("memory", func(t *testing.T) {
		fn(t, repo.NewInMemoryLedgerStore())
	})
	t.Run("sqlite", func(t *testing.T) {
		fn(t, newSQLiteStore(t))
	})
}

func newSQLiteStore(t *testing.T) repo.LedgerStore {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Connect(ctx, db.DriverSQLite, filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(ctx, conn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	store, err := repo.NewSQLLedgerStore(conn)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// stockedProduct creates a product and receives qty units of it at zero cost.
func stockedProduct(t *testing.T, l *Core, name, price string, qty, minStock int) models.Product {
	t.Helper()
	ctx := context.Background()

	p, err := l.CreateProduct(ctx, NewProduct{Name: name, Brand: "Test", Price: dec(price), MinStockLevel: minStock})
	if err != nil {
		t.Fatalf("CreateProduct(%s) failed: %v", name, err)
	}
	if qty > 0 {
		if err := l.ReceiveStock(ctx, p.ID, qty, "setup", decimal.Zero); err != nil {
			t.Fatalf("ReceiveStock(%s) failed: %v", name, err)
		}
	}
	p.Quantity = qty
	return p
}

func quantityOf(t *testing.T, store repo.LedgerStore, id int64) int {
	t.Helper()
	p, err := store.ProductByID(context.Background(), id)
	if err != nil {
		t.Fatalf("ProductByID(%d) failed: %v", id, err)
	}
	return p.Quantity
}

// assertLedgerBalanced checks that every product's quantity equals its
// received deliveries minus its sales.
func assertLedgerBalanced(t *testing.T, store repo.LedgerStore) {
	t.Helper()
	ctx := context.Background()

	products, err := store.Products(ctx)
	if err != nil {
		t.Fatalf("Products failed: %v", err)
	}
	deliveries, err := store.AllDeliveries(ctx)
	if err != nil {
		t.Fatalf("AllDeliveries failed: %v", err)
	}
	sales, err := store.SalesHistory(ctx)
	if err != nil {
		t.Fatalf("SalesHistory failed: %v", err)
	}

	expected := map[int64]int{}
	for _, d := range deliveries {
		if d.Status == models.DeliveryReceived {
			expected[d.ProductID] += d.Quantity
		}
	}
	for _, s := range sales {
		expected[s.ProductID] -= s.Quantity
	}
	for _, p := range products {
		if p.Quantity != expected[p.ID] {
			t.Errorf("product %d (%s): quantity %d, ledger says %d", p.ID, p.Name, p.Quantity, expected[p.ID])
		}
	}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingPublisher) Publish(ctx context.Context, e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func (r *recordingPublisher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}
