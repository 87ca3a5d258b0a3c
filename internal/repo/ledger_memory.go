package repo

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/shopspring/decimal"
)

type ledgerState struct {
	products       []models.Product
	sales          []models.Sale
	deliveries     []models.Delivery
	nextProductID  int64
	nextSaleID     int64
	nextDeliveryID int64
}

func (s ledgerState) clone() ledgerState {
	s.products = slices.Clone(s.products)
	s.sales = slices.Clone(s.sales)
	s.deliveries = slices.Clone(s.deliveries)
	return s
}

// InMemoryLedgerStore is an in-memory implementation of LedgerStore.
// Transactions run one at a time against a private copy of the state which
// replaces the shared state only when the transaction succeeds.
type InMemoryLedgerStore struct {
	mu    sync.RWMutex
	state ledgerState
	now   func() time.Time
}

// NewInMemoryLedgerStore creates a new, empty instance of InMemoryLedgerStore.
func NewInMemoryLedgerStore() *InMemoryLedgerStore {
	return &InMemoryLedgerStore{
		state: ledgerState{nextProductID: 1, nextSaleID: 1, nextDeliveryID: 1},
		now:   time.Now,
	}
}

func (r *InMemoryLedgerStore) WithTx(ctx context.Context, fn func(tx LedgerTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	work := r.state.clone()
	if err := fn(&memoryLedgerTx{state: &work, now: r.now}); err != nil {
		return err
	}
	r.state = work
	return nil
}

// Clear drops every product, sale and delivery.
func (r *InMemoryLedgerStore) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = ledgerState{nextProductID: 1, nextSaleID: 1, nextDeliveryID: 1}
}

func (r *InMemoryLedgerStore) Products(ctx context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.state.products), nil
}

func (r *InMemoryLedgerStore) ProductByID(ctx context.Context, id int64) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.state.productIndex(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	return r.state.products[i], nil
}

func (r *InMemoryLedgerStore) ScheduledDeliveries(ctx context.Context) ([]models.DeliveryView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var views []models.DeliveryView
	for _, d := range r.state.deliveries {
		if d.Status == models.DeliveryScheduled {
			views = append(views, r.state.deliveryView(d))
		}
	}
	return views, nil
}

func (r *InMemoryLedgerStore) AllDeliveries(ctx context.Context) ([]models.DeliveryView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make([]models.DeliveryView, 0, len(r.state.deliveries))
	for _, d := range r.state.deliveries {
		views = append(views, r.state.deliveryView(d))
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].DeliveredAt.Equal(views[j].DeliveredAt) {
			return views[i].ID > views[j].ID
		}
		return views[i].DeliveredAt.After(views[j].DeliveredAt)
	})
	return views, nil
}

func (r *InMemoryLedgerStore) SalesHistory(ctx context.Context) ([]models.SaleView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make([]models.SaleView, 0, len(r.state.sales))
	for _, s := range r.state.sales {
		p := r.state.productOrZero(s.ProductID)
		views = append(views, models.SaleView{
			ID:           s.ID,
			ProductID:    s.ProductID,
			ProductName:  p.Name,
			Brand:        p.Brand,
			Quantity:     s.Quantity,
			TotalPrice:   s.TotalPrice,
			SoldAt:       s.SoldAt,
			AttendeeName: s.AttendeeName,
		})
	}
	return views, nil
}

func (r *InMemoryLedgerStore) Totals(ctx context.Context) (Totals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := Totals{Revenue: decimal.Zero, Expense: decimal.Zero}
	for _, s := range r.state.sales {
		t.Revenue = t.Revenue.Add(s.TotalPrice)
		t.SalesCount++
	}
	for _, d := range r.state.deliveries {
		t.Expense = t.Expense.Add(d.TotalCost())
		if d.Status == models.DeliveryScheduled {
			t.ScheduledCount++
		}
	}
	return t, nil
}

func (s *ledgerState) productIndex(id int64) int {
	return slices.IndexFunc(s.products, func(p models.Product) bool { return p.ID == id })
}

func (s *ledgerState) deliveryIndex(id int64) int {
	return slices.IndexFunc(s.deliveries, func(d models.Delivery) bool { return d.ID == id })
}

func (s *ledgerState) productOrZero(id int64) models.Product {
	if i := s.productIndex(id); i >= 0 {
		return s.products[i]
	}
	return models.Product{}
}

func (s *ledgerState) deliveryView(d models.Delivery) models.DeliveryView {
	p := s.productOrZero(d.ProductID)
	return models.DeliveryView{
		ID:          d.ID,
		ProductID:   d.ProductID,
		ProductName: p.Name,
		Brand:       p.Brand,
		Quantity:    d.Quantity,
		CostPrice:   d.CostPrice,
		TotalCost:   d.TotalCost(),
		DeliveredAt: d.DeliveredAt,
		Handler:     d.Handler,
		Status:      d.Status,
	}
}

type memoryLedgerTx struct {
	state *ledgerState
	now   func() time.Time
}

// LockCatalog is a no-op: the store mutex already serializes transactions.
func (t *memoryLedgerTx) LockCatalog(ctx context.Context) error { return nil }

func (t *memoryLedgerTx) CountProducts(ctx context.Context) (int, error) {
	return len(t.state.products), nil
}

func (t *memoryLedgerTx) InsertProduct(ctx context.Context, p models.Product) (int64, error) {
	p.ID = t.state.nextProductID
	t.state.nextProductID++
	t.state.products = append(t.state.products, p)
	return p.ID, nil
}

func (t *memoryLedgerTx) ProductForUpdate(ctx context.Context, id int64) (models.Product, error) {
	i := t.state.productIndex(id)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	return t.state.products[i], nil
}

func (t *memoryLedgerTx) UpdatePrice(ctx context.Context, productID int64, price decimal.Decimal) (models.Product, error) {
	i := t.state.productIndex(productID)
	if i < 0 {
		return models.Product{}, ErrProductNotFound
	}
	t.state.products[i].Price = price
	return t.state.products[i], nil
}

func (t *memoryLedgerTx) AdjustQuantity(ctx context.Context, productID int64, delta int) (models.Product, error) {
	i := t.state.productIndex(productID)
	if i < 0 || t.state.products[i].Quantity+delta < 0 {
		return models.Product{}, ErrInvalidQuantityChange
	}
	t.state.products[i].Quantity += delta
	return t.state.products[i], nil
}

func (t *memoryLedgerTx) InsertSale(ctx context.Context, s models.Sale) (int64, error) {
	if s.SoldAt.IsZero() {
		s.SoldAt = t.now()
	}
	s.ID = t.state.nextSaleID
	t.state.nextSaleID++
	t.state.sales = append(t.state.sales, s)
	return s.ID, nil
}

func (t *memoryLedgerTx) InsertDelivery(ctx context.Context, d models.Delivery) (int64, error) {
	if d.DeliveredAt.IsZero() {
		d.DeliveredAt = t.now()
	}
	d.ID = t.state.nextDeliveryID
	t.state.nextDeliveryID++
	t.state.deliveries = append(t.state.deliveries, d)
	return d.ID, nil
}

func (t *memoryLedgerTx) DeliveryForUpdate(ctx context.Context, id int64) (models.Delivery, error) {
	i := t.state.deliveryIndex(id)
	if i < 0 {
		return models.Delivery{}, ErrDeliveryNotFound
	}
	return t.state.deliveries[i], nil
}

func (t *memoryLedgerTx) MarkDeliveryReceived(ctx context.Context, id int64, handler string) error {
	i := t.state.deliveryIndex(id)
	if i < 0 || t.state.deliveries[i].Status != models.DeliveryScheduled {
		return ErrDeliveryNotFound
	}
	t.state.deliveries[i].Status = models.DeliveryReceived
	t.state.deliveries[i].Handler = handler
	return nil
}
