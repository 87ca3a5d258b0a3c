package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/shopspring/decimal"
)

const (
	productColumns = `id, name, COALESCE(brand, '') AS brand, quantity, price, min_stock_level`

	deliveryViewQuery = `
		SELECT d.id, d.product_id, p.name AS product_name, COALESCE(p.brand, '') AS brand,
			d.quantity, d.cost_price,
			d.delivery_date, COALESCE(d.attendee_name, '') AS attendee_name, d.status
		FROM deliveries d
		JOIN products p ON d.product_id = p.id`
)

// SQLLedgerStore implements LedgerStore on PostgreSQL (pgx) or SQLite
// (modernc). Queries are written with ? placeholders and rebound per driver.
// Money is never computed in SQL: SQLite keeps it as REAL, so sums and
// products are done in Go on values rounded back to cents.
type SQLLedgerStore struct {
	db      *sqlx.DB
	dialect dialect
	now     func() time.Time
}

func NewSQLLedgerStore(db *sqlx.DB) (*SQLLedgerStore, error) {
	d, err := dialectFor(db.DriverName())
	if err != nil {
		return nil, err
	}
	return &SQLLedgerStore{db: db, dialect: d, now: func() time.Time { return time.Now().UTC() }}, nil
}

func (s *SQLLedgerStore) WithTx(ctx context.Context, fn func(tx LedgerTx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&sqlLedgerTx{tx: tx, dialect: s.dialect, now: s.now}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *SQLLedgerStore) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	if err := s.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	for i := range products {
		products[i].Price = cents(products[i].Price)
	}
	return products, nil
}

func (s *SQLLedgerStore) ProductByID(ctx context.Context, id int64) (models.Product, error) {
	var p models.Product
	query := s.db.Rebind(`SELECT ` + productColumns + ` FROM products WHERE id = ?`)
	err := s.db.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("select product %d: %w", id, err)
	}
	p.Price = cents(p.Price)
	return p, nil
}

func (s *SQLLedgerStore) ScheduledDeliveries(ctx context.Context) ([]models.DeliveryView, error) {
	var views []models.DeliveryView
	query := s.db.Rebind(deliveryViewQuery + ` WHERE d.status = ? ORDER BY d.id`)
	if err := s.db.SelectContext(ctx, &views, query, string(models.DeliveryScheduled)); err != nil {
		return nil, fmt.Errorf("select scheduled deliveries: %w", err)
	}
	return withTotalCost(views), nil
}

func (s *SQLLedgerStore) AllDeliveries(ctx context.Context) ([]models.DeliveryView, error) {
	var views []models.DeliveryView
	query := deliveryViewQuery + ` ORDER BY d.delivery_date DESC, d.id DESC`
	if err := s.db.SelectContext(ctx, &views, query); err != nil {
		return nil, fmt.Errorf("select deliveries: %w", err)
	}
	return withTotalCost(views), nil
}

func (s *SQLLedgerStore) SalesHistory(ctx context.Context) ([]models.SaleView, error) {
	var views []models.SaleView
	query := `
		SELECT s.id, s.product_id, p.name AS product_name, COALESCE(p.brand, '') AS brand,
			s.quantity, s.total_price, s.sale_date, COALESCE(s.attendee_name, '') AS attendee_name
		FROM sales s
		JOIN products p ON s.product_id = p.id
		ORDER BY s.id`
	if err := s.db.SelectContext(ctx, &views, query); err != nil {
		return nil, fmt.Errorf("select sales: %w", err)
	}
	for i := range views {
		views[i].TotalPrice = cents(views[i].TotalPrice)
	}
	return views, nil
}

func (s *SQLLedgerStore) Totals(ctx context.Context) (Totals, error) {
	t := Totals{Revenue: decimal.Zero, Expense: decimal.Zero}

	var revenues []decimal.Decimal
	if err := s.db.SelectContext(ctx, &revenues, `SELECT total_price FROM sales`); err != nil {
		return Totals{}, fmt.Errorf("select sale totals: %w", err)
	}
	for _, r := range revenues {
		t.Revenue = t.Revenue.Add(cents(r))
	}
	t.SalesCount = len(revenues)

	var deliveries []models.Delivery
	if err := s.db.SelectContext(ctx, &deliveries, `SELECT quantity, cost_price, status FROM deliveries`); err != nil {
		return Totals{}, fmt.Errorf("select delivery costs: %w", err)
	}
	for _, d := range deliveries {
		d.CostPrice = cents(d.CostPrice)
		t.Expense = t.Expense.Add(d.TotalCost())
		if d.Status == models.DeliveryScheduled {
			t.ScheduledCount++
		}
	}
	return t, nil
}

// cents drops the binary noise a REAL column adds. Stored amounts never
// carry more than two decimal places.
func cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func withTotalCost(views []models.DeliveryView) []models.DeliveryView {
	for i := range views {
		views[i].CostPrice = cents(views[i].CostPrice)
		views[i].TotalCost = views[i].CostPrice.Mul(decimal.NewFromInt(int64(views[i].Quantity)))
	}
	return views
}

type sqlLedgerTx struct {
	tx      *sqlx.Tx
	dialect dialect
	now     func() time.Time
}

func (t *sqlLedgerTx) LockCatalog(ctx context.Context) error {
	if t.dialect.lockCatalog == "" {
		return nil
	}
	if _, err := t.tx.ExecContext(ctx, t.dialect.lockCatalog); err != nil {
		return fmt.Errorf("lock products: %w", err)
	}
	return nil
}

func (t *sqlLedgerTx) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := t.tx.GetContext(ctx, &n, `SELECT COUNT(*) FROM products`); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (t *sqlLedgerTx) InsertProduct(ctx context.Context, p models.Product) (int64, error) {
	query := t.tx.Rebind(`
		INSERT INTO products (name, brand, quantity, price, min_stock_level)
		VALUES (?, ?, ?, ?, ?) RETURNING id`)
	var id int64
	if err := t.tx.QueryRowxContext(ctx, query, p.Name, p.Brand, p.Quantity, p.Price, p.MinStockLevel).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return id, nil
}

func (t *sqlLedgerTx) ProductForUpdate(ctx context.Context, id int64) (models.Product, error) {
	var p models.Product
	query := t.tx.Rebind(`SELECT ` + productColumns + ` FROM products WHERE id = ?` + t.dialect.forUpdate)
	err := t.tx.GetContext(ctx, &p, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("lock product %d: %w", id, err)
	}
	p.Price = cents(p.Price)
	return p, nil
}

func (t *sqlLedgerTx) UpdatePrice(ctx context.Context, productID int64, price decimal.Decimal) (models.Product, error) {
	query := t.tx.Rebind(`UPDATE products SET price = ? WHERE id = ? RETURNING ` + productColumns)

	var p models.Product
	err := t.tx.GetContext(ctx, &p, query, price, productID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("update price of product %d: %w", productID, err)
	}
	p.Price = cents(p.Price)
	return p, nil
}

// AdjustQuantity applies delta to the product quantity. The WHERE clause
// refuses any change that would leave the quantity negative.
func (t *sqlLedgerTx) AdjustQuantity(ctx context.Context, productID int64, delta int) (models.Product, error) {
	query := t.tx.Rebind(`
		UPDATE products
		SET quantity = quantity + ?
		WHERE id = ? AND quantity + ? >= 0
		RETURNING ` + productColumns)

	var p models.Product
	err := t.tx.GetContext(ctx, &p, query, delta, productID, delta)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrInvalidQuantityChange
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("adjust quantity of product %d: %w", productID, err)
	}
	p.Price = cents(p.Price)
	return p, nil
}

func (t *sqlLedgerTx) InsertSale(ctx context.Context, s models.Sale) (int64, error) {
	if s.SoldAt.IsZero() {
		s.SoldAt = t.now()
	}
	query := t.tx.Rebind(`
		INSERT INTO sales (product_id, quantity, total_price, sale_date, attendee_name)
		VALUES (?, ?, ?, ?, ?) RETURNING id`)
	var id int64
	if err := t.tx.QueryRowxContext(ctx, query, s.ProductID, s.Quantity, s.TotalPrice, s.SoldAt, s.AttendeeName).Scan(&id); err != nil {
		return 0, fmt.Errorf("insert sale: %w", err)
	}
	return id, nil
}

func (t *sqlLedgerTx) InsertDelivery(ctx context.Context, d models.Delivery) (int64, error) {
	if d.DeliveredAt.IsZero() {
		d.DeliveredAt = t.now()
	}
	query := t.tx.Rebind(`
		INSERT INTO deliveries (product_id, quantity, delivery_date, attendee_name, status, cost_price)
		VALUES (?, ?, ?, ?, ?, ?) RETURNING id`)
	var id int64
	err := t.tx.QueryRowxContext(ctx, query, d.ProductID, d.Quantity, d.DeliveredAt, d.Handler, string(d.Status), d.CostPrice).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert delivery: %w", err)
	}
	return id, nil
}

func (t *sqlLedgerTx) DeliveryForUpdate(ctx context.Context, id int64) (models.Delivery, error) {
	var d models.Delivery
	query := t.tx.Rebind(`
		SELECT id, product_id, quantity, cost_price, delivery_date,
			COALESCE(attendee_name, '') AS attendee_name, status
		FROM deliveries WHERE id = ?` + t.dialect.forUpdate)
	err := t.tx.GetContext(ctx, &d, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Delivery{}, ErrDeliveryNotFound
	}
	if err != nil {
		return models.Delivery{}, fmt.Errorf("lock delivery %d: %w", id, err)
	}
	d.CostPrice = cents(d.CostPrice)
	return d, nil
}

// MarkDeliveryReceived flips a Scheduled delivery to Received. A delivery
// that is no longer Scheduled is reported as not found.
func (t *sqlLedgerTx) MarkDeliveryReceived(ctx context.Context, id int64, handler string) error {
	query := t.tx.Rebind(`UPDATE deliveries SET status = ?, attendee_name = ? WHERE id = ? AND status = ?`)
	res, err := t.tx.ExecContext(ctx, query, string(models.DeliveryReceived), handler, id, string(models.DeliveryScheduled))
	if err != nil {
		return fmt.Errorf("confirm delivery %d: %w", id, err)
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrDeliveryNotFound
	}
	return nil
}
