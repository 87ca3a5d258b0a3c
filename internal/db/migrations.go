package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type migration struct {
	version int
	name    string
	apply   func(ctx context.Context, tx *sqlx.Tx, driver string) error
}

// Steps are append-only: never edit or reorder an applied step, add a new one.
var migrations = []migration{
	{version: 1, name: "create ledger tables", apply: createLedgerTables},
	{version: 2, name: "add deliveries.status", apply: addColumn("deliveries", "status", map[string]string{
		DriverPostgres: `TEXT NOT NULL DEFAULT 'Received' CHECK (status IN ('Scheduled', 'Received'))`,
		DriverSQLite:   `TEXT NOT NULL DEFAULT 'Received' CHECK (status IN ('Scheduled', 'Received'))`,
	})},
	{version: 3, name: "add deliveries.cost_price", apply: addColumn("deliveries", "cost_price", map[string]string{
		DriverPostgres: `NUMERIC(12, 2) NOT NULL DEFAULT 0 CHECK (cost_price >= 0)`,
		DriverSQLite:   `REAL NOT NULL DEFAULT 0 CHECK (cost_price >= 0)`,
	})},
	{version: 4, name: "index ledger lookups", apply: createIndexes},
}

var schemaMigrationsDDL = map[string]string{
	DriverPostgres: `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	DriverSQLite: `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

var ledgerTablesDDL = map[string][]string{
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			brand TEXT,
			quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			price NUMERIC(12, 2) NOT NULL DEFAULT 0 CHECK (price >= 0),
			min_stock_level INTEGER NOT NULL DEFAULT 10 CHECK (min_stock_level >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id BIGSERIAL PRIMARY KEY,
			product_id BIGINT NOT NULL REFERENCES products (id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			total_price NUMERIC(14, 2) NOT NULL,
			sale_date TIMESTAMPTZ NOT NULL DEFAULT now(),
			attendee_name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS deliveries (
			id BIGSERIAL PRIMARY KEY,
			product_id BIGINT NOT NULL REFERENCES products (id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			delivery_date TIMESTAMPTZ NOT NULL DEFAULT now(),
			attendee_name TEXT
		)`,
	},
	DriverSQLite: {
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			brand TEXT,
			quantity INTEGER NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			price REAL NOT NULL DEFAULT 0 CHECK (price >= 0),
			min_stock_level INTEGER NOT NULL DEFAULT 10 CHECK (min_stock_level >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_id INTEGER NOT NULL REFERENCES products (id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			total_price REAL NOT NULL,
			sale_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			attendee_name TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS deliveries (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_id INTEGER NOT NULL REFERENCES products (id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			delivery_date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			attendee_name TEXT
		)`,
	},
}

// Migrate brings the schema up to date. Pending steps run in order inside
// one transaction and are recorded in schema_migrations, so running it again
// is a no-op. Databases created before versioning existed are upgraded
// additively: tables are created only if absent and columns added only if
// missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	driver, err := driverOf(db)
	if err != nil {
		return err
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schemaMigrationsDDL[driver]); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}
	if driver == DriverPostgres {
		// Concurrent instances starting together apply the steps once.
		if _, err := tx.ExecContext(ctx, `LOCK TABLE schema_migrations IN EXCLUSIVE MODE`); err != nil {
			return fmt.Errorf("lock schema_migrations: %w", err)
		}
	}

	var applied []int
	if err := tx.SelectContext(ctx, &applied, `SELECT version FROM schema_migrations`); err != nil {
		return fmt.Errorf("read schema_migrations: %w", err)
	}
	done := make(map[int]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	for _, m := range migrations {
		if done[m.version] {
			continue
		}
		if err := m.apply(ctx, tx, driver); err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.version, m.name, err)
		}
		record := tx.Rebind(`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`)
		if _, err := tx.ExecContext(ctx, record, m.version, m.name); err != nil {
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}

// SchemaVersion returns the highest applied migration, or 0 on a fresh database.
func SchemaVersion(ctx context.Context, db *sqlx.DB) (int, error) {
	var version int
	err := db.GetContext(ctx, &version, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`)
	if err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

func createLedgerTables(ctx context.Context, tx *sqlx.Tx, driver string) error {
	for _, stmt := range ledgerTablesDDL[driver] {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func addColumn(table, column string, definitions map[string]string) func(context.Context, *sqlx.Tx, string) error {
	return func(ctx context.Context, tx *sqlx.Tx, driver string) error {
		exists, err := columnExists(ctx, tx, driver, table, column)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		stmt := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s`, table, column, definitions[driver])
		_, err = tx.ExecContext(ctx, stmt)
		return err
	}
}

func columnExists(ctx context.Context, tx *sqlx.Tx, driver, table, column string) (bool, error) {
	var query string
	switch driver {
	case DriverPostgres:
		query = `SELECT COUNT(*) FROM information_schema.columns
			WHERE table_schema = current_schema() AND table_name = $1 AND column_name = $2`
	default:
		query = `SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?`
	}

	var n int
	if err := tx.GetContext(ctx, &n, query, table, column); err != nil {
		return false, fmt.Errorf("inspect %s.%s: %w", table, column, err)
	}
	return n > 0, nil
}

func createIndexes(ctx context.Context, tx *sqlx.Tx, driver string) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_sales_product ON sales (product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_deliveries_product ON deliveries (product_id)`,
		`CREATE INDEX IF NOT EXISTS idx_deliveries_status ON deliveries (status)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func driverOf(db *sqlx.DB) (string, error) {
	switch db.DriverName() {
	case "pgx", "postgres":
		return DriverPostgres, nil
	case "sqlite", "sqlite3":
		return DriverSQLite, nil
	}
	return "", fmt.Errorf("unsupported database driver %q", db.DriverName())
}
