package repo

import "fmt"

// dialect holds the few statements that differ between the supported drivers.
type dialect struct {
	name        string
	forUpdate   string
	lockCatalog string
}

var (
	postgresDialect = dialect{
		name:        "postgres",
		forUpdate:   " FOR UPDATE",
		lockCatalog: "LOCK TABLE products IN SHARE ROW EXCLUSIVE MODE",
	}
	// SQLite write transactions are opened with _txlock=immediate, so the
	// database write lock is already held when the transaction starts.
	sqliteDialect = dialect{
		name: "sqlite",
	}
)

func dialectFor(driverName string) (dialect, error) {
	switch driverName {
	case "pgx", "postgres":
		return postgresDialect, nil
	case "sqlite", "sqlite3":
		return sqliteDialect, nil
	}
	return dialect{}, fmt.Errorf("unsupported database driver %q", driverName)
}
