package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rogerio-castellano/pharmalink/internal/auth"
	"github.com/rogerio-castellano/pharmalink/internal/db"
	handler "github.com/rogerio-castellano/pharmalink/internal/http/handlers"
	rl "github.com/rogerio-castellano/pharmalink/internal/http/rate_limiter"
	"github.com/rogerio-castellano/pharmalink/internal/http/router"
	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"github.com/rogerio-castellano/pharmalink/internal/repo"
)

var (
	ownerToken    string
	attendeeToken string
	store         *repo.SQLLedgerStore
	database      *sqlx.DB
	driver        string
)

// The suite runs against PostgreSQL when DATABASE_URL is set and against a
// throwaway SQLite file otherwise.
func init() {
	setupTestRepos()
	r := router.NewRouter()

	var err error
	ownerToken, err = generateToken(r, "owner", "admin")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
	attendeeToken, err = generateToken(r, "attendee2", "user2")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
	rl.CleanupAllVisitors()
}

func setupTestRepos() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dsn := os.Getenv("DATABASE_URL")
	driver = db.DriverPostgres
	if dsn == "" {
		dir, err := os.MkdirTemp("", "pharmalink-it-")
		if err != nil {
			log.Fatal("Could not create temp dir:", err)
		}
		dsn = filepath.Join(dir, "pharmacy.db")
		driver = db.DriverSQLite
	}

	var err error
	database, err = db.Connect(ctx, driver, dsn)
	if err != nil {
		log.Fatal("Could not connect to database:", err)
	}
	if err := db.Migrate(ctx, database); err != nil {
		log.Fatal("Could not migrate database:", err)
	}

	store, err = repo.NewSQLLedgerStore(database)
	if err != nil {
		log.Fatal(err)
	}
	handler.SetLedger(ledger.New(store))

	directory, err := auth.NewDirectory(auth.DefaultCredentials)
	if err != nil {
		log.Fatal(err)
	}
	handler.SetDirectory(directory)

	resetLedger()
}

// resetLedger empties every table, restarts the ids and seeds the starter
// catalog again.
func resetLedger() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var stmts []string
	switch driver {
	case db.DriverPostgres:
		stmts = []string{"TRUNCATE TABLE sales, deliveries, products RESTART IDENTITY CASCADE"}
	default:
		stmts = []string{
			"DELETE FROM sales",
			"DELETE FROM deliveries",
			"DELETE FROM products",
			"DELETE FROM sqlite_sequence",
		}
	}
	for _, stmt := range stmts {
		if _, err := database.ExecContext(ctx, stmt); err != nil {
			fmt.Println(fmt.Errorf("failed to reset ledger: %w", err))
		}
	}
	if _, err := db.Seed(ctx, store); err != nil {
		fmt.Println(fmt.Errorf("failed to seed ledger: %w", err))
	}
}

func do(r http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func generateToken(r http.Handler, username, password string) (string, error) {
	w := do(r, http.MethodPost, "/login", "", handler.UserLogin{Username: username, Password: password})

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func decodeLogin(w *httptest.ResponseRecorder) (handler.LoginResult, error) {
	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}

func quantityOf(id int64) int {
	p, err := store.ProductByID(context.Background(), id)
	if err != nil {
		return -1
	}
	return p.Quantity
}
