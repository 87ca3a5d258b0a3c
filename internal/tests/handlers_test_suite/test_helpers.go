package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/pharmalink/internal/auth"
	"github.com/rogerio-castellano/pharmalink/internal/cart"
	"github.com/rogerio-castellano/pharmalink/internal/db"
	handler "github.com/rogerio-castellano/pharmalink/internal/http/handlers"
	rl "github.com/rogerio-castellano/pharmalink/internal/http/rate_limiter"
	"github.com/rogerio-castellano/pharmalink/internal/http/router"
	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"github.com/rogerio-castellano/pharmalink/internal/notify"
	"github.com/rogerio-castellano/pharmalink/internal/repo"
)

const (
	paracetamolID = 1
	ibuprofenID   = 2
)

var (
	ownerToken    string
	attendeeToken string
	ledgerStore   *repo.InMemoryLedgerStore
	ledgerCore    *ledger.Core
	cartStore     *cart.MemoryStore
	mailer        *recordingNotifier
)

func init() {
	setupTestRepos()
	r := router.NewRouter()

	var err error
	ownerToken, err = generateToken(r, "owner", "admin")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
	attendeeToken, err = generateToken(r, "attendee1", "user1")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
	rl.CleanupAllVisitors()
}

func setupTestRepos() {
	ledgerStore = repo.NewInMemoryLedgerStore()
	ledgerCore = ledger.New(ledgerStore)
	handler.SetLedger(ledgerCore)

	directory, err := auth.NewDirectory(auth.DefaultCredentials)
	if err != nil {
		panic(err)
	}
	handler.SetDirectory(directory)

	cartStore = cart.NewMemoryStore()
	handler.SetCartStore(cartStore)
	handler.SetClaimer(cart.NewMemoryClaimer(time.Hour))

	mailer = &recordingNotifier{}
	handler.SetNotifier(mailer)

	resetLedger()
}

// resetLedger restores the starter catalog: Paracetamol (id 1, 100 units at
// 5.00, minimum 20) through Cough Syrup (id 5).
func resetLedger() {
	ledgerStore.Clear()
	cartStore.Clear()
	mailer.reset()
	if _, err := db.Seed(context.Background(), ledgerStore); err != nil {
		panic(err)
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

func decode[T any](w *httptest.ResponseRecorder) (T, error) {
	var v T
	err := json.NewDecoder(w.Body).Decode(&v)
	return v, err
}

func quantityOf(id int64) int {
	p, err := ledgerStore.ProductByID(context.Background(), id)
	if err != nil {
		return -1
	}
	return p.Quantity
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

type recordingNotifier struct {
	sent []notify.RestockRequest
	fail bool
}

func (n *recordingNotifier) NotifyRestock(ctx context.Context, req notify.RestockRequest) (string, error) {
	if n.fail {
		return "", fmt.Errorf("relay unavailable")
	}
	n.sent = append(n.sent, req)
	return "Email sent to " + req.SupplierEmail, nil
}

func (n *recordingNotifier) reset() {
	n.sent = nil
	n.fail = false
}
