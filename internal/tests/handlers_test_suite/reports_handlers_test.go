package handlers_test_suite

import (
	"net/http"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/pharmalink/internal/http/handlers"
	"github.com/rogerio-castellano/pharmalink/internal/http/router"
	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"github.com/shopspring/decimal"
)

func TestGetProfitSummaryHandler(t *testing.T) {
	t.Cleanup(resetLedger)
	r := router.NewRouter()

	do(r, http.MethodPost, "/sales", attendeeToken, handler.SaleRequest{ProductID: paracetamolID, Quantity: 10})
	do(r, http.MethodPost, "/deliveries/schedule", ownerToken, handler.DeliveryRequest{
		ProductID: ibuprofenID, Quantity: 10, UnitCost: decimal.RequireFromString("7.00"),
	})

	w := do(r, http.MethodGet, "/reports/profit", ownerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	summary, err := decode[ledger.ProfitSummary](w)
	if err != nil {
		t.Fatalf("error decoding summary: %v", err)
	}
	// Scheduled deliveries count as expense.
	if !summary.TotalRevenue.Equal(decimal.NewFromInt(50)) ||
		!summary.TotalExpense.Equal(decimal.NewFromInt(70)) ||
		!summary.NetProfit.Equal(decimal.NewFromInt(-20)) {
		t.Errorf("unexpected summary: %+v", summary)
	}

	w = do(r, http.MethodGet, "/reports/profit", attendeeToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for attendee, got %d", w.Code)
	}
}

func TestGetDashboardHandler(t *testing.T) {
	t.Cleanup(resetLedger)
	r := router.NewRouter()

	do(r, http.MethodPost, "/sales", attendeeToken, handler.SaleRequest{ProductID: paracetamolID, Quantity: 80})
	do(r, http.MethodPost, "/deliveries/schedule", ownerToken, handler.DeliveryRequest{
		ProductID: paracetamolID, Quantity: 50, UnitCost: decimal.NewFromInt(2),
	})

	w := do(r, http.MethodGet, "/reports/dashboard", ownerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	d, _ := decode[ledger.Dashboard](w)
	if d.TotalProducts != 5 || d.LowStockCount != 1 || d.SalesCount != 1 || d.PendingDeliveries != 1 {
		t.Errorf("unexpected counts: %+v", d)
	}
	if !d.TotalRevenue.Equal(decimal.NewFromInt(400)) || !d.TotalExpense.Equal(decimal.NewFromInt(100)) {
		t.Errorf("unexpected money figures: %+v", d)
	}
}

func TestMarketSearchHandler(t *testing.T) {
	r := router.NewRouter()

	w := do(r, http.MethodGet, "/market/search?q=Paracetamol+wholesale+price", attendeeToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	res, _ := decode[handler.MarketSearchResult](w)
	if res.Query != "Paracetamol wholesale price" {
		t.Errorf("unexpected query %q", res.Query)
	}
	if !strings.HasPrefix(res.URL, "https://www.google.com/search?q=Paracetamol+wholesale+price") {
		t.Errorf("unexpected url %q", res.URL)
	}

	w = do(r, http.MethodGet, "/market/search", attendeeToken, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without a query, got %d", w.Code)
	}
}

func TestHealthHandler(t *testing.T) {
	r := router.NewRouter()

	w := do(r, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("expected 200 ok, got %d %q", w.Code, w.Body.String())
	}
}
