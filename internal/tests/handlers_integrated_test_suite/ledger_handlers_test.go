package handlers_integrated_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/rogerio-castellano/pharmalink/internal/http/handlers"
	"github.com/rogerio-castellano/pharmalink/internal/http/router"
	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/shopspring/decimal"
)

func TestDeliveryLifecycle_Persisted(t *testing.T) {
	t.Cleanup(resetLedger)
	r := router.NewRouter()

	w := do(r, http.MethodPost, "/deliveries/schedule", ownerToken, handlers.DeliveryRequest{
		ProductID: 3, Quantity: 20, UnitCost: decimal.RequireFromString("6.25"),
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var created handlers.DeliveryCreated
	_ = json.NewDecoder(w.Body).Decode(&created)

	path := fmt.Sprintf("/deliveries/%d/confirm", created.DeliveryID)
	if w := do(r, http.MethodPost, path, attendeeToken, nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, path, attendeeToken, nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second confirmation, got %d", w.Code)
	}
	if q := quantityOf(3); q != 50 {
		t.Errorf("expected 30 + 20 Amoxicillin on hand, got %d", q)
	}

	w = do(r, http.MethodGet, "/deliveries", ownerToken, nil)
	var all []models.DeliveryView
	_ = json.NewDecoder(w.Body).Decode(&all)
	if len(all) != 6 {
		t.Fatalf("expected 6 deliveries, got %d", len(all))
	}
	if all[0].ID != created.DeliveryID || !all[0].TotalCost.Equal(decimal.NewFromInt(125)) || all[0].Handler != "Jane Smith" {
		t.Errorf("unexpected newest delivery: %+v", all[0])
	}

	w = do(r, http.MethodGet, "/reports/profit", ownerToken, nil)
	var summary ledger.ProfitSummary
	_ = json.NewDecoder(w.Body).Decode(&summary)
	if !summary.TotalExpense.Equal(decimal.NewFromInt(125)) {
		t.Errorf("expected expense 125, got %s", summary.TotalExpense)
	}
}

func TestConcurrentSales_Persisted(t *testing.T) {
	t.Cleanup(resetLedger)
	r := router.NewRouter()

	// Cough Syrup starts with 25 units: only five sales of 5 fit.
	const workers = 8
	codes := make([]int, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			codes[i] = do(r, http.MethodPost, "/sales", attendeeToken, handlers.SaleRequest{ProductID: 5, Quantity: 5}).Code
		}()
	}
	wg.Wait()

	var sold, refused int
	for _, c := range codes {
		switch c {
		case http.StatusCreated:
			sold++
		case http.StatusConflict:
			refused++
		default:
			t.Errorf("unexpected status %d", c)
		}
	}
	if sold != 5 || refused != 3 {
		t.Errorf("expected 5 sold and 3 refused, got %d and %d", sold, refused)
	}
	if q := quantityOf(5); q != 0 {
		t.Errorf("expected Cough Syrup to be sold out, got %d", q)
	}
}
