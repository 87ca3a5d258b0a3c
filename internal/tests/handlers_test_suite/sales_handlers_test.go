package handlers_test_suite

import (
	"encoding/csv"
	"net/http"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/pharmalink/internal/http/handlers"
	"github.com/rogerio-castellano/pharmalink/internal/http/router"
	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/shopspring/decimal"
)

func TestRecordSaleHandler(t *testing.T) {
	t.Cleanup(resetLedger)
	r := router.NewRouter()

	w := do(r, http.MethodPost, "/sales", attendeeToken, handler.SaleRequest{ProductID: paracetamolID, Quantity: 3})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	res, _ := decode[handler.ResultResponse](w)
	if !res.OK || res.Message != "Sale recorded successfully" {
		t.Errorf("unexpected result: %+v", res)
	}
	if q := quantityOf(paracetamolID); q != 97 {
		t.Errorf("expected 97 on hand, got %d", q)
	}
}

func TestRecordSaleHandler_Rejections(t *testing.T) {
	t.Cleanup(resetLedger)
	r := router.NewRouter()

	tests := []struct {
		name        string
		payload     handler.SaleRequest
		expectCode  int
		expectedMsg string
	}{
		{
			name:        "More than on hand",
			payload:     handler.SaleRequest{ProductID: ibuprofenID, Quantity: 51},
			expectCode:  http.StatusConflict,
			expectedMsg: "Insufficient stock. Only 50 available.",
		},
		{
			name:        "Unknown product",
			payload:     handler.SaleRequest{ProductID: 999, Quantity: 1},
			expectCode:  http.StatusNotFound,
			expectedMsg: "Product not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/sales", attendeeToken, tt.payload)
			if w.Code != tt.expectCode {
				t.Fatalf("expected %d, got %d", tt.expectCode, w.Code)
			}
			res, err := decode[handler.ResultResponse](w)
			if err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if res.OK || res.Message != tt.expectedMsg {
				t.Errorf("unexpected result: %+v", res)
			}
		})
	}

	w := do(r, http.MethodPost, "/sales", attendeeToken, handler.SaleRequest{ProductID: ibuprofenID, Quantity: -1})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a negative quantity, got %d", w.Code)
	}
	if q := quantityOf(ibuprofenID); q != 50 {
		t.Errorf("rejected sales must not change stock, got %d", q)
	}
}

func TestGetSalesHistoryHandler(t *testing.T) {
	t.Cleanup(resetLedger)
	r := router.NewRouter()

	do(r, http.MethodPost, "/sales", attendeeToken, handler.SaleRequest{ProductID: paracetamolID, Quantity: 2})
	do(r, http.MethodPost, "/sales", ownerToken, handler.SaleRequest{ProductID: ibuprofenID, Quantity: 1})

	w := do(r, http.MethodGet, "/sales", ownerToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	sales, _ := decode[[]models.SaleView](w)
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(sales))
	}
	if sales[0].ProductName != "Paracetamol" || sales[0].AttendeeName != "John Doe" || !sales[0].TotalPrice.Equal(decimal.NewFromInt(10)) {
		t.Errorf("unexpected first sale: %+v", sales[0])
	}
	if sales[1].AttendeeName != "Mr. Boss" || !sales[1].TotalPrice.Equal(decimal.RequireFromString("8.50")) {
		t.Errorf("unexpected second sale: %+v", sales[1])
	}

	w = do(r, http.MethodGet, "/sales", attendeeToken, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for attendee, got %d", w.Code)
	}
}

func TestExportSalesHandler(t *testing.T) {
	t.Cleanup(resetLedger)
	r := router.NewRouter()

	do(r, http.MethodPost, "/sales", attendeeToken, handler.SaleRequest{ProductID: paracetamolID, Quantity: 2})

	t.Run("CSV", func(t *testing.T) {
		w := do(r, http.MethodGet, "/reports/sales/export?format=csv", ownerToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
			t.Errorf("expected text/csv, got %q", ct)
		}
		records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
		if err != nil {
			t.Fatalf("invalid CSV: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("expected header and 1 row, got %d records", len(records))
		}
		if records[1][2] != "Paracetamol" || records[1][5] != "10.00" {
			t.Errorf("unexpected row: %v", records[1])
		}
	})

	t.Run("JSON", func(t *testing.T) {
		w := do(r, http.MethodGet, "/reports/sales/export?format=json", ownerToken, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		sales, err := decode[[]models.SaleView](w)
		if err != nil || len(sales) != 1 {
			t.Fatalf("expected one exported sale, got %v (%v)", sales, err)
		}
	})

	t.Run("Window excludes sales", func(t *testing.T) {
		w := do(r, http.MethodGet, "/reports/sales/export?format=json&since=2999-01-01T00:00:00Z", ownerToken, nil)
		sales, _ := decode[[]models.SaleView](w)
		if len(sales) != 0 {
			t.Errorf("expected no sales after 2999, got %d", len(sales))
		}
	})

	t.Run("Invalid input", func(t *testing.T) {
		for _, q := range []string{"format=xml", "format=csv&since=yesterday"} {
			w := do(r, http.MethodGet, "/reports/sales/export?"+q, ownerToken, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400 Bad Request, got %d", q, w.Code)
			}
		}
	})
}
