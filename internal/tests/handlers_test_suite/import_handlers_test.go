package handlers_test_suite

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/pharmalink/internal/http/handlers"
	"github.com/rogerio-castellano/pharmalink/internal/http/router"
)

func importCSV(r http.Handler, token, csvData string) *httptest.ResponseRecorder {
	body, contentType := multipartCSV(csvData, "products.csv")
	req := httptest.NewRequest(http.MethodPost, "/products/import", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportProductsHandler(t *testing.T) {
	r := router.NewRouter()

	t.Run("File with unique valid products", func(t *testing.T) {
		t.Cleanup(resetLedger)
		csvData := `name,brand,price,min_stock_level,quantity,unit_cost
Loratadine,Claritin,9.75,10,40,6.00
Cetirizine,Zyrtec,7.50,10,0,`

		w := importCSV(r, ownerToken, csvData)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}

		resp, err := decode[handler.ImportProductsResult](w)
		if err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.ImportedProductsCount != 2 {
			t.Errorf("expected 2 imported products, got %d", resp.ImportedProductsCount)
		}
		if len(resp.Errors) != 0 {
			t.Errorf("expected no errors, got %v", resp.Errors)
		}

		// Opening stock arrives as a received delivery.
		if q := quantityOf(6); q != 40 {
			t.Errorf("expected 40 Loratadine on hand, got %d", q)
		}
		if q := quantityOf(7); q != 0 {
			t.Errorf("expected no Cetirizine on hand, got %d", q)
		}
	})

	t.Run("File with invalid and duplicated rows", func(t *testing.T) {
		t.Cleanup(resetLedger)
		csvData := `name,price,min_stock_level
Loratadine,9.75,10
,5.00,1
Gauze,abc,1
paracetamol,5.00,20`

		w := importCSV(r, ownerToken, csvData)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		resp, _ := decode[handler.ImportProductsResult](w)
		if resp.ImportedProductsCount != 1 {
			t.Errorf("expected 1 imported product, got %d", resp.ImportedProductsCount)
		}
		if len(resp.Errors) != 3 {
			t.Fatalf("expected 3 errors, got %v", resp.Errors)
		}
		if !strings.Contains(resp.Errors[0].Description, "row 3") {
			t.Errorf("expected first error on row 3, got %q", resp.Errors[0].Description)
		}
		if !strings.Contains(resp.Errors[2].Description, "already exists") {
			t.Errorf("expected duplicate error, got %q", resp.Errors[2].Description)
		}
	})

	t.Run("Missing required column", func(t *testing.T) {
		w := importCSV(r, ownerToken, "name,brand\nGauze,Generic")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 Bad Request, got %d", w.Code)
		}
	})

	t.Run("Attendee cannot import", func(t *testing.T) {
		w := importCSV(r, attendeeToken, "name,price\nGauze,1.00")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403 Forbidden, got %d", w.Code)
		}
	})
}
