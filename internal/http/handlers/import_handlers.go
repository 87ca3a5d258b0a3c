package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type csvRow struct {
	Name          string
	Brand         string
	Price         decimal.Decimal
	MinStockLevel int
	Quantity      int
	UnitCost      decimal.Decimal
}

var requiredColumns = []string{"name", "price"}

func parseCSV(file multipart.File) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("CSV header must include %q", c)
		}
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, csvRow{
			Name:          field(record, "name"),
			Brand:         field(record, "brand"),
			Price:         parseDecimal(field(record, "price")),
			MinStockLevel: parseInt(field(record, "min_stock_level")),
			Quantity:      parseInt(field(record, "quantity")),
			UnitCost:      parseDecimal(field(record, "unit_cost")),
		})
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if r.Name == "" {
		return errors.New("missing name")
	}
	if r.Price.IsNegative() || !r.Price.Equal(r.Price.Round(2)) {
		return errors.New("invalid price")
	}
	if r.MinStockLevel < 0 {
		return errors.New("invalid min_stock_level")
	}
	if r.Quantity < 0 || r.Quantity > ledger.MaxQuantity {
		return errors.New("invalid quantity")
	}
	if r.UnitCost.IsNegative() || !r.UnitCost.Equal(r.UnitCost.Round(2)) {
		return errors.New("invalid unit_cost")
	}
	return nil
}

func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NewFromInt(-1)
	}
	return v
}

func parseInt(s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return v
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Columns: name, price (required), brand, min_stock_level, quantity, unit_cost.
// @Description A positive quantity is booked as a received delivery at unit_cost.
// @Description Rows whose name already exists in the catalog are skipped.
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
// @Security BearerAuth
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inventory, err := ledgerSvc.GetInventory(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	existing := make(map[string]bool, len(inventory))
	for _, p := range inventory {
		existing[strings.ToLower(p.Name)] = true
	}

	imported := 0
	errorsList := []ValidationError{}

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		if err := validateRow(rec); err != nil {
			errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}
		if existing[strings.ToLower(rec.Name)] {
			errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: product '%s' already exists", rowNum, rec.Name)})
			continue
		}

		created, err := ledgerSvc.CreateProduct(r.Context(), ledger.NewProduct{
			Name:          rec.Name,
			Brand:         rec.Brand,
			Price:         rec.Price,
			MinStockLevel: rec.MinStockLevel,
		})
		if err != nil {
			errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: %s", rowNum, ledger.Message(err))})
			continue
		}
		existing[strings.ToLower(rec.Name)] = true
		imported++

		if rec.Quantity > 0 {
			if err := ledgerSvc.ReceiveStock(r.Context(), created.ID, rec.Quantity, claims.Name, rec.UnitCost); err != nil {
				errorsList = append(errorsList, ValidationError{Description: fmt.Sprintf("row %d: product created but stock not received: %s", rowNum, ledger.Message(err))})
			}
		}
	}

	logger.Info("Products imported", zap.Int("imported", imported), zap.Int("rejected", len(errorsList)))
	respond(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}
