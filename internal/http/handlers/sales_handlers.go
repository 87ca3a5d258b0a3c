package handlers

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rogerio-castellano/pharmalink/internal/models"
	"go.uber.org/zap"
)

// RecordSaleHandler godoc
// @Summary Sell a single product
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body SaleRequest true "Sale"
// @Success 201 {object} ResultResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {object} ResultResponse "Product not found"
// @Failure 409 {object} ResultResponse "Insufficient stock"
// @Failure 500 {string} string "Internal error"
// @Router /sales [post]
func RecordSaleHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req SaleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateQuantity(req.Quantity); len(errs) > 0 {
		respond(w, http.StatusBadRequest, errs)
		return
	}

	res, err := ledgerSvc.RecordSale(r.Context(), req.ProductID, req.Quantity, claims.Name)
	writeResult(w, http.StatusCreated, res, err)
}

// GetSalesHistoryHandler godoc
// @Summary Sales history
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SaleView
// @Failure 403 {string} string "Forbidden"
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHistoryHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := ledgerSvc.GetSalesHistory(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	respond(w, http.StatusOK, nonNil(sales))
}

// ExportSalesHandler godoc
// @Summary Export the sales history
// @Tags reports
// @Produce text/csv, application/json
// @Security BearerAuth
// @Param format query string true "Export format (csv or json)"
// @Param since query string false "Filter from timestamp (RFC3339)"
// @Param until query string false "Filter until timestamp (RFC3339)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid input"
// @Failure 500 {string} string "Internal error"
// @Router /reports/sales/export [get]
func ExportSalesHandler(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "csv" && format != "json" {
		http.Error(w, "format must be 'csv' or 'json'", http.StatusBadRequest)
		return
	}

	since, err := parseTimeParam(r, "since")
	if err != nil {
		http.Error(w, "since must be an RFC3339 timestamp", http.StatusBadRequest)
		return
	}
	until, err := parseTimeParam(r, "until")
	if err != nil {
		http.Error(w, "until must be an RFC3339 timestamp", http.StatusBadRequest)
		return
	}

	sales, err := ledgerSvc.GetSalesHistory(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	sales = filterSales(sales, since, until)

	switch format {
	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="sales.json"`)
		if err := json.NewEncoder(w).Encode(nonNil(sales)); err != nil {
			logger.Warn("Failed to write sales export", zap.Error(err))
		}

	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="sales.csv"`)

		csvWriter := csv.NewWriter(w)
		_ = csvWriter.Write([]string{"id", "product_id", "product_name", "brand", "quantity", "total_price", "sale_date", "attendee_name"})
		for _, s := range sales {
			_ = csvWriter.Write([]string{
				strconv.FormatInt(s.ID, 10),
				strconv.FormatInt(s.ProductID, 10),
				s.ProductName,
				s.Brand,
				strconv.Itoa(s.Quantity),
				s.TotalPrice.StringFixed(2),
				s.SoldAt.UTC().Format(time.RFC3339),
				s.AttendeeName,
			})
		}
		csvWriter.Flush()
	}
}

// parseTimeParam reads an optional RFC3339 query parameter. A '+' in the
// offset arrives as a space when the client did not escape it.
func parseTimeParam(r *http.Request, name string) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	if len(v) == len(time.RFC3339) && v[len(v)-6] == ' ' {
		v = v[:len(v)-6] + "+" + v[len(v)-5:]
	}
	ts, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func filterSales(sales []models.SaleView, since, until *time.Time) []models.SaleView {
	if since == nil && until == nil {
		return sales
	}
	out := make([]models.SaleView, 0, len(sales))
	for _, s := range sales {
		if since != nil && s.SoldAt.Before(*since) {
			continue
		}
		if until != nil && s.SoldAt.After(*until) {
			continue
		}
		out = append(out, s)
	}
	return out
}
