package handlers

import (
	"net/http"
	"net/url"
	"strings"
)

// GetProfitSummaryHandler godoc
// @Summary Revenue, expense and net profit
// @Description Expense counts every delivery, scheduled or received, at its unit cost.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ledger.ProfitSummary
// @Failure 403 {string} string "Forbidden"
// @Failure 500 {string} string "Internal error"
// @Router /reports/profit [get]
func GetProfitSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := ledgerSvc.GetProfitSummary(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	respond(w, http.StatusOK, summary)
}

// GetDashboardHandler godoc
// @Summary Owner dashboard figures
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ledger.Dashboard
// @Failure 403 {string} string "Forbidden"
// @Failure 500 {string} string "Internal error"
// @Router /reports/dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	d, err := ledgerSvc.Dashboard(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	respond(w, http.StatusOK, d)
}

const marketSearchURL = "https://www.google.com/search"

// MarketSearchHandler godoc
// @Summary Build a web search link for market prices
// @Tags market
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search query"
// @Success 200 {object} MarketSearchResult
// @Failure 400 {string} string "Missing query"
// @Router /market/search [get]
func MarketSearchHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}
	respond(w, http.StatusOK, MarketSearchResult{
		Query: q,
		URL:   marketSearchURL + "?" + url.Values{"q": {q}}.Encode(),
	})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
