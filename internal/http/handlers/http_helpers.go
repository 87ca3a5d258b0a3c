package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/pharmalink/internal/auth"
	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"go.uber.org/zap"
)

const idempotencyTTL = 24 * time.Hour

// currentUser returns the claims of the caller. Routes using it are always
// behind the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}
	return claims, ok
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

func respond(w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		logger.Warn("Failed to write JSON response", zap.Error(err))
	}
}

// statusFor maps ledger errors onto HTTP status codes.
func statusFor(err error) int {
	var (
		verr *ledger.ValidationError
		serr *ledger.InsufficientStockError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &serr):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeLedgerError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		http.Error(w, "Internal error", status)
		return
	}
	http.Error(w, ledger.Message(err), status)
}

// writeResult answers an operation that reports business failures as values.
func writeResult(w http.ResponseWriter, okStatus int, res ledger.Result, err error) {
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	if !res.OK {
		respond(w, statusFor(res.Reason), toResultResponse(res))
		return
	}
	respond(w, okStatus, toResultResponse(res))
}
