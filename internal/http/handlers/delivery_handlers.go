package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/rogerio-castellano/pharmalink/internal/notify"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReceiveStockHandler godoc
// @Summary Book stock that has already arrived
// @Tags deliveries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param delivery body DeliveryRequest true "Delivery received"
// @Success 201 {object} ResultResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 500 {string} string "Internal error"
// @Router /deliveries/receive [post]
func ReceiveStockHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req DeliveryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateQuantity(req.Quantity); len(errs) > 0 {
		respond(w, http.StatusBadRequest, errs)
		return
	}

	if err := ledgerSvc.ReceiveStock(r.Context(), req.ProductID, req.Quantity, claims.Name, req.UnitCost); err != nil {
		writeLedgerError(w, err)
		return
	}
	respond(w, http.StatusCreated, ResultResponse{OK: true, Message: "Stock received"})
}

// ScheduleDeliveryHandler godoc
// @Summary Schedule a delivery awaiting confirmation
// @Tags deliveries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param delivery body DeliveryRequest true "Delivery to schedule"
// @Success 201 {object} DeliveryCreated
// @Failure 400 {string} string "Invalid input"
// @Failure 403 {string} string "Forbidden"
// @Failure 404 {string} string "Product not found"
// @Router /deliveries/schedule [post]
func ScheduleDeliveryHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req DeliveryRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if errs := validateQuantity(req.Quantity); len(errs) > 0 {
		respond(w, http.StatusBadRequest, errs)
		return
	}

	id, err := ledgerSvc.ScheduleDelivery(r.Context(), req.ProductID, req.Quantity, claims.Name, req.UnitCost)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	respond(w, http.StatusCreated, DeliveryCreated{
		DeliveryID:    id,
		Message:       "Delivery scheduled",
		EstimatedCost: estimatedCost(req.UnitCost, req.Quantity),
	})
}

// RestockRequestHandler godoc
// @Summary Email a supplier and schedule the ordered delivery
// @Description The delivery is scheduled at the target price only after the supplier was notified.
// @Tags deliveries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body RestockRequest true "Restock request"
// @Success 201 {object} DeliveryCreated
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Product not found"
// @Failure 502 {string} string "Supplier could not be notified"
// @Router /deliveries/restock-request [post]
func RestockRequestHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req RestockRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	req.SupplierEmail = strings.TrimSpace(req.SupplierEmail)
	if req.SupplierEmail == "" {
		http.Error(w, "Please fill in all fields.", http.StatusBadRequest)
		return
	}
	if errs := validateQuantity(req.Quantity); len(errs) > 0 {
		respond(w, http.StatusBadRequest, errs)
		return
	}
	if req.TargetPrice.IsNegative() {
		http.Error(w, "target_price cannot be negative", http.StatusBadRequest)
		return
	}

	product, err := findProduct(r, req.ProductID)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	msg, err := notifier.NotifyRestock(r.Context(), notify.RestockRequest{
		SupplierEmail: req.SupplierEmail,
		ProductName:   product.Name,
		Brand:         product.Brand,
		Quantity:      req.Quantity,
		UnitPrice:     req.TargetPrice,
		RequestedBy:   claims.Name,
	})
	if err != nil {
		logger.Warn("Restock request not sent", zap.String("supplier", req.SupplierEmail), zap.Error(err))
		if errors.Is(err, notify.ErrMissingRecipient) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to send email", http.StatusBadGateway)
		return
	}
	logger.Info("Supplier notified", zap.String("supplier", req.SupplierEmail), zap.String("result", msg))

	id, err := ledgerSvc.ScheduleDelivery(r.Context(), product.ID, req.Quantity, claims.Name, req.TargetPrice)
	if err != nil {
		writeLedgerError(w, err)
		return
	}

	cost := estimatedCost(req.TargetPrice, req.Quantity)
	respond(w, http.StatusCreated, DeliveryCreated{
		DeliveryID:    id,
		Message:       fmt.Sprintf("Request sent! Scheduled delivery of %d x %s created (Est. Cost: $%s).", req.Quantity, product.Name, cost.StringFixed(2)),
		EstimatedCost: cost,
	})
}

// GetScheduledDeliveriesHandler godoc
// @Summary List deliveries awaiting confirmation
// @Tags deliveries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DeliveryView
// @Failure 500 {string} string "Internal error"
// @Router /deliveries/scheduled [get]
func GetScheduledDeliveriesHandler(w http.ResponseWriter, r *http.Request) {
	deliveries, err := ledgerSvc.GetScheduledDeliveries(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	respond(w, http.StatusOK, nonNil(deliveries))
}

// GetAllDeliveriesHandler godoc
// @Summary Supplies history, newest first
// @Tags deliveries
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DeliveryView
// @Failure 403 {string} string "Forbidden"
// @Failure 500 {string} string "Internal error"
// @Router /deliveries [get]
func GetAllDeliveriesHandler(w http.ResponseWriter, r *http.Request) {
	deliveries, err := ledgerSvc.GetAllDeliveries(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	respond(w, http.StatusOK, nonNil(deliveries))
}

// ConfirmDeliveryHandler godoc
// @Summary Confirm a scheduled delivery and add it to stock
// @Tags deliveries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Delivery ID"
// @Success 200 {object} ResultResponse
// @Failure 400 {string} string "Invalid delivery ID"
// @Failure 404 {object} ResultResponse
// @Failure 500 {string} string "Internal error"
// @Router /deliveries/{id}/confirm [post]
func ConfirmDeliveryHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := currentUser(w, r)
	if !ok {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid delivery ID", http.StatusBadRequest)
		return
	}

	res, err := ledgerSvc.ConfirmDelivery(r.Context(), id, claims.Name)
	writeResult(w, http.StatusOK, res, err)
}

func findProduct(r *http.Request, id int64) (models.Product, error) {
	products, err := ledgerSvc.GetInventory(r.Context())
	if err != nil {
		return models.Product{}, err
	}
	i := slices.IndexFunc(products, func(p models.Product) bool { return p.ID == id })
	if i < 0 {
		return models.Product{}, ledger.ErrProductNotFound
	}
	return products[i], nil
}

func estimatedCost(unitCost decimal.Decimal, qty int) decimal.Decimal {
	return unitCost.Mul(decimal.NewFromInt(int64(qty)))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
