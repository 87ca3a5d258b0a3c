package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/pharmalink/internal/ledger"
)

// GetProductsHandler godoc
// @Summary List the inventory
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := ledgerSvc.GetInventory(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	respond(w, http.StatusOK, toProductResponses(products))
}

// GetLowStockHandler godoc
// @Summary List products at or below their minimum stock level
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ProductResponse
// @Failure 500 {string} string "Internal error"
// @Router /products/low-stock [get]
func GetLowStockHandler(w http.ResponseWriter, r *http.Request) {
	products, err := ledgerSvc.GetLowStock(r.Context())
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	respond(w, http.StatusOK, toProductResponses(products))
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog with no stock. Stock arrives through deliveries.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Failure 403 {string} string "Forbidden"
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := ledgerSvc.CreateProduct(r.Context(), ledger.NewProduct{
		Name:          req.Name,
		Brand:         req.Brand,
		Price:         req.Price,
		MinStockLevel: req.MinStockLevel,
	})
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	respond(w, http.StatusCreated, toProductResponse(created))
}

// UpdatePriceHandler godoc
// @Summary Change the selling price of a product
// @Description Recorded sales keep the total they were made at.
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Param price body PriceRequest true "New unit price"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Product not found"
// @Router /products/{id}/price [put]
func UpdatePriceHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var req PriceRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if validationErrors := validatePrice(req.Price); len(validationErrors) > 0 {
		respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := ledgerSvc.UpdatePrice(r.Context(), id, req.Price)
	if err != nil {
		writeLedgerError(w, err)
		return
	}
	respond(w, http.StatusOK, toProductResponse(updated))
}
