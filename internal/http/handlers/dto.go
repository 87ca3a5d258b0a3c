package handlers

import (
	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Price         decimal.Decimal `json:"price" swaggertype:"string" example:"5.00"`
	MinStockLevel int             `json:"min_stock_level"`
}

type PriceRequest struct {
	Price decimal.Decimal `json:"price" swaggertype:"string" example:"6.25"`
}

type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price" swaggertype:"string"`
	MinStockLevel int             `json:"min_stock_level"`
	LowStock      bool            `json:"low_stock,omitempty"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Brand:         p.Brand,
		Quantity:      p.Quantity,
		Price:         p.Price,
		MinStockLevel: p.MinStockLevel,
		LowStock:      p.LowStock(),
	}
}

func toProductResponses(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

type DeliveryRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost" swaggertype:"string" example:"4.50"`
}

type RestockRequest struct {
	SupplierEmail string          `json:"supplier_email"`
	ProductID     int64           `json:"product_id"`
	Quantity      int             `json:"quantity"`
	TargetPrice   decimal.Decimal `json:"target_price" swaggertype:"string" example:"5.00"`
}

type DeliveryCreated struct {
	DeliveryID    int64           `json:"delivery_id"`
	Message       string          `json:"message"`
	EstimatedCost decimal.Decimal `json:"estimated_cost,omitempty" swaggertype:"string"`
}

type SaleRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`
	LineTotal decimal.Decimal `json:"line_total" swaggertype:"string"`
}

type CartResponse struct {
	ID    string          `json:"id"`
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total" swaggertype:"string"`
}

type ResultResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func toResultResponse(r ledger.Result) ResultResponse {
	return ResultResponse{OK: r.OK, Message: r.Message}
}

type MarketSearchResult struct {
	Query string `json:"query"`
	URL   string `json:"url"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string      `json:"token"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
}

type ImportProductsResult struct {
	ImportedProductsCount int               `json:"imported"`
	Errors                []ValidationError `json:"errors"`
}
