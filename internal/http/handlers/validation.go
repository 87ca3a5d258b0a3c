package handlers

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field       string `json:"field,omitempty"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "name", Description: "Name is required"})
	}
	errs = append(errs, validatePrice(p.Price)...)
	if p.MinStockLevel < 0 {
		errs = append(errs, ValidationError{Field: "min_stock_level", Description: "Minimum stock level cannot be negative"})
	}
	return errs
}

func validatePrice(price decimal.Decimal) []ValidationError {
	switch {
	case price.IsNegative():
		return []ValidationError{{Field: "price", Description: "Price cannot be negative"}}
	case !price.Equal(price.Round(2)):
		return []ValidationError{{Field: "price", Description: "Price must have at most 2 decimal places"}}
	}
	return nil
}

func validateQuantity(qty int) []ValidationError {
	if qty <= 0 {
		return []ValidationError{{Field: "quantity", Description: "Quantity must be greater than zero"}}
	}
	return nil
}
