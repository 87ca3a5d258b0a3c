package db

import (
	"context"
	"fmt"

	"github.com/rogerio-castellano/pharmalink/internal/models"
	"github.com/rogerio-castellano/pharmalink/internal/repo"
	"github.com/shopspring/decimal"
)

// OpeningBalanceHandler is recorded as the handler of the deliveries that
// carry the starter stock.
const OpeningBalanceHandler = "opening balance"

type starterProduct struct {
	product  models.Product
	quantity int
}

var starterCatalog = []starterProduct{
	{models.Product{Name: "Paracetamol", Brand: "Panadol", Price: decimal.RequireFromString("5.00"), MinStockLevel: 20}, 100},
	{models.Product{Name: "Ibuprofen", Brand: "Advil", Price: decimal.RequireFromString("8.50"), MinStockLevel: 15}, 50},
	{models.Product{Name: "Amoxicillin", Brand: "Generic", Price: decimal.RequireFromString("12.00"), MinStockLevel: 10}, 30},
	{models.Product{Name: "Vitamin C", Brand: "Redoxon", Price: decimal.RequireFromString("15.00"), MinStockLevel: 20}, 80},
	{models.Product{Name: "Cough Syrup", Brand: "Benylin", Price: decimal.RequireFromString("18.00"), MinStockLevel: 5}, 25},
}

// Seed inserts the starter catalog when the store has no products. Each
// starter quantity is booked as a Received delivery at zero cost so stock
// always equals received minus sold. It reports whether anything was written.
func Seed(ctx context.Context, store repo.LedgerStore) (bool, error) {
	seeded := false
	err := store.WithTx(ctx, func(tx repo.LedgerTx) error {
		if err := tx.LockCatalog(ctx); err != nil {
			return err
		}
		n, err := tx.CountProducts(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		for _, sp := range starterCatalog {
			p := sp.product
			p.Quantity = 0
			id, err := tx.InsertProduct(ctx, p)
			if err != nil {
				return err
			}
			if _, err := tx.AdjustQuantity(ctx, id, sp.quantity); err != nil {
				return fmt.Errorf("opening balance for %s: %w", p.Name, err)
			}
			_, err = tx.InsertDelivery(ctx, models.Delivery{
				ProductID: id,
				Quantity:  sp.quantity,
				CostPrice: decimal.Zero,
				Handler:   OpeningBalanceHandler,
				Status:    models.DeliveryReceived,
			})
			if err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seed catalog: %w", err)
	}
	return seeded, nil
}
