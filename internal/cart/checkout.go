package cart

import (
	"context"

	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"github.com/shopspring/decimal"
)

// Seller records a single-item sale.
type Seller interface {
	RecordSale(ctx context.Context, productID int64, qty int, attendant string) (ledger.Result, error)
}

type LineResult struct {
	Item    Item   `json:"item"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type CheckoutResult struct {
	CartID    string          `json:"cart_id"`
	Lines     []LineResult    `json:"lines"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Total     decimal.Decimal `json:"total"`

	storeFailures int
}

// Retryable reports whether nothing was sold and every line failed on the
// store, so the same checkout can safely be submitted again.
func (r CheckoutResult) Retryable() bool {
	return len(r.Lines) > 0 && r.storeFailures == len(r.Lines)
}

// Checkout sells every line of c as its own sale. Lines are independent:
// a failed line is reported and the lines already sold stay sold. Total
// covers the successful lines only.
func Checkout(ctx context.Context, seller Seller, c *Cart, attendant string) CheckoutResult {
	out := CheckoutResult{CartID: c.ID.String(), Lines: make([]LineResult, 0, len(c.Items)), Total: decimal.Zero}

	for _, it := range c.Items {
		res, err := seller.RecordSale(ctx, it.ProductID, it.Quantity, attendant)
		line := LineResult{Item: it, OK: res.OK, Message: res.Message}
		if err != nil {
			out.storeFailures++
			if line.Message == "" {
				line.Message = ledger.Message(err)
			}
		}
		if line.OK {
			out.Succeeded++
			out.Total = out.Total.Add(it.LineTotal())
		} else {
			out.Failed++
		}
		out.Lines = append(out.Lines, line)
	}
	return out
}
