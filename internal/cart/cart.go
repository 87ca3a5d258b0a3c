package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidItem = errors.New("cart item needs a product and a positive quantity")

// Item is one line of a cart. UnitPrice is the price shown when the item
// was added; the sale itself is priced by the ledger at checkout.
type Item struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (i Item) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the pending sale of one attendant's session.
type Cart struct {
	ID        uuid.UUID `json:"id"`
	Owner     string    `json:"owner"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

func New(owner string) *Cart {
	return &Cart{ID: uuid.New(), Owner: owner, Items: []Item{}, UpdatedAt: time.Now().UTC()}
}

// Add appends item, merging it into an existing line for the same product.
func (c *Cart) Add(item Item) error {
	if item.ProductID <= 0 || item.Quantity <= 0 {
		return ErrInvalidItem
	}
	c.UpdatedAt = time.Now().UTC()
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.Items[i].UnitPrice = item.UnitPrice
			return nil
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

// Total is the transaction value of the cart at the prices it was built with.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.Items) == 0
}
