package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rogerio-castellano/pharmalink/internal/ledger"
	"github.com/rogerio-castellano/pharmalink/internal/repo"
	"github.com/shopspring/decimal"
)

func TestCart_AddMergesLines(t *testing.T) {
	c := New("attendee1")
	if err := c.Add(Item{ProductID: 1, Name: "Paracetamol", Quantity: 2, UnitPrice: decimal.RequireFromString("5.00")}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := c.Add(Item{ProductID: 2, Name: "Ibuprofen", Quantity: 1, UnitPrice: decimal.RequireFromString("8.50")}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := c.Add(Item{ProductID: 1, Name: "Paracetamol", Quantity: 3, UnitPrice: decimal.RequireFromString("5.00")}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Items))
	}
	if c.Items[0].Quantity != 5 {
		t.Errorf("expected merged quantity 5, got %d", c.Items[0].Quantity)
	}
	if !c.Total().Equal(decimal.RequireFromString("33.50")) {
		t.Errorf("expected total 33.50, got %s", c.Total())
	}
}

func TestCart_AddRejectsInvalidItems(t *testing.T) {
	c := New("attendee1")
	tests := []struct {
		name string
		item Item
	}{
		{"no product", Item{Quantity: 1}},
		{"zero quantity", Item{ProductID: 1}},
		{"negative quantity", Item{ProductID: 1, Quantity: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Add(tt.item); !errors.Is(err, ErrInvalidItem) {
				t.Errorf("expected ErrInvalidItem, got %v", err)
			}
		})
	}
	if !c.Empty() {
		t.Error("expected cart to stay empty")
	}
}

func TestCheckout_PartialSuccessIsNotRolledBack(t *testing.T) {
	ctx := context.Background()
	store := repo.NewInMemoryLedgerStore()
	l := ledger.New(store)

	a, _ := l.CreateProduct(ctx, ledger.NewProduct{Name: "A", Price: decimal.RequireFromString("2.00")})
	b, _ := l.CreateProduct(ctx, ledger.NewProduct{Name: "B", Price: decimal.RequireFromString("3.00")})
	l.ReceiveStock(ctx, a.ID, 10, "setup", decimal.Zero)
	l.ReceiveStock(ctx, b.ID, 1, "setup", decimal.Zero)

	c := New("attendee1")
	c.Add(Item{ProductID: a.ID, Name: "A", Quantity: 4, UnitPrice: a.Price})
	c.Add(Item{ProductID: b.ID, Name: "B", Quantity: 5, UnitPrice: b.Price})
	c.Add(Item{ProductID: 999, Name: "Ghost", Quantity: 1, UnitPrice: decimal.Zero})

	res := Checkout(ctx, l, c, "John Doe")

	if res.Succeeded != 1 || res.Failed != 2 {
		t.Fatalf("expected 1 success and 2 failures, got %+v", res)
	}
	if !res.Lines[0].OK {
		t.Errorf("expected first line to succeed: %+v", res.Lines[0])
	}
	if res.Lines[1].Message != "Insufficient stock. Only 1 available." {
		t.Errorf("unexpected message %q", res.Lines[1].Message)
	}
	if res.Lines[2].Message != "Product not found" {
		t.Errorf("unexpected message %q", res.Lines[2].Message)
	}
	if !res.Total.Equal(decimal.RequireFromString("8.00")) {
		t.Errorf("expected total 8.00, got %s", res.Total)
	}
	if res.Retryable() {
		t.Error("a checkout that sold a line must not be retryable")
	}

	p, _ := store.ProductByID(ctx, a.ID)
	if p.Quantity != 6 {
		t.Errorf("expected the successful line to stay sold, quantity 6, got %d", p.Quantity)
	}
}

type brokenSeller struct{}

func (brokenSeller) RecordSale(ctx context.Context, productID int64, qty int, attendant string) (ledger.Result, error) {
	return ledger.Result{}, &ledger.StoreError{Op: "record_sale", Err: errors.New("connection reset")}
}

func TestCheckout_StoreFailureReportedPerLine(t *testing.T) {
	c := New("attendee1")
	c.Add(Item{ProductID: 1, Quantity: 1})

	res := Checkout(context.Background(), brokenSeller{}, c, "John Doe")
	if res.Failed != 1 || res.Lines[0].OK {
		t.Fatalf("expected failed line, got %+v", res)
	}
	if res.Lines[0].Message == "" {
		t.Error("expected a message for the failed line")
	}
	if !res.Retryable() {
		t.Error("expected a checkout that only hit store failures to be retryable")
	}
}

func TestCheckout_BusinessRejectionIsNotRetryable(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(repo.NewInMemoryLedgerStore())

	c := New("attendee1")
	c.Add(Item{ProductID: 42, Quantity: 1})

	res := Checkout(ctx, l, c, "John Doe")
	if res.Failed != 1 || res.Retryable() {
		t.Fatalf("expected a final rejection, got %+v", res)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	c, err := s.Get(ctx, "attendee1")
	if err != nil || !c.Empty() {
		t.Fatalf("expected new empty cart, got %+v, %v", c, err)
	}
	c.Add(Item{ProductID: 1, Quantity: 2})
	if err := s.Save(ctx, c); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, _ := s.Get(ctx, "attendee1")
	if got.ID != c.ID || len(got.Items) != 1 {
		t.Errorf("expected saved cart back, got %+v", got)
	}
	got.Items[0].Quantity = 99
	again, _ := s.Get(ctx, "attendee1")
	if again.Items[0].Quantity != 2 {
		t.Error("mutating a returned cart changed the stored one")
	}

	if other, _ := s.Get(ctx, "attendee2"); !other.Empty() {
		t.Error("carts leaked between owners")
	}

	s.Delete(ctx, "attendee1")
	if got, _ := s.Get(ctx, "attendee1"); got.ID == c.ID {
		t.Error("expected a fresh cart after Delete")
	}
}

func TestMemoryClaimer(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryClaimer(time.Hour)

	if ok, _ := m.Claim(ctx, "k1"); !ok {
		t.Fatal("expected first claim to succeed")
	}
	if ok, _ := m.Claim(ctx, "k1"); ok {
		t.Fatal("expected second claim to be refused")
	}
	if ok, _ := m.Claim(ctx, "k2"); !ok {
		t.Fatal("expected a different key to succeed")
	}

	if err := m.Release(ctx, "k1"); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if ok, _ := m.Claim(ctx, "k1"); !ok {
		t.Fatal("expected a released key to be claimable again")
	}

	expired := NewMemoryClaimer(-time.Second)
	expired.Claim(ctx, "k1")
	if ok, _ := expired.Claim(ctx, "k1"); !ok {
		t.Error("expected an expired key to be claimable again")
	}
}
