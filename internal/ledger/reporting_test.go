package ledger

import (
	"context"
	"testing"

	"github.com/rogerio-castellano/pharmalink/internal/db"
	"github.com/rogerio-castellano/pharmalink/internal/repo"
)

func TestProfitSummary_CountsScheduledDeliveries(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repo.LedgerStore) {
		ctx := context.Background()
		l := New(store)
		p := stockedProduct(t, l, "Vitamin C", "10.00", 0, 0)

		if err := l.ReceiveStock(ctx, p.ID, 5, "John Doe", dec("4.0")); err != nil {
			t.Fatalf("ReceiveStock failed: %v", err)
		}
		if res, err := l.RecordSale(ctx, p.ID, 5, "John Doe"); err != nil || !res.OK {
			t.Fatalf("RecordSale failed: %+v, %v", res, err)
		}
		if _, err := l.ScheduleDelivery(ctx, p.ID, 10, "Mr. Boss", dec("5.0")); err != nil {
			t.Fatalf("ScheduleDelivery failed: %v", err)
		}

		summary, err := l.GetProfitSummary(ctx)
		if err != nil {
			t.Fatalf("GetProfitSummary failed: %v", err)
		}
		if !summary.TotalRevenue.Equal(dec("50")) {
			t.Errorf("expected revenue 50, got %s", summary.TotalRevenue)
		}
		if !summary.TotalExpense.Equal(dec("70")) {
			t.Errorf("expected expense 70, got %s", summary.TotalExpense)
		}
		if !summary.NetProfit.Equal(dec("-20")) {
			t.Errorf("expected net profit -20, got %s", summary.NetProfit)
		}
	})
}

func TestProfitSummary_CentsAddUpExactly(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repo.LedgerStore) {
		ctx := context.Background()
		l := New(store)
		p := stockedProduct(t, l, "Cotton Swabs", "0.10", 0, 0)

		if err := l.ReceiveStock(ctx, p.ID, 3, "John Doe", dec("0.10")); err != nil {
			t.Fatalf("ReceiveStock failed: %v", err)
		}
		for _, qty := range []int{1, 2} {
			if res, err := l.RecordSale(ctx, p.ID, qty, "John Doe"); err != nil || !res.OK {
				t.Fatalf("RecordSale(%d) failed: %+v, %v", qty, res, err)
			}
		}

		summary, err := l.GetProfitSummary(ctx)
		if err != nil {
			t.Fatalf("GetProfitSummary failed: %v", err)
		}
		if summary.TotalRevenue.String() != "0.3" || summary.TotalExpense.String() != "0.3" {
			t.Errorf("expected revenue and expense of exactly 0.3, got %s and %s", summary.TotalRevenue, summary.TotalExpense)
		}
		if !summary.NetProfit.IsZero() {
			t.Errorf("expected net profit 0, got %s", summary.NetProfit)
		}

		deliveries, err := l.GetAllDeliveries(ctx)
		if err != nil {
			t.Fatalf("GetAllDeliveries failed: %v", err)
		}
		if len(deliveries) != 1 || deliveries[0].TotalCost.String() != "0.3" {
			t.Errorf("expected a delivery costing exactly 0.3, got %+v", deliveries)
		}
		sales, err := l.GetSalesHistory(ctx)
		if err != nil {
			t.Fatalf("GetSalesHistory failed: %v", err)
		}
		if len(sales) != 2 || sales[1].TotalPrice.String() != "0.2" {
			t.Errorf("expected the second sale to total exactly 0.2, got %+v", sales)
		}
	})
}

func TestProfitSummary_EmptyLedgerIsZero(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repo.LedgerStore) {
		summary, err := New(store).GetProfitSummary(context.Background())
		if err != nil {
			t.Fatalf("GetProfitSummary failed: %v", err)
		}
		if !summary.TotalRevenue.IsZero() || !summary.TotalExpense.IsZero() || !summary.NetProfit.IsZero() {
			t.Errorf("expected all zero, got %+v", summary)
		}
	})
}

func TestGetLowStock_ReturnsExactlyProductsAtOrBelowThreshold(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repo.LedgerStore) {
		ctx := context.Background()
		l := New(store)
		below := stockedProduct(t, l, "Below", "1.00", 3, 5)
		equal := stockedProduct(t, l, "Equal", "1.00", 5, 5)
		stockedProduct(t, l, "Above", "1.00", 6, 5)
		empty := stockedProduct(t, l, "Empty", "1.00", 0, 0)

		low, err := l.GetLowStock(ctx)
		if err != nil {
			t.Fatalf("GetLowStock failed: %v", err)
		}

		want := []int64{below.ID, equal.ID, empty.ID}
		if len(low) != len(want) {
			t.Fatalf("expected %d low-stock products, got %+v", len(want), low)
		}
		for i, p := range low {
			if p.ID != want[i] {
				t.Errorf("position %d: expected product %d, got %d", i, want[i], p.ID)
			}
			if p.Quantity > p.MinStockLevel {
				t.Errorf("product %s above threshold returned", p.Name)
			}
		}
	})
}

func TestLowStock_SequenceIsRestartable(t *testing.T) {
	ctx := context.Background()
	l := New(repo.NewInMemoryLedgerStore())
	stockedProduct(t, l, "A", "1.00", 1, 5)
	stockedProduct(t, l, "B", "1.00", 2, 5)

	seq, err := l.LowStock(ctx)
	if err != nil {
		t.Fatalf("LowStock failed: %v", err)
	}

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	if first, second := count(), count(); first != 2 || second != 2 {
		t.Errorf("expected 2 products on each pass, got %d and %d", first, second)
	}

	for p := range seq {
		if p.Name != "A" {
			t.Errorf("expected A first, got %s", p.Name)
		}
		break
	}
}

func TestAllDeliveries_NewestFirst(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repo.LedgerStore) {
		ctx := context.Background()
		l := New(store)
		p := stockedProduct(t, l, "Paracetamol", "5.00", 0, 0)

		for i := 0; i < 3; i++ {
			if err := l.ReceiveStock(ctx, p.ID, i+1, "John Doe", dec("1")); err != nil {
				t.Fatalf("ReceiveStock failed: %v", err)
			}
		}

		deliveries, err := l.GetAllDeliveries(ctx)
		if err != nil {
			t.Fatalf("GetAllDeliveries failed: %v", err)
		}
		if len(deliveries) != 3 {
			t.Fatalf("expected 3 deliveries, got %d", len(deliveries))
		}
		for i := 1; i < len(deliveries); i++ {
			prev, cur := deliveries[i-1], deliveries[i]
			if cur.DeliveredAt.After(prev.DeliveredAt) {
				t.Errorf("delivery %d is newer than %d", cur.ID, prev.ID)
			}
		}
		if deliveries[0].Quantity != 3 {
			t.Errorf("expected the last receipt first, got %+v", deliveries[0])
		}
	})
}

func TestDashboard(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repo.LedgerStore) {
		ctx := context.Background()
		if _, err := db.Seed(ctx, store); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		l := New(store)

		// Paracetamol: 100 on hand, minimum 20.
		if res, err := l.RecordSale(ctx, 1, 80, "John Doe"); err != nil || !res.OK {
			t.Fatalf("RecordSale failed: %+v, %v", res, err)
		}
		if _, err := l.ScheduleDelivery(ctx, 1, 50, "Mr. Boss", dec("2.00")); err != nil {
			t.Fatalf("ScheduleDelivery failed: %v", err)
		}

		d, err := l.Dashboard(ctx)
		if err != nil {
			t.Fatalf("Dashboard failed: %v", err)
		}
		if d.TotalProducts != 5 {
			t.Errorf("expected 5 products, got %d", d.TotalProducts)
		}
		if d.LowStockCount != 1 {
			t.Errorf("expected 1 low-stock product, got %d", d.LowStockCount)
		}
		if d.SalesCount != 1 || d.PendingDeliveries != 1 {
			t.Errorf("unexpected counts: %+v", d)
		}
		if !d.TotalRevenue.Equal(dec("400")) || !d.TotalExpense.Equal(dec("100")) || !d.NetProfit.Equal(dec("300")) {
			t.Errorf("unexpected money figures: %+v", d)
		}
		if len(d.RevenueByProduct) != 1 {
			t.Fatalf("expected revenue for 1 product, got %+v", d.RevenueByProduct)
		}
		if r := d.RevenueByProduct[0]; r.ProductName != "Paracetamol" || r.UnitsSold != 80 || !r.Revenue.Equal(dec("400")) {
			t.Errorf("unexpected product revenue: %+v", r)
		}
		if len(d.StockDistribution) != 5 || d.StockDistribution[0].Quantity != 20 || d.StockDistribution[4].ProductName != "Cough Syrup" {
			t.Errorf("unexpected stock distribution: %+v", d.StockDistribution)
		}
	})
}

func TestRevenueByProduct_HighestFirst(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repo.LedgerStore) {
		ctx := context.Background()
		l := New(store)
		cheap := stockedProduct(t, l, "Plasters", "1.50", 20, 0)
		dear := stockedProduct(t, l, "Insulin", "40.00", 5, 0)
		stockedProduct(t, l, "Unsold", "2.00", 5, 0)

		sales := []struct {
			id  int64
			qty int
		}{{cheap.ID, 4}, {dear.ID, 1}, {cheap.ID, 6}}
		for _, s := range sales {
			if res, err := l.RecordSale(ctx, s.id, s.qty, "John Doe"); err != nil || !res.OK {
				t.Fatalf("RecordSale failed: %+v, %v", res, err)
			}
		}

		got, err := l.RevenueByProduct(ctx)
		if err != nil {
			t.Fatalf("RevenueByProduct failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 products with sales, got %+v", got)
		}
		if got[0].ProductID != dear.ID || !got[0].Revenue.Equal(dec("40")) {
			t.Errorf("expected Insulin first with 40, got %+v", got[0])
		}
		if got[1].ProductID != cheap.ID || got[1].UnitsSold != 10 || !got[1].Revenue.Equal(dec("15")) {
			t.Errorf("expected Plasters with 10 units and 15, got %+v", got[1])
		}
	})
}

func TestSeed_IdempotentAndBalanced(t *testing.T) {
	forEachStore(t, func(t *testing.T, store repo.LedgerStore) {
		ctx := context.Background()

		seeded, err := db.Seed(ctx, store)
		if err != nil || !seeded {
			t.Fatalf("first Seed: seeded=%v err=%v", seeded, err)
		}
		seeded, err = db.Seed(ctx, store)
		if err != nil || seeded {
			t.Fatalf("second Seed: seeded=%v err=%v", seeded, err)
		}

		products, err := New(store).GetInventory(ctx)
		if err != nil {
			t.Fatalf("GetInventory failed: %v", err)
		}
		if len(products) != 5 {
			t.Fatalf("expected 5 products, got %d", len(products))
		}
		if products[0].Name != "Paracetamol" || products[0].Quantity != 100 || !products[0].Price.Equal(dec("5")) {
			t.Errorf("unexpected first product %+v", products[0])
		}
		assertLedgerBalanced(t, store)

		summary, _ := New(store).GetProfitSummary(ctx)
		if !summary.TotalExpense.IsZero() {
			t.Errorf("opening balances must not count as expense, got %s", summary.TotalExpense)
		}
	})
}
