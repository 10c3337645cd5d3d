package cart

import (
	"testing"

	"shopfront/internal/domain"
)

func TestAddMergesOnExistingProduct(t *testing.T) {
	c := Add(nil, "p1")
	c = Add(c, "p2")
	c = Add(c, "p1")

	if len(c) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(c))
	}
	if c[0].ProductID != "p1" || c[0].Qty != 2 {
		t.Fatalf("expected p1 qty 2 first, got %+v", c[0])
	}
	if c[1].ProductID != "p2" || c[1].Qty != 1 {
		t.Fatalf("expected p2 qty 1 second, got %+v", c[1])
	}
}

func TestUpdateQtyRemovesAtZero(t *testing.T) {
	c := Add(Add(nil, "p1"), "p1") // qty 2

	c = UpdateQty(c, "p1", -2)
	if len(c) != 0 {
		t.Fatalf("expected empty cart, got %+v", c)
	}

	// Removal is tolerated below zero too.
	c = Add(nil, "p1")
	c = UpdateQty(c, "p1", -5)
	if len(c) != 0 {
		t.Fatalf("expected empty cart after over-decrement, got %+v", c)
	}
}

func TestUpdateQtyLeavesOtherEntries(t *testing.T) {
	c := Add(Add(nil, "p1"), "p2")
	c = UpdateQty(c, "p1", 3)

	if c[0].Qty != 4 {
		t.Fatalf("expected p1 qty 4, got %d", c[0].Qty)
	}
	if c[1].Qty != 1 {
		t.Fatalf("expected p2 untouched, got %d", c[1].Qty)
	}
}

func TestDetailDropsUnknownProductsKeepsOrder(t *testing.T) {
	catalog := []domain.Product{
		{ID: "p2", Name: "Bread", Price: 5},
		{ID: "p1", Name: "Milk", Price: 10, Image: "milk.png"},
	}
	c := []domain.CartEntry{
		{ProductID: "p1", Qty: 2},
		{ProductID: "gone", Qty: 1},
		{ProductID: "p2", Qty: 1},
	}

	lines := Detail(c, catalog)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].ProductID != "p1" || lines[1].ProductID != "p2" {
		t.Fatalf("insertion order not preserved: %+v", lines)
	}
	if lines[0].Name != "Milk" || lines[0].Price != 10 || lines[0].Image != "milk.png" {
		t.Fatalf("catalog join incomplete: %+v", lines[0])
	}
}

func TestDetailAfterRemovalOmitsEntry(t *testing.T) {
	catalog := []domain.Product{{ID: "p1", Name: "Milk", Price: 10}}
	c := Add(nil, "p1")
	c = UpdateQty(c, "p1", -1)

	if lines := Detail(c, catalog); len(lines) != 0 {
		t.Fatalf("expected no lines after removal, got %+v", lines)
	}
}

func TestTotalsScenario(t *testing.T) {
	// P1 (price 10) x2 and P2 (price 5) x1 -> total 25, count 3.
	catalog := []domain.Product{
		{ID: "p1", Name: "P1", Price: 10},
		{ID: "p2", Name: "P2", Price: 5},
	}
	c := Add(Add(Add(nil, "p1"), "p1"), "p2")

	if got := Total(Detail(c, catalog)); got != 25 {
		t.Fatalf("expected total 25, got %v", got)
	}
	if got := Count(c); got != 3 {
		t.Fatalf("expected count 3, got %d", got)
	}
}

func TestTotalAdditiveOverDisjointCarts(t *testing.T) {
	catalog := []domain.Product{
		{ID: "a", Price: 3},
		{ID: "b", Price: 7},
		{ID: "c", Price: 11},
	}
	c1 := Add(Add(nil, "a"), "a")
	c2 := Add(Add(nil, "b"), "c")

	sum := Total(Detail(c1, catalog)) + Total(Detail(c2, catalog))
	merged := Total(Detail(Merge(c1, c2), catalog))
	if sum != merged {
		t.Fatalf("total not additive: %v + parts != %v", sum, merged)
	}
}

func TestMergeSumsSharedProducts(t *testing.T) {
	c1 := []domain.CartEntry{{ProductID: "a", Qty: 2}}
	c2 := []domain.CartEntry{{ProductID: "a", Qty: 3}, {ProductID: "b", Qty: 1}}

	m := Merge(c1, c2)
	if len(m) != 2 || m[0].Qty != 5 {
		t.Fatalf("unexpected merge result: %+v", m)
	}
}
