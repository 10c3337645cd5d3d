// Package cart implements the cart reconciliation model: a minimal ordered
// list of (productId, qty) entries, joined against an independently fetched
// catalog to produce priced line items. The join tolerates catalog staleness;
// entries whose product has vanished are dropped from the derived view, not
// errored.
package cart

import "shopfront/internal/domain"

// Add merges productID into c: an existing entry gains +1 quantity, otherwise
// a new entry with quantity 1 is appended. Insertion order is preserved for
// display. The input slice is not mutated.
func Add(c []domain.CartEntry, productID string) []domain.CartEntry {
	out := append([]domain.CartEntry(nil), c...)
	for i := range out {
		if out[i].ProductID == productID {
			out[i].Qty++
			return out
		}
	}
	return append(out, domain.CartEntry{ProductID: productID, Qty: 1})
}

// UpdateQty adds delta to the entry's quantity, floored at 0. Entries that
// reach 0 are removed entirely; no zero-quantity entry ever persists.
func UpdateQty(c []domain.CartEntry, productID string, delta int) []domain.CartEntry {
	out := make([]domain.CartEntry, 0, len(c))
	for _, e := range c {
		if e.ProductID == productID {
			e.Qty += delta
			if e.Qty < 0 {
				e.Qty = 0
			}
		}
		if e.Qty > 0 {
			out = append(out, e)
		}
	}
	return out
}

// Merge combines two carts entrywise, summing quantities for shared product
// ids. Order follows a's entries, then b's new ones.
func Merge(a, b []domain.CartEntry) []domain.CartEntry {
	out := append([]domain.CartEntry(nil), a...)
	for _, e := range b {
		merged := false
		for i := range out {
			if out[i].ProductID == e.ProductID {
				out[i].Qty += e.Qty
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, e)
		}
	}
	return out
}

// Detail joins each cart entry with its current catalog snapshot. Entries
// whose productId is absent from the catalog are silently dropped; order of
// resolving entries follows the cart's insertion order. The result is
// recomputed on every call, never cached.
func Detail(c []domain.CartEntry, catalog []domain.Product) []domain.DetailedCartLine {
	lines := make([]domain.DetailedCartLine, 0, len(c))
	for _, e := range c {
		p := domain.FindProduct(catalog, e.ProductID)
		if p == nil {
			continue
		}
		lines = append(lines, domain.DetailedCartLine{
			ProductID: e.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Qty:       e.Qty,
		})
	}
	return lines
}

// Total sums price times quantity over the derived lines.
func Total(lines []domain.DetailedCartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += l.Price * float64(l.Qty)
	}
	return sum
}

// Count sums the quantities across all cart entries.
func Count(c []domain.CartEntry) int {
	var n int
	for _, e := range c {
		n += e.Qty
	}
	return n
}
