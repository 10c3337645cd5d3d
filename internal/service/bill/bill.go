// Package bill implements the bill rendering model: an authoritative,
// already-discounted bill from the backend is mapped to display rows, with
// product names resolved against the cached catalog. The catalog and the
// bill are fetched independently, so name resolution degrades to a sentinel
// instead of failing.
package bill

import (
	"time"

	"shopfront/internal/domain"
)

// Row is one rendered bill line.
type Row struct {
	ProductID      string  `json:"productId"`
	Name           string  `json:"name"`
	Quantity       int     `json:"quantity"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
}

// Summary is the rendered view of a bill. Subtotal is reconstructed as
// FinalAmount + TotalDiscount; that is a presentation-only recomputation of
// the backend's invariant, and a violating response is rendered as-is rather
// than rejected.
type Summary struct {
	BillID        string    `json:"billId"`
	Rows          []Row     `json:"items"`
	Subtotal      float64   `json:"subtotal"`
	TotalDiscount float64   `json:"totalDiscount"`
	FinalAmount   float64   `json:"finalAmount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ResolveProductName looks the id up in the catalog, falling back to the
// "Unknown Product" sentinel. Never errors.
func ResolveProductName(id string, catalog []domain.Product) string {
	if p := domain.FindProduct(catalog, id); p != nil {
		return p.Name
	}
	return domain.UnknownProductName
}

// Summarize maps a bill to its display form, preserving item order.
func Summarize(b domain.Bill, catalog []domain.Product) Summary {
	rows := make([]Row, 0, len(b.Items))
	for _, it := range b.Items {
		rows = append(rows, Row{
			ProductID:      it.ProductID,
			Name:           ResolveProductName(it.ProductID, catalog),
			Quantity:       it.Quantity,
			DiscountAmount: it.DiscountAmount,
			FinalPrice:     it.FinalPrice,
		})
	}
	return Summary{
		BillID:        b.ID,
		Rows:          rows,
		Subtotal:      b.FinalAmount + b.TotalDiscount,
		TotalDiscount: b.TotalDiscount,
		FinalAmount:   b.FinalAmount,
		CreatedAt:     b.CreatedAt,
	}
}
