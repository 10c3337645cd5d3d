package domain

import "time"

// Bill is the authoritative record of a completed checkout, computed by the
// billing backend. Each item's FinalPrice already reflects applied discounts,
// and FinalAmount + TotalDiscount equals the pre-discount subtotal. The
// client only re-derives that subtotal for display, never recomputes totals.
type Bill struct {
	ID            string     `json:"id"`
	Items         []BillItem `json:"items"`
	TotalDiscount float64    `json:"totalDiscount"`
	FinalAmount   float64    `json:"finalAmount"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type BillItem struct {
	ProductID      string  `json:"productId"`
	Quantity       int     `json:"quantity"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
}
