package domain

// CartEntry is the minimal unit the cart stores and the only thing checkout
// sends: a product id and a quantity. Pricing is joined in from the catalog
// at render time and the backend owns all discount math.
type CartEntry struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// DetailedCartLine is a CartEntry joined with a catalog snapshot. Derived on
// demand, never stored or persisted.
type DetailedCartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Qty       int     `json:"qty"`
}
