package domain

// Product is a catalog entry as served by the billing backend. Offers holds
// linked offer IDs only; the entities are resolved against the offer cache at
// render time.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Offers   []string `json:"offers,omitempty"`
	Active   bool     `json:"isActive"`
	Image    string   `json:"image,omitempty"`
}

// UnknownProductName is the fallback display name when a bill or cart line
// references a product the catalog no longer has.
const UnknownProductName = "Unknown Product"

// FindProduct returns the catalog entry with the given id, or nil. Catalog
// and bill/cart are fetched independently, so a miss is expected state, not
// an error.
func FindProduct(catalog []Product, id string) *Product {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}
