package backend

import (
	"encoding/json"
	"time"

	"shopfront/internal/domain"
)

// Wire structs match the backend's field names (`_id`, `qty`, mongo-style
// documents). They are mapped to and from domain types at this edge so the
// rest of the codebase never sees the external naming.

type wireProduct struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Offers   []string `json:"offers,omitempty"`
	IsActive bool     `json:"isActive"`
	Image    string   `json:"image,omitempty"`
}

func (w wireProduct) toDomain() domain.Product {
	return domain.Product{
		ID:       w.ID,
		Name:     w.Name,
		Price:    w.Price,
		Quantity: w.Quantity,
		Offers:   w.Offers,
		Active:   w.IsActive,
		Image:    w.Image,
	}
}

// createProductBody is the POST /products payload.
type createProductBody struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
	Offers   []string `json:"offers"`
	Image    string   `json:"image,omitempty"`
}

type wireOffer struct {
	ID        string          `json:"_id"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Priority  int             `json:"priority"`
	Config    json.RawMessage `json:"config"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	IsActive  bool            `json:"isActive"`
}

func (w wireOffer) toDomain() (domain.Offer, error) {
	t := domain.OfferType(w.Type)
	cfg := domain.OfferConfig{}
	if t.Valid() {
		var err error
		cfg, err = domain.DecodeConfig(t, w.Config)
		if err != nil {
			return domain.Offer{}, err
		}
	}
	return domain.Offer{
		ID:        w.ID,
		Name:      w.Name,
		Type:      t,
		Priority:  w.Priority,
		Config:    cfg,
		StartDate: w.StartDate,
		EndDate:   w.EndDate,
		Active:    w.IsActive,
	}, nil
}

// createOfferBody is the POST /offers payload; Config marshals only the keys
// of the variant matching Type.
type createOfferBody struct {
	Name      string             `json:"name"`
	Type      string             `json:"type"`
	Priority  int                `json:"priority"`
	Config    domain.OfferConfig `json:"config"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
}

type wireBill struct {
	ID            string         `json:"_id"`
	Items         []wireBillItem `json:"items"`
	TotalDiscount float64        `json:"totalDiscount"`
	FinalAmount   float64        `json:"finalAmount"`
	CreatedAt     time.Time      `json:"createdAt"`
}

type wireBillItem struct {
	ProductID      string  `json:"productId"`
	Quantity       int     `json:"quantity"`
	DiscountAmount float64 `json:"discountAmount"`
	FinalPrice     float64 `json:"finalPrice"`
}

func (w wireBill) toDomain() domain.Bill {
	items := make([]domain.BillItem, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, domain.BillItem{
			ProductID:      it.ProductID,
			Quantity:       it.Quantity,
			DiscountAmount: it.DiscountAmount,
			FinalPrice:     it.FinalPrice,
		})
	}
	return domain.Bill{
		ID:            w.ID,
		Items:         items,
		TotalDiscount: w.TotalDiscount,
		FinalAmount:   w.FinalAmount,
		CreatedAt:     w.CreatedAt,
	}
}

// billLine is one element of the POST /bill payload: only the product id and
// quantity, the backend owns discount application and final pricing.
type billLine struct {
	ID  string `json:"_id"`
	Qty int    `json:"qty"`
}

// softDeleteBody marks an entity deleted via PUT /<resource>/delete/:id.
type softDeleteBody struct {
	IsDeleted bool `json:"isDeleted"`
}
