package seed

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"shopfront/internal/domain"
)

type stubAPI struct {
	offers   []domain.Offer
	products []domain.Product
	nextID   int
}

func (s *stubAPI) ListOffers(_ context.Context) ([]domain.Offer, error) {
	return s.offers, nil
}

func (s *stubAPI) CreateOffer(_ context.Context, o domain.Offer) (*domain.Offer, error) {
	s.nextID++
	o.ID = fmt.Sprintf("o%d", s.nextID)
	s.offers = append(s.offers, o)
	return &o, nil
}

func (s *stubAPI) ListProducts(_ context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubAPI) CreateProduct(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.nextID++
	p.ID = fmt.Sprintf("p%d", s.nextID)
	s.products = append(s.products, p)
	return &p, nil
}

func TestApplyIsIdempotentByName(t *testing.T) {
	api := &stubAPI{}

	if err := Apply(context.Background(), api, zap.NewNop()); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	offersAfterFirst := len(api.offers)
	productsAfterFirst := len(api.products)
	if offersAfterFirst == 0 || productsAfterFirst == 0 {
		t.Fatalf("expected demo data, got %d offers, %d products", offersAfterFirst, productsAfterFirst)
	}

	if err := Apply(context.Background(), api, zap.NewNop()); err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if len(api.offers) != offersAfterFirst || len(api.products) != productsAfterFirst {
		t.Fatalf("apply is not idempotent: %d/%d offers, %d/%d products",
			offersAfterFirst, len(api.offers), productsAfterFirst, len(api.products))
	}
}

func TestApplyLinksProductsToSeededOffers(t *testing.T) {
	api := &stubAPI{}
	if err := Apply(context.Background(), api, zap.NewNop()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	offerIDs := make(map[string]bool)
	for _, o := range api.offers {
		offerIDs[o.ID] = true
	}

	linked := 0
	for _, p := range api.products {
		for _, id := range p.Offers {
			if !offerIDs[id] {
				t.Fatalf("product %s links unknown offer id %q", p.Name, id)
			}
			linked++
		}
	}
	if linked == 0 {
		t.Fatal("expected at least one product linked to an offer")
	}
}
