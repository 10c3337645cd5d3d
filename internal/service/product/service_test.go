package product

import (
	"context"
	"io"
	"strings"
	"testing"

	"go.uber.org/zap"

	"shopfront/internal/domain"
	"shopfront/internal/store"
)

type stubProductAPI struct {
	products     []domain.Product
	created      *domain.Product
	uploadURL    string
	err          error
	lastProduct  domain.Product
	lastFilename string
	createCalls  int
	deleted      []string
}

func (s *stubProductAPI) ListProducts(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductAPI) CreateProduct(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.createCalls++
	s.lastProduct = p
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubProductAPI) SoftDeleteProduct(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubProductAPI) UploadFile(_ context.Context, filename string, r io.Reader) (string, error) {
	s.lastFilename = filename
	io.Copy(io.Discard, r)
	return s.uploadURL, s.err
}

func TestValidateDraftRules(t *testing.T) {
	tests := []struct {
		name   string
		draft  Draft
		field  string
		wantOK bool
	}{
		{"valid", Draft{Name: "Milk", Price: 2.5, Quantity: 10}, "", true},
		{"empty name", Draft{Name: "", Price: 1, Quantity: 1}, "name", false},
		{"short name", Draft{Name: "ab", Price: 1, Quantity: 1}, "name", false},
		{"long name", Draft{Name: strings.Repeat("x", 51), Price: 1, Quantity: 1}, "name", false},
		{"zero price", Draft{Name: "Milk", Price: 0, Quantity: 1}, "price", false},
		{"negative price", Draft{Name: "Milk", Price: -3, Quantity: 1}, "price", false},
		{"zero quantity", Draft{Name: "Milk", Price: 1, Quantity: 0}, "quantity", false},
		{"fractional quantity", Draft{Name: "Milk", Price: 1, Quantity: 1.5}, "quantity", false},
	}
	for _, tc := range tests {
		err := ValidateDraft(tc.draft)
		if tc.wantOK {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", tc.name, err)
			}
			continue
		}
		if err == nil {
			t.Errorf("%s: expected validation error", tc.name)
			continue
		}
		v, _ := domain.AsValidationErrors(err)
		if _, found := v.Fields[tc.field]; !found {
			t.Errorf("%s: expected %s error, got %v", tc.name, tc.field, v.Fields)
		}
	}
}

func TestCreateInvalidDraftNeverHitsBackend(t *testing.T) {
	api := &stubProductAPI{}
	svc := New(api, store.New(), zap.NewNop())

	if _, err := svc.Create(context.Background(), Draft{Name: "x"}); err == nil {
		t.Fatal("expected error")
	}
	if api.createCalls != 0 {
		t.Fatal("backend must not be called for an invalid draft")
	}
}

func TestCreateHappyPath(t *testing.T) {
	created := domain.Product{ID: "p1", Name: "Milk", Price: 2.5, Quantity: 10, Active: true}
	api := &stubProductAPI{created: &created}
	st := store.New()
	svc := New(api, st, zap.NewNop())

	got, err := svc.Create(context.Background(), Draft{
		Name: "  Milk ", Price: 2.5, Quantity: 10, Offers: []string{"o1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "p1" {
		t.Fatalf("unexpected product: %+v", got)
	}
	if api.lastProduct.Name != "Milk" {
		t.Fatalf("name not trimmed before submission: %q", api.lastProduct.Name)
	}
	if len(api.lastProduct.Offers) != 1 || api.lastProduct.Offers[0] != "o1" {
		t.Fatalf("linked offer ids not forwarded: %+v", api.lastProduct.Offers)
	}

	products := st.Products()
	if len(products) != 1 || products[0].ID != "p1" {
		t.Fatalf("product not recorded in store: %+v", products)
	}
}

func TestListReplacesCatalogWholesale(t *testing.T) {
	st := store.New()
	st.Dispatch(store.ProductsLoaded{Products: []domain.Product{{ID: "stale"}}})

	api := &stubProductAPI{products: []domain.Product{{ID: "fresh"}}}
	svc := New(api, st, zap.NewNop())

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	products := st.Products()
	if len(products) != 1 || products[0].ID != "fresh" {
		t.Fatalf("catalog not replaced: %+v", products)
	}
}

func TestDeleteRefreshesCatalog(t *testing.T) {
	api := &stubProductAPI{}
	st := store.New()
	st.Dispatch(store.ProductsLoaded{Products: []domain.Product{{ID: "p1"}}})
	svc := New(api, st, zap.NewNop())

	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != "p1" {
		t.Fatalf("soft delete not forwarded: %+v", api.deleted)
	}
	if products := st.Products(); len(products) != 0 {
		t.Fatalf("catalog not refreshed after delete: %+v", products)
	}
}

func TestUploadImageForwards(t *testing.T) {
	api := &stubProductAPI{uploadURL: "http://files/milk.png"}
	svc := New(api, store.New(), zap.NewNop())

	url, err := svc.UploadImage(context.Background(), "milk.png", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "http://files/milk.png" {
		t.Fatalf("unexpected url: %q", url)
	}
	if api.lastFilename != "milk.png" {
		t.Fatalf("filename not forwarded: %q", api.lastFilename)
	}
}
