// Package product covers the catalog side: admin creation with the form's
// validation rules, list refresh into the store, and image upload
// pass-through to the backend's file store.
package product

import (
	"context"
	"io"
	"math"
	"strings"

	"go.uber.org/zap"

	"shopfront/internal/domain"
	"shopfront/internal/store"
)

// Draft is a product under construction in the admin form. Offers carries
// linked offer ids only.
type Draft struct {
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Quantity float64  `json:"quantity"`
	Offers   []string `json:"offers"`
	Image    string   `json:"image"`
}

// ValidateDraft applies the admin form's field rules: name 3-50 chars,
// price strictly positive, quantity a whole number of at least 1.
func ValidateDraft(d Draft) error {
	v := domain.NewValidationErrors()

	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		v.Add("name", "Product name is required")
	case len(name) < 3:
		v.Add("name", "Name is too short")
	case len(name) > 50:
		v.Add("name", "Name is too long")
	}

	if d.Price <= 0 {
		v.Add("price", "Price must be greater than zero")
	}

	if d.Quantity != math.Trunc(d.Quantity) {
		v.Add("quantity", "Quantity must be a whole number")
	} else if d.Quantity < 1 {
		v.Add("quantity", "Minimum 1 unit required")
	}

	return v.OrNil()
}

// productAPI is the slice of the backend client this service needs.
type productAPI interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
	SoftDeleteProduct(ctx context.Context, id string) error
	UploadFile(ctx context.Context, filename string, r io.Reader) (string, error)
}

type Service struct {
	api    productAPI
	store  *store.Store
	logger *zap.Logger
}

func New(api productAPI, st *store.Store, logger *zap.Logger) *Service {
	return &Service{api: api, store: st, logger: logger}
}

// List refreshes the cached catalog from the backend, replacing it wholesale
// on success. Racing refreshes commit in completion order.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	s.store.Dispatch(store.ProductsRequested{})
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		s.store.Dispatch(store.ProductsFailed{Err: err.Error()})
		return nil, err
	}
	s.store.Dispatch(store.ProductsLoaded{Products: products})
	return products, nil
}

// Create validates the draft, submits it, and records the created product.
func (s *Service) Create(ctx context.Context, d Draft) (*domain.Product, error) {
	if err := ValidateDraft(d); err != nil {
		return nil, err
	}

	created, err := s.api.CreateProduct(ctx, domain.Product{
		Name:     strings.TrimSpace(d.Name),
		Price:    d.Price,
		Quantity: int(d.Quantity),
		Offers:   d.Offers,
		Image:    d.Image,
	})
	if err != nil {
		s.store.Dispatch(store.ProductCreateFailed{Err: err.Error()})
		return nil, err
	}

	s.store.Dispatch(store.ProductCreated{Product: *created})
	s.logger.Info("product created",
		zap.String("productId", created.ID), zap.String("name", created.Name))
	return created, nil
}

// Delete soft-deletes the product on the backend and refreshes the catalog.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.SoftDeleteProduct(ctx, id); err != nil {
		return err
	}
	if _, err := s.List(ctx); err != nil {
		s.logger.Warn("catalog refresh after delete failed", zap.Error(err))
	}
	s.logger.Info("product deleted", zap.String("productId", id))
	return nil
}

// UploadImage forwards an image to the backend file store and returns its
// URL for use in a subsequent product create.
func (s *Service) UploadImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	return s.api.UploadFile(ctx, filename, r)
}
