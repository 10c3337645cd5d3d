package cart

import (
	"context"

	"go.uber.org/zap"

	"shopfront/internal/domain"
	"shopfront/internal/store"
)

// billCreator is the slice of the backend client checkout needs.
type billCreator interface {
	CreateBill(ctx context.Context, entries []domain.CartEntry) (*domain.Bill, error)
}

// Service ties session carts to checkout submission. The backend is the sole
// authority for discount application and final pricing; checkout only ships
// the minimal (productId, qty) pairs.
type Service struct {
	carts  *Manager
	api    billCreator
	store  *store.Store
	logger *zap.Logger
}

func New(carts *Manager, api billCreator, st *store.Store, logger *zap.Logger) *Service {
	return &Service{carts: carts, api: api, store: st, logger: logger}
}

func (s *Service) Entries(sessionID string) []domain.CartEntry {
	return s.carts.Get(sessionID)
}

func (s *Service) Add(sessionID, productID string) []domain.CartEntry {
	return s.carts.Add(sessionID, productID)
}

func (s *Service) Update(sessionID, productID string, delta int) []domain.CartEntry {
	return s.carts.Update(sessionID, productID, delta)
}

// Detailed derives the priced view of the session's cart against the cached
// catalog.
func (s *Service) Detailed(sessionID string) []domain.DetailedCartLine {
	return Detail(s.carts.Get(sessionID), s.store.Products())
}

// Checkout submits the session's cart. On success the bill is recorded in the
// store (opening the summary dialog) and the cart is cleared. An empty cart
// is a validation failure, mirroring the disabled checkout control.
func (s *Service) Checkout(ctx context.Context, sessionID string) (*domain.Bill, error) {
	entries := s.carts.Get(sessionID)
	if len(entries) == 0 {
		v := domain.NewValidationErrors()
		v.Add("cart", "cart is empty")
		return nil, v
	}

	s.store.Dispatch(store.BillRequested{})
	bill, err := s.api.CreateBill(ctx, entries)
	if err != nil {
		s.store.Dispatch(store.BillFailed{Err: err.Error()})
		return nil, err
	}

	s.store.Dispatch(store.BillCreated{Bill: *bill})
	s.carts.Clear(sessionID)
	s.logger.Info("checkout complete",
		zap.String("billId", bill.ID),
		zap.Int("items", len(bill.Items)),
		zap.Float64("finalAmount", bill.FinalAmount))
	return bill, nil
}

// Acknowledge dismisses the bill summary dialog. The bill data stays in the
// store until a newer checkout replaces it.
func (s *Service) Acknowledge() {
	s.store.Dispatch(store.BillAcknowledged{})
}
