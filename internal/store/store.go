// Package store holds the process-wide cache of products, offers and the
// latest bill. It is an explicit, injected state container: every mutation is
// an Event reduced by a pure function, and cached lists are replaced
// wholesale on each successful fetch. Racing fetches resolve last-writer-wins
// in completion order; there is no cancellation of superseded requests.
package store

import (
	"sync"

	"shopfront/internal/domain"
)

// Status mirrors the request lifecycle of each entity cache.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusCreated Status = "created"
	StatusFail    Status = "fail"
)

type ProductState struct {
	Products []domain.Product
	Status   Status
	Err      string
}

type OfferState struct {
	Offers []domain.Offer
	Status Status
	Err    string
}

// BillState keeps the latest bill plus a history of this process's bills.
// Open tracks whether the summary dialog should be shown; acknowledging only
// clears the flag, the bill data stays until replaced by a newer checkout.
type BillState struct {
	Bill   *domain.Bill
	Bills  []domain.Bill
	Status Status
	Err    string
	Open   bool
}

// State is the full store snapshot.
type State struct {
	Products ProductState
	Offers   OfferState
	Bill     BillState
}

func initialState() State {
	return State{
		Products: ProductState{Status: StatusIdle},
		Offers:   OfferState{Status: StatusIdle},
		Bill:     BillState{Status: StatusIdle},
	}
}

// Store serializes dispatches with a mutex and hands out snapshot copies.
// Callers never see interior slices of live state.
type Store struct {
	mu    sync.RWMutex
	state State
}

func New() *Store {
	return &Store{state: initialState()}
}

// Dispatch applies event to the current state through Reduce.
func (s *Store) Dispatch(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, event)
}

// Snapshot returns a copy of the full state with slices cloned.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Products returns a copy of the cached catalog.
func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.state.Products.Products)
}

// Offers returns a copy of the cached offer list.
func (s *Store) Offers() []domain.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOffers(s.state.Offers.Offers)
}

// Bill returns the latest bill (or nil) and whether the summary dialog is
// open.
func (s *Store) Bill() (*domain.Bill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.Bill.Bill == nil {
		return nil, s.state.Bill.Open
	}
	b := *s.state.Bill.Bill
	b.Items = append([]domain.BillItem(nil), b.Items...)
	return &b, s.state.Bill.Open
}

func cloneState(s State) State {
	out := s
	out.Products.Products = cloneProducts(s.Products.Products)
	out.Offers.Offers = cloneOffers(s.Offers.Offers)
	out.Bill.Bills = append([]domain.Bill(nil), s.Bill.Bills...)
	if s.Bill.Bill != nil {
		b := *s.Bill.Bill
		b.Items = append([]domain.BillItem(nil), b.Items...)
		out.Bill.Bill = &b
	}
	return out
}

func cloneProducts(in []domain.Product) []domain.Product {
	if in == nil {
		return nil
	}
	return append([]domain.Product(nil), in...)
}

func cloneOffers(in []domain.Offer) []domain.Offer {
	if in == nil {
		return nil
	}
	return append([]domain.Offer(nil), in...)
}
