package store

import "shopfront/internal/domain"

// Event is a state transition trigger. Reduce is a pure function from
// (State, Event) to the next State; Store.Dispatch is the only place it runs
// against live state.
type Event interface {
	isEvent()
}

type ProductsRequested struct{}
type ProductsLoaded struct{ Products []domain.Product }
type ProductsFailed struct{ Err string }
type ProductCreated struct{ Product domain.Product }
type ProductCreateFailed struct{ Err string }

type OffersRequested struct{}
type OffersLoaded struct{ Offers []domain.Offer }
type OffersFailed struct{ Err string }
type OfferCreated struct{ Offer domain.Offer }
type OfferCreateFailed struct{ Err string }

type BillRequested struct{}
type BillCreated struct{ Bill domain.Bill }
type BillFailed struct{ Err string }
type BillAcknowledged struct{}

func (ProductsRequested) isEvent()   {}
func (ProductsLoaded) isEvent()      {}
func (ProductsFailed) isEvent()      {}
func (ProductCreated) isEvent()      {}
func (ProductCreateFailed) isEvent() {}
func (OffersRequested) isEvent()     {}
func (OffersLoaded) isEvent()        {}
func (OffersFailed) isEvent()        {}
func (OfferCreated) isEvent()        {}
func (OfferCreateFailed) isEvent()   {}
func (BillRequested) isEvent()       {}
func (BillCreated) isEvent()         {}
func (BillFailed) isEvent()          {}
func (BillAcknowledged) isEvent()    {}

// Reduce returns the state produced by applying event to prev. The input is
// never mutated.
func Reduce(prev State, event Event) State {
	next := prev
	switch e := event.(type) {
	case ProductsRequested:
		next.Products.Status = StatusLoading
		next.Products.Err = ""
	case ProductsLoaded:
		next.Products.Products = e.Products
		next.Products.Status = StatusSuccess
		next.Products.Err = ""
	case ProductsFailed:
		next.Products.Status = StatusFail
		next.Products.Err = e.Err
	case ProductCreated:
		next.Products.Products = append(cloneProducts(prev.Products.Products), e.Product)
		next.Products.Status = StatusCreated
		next.Products.Err = ""
	case ProductCreateFailed:
		next.Products.Status = StatusFail
		next.Products.Err = e.Err

	case OffersRequested:
		next.Offers.Status = StatusLoading
		next.Offers.Err = ""
	case OffersLoaded:
		next.Offers.Offers = e.Offers
		next.Offers.Status = StatusSuccess
		next.Offers.Err = ""
	case OffersFailed:
		next.Offers.Status = StatusFail
		next.Offers.Err = e.Err
	case OfferCreated:
		next.Offers.Offers = append(cloneOffers(prev.Offers.Offers), e.Offer)
		next.Offers.Status = StatusCreated
		next.Offers.Err = ""
	case OfferCreateFailed:
		next.Offers.Status = StatusFail
		next.Offers.Err = e.Err

	case BillRequested:
		next.Bill.Status = StatusLoading
		next.Bill.Err = ""
	case BillCreated:
		bill := e.Bill
		next.Bill.Bill = &bill
		next.Bill.Bills = append([]domain.Bill{bill}, prev.Bill.Bills...)
		next.Bill.Status = StatusCreated
		next.Bill.Open = true
		next.Bill.Err = ""
	case BillFailed:
		next.Bill.Status = StatusFail
		next.Bill.Err = e.Err
	case BillAcknowledged:
		// Dismissing the dialog only toggles visibility; the bill data
		// stays until a newer checkout replaces it.
		next.Bill.Open = false
		next.Bill.Status = StatusIdle
	}
	return next
}
