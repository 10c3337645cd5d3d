// Package offer implements the offer configuration lifecycle: a draft whose
// config shape is fully determined by the selected type, validated before the
// create call goes out to the billing backend.
package offer

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"shopfront/internal/domain"
	"shopfront/internal/store"
)

// Draft is an offer under construction in the admin form.
type Draft struct {
	Name      string             `json:"name"`
	Type      domain.OfferType   `json:"type"`
	Priority  int                `json:"priority"`
	Config    domain.OfferConfig `json:"config"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
}

// SelectType returns the draft with its config hard-reset to the default
// shape for t. Fields of the previously selected type are discarded, never
// merged, so a percentage can't survive into a flat-amount payload.
func (d Draft) SelectType(t domain.OfferType) Draft {
	d.Type = t
	d.Config = domain.DefaultConfigFor(t)
	return d
}

// ValidateDraft runs the synchronous field-level checks the form applies
// before submission is allowed.
func ValidateDraft(d Draft) error {
	v := domain.NewValidationErrors()

	if strings.TrimSpace(d.Name) == "" {
		v.Add("name", "offer name is required")
	}

	if d.Type == "" {
		v.Add("type", "offer type is required")
	} else if !d.Type.Valid() {
		v.Add("type", "unknown offer type")
	} else if err := d.Config.Validate(d.Type); err != nil {
		v.Add("config", err.Error())
	}

	if d.StartDate == "" {
		v.Add("startDate", "start date is required")
	} else if _, err := domain.ParseDate(d.StartDate); err != nil {
		v.Add("startDate", "start date must be YYYY-MM-DD")
	}
	if d.EndDate == "" {
		v.Add("endDate", "end date is required")
	} else if _, err := domain.ParseDate(d.EndDate); err != nil {
		v.Add("endDate", "end date must be YYYY-MM-DD")
	}
	if v.Empty() {
		// The window is inclusive on both ends, so equal dates are fine.
		start, _ := domain.ParseDate(d.StartDate)
		end, _ := domain.ParseDate(d.EndDate)
		if end.Before(start) {
			v.Add("endDate", "end date must not be before start date")
		}
	}

	return v.OrNil()
}

// PreviewPrice is the optimistic client-side preview of price with offer
// applied, shown on the product detail page. The authoritative price always
// comes from the backend at checkout. Buy-x-get-y doesn't change the unit
// price, so the preview leaves it untouched.
func PreviewPrice(price float64, o domain.Offer) float64 {
	switch {
	case o.Config.Percentage != nil:
		price = price - price*o.Config.Percentage.Percentage/100
	case o.Config.FlatAmount != nil:
		price = price - o.Config.FlatAmount.DiscountAmount
	}
	if price < 0 {
		return 0
	}
	return price
}

// offerAPI is the slice of the backend client this service needs.
type offerAPI interface {
	ListOffers(ctx context.Context) ([]domain.Offer, error)
	CreateOffer(ctx context.Context, o domain.Offer) (*domain.Offer, error)
	UpdateOffer(ctx context.Context, id string, o domain.Offer) (*domain.Offer, error)
	SoftDeleteOffer(ctx context.Context, id string) error
}

type Service struct {
	api    offerAPI
	store  *store.Store
	logger *zap.Logger
}

func New(api offerAPI, st *store.Store, logger *zap.Logger) *Service {
	return &Service{api: api, store: st, logger: logger}
}

// List refreshes the cached offer list from the backend, replacing it
// wholesale on success.
func (s *Service) List(ctx context.Context) ([]domain.Offer, error) {
	s.store.Dispatch(store.OffersRequested{})
	offers, err := s.api.ListOffers(ctx)
	if err != nil {
		s.store.Dispatch(store.OffersFailed{Err: err.Error()})
		return nil, err
	}
	s.store.Dispatch(store.OffersLoaded{Offers: offers})
	return offers, nil
}

// Create validates the draft, submits it, and records the created offer.
func (s *Service) Create(ctx context.Context, d Draft) (*domain.Offer, error) {
	if err := ValidateDraft(d); err != nil {
		return nil, err
	}

	created, err := s.api.CreateOffer(ctx, domain.Offer{
		Name:      strings.TrimSpace(d.Name),
		Type:      d.Type,
		Priority:  d.Priority,
		Config:    d.Config,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
	})
	if err != nil {
		s.store.Dispatch(store.OfferCreateFailed{Err: err.Error()})
		return nil, err
	}

	s.store.Dispatch(store.OfferCreated{Offer: *created})
	s.logger.Info("offer created",
		zap.String("offerId", created.ID),
		zap.String("type", string(created.Type)))
	return created, nil
}

// Update validates the edited draft, replaces the offer on the backend, and
// refreshes the cached list so the edit is visible immediately.
func (s *Service) Update(ctx context.Context, id string, d Draft) (*domain.Offer, error) {
	if err := ValidateDraft(d); err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateOffer(ctx, id, domain.Offer{
		Name:      strings.TrimSpace(d.Name),
		Type:      d.Type,
		Priority:  d.Priority,
		Config:    d.Config,
		StartDate: d.StartDate,
		EndDate:   d.EndDate,
	})
	if err != nil {
		s.store.Dispatch(store.OfferCreateFailed{Err: err.Error()})
		return nil, err
	}

	if _, err := s.List(ctx); err != nil {
		s.logger.Warn("offer list refresh after update failed", zap.Error(err))
	}
	s.logger.Info("offer updated", zap.String("offerId", id))
	return updated, nil
}

// Delete soft-deletes the offer on the backend and refreshes the cached list.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.api.SoftDeleteOffer(ctx, id); err != nil {
		return err
	}
	if _, err := s.List(ctx); err != nil {
		s.logger.Warn("offer list refresh after delete failed", zap.Error(err))
	}
	s.logger.Info("offer deleted", zap.String("offerId", id))
	return nil
}

// Resolve joins a product's linked offer ids against the cached offer list.
// Unknown ids are omitted, matching the cart join's staleness tolerance.
func Resolve(ids []string, offers []domain.Offer) []domain.Offer {
	out := make([]domain.Offer, 0, len(ids))
	for _, id := range ids {
		for i := range offers {
			if offers[i].ID == id {
				out = append(out, offers[i])
				break
			}
		}
	}
	return out
}
