package offer

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"shopfront/internal/domain"
	"shopfront/internal/store"
)

type stubOfferAPI struct {
	offers    []domain.Offer
	created   *domain.Offer
	err       error
	lastDraft domain.Offer
	calls     int
	deleted   []string
	updatedID string
}

func (s *stubOfferAPI) ListOffers(_ context.Context) ([]domain.Offer, error) {
	return s.offers, s.err
}

func (s *stubOfferAPI) CreateOffer(_ context.Context, o domain.Offer) (*domain.Offer, error) {
	s.calls++
	s.lastDraft = o
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubOfferAPI) UpdateOffer(_ context.Context, id string, o domain.Offer) (*domain.Offer, error) {
	s.updatedID = id
	s.lastDraft = o
	if s.err != nil {
		return nil, s.err
	}
	o.ID = id
	return &o, nil
}

func (s *stubOfferAPI) SoftDeleteOffer(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func validDraft() Draft {
	d := Draft{Name: "Weekend Special", Priority: 3, StartDate: "2026-01-01", EndDate: "2026-01-31"}
	d = d.SelectType(domain.OfferTypePercentage)
	d.Config.Percentage.Percentage = 20
	return d
}

func TestValidateDraftTypeUnsetBlocksSubmission(t *testing.T) {
	d := validDraft()
	d.Type = ""
	err := ValidateDraft(d)
	if err == nil {
		t.Fatal("expected validation error when type is unset")
	}
	v, ok := domain.AsValidationErrors(err)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if _, found := v.Fields["type"]; !found {
		t.Fatalf("expected type field error, got %v", v.Fields)
	}
}

func TestValidateDraftRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		field  string
	}{
		{"empty name", func(d *Draft) { d.Name = "  " }, "name"},
		{"unknown type", func(d *Draft) { d.Type = "MYSTERY" }, "type"},
		{"pct out of range", func(d *Draft) { d.Config.Percentage.Percentage = 120 }, "config"},
		{"bad start date", func(d *Draft) { d.StartDate = "01/01/2026" }, "startDate"},
		{"missing end date", func(d *Draft) { d.EndDate = "" }, "endDate"},
		{"inverted window", func(d *Draft) { d.EndDate = "2025-12-31" }, "endDate"},
	}
	for _, tc := range tests {
		d := validDraft()
		tc.mutate(&d)
		err := ValidateDraft(d)
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

func TestValidateDraftInclusiveWindow(t *testing.T) {
	d := validDraft()
	d.EndDate = d.StartDate
	if err := ValidateDraft(d); err != nil {
		t.Fatalf("equal start/end dates must be valid: %v", err)
	}
}

func TestSelectTypeResetsConfig(t *testing.T) {
	d := validDraft() // percentage 20
	d = d.SelectType(domain.OfferTypeFlatAmount)

	if d.Config.Percentage != nil {
		t.Fatal("percentage config leaked across type switch")
	}
	if d.Config.FlatAmount == nil {
		t.Fatal("flat-amount config not initialized")
	}
}

func TestPreviewPricePercentage(t *testing.T) {
	// 20% off a $150 item previews at $120.
	o := domain.Offer{Type: domain.OfferTypePercentage,
		Config: domain.OfferConfig{Percentage: &domain.PercentageConfig{Percentage: 20}}}
	if got := PreviewPrice(150, o); got != 120 {
		t.Fatalf("expected 120, got %v", got)
	}
}

func TestPreviewPriceFlatFloorsAtZero(t *testing.T) {
	o := domain.Offer{Type: domain.OfferTypeFlatAmount,
		Config: domain.OfferConfig{FlatAmount: &domain.FlatAmountConfig{DiscountAmount: 30}}}
	if got := PreviewPrice(25, o); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
	if got := PreviewPrice(100, o); got != 70 {
		t.Fatalf("expected 70, got %v", got)
	}
}

func TestPreviewPriceBuyXGetYUnchanged(t *testing.T) {
	o := domain.Offer{Type: domain.OfferTypeBuyXGetY,
		Config: domain.OfferConfig{BuyXGetY: &domain.BuyXGetYConfig{BuyQuantity: 2, GetQuantity: 1}}}
	if got := PreviewPrice(99, o); got != 99 {
		t.Fatalf("expected unit price unchanged, got %v", got)
	}
}

func TestCreateInvalidDraftNeverHitsBackend(t *testing.T) {
	api := &stubOfferAPI{}
	svc := New(api, store.New(), zap.NewNop())

	d := validDraft()
	d.Type = ""
	if _, err := svc.Create(context.Background(), d); err == nil {
		t.Fatal("expected error")
	}
	if api.calls != 0 {
		t.Fatal("backend must not be called for an invalid draft")
	}
}

func TestCreateHappyPathRecordsOffer(t *testing.T) {
	created := domain.Offer{ID: "o1", Name: "Weekend Special", Type: domain.OfferTypePercentage,
		Config: domain.OfferConfig{Percentage: &domain.PercentageConfig{Percentage: 20}}}
	api := &stubOfferAPI{created: &created}
	st := store.New()
	svc := New(api, st, zap.NewNop())

	got, err := svc.Create(context.Background(), validDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "o1" {
		t.Fatalf("unexpected offer: %+v", got)
	}
	offers := st.Offers()
	if len(offers) != 1 || offers[0].ID != "o1" {
		t.Fatalf("offer not recorded in store: %+v", offers)
	}
}

func TestUpdateInvalidDraftNeverHitsBackend(t *testing.T) {
	api := &stubOfferAPI{}
	svc := New(api, store.New(), zap.NewNop())

	d := validDraft()
	d.Config.Percentage.Percentage = 200
	if _, err := svc.Update(context.Background(), "o1", d); err == nil {
		t.Fatal("expected error")
	}
	if api.updatedID != "" {
		t.Fatal("backend must not be called for an invalid draft")
	}
}

func TestUpdateRefreshesCache(t *testing.T) {
	api := &stubOfferAPI{offers: []domain.Offer{{ID: "o1", Name: "Renamed"}}}
	st := store.New()
	svc := New(api, st, zap.NewNop())

	updated, err := svc.Update(context.Background(), "o1", validDraft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != "o1" || api.updatedID != "o1" {
		t.Fatalf("unexpected update target: %+v", updated)
	}
	offers := st.Offers()
	if len(offers) != 1 || offers[0].Name != "Renamed" {
		t.Fatalf("cache not refreshed after update: %+v", offers)
	}
}

func TestDeleteRefreshesCache(t *testing.T) {
	api := &stubOfferAPI{}
	st := store.New()
	st.Dispatch(store.OffersLoaded{Offers: []domain.Offer{{ID: "o1"}}})
	svc := New(api, st, zap.NewNop())

	if err := svc.Delete(context.Background(), "o1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != "o1" {
		t.Fatalf("soft delete not forwarded: %+v", api.deleted)
	}
	if offers := st.Offers(); len(offers) != 0 {
		t.Fatalf("cache not refreshed after delete: %+v", offers)
	}
}

func TestListReplacesCacheWholesale(t *testing.T) {
	st := store.New()
	st.Dispatch(store.OffersLoaded{Offers: []domain.Offer{{ID: "stale"}}})

	api := &stubOfferAPI{offers: []domain.Offer{{ID: "fresh"}}}
	svc := New(api, st, zap.NewNop())

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	offers := st.Offers()
	if len(offers) != 1 || offers[0].ID != "fresh" {
		t.Fatalf("cache not replaced: %+v", offers)
	}
}

func TestResolveOmitsUnknownIDs(t *testing.T) {
	offers := []domain.Offer{{ID: "o1"}, {ID: "o2"}}
	got := Resolve([]string{"o2", "missing", "o1"}, offers)
	if len(got) != 2 || got[0].ID != "o2" || got[1].ID != "o1" {
		t.Fatalf("unexpected resolution: %+v", got)
	}
}
