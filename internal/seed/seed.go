package seed

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"shopfront/internal/domain"
)

type api interface {
	ListOffers(ctx context.Context) ([]domain.Offer, error)
	CreateOffer(ctx context.Context, o domain.Offer) (*domain.Offer, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error)
}

type offerSeed struct {
	Name      string
	Type      domain.OfferType
	Priority  int
	Config    domain.OfferConfig
	StartDate string
	EndDate   string
}

type productSeed struct {
	Name      string
	Price     float64
	Quantity  int
	OfferKeys []string
}

// Apply pushes basic demo data for manual testing. It is idempotent by name:
// offers and products that already exist on the backend are left alone.
func Apply(ctx context.Context, client api, logger *zap.Logger) error {
	offers := []offerSeed{
		{
			Name:      "Five Off Everything",
			Type:      domain.OfferTypeFlatAmount,
			Priority:  1,
			Config:    domain.OfferConfig{FlatAmount: &domain.FlatAmountConfig{DiscountAmount: 5}},
			StartDate: "2026-01-01",
			EndDate:   "2026-12-31",
		},
		{
			Name:      "Buy Two Get One",
			Type:      domain.OfferTypeBuyXGetY,
			Priority:  2,
			Config:    domain.OfferConfig{BuyXGetY: &domain.BuyXGetYConfig{BuyQuantity: 2, GetQuantity: 1}},
			StartDate: "2026-01-01",
			EndDate:   "2026-12-31",
		},
		{
			Name:      "Summer Twenty Percent",
			Type:      domain.OfferTypePercentage,
			Priority:  3,
			Config:    domain.OfferConfig{Percentage: &domain.PercentageConfig{Percentage: 20}},
			StartDate: "2026-06-01",
			EndDate:   "2026-08-31",
		},
	}

	offerIDs, err := ensureOffers(ctx, client, logger, offers)
	if err != nil {
		return fmt.Errorf("ensure offers: %w", err)
	}

	products := []productSeed{
		{Name: "Demo T-Shirt", Price: 19.99, Quantity: 50, OfferKeys: []string{"Five Off Everything"}},
		{Name: "Demo Mug", Price: 12.99, Quantity: 80, OfferKeys: []string{"Buy Two Get One"}},
		{Name: "Demo Poster", Price: 8.50, Quantity: 120, OfferKeys: []string{"Summer Twenty Percent", "Five Off Everything"}},
		{Name: "Demo Stickers", Price: 3.25, Quantity: 300},
	}

	if err := ensureProducts(ctx, client, logger, products, offerIDs); err != nil {
		return fmt.Errorf("ensure products: %w", err)
	}

	return nil
}

func ensureOffers(ctx context.Context, client api, logger *zap.Logger, seeds []offerSeed) (map[string]string, error) {
	existing, err := client.ListOffers(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(existing))
	for _, o := range existing {
		byName[o.Name] = o.ID
	}

	for _, s := range seeds {
		if id, ok := byName[s.Name]; ok {
			logger.Info("offer already present", zap.String("name", s.Name), zap.String("id", id))
			continue
		}
		created, err := client.CreateOffer(ctx, domain.Offer{
			Name:      s.Name,
			Type:      s.Type,
			Priority:  s.Priority,
			Config:    s.Config,
			StartDate: s.StartDate,
			EndDate:   s.EndDate,
			Active:    true,
		})
		if err != nil {
			return nil, fmt.Errorf("create offer %s: %w", s.Name, err)
		}
		byName[s.Name] = created.ID
		logger.Info("offer created", zap.String("name", s.Name), zap.String("id", created.ID))
	}
	return byName, nil
}

func ensureProducts(ctx context.Context, client api, logger *zap.Logger, seeds []productSeed, offerIDs map[string]string) error {
	existing, err := client.ListProducts(ctx)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(existing))
	for _, p := range existing {
		present[p.Name] = true
	}

	for _, s := range seeds {
		if present[s.Name] {
			logger.Info("product already present", zap.String("name", s.Name))
			continue
		}
		var linked []string
		for _, key := range s.OfferKeys {
			id, ok := offerIDs[key]
			if !ok {
				return fmt.Errorf("product %s references unknown offer %q", s.Name, key)
			}
			linked = append(linked, id)
		}
		created, err := client.CreateProduct(ctx, domain.Product{
			Name:     s.Name,
			Price:    s.Price,
			Quantity: s.Quantity,
			Offers:   linked,
			Active:   true,
		})
		if err != nil {
			return fmt.Errorf("create product %s: %w", s.Name, err)
		}
		logger.Info("product created", zap.String("name", s.Name), zap.String("id", created.ID))
	}
	return nil
}
