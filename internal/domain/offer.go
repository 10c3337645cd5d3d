package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// OfferType is the closed set of promotional rule kinds the backend accepts.
type OfferType string

const (
	OfferTypeFlatAmount OfferType = "FLAT_AMOUNT"
	OfferTypeBuyXGetY   OfferType = "BUY_X_GET_Y"
	OfferTypePercentage OfferType = "PERCENTAGE"
)

// Valid reports whether t is one of the known offer types.
func (t OfferType) Valid() bool {
	switch t {
	case OfferTypeFlatAmount, OfferTypeBuyXGetY, OfferTypePercentage:
		return true
	}
	return false
}

type FlatAmountConfig struct {
	DiscountAmount float64 `json:"discountAmount"`
}

type BuyXGetYConfig struct {
	BuyQuantity int `json:"buyQuantity"`
	GetQuantity int `json:"getQuantity"`
}

type PercentageConfig struct {
	Percentage float64 `json:"percentage"`
}

// OfferConfig is a tagged union over the per-type configuration shapes.
// Exactly one variant is populated; the active variant is the one matching
// the owning Offer's Type. Marshalling emits only the active variant's keys,
// so a percentage value can never leak into a flat-amount payload.
type OfferConfig struct {
	FlatAmount *FlatAmountConfig `json:"-"`
	BuyXGetY   *BuyXGetYConfig   `json:"-"`
	Percentage *PercentageConfig `json:"-"`
}

// DefaultConfigFor returns the zero-valued config shape for t. Selecting a
// type is a hard reset: fields belonging to any previously selected type are
// discarded, never merged.
func DefaultConfigFor(t OfferType) OfferConfig {
	switch t {
	case OfferTypeFlatAmount:
		return OfferConfig{FlatAmount: &FlatAmountConfig{}}
	case OfferTypeBuyXGetY:
		return OfferConfig{BuyXGetY: &BuyXGetYConfig{}}
	case OfferTypePercentage:
		return OfferConfig{Percentage: &PercentageConfig{}}
	}
	return OfferConfig{}
}

// MarshalJSON emits the active variant flattened, or {} when none is set.
func (c OfferConfig) MarshalJSON() ([]byte, error) {
	switch {
	case c.FlatAmount != nil:
		return json.Marshal(c.FlatAmount)
	case c.BuyXGetY != nil:
		return json.Marshal(c.BuyXGetY)
	case c.Percentage != nil:
		return json.Marshal(c.Percentage)
	}
	return []byte("{}"), nil
}

// DecodeConfig parses raw into the variant dictated by t. Unknown fields are
// rejected so a config carrying keys from the wrong variant fails instead of
// being silently truncated.
func DecodeConfig(t OfferType, raw json.RawMessage) (OfferConfig, error) {
	if len(raw) == 0 {
		return DefaultConfigFor(t), nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	switch t {
	case OfferTypeFlatAmount:
		var v FlatAmountConfig
		if err := dec.Decode(&v); err != nil {
			return OfferConfig{}, fmt.Errorf("decode flat-amount config: %w", err)
		}
		return OfferConfig{FlatAmount: &v}, nil
	case OfferTypeBuyXGetY:
		var v BuyXGetYConfig
		if err := dec.Decode(&v); err != nil {
			return OfferConfig{}, fmt.Errorf("decode buy-x-get-y config: %w", err)
		}
		return OfferConfig{BuyXGetY: &v}, nil
	case OfferTypePercentage:
		var v PercentageConfig
		if err := dec.Decode(&v); err != nil {
			return OfferConfig{}, fmt.Errorf("decode percentage config: %w", err)
		}
		return OfferConfig{Percentage: &v}, nil
	}
	return OfferConfig{}, fmt.Errorf("unknown offer type %q", t)
}

// Validate checks that the config shape matches t and that the numeric
// fields are in range.
func (c OfferConfig) Validate(t OfferType) error {
	switch t {
	case OfferTypeFlatAmount:
		if c.FlatAmount == nil {
			return fmt.Errorf("flat-amount config missing")
		}
		if c.BuyXGetY != nil || c.Percentage != nil {
			return fmt.Errorf("config carries fields of another offer type")
		}
		if c.FlatAmount.DiscountAmount < 0 {
			return fmt.Errorf("discountAmount must be >= 0")
		}
	case OfferTypeBuyXGetY:
		if c.BuyXGetY == nil {
			return fmt.Errorf("buy-x-get-y config missing")
		}
		if c.FlatAmount != nil || c.Percentage != nil {
			return fmt.Errorf("config carries fields of another offer type")
		}
		if c.BuyXGetY.BuyQuantity < 1 {
			return fmt.Errorf("buyQuantity must be >= 1")
		}
		if c.BuyXGetY.GetQuantity < 1 {
			return fmt.Errorf("getQuantity must be >= 1")
		}
	case OfferTypePercentage:
		if c.Percentage == nil {
			return fmt.Errorf("percentage config missing")
		}
		if c.FlatAmount != nil || c.BuyXGetY != nil {
			return fmt.Errorf("config carries fields of another offer type")
		}
		if p := c.Percentage.Percentage; p <= 0 || p > 100 {
			return fmt.Errorf("percentage must be in (0,100]")
		}
	default:
		return fmt.Errorf("unknown offer type %q", t)
	}
	return nil
}

// Offer is a promotional rule with a type-specific configuration, valid over
// an inclusive start/end date window.
type Offer struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Type      OfferType   `json:"type"`
	Priority  int         `json:"priority"`
	Config    OfferConfig `json:"config"`
	StartDate string      `json:"startDate"`
	EndDate   string      `json:"endDate"`
	Active    bool        `json:"isActive"`
}

// dateLayout is the wire format used by the admin forms for offer windows.
const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD offer window bound.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// UnmarshalJSON decodes an offer, resolving the config variant from the
// sibling type tag.
func (o *Offer) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID        string          `json:"id"`
		Name      string          `json:"name"`
		Type      OfferType       `json:"type"`
		Priority  int             `json:"priority"`
		Config    json.RawMessage `json:"config"`
		StartDate string          `json:"startDate"`
		EndDate   string          `json:"endDate"`
		Active    bool            `json:"isActive"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	cfg := OfferConfig{}
	if aux.Type.Valid() {
		var err error
		cfg, err = DecodeConfig(aux.Type, aux.Config)
		if err != nil {
			return err
		}
	}
	*o = Offer{
		ID:        aux.ID,
		Name:      aux.Name,
		Type:      aux.Type,
		Priority:  aux.Priority,
		Config:    cfg,
		StartDate: aux.StartDate,
		EndDate:   aux.EndDate,
		Active:    aux.Active,
	}
	return nil
}
