package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPackage возвращается, когда запись пакета нельзя разобрать
var ErrInvalidPackage = errors.New("domain: invalid package record")

// PackageKind category of a charter package.
type PackageKind string

const (
	PackageRecreation PackageKind = "recreation"
	PackageFishing    PackageKind = "fishing"
	PackageBoat       PackageKind = "boat"
)

// IsValid reports whether the kind is known.
func (k PackageKind) IsValid() bool {
	return k == PackageRecreation || k == PackageFishing || k == PackageBoat
}

// PricingKind tells which pricing variant a package uses.
type PricingKind string

const (
	PricingNone        PricingKind = ""
	PricingPerPerson   PricingKind = "per_person"
	PricingPrivateBoat PricingKind = "private_boat"
	PricingRange       PricingKind = "range"
)

// Pricing holds exactly one variant selected by Kind; fields of other variants stay zero.
type Pricing struct {
	Kind             PricingKind
	AdultPrice       float64
	KidPrice         *float64
	PrivateBoatPrice float64
	PriceMin         float64
	PriceMax         float64
}

func PerPersonPricing(adult float64, kid *float64) Pricing {
	return Pricing{Kind: PricingPerPerson, AdultPrice: adult, KidPrice: kid}
}

func PrivateBoatPricing(price float64) Pricing {
	return Pricing{Kind: PricingPrivateBoat, PrivateBoatPrice: price}
}

func RangePricing(lo, hi float64) Pricing {
	return Pricing{Kind: PricingRange, PriceMin: lo, PriceMax: hi}
}

// BasePrice is the amount a booking starts from: the private boat price,
// the adult price, or the lower bound of a range.
func (p Pricing) BasePrice() float64 {
	switch p.Kind {
	case PricingPrivateBoat:
		return p.PrivateBoatPrice
	case PricingPerPerson:
		return p.AdultPrice
	case PricingRange:
		return p.PriceMin
	default:
		return 0
	}
}

// PackageOption catalog entry served by GET /api/packages.
type PackageOption struct {
	ID          string
	Title       string
	Name        string
	Type        PackageKind
	Description string
	Duration    string
	Capacity    int
	Pricing     Pricing
	Services    []string
	Techniques  []string
	Distance    string
	Image       string

	// PricingConflict is set by the decoder when the record carried more than
	// one pricing variant and all but one were dropped.
	PricingConflict bool
}

// DisplayName title, name or description, whichever is set first.
func (p PackageOption) DisplayName() string {
	switch {
	case p.Title != "":
		return p.Title
	case p.Name != "":
		return p.Name
	default:
		return p.Description
	}
}

// TotalAmount base package price plus the add-ons. A nil package contributes 0.
// Unknown add-on ids contribute 0 and are returned for reporting.
func TotalAmount(pkg *PackageOption, addOns []string) (float64, []string) {
	total, unknown := AddOnsTotal(addOns)
	if pkg != nil {
		total += pkg.Pricing.BasePrice()
	}
	return total, unknown
}

type priceRangeWire struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type packageWire struct {
	ID               json.RawMessage `json:"id"`
	Title            string          `json:"title,omitempty"`
	Name             string          `json:"name,omitempty"`
	Type             PackageKind     `json:"type,omitempty"`
	Description      string          `json:"description,omitempty"`
	Duration         string          `json:"duration,omitempty"`
	Capacity         int             `json:"capacity,omitempty"`
	AdultPrice       *float64        `json:"adultPrice,omitempty"`
	KidPrice         *float64        `json:"kidPrice,omitempty"`
	PrivateBoatPrice *float64        `json:"privateBoatPrice,omitempty"`
	PriceMin         *float64        `json:"priceMin,omitempty"`
	PriceMax         *float64        `json:"priceMax,omitempty"`
	PriceRange       *priceRangeWire `json:"priceRange,omitempty"`
	Price            *float64        `json:"price,omitempty"`
	Services         []string        `json:"services,omitempty"`
	Techniques       []string        `json:"techniques,omitempty"`
	Distance         string          `json:"distance,omitempty"`
	Image            string          `json:"image,omitempty"`
}

// MarshalJSON flattens the pricing variant into its wire fields.
func (p PackageOption) MarshalJSON() ([]byte, error) {
	id, err := json.Marshal(p.ID)
	if err != nil {
		return nil, err
	}

	w := packageWire{
		ID:          id,
		Title:       p.Title,
		Name:        p.Name,
		Type:        p.Type,
		Description: p.Description,
		Duration:    p.Duration,
		Capacity:    p.Capacity,
		Services:    p.Services,
		Techniques:  p.Techniques,
		Distance:    p.Distance,
		Image:       p.Image,
	}
	if w.Services == nil {
		w.Services = []string{}
	}

	switch p.Pricing.Kind {
	case PricingPerPerson:
		adult := p.Pricing.AdultPrice
		w.AdultPrice = &adult
		w.KidPrice = p.Pricing.KidPrice
	case PricingPrivateBoat:
		price := p.Pricing.PrivateBoatPrice
		w.PrivateBoatPrice = &price
	case PricingRange:
		lo, hi := p.Pricing.PriceMin, p.Pricing.PriceMax
		w.PriceMin = &lo
		w.PriceMax = &hi
		w.PriceRange = &priceRangeWire{Min: lo, Max: hi}
	}

	return json.Marshal(w)
}

// UnmarshalJSON accepts string or numeric ids, priceRange or priceMin/priceMax,
// and the legacy "price" field (treated as the adult price). Missing fields are
// left empty.
func (p *PackageOption) UnmarshalJSON(data []byte) error {
	var w packageWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}

	id, err := decodeID(w.ID)
	if err != nil {
		return err
	}

	*p = PackageOption{
		ID:          id,
		Title:       w.Title,
		Name:        w.Name,
		Type:        w.Type,
		Description: w.Description,
		Duration:    w.Duration,
		Capacity:    w.Capacity,
		Services:    w.Services,
		Techniques:  w.Techniques,
		Distance:    w.Distance,
		Image:       w.Image,
	}

	var variants []Pricing
	if w.PrivateBoatPrice != nil {
		variants = append(variants, PrivateBoatPricing(*w.PrivateBoatPrice))
	}
	switch {
	case w.AdultPrice != nil:
		variants = append(variants, PerPersonPricing(*w.AdultPrice, w.KidPrice))
	case w.Price != nil:
		variants = append(variants, PerPersonPricing(*w.Price, w.KidPrice))
	}
	switch {
	case w.PriceRange != nil:
		variants = append(variants, RangePricing(w.PriceRange.Min, w.PriceRange.Max))
	case w.PriceMin != nil:
		hi := *w.PriceMin
		if w.PriceMax != nil {
			hi = *w.PriceMax
		}
		variants = append(variants, RangePricing(*w.PriceMin, hi))
	}

	if len(variants) > 0 {
		p.Pricing = variants[0]
		p.PricingConflict = len(variants) > 1
	}
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if i, err := n.Int64(); err == nil {
			return strconv.FormatInt(i, 10), nil
		}
		return n.String(), nil
	}

	return "", fmt.Errorf("%w: unsupported id %s", ErrInvalidPackage, string(raw))
}
