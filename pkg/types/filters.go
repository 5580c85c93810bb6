package types

import (
	"strconv"
	"strings"
)

// Selection holds one constraint per facet, empty or "All" means unconstrained.
type Selection struct {
	Brand        string `json:"brand" schema:"brand"`
	Manufacturer string `json:"manufacturer" schema:"manufacturer"`
	Category     string `json:"category" schema:"category"`
	Color        string `json:"color" schema:"color"`
}

type StringFilter struct {
	Id    FacetId `json:"id"`
	Value string  `json:"value"`
}

func NewSelection() Selection {
	return Selection{
		Brand:        AllValue,
		Manufacturer: AllValue,
		Category:     AllValue,
		Color:        AllValue,
	}
}

func (s *Selection) Get(id FacetId) string {
	switch id {
	case FacetBrand:
		return s.Brand
	case FacetManufacturer:
		return s.Manufacturer
	case FacetCategory:
		return s.Category
	case FacetColor:
		return s.Color
	}
	return ""
}

func (s *Selection) Set(id FacetId, value string) error {
	switch id {
	case FacetBrand:
		s.Brand = value
	case FacetManufacturer:
		s.Manufacturer = value
	case FacetCategory:
		s.Category = value
	case FacetColor:
		s.Color = value
	default:
		return ErrUnknownFacet
	}
	return nil
}

// Normalize replaces empty values with "All". Other values are kept
// verbatim since facet values match exactly as stored in the catalog.
func (s *Selection) Normalize() {
	for _, f := range AllFacets {
		if s.Get(f.Id) == "" {
			_ = s.Set(f.Id, AllValue)
		}
	}
}

// StringFilters lists the constrained facets only.
func (s *Selection) StringFilters() []StringFilter {
	ret := make([]StringFilter, 0, len(AllFacets))
	for _, f := range AllFacets {
		v := s.Get(f.Id)
		if IsUnconstrained(v) {
			continue
		}
		ret = append(ret, StringFilter{Id: f.Id, Value: v})
	}
	return ret
}

func (s *Selection) IsEmpty() bool {
	return len(s.StringFilters()) == 0
}

func (s *Selection) HasField(id FacetId) bool {
	return !IsUnconstrained(s.Get(id))
}

// CacheKey is a canonical representation, equal selections give equal keys.
func (s *Selection) CacheKey() string {
	var sb strings.Builder
	for i, f := range AllFacets {
		if i > 0 {
			sb.WriteByte('|')
		}
		v := s.Get(f.Id)
		if IsUnconstrained(v) {
			v = AllValue
		}
		sb.WriteString(f.Key)
		sb.WriteByte('=')
		sb.WriteString(strconv.Quote(v))
	}
	return sb.String()
}

// FilterOptions is the derived per facet list of available values.
type FilterOptions struct {
	Brands        []string `json:"brands"`
	Manufacturers []string `json:"manufacturers"`
	Categories    []string `json:"categories"`
	Colors        []string `json:"colors"`
}

func (o *FilterOptions) Get(id FacetId) []string {
	switch id {
	case FacetBrand:
		return o.Brands
	case FacetManufacturer:
		return o.Manufacturers
	case FacetCategory:
		return o.Categories
	case FacetColor:
		return o.Colors
	}
	return nil
}

// Matches evaluates the selection against a single model without an index.
func (s *Selection) Matches(m *DiecastModel) bool {
	for _, f := range s.StringFilters() {
		if f.Id == FacetColor {
			if !m.HasColor(f.Value) {
				return false
			}
			continue
		}
		v, _ := m.GetStringFieldValue(f.Id)
		if v != f.Value {
			return false
		}
	}
	return true
}
