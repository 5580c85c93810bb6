package types

import (
	"errors"
	"fmt"
	"strings"
)

type FacetId uint32

const (
	FacetBrand FacetId = iota + 1
	FacetManufacturer
	FacetCategory
	FacetColor
)

// AllValue is the selection value meaning "no constraint".
const AllValue = "All"

var ErrUnknownFacet = errors.New("unknown facet")

type BaseField struct {
	Id          FacetId `json:"id"`
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Priority    float64 `json:"prio,omitempty"`
	// MultiValued fields match when the selected value is a member of the
	// item's value list instead of equal to its single value.
	MultiValued bool `json:"multi,omitempty"`
}

// AllFacets in sidebar order.
var AllFacets = []*BaseField{
	{Id: FacetBrand, Key: "brand", Name: "Brand", Description: "Model brand", Priority: 400},
	{Id: FacetManufacturer, Key: "manufacturer", Name: "Manufacturer", Description: "Diecast manufacturer", Priority: 300},
	{Id: FacetCategory, Key: "category", Name: "Category", Description: "Rally, Racing, Supercar or Premium", Priority: 200},
	{Id: FacetColor, Key: "color", Name: "Color", Description: "Any of the model colors", Priority: 100, MultiValued: true},
}

func GetBaseField(id FacetId) (*BaseField, bool) {
	for _, f := range AllFacets {
		if f.Id == id {
			return f, true
		}
	}
	return nil, false
}

// ParseFacet resolves a facet from its key, case-insensitively.
func ParseFacet(key string) (FacetId, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, f := range AllFacets {
		if f.Key == k {
			return f.Id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFacet, key)
}

func (id FacetId) String() string {
	if f, ok := GetBaseField(id); ok {
		return f.Key
	}
	return fmt.Sprintf("facet(%d)", uint32(id))
}

// IsUnconstrained reports whether a selection value places no constraint on a facet.
func IsUnconstrained(value string) bool {
	return value == "" || value == AllValue
}
