package types

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type ItemId uint32

type Category string

const (
	CategoryRally    Category = "Rally"
	CategoryRacing   Category = "Racing"
	CategorySupercar Category = "Supercar"
	CategoryPremium  Category = "Premium"
)

var Categories = []Category{CategoryRally, CategoryRacing, CategorySupercar, CategoryPremium}

func (c Category) IsValid() bool {
	switch c {
	case CategoryRally, CategoryRacing, CategorySupercar, CategoryPremium:
		return true
	}
	return false
}

var (
	ErrInvalidModel = errors.New("invalid model")
	ErrDuplicateId  = errors.New("duplicate model id")
)

// DiecastModel is one catalog entry. Records are shared by pointer once the
// index is built and must be treated as read-only.
type DiecastModel struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	Year         int      `json:"year"`
	Brand        string   `json:"brand"`
	Manufacturer string   `json:"manufacturer"`
	Category     Category `json:"category"`
	CarNumber    *int     `json:"carNumber,omitempty"`
	CarDriver    string   `json:"carDriver,omitempty"`
	Color        []string `json:"color"`
	Hex          []string `json:"hex,omitempty"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	ImageUrl     string   `json:"imageUrl,omitempty"`
	Scale        string   `json:"scale,omitempty"`
}

// GetStringFieldValue returns the value of a single valued facet.
func (m *DiecastModel) GetStringFieldValue(id FacetId) (string, bool) {
	switch id {
	case FacetBrand:
		return m.Brand, m.Brand != ""
	case FacetManufacturer:
		return m.Manufacturer, m.Manufacturer != ""
	case FacetCategory:
		return string(m.Category), m.Category != ""
	}
	return "", false
}

// GetStringsFieldValue returns every value the model holds for a facet,
// single valued facets yield a one element slice.
func (m *DiecastModel) GetStringsFieldValue(id FacetId) ([]string, bool) {
	if id == FacetColor {
		return m.Color, len(m.Color) > 0
	}
	v, ok := m.GetStringFieldValue(id)
	if !ok {
		return nil, false
	}
	return []string{v}, true
}

func (m *DiecastModel) HasColor(color string) bool {
	return slices.Contains(m.Color, color)
}

func (m *DiecastModel) Validate() error {
	if strings.TrimSpace(m.Id) == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidModel)
	}
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: model %q has no name", ErrInvalidModel, m.Id)
	}
	if !m.Category.IsValid() {
		return fmt.Errorf("%w: model %q has unknown category %q", ErrInvalidModel, m.Id, m.Category)
	}
	hasColor := false
	for _, c := range m.Color {
		if strings.TrimSpace(c) != "" {
			hasColor = true
			break
		}
	}
	if !hasColor {
		return fmt.Errorf("%w: model %q has no color", ErrInvalidModel, m.Id)
	}
	return nil
}

// ValidateCatalog checks every record and the uniqueness of ids.
func ValidateCatalog(models []DiecastModel) error {
	seen := make(map[string]int, len(models))
	for i := range models {
		m := &models[i]
		if err := m.Validate(); err != nil {
			return fmt.Errorf("catalog entry %d: %w", i, err)
		}
		if prev, ok := seen[m.Id]; ok {
			return fmt.Errorf("catalog entry %d: %w %q (first seen at %d)", i, ErrDuplicateId, m.Id, prev)
		}
		seen[m.Id] = i
	}
	return nil
}
