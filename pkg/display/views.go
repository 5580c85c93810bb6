package display

import (
	"net/url"

	"github.com/matst80/diecast-finder/pkg/types"
)

// Card is the list projection of a model.
type Card struct {
	Id            string         `json:"id"`
	Name          string         `json:"name"`
	Year          int            `json:"year"`
	Brand         string         `json:"brand"`
	BrandLogo     string         `json:"brandLogo"`
	Manufacturer  string         `json:"manufacturer"`
	Category      types.Category `json:"category"`
	CategoryColor string         `json:"categoryColor"`
	Thumbnail     string         `json:"thumbnail,omitempty"`
	ThumbnailAlt  string         `json:"thumbnailAlt"`
	CarNumber     string         `json:"carNumber,omitempty"`
	CarDriver     string         `json:"carDriver,omitempty"`
	Swatch        string         `json:"swatch,omitempty"`
}

// Detail is the detail projection of a model with every fallback applied.
type Detail struct {
	Id           string   `json:"id"`
	Name         string   `json:"name"`
	ImageUrl     string   `json:"imageUrl,omitempty"`
	Brand        string   `json:"brand"`
	Manufacturer string   `json:"manufacturer"`
	Category     string   `json:"category"`
	Year         string   `json:"year"`
	Colors       []string `json:"colors"`
	Scale        string   `json:"scale"`
	Driver       string   `json:"driver"`
	CarNumber    string   `json:"carNumber"`
}

func BrandLogo(brand string) string {
	return "/brands/" + url.PathEscape(brand) + ".svg"
}

func CarNumberLabel(n *int) string {
	if n == nil {
		return ""
	}
	return "№ " + Value(n)
}

func NewCard(m *types.DiecastModel) Card {
	return Card{
		Id:            m.Id,
		Name:          m.Name,
		Year:          m.Year,
		Brand:         m.Brand,
		BrandLogo:     BrandLogo(m.Brand),
		Manufacturer:  m.Manufacturer,
		Category:      m.Category,
		CategoryColor: CategoryColor(m.Category),
		Thumbnail:     m.Thumbnail,
		ThumbnailAlt:  m.Name + " (" + Value(m.Year) + ")",
		CarNumber:     CarNumberLabel(m.CarNumber),
		CarDriver:     m.CarDriver,
		Swatch:        Swatch(m.Hex),
	}
}

func NewCards(models []*types.DiecastModel) []Card {
	ret := make([]Card, len(models))
	for i, m := range models {
		ret[i] = NewCard(m)
	}
	return ret
}

func NewDetail(m *types.DiecastModel) Detail {
	return Detail{
		Id:           m.Id,
		Name:         m.Name,
		ImageUrl:     m.ImageUrl,
		Brand:        Value(m.Brand),
		Manufacturer: Value(m.Manufacturer),
		Category:     Value(m.Category),
		Year:         Value(m.Year),
		Colors:       DetailColors(m.Hex),
		Scale:        Scale(m.Scale),
		Driver:       Value(m.CarDriver),
		CarNumber:    Value(m.CarNumber),
	}
}

// Summary is the header and empty state information of a listing.
type Summary struct {
	Title    string `json:"title"`
	Total    int    `json:"total"`
	Filtered int    `json:"filtered"`
	Empty    string `json:"empty,omitempty"`
}

func NewSummary(title string, total, filtered int) Summary {
	s := Summary{
		Title:    title,
		Total:    total,
		Filtered: filtered,
	}
	if filtered == 0 {
		s.Empty = EmptyMessage
	}
	return s
}
