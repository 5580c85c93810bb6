package server

import (
	"github.com/matst80/diecast-finder/pkg/common/jsoncompat"
	"github.com/matst80/diecast-finder/pkg/display"
	"github.com/matst80/diecast-finder/pkg/facet"
	"github.com/matst80/diecast-finder/pkg/types"
)

type jsonEncoder = jsoncompat.Encoder

type OptionsResponse struct {
	types.FilterOptions
	Facets []*facet.JsonFacet `json:"facets"`
}

type ModelsResponse struct {
	display.Summary
	Selection types.Selection `json:"selection"`
	Items     []display.Card  `json:"items"`
}

type SelectionResponse struct {
	ModelsResponse
	Detail *display.Detail `json:"detail,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SetFacetRequest struct {
	Value string `json:"value"`
}
