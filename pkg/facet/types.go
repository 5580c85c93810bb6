package facet

import (
	"github.com/matst80/diecast-finder/pkg/sorting"
	"github.com/matst80/diecast-finder/pkg/types"
)

type OptionValue struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// JsonFacet is one facet with its available values, in option order.
type JsonFacet struct {
	*types.BaseField
	Selected string        `json:"selected,omitempty"`
	Values   []OptionValue `json:"values"`
}

func sortValues(values []string) []string {
	return sorting.SortValues(values)
}
