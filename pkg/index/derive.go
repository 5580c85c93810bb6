package index

import (
	"github.com/matst80/diecast-finder/pkg/facet"
	"github.com/matst80/diecast-finder/pkg/sorting"
	"github.com/matst80/diecast-finder/pkg/types"
)

// DeriveOptions computes the distinct values per facet of a catalog without
// building a full index.
func DeriveOptions(models []types.DiecastModel) types.FilterOptions {
	h := facet.NewFacetItemHandler()
	for idx := range models {
		_ = h.HandleItem(types.ItemId(idx), &models[idx])
	}
	return h.Options()
}

// FilterModels applies the selection to a catalog and returns the matching
// models in display order. The catalog is not modified.
func FilterModels(models []types.DiecastModel, selection types.Selection) []*types.DiecastModel {
	matching := make([]*types.DiecastModel, 0, len(models))
	for idx := range models {
		if selection.Matches(&models[idx]) {
			matching = append(matching, &models[idx])
		}
	}
	return sorting.SortModels(matching)
}
