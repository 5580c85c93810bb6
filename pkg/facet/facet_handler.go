package facet

import (
	"fmt"
	"sync"

	"github.com/matst80/diecast-finder/pkg/types"
)

// FacetItemHandler indexes the catalog per facet. It is filled once through
// HandleItem and read-only afterwards.
type FacetItemHandler struct {
	mu     sync.RWMutex
	Facets map[types.FacetId]*KeyField
	All    types.ItemList
	order  []types.FacetId
}

func NewFacetItemHandler(fields ...*types.BaseField) *FacetItemHandler {
	if len(fields) == 0 {
		fields = types.AllFacets
	}
	h := &FacetItemHandler{
		Facets: make(map[types.FacetId]*KeyField, len(fields)),
		All:    types.ItemList{},
		order:  make([]types.FacetId, 0, len(fields)),
	}
	for _, f := range fields {
		h.AddKeyField(f)
	}
	return h
}

func (h *FacetItemHandler) AddKeyField(field *types.BaseField) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.Facets[field.Id]; !ok {
		h.order = append(h.order, field.Id)
	}
	h.Facets[field.Id] = EmptyKeyValueField(field)
}

func (h *FacetItemHandler) GetKeyFacet(id types.FacetId) (*KeyField, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	f, ok := h.Facets[id]
	return f, ok
}

// HandleItem implements types.ItemHandler.
func (h *FacetItemHandler) HandleItem(id types.ItemId, item *types.DiecastModel) error {
	if item == nil {
		return fmt.Errorf("facet: nil item %d", id)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.All.AddId(id)
	for _, fieldId := range h.order {
		values, ok := item.GetStringsFieldValue(fieldId)
		if !ok {
			continue
		}
		h.Facets[fieldId].AddValueLink(values, id)
	}
	return nil
}

func (h *FacetItemHandler) values(id types.FacetId) []string {
	if f, ok := h.Facets[id]; ok {
		return f.Values()
	}
	return []string{}
}

// Options derives the distinct values per facet from every handled item.
func (h *FacetItemHandler) Options() types.FilterOptions {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return types.FilterOptions{
		Brands:        h.values(types.FacetBrand),
		Manufacturers: h.values(types.FacetManufacturer),
		Categories:    h.values(types.FacetCategory),
		Colors:        h.values(types.FacetColor),
	}
}

// HasValue reports whether any item holds value for the facet.
func (h *FacetItemHandler) HasValue(id types.FacetId, value string) bool {
	f, ok := h.GetKeyFacet(id)
	if !ok {
		return false
	}
	_, ok = f.Keys[value]
	return ok
}

// GetFacetsFromResult counts the values of every facet within ids. Values not
// present in ids are left out. A nil ids counts over the whole catalog.
func (h *FacetItemHandler) GetFacetsFromResult(ids *types.ItemList, selection *types.Selection) []*JsonFacet {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if ids == nil {
		ids = &h.All
	}
	ret := make([]*JsonFacet, 0, len(h.order))
	for _, fieldId := range h.order {
		f := h.Facets[fieldId]
		result := &JsonFacet{
			BaseField: f.BaseField,
			Values:    make([]OptionValue, 0, len(f.Keys)),
		}
		if selection != nil && selection.HasField(fieldId) {
			result.Selected = selection.Get(fieldId)
		}
		for _, value := range f.Values() {
			count := f.Keys[value].IntersectionLen(*ids)
			if count > 0 {
				result.Values = append(result.Values, OptionValue{Value: value, Count: count})
			}
		}
		ret = append(ret, result)
	}
	return ret
}
