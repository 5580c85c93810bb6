package sorting

import (
	"slices"
	"sync"

	"github.com/matst80/diecast-finder/pkg/types"
)

// ItemSortingHandler collects the catalog and computes the display order once.
type ItemSortingHandler struct {
	mu     sync.RWMutex
	sorter Sorter
	items  []sortItem
	index  SortIndex
	dirty  bool
}

type sortItem struct {
	id    types.ItemId
	model *types.DiecastModel
}

func NewItemSortingHandler(sorter Sorter) *ItemSortingHandler {
	if sorter == nil {
		sorter = NewNameSorter()
	}
	return &ItemSortingHandler{
		sorter: sorter,
		items:  make([]sortItem, 0),
		index:  SortIndex{},
	}
}

func (h *ItemSortingHandler) HandleItem(id types.ItemId, item *types.DiecastModel) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append(h.items, sortItem{id: id, model: item})
	h.dirty = true
	return nil
}

func (h *ItemSortingHandler) rebuild() {
	sorted := slices.Clone(h.items)
	slices.SortStableFunc(sorted, func(a, b sortItem) int {
		if r := h.sorter.Compare(a.model, b.model); r != 0 {
			return r
		}
		return int(a.id) - int(b.id)
	})
	index := make(SortIndex, len(sorted))
	for i, it := range sorted {
		index[i] = it.id
	}
	h.index = index
	h.dirty = false
}

// GetSortIndex returns the display order of every handled item.
func (h *ItemSortingHandler) GetSortIndex() SortIndex {
	h.mu.RLock()
	if !h.dirty {
		defer h.mu.RUnlock()
		return h.index
	}
	h.mu.RUnlock()

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.dirty {
		h.rebuild()
	}
	return h.index
}

func (h *ItemSortingHandler) Name() string {
	return h.sorter.Name()
}
