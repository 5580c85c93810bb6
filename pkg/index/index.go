package index

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/matst80/diecast-finder/pkg/common/jsoncompat"
	"github.com/matst80/diecast-finder/pkg/facet"
	"github.com/matst80/diecast-finder/pkg/sorting"
	"github.com/matst80/diecast-finder/pkg/types"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("model not found")

// Index holds the immutable catalog together with its facet and sort
// indexes. It is built once and safe for concurrent reads afterwards.
type Index struct {
	items       []types.DiecastModel
	byId        map[string]types.ItemId
	facets      *facet.FacetItemHandler
	sorting     *sorting.ItemSortingHandler
	handlers    []types.ItemHandler
	options     types.FilterOptions
	fingerprint string
	logger      *zap.Logger
}

type Option func(*Index)

func WithLogger(logger *zap.Logger) Option {
	return func(i *Index) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// NewIndex validates the catalog and builds the indexes. The slice is copied
// so later changes by the caller are not observed.
func NewIndex(models []types.DiecastModel, opts ...Option) (*Index, error) {
	if err := types.ValidateCatalog(models); err != nil {
		return nil, err
	}
	i := &Index{
		items:   make([]types.DiecastModel, len(models)),
		byId:    make(map[string]types.ItemId, len(models)),
		facets:  facet.NewFacetItemHandler(),
		sorting: sorting.NewItemSortingHandler(sorting.NewNameSorter()),
		logger:  zap.NewNop(),
	}
	copy(i.items, models)
	i.handlers = []types.ItemHandler{i.facets, i.sorting}
	for _, opt := range opts {
		opt(i)
	}
	for idx := range i.items {
		id := types.ItemId(idx)
		item := &i.items[idx]
		i.byId[item.Id] = id
		for _, h := range i.handlers {
			if err := h.HandleItem(id, item); err != nil {
				return nil, fmt.Errorf("index model %q: %w", item.Id, err)
			}
		}
	}
	i.options = i.facets.Options()
	// force the sort index to be computed before concurrent use
	i.sorting.GetSortIndex()
	fp, err := fingerprint(i.items)
	if err != nil {
		return nil, err
	}
	i.fingerprint = fp
	i.logger.Info("catalog indexed",
		zap.Int("models", len(i.items)),
		zap.Int("brands", len(i.options.Brands)),
		zap.Int("colors", len(i.options.Colors)),
		zap.String("fingerprint", fp))
	return i, nil
}

func fingerprint(items []types.DiecastModel) (string, error) {
	data, err := jsoncompat.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("fingerprint catalog: %w", err)
	}
	h := fnv.New64a()
	_, _ = h.Write(data)
	return strconv.FormatUint(h.Sum64(), 16), nil
}

func (i *Index) Len() int {
	return len(i.items)
}

// Fingerprint identifies the catalog content.
func (i *Index) Fingerprint() string {
	return i.fingerprint
}

func (i *Index) Get(id string) (*types.DiecastModel, error) {
	idx, ok := i.byId[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return &i.items[idx], nil
}

// Options returns the distinct values per facet. The slices are shared and
// must not be modified.
func (i *Index) Options() types.FilterOptions {
	return i.options
}

// OptionFacets returns every facet with its values and catalog counts.
func (i *Index) OptionFacets() []*facet.JsonFacet {
	return i.facets.GetFacetsFromResult(nil, nil)
}

// HasOption reports whether value is a derived option of the facet.
func (i *Index) HasOption(id types.FacetId, value string) bool {
	return i.facets.HasValue(id, value)
}

// All returns the full catalog in display order.
func (i *Index) All() []*types.DiecastModel {
	return i.getItems(i.sorting.GetSortIndex())
}

func (i *Index) getItems(ids []types.ItemId) []*types.DiecastModel {
	ret := make([]*types.DiecastModel, 0, len(ids))
	for _, id := range ids {
		ret = append(ret, &i.items[id])
	}
	return ret
}

// Match returns the positions of the models satisfying every constraint.
func (i *Index) Match(ctx context.Context, selection *types.Selection) *types.ItemList {
	return i.facets.MatchSelection(ctx, selection)
}

// Filter returns the models satisfying every constraint of the selection in
// display order. A new slice is returned on every call.
func (i *Index) Filter(ctx context.Context, selection *types.Selection) []*types.DiecastModel {
	if selection == nil || selection.IsEmpty() {
		return i.All()
	}
	ids := i.Match(ctx, selection)
	return i.getItems(i.sorting.GetSortIndex().SortMap(*ids))
}

// Facets counts the facet values within the selection's result.
func (i *Index) Facets(ctx context.Context, selection *types.Selection) []*facet.JsonFacet {
	ids := i.Match(ctx, selection)
	return i.facets.GetFacetsFromResult(ids, selection)
}
