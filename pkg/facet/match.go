package facet

import (
	"context"

	"github.com/matst80/diecast-finder/pkg/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var (
	name   = "diecast-finder-facets"
	tracer = otel.Tracer(name)
)

func SpannedFetcher(fn func() *types.ItemList, name string, attrs ...attribute.KeyValue) func(ctx context.Context) *types.ItemList {
	return func(ctx context.Context) *types.ItemList {
		_, span := tracer.Start(ctx, name)
		span.SetAttributes(attrs...)
		defer span.End()
		return fn()
	}
}

// Match adds one constraint per constrained facet of the selection. Unknown
// facets match nothing.
func (h *FacetItemHandler) Match(selection *types.Selection, qm *types.QueryMerger) {
	for _, fld := range selection.StringFilters() {
		keyFacet, ok := h.GetKeyFacet(fld.Id)
		if !ok {
			qm.Add(func(context.Context) *types.ItemList {
				return &types.ItemList{}
			})
			continue
		}
		qm.Add(SpannedFetcher(func() *types.ItemList {
			return keyFacet.Match(fld.Value)
		}, "Match filter value",
			attribute.String("facet", keyFacet.Key),
			attribute.String("value", fld.Value)))
	}
}

// MatchSelection returns the items satisfying every constraint of the selection.
func (h *FacetItemHandler) MatchSelection(ctx context.Context, selection *types.Selection) *types.ItemList {
	ids := &types.ItemList{}
	qm := types.NewQueryMerger(ctx, ids)
	h.Match(selection, qm)
	qm.Wait()
	if qm.IsUnconstrained() {
		h.mu.RLock()
		ids.Merge(&h.All)
		h.mu.RUnlock()
	}
	return ids
}
