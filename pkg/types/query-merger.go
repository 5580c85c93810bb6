package types

import "context"

// Merger is a custom merging strategy hook.
type Merger = func(ctx context.Context, current *ItemList, next *ItemList, isFirst bool)

// QueryMerger combines facet match results.
// Semantics (default constructor):
//
//	First Add with a non-nil result -> seed result with that set.
//	Subsequent Adds -> result = result ∩ next
//	Add returning nil -> "no restriction", ignored.
//	Exclusions are accumulated and applied once in Wait().
//
// Every call is evaluated inline; the merger is not safe for concurrent use.
type QueryMerger struct {
	ctx     context.Context
	isFirst bool
	merger  Merger
	result  *ItemList
	exclude *ItemList
}

func defaultMerger(_ context.Context, current *ItemList, next *ItemList, isFirst bool) {
	if isFirst {
		current.Merge(next)
	} else {
		current.Intersect(*next)
	}
}

// NewQueryMerger builds a QueryMerger with default (seed + intersect) semantics.
func NewQueryMerger(ctx context.Context, result *ItemList) *QueryMerger {
	return NewCustomMerger(ctx, result, defaultMerger)
}

// NewCustomMerger allows providing a custom merge strategy.
func NewCustomMerger(ctx context.Context, result *ItemList, merger Merger) *QueryMerger {
	return &QueryMerger{
		ctx:     ctx,
		isFirst: true,
		result:  result,
		merger:  merger,
		exclude: &ItemList{},
	}
}

// Add applies the seeded-intersection merge semantics.
func (m *QueryMerger) Add(getResult func(ctx context.Context) *ItemList) {
	items := getResult(m.ctx)
	if items == nil {
		return
	}
	m.merger(m.ctx, m.result, items, m.isFirst)
	m.isFirst = false
}

// Exclude collects items to remove from the final result.
func (m *QueryMerger) Exclude(getResult func() *ItemList) {
	items := getResult()
	if items == nil {
		return
	}
	m.exclude.Merge(items)
}

// IsUnconstrained reports whether no Add restricted the result.
func (m *QueryMerger) IsUnconstrained() bool {
	return m.isFirst
}

// Wait applies the collected exclusions.
func (m *QueryMerger) Wait() {
	m.result.Exclude(m.exclude)
}
