package types

import (
	"maps"
	"slices"
)

// ItemList is a set of catalog positions.
type ItemList map[ItemId]struct{}

func (i ItemList) AddId(id ItemId) {
	i[id] = struct{}{}
}

func (i ItemList) Contains(id ItemId) bool {
	_, ok := i[id]
	return ok
}

func (i ItemList) Len() int {
	return len(i)
}

func (a ItemList) Intersect(b ItemList) {
	for id := range a {
		_, ok := b[id]
		if !ok {
			delete(a, id)
		}
	}
}

func (i ItemList) Merge(other *ItemList) {
	if other == nil {
		return
	}
	maps.Copy(i, *other)
}

func (i ItemList) Exclude(other *ItemList) {
	if other == nil {
		return
	}
	for id := range *other {
		delete(i, id)
	}
}

func (i ItemList) IntersectionLen(other ItemList) int {
	small, large := i, other
	if len(large) < len(small) {
		small, large = large, small
	}
	count := 0
	for id := range small {
		if _, ok := large[id]; ok {
			count++
		}
	}
	return count
}

// SortedIds returns the ids in catalog order.
func (i ItemList) SortedIds() []ItemId {
	ret := make([]ItemId, 0, len(i))
	for id := range i {
		ret = append(ret, id)
	}
	slices.Sort(ret)
	return ret
}

func NewItemList(ids ...ItemId) ItemList {
	ret := make(ItemList, len(ids))
	for _, id := range ids {
		ret[id] = struct{}{}
	}
	return ret
}
