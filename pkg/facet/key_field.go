package facet

import (
	"github.com/matst80/diecast-finder/pkg/types"
)

// KeyField maps every distinct value of a facet to the items holding it.
type KeyField struct {
	*types.BaseField
	Keys map[string]types.ItemList
}

func EmptyKeyValueField(field *types.BaseField) *KeyField {
	return &KeyField{
		BaseField: field,
		Keys:      map[string]types.ItemList{},
	}
}

func (f *KeyField) addValue(value string, itemId types.ItemId) bool {
	if value == "" {
		return false
	}
	if k, ok := f.Keys[value]; ok {
		k.AddId(itemId)
	} else {
		f.Keys[value] = types.ItemList{itemId: struct{}{}}
	}
	return true
}

// AddValueLink links the item to each value, empty values are skipped.
// Values are stored verbatim so matching stays an exact comparison.
func (f *KeyField) AddValueLink(values []string, itemId types.ItemId) bool {
	added := false
	for _, v := range values {
		if f.addValue(v, itemId) {
			added = true
		}
	}
	return added
}

// Match returns the items holding exactly value. The returned list is a
// copy and may be modified by the caller.
func (f *KeyField) Match(value string) *types.ItemList {
	ret := types.ItemList{}
	if ids, ok := f.Keys[value]; ok {
		ret.Merge(&ids)
	}
	return &ret
}

// Values returns the distinct values in option order.
func (f *KeyField) Values() []string {
	ret := make([]string, 0, len(f.Keys))
	for value := range f.Keys {
		ret = append(ret, value)
	}
	return sortValues(ret)
}

func (f *KeyField) TotalCount() int {
	total := 0
	for _, ids := range f.Keys {
		total += len(ids)
	}
	return total
}

func (f *KeyField) UniqueCount() int {
	return len(f.Keys)
}
