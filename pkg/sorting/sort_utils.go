package sorting

import (
	"bytes"
	"cmp"
	"slices"
	"strings"

	"github.com/matst80/diecast-finder/pkg/types"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NewCollator compares strings ignoring case, accents and width.
// A Collator keeps internal buffers and must not be shared between goroutines.
func NewCollator() *collate.Collator {
	return collate.New(language.Und, collate.Loose)
}

// CollationKey returns a byte key that orders like the collator.
func CollationKey(c *collate.Collator, s string) []byte {
	var buf collate.Buffer
	return bytes.Clone(c.KeyFromString(&buf, s))
}

// SortValues orders distinct option values case-insensitively, values that
// collate equal fall back to byte order so the result is deterministic.
func SortValues(values []string) []string {
	c := NewCollator()
	keys := make(map[string][]byte, len(values))
	for _, v := range values {
		keys[v] = CollationKey(c, v)
	}
	slices.SortFunc(values, func(a, b string) int {
		if r := bytes.Compare(keys[a], keys[b]); r != 0 {
			return r
		}
		return strings.Compare(a, b)
	})
	return values
}

// SortIndex is a list of item ids in display order.
type SortIndex []types.ItemId

// SortMap returns the ids present in ids, in the order of the index.
func (s SortIndex) SortMap(ids types.ItemList) []types.ItemId {
	ret := make([]types.ItemId, 0, len(ids))
	for _, id := range s {
		if len(ret) == len(ids) {
			break
		}
		if ids.Contains(id) {
			ret = append(ret, id)
		}
	}
	return ret
}

func compareYearDesc(a, b *types.DiecastModel) int {
	return cmp.Compare(b.Year, a.Year)
}
