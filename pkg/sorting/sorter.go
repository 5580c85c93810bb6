package sorting

import (
	"bytes"
	"slices"

	"github.com/matst80/diecast-finder/pkg/types"
	"golang.org/x/text/collate"
)

type Sorter interface {
	Name() string
	Compare(a, b *types.DiecastModel) int
}

// NameSorter orders by name (collation, case and accent insensitive) and
// newest year first for equal names.
type NameSorter struct {
	collator *collate.Collator
	keys     map[*types.DiecastModel][]byte
}

func NewNameSorter() *NameSorter {
	return &NameSorter{
		collator: NewCollator(),
		keys:     make(map[*types.DiecastModel][]byte),
	}
}

func (s *NameSorter) Name() string {
	return "name"
}

func (s *NameSorter) key(m *types.DiecastModel) []byte {
	k, ok := s.keys[m]
	if !ok {
		k = CollationKey(s.collator, m.Name)
		s.keys[m] = k
	}
	return k
}

func (s *NameSorter) Compare(a, b *types.DiecastModel) int {
	if r := bytes.Compare(s.key(a), s.key(b)); r != 0 {
		return r
	}
	return compareYearDesc(a, b)
}

// SortModels returns a sorted copy, ties keep their input order.
func SortModels(models []*types.DiecastModel) []*types.DiecastModel {
	ret := slices.Clone(models)
	if ret == nil {
		ret = []*types.DiecastModel{}
	}
	s := NewNameSorter()
	slices.SortStableFunc(ret, s.Compare)
	return ret
}
