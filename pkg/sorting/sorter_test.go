package sorting

import (
	"testing"

	"github.com/matst80/diecast-finder/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func model(id, name string, year int) *types.DiecastModel {
	return &types.DiecastModel{Id: id, Name: name, Year: year}
}

func ids(models []*types.DiecastModel) []string {
	ret := make([]string, len(models))
	for i, m := range models {
		ret[i] = m.Id
	}
	return ret
}

func TestSortModelsNameThenYearDesc(t *testing.T) {
	in := []*types.DiecastModel{
		model("a", "Aventador", 2020),
		model("h", "Huracan", 2019),
		model("b", "Aventador", 2018),
	}
	got := SortModels(in)
	assert.Equal(t, []string{"a", "b", "h"}, ids(got))
	// input untouched
	assert.Equal(t, []string{"a", "h", "b"}, ids(in))
}

func TestSortModelsIgnoresCaseAndAccents(t *testing.T) {
	in := []*types.DiecastModel{
		model("1", "huracán", 2014),
		model("2", "Huracan", 2019),
		model("3", "escort", 1990),
		model("4", "Evo", 2004),
	}
	got := SortModels(in)
	assert.Equal(t, []string{"3", "4", "2", "1"}, ids(got))
}

func TestSortModelsStableForTies(t *testing.T) {
	in := []*types.DiecastModel{
		model("first", "Impreza", 2001),
		model("second", "IMPREZA", 2001),
		model("third", "impreza", 2001),
	}
	assert.Equal(t, []string{"first", "second", "third"}, ids(SortModels(in)))
}

func TestSortModelsEmpty(t *testing.T) {
	got := SortModels(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSortValues(t *testing.T) {
	values := []string{"red", "Blue", "green", "Red", "black"}
	assert.Equal(t, []string{"black", "Blue", "green", "Red", "red"}, SortValues(values))
}

func TestItemSortingHandlerMatchesSortModels(t *testing.T) {
	catalog := []*types.DiecastModel{
		model("0", "Supra", 1998),
		model("1", "Celica", 1994),
		model("2", "supra", 2020),
		model("3", "Celica", 1994),
	}
	h := NewItemSortingHandler(nil)
	for i, m := range catalog {
		require.NoError(t, h.HandleItem(types.ItemId(i), m))
	}
	idx := h.GetSortIndex()
	assert.Equal(t, SortIndex{1, 3, 2, 0}, idx)

	sorted := SortModels(catalog)
	for i, id := range idx {
		assert.Same(t, catalog[id], sorted[i])
	}

	assert.Equal(t, []types.ItemId{3, 0}, idx.SortMap(types.NewItemList(0, 3)))
	assert.Empty(t, idx.SortMap(types.ItemList{}))
}
