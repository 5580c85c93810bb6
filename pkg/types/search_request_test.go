package types

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionFromQuery(t *testing.T) {
	sel, err := SelectionFromQuery(url.Values{
		"brand":   {"Lamborghini"},
		"color":   {" yellow "},
		"unknown": {"x"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Lamborghini", sel.Brand)
	assert.Equal(t, AllValue, sel.Manufacturer)
	assert.Equal(t, AllValue, sel.Category)
	assert.Equal(t, " yellow ", sel.Color)
}

func TestGetSelectionFromRequestBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPut, "/api/selection", strings.NewReader(`{"category":"Rally","brand":""}`))
	sel, err := GetSelectionFromRequest(r)
	require.NoError(t, err)
	assert.Equal(t, "Rally", sel.Category)
	assert.Equal(t, AllValue, sel.Brand)
}

func TestGetSelectionFromRequestBadBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPut, "/api/selection", strings.NewReader(`{"category":`))
	_, err := GetSelectionFromRequest(r)
	assert.Error(t, err)
}

func TestSelectionCacheKey(t *testing.T) {
	a := Selection{Brand: "Ferrari"}
	b := NewSelection()
	b.Brand = "Ferrari"
	assert.Equal(t, a.CacheKey(), b.CacheKey())

	c := NewSelection()
	c.Color = "Ferrari"
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}

func TestSelectionStringFilters(t *testing.T) {
	sel := NewSelection()
	assert.True(t, sel.IsEmpty())
	require.NoError(t, sel.Set(FacetColor, "red"))
	require.NoError(t, sel.Set(FacetBrand, "BMW"))
	filters := sel.StringFilters()
	require.Len(t, filters, 2)
	assert.Equal(t, StringFilter{Id: FacetBrand, Value: "BMW"}, filters[0])
	assert.Equal(t, StringFilter{Id: FacetColor, Value: "red"}, filters[1])
	assert.ErrorIs(t, sel.Set(FacetId(99), "x"), ErrUnknownFacet)
}

func TestParseFacet(t *testing.T) {
	id, err := ParseFacet(" Manufacturer")
	require.NoError(t, err)
	assert.Equal(t, FacetManufacturer, id)
	_, err = ParseFacet("scale")
	assert.ErrorIs(t, err, ErrUnknownFacet)
	assert.Equal(t, "color", FacetColor.String())
}
