package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matst80/diecast-finder/pkg/storage"
	"github.com/matst80/diecast-finder/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCsv = `id;name;year;brand;manufacturer;category;color;hex;carNumber;carDriver;scale;thumbnail;imageUrl
1;Impreza WRC;2003;Subaru;IXO;Rally;blue|yellow;#003399|#ffcc00;5;Petter Solberg;;/img/1-thumb.jpg;/img/1.jpg
2;Aventador;2020;Lamborghini;Bburago;Supercar;yellow;#ffcc00;;;1:18;;
`

func TestReadModels(t *testing.T) {
	models, err := ReadModels(strings.NewReader(sampleCsv))
	require.NoError(t, err)
	require.Len(t, models, 2)

	first := models[0]
	assert.Equal(t, "Impreza WRC", first.Name)
	assert.Equal(t, 2003, first.Year)
	assert.Equal(t, types.CategoryRally, first.Category)
	assert.Equal(t, []string{"blue", "yellow"}, first.Color)
	assert.Equal(t, []string{"#003399", "#ffcc00"}, first.Hex)
	require.NotNil(t, first.CarNumber)
	assert.Equal(t, 5, *first.CarNumber)
	assert.Equal(t, "/img/1.jpg", first.ImageUrl)

	second := models[1]
	assert.Nil(t, second.CarNumber)
	assert.Equal(t, "1:18", second.Scale)
	assert.Empty(t, second.Thumbnail)
}

func TestReadModelsColumnOrder(t *testing.T) {
	in := "color;category;manufacturer;brand;year;name;id\nred;Racing;Minichamps;VW;1976;Golf;g1\n"
	models, err := ReadModels(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "Golf", models[0].Name)
	assert.Equal(t, []string{"red"}, models[0].Color)
}

func TestReadModelsErrors(t *testing.T) {
	cases := map[string]string{
		"missing column": "id;name;year\n1;Golf;1976\n",
		"bad year":       "id;name;year;brand;manufacturer;category;color\n1;Golf;old;VW;M;Racing;red\n",
		"bad number":     "id;name;year;brand;manufacturer;category;color;carNumber\n1;Golf;1976;VW;M;Racing;red;x\n",
		"bad category":   "id;name;year;brand;manufacturer;category;color\n1;Golf;1976;VW;M;Offroad;red\n",
		"no color":       "id;name;year;brand;manufacturer;category;color\n1;Golf;1976;VW;M;Racing;|\n",
		"duplicate id":   "id;name;year;brand;manufacturer;category;color\n1;Golf;1976;VW;M;Racing;red\n1;Polo;1980;VW;M;Racing;red\n",
		"empty":          "",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadModels(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "models.csv")
	require.NoError(t, os.WriteFile(in, []byte(sampleCsv), 0o644))

	out := filepath.Join(dir, "zemaking", "models.json.gz")
	require.NoError(t, convert(in, out))

	models, err := storage.NewDiskStorage("zemaking", dir).LoadCatalog()
	require.NoError(t, err)
	assert.Len(t, models, 2)
}
