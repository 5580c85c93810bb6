package types

import (
	"io"
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/matst80/diecast-finder/pkg/common/jsoncompat"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// SelectionFromQuery decodes brand, manufacturer, category and color from query values.
func SelectionFromQuery(query url.Values) (Selection, error) {
	sel := NewSelection()
	if err := decoder.Decode(&sel, query); err != nil {
		return sel, err
	}
	sel.Normalize()
	return sel, nil
}

// GetSelectionFromRequest reads the query string for GET requests and a JSON body otherwise.
func GetSelectionFromRequest(r *http.Request) (Selection, error) {
	if r.Method == http.MethodGet {
		return SelectionFromQuery(r.URL.Query())
	}
	sel := NewSelection()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return sel, err
	}
	if len(data) > 0 {
		if err = jsoncompat.Unmarshal(data, &sel); err != nil {
			return sel, err
		}
	}
	sel.Normalize()
	return sel, nil
}
