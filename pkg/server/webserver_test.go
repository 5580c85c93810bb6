package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matst80/diecast-finder/pkg/common"
	"github.com/matst80/diecast-finder/pkg/common/jsoncompat"
	"github.com/matst80/diecast-finder/pkg/display"
	"github.com/matst80/diecast-finder/pkg/index"
	"github.com/matst80/diecast-finder/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTracking struct {
	sessions int
	filters  []int
	details  []string
}

func (t *recordingTracking) TrackSession(string, *http.Request) { t.sessions++ }

func (t *recordingTracking) TrackFilter(_ string, _ *types.Selection, n int, _ *http.Request) {
	t.filters = append(t.filters, n)
}

func (t *recordingTracking) TrackDetail(_ string, id string, _ *http.Request) {
	t.details = append(t.details, id)
}

func (t *recordingTracking) Close() error { return nil }

func catalog() []types.DiecastModel {
	five := 5
	return []types.DiecastModel{
		{Id: "a20", Name: "Aventador", Year: 2020, Brand: "Lamborghini", Manufacturer: "Bburago", Category: types.CategorySupercar, Color: []string{"yellow"}, Hex: []string{"#ffcc00"}},
		{Id: "h19", Name: "Huracan", Year: 2019, Brand: "Lamborghini", Manufacturer: "Maisto", Category: types.CategorySupercar, Color: []string{"green"}},
		{Id: "a18", Name: "Aventador", Year: 2018, Brand: "Lamborghini", Manufacturer: "Bburago", Category: types.CategorySupercar, Color: []string{"black"}},
		{Id: "i03", Name: "Impreza WRC", Year: 2003, Brand: "Subaru", Manufacturer: "IXO", Category: types.CategoryRally, Color: []string{"blue", "yellow"}, CarNumber: &five, CarDriver: "Solberg"},
	}
}

type testServer struct {
	ws      *WebServer
	handler http.Handler
	trk     *recordingTracking
	cookie  *http.Cookie
}

func newTestServer(t *testing.T, withCache bool) *testServer {
	t.Helper()
	idx, err := index.NewIndex(catalog())
	require.NoError(t, err)
	trk := &recordingTracking{}
	opts := Options{Title: "Test Collection", SessionLimit: 10, Tracking: trk}
	if withCache {
		opts.Cache, err = NewCache(16, nil, idx.Fingerprint(), nil)
		require.NoError(t, err)
	}
	ws, err := NewWebServer(idx, opts)
	require.NoError(t, err)
	return &testServer{ws: ws, handler: ws.Handler(), trk: trk}
}

func (s *testServer) do(t *testing.T, method, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s.cookie != nil {
		req.AddCookie(s.cookie)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == common.SessionCookieName {
			s.cookie = c
		}
	}
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, jsoncompat.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func cardIds(items []display.Card) []string {
	ret := make([]string, len(items))
	for i, c := range items {
		ret[i] = c.Id
	}
	return ret
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, false)
	rec := s.do(t, "GET", "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t, false)
	rec := s.do(t, "GET", "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "diecastfinder_models")
}

func TestOptionsPreflight(t *testing.T) {
	s := newTestServer(t, false)
	req := httptest.NewRequest("OPTIONS", "/api/models", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGetOptions(t *testing.T) {
	s := newTestServer(t, true)
	rec := s.do(t, "GET", "/api/options", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[OptionsResponse](t, rec)
	assert.Equal(t, []string{"Lamborghini", "Subaru"}, resp.Brands)
	assert.Equal(t, []string{"black", "blue", "green", "yellow"}, resp.Colors)
	require.Len(t, resp.Facets, 4)
	assert.Equal(t, 3, resp.Facets[0].Values[0].Count)

	again := s.do(t, "GET", "/api/options", "", "")
	assert.Equal(t, "hit", again.Header().Get("X-Cache"))
	assert.Equal(t, rec.Body.String(), again.Body.String())
}

func TestGetModels(t *testing.T) {
	s := newTestServer(t, true)

	rec := s.do(t, "GET", "/api/models?brand=Lamborghini", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[ModelsResponse](t, rec)
	assert.Equal(t, []string{"a20", "a18", "h19"}, cardIds(resp.Items))
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 3, resp.Filtered)
	assert.Empty(t, resp.Empty)
	assert.Equal(t, "Test Collection", resp.Title)

	rec = s.do(t, "GET", "/api/models?color=yellow", "", "")
	resp = decode[ModelsResponse](t, rec)
	assert.Equal(t, []string{"a20", "i03"}, cardIds(resp.Items))

	rec = s.do(t, "GET", "/api/models?brand=Ferrari", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[ModelsResponse](t, rec)
	assert.Empty(t, resp.Items)
	assert.Equal(t, display.EmptyMessage, resp.Empty)

	rec = s.do(t, "GET", "/api/models?brand=Ferrari", "", "")
	assert.Equal(t, "hit", rec.Header().Get("X-Cache"))
	assert.Equal(t, []int{3, 2, 0, 0}, s.trk.filters)
	assert.Equal(t, 1, s.trk.sessions)
}

func TestGetModelsUnconstrained(t *testing.T) {
	s := newTestServer(t, false)
	rec := s.do(t, "GET", "/api/models?brand=All&color=", "", "")
	resp := decode[ModelsResponse](t, rec)
	assert.Equal(t, []string{"a20", "a18", "h19", "i03"}, cardIds(resp.Items))
	assert.Equal(t, types.NewSelection(), resp.Selection)
}

func TestGetModel(t *testing.T) {
	s := newTestServer(t, false)
	rec := s.do(t, "GET", "/api/models/i03", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	d := decode[display.Detail](t, rec)
	assert.Equal(t, "5", d.CarNumber)
	assert.Equal(t, "1:43", d.Scale)

	rec = s.do(t, "GET", "/api/models/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelectionLifecycle(t *testing.T) {
	s := newTestServer(t, false)

	rec := s.do(t, "GET", "/api/selection", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[SelectionResponse](t, rec)
	assert.Equal(t, types.NewSelection(), resp.Selection)
	assert.Len(t, resp.Items, 4)
	require.NotNil(t, s.cookie)

	rec = s.do(t, "POST", "/api/selection/brand", "application/x-www-form-urlencoded", "value=Lamborghini")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[SelectionResponse](t, rec)
	assert.Equal(t, "Lamborghini", resp.Selection.Brand)
	assert.Equal(t, []string{"a20", "a18", "h19"}, cardIds(resp.Items))

	rec = s.do(t, "POST", "/api/selection/color", "application/json", `{"value":"yellow"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[SelectionResponse](t, rec)
	assert.Equal(t, []string{"a20"}, cardIds(resp.Items))

	rec = s.do(t, "POST", "/api/selection/brand?value=Ferrari", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, "POST", "/api/selection/wheels?value=4", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, "GET", "/api/selection", "", "")
	resp = decode[SelectionResponse](t, rec)
	assert.Equal(t, "Lamborghini", resp.Selection.Brand)
	assert.Equal(t, "yellow", resp.Selection.Color)

	rec = s.do(t, "PUT", "/api/selection", "application/json", `{"brand":"Subaru","category":"Rally"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[SelectionResponse](t, rec)
	assert.Equal(t, []string{"i03"}, cardIds(resp.Items))
	assert.Equal(t, types.AllValue, resp.Selection.Color)

	rec = s.do(t, "PUT", "/api/selection", "application/json", `{"brand":"Lamborghini","color":"pink"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = s.do(t, "PUT", "/api/selection", "application/json", `{"brand":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, "DELETE", "/api/selection", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode[SelectionResponse](t, rec)
	assert.Equal(t, types.NewSelection(), resp.Selection)
	assert.Len(t, resp.Items, 4)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := newTestServer(t, false)
	rec := s.do(t, "POST", "/api/selection/brand?value=Subaru", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	other := &testServer{ws: s.ws, handler: s.handler, trk: s.trk}
	rec = other.do(t, "GET", "/api/selection", "", "")
	resp := decode[SelectionResponse](t, rec)
	assert.Equal(t, types.AllValue, resp.Selection.Brand)
	assert.NotEqual(t, s.cookie.Value, other.cookie.Value)
}

func TestDetailLifecycle(t *testing.T) {
	s := newTestServer(t, false)

	rec := s.do(t, "GET", "/api/detail", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, "POST", "/api/detail/a18", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a18", decode[display.Detail](t, rec).Id)

	rec = s.do(t, "POST", "/api/detail/missing", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, "GET", "/api/detail", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a18", decode[display.Detail](t, rec).Id)

	rec = s.do(t, "GET", "/api/selection", "", "")
	resp := decode[SelectionResponse](t, rec)
	require.NotNil(t, resp.Detail)
	assert.Equal(t, "a18", resp.Detail.Id)

	rec = s.do(t, "DELETE", "/api/detail", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, "GET", "/api/detail", "", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, []string{"a18"}, s.trk.details)
}

func TestCacheWithoutRedis(t *testing.T) {
	c, err := NewCache(2, nil, "fp", nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)
	c.Set(ctx, "a", []byte("1"))
	c.Set(ctx, "b", []byte("2"))
	c.Set(ctx, "c", []byte("3"))
	assert.Equal(t, 2, c.Len())
	_, ok = c.Get(ctx, "a")
	assert.False(t, ok)
	data, ok := c.Get(ctx, "c")
	assert.True(t, ok)
	assert.Equal(t, []byte("3"), data)
	assert.NoError(t, c.Close())
}

func TestPaddedCatalogValuesAreSelectable(t *testing.T) {
	models := append(catalog(), types.DiecastModel{
		Id: "f40", Name: "F40", Year: 1987, Brand: "Ferrari ", Manufacturer: "Bburago",
		Category: types.CategorySupercar, Color: []string{"red"},
	})
	idx, err := index.NewIndex(models)
	require.NoError(t, err)
	ws, err := NewWebServer(idx, Options{SessionLimit: 10})
	require.NoError(t, err)
	s := &testServer{ws: ws, handler: ws.Handler()}

	rec := s.do(t, "GET", "/api/models?brand=Ferrari%20", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"f40"}, cardIds(decode[ModelsResponse](t, rec).Items))

	rec = s.do(t, "POST", "/api/selection/brand", "application/json", `{"value":"Ferrari "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[SelectionResponse](t, rec)
	assert.Equal(t, "Ferrari ", resp.Selection.Brand)
	assert.Equal(t, []string{"f40"}, cardIds(resp.Items))

	rec = s.do(t, "POST", "/api/selection/brand", "application/json", `{"value":"Ferrari"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCacheHitWithoutTracking(t *testing.T) {
	idx, err := index.NewIndex(catalog())
	require.NoError(t, err)
	cache, err := NewCache(16, nil, idx.Fingerprint(), nil)
	require.NoError(t, err)
	ws, err := NewWebServer(idx, Options{SessionLimit: 10, Cache: cache})
	require.NoError(t, err)
	assert.False(t, ws.tracksFilters())
	s := &testServer{ws: ws, handler: ws.Handler()}

	first := s.do(t, "GET", "/api/models?category=Rally", "", "")
	require.Equal(t, http.StatusOK, first.Code)
	again := s.do(t, "GET", "/api/models?category=Rally", "", "")
	require.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, "hit", again.Header().Get("X-Cache"))
	assert.Equal(t, first.Body.String(), again.Body.String())

	tracked := newTestServer(t, true)
	assert.True(t, tracked.ws.tracksFilters())
}
