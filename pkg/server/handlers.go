package server

import (
	"context"
	"errors"
	"mime"
	"net/http"

	"github.com/matst80/diecast-finder/pkg/common"
	"github.com/matst80/diecast-finder/pkg/common/jsoncompat"
	"github.com/matst80/diecast-finder/pkg/display"
	"github.com/matst80/diecast-finder/pkg/index"
	"github.com/matst80/diecast-finder/pkg/selection"
	"github.com/matst80/diecast-finder/pkg/tracking"
	"github.com/matst80/diecast-finder/pkg/types"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const optionsCacheKey = "options"

func statusFor(err error) int {
	switch {
	case errors.Is(err, index.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, selection.ErrUnknownValue), errors.Is(err, selection.ErrUnknownFacet):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJson(w http.ResponseWriter, status int, enc jsonEncoder, data any) error {
	w.WriteHeader(status)
	return enc.Encode(data)
}

func (ws *WebServer) writeError(w http.ResponseWriter, r *http.Request, enc jsonEncoder, status int, err error) error {
	common.PrivateHeaders(w, r)
	if status >= http.StatusInternalServerError {
		ws.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	return writeJson(w, status, enc, ErrorResponse{Error: err.Error()})
}

// cached writes the stored response for key, or builds, stores and writes it.
func (ws *WebServer) cached(ctx context.Context, w http.ResponseWriter, key string, build func() any) error {
	if ws.Cache != nil {
		if data, ok := ws.Cache.Get(ctx, key); ok {
			w.Header().Set("X-Cache", "hit")
			w.WriteHeader(http.StatusOK)
			_, err := w.Write(data)
			return err
		}
	}
	data, err := jsoncompat.Marshal(build())
	if err != nil {
		return err
	}
	if ws.Cache != nil {
		ws.Cache.Set(ctx, key, data)
	}
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(data)
	return err
}

func (ws *WebServer) filter(ctx context.Context, sel types.Selection) ModelsResponse {
	ctx, span := tracer.Start(ctx, "filter models")
	defer span.End()
	span.SetAttributes(attribute.String("selection", sel.CacheKey()))
	models := ws.Index.Filter(ctx, &sel)
	return ModelsResponse{
		Summary:   display.NewSummary(ws.Title, ws.Index.Len(), len(models)),
		Selection: sel,
		Items:     display.NewCards(models),
	}
}

// tracksFilters is false for the no-op tracker, cache hits then skip
// recounting the result.
func (ws *WebServer) tracksFilters() bool {
	_, noop := ws.Tracking.(tracking.NoopTracking)
	return !noop
}

func (ws *WebServer) GetOptions(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder) error {
	common.PublicHeaders(w, r, "600")
	return ws.cached(r.Context(), w, optionsCacheKey, func() any {
		return OptionsResponse{
			FilterOptions: ws.Index.Options(),
			Facets:        ws.Index.OptionFacets(),
		}
	})
}

// GetModels filters without touching the session selection, values that
// are not options simply match nothing.
func (ws *WebServer) GetModels(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder) error {
	sel, err := types.GetSelectionFromRequest(r)
	if err != nil {
		common.PrivateHeaders(w, r)
		return writeJson(w, http.StatusBadRequest, enc, ErrorResponse{Error: err.Error()})
	}
	noFilters.Inc()
	ctx := r.Context()
	filtered := -1
	common.PublicHeaders(w, r, "120")
	err = ws.cached(ctx, w, "models:"+sel.CacheKey(), func() any {
		resp := ws.filter(ctx, sel)
		filtered = resp.Filtered
		return resp
	})
	if filtered < 0 {
		if !ws.tracksFilters() {
			return err
		}
		filtered = ws.Index.Match(ctx, &sel).Len()
	}
	ws.Tracking.TrackFilter(sessionId, &sel, filtered, r)
	return err
}

func (ws *WebServer) GetModel(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder) error {
	model, err := ws.Index.Get(r.PathValue("id"))
	if err != nil {
		return ws.writeError(w, r, enc, statusFor(err), err)
	}
	common.PublicHeaders(w, r, "600")
	return writeJson(w, http.StatusOK, enc, display.NewDetail(model))
}

func (ws *WebServer) selectionResponse(ctx context.Context, sel types.Selection, detail *types.DiecastModel) SelectionResponse {
	resp := SelectionResponse{
		ModelsResponse: ws.filter(ctx, sel),
	}
	if detail != nil {
		d := display.NewDetail(detail)
		resp.Detail = &d
	}
	return resp
}

// mutate applies fn to the session state and responds with the resulting
// selection and its filtered models.
func (ws *WebServer) mutate(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder, fn func(state *selection.State) error) error {
	var sel types.Selection
	var detail *types.DiecastModel
	err := ws.Sessions.With(sessionId, func(state *selection.State) error {
		if err := fn(state); err != nil {
			return err
		}
		sel = state.Selection()
		detail, _ = state.Detail.Current()
		return nil
	})
	activeSessions.Set(float64(ws.Sessions.Len()))
	if err != nil {
		if errors.Is(err, selection.ErrUnknownValue) || errors.Is(err, selection.ErrUnknownFacet) {
			rejectedSelections.Inc()
		}
		return ws.writeError(w, r, enc, statusFor(err), err)
	}
	resp := ws.selectionResponse(r.Context(), sel, detail)
	if r.Method != http.MethodGet {
		noFilters.Inc()
		ws.Tracking.TrackFilter(sessionId, &sel, resp.Filtered, r)
	}
	common.PrivateHeaders(w, r)
	return writeJson(w, http.StatusOK, enc, resp)
}

func (ws *WebServer) GetSelection(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder) error {
	return ws.mutate(w, r, sessionId, enc, func(*selection.State) error {
		return nil
	})
}

func (ws *WebServer) ReplaceSelection(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder) error {
	sel, err := types.GetSelectionFromRequest(r)
	if err != nil {
		common.PrivateHeaders(w, r)
		return writeJson(w, http.StatusBadRequest, enc, ErrorResponse{Error: err.Error()})
	}
	return ws.mutate(w, r, sessionId, enc, func(state *selection.State) error {
		return state.Replace(sel)
	})
}

func (ws *WebServer) ClearSelection(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder) error {
	return ws.mutate(w, r, sessionId, enc, func(state *selection.State) error {
		state.Clear()
		return nil
	})
}

func facetValue(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		req := SetFacetRequest{}
		if err := jsoncompat.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", err
		}
		return req.Value, nil
	}
	return r.FormValue("value"), nil
}

func (ws *WebServer) SetFacet(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder) error {
	value, err := facetValue(r)
	if err != nil {
		common.PrivateHeaders(w, r)
		return writeJson(w, http.StatusBadRequest, enc, ErrorResponse{Error: err.Error()})
	}
	key := r.PathValue("facet")
	return ws.mutate(w, r, sessionId, enc, func(state *selection.State) error {
		return state.SetFacetByKey(key, value)
	})
}

func (ws *WebServer) GetDetail(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder) error {
	var current *types.DiecastModel
	_ = ws.Sessions.With(sessionId, func(state *selection.State) error {
		current, _ = state.Detail.Current()
		return nil
	})
	common.PrivateHeaders(w, r)
	if current == nil {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}
	return writeJson(w, http.StatusOK, enc, display.NewDetail(current))
}

func (ws *WebServer) OpenDetail(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder) error {
	id := r.PathValue("id")
	model, err := ws.Index.Get(id)
	if err != nil {
		return ws.writeError(w, r, enc, statusFor(err), err)
	}
	_ = ws.Sessions.With(sessionId, func(state *selection.State) error {
		state.Detail.Open(model)
		return nil
	})
	noDetails.Inc()
	ws.Tracking.TrackDetail(sessionId, model.Id, r)
	common.PrivateHeaders(w, r)
	return writeJson(w, http.StatusOK, enc, display.NewDetail(model))
}

func (ws *WebServer) CloseDetail(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder) error {
	_ = ws.Sessions.With(sessionId, func(state *selection.State) error {
		state.Detail.Close()
		return nil
	})
	common.PrivateHeaders(w, r)
	w.WriteHeader(http.StatusNoContent)
	return nil
}
