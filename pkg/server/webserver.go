package server

import (
	"net/http"

	"github.com/matst80/diecast-finder/pkg/common"
	"github.com/matst80/diecast-finder/pkg/index"
	"github.com/matst80/diecast-finder/pkg/selection"
	"github.com/matst80/diecast-finder/pkg/tracking"
	"github.com/matst80/diecast-finder/pkg/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("diecast-finder-server")

type Options struct {
	Title        string
	SessionLimit int
	Cache        *Cache
	Tracking     types.Tracking
	Logger       *zap.Logger
}

// WebServer serves the catalog, the derived options and the per session
// selection state.
type WebServer struct {
	Index    *index.Index
	Sessions *selection.Store
	Cache    *Cache
	Tracking types.Tracking
	Title    string
	logger   *zap.Logger
}

func NewWebServer(idx *index.Index, opts Options) (*WebServer, error) {
	sessions, err := selection.NewStore(opts.SessionLimit, idx)
	if err != nil {
		return nil, err
	}
	trk := opts.Tracking
	if trk == nil {
		trk = tracking.NoopTracking{}
	}
	totalModels.Set(float64(idx.Len()))
	return &WebServer{
		Index:    idx,
		Sessions: sessions,
		Cache:    opts.Cache,
		Tracking: trk,
		Title:    opts.Title,
		logger:   common.OrNop(opts.Logger),
	}, nil
}

func (ws *WebServer) handle(fn func(w http.ResponseWriter, r *http.Request, sessionId string, enc jsonEncoder) error) http.HandlerFunc {
	return common.JsonHandler(ws.logger, ws.Tracking, fn)
}

func (ws *WebServer) Handler() *http.ServeMux {
	srv := http.NewServeMux()

	srv.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		common.PrivateHeaders(w, r)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	srv.Handle("GET /metrics", promhttp.Handler())
	srv.HandleFunc("OPTIONS /api/", common.RespondToOptions)

	srv.HandleFunc("GET /api/options", ws.handle(ws.GetOptions))
	srv.HandleFunc("GET /api/models", ws.handle(ws.GetModels))
	srv.HandleFunc("GET /api/models/{id}", ws.handle(ws.GetModel))

	srv.HandleFunc("GET /api/selection", ws.handle(ws.GetSelection))
	srv.HandleFunc("PUT /api/selection", ws.handle(ws.ReplaceSelection))
	srv.HandleFunc("DELETE /api/selection", ws.handle(ws.ClearSelection))
	srv.HandleFunc("POST /api/selection/{facet}", ws.handle(ws.SetFacet))

	srv.HandleFunc("GET /api/detail", ws.handle(ws.GetDetail))
	srv.HandleFunc("POST /api/detail/{id}", ws.handle(ws.OpenDetail))
	srv.HandleFunc("DELETE /api/detail", ws.handle(ws.CloseDetail))

	return srv
}
