package tracking

import (
	"net/http"

	"github.com/matst80/diecast-finder/pkg/types"
)

// NoopTracking is used when no broker is configured.
type NoopTracking struct{}

func (NoopTracking) TrackSession(string, *http.Request) {}

func (NoopTracking) TrackFilter(string, *types.Selection, int, *http.Request) {}

func (NoopTracking) TrackDetail(string, string, *http.Request) {}

func (NoopTracking) Close() error {
	return nil
}

var _ types.Tracking = NoopTracking{}
