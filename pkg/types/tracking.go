package types

import (
	"net/http"
)

type Tracking interface {
	TrackSession(sessionId string, r *http.Request)
	TrackFilter(sessionId string, selection *Selection, resultLen int, r *http.Request)
	TrackDetail(sessionId string, modelId string, r *http.Request)
	Close() error
}
