package tracking

import (
	"net/http"

	"github.com/matst80/diecast-finder/pkg/types"
)

const (
	EventSession uint16 = 0
	EventFilter  uint16 = 1
	EventDetail  uint16 = 2
)

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Catalog   string `json:"catalog,omitempty"`
	Event     uint16 `json:"event"`
}

type Session struct {
	*BaseEvent
	UserAgent    string `json:"user_agent,omitempty"`
	Ip           string `json:"ip,omitempty"`
	Language     string `json:"language,omitempty"`
	PragmaHeader string `json:"pragma,omitempty"`
}

type FilterEvent struct {
	*BaseEvent
	*types.Selection
	NumberOfResults int    `json:"noi"`
	Referer         string `json:"referer,omitempty"`
}

type DetailEvent struct {
	*BaseEvent
	Model   string `json:"model"`
	Referer string `json:"referer,omitempty"`
}

func clientIp(r *http.Request) string {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	return ip
}
