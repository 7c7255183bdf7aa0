package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"eventd/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Fire(name string, payload json.RawMessage) (types.Event, int)
	Channels() []types.ChannelStatus
	History() []types.Event
}

// zlog is an optional structured logger. If unset, handlers stay quiet.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// NewMux builds the daemon's router: event firing, channel inspection,
// history, health, and Prometheus metrics.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	r.Use(MetricsMiddleware)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}

	r.Post("/events/{name}", func(w http.ResponseWriter, req *http.Request) {
		handleFire(svc, w, req)
	})

	r.Get("/channels", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, types.ChannelsResponse{Channels: svc.Channels()})
	})

	r.Get("/history", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, types.HistoryResponse{Events: svc.History()})
	})

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", promhttp.Handler())
	MountSwagger(r)
	return r
}

// handleFire reads an optional JSON body and fires it into the hub. Dispatch
// is synchronous, so a 200 means every observer has already run.
func handleFire(svc Service, w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	if name == "" {
		writeJSONError(w, http.StatusBadRequest, "missing event name")
		return
	}
	body, err := io.ReadAll(io.LimitReader(req.Body, maxBodyBytes))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "read body: "+err.Error())
		return
	}
	var payload json.RawMessage
	if len(body) > 0 {
		if !json.Valid(body) {
			writeJSONError(w, http.StatusBadRequest, "payload must be valid JSON")
			return
		}
		payload = json.RawMessage(body)
	}
	ev, delivered := svc.Fire(name, payload)
	if zlog != nil {
		zlog.Debug().Str("event", name).Str("id", ev.ID).Int("delivered", delivered).Msg("fired")
	}
	writeJSON(w, http.StatusOK, types.FireResponse{ID: ev.ID, Event: name, Delivered: delivered})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
