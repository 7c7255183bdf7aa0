// Package observe provides ready-made observers for a registry.Registry:
// structured-logging, Prometheus counting, and in-memory recording sinks.
package observe

import (
	"github.com/rs/zerolog"

	"eventd/pkg/registry"
)

// Logged returns an observer that writes one structured log line per
// delivery. Payloads are logged with zerolog's Interface field, so anything
// JSON-marshalable renders usefully.
func Logged[T any](l zerolog.Logger, event string) registry.Observer[T] {
	return registry.Fn(func(payload T) {
		l.Info().Str("event", event).Interface("payload", payload).Msg("event delivered")
	})
}
