// Package hub composes the registry into the daemon's process-local event
// hub: channels and their sinks are declared in configuration, every fire is
// stamped with an id and timestamp, and dispatch stays synchronous on the
// firing goroutine.
package hub

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"eventd/pkg/observe"
	"eventd/pkg/registry"
	"eventd/pkg/types"
)

// Sink names accepted in channel configuration.
const (
	SinkLog     = "log"
	SinkMetrics = "metrics"
	SinkRecord  = "record"
)

// ChannelSpec declares one configured channel and the sinks attached to it.
type ChannelSpec struct {
	Name  string
	Sinks []string
}

// Hub owns the daemon's registry. It holds the registry rather than deriving
// from it, so the HTTP layer only ever sees Hub's surface.
type Hub struct {
	reg *registry.Registry[types.Event]
	rec *observe.Recorder[types.Event]
	log zerolog.Logger
}

// New builds a hub with the given channels; unknown sink names are rejected.
// Dispatch runs with isolation enabled: a panicking sink is logged and the
// remaining sinks of that fire still run.
func New(log zerolog.Logger, history int, channels []ChannelSpec) (*Hub, error) {
	h := &Hub{
		rec: observe.NewRecorder[types.Event](history),
		log: log,
	}
	h.reg = registry.New(registry.WithIsolation[types.Event](func(event string, recovered any) {
		log.Error().Str("event", event).Interface("panic", recovered).Msg("sink panicked")
	}))
	for _, ch := range channels {
		for _, name := range ch.Sinks {
			o, err := h.sink(ch.Name, name)
			if err != nil {
				return nil, err
			}
			h.reg.Register(ch.Name, o)
		}
	}
	return h, nil
}

func (h *Hub) sink(event, name string) (registry.Observer[types.Event], error) {
	switch name {
	case SinkLog:
		return observe.Logged[types.Event](h.log, event), nil
	case SinkMetrics:
		return observe.Counted[types.Event](event), nil
	case SinkRecord:
		return h.rec, nil
	default:
		return nil, fmt.Errorf("unknown sink %q for channel %q", name, event)
	}
}

// Fire stamps payload and dispatches it synchronously to the channel's
// sinks. It returns the stamped event and the number of observers that
// received it; firing an unconfigured name delivers to nobody but still
// creates the channel.
func (h *Hub) Fire(name string, payload json.RawMessage) (types.Event, int) {
	delivered := h.reg.Len(name)
	ev := types.Event{
		ID:      uuid.NewString(),
		Name:    name,
		Payload: payload,
		At:      time.Now().UTC(),
	}
	h.reg.Fire(name, ev)
	return ev, delivered
}

// Channels reports every touched channel and its observer count.
func (h *Hub) Channels() []types.ChannelStatus {
	names := h.reg.Channels()
	out := make([]types.ChannelStatus, 0, len(names))
	for _, n := range names {
		out = append(out, types.ChannelStatus{Name: n, Observers: h.reg.Len(n)})
	}
	return out
}

// History returns the most recently recorded events, oldest first. Only
// channels with the record sink contribute.
func (h *Hub) History() []types.Event {
	return h.rec.Events()
}
