package observe

import (
	"github.com/prometheus/client_golang/prometheus"

	"eventd/pkg/registry"
)

var eventsDelivered = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "eventd",
		Subsystem: "events",
		Name:      "delivered_total",
		Help:      "Total observer deliveries per event name",
	},
	[]string{"event"},
)

func init() {
	prometheus.MustRegister(eventsDelivered)
}

// Counted returns an observer that increments the delivery counter for event.
func Counted[T any](event string) registry.Observer[T] {
	return registry.Fn(func(T) {
		eventsDelivered.WithLabelValues(event).Inc()
	})
}
