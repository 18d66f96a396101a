// Package metrics registers the Prometheus collectors exposed on the API
// metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LinkEvents counts link events handled by the event loop, by kind.
	LinkEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netman_link_events_total",
		Help: "Link events handled, partitioned by event kind.",
	}, []string{"event"})

	// DroppedEvents counts link events dropped because the event channel
	// was full.
	DroppedEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netman_link_events_dropped_total",
		Help: "Link events dropped due to a full event channel.",
	})

	// ConfigApplies counts configuration applications by result.
	ConfigApplies = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "netman_config_applies_total",
		Help: "Configuration applications, partitioned by result.",
	}, []string{"result"})

	// StoreSaveErrors counts failed persistence writes.
	StoreSaveErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "netman_store_save_errors_total",
		Help: "Configuration save operations that returned an error.",
	})
)
