// Package monitor watches kernel link state and turns flag transitions
// into lifecycle events for a single interface.
package monitor

import (
	"context"
	"fmt"
	"net"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"golang-netman/internal/pkg/logging"
	"golang-netman/internal/pkg/metrics"
	"golang-netman/internal/port"
	"golang-netman/internal/types"
)

// NetlinkMonitor subscribes to rtnetlink link updates and emits events on
// administrative (up/down) and carrier (running) edges. Sends never block;
// when the consumer falls behind the event is dropped and counted.
type NetlinkMonitor struct {
	interfaceName string
	logger        *logrus.Entry

	// Last observed state, owned by the Run goroutine.
	adminUp   bool
	carrierUp bool
}

// Ensure NetlinkMonitor implements the LinkMonitor port
var _ port.LinkMonitor = (*NetlinkMonitor)(nil)

// NewNetlinkMonitor creates a monitor for the given interface.
func NewNetlinkMonitor(interfaceName string) *NetlinkMonitor {
	return &NetlinkMonitor{
		interfaceName: interfaceName,
		logger:        logging.WithComponentAndInterface("link-monitor", interfaceName),
	}
}

// Run subscribes to link updates and emits events until the context is
// cancelled. The current link state is observed once at startup so an
// interface that is already up produces its Started and LinkUp events
// after a daemon restart.
func (m *NetlinkMonitor) Run(ctx context.Context, events chan<- types.LinkEvent) error {
	// Each run starts from a down baseline so a restart re-emits the
	// events for an interface that is already up.
	m.adminUp = false
	m.carrierUp = false

	updates := make(chan netlink.LinkUpdate, 16)
	done := make(chan struct{})
	defer close(done)

	if err := netlink.LinkSubscribe(updates, done); err != nil {
		return fmt.Errorf("failed to subscribe to link updates: %w", err)
	}

	if link, err := netlink.LinkByName(m.interfaceName); err == nil {
		attrs := link.Attrs()
		m.transition(events,
			attrs.RawFlags&unix.IFF_UP != 0,
			attrs.RawFlags&unix.IFF_RUNNING != 0,
			attrs.HardwareAddr)
	} else {
		m.logger.WithError(err).Debug("Interface not present yet, waiting for link updates")
	}

	m.logger.Info("Link monitor started")

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Link monitor stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return fmt.Errorf("link update subscription closed")
			}
			attrs := update.Link.Attrs()
			if attrs == nil || attrs.Name != m.interfaceName {
				continue
			}

			adminUp := attrs.RawFlags&unix.IFF_UP != 0
			carrierUp := attrs.RawFlags&unix.IFF_RUNNING != 0
			if update.Header.Type == unix.RTM_DELLINK {
				adminUp, carrierUp = false, false
			}
			m.transition(events, adminUp, carrierUp, attrs.HardwareAddr)
		}
	}
}

// transition compares the observed state against the previous one and
// emits an event per edge. Up transitions report Started before LinkUp,
// down transitions report LinkDown before Stopped.
func (m *NetlinkMonitor) transition(events chan<- types.LinkEvent, adminUp, carrierUp bool, hwAddr net.HardwareAddr) {
	if adminUp && !m.adminUp {
		m.emit(events, types.LinkEventStarted, hwAddr)
	}
	if carrierUp && !m.carrierUp {
		m.emit(events, types.LinkEventUp, hwAddr)
	}
	if !carrierUp && m.carrierUp {
		m.emit(events, types.LinkEventDown, hwAddr)
	}
	if !adminUp && m.adminUp {
		m.emit(events, types.LinkEventStopped, hwAddr)
	}

	m.adminUp = adminUp
	m.carrierUp = carrierUp
}

func (m *NetlinkMonitor) emit(events chan<- types.LinkEvent, kind types.LinkEventKind, hwAddr net.HardwareAddr) {
	event := types.LinkEvent{
		Kind:         kind,
		Interface:    m.interfaceName,
		HardwareAddr: hwAddr,
	}

	select {
	case events <- event:
		metrics.LinkEvents.WithLabelValues(kind.String()).Inc()
	default:
		metrics.DroppedEvents.Inc()
		m.logger.WithField("event", kind.String()).Warn("Event buffer full, dropping link event")
	}
}
