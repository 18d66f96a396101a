package types

import "net"

// LinkEventKind identifies a link state transition reported by the event
// source. Kinds outside this set are ignored by the manager.
type LinkEventKind int

const (
	// LinkEventStarted is emitted when the interface is administratively
	// brought up.
	LinkEventStarted LinkEventKind = iota
	// LinkEventStopped is emitted when the interface is administratively
	// taken down.
	LinkEventStopped
	// LinkEventUp is emitted when the link gains carrier.
	LinkEventUp
	// LinkEventDown is emitted when the link loses carrier.
	LinkEventDown
	// LinkEventGotIP is reserved for address-acquisition notifications.
	// Nothing emits it today.
	LinkEventGotIP
)

// String returns a human readable event name.
func (k LinkEventKind) String() string {
	switch k {
	case LinkEventStarted:
		return "started"
	case LinkEventStopped:
		return "stopped"
	case LinkEventUp:
		return "link-up"
	case LinkEventDown:
		return "link-down"
	case LinkEventGotIP:
		return "got-ip"
	default:
		return "unknown"
	}
}

// LinkEvent is one asynchronous link state notification.
type LinkEvent struct {
	Kind         LinkEventKind
	Interface    string
	HardwareAddr net.HardwareAddr // populated on LinkEventUp when known
}
