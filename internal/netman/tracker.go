package netman

import "sync/atomic"

// StateBit identifies one sticky bit of the connection state tracker.
type StateBit uint32

const (
	// BitStarted is set while the interface is administratively up.
	BitStarted StateBit = 1 << iota
	// BitConnected is set while the link reports carrier.
	BitConnected
	// BitGotIP is reserved for address acquisition tracking. No event
	// currently sets it.
	BitGotIP
)

// ConnectionStateTracker holds sticky bits set and cleared by the event
// loop and read by foreground state queries. All operations are safe for
// concurrent use.
type ConnectionStateTracker struct {
	bits atomic.Uint32
}

// NewConnectionStateTracker returns a tracker with all bits clear.
func NewConnectionStateTracker() *ConnectionStateTracker {
	return &ConnectionStateTracker{}
}

// Set latches the given bit.
func (t *ConnectionStateTracker) Set(bit StateBit) {
	t.bits.Or(uint32(bit))
}

// Clear releases the given bit.
func (t *ConnectionStateTracker) Clear(bit StateBit) {
	t.bits.And(^uint32(bit))
}

// IsSet reads the given bit at this point in time.
func (t *ConnectionStateTracker) IsSet(bit StateBit) bool {
	return t.bits.Load()&uint32(bit) != 0
}
