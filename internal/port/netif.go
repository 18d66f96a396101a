package port

import (
	"context"
	"errors"
	"net"

	"golang-netman/internal/types"
)

//go:generate mockgen -source=netif.go -destination=../mock/netif.go -package=mock

// Sentinels reported by NetifController when the interface is already in
// the requested state. Callers treat them as success to keep configuration
// application idempotent.
var (
	ErrAlreadyStarted     = errors.New("interface already started")
	ErrAlreadyStopped     = errors.New("interface already stopped")
	ErrDHCPAlreadyStarted = errors.New("dhcp client already started")
	ErrDHCPAlreadyStopped = errors.New("dhcp client already stopped")
)

// NetifController is the facade over interface primitives consumed by
// configuration application and live-state queries.
type NetifController interface {
	// Attach resolves the OS interface and binds the controller to it.
	// It must be called before any other operation.
	Attach(ctx context.Context) error

	// InterfaceName returns the name of the managed interface.
	InterfaceName() string

	// HardwareAddr returns the MAC of the attached interface.
	HardwareAddr() net.HardwareAddr

	// SetIPInfo pushes a static address, netmask and optional gateway.
	SetIPInfo(ctx context.Context, info types.IPInfo) error

	// SetDNSInfo sets one DNS slot. Slots equal to the any address clear
	// the entry.
	SetDNSInfo(ctx context.Context, index int, server net.IP) error

	// StartDHCPClient starts lease acquisition. Returns
	// ErrDHCPAlreadyStarted when a client is already running.
	StartDHCPClient(ctx context.Context) error

	// StopDHCPClient stops the running client. Returns
	// ErrDHCPAlreadyStopped when no client is running.
	StopDHCPClient(ctx context.Context) error

	// Start brings the interface administratively up. Returns
	// ErrAlreadyStarted when it already is.
	Start(ctx context.Context) error

	// Stop takes the interface down. Returns ErrAlreadyStopped when it
	// already is.
	Stop(ctx context.Context) error

	// SetHostname pushes a hostname to the host and to subsequent DHCP
	// requests.
	SetHostname(ctx context.Context, name string) error

	// IPInfo reads the live address, netmask and gateway.
	IPInfo(ctx context.Context) (types.IPInfo, error)

	// LinkLocalAddresses reports the IPv6 link local addresses of the
	// interface.
	LinkLocalAddresses(ctx context.Context) ([]net.IP, error)

	// DNSInfo reads one live DNS slot.
	DNSInfo(ctx context.Context, index int) (net.IP, error)

	// DHCPStatus reports whether a DHCP client is running.
	DHCPStatus(ctx context.Context) (types.DHCPStatus, error)
}

// LinkMonitor is a port for asynchronous link event notification.
type LinkMonitor interface {
	// Run subscribes to link updates and publishes events for the managed
	// interface until the context is cancelled. Sends must not block: an
	// event that cannot be delivered is dropped.
	Run(ctx context.Context, events chan<- types.LinkEvent) error
}
