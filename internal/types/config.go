// Package types defines common types used across the application.
package types

import "net"

// DNSMaxServers is the number of DNS slots carried by a configuration.
// It matches the resolver limit of the platforms this daemon targets.
const DNSMaxServers = 3

// IPInfo holds the static addressing parameters of an interface.
type IPInfo struct {
	Address net.IP // interface address
	Netmask net.IP // subnet mask in address form (e.g. 255.255.255.0)
	Gateway net.IP // default gateway, may be nil
}

// Configuration is the persisted and effective configuration unit of a
// managed interface. IP and DNS are meaningful only when IsStatic is set.
type Configuration struct {
	IsDefault   bool // compiled-in defaults; never persisted
	IsValid     bool // set once load-or-default resolution has run
	IsConnected bool // populated only by live-state queries
	IsDisabled  bool // interface administratively disabled
	IsStatic    bool // static addressing; false selects DHCP

	IP  IPInfo
	DNS [DNSMaxServers]net.IP // nil or 0.0.0.0 entries are absent
}

// DHCPStatus reports the state of the DHCP client on the interface.
type DHCPStatus int

const (
	// DHCPStatusStopped means no DHCP client is running; static addressing
	// is in effect.
	DHCPStatusStopped DHCPStatus = iota
	// DHCPStatusStarted means the DHCP client is running.
	DHCPStatusStarted
)

// String returns a human readable status name.
func (s DHCPStatus) String() string {
	switch s {
	case DHCPStatusStopped:
		return "stopped"
	case DHCPStatusStarted:
		return "started"
	default:
		return "unknown"
	}
}
