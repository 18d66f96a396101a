package api

import (
	"net"

	"golang-netman/internal/pkg/netutil"
	"golang-netman/internal/types"
)

// ConfigRequest is the request body for configuration updates. Addresses
// are dotted-quad IPv4 strings; empty strings mean absent.
type ConfigRequest struct {
	Disabled bool     `json:"disabled"`
	Static   bool     `json:"static"`
	Address  string   `json:"address,omitempty" validate:"omitempty,ip4_addr"`
	Netmask  string   `json:"netmask,omitempty" validate:"omitempty,ip4_addr"`
	Gateway  string   `json:"gateway,omitempty" validate:"omitempty,ip4_addr"`
	DNS      []string `json:"dns,omitempty" validate:"max=3,dive,ip4_addr"`
}

// ConfigInfo describes a configuration in responses.
type ConfigInfo struct {
	Default  bool     `json:"default"`
	Valid    bool     `json:"valid"`
	Disabled bool     `json:"disabled"`
	Static   bool     `json:"static"`
	Address  string   `json:"address,omitempty"`
	Netmask  string   `json:"netmask,omitempty"`
	Gateway  string   `json:"gateway,omitempty"`
	DNS      []string `json:"dns,omitempty"`
}

// StateInfo describes live interface state in responses.
type StateInfo struct {
	ConfigInfo
	Connected bool `json:"connected"`
}

// ConfigUpdateResult reports whether an update changed the interface
// behavior.
type ConfigUpdateResult struct {
	Changed bool `json:"changed"`
}

// HostnameRequest is the request body for hostname updates.
type HostnameRequest struct {
	Hostname string `json:"hostname" validate:"required,hostname_rfc1123"`
}

// HostnameInfo reports the applied hostname.
type HostnameInfo struct {
	Hostname string `json:"hostname"`
}

// StatusInfo reports daemon status.
type StatusInfo struct {
	Interface string      `json:"interface"`
	Ready     bool        `json:"ready"`
	Version   VersionInfo `json:"version"`
}

// VersionInfo contains build version information.
type VersionInfo struct {
	Commit string `json:"commit"`
	Branch string `json:"branch"`
	Tag    string `json:"tag"`
	Dirty  bool   `json:"dirty"`
}

func configInfoFrom(cfg types.Configuration) ConfigInfo {
	info := ConfigInfo{
		Default:  cfg.IsDefault,
		Valid:    cfg.IsValid,
		Disabled: cfg.IsDisabled,
		Static:   cfg.IsStatic,
		Address:  ipString(cfg.IP.Address),
		Netmask:  ipString(cfg.IP.Netmask),
		Gateway:  ipString(cfg.IP.Gateway),
	}
	for _, server := range cfg.DNS {
		if !netutil.IsAnyIP(server) {
			info.DNS = append(info.DNS, server.String())
		}
	}
	return info
}

func (r ConfigRequest) toConfiguration() types.Configuration {
	cfg := types.Configuration{
		IsDisabled: r.Disabled,
		IsStatic:   r.Static,
		IP: types.IPInfo{
			Address: net.ParseIP(r.Address),
			Netmask: net.ParseIP(r.Netmask),
			Gateway: net.ParseIP(r.Gateway),
		},
	}
	for i, server := range r.DNS {
		if i >= len(cfg.DNS) {
			break
		}
		cfg.DNS[i] = net.ParseIP(server)
	}
	return cfg
}

func ipString(ip net.IP) string {
	if netutil.IsAnyIP(ip) {
		return ""
	}
	return ip.String()
}
