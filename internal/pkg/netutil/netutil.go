// Package netutil provides small IPv4 and resolv.conf helpers shared by the
// interface controller and the configuration layer.
package netutil

import (
	"fmt"
	"net"
	"strings"
)

// ResolvConfHeader marks resolver files written by this daemon.
const ResolvConfHeader = "# Generated by golang-netman\n"

// IsAnyIP reports whether ip is absent: nil, empty, or the all-zero
// address. Such entries are skipped by apply and persistence.
func IsAnyIP(ip net.IP) bool {
	if len(ip) == 0 {
		return true
	}
	return ip.IsUnspecified()
}

// IPEqual compares two addresses treating nil and 0.0.0.0 as the same
// absent value.
func IPEqual(a, b net.IP) bool {
	if IsAnyIP(a) && IsAnyIP(b) {
		return true
	}
	if IsAnyIP(a) || IsAnyIP(b) {
		return false
	}
	return a.Equal(b)
}

// IPv4Bytes returns the 4-byte form of ip, or four zero bytes for absent
// entries. Non-IPv4 addresses yield zero bytes as well.
func IPv4Bytes(ip net.IP) [4]byte {
	var out [4]byte
	if IsAnyIP(ip) {
		return out
	}
	v4 := ip.To4()
	if v4 == nil {
		return out
	}
	copy(out[:], v4)
	return out
}

// IPv4FromBytes returns the address stored in b, or nil when b is all
// zero.
func IPv4FromBytes(b [4]byte) net.IP {
	if b == [4]byte{} {
		return nil
	}
	return net.IPv4(b[0], b[1], b[2], b[3]).To4()
}

// MaskFromIP converts a netmask given in address form (255.255.255.0) to a
// net.IPMask. Returns nil when the input is not an IPv4 address.
func MaskFromIP(mask net.IP) net.IPMask {
	v4 := mask.To4()
	if v4 == nil {
		return nil
	}
	return net.IPMask(v4)
}

// RenderResolvConf produces resolv.conf contents for the given servers in
// slot order, skipping absent entries.
func RenderResolvConf(servers []net.IP) string {
	var b strings.Builder
	b.WriteString(ResolvConfHeader)
	for _, s := range servers {
		if IsAnyIP(s) {
			continue
		}
		fmt.Fprintf(&b, "nameserver %s\n", s.String())
	}
	return b.String()
}

// ParseResolvConf extracts nameserver entries from resolv.conf contents in
// file order. Unparseable lines are ignored.
func ParseResolvConf(data []byte) []net.IP {
	var servers []net.IP
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "nameserver") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if ip := net.ParseIP(fields[1]); ip != nil {
			servers = append(servers, ip)
		}
	}
	return servers
}
