// Package netif implements the interface controller adapter. It drives a
// single network interface through netlink, a DHCP client and the resolver
// file, and presents the primitive operations the configuration layer
// composes.
package netif

import (
	"context"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"

	"golang-netman/internal/pkg/logging"
	"golang-netman/internal/pkg/netutil"
	"golang-netman/internal/port"
	"golang-netman/internal/types"
)

const (
	resolvConfPath = "/etc/resolv.conf"
	hostnamePath   = "/etc/hostname"
)

// Controller implements the NetifController port on top of the
// infrastructure ports. Foreground operations are serialized by the
// owning service; the mutex only protects state shared with the DHCP
// client goroutine.
type Controller struct {
	interfaceName string
	networkMgr    port.NetworkManager
	fileMgr       port.FileManager
	systemMgr     port.SystemManager
	dhcpClient    port.DHCPClient
	logger        *logrus.Entry

	mu       sync.Mutex
	iface    *net.Interface
	hostname string
	dns      [types.DNSMaxServers]net.IP

	dhcpCancel context.CancelFunc
	dhcpDone   chan struct{}
}

// Ensure Controller implements the NetifController port
var _ port.NetifController = (*Controller)(nil)

// NewController creates a controller for the given interface name. The
// interface itself is resolved by Attach.
func NewController(interfaceName string, dhcpClient port.DHCPClient, networkMgr port.NetworkManager, fileMgr port.FileManager, systemMgr port.SystemManager) *Controller {
	return &Controller{
		interfaceName: interfaceName,
		networkMgr:    networkMgr,
		fileMgr:       fileMgr,
		systemMgr:     systemMgr,
		dhcpClient:    dhcpClient,
		logger:        logging.WithComponentAndInterface("netif", interfaceName),
	}
}

// Attach resolves the OS interface and binds the controller to it.
func (c *Controller) Attach(ctx context.Context) error {
	iface, err := net.InterfaceByName(c.interfaceName)
	if err != nil {
		return fmt.Errorf("interface not found: %w", err)
	}

	c.mu.Lock()
	c.iface = iface
	c.mu.Unlock()

	c.logger.WithField("mac", iface.HardwareAddr.String()).Info("Attached to interface")
	return nil
}

// InterfaceName returns the name of the managed interface.
func (c *Controller) InterfaceName() string {
	return c.interfaceName
}

// HardwareAddr returns the MAC of the attached interface.
func (c *Controller) HardwareAddr() net.HardwareAddr {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.iface == nil {
		return nil
	}
	return c.iface.HardwareAddr
}

func (c *Controller) attached() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.iface == nil {
		return fmt.Errorf("controller not attached to %s", c.interfaceName)
	}
	return nil
}

// Start brings the interface administratively up.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.attached(); err != nil {
		return err
	}

	link, err := c.networkMgr.GetLinkByName(c.interfaceName)
	if err != nil {
		return fmt.Errorf("failed to get netlink interface: %w", err)
	}

	if c.networkMgr.IsLinkUp(link) {
		return port.ErrAlreadyStarted
	}

	if err := c.networkMgr.SetLinkUp(link); err != nil {
		return fmt.Errorf("failed to bring interface up: %w", err)
	}

	c.logger.Info("Interface started")
	return nil
}

// Stop takes the interface administratively down.
func (c *Controller) Stop(ctx context.Context) error {
	if err := c.attached(); err != nil {
		return err
	}

	link, err := c.networkMgr.GetLinkByName(c.interfaceName)
	if err != nil {
		return fmt.Errorf("failed to get netlink interface: %w", err)
	}

	if !c.networkMgr.IsLinkUp(link) {
		return port.ErrAlreadyStopped
	}

	if err := c.networkMgr.SetLinkDown(link); err != nil {
		return fmt.Errorf("failed to take interface down: %w", err)
	}

	c.logger.Info("Interface stopped")
	return nil
}

// SetIPInfo pushes a static address, netmask and optional gateway to the
// interface.
func (c *Controller) SetIPInfo(ctx context.Context, info types.IPInfo) error {
	if err := c.attached(); err != nil {
		return err
	}

	if netutil.IsAnyIP(info.Address) {
		return fmt.Errorf("missing interface address")
	}
	mask := netutil.MaskFromIP(info.Netmask)
	if mask == nil {
		return fmt.Errorf("invalid netmask: %v", info.Netmask)
	}

	link, err := c.networkMgr.GetLinkByName(c.interfaceName)
	if err != nil {
		return fmt.Errorf("failed to get netlink interface: %w", err)
	}

	ipNet := &net.IPNet{
		IP:   info.Address.To4(),
		Mask: mask,
	}

	if err := c.ensureAddress(link, ipNet, 0); err != nil {
		return err
	}

	if !netutil.IsAnyIP(info.Gateway) {
		if err := c.ensureDefaultRoute(link, info.Gateway); err != nil {
			return err
		}
	}

	return nil
}

// ensureAddress makes ipNet the sole IPv4 address of the link. Addresses
// already present are left alone so repeated application is a no-op. A
// non-zero lifetime marks the address as expiring, as DHCP leases do.
func (c *Controller) ensureAddress(link netlink.Link, ipNet *net.IPNet, lifetimeSeconds int) error {
	logger := c.logger.WithField("ip", ipNet.String())

	existingAddrs, err := c.networkMgr.ListAddresses(link)
	if err != nil {
		return fmt.Errorf("failed to list existing addresses: %w", err)
	}

	// Check if the target IP is already configured
	targetConfigured := false
	for _, addr := range existingAddrs {
		if addr.IPNet.IP.Equal(ipNet.IP) && addr.IPNet.Mask.String() == ipNet.Mask.String() {
			logger.Debug("IP address already configured, skipping")
			targetConfigured = true
			break
		}
	}

	if !targetConfigured {
		// Remove existing IPv4 addresses that don't match our target
		for _, addr := range existingAddrs {
			if !addr.IPNet.IP.Equal(ipNet.IP) {
				if err := c.networkMgr.DeleteAddress(link, &addr); err != nil {
					logger.WithError(err).WithField("address", addr.IPNet.String()).Warn("Failed to remove existing address")
				} else {
					logger.WithField("address", addr.IPNet.String()).Debug("Removed existing address")
				}
			}
		}

		addr := &netlink.Addr{
			IPNet:       ipNet,
			ValidLft:    lifetimeSeconds,
			PreferedLft: lifetimeSeconds,
		}
		if err := c.networkMgr.AddAddress(link, addr); err != nil {
			return fmt.Errorf("failed to add IP address %s: %w", ipNet.String(), err)
		}
		logger.Info("Successfully added IP address")
	}

	return nil
}

// ensureDefaultRoute makes gateway the default route of the link, removing
// conflicting default routes first.
func (c *Controller) ensureDefaultRoute(link netlink.Link, gateway net.IP) error {
	logger := c.logger.WithField("gateway", gateway.String())

	routes, err := c.networkMgr.ListRoutes()
	if err != nil {
		return fmt.Errorf("failed to list routes: %w", err)
	}

	// Check if the desired default route already exists
	targetRouteExists := false
	for _, route := range routes {
		if (route.Dst == nil || route.Dst.String() == "0.0.0.0/0") &&
			route.Gw != nil && route.Gw.Equal(gateway) &&
			route.LinkIndex == link.Attrs().Index {
			logger.Debug("Default route already configured, skipping")
			targetRouteExists = true
			break
		}
	}

	if !targetRouteExists {
		// Remove existing default routes that don't match our target
		for _, route := range routes {
			if route.Dst == nil || route.Dst.String() == "0.0.0.0/0" {
				if route.Gw != nil && route.Gw.Equal(gateway) && route.LinkIndex == link.Attrs().Index {
					continue
				}

				if err := c.networkMgr.DeleteRoute(&route); err != nil {
					logger.WithError(err).Warn("Failed to remove existing default route")
				} else if route.Gw != nil {
					logger.WithField("old_gateway", route.Gw.String()).Debug("Removed existing default route")
				} else {
					logger.Debug("Removed existing default route")
				}
			}
		}

		route := &netlink.Route{
			LinkIndex: link.Attrs().Index,
			Gw:        gateway,
		}

		if err := c.networkMgr.AddRoute(route); err != nil {
			if strings.Contains(err.Error(), "file exists") {
				logger.Debug("Default route already exists, ignoring error")
			} else {
				return fmt.Errorf("failed to add default route: %w", err)
			}
		} else {
			logger.Info("Successfully configured default route")
		}
	}

	return nil
}

// SetDNSInfo sets one DNS slot and rewrites the resolver file. A slot set
// to the any address is cleared.
func (c *Controller) SetDNSInfo(ctx context.Context, index int, server net.IP) error {
	if err := c.attached(); err != nil {
		return err
	}
	if index < 0 || index >= types.DNSMaxServers {
		return fmt.Errorf("dns slot %d out of range", index)
	}

	c.mu.Lock()
	if netutil.IsAnyIP(server) {
		c.dns[index] = nil
	} else {
		c.dns[index] = server
	}
	servers := c.dns
	c.mu.Unlock()

	return c.writeResolvConf(servers[:])
}

// writeResolvConf renders the given servers and writes the resolver file
// when its content changed.
func (c *Controller) writeResolvConf(servers []net.IP) error {
	newContent := netutil.RenderResolvConf(servers)

	if currentContent, err := c.fileMgr.ReadFile(resolvConfPath); err == nil {
		if string(currentContent) == newContent {
			c.logger.Debug("DNS configuration already up to date, skipping")
			return nil
		}
	}

	if err := c.fileMgr.WriteFileAtomic(resolvConfPath, []byte(newContent), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", resolvConfPath, err)
	}

	c.logger.Info("Updated resolver configuration")
	return nil
}

// SetHostname pushes a hostname to the kernel, persists it and uses it in
// subsequent DHCP requests.
func (c *Controller) SetHostname(ctx context.Context, name string) error {
	if err := c.systemMgr.SetHostname(name); err != nil {
		return fmt.Errorf("failed to set hostname: %w", err)
	}

	if err := c.fileMgr.WriteFileAtomic(hostnamePath, []byte(name+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to persist hostname: %w", err)
	}

	c.mu.Lock()
	c.hostname = name
	c.mu.Unlock()

	c.logger.WithField("hostname", name).Info("Hostname updated")
	return nil
}

func (c *Controller) currentHostname() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hostname
}

// IPInfo reads the live address, netmask and gateway of the interface.
// An interface without an address yields the zero value.
func (c *Controller) IPInfo(ctx context.Context) (types.IPInfo, error) {
	if err := c.attached(); err != nil {
		return types.IPInfo{}, err
	}

	link, err := c.networkMgr.GetLinkByName(c.interfaceName)
	if err != nil {
		return types.IPInfo{}, fmt.Errorf("failed to get netlink interface: %w", err)
	}

	addrs, err := c.networkMgr.ListAddresses(link)
	if err != nil {
		return types.IPInfo{}, fmt.Errorf("failed to list addresses: %w", err)
	}

	var info types.IPInfo
	if len(addrs) > 0 {
		info.Address = addrs[0].IPNet.IP.To4()
		info.Netmask = net.IP(addrs[0].IPNet.Mask).To4()
	}

	routes, err := c.networkMgr.ListRoutes()
	if err != nil {
		return types.IPInfo{}, fmt.Errorf("failed to list routes: %w", err)
	}
	for _, route := range routes {
		if (route.Dst == nil || route.Dst.String() == "0.0.0.0/0") &&
			route.Gw != nil && route.LinkIndex == link.Attrs().Index {
			info.Gateway = route.Gw.To4()
			break
		}
	}

	return info, nil
}

// LinkLocalAddresses reports the IPv6 link local addresses assigned to
// the interface.
func (c *Controller) LinkLocalAddresses(ctx context.Context) ([]net.IP, error) {
	if err := c.attached(); err != nil {
		return nil, err
	}

	link, err := c.networkMgr.GetLinkByName(c.interfaceName)
	if err != nil {
		return nil, fmt.Errorf("failed to get netlink interface: %w", err)
	}

	addrs, err := c.networkMgr.ListV6Addresses(link)
	if err != nil {
		return nil, fmt.Errorf("failed to list IPv6 addresses: %w", err)
	}

	var linkLocal []net.IP
	for _, addr := range addrs {
		if addr.IPNet.IP.IsLinkLocalUnicast() {
			linkLocal = append(linkLocal, addr.IPNet.IP)
		}
	}
	return linkLocal, nil
}

// DNSInfo reads one live DNS slot from the resolver file. Slots beyond the
// configured servers are absent.
func (c *Controller) DNSInfo(ctx context.Context, index int) (net.IP, error) {
	if index < 0 || index >= types.DNSMaxServers {
		return nil, fmt.Errorf("dns slot %d out of range", index)
	}

	data, err := c.fileMgr.ReadFile(resolvConfPath)
	if err != nil {
		// A missing resolver file means no DNS is configured.
		return nil, nil
	}

	servers := netutil.ParseResolvConf(data)
	if index >= len(servers) {
		return nil, nil
	}
	return servers[index], nil
}

// DHCPStatus reports whether the DHCP client goroutine is running.
func (c *Controller) DHCPStatus(ctx context.Context) (types.DHCPStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dhcpCancel != nil {
		return types.DHCPStatusStarted, nil
	}
	return types.DHCPStatusStopped, nil
}
