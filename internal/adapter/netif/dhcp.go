package netif

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/sirupsen/logrus"

	"golang-netman/internal/port"
)

const (
	leaseRequestTimeout = 15 * time.Second
	leaseRetryDelay     = 2 * time.Second
	leaseRetryBackoff   = 30 * time.Second
	leaseMaxRetries     = 3
)

// StartDHCPClient spawns the lease maintenance goroutine. The goroutine
// outlives the calling operation and runs until StopDHCPClient.
func (c *Controller) StartDHCPClient(ctx context.Context) error {
	if err := c.attached(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.dhcpCancel != nil {
		return port.ErrDHCPAlreadyStarted
	}

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.dhcpCancel = cancel
	c.dhcpDone = done

	go func() {
		defer close(done)
		c.runDHCP(runCtx)
	}()

	return nil
}

// StopDHCPClient cancels the lease maintenance goroutine and waits for it
// to exit.
func (c *Controller) StopDHCPClient(ctx context.Context) error {
	c.mu.Lock()
	if c.dhcpCancel == nil {
		c.mu.Unlock()
		return port.ErrDHCPAlreadyStopped
	}
	cancel, done := c.dhcpCancel, c.dhcpDone
	c.dhcpCancel, c.dhcpDone = nil, nil
	c.mu.Unlock()

	cancel()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	c.logger.Info("DHCP client stopped")
	return nil
}

// runDHCP acquires a lease, applies it and sleeps until renewal, retrying
// on failure. It runs until the context is cancelled.
func (c *Controller) runDHCP(ctx context.Context) {
	logger := c.logger.WithField("mac", c.HardwareAddr().String())
	logger.Info("Starting DHCP client")

	// Start with immediate lease acquisition by using a short timer
	renewalTimer := time.NewTimer(1 * time.Millisecond)
	defer renewalTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("DHCP client exiting")
			return
		case <-renewalTimer.C:
			lease, err := c.acquireLease(ctx, logger)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.WithError(err).Error("Failed to get DHCP lease, retrying in 30s")
				renewalTimer.Reset(leaseRetryBackoff)
				continue
			}

			if err := c.applyLease(lease); err != nil {
				logger.WithError(err).Error("Failed to apply DHCP lease")
			} else {
				logger.Info("Successfully configured interface")
			}

			renewal := lease.IPAddressRenewalTime(30 * time.Second)
			logger.WithField("renewal_time", renewal.String()).Info("Sleeping until renewal")
			renewalTimer.Reset(renewal)
		}
	}
}

// acquireLease performs the complete DHCP DISCOVER/OFFER/REQUEST/ACK
// sequence with a few attempts.
func (c *Controller) acquireLease(ctx context.Context, logger *logrus.Entry) (*dhcpv4.DHCPv4, error) {
	for attempt := 1; attempt <= leaseMaxRetries; attempt++ {
		logger.WithField("attempt", fmt.Sprintf("%d/%d", attempt, leaseMaxRetries)).Debug("Attempting DHCP lease")

		ack, err := c.dhcpClient.RequestLease(ctx, c.interfaceName, c.currentHostname(), leaseRequestTimeout)
		if err != nil {
			logger.WithError(err).WithField("attempt", attempt).Error("DHCP lease request failed")
			if attempt < leaseMaxRetries {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(leaseRetryDelay):
				}
				continue
			}
			return nil, fmt.Errorf("DHCP lease request failed after %d attempts: %w", leaseMaxRetries, err)
		}

		logger.WithField("ip", ack.YourIPAddr.String()).Info("Successfully obtained DHCP lease")
		return ack, nil
	}

	return nil, fmt.Errorf("failed to get DHCP lease after %d attempts", leaseMaxRetries)
}

// applyLease configures the interface with the received DHCP lease.
func (c *Controller) applyLease(ack *dhcpv4.DHCPv4) error {
	logger := c.logger

	subnetMask := ack.SubnetMask()
	if subnetMask == nil {
		// Default to /24 if no subnet mask provided
		subnetMask = net.IPv4Mask(255, 255, 255, 0)
	}

	ipNet := &net.IPNet{
		IP:   ack.YourIPAddr,
		Mask: subnetMask,
	}

	logger.WithField("ip", ipNet.String()).Info("Configuring interface with leased IP")

	link, err := c.networkMgr.GetLinkByName(c.interfaceName)
	if err != nil {
		return fmt.Errorf("failed to get netlink interface: %w", err)
	}

	leaseTime := ack.IPAddressLeaseTime(60 * time.Second)
	logger.WithField("lease_time", leaseTime.String()).Debug("Lease time extracted")

	if err := c.ensureAddress(link, ipNet, int(leaseTime.Seconds())); err != nil {
		return err
	}

	routers := ack.Router()
	if len(routers) > 0 {
		logger.WithField("gateway", routers[0].String()).Info("Setting default gateway")
		if err := c.ensureDefaultRoute(link, routers[0]); err != nil {
			return fmt.Errorf("failed to set default gateway: %w", err)
		}
	}

	dnsServers := ack.DNS()
	if len(dnsServers) > 0 {
		var dnsStrings []string
		for _, dns := range dnsServers {
			dnsStrings = append(dnsStrings, dns.String())
		}
		logger.WithField("dns_servers", strings.Join(dnsStrings, ", ")).Info("DNS servers received")

		if err := c.writeResolvConf(dnsServers); err != nil {
			logger.WithError(err).Warn("Failed to configure DNS")
		}
	}

	return nil
}
