//go:build unit

package netif

import (
	"context"
	"net"
	"testing"
	"time"

	"golang-netman/internal/mock"
	"golang-netman/internal/port"
	"golang-netman/internal/types"

	"github.com/insomniacslk/dhcp/dhcpv4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"go.uber.org/mock/gomock"
)

func newTestController(t *testing.T, ctrl *gomock.Controller) (*Controller, *mock.MockDHCPClient, *mock.MockNetworkManager, *mock.MockFileManager, *mock.MockSystemManager) {
	t.Helper()

	dhcpClient := mock.NewMockDHCPClient(ctrl)
	networkMgr := mock.NewMockNetworkManager(ctrl)
	fileMgr := mock.NewMockFileManager(ctrl)
	systemMgr := mock.NewMockSystemManager(ctrl)

	c := NewController("lo", dhcpClient, networkMgr, fileMgr, systemMgr)
	require.NoError(t, c.Attach(context.Background()))

	return c, dhcpClient, networkMgr, fileMgr, systemMgr
}

func TestAttach(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dhcpClient := mock.NewMockDHCPClient(ctrl)
	networkMgr := mock.NewMockNetworkManager(ctrl)
	fileMgr := mock.NewMockFileManager(ctrl)
	systemMgr := mock.NewMockSystemManager(ctrl)

	t.Run("ValidInterface", func(t *testing.T) {
		c := NewController("lo", dhcpClient, networkMgr, fileMgr, systemMgr)
		require.NoError(t, c.Attach(context.Background()))
		assert.Equal(t, "lo", c.InterfaceName())
	})

	t.Run("InvalidInterface", func(t *testing.T) {
		c := NewController("nonexistent", dhcpClient, networkMgr, fileMgr, systemMgr)
		err := c.Attach(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "interface not found")
	})

	t.Run("OperationBeforeAttach", func(t *testing.T) {
		c := NewController("lo", dhcpClient, networkMgr, fileMgr, systemMgr)
		err := c.Start(context.Background())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not attached")
	})
}

func TestController_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, networkMgr, _, _ := newTestController(t, ctrl)
	ctx := context.Background()

	mockLink := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 1, Name: "lo"}}

	t.Run("StartWhenDown", func(t *testing.T) {
		networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
		networkMgr.EXPECT().IsLinkUp(mockLink).Return(false)
		networkMgr.EXPECT().SetLinkUp(mockLink).Return(nil)

		assert.NoError(t, c.Start(ctx))
	})

	t.Run("StartWhenAlreadyUp", func(t *testing.T) {
		networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
		networkMgr.EXPECT().IsLinkUp(mockLink).Return(true)

		assert.ErrorIs(t, c.Start(ctx), port.ErrAlreadyStarted)
	})

	t.Run("StopWhenUp", func(t *testing.T) {
		networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
		networkMgr.EXPECT().IsLinkUp(mockLink).Return(true)
		networkMgr.EXPECT().SetLinkDown(mockLink).Return(nil)

		assert.NoError(t, c.Stop(ctx))
	})

	t.Run("StopWhenAlreadyDown", func(t *testing.T) {
		networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
		networkMgr.EXPECT().IsLinkUp(mockLink).Return(false)

		assert.ErrorIs(t, c.Stop(ctx), port.ErrAlreadyStopped)
	})
}

func TestController_SetIPInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, networkMgr, _, _ := newTestController(t, ctrl)
	ctx := context.Background()

	mockLink := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 1, Name: "lo"}}

	info := types.IPInfo{
		Address: net.ParseIP("192.168.1.50"),
		Netmask: net.ParseIP("255.255.255.0"),
		Gateway: net.ParseIP("192.168.1.1"),
	}

	t.Run("NewAddressWithGateway", func(t *testing.T) {
		networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
		networkMgr.EXPECT().ListAddresses(mockLink).Return([]netlink.Addr{}, nil)
		networkMgr.EXPECT().AddAddress(mockLink, gomock.Any()).Return(nil)
		networkMgr.EXPECT().ListRoutes().Return([]netlink.Route{}, nil)
		networkMgr.EXPECT().AddRoute(gomock.Any()).Return(nil)

		assert.NoError(t, c.SetIPInfo(ctx, info))
	})

	t.Run("AddressAlreadyConfigured", func(t *testing.T) {
		existingAddr := netlink.Addr{
			IPNet: &net.IPNet{
				IP:   net.ParseIP("192.168.1.50"),
				Mask: net.IPv4Mask(255, 255, 255, 0),
			},
		}
		existingRoute := netlink.Route{
			LinkIndex: 1,
			Gw:        net.ParseIP("192.168.1.1"),
			Dst:       nil, // Default route
		}

		networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
		networkMgr.EXPECT().ListAddresses(mockLink).Return([]netlink.Addr{existingAddr}, nil)
		networkMgr.EXPECT().ListRoutes().Return([]netlink.Route{existingRoute}, nil)

		// Should not call AddAddress or AddRoute since both already match

		assert.NoError(t, c.SetIPInfo(ctx, info))
	})

	t.Run("ReplacesForeignAddress", func(t *testing.T) {
		foreignAddr := netlink.Addr{
			IPNet: &net.IPNet{
				IP:   net.ParseIP("10.0.0.9"),
				Mask: net.IPv4Mask(255, 0, 0, 0),
			},
		}

		networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
		networkMgr.EXPECT().ListAddresses(mockLink).Return([]netlink.Addr{foreignAddr}, nil)
		networkMgr.EXPECT().DeleteAddress(mockLink, gomock.Any()).Return(nil)
		networkMgr.EXPECT().AddAddress(mockLink, gomock.Any()).Return(nil)
		networkMgr.EXPECT().ListRoutes().Return([]netlink.Route{}, nil)
		networkMgr.EXPECT().AddRoute(gomock.Any()).Return(nil)

		assert.NoError(t, c.SetIPInfo(ctx, info))
	})

	t.Run("MissingAddress", func(t *testing.T) {
		err := c.SetIPInfo(ctx, types.IPInfo{Netmask: net.ParseIP("255.255.255.0")})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing interface address")
	})

	t.Run("InvalidNetmask", func(t *testing.T) {
		err := c.SetIPInfo(ctx, types.IPInfo{Address: net.ParseIP("192.168.1.50")})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid netmask")
	})
}

func TestController_SetDNSInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _, fileMgr, _ := newTestController(t, ctrl)
	ctx := context.Background()

	t.Run("WritesResolverFile", func(t *testing.T) {
		expectedContent := "# Generated by golang-netman\nnameserver 8.8.8.8\n"

		fileMgr.EXPECT().ReadFile("/etc/resolv.conf").Return(nil, assert.AnError)
		fileMgr.EXPECT().WriteFileAtomic("/etc/resolv.conf", []byte(expectedContent), 0644).Return(nil)

		assert.NoError(t, c.SetDNSInfo(ctx, 0, net.ParseIP("8.8.8.8")))
	})

	t.Run("SkipsWriteWhenUpToDate", func(t *testing.T) {
		expectedContent := "# Generated by golang-netman\nnameserver 8.8.8.8\n"

		fileMgr.EXPECT().ReadFile("/etc/resolv.conf").Return([]byte(expectedContent), nil)

		// Should not call WriteFileAtomic since content is already correct

		assert.NoError(t, c.SetDNSInfo(ctx, 0, net.ParseIP("8.8.8.8")))
	})

	t.Run("ClearsSlotWithAnyAddress", func(t *testing.T) {
		expectedContent := "# Generated by golang-netman\n"

		fileMgr.EXPECT().ReadFile("/etc/resolv.conf").Return(nil, assert.AnError)
		fileMgr.EXPECT().WriteFileAtomic("/etc/resolv.conf", []byte(expectedContent), 0644).Return(nil)

		assert.NoError(t, c.SetDNSInfo(ctx, 0, net.IPv4zero))
	})

	t.Run("SlotOutOfRange", func(t *testing.T) {
		err := c.SetDNSInfo(ctx, types.DNSMaxServers, net.ParseIP("8.8.8.8"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "out of range")
	})
}

func TestController_SetHostname(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _, fileMgr, systemMgr := newTestController(t, ctrl)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		systemMgr.EXPECT().SetHostname("device-1").Return(nil)
		fileMgr.EXPECT().WriteFileAtomic("/etc/hostname", []byte("device-1\n"), 0644).Return(nil)

		assert.NoError(t, c.SetHostname(ctx, "device-1"))
	})

	t.Run("KernelRejects", func(t *testing.T) {
		systemMgr.EXPECT().SetHostname("device-1").Return(assert.AnError)

		err := c.SetHostname(ctx, "device-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to set hostname")
	})
}

func TestController_IPInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, networkMgr, _, _ := newTestController(t, ctrl)
	ctx := context.Background()

	mockLink := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 1, Name: "lo"}}

	t.Run("ConfiguredInterface", func(t *testing.T) {
		addr := netlink.Addr{
			IPNet: &net.IPNet{
				IP:   net.ParseIP("10.0.0.2"),
				Mask: net.IPv4Mask(255, 255, 255, 0),
			},
		}
		route := netlink.Route{
			LinkIndex: 1,
			Gw:        net.ParseIP("10.0.0.1"),
			Dst:       nil,
		}

		networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
		networkMgr.EXPECT().ListAddresses(mockLink).Return([]netlink.Addr{addr}, nil)
		networkMgr.EXPECT().ListRoutes().Return([]netlink.Route{route}, nil)

		info, err := c.IPInfo(ctx)
		require.NoError(t, err)
		assert.True(t, net.ParseIP("10.0.0.2").Equal(info.Address))
		assert.True(t, net.ParseIP("255.255.255.0").Equal(info.Netmask))
		assert.True(t, net.ParseIP("10.0.0.1").Equal(info.Gateway))
	})

	t.Run("BareInterface", func(t *testing.T) {
		networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
		networkMgr.EXPECT().ListAddresses(mockLink).Return([]netlink.Addr{}, nil)
		networkMgr.EXPECT().ListRoutes().Return([]netlink.Route{}, nil)

		info, err := c.IPInfo(ctx)
		require.NoError(t, err)
		assert.Nil(t, info.Address)
		assert.Nil(t, info.Netmask)
		assert.Nil(t, info.Gateway)
	})
}

func TestController_LinkLocalAddresses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, networkMgr, _, _ := newTestController(t, ctrl)
	ctx := context.Background()

	mockLink := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 1, Name: "lo"}}

	linkLocal := netlink.Addr{
		IPNet: &net.IPNet{IP: net.ParseIP("fe80::1"), Mask: net.CIDRMask(64, 128)},
	}
	global := netlink.Addr{
		IPNet: &net.IPNet{IP: net.ParseIP("2001:db8::1"), Mask: net.CIDRMask(64, 128)},
	}

	networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
	networkMgr.EXPECT().ListV6Addresses(mockLink).Return([]netlink.Addr{global, linkLocal}, nil)

	addrs, err := c.LinkLocalAddresses(ctx)
	require.NoError(t, err)
	require.Len(t, addrs, 1)
	assert.True(t, net.ParseIP("fe80::1").Equal(addrs[0]))
}

func TestController_DNSInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, _, fileMgr, _ := newTestController(t, ctrl)
	ctx := context.Background()

	content := "# Generated by golang-netman\nnameserver 8.8.8.8\nnameserver 1.1.1.1\n"

	t.Run("ConfiguredSlot", func(t *testing.T) {
		fileMgr.EXPECT().ReadFile("/etc/resolv.conf").Return([]byte(content), nil)

		server, err := c.DNSInfo(ctx, 1)
		require.NoError(t, err)
		assert.True(t, net.ParseIP("1.1.1.1").Equal(server))
	})

	t.Run("AbsentSlot", func(t *testing.T) {
		fileMgr.EXPECT().ReadFile("/etc/resolv.conf").Return([]byte(content), nil)

		server, err := c.DNSInfo(ctx, 2)
		require.NoError(t, err)
		assert.Nil(t, server)
	})

	t.Run("MissingResolverFile", func(t *testing.T) {
		fileMgr.EXPECT().ReadFile("/etc/resolv.conf").Return(nil, assert.AnError)

		server, err := c.DNSInfo(ctx, 0)
		require.NoError(t, err)
		assert.Nil(t, server)
	})

	t.Run("SlotOutOfRange", func(t *testing.T) {
		_, err := c.DNSInfo(ctx, -1)
		assert.Error(t, err)
	})
}

func TestController_DHCPClientLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, dhcpClient, _, _, _ := newTestController(t, ctrl)
	ctx := context.Background()

	// The runner may or may not get to a lease request before stop.
	dhcpClient.EXPECT().
		RequestLease(gomock.Any(), "lo", "", 15*time.Second).
		Return(nil, assert.AnError).
		AnyTimes()

	status, err := c.DHCPStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.DHCPStatusStopped, status)

	require.NoError(t, c.StartDHCPClient(ctx))

	status, err = c.DHCPStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.DHCPStatusStarted, status)

	assert.ErrorIs(t, c.StartDHCPClient(ctx), port.ErrDHCPAlreadyStarted)

	require.NoError(t, c.StopDHCPClient(ctx))

	status, err = c.DHCPStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.DHCPStatusStopped, status)

	assert.ErrorIs(t, c.StopDHCPClient(ctx), port.ErrDHCPAlreadyStopped)
}

func TestController_acquireLease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, dhcpClient, _, fileMgr, systemMgr := newTestController(t, ctrl)
	ctx := context.Background()

	t.Run("SuccessfulLease", func(t *testing.T) {
		expectedACK := &dhcpv4.DHCPv4{}
		expectedACK.YourIPAddr = net.ParseIP("192.168.1.100")

		dhcpClient.EXPECT().
			RequestLease(ctx, "lo", "", 15*time.Second).
			Return(expectedACK, nil).
			Times(1)

		ack, err := c.acquireLease(ctx, testLogger())
		require.NoError(t, err)
		assert.Equal(t, expectedACK, ack)
	})

	t.Run("FailedLeaseWithRetries", func(t *testing.T) {
		dhcpClient.EXPECT().
			RequestLease(ctx, "lo", "", 15*time.Second).
			Return(nil, assert.AnError).
			Times(3)

		ack, err := c.acquireLease(ctx, testLogger())
		assert.Error(t, err)
		assert.Nil(t, ack)
		assert.Contains(t, err.Error(), "DHCP lease request failed after 3 attempts")
	})

	t.Run("SendsConfiguredHostname", func(t *testing.T) {
		systemMgr.EXPECT().SetHostname("device-1").Return(nil)
		fileMgr.EXPECT().WriteFileAtomic("/etc/hostname", []byte("device-1\n"), 0644).Return(nil)
		require.NoError(t, c.SetHostname(ctx, "device-1"))

		expectedACK := &dhcpv4.DHCPv4{}
		expectedACK.YourIPAddr = net.ParseIP("192.168.1.100")

		dhcpClient.EXPECT().
			RequestLease(ctx, "lo", "device-1", 15*time.Second).
			Return(expectedACK, nil).
			Times(1)

		_, err := c.acquireLease(ctx, testLogger())
		require.NoError(t, err)
	})
}

func TestController_applyLease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c, _, networkMgr, fileMgr, _ := newTestController(t, ctrl)

	mockLink := &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Index: 1, Name: "lo"}}

	t.Run("FullLease", func(t *testing.T) {
		ack := &dhcpv4.DHCPv4{}
		ack.YourIPAddr = net.ParseIP("192.168.1.100")
		ack.Options = make(dhcpv4.Options)
		ack.Options.Update(dhcpv4.OptSubnetMask(net.IPv4Mask(255, 255, 255, 0)))
		ack.Options.Update(dhcpv4.OptRouter(net.ParseIP("192.168.1.1")))
		ack.Options.Update(dhcpv4.OptDNS(net.ParseIP("8.8.8.8")))

		networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
		networkMgr.EXPECT().ListAddresses(mockLink).Return([]netlink.Addr{}, nil)
		networkMgr.EXPECT().AddAddress(mockLink, gomock.Any()).Return(nil)
		networkMgr.EXPECT().ListRoutes().Return([]netlink.Route{}, nil)
		networkMgr.EXPECT().AddRoute(gomock.Any()).Return(nil)
		fileMgr.EXPECT().ReadFile("/etc/resolv.conf").Return(nil, assert.AnError)
		fileMgr.EXPECT().
			WriteFileAtomic("/etc/resolv.conf", []byte("# Generated by golang-netman\nnameserver 8.8.8.8\n"), 0644).
			Return(nil)

		assert.NoError(t, c.applyLease(ack))
	})

	t.Run("BareLeaseDefaultsMask", func(t *testing.T) {
		ack := &dhcpv4.DHCPv4{}
		ack.YourIPAddr = net.ParseIP("192.168.1.100")
		ack.Options = make(dhcpv4.Options)

		existingAddr := netlink.Addr{
			IPNet: &net.IPNet{
				IP:   net.ParseIP("192.168.1.100"),
				Mask: net.IPv4Mask(255, 255, 255, 0),
			},
		}

		networkMgr.EXPECT().GetLinkByName("lo").Return(mockLink, nil)
		networkMgr.EXPECT().ListAddresses(mockLink).Return([]netlink.Addr{existingAddr}, nil)

		// Should not call AddAddress since IP is already configured

		assert.NoError(t, c.applyLease(ack))
	})
}

// Helper to build a logger for tests
func testLogger() *logrus.Entry {
	return logrus.NewEntry(logrus.New())
}
