//go:build unit

package netutil

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAnyIP(t *testing.T) {
	assert.True(t, IsAnyIP(nil))
	assert.True(t, IsAnyIP(net.IPv4zero))
	assert.True(t, IsAnyIP(net.ParseIP("0.0.0.0")))
	assert.False(t, IsAnyIP(net.ParseIP("10.0.0.1")))
}

func TestIPEqual(t *testing.T) {
	assert.True(t, IPEqual(nil, net.IPv4zero))
	assert.True(t, IPEqual(net.ParseIP("10.0.0.1"), net.ParseIP("10.0.0.1")))
	assert.False(t, IPEqual(net.ParseIP("10.0.0.1"), nil))
	assert.False(t, IPEqual(net.ParseIP("10.0.0.1"), net.ParseIP("10.0.0.2")))
}

func TestIPv4BytesRoundTrip(t *testing.T) {
	b := IPv4Bytes(net.ParseIP("192.168.1.100"))
	assert.Equal(t, [4]byte{192, 168, 1, 100}, b)
	assert.Equal(t, "192.168.1.100", IPv4FromBytes(b).String())

	assert.Equal(t, [4]byte{}, IPv4Bytes(nil))
	assert.Nil(t, IPv4FromBytes([4]byte{}))
}

func TestMaskFromIP(t *testing.T) {
	mask := MaskFromIP(net.ParseIP("255.255.255.0"))
	ones, bits := mask.Size()
	assert.Equal(t, 24, ones)
	assert.Equal(t, 32, bits)

	assert.Nil(t, MaskFromIP(nil))
}

func TestRenderResolvConf(t *testing.T) {
	content := RenderResolvConf([]net.IP{
		net.ParseIP("8.8.8.8"),
		nil,
		net.ParseIP("8.8.4.4"),
	})
	assert.Equal(t, "# Generated by golang-netman\nnameserver 8.8.8.8\nnameserver 8.8.4.4\n", content)
}

func TestParseResolvConf(t *testing.T) {
	servers := ParseResolvConf([]byte("# Generated by golang-netman\nnameserver 8.8.8.8\nsearch lan\nnameserver bogus\nnameserver 1.1.1.1\n"))
	assert.Len(t, servers, 2)
	assert.Equal(t, "8.8.8.8", servers[0].String())
	assert.Equal(t, "1.1.1.1", servers[1].String())
}
