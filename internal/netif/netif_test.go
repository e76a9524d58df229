package netif

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestActiveInterfacesExcludeLoopback(t *testing.T) {
	ifaces, err := ActiveInterfaces()
	require.NoError(t, err)
	for _, iface := range ifaces {
		require.False(t, iface.IP.IsLoopback(), "loopback %s should be excluded", iface.IP)
		require.NotNil(t, iface.IP.To4())
	}
}

func TestOpenBroadcastLocal(t *testing.T) {
	conn, err := OpenBroadcast(net.IPv4(127, 0, 0, 1), 50*time.Millisecond)
	require.NoError(t, err)
	defer conn.Close()

	// The read deadline applies: an empty socket times out quickly.
	buf := make([]byte, 16)
	_, _, err = conn.ReadFromUDP(buf)
	require.Error(t, err)
	nerr, ok := err.(net.Error)
	require.True(t, ok)
	require.True(t, nerr.Timeout())
}

func TestBroadcastAddr(t *testing.T) {
	addr := BroadcastAddr(12347)
	require.Equal(t, 12347, addr.Port)
	require.True(t, addr.IP.Equal(net.IPv4bcast))
}
