package scanhead

import (
	"fmt"
	"net"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/millvision/scanhead/internal/monitoring"
	"github.com/millvision/scanhead/internal/netif"
	"github.com/millvision/scanhead/internal/protocol"
	"github.com/millvision/scanhead/internal/schema/client"
	"github.com/millvision/scanhead/internal/schema/server"
	"github.com/millvision/scanhead/internal/version"
)

const (
	// discoverWait is how long heads get to answer a discovery broadcast.
	discoverWait = 200 * time.Millisecond
	// discoverDrain bounds draining queued replies off each socket.
	discoverDrain = 50 * time.Millisecond
)

// broadcastDiscover sends a ClientDiscovery message out every active
// interface and collects the replies. It fails with ErrNetwork only when
// no interface could be opened or no datagram left the machine; zero
// replies is a successful empty result.
func broadcastDiscover() (map[uint32]Discovered, error) {
	ifaces, err := netif.ActiveInterfaces()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	var conns []*net.UDPConn
	defer func() {
		for _, c := range conns {
			c.Close()
		}
	}()
	for _, iface := range ifaces {
		conn, err := netif.OpenBroadcast(iface.IP, 0)
		if err != nil {
			// Keep going; other interfaces may still work.
			monitoring.Logf("discovery: %v", err)
			continue
		}
		conns = append(conns, conn)
	}
	if len(conns) == 0 {
		return nil, fmt.Errorf("%w: no usable broadcast interfaces", ErrNetwork)
	}

	payload := buildDiscoveryRequest()
	dst := netif.BroadcastAddr(protocol.DiscoveryPort)
	sent := 0
	for _, conn := range conns {
		if _, err := conn.WriteToUDP(payload, dst); err == nil {
			sent++
		}
	}
	if sent == 0 {
		return nil, fmt.Errorf("%w: no interface accepted the discovery broadcast", ErrNetwork)
	}

	time.Sleep(discoverWait)

	found := make(map[uint32]Discovered)
	buf := make([]byte, 256)
	for _, conn := range conns {
		if err := conn.SetReadDeadline(time.Now().Add(discoverDrain)); err != nil {
			continue
		}
		for {
			n, _, err := conn.ReadFromUDP(buf)
			if err != nil {
				break
			}
			if d, ok := decodeDiscoveryReply(buf[:n]); ok {
				found[d.SerialNumber] = d
			}
		}
	}

	return found, nil
}

func buildDiscoveryRequest() []byte {
	b := flatbuffers.NewBuilder(64)
	client.MessageClientDiscoveryStart(b)
	client.MessageClientDiscoveryAddVersionMajor(b, version.Major)
	client.MessageClientDiscoveryAddVersionMinor(b, version.Minor)
	client.MessageClientDiscoveryAddVersionPatch(b, version.Patch)
	b.Finish(client.MessageClientDiscoveryEnd(b))
	return b.FinishedBytes()
}

// decodeDiscoveryReply parses one reply datagram. The discovery port
// receives arbitrary broadcast traffic, so decoding is fully defensive: a
// datagram that is not a well-formed reply is dropped.
func decodeDiscoveryReply(raw []byte) (d Discovered, ok bool) {
	if len(raw) < 12 {
		return Discovered{}, false
	}
	defer func() {
		if recover() != nil {
			d, ok = Discovered{}, false
		}
	}()

	msg := server.GetRootAsMessageServerDiscovery(raw, 0)
	serial := msg.SerialNumber()
	if serial == 0 {
		return Discovered{}, false
	}

	ip := msg.IpServer()
	return Discovered{
		SerialNumber:  serial,
		IPAddr:        net.IPv4(byte(ip>>24), byte(ip>>16), byte(ip>>8), byte(ip)),
		Type:          HeadType(msg.Type()),
		TypeStr:       string(msg.TypeStr()),
		FirmwareMajor: msg.VersionMajor(),
		FirmwareMinor: msg.VersionMinor(),
		FirmwarePatch: msg.VersionPatch(),
	}, true
}
