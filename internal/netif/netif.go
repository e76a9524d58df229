// Package netif enumerates the local IPv4 interfaces used for broadcast
// discovery and opens the sockets discovery runs over.
package netif

import (
	"fmt"
	"net"
	"syscall"
	"time"
)

// Interface is one usable local endpoint for broadcast discovery.
type Interface struct {
	IP net.IP
}

// ActiveInterfaces lists every up, non-loopback interface with an IPv4
// address.
func ActiveInterfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, fmt.Errorf("enumerate interfaces: %w", err)
	}

	var out []Interface
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipNet.IP.To4()
			if ip == nil {
				continue
			}
			out = append(out, Interface{IP: ip})
		}
	}
	return out, nil
}

// OpenBroadcast binds a UDP socket to the interface address with broadcast
// sends enabled and the given read deadline applied.
func OpenBroadcast(ip net.IP, readTimeout time.Duration) (*net.UDPConn, error) {
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: ip, Port: 0})
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", ip, err)
	}

	raw, err := conn.SyscallConn()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("raw conn for %s: %w", ip, err)
	}
	var soErr error
	err = raw.Control(func(fd uintptr) {
		soErr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_BROADCAST, 1)
	})
	if err == nil {
		err = soErr
	}
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable broadcast on %s: %w", ip, err)
	}

	if readTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
			conn.Close()
			return nil, fmt.Errorf("set read deadline on %s: %w", ip, err)
		}
	}

	return conn, nil
}

// BroadcastAddr is the destination discovery requests are sent to.
func BroadcastAddr(port int) *net.UDPAddr {
	return &net.UDPAddr{IP: net.IPv4bcast, Port: port}
}
