// Command discovery-pcap replays a packet capture and prints every scan
// head discovery exchange it contains. Useful for working out which heads
// were visible on a network from a capture taken in the field.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"github.com/millvision/scanhead/internal/protocol"
	"github.com/millvision/scanhead/internal/schema/client"
	"github.com/millvision/scanhead/internal/schema/server"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s <capture.pcap>\n", os.Args[0])
		os.Exit(2)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatalf("open capture: %v", err)
	}
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	if err != nil {
		log.Fatalf("read capture: %v", err)
	}

	packets, requests, replies := 0, 0, 0
	for {
		data, _, err := r.ReadPacketData()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("read packet: %v", err)
		}
		packets++

		pkt := gopacket.NewPacket(data, r.LinkType(), gopacket.Default)
		udpLayer := pkt.Layer(layers.LayerTypeUDP)
		if udpLayer == nil {
			continue
		}
		udp, ok := udpLayer.(*layers.UDP)
		if !ok || len(udp.Payload) == 0 {
			continue
		}

		switch {
		case udp.DstPort == protocol.DiscoveryPort:
			if major, minor, patch, ok := decodeRequest(udp.Payload); ok {
				requests++
				fmt.Printf("request  client %d.%d.%d\n", major, minor, patch)
			}
		case udp.SrcPort == protocol.DiscoveryPort:
			if d, ok := decodeReply(udp.Payload); ok {
				replies++
				fmt.Printf("reply    serial %d  %s  %s  firmware %s\n",
					d.serial, d.ip, d.typeStr, d.firmware)
			}
		}
	}

	fmt.Printf("%d packets, %d discovery requests, %d replies\n", packets, requests, replies)
}

func decodeRequest(raw []byte) (major, minor, patch uint32, ok bool) {
	if len(raw) < 12 {
		return 0, 0, 0, false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	msg := client.GetRootAsMessageClientDiscovery(raw, 0)
	return msg.VersionMajor(), msg.VersionMinor(), msg.VersionPatch(), true
}

type reply struct {
	serial   uint32
	ip       net.IP
	typeStr  string
	firmware string
}

func decodeReply(raw []byte) (d reply, ok bool) {
	if len(raw) < 12 {
		return reply{}, false
	}
	defer func() {
		if recover() != nil {
			d, ok = reply{}, false
		}
	}()

	msg := server.GetRootAsMessageServerDiscovery(raw, 0)
	if msg.SerialNumber() == 0 {
		return reply{}, false
	}
	ip := msg.IpServer()
	return reply{
		serial:   msg.SerialNumber(),
		ip:       net.IPv4(byte(ip>>24), byte(ip>>16), byte(ip>>8), byte(ip)),
		typeStr:  string(msg.TypeStr()),
		firmware: fmt.Sprintf("%d.%d.%d", msg.VersionMajor(), msg.VersionMinor(), msg.VersionPatch()),
	}, true
}
