// Package protocol implements the scan head wire protocol: the TCP/UDP port
// map, the length-prefixed message framing shared by the control and data
// streams, and the binary datagram codec used for streamed profile data.
package protocol

const (
	// ControlPort is the TCP port commands and responses travel over.
	ControlPort = 12346
	// DiscoveryPort is the UDP port broadcast discovery requests target.
	DiscoveryPort = 12347
	// DataPort is the TCP port the head streams scan datagrams from.
	DataPort = 12348

	// ProfileMagic marks a profile datagram on the data stream.
	ProfileMagic = 0xFACD
	// ResponseMagic marks a non-profile info datagram. Anything that is not
	// a profile is dropped by this client.
	ResponseMagic = 0xFACE

	// MaxFramePayload caps a single datagram so it fits one ethernet frame
	// after IP and UDP headers.
	MaxFramePayload = 1468

	// MaxPacketSize bounds a single framed datagram read off the data
	// stream. The JS-50 theoretical max is 8k plus header; in practice
	// 1456 columns * 4 bytes plus header. 6k leaves margin.
	MaxPacketSize = 6144

	// TCPSendBufferSize is the send buffer the head configures on its side
	// of the data stream.
	TCPSendBufferSize = 4 * 1024 * 1024
	// DataRecvBufferSize is requested on the client side of the data
	// stream. Some OSes clamp it.
	DataRecvBufferSize = 256 * 1024 * 1024
)
