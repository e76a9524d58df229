package protocol

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed size of the binary datagram header.
const HeaderSize = 40

// Header is the fixed 40-byte header leading every datagram on the data
// stream. All multi-byte fields are network byte order on the wire; the
// header is parsed field by field, never overlaid on a struct.
//
//	offset size field
//	0      2    magic
//	2      2    exposure_time_us
//	4      1    scan_head_id
//	5      1    camera_port
//	6      1    laser_port
//	7      1    flags
//	8      8    timestamp_ns
//	16     2    laser_on_time_us
//	18     2    data_type_mask
//	20     2    payload_length
//	22     1    number_encoders
//	23     1    (reserved)
//	24     4    datagram_position
//	28     4    number_datagrams
//	32     2    start_column
//	34     2    end_column
//	36     4    sequence_number
type Header struct {
	Magic            uint16
	ExposureTimeUs   uint16
	ScanHeadID       uint8
	CameraPort       uint8
	LaserPort        uint8
	Flags            uint8
	TimestampNs      uint64
	LaserOnTimeUs    uint16
	DataTypeMask     DataType
	PayloadLength    uint16
	NumberEncoders   uint8
	DatagramPosition uint32
	NumberDatagrams  uint32
	StartColumn      uint16
	EndColumn        uint16
	SequenceNumber   uint32
}

// ParseHeader decodes the fixed header from the front of a datagram.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("datagram too short for header: %d bytes", len(buf))
	}

	return Header{
		Magic:            binary.BigEndian.Uint16(buf[0:2]),
		ExposureTimeUs:   binary.BigEndian.Uint16(buf[2:4]),
		ScanHeadID:       buf[4],
		CameraPort:       buf[5],
		LaserPort:        buf[6],
		Flags:            buf[7],
		TimestampNs:      binary.BigEndian.Uint64(buf[8:16]),
		LaserOnTimeUs:    binary.BigEndian.Uint16(buf[16:18]),
		DataTypeMask:     DataType(binary.BigEndian.Uint16(buf[18:20])),
		PayloadLength:    binary.BigEndian.Uint16(buf[20:22]),
		NumberEncoders:   buf[22],
		DatagramPosition: binary.BigEndian.Uint32(buf[24:28]),
		NumberDatagrams:  binary.BigEndian.Uint32(buf[28:32]),
		StartColumn:      binary.BigEndian.Uint16(buf[32:34]),
		EndColumn:        binary.BigEndian.Uint16(buf[34:36]),
		SequenceNumber:   binary.BigEndian.Uint32(buf[36:40]),
	}, nil
}

// AppendTo serializes the header into dst, which must be at least HeaderSize
// bytes. Used by the in-process head simulations in tests and tooling.
func (h Header) AppendTo(dst []byte) {
	binary.BigEndian.PutUint16(dst[0:2], h.Magic)
	binary.BigEndian.PutUint16(dst[2:4], h.ExposureTimeUs)
	dst[4] = h.ScanHeadID
	dst[5] = h.CameraPort
	dst[6] = h.LaserPort
	dst[7] = h.Flags
	binary.BigEndian.PutUint64(dst[8:16], h.TimestampNs)
	binary.BigEndian.PutUint16(dst[16:18], h.LaserOnTimeUs)
	binary.BigEndian.PutUint16(dst[18:20], uint16(h.DataTypeMask))
	binary.BigEndian.PutUint16(dst[20:22], h.PayloadLength)
	dst[22] = h.NumberEncoders
	dst[23] = 0
	binary.BigEndian.PutUint32(dst[24:28], h.DatagramPosition)
	binary.BigEndian.PutUint32(dst[28:32], h.NumberDatagrams)
	binary.BigEndian.PutUint16(dst[32:34], h.StartColumn)
	binary.BigEndian.PutUint16(dst[34:36], h.EndColumn)
	binary.BigEndian.PutUint32(dst[36:40], h.SequenceNumber)
}

// SourceID packs the head id and port pair into the key profiles are
// reassembled under.
func (h Header) SourceID() uint32 {
	return uint32(h.ScanHeadID)<<16 | uint32(h.CameraPort)<<8 | uint32(h.LaserPort)
}
