package protocol

import (
	"encoding/binary"
	"fmt"
)

// FragmentLayout describes where one content type's values live inside a
// datagram and how they interleave across the datagrams of a profile.
type FragmentLayout struct {
	// Step is the column stride between consecutive values of this type
	// within the full profile.
	Step uint32
	// NumVals is how many values this datagram carries.
	NumVals uint32
	// Offset is the byte offset of the fragment within the datagram.
	Offset uint32
	// PayloadSize is the fragment's size in bytes.
	PayloadSize uint32
}

// Packet is a decoded profile datagram: the fixed header, the per-type step
// table, encoder values and the computed fragment layouts. The payload
// remains in Raw; Layout gives per-type access into it.
type Packet struct {
	Header
	Encoders []int64
	Raw      []byte

	layouts map[DataType]FragmentLayout
}

// ParsePacket decodes a framed datagram body. Profile data is distributed
// across datagrams so that a lost datagram costs resolution rather than a
// contiguous hole: datagram k of N carries the points at columns
// start_column + k*step + j*N*step.
func ParsePacket(buf []byte) (*Packet, error) {
	hdr, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	if hdr.NumberDatagrams == 0 {
		return nil, fmt.Errorf("datagram header claims zero datagrams")
	}
	if hdr.DatagramPosition >= hdr.NumberDatagrams {
		return nil, fmt.Errorf("datagram position %d out of range (of %d)",
			hdr.DatagramPosition, hdr.NumberDatagrams)
	}
	if hdr.EndColumn < hdr.StartColumn {
		return nil, fmt.Errorf("datagram columns inverted: start %d end %d",
			hdr.StartColumn, hdr.EndColumn)
	}

	p := &Packet{
		Header:  hdr,
		Raw:     buf,
		layouts: make(map[DataType]FragmentLayout, hdr.DataTypeMask.Count()),
	}

	numTypes := hdr.DataTypeMask.Count()
	offset := uint32(HeaderSize)
	encoderOffset := offset + uint32(numTypes)*2
	dataOffset := encoderOffset + uint32(hdr.NumberEncoders)*8

	if uint32(len(buf)) < dataOffset {
		return nil, fmt.Errorf("datagram too short: %d bytes, need %d for layout", len(buf), dataOffset)
	}

	for i := uint32(0); i < uint32(hdr.NumberEncoders); i++ {
		v := binary.BigEndian.Uint64(buf[encoderOffset+i*8:])
		p.Encoders = append(p.Encoders, int64(v))
	}

	numCols := uint32(hdr.EndColumn-hdr.StartColumn) + 1
	for bit := DataType(1); bit != 0 && bit <= hdr.DataTypeMask; bit <<= 1 {
		if hdr.DataTypeMask&bit == 0 {
			continue
		}

		step := uint32(binary.BigEndian.Uint16(buf[offset:]))
		if step == 0 {
			return nil, fmt.Errorf("datagram step is zero for type %#x", uint16(bit))
		}

		layout := FragmentLayout{
			Step:   step,
			Offset: dataOffset,
		}
		layout.NumVals = numCols / (hdr.NumberDatagrams * step)
		// When the values do not divide evenly, the earliest datagrams
		// carry one extra value each.
		if (numCols/step)%hdr.NumberDatagrams > hdr.DatagramPosition {
			layout.NumVals++
		}
		layout.PayloadSize = uint32(bit.Size()) * layout.NumVals

		dataOffset += layout.PayloadSize
		offset += 2
		p.layouts[bit] = layout
	}

	if uint32(len(buf)) < dataOffset {
		return nil, fmt.Errorf("datagram too short: %d bytes, need %d for payload", len(buf), dataOffset)
	}

	return p, nil
}

// Layout returns the fragment layout for one content type.
func (p *Packet) Layout(t DataType) (FragmentLayout, bool) {
	l, ok := p.layouts[t]
	return l, ok
}
