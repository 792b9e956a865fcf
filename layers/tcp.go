package layers

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// TCPMinHeaderSize is the size of a TCP header without options.
const TCPMinHeaderSize = 20

// TCP flag bits of header byte 13, FIN lowest.
const (
	flagFIN = 0x01
	flagSYN = 0x02
	flagRST = 0x04
	flagPSH = 0x08
	flagACK = 0x10
	flagURG = 0x20
	flagECE = 0x40
	flagCWR = 0x80
)

// TCP is a decoded transport-layer header.
type TCP struct {
	Base
	SrcPort    uint16
	DstPort    uint16
	Seq        uint32
	Ack        uint32
	DataOffset uint8 // header length in bytes, derived from the offset nibble

	FIN, SYN, RST, PSH, ACK, URG, ECE, CWR bool

	Window   uint16
	Checksum uint16
	Urgent   uint16
	Options  []byte
}

// DecodeTCP decodes a TCP header from data, which is expected to start at
// the first byte past the network layer.
func DecodeTCP(data []byte) (*TCP, error) {
	if len(data) < TCPMinHeaderSize {
		return nil, ShortSegmentError(fmt.Sprintf("need %d bytes, have %d", TCPMinHeaderSize, len(data)))
	}

	dataOffset := int(data[12]>>4) * 4
	if dataOffset < TCPMinHeaderSize {
		return nil, InvalidHeaderLengthError(fmt.Sprintf("data offset %d bytes is below the %d-byte minimum", dataOffset, TCPMinHeaderSize))
	}
	if dataOffset > len(data) {
		return nil, InvalidHeaderLengthError(fmt.Sprintf("data offset declares %d bytes, have %d", dataOffset, len(data)))
	}

	flags := data[13]
	s := &TCP{
		Base: Base{
			Contents: data[:dataOffset],
			Payload:  data[dataOffset:],
		},
		SrcPort:    binary.BigEndian.Uint16(data[0:2]),
		DstPort:    binary.BigEndian.Uint16(data[2:4]),
		Seq:        binary.BigEndian.Uint32(data[4:8]),
		Ack:        binary.BigEndian.Uint32(data[8:12]),
		DataOffset: uint8(dataOffset),
		FIN:        flags&flagFIN != 0,
		SYN:        flags&flagSYN != 0,
		RST:        flags&flagRST != 0,
		PSH:        flags&flagPSH != 0,
		ACK:        flags&flagACK != 0,
		URG:        flags&flagURG != 0,
		ECE:        flags&flagECE != 0,
		CWR:        flags&flagCWR != 0,
		Window:     binary.BigEndian.Uint16(data[14:16]),
		Checksum:   binary.BigEndian.Uint16(data[16:18]),
		Urgent:     binary.BigEndian.Uint16(data[18:20]),
		Options:    data[TCPMinHeaderSize:dataOffset],
	}
	return s, nil
}

// FlagsByte reassembles header byte 13 from the eight flag booleans.
func (s *TCP) FlagsByte() byte {
	var b byte
	if s.FIN {
		b |= flagFIN
	}
	if s.SYN {
		b |= flagSYN
	}
	if s.RST {
		b |= flagRST
	}
	if s.PSH {
		b |= flagPSH
	}
	if s.ACK {
		b |= flagACK
	}
	if s.URG {
		b |= flagURG
	}
	if s.ECE {
		b |= flagECE
	}
	if s.CWR {
		b |= flagCWR
	}
	return b
}

// FlagNames lists the set flags in wire-bit order, lowest first.
func (s *TCP) FlagNames() []string {
	var names []string
	for _, f := range []struct {
		set  bool
		name string
	}{
		{s.FIN, "FIN"}, {s.SYN, "SYN"}, {s.RST, "RST"}, {s.PSH, "PSH"},
		{s.ACK, "ACK"}, {s.URG, "URG"}, {s.ECE, "ECE"}, {s.CWR, "CWR"},
	} {
		if f.set {
			names = append(names, f.name)
		}
	}
	return names
}

// FlagsString renders the set flags like "[SYN,ACK]".
func (s *TCP) FlagsString() string {
	return "[" + strings.Join(s.FlagNames(), ",") + "]"
}
