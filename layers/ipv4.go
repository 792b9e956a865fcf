package layers

import (
	"encoding/binary"
	"fmt"
	"net"

	glayers "github.com/google/gopacket/layers"
)

// IPv4MinHeaderSize is the size of an IPv4 header without options.
const IPv4MinHeaderSize = 20

// IPv4 is a decoded network-layer header.
type IPv4 struct {
	Base
	Version    uint8
	IHL        uint8 // header length in bytes, derived from the low nibble
	TOS        uint8
	Length     uint16 // declared total length, header included
	Id         uint16
	Flags      uint8
	FragOffset uint16
	TTL        uint8
	Protocol   glayers.IPProtocol
	Checksum   uint16
	SrcIP      net.IP
	DstIP      net.IP
	Options    []byte

	// LengthMismatch is set when the declared total length runs past the
	// captured bytes. The fields above are still filled in; the payload is
	// whatever was actually captured.
	LengthMismatch bool
}

// DecodeIPv4 decodes an IPv4 header from data, which is expected to start at
// the first byte past the link layer. Any version nibble other than 4 yields
// UnsupportedVersionError, so callers can feed it arbitrary ether-type
// payloads and let the error say what was found.
func DecodeIPv4(data []byte) (*IPv4, error) {
	if len(data) == 0 {
		return nil, ShortHeaderError("empty network payload")
	}

	if version := data[0] >> 4; version != 4 {
		return nil, UnsupportedVersionError(version)
	}

	if len(data) < IPv4MinHeaderSize {
		return nil, ShortHeaderError(fmt.Sprintf("need %d bytes, have %d", IPv4MinHeaderSize, len(data)))
	}

	ihl := int(data[0]&0x0f) * 4
	if ihl < IPv4MinHeaderSize {
		return nil, InvalidHeaderLengthError(fmt.Sprintf("IHL %d bytes is below the %d-byte minimum", ihl, IPv4MinHeaderSize))
	}
	if len(data) < ihl {
		return nil, ShortHeaderError(fmt.Sprintf("IHL declares %d bytes, have %d", ihl, len(data)))
	}

	p := &IPv4{
		Version:    4,
		IHL:        uint8(ihl),
		TOS:        data[1],
		Length:     binary.BigEndian.Uint16(data[2:4]),
		Id:         binary.BigEndian.Uint16(data[4:6]),
		Flags:      data[6] >> 5,
		FragOffset: binary.BigEndian.Uint16(data[6:8]) & 0x1fff,
		TTL:        data[8],
		Protocol:   glayers.IPProtocol(data[9]),
		Checksum:   binary.BigEndian.Uint16(data[10:12]),
		SrcIP:      net.IP(data[12:16]),
		DstIP:      net.IP(data[16:20]),
		Options:    data[IPv4MinHeaderSize:ihl],
	}
	p.Contents = data[:ihl]

	// The declared total length trims link-layer padding off the payload.
	// When it overruns the capture we keep what is there and flag the
	// record instead of failing; truncated captures are routine.
	end := int(p.Length)
	if end < ihl || end > len(data) {
		p.LengthMismatch = true
		end = len(data)
	}
	p.Payload = data[ihl:end]

	return p, nil
}
