package layers

import (
	"encoding/binary"
	"fmt"
	"net"

	glayers "github.com/google/gopacket/layers"
)

// EthernetHeaderSize is the fixed size of an Ethernet II header.
const EthernetHeaderSize = 14

// Ethernet is a decoded link-layer header.
type Ethernet struct {
	Base
	DstMAC       net.HardwareAddr
	SrcMAC       net.HardwareAddr
	EthernetType glayers.EthernetType
}

// DecodeEthernet decodes an Ethernet II header from data. The ether type is
// extracted but not validated against known values; whether it is relevant
// is the next layer's call.
func DecodeEthernet(data []byte) (*Ethernet, error) {
	if len(data) < EthernetHeaderSize {
		return nil, ShortFrameError(fmt.Sprintf("need %d bytes, have %d", EthernetHeaderSize, len(data)))
	}

	return &Ethernet{
		Base: Base{
			Contents: data[:EthernetHeaderSize],
			Payload:  data[EthernetHeaderSize:],
		},
		DstMAC:       net.HardwareAddr(data[0:6]),
		SrcMAC:       net.HardwareAddr(data[6:12]),
		EthernetType: glayers.EthernetType(binary.BigEndian.Uint16(data[12:14])),
	}, nil
}
