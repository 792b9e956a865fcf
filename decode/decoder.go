// Package decode runs one raw frame through the layer decoders and collects
// whatever was decodable. It is the only place that decides which protocols
// get routed to the next layer.
package decode

import (
	"fmt"

	glayers "github.com/google/gopacket/layers"

	"github.com/vearne/pcapdump/layers"
	"github.com/vearne/pcapdump/pcap"
)

// UnroutedProtocolError marks an IP protocol the pipeline deliberately does
// not decode. The network layer is still fully decoded.
type UnroutedProtocolError glayers.IPProtocol

func (err UnroutedProtocolError) Error() string {
	return fmt.Sprintf("transport protocol %s (%d) not routed", glayers.IPProtocol(err), uint8(err))
}

// FrameResult holds everything that could be decoded from one frame. A nil
// layer pointer always pairs with a non-nil error for that layer; layers
// below a failed one are left untouched.
type FrameResult struct {
	Frame *pcap.RawFrame

	Link      *layers.Ethernet
	Network   *layers.IPv4
	Transport *layers.TCP

	LinkErr      error
	NetworkErr   error
	TransportErr error
}

// Decoded reports how many layers decoded successfully.
func (r *FrameResult) Decoded() int {
	n := 0
	for _, l := range []bool{r.Link != nil, r.Network != nil, r.Transport != nil} {
		if l {
			n++
		}
	}
	return n
}

// ProcessFrame decodes frame through Ethernet, IPv4 and TCP in order. It
// always returns a result: a failure at any layer is recorded on the result
// and stops the descent, it is never propagated. Malformed frame content
// cannot fault past this function.
func ProcessFrame(frame *pcap.RawFrame) *FrameResult {
	res := &FrameResult{Frame: frame}

	res.Link, res.LinkErr = layers.DecodeEthernet(frame.Data)
	if res.LinkErr != nil {
		return res
	}

	// The ether type is not checked up front: the IPv4 decoder reads the
	// version nibble itself and its error names what was actually found.
	res.Network, res.NetworkErr = layers.DecodeIPv4(res.Link.Payload)
	if res.NetworkErr != nil {
		return res
	}

	if res.Network.Protocol != glayers.IPProtocolTCP {
		res.TransportErr = UnroutedProtocolError(res.Network.Protocol)
		return res
	}

	res.Transport, res.TransportErr = layers.DecodeTCP(res.Network.Payload)
	return res
}
