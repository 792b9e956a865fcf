package model

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vearne/pcapdump/consts"
	"github.com/vearne/pcapdump/decode"
)

// FrameRecord represents one decoded frame across plugins. Layer sections
// are nil when that layer did not decode; Errors then carries the reason
// keyed by layer name.
type FrameRecord struct {
	Meta      Meta           `json:"meta"`
	Link      *LinkInfo      `json:"link,omitempty"`
	Network   *NetworkInfo   `json:"network,omitempty"`
	Transport *TransportInfo `json:"transport,omitempty"`
	// layer name -> decode failure
	Errors map[string]string `json:"errors,omitempty"`
}

type Meta struct {
	Version int    `json:"version"`
	UUID    string `json:"uuid"`
	// Nanosecond
	Timestamp      int64 `json:"timestamp"`
	CaptureLength  int   `json:"captureLength"`
	OriginalLength int   `json:"originalLength"`
	// the capture saved fewer bytes than were on the wire
	Truncated bool `json:"truncated"`
}

type LinkInfo struct {
	SrcMAC       string `json:"srcMAC"`
	DstMAC       string `json:"dstMAC"`
	EthernetType uint16 `json:"ethernetType"`
	PayloadSize  int    `json:"payloadSize"`
}

type NetworkInfo struct {
	SrcIP          string `json:"srcIP"`
	DstIP          string `json:"dstIP"`
	Protocol       uint8  `json:"protocol"`
	ProtocolName   string `json:"protocolName"`
	HeaderLength   int    `json:"headerLength"`
	TotalLength    int    `json:"totalLength"`
	TTL            uint8  `json:"ttl"`
	PayloadSize    int    `json:"payloadSize"`
	LengthMismatch bool   `json:"lengthMismatch,omitempty"`
}

type TransportInfo struct {
	SrcPort     uint16   `json:"srcPort"`
	DstPort     uint16   `json:"dstPort"`
	Seq         uint32   `json:"seq"`
	Ack         uint32   `json:"ack"`
	Window      uint16   `json:"window"`
	Flags       []string `json:"flags"`
	PayloadSize int      `json:"payloadSize"`
}

const (
	LayerLink      = "link"
	LayerNetwork   = "network"
	LayerTransport = "transport"
)

// NewFrameRecord flattens a decode result into the plugin-facing record.
func NewFrameRecord(res *decode.FrameResult) *FrameRecord {
	ci := res.Frame.CaptureInfo
	r := &FrameRecord{
		Meta: Meta{
			Version:        consts.RecordVersion,
			UUID:           uuid.New().String(),
			Timestamp:      ci.Timestamp.UnixNano(),
			CaptureLength:  ci.CaptureLength,
			OriginalLength: ci.Length,
			Truncated:      ci.CaptureLength < ci.Length,
		},
	}

	if res.Link != nil {
		r.Link = &LinkInfo{
			SrcMAC:       res.Link.SrcMAC.String(),
			DstMAC:       res.Link.DstMAC.String(),
			EthernetType: uint16(res.Link.EthernetType),
			PayloadSize:  len(res.Link.Payload),
		}
	}
	if res.Network != nil {
		r.Network = &NetworkInfo{
			SrcIP:          res.Network.SrcIP.String(),
			DstIP:          res.Network.DstIP.String(),
			Protocol:       uint8(res.Network.Protocol),
			ProtocolName:   res.Network.Protocol.String(),
			HeaderLength:   int(res.Network.IHL),
			TotalLength:    int(res.Network.Length),
			TTL:            res.Network.TTL,
			PayloadSize:    len(res.Network.Payload),
			LengthMismatch: res.Network.LengthMismatch,
		}
	}
	if res.Transport != nil {
		r.Transport = &TransportInfo{
			SrcPort:     res.Transport.SrcPort,
			DstPort:     res.Transport.DstPort,
			Seq:         res.Transport.Seq,
			Ack:         res.Transport.Ack,
			Window:      res.Transport.Window,
			Flags:       res.Transport.FlagNames(),
			PayloadSize: len(res.Transport.Payload),
		}
	}

	for layer, err := range map[string]error{
		LayerLink:      res.LinkErr,
		LayerNetwork:   res.NetworkErr,
		LayerTransport: res.TransportErr,
	} {
		if err != nil {
			if r.Errors == nil {
				r.Errors = make(map[string]string)
			}
			r.Errors[layer] = err.Error()
		}
	}

	return r
}

// SrcAddr renders "ip:port" as far as the frame decoded.
func (r *FrameRecord) SrcAddr() string {
	if r.Network == nil {
		return ""
	}
	if r.Transport == nil {
		return r.Network.SrcIP
	}
	return fmt.Sprintf("%s:%d", r.Network.SrcIP, r.Transport.SrcPort)
}

// DstAddr renders "ip:port" as far as the frame decoded.
func (r *FrameRecord) DstAddr() string {
	if r.Network == nil {
		return ""
	}
	if r.Transport == nil {
		return r.Network.DstIP
	}
	return fmt.Sprintf("%s:%d", r.Network.DstIP, r.Transport.DstPort)
}
