package model

import (
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/stretchr/testify/assert"

	"github.com/vearne/pcapdump/decode"
	"github.com/vearne/pcapdump/layers"
	"github.com/vearne/pcapdump/pcap"
)

func TestNewFrameRecordPartialDecode(t *testing.T) {
	res := &decode.FrameResult{
		Frame: &pcap.RawFrame{
			CaptureInfo: gopacket.CaptureInfo{
				Timestamp:     time.Unix(10, 500),
				CaptureLength: 60,
				Length:        1500,
			},
		},
		Link: &layers.Ethernet{
			SrcMAC:       []byte{1, 2, 3, 4, 5, 6},
			DstMAC:       []byte{6, 5, 4, 3, 2, 1},
			EthernetType: 0x0800,
		},
		NetworkErr: layers.ShortHeaderError("need 20 bytes, have 3"),
	}

	record := NewFrameRecord(res)
	assert.NotEmpty(t, record.Meta.UUID)
	assert.Equal(t, int64(10*1e9+500), record.Meta.Timestamp)
	assert.Equal(t, 60, record.Meta.CaptureLength)
	assert.Equal(t, 1500, record.Meta.OriginalLength)
	assert.True(t, record.Meta.Truncated)

	assert.Equal(t, "01:02:03:04:05:06", record.Link.SrcMAC)
	assert.Nil(t, record.Network)
	assert.Nil(t, record.Transport)

	assert.Contains(t, record.Errors[LayerNetwork], "short header")
	assert.NotContains(t, record.Errors, LayerLink)
	assert.NotContains(t, record.Errors, LayerTransport)
}

func TestFrameRecordAddrs(t *testing.T) {
	record := &FrameRecord{}
	assert.Equal(t, "", record.SrcAddr())

	record.Network = &NetworkInfo{SrcIP: "10.0.0.1", DstIP: "10.0.0.2"}
	assert.Equal(t, "10.0.0.1", record.SrcAddr())
	assert.Equal(t, "10.0.0.2", record.DstAddr())

	record.Transport = &TransportInfo{SrcPort: 1234, DstPort: 80}
	assert.Equal(t, "10.0.0.1:1234", record.SrcAddr())
	assert.Equal(t, "10.0.0.2:80", record.DstAddr())
}
