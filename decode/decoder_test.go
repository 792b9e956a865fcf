package decode

import (
	"encoding/binary"
	"math/rand"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/stretchr/testify/assert"

	"github.com/vearne/pcapdump/layers"
	"github.com/vearne/pcapdump/pcap"
)

// buildFrame assembles Ethernet + IPv4 + payload-bearing protocol bytes.
func buildFrame(etherType uint16, ipProto byte, transport []byte) []byte {
	data := make([]byte, 14+20+len(transport))
	copy(data[0:6], []byte{0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa})
	copy(data[6:12], []byte{0xbb, 0xbb, 0xbb, 0xbb, 0xbb, 0xbb})
	binary.BigEndian.PutUint16(data[12:14], etherType)

	ip := data[14:]
	ip[0] = 0x45
	binary.BigEndian.PutUint16(ip[2:4], uint16(20+len(transport)))
	ip[8] = 64
	ip[9] = ipProto
	copy(ip[12:16], []byte{192, 168, 0, 1})
	copy(ip[16:20], []byte{192, 168, 0, 2})

	copy(ip[20:], transport)
	return data
}

func buildTCP(flags byte, payload []byte) []byte {
	data := make([]byte, 20+len(payload))
	binary.BigEndian.PutUint16(data[0:2], 34000)
	binary.BigEndian.PutUint16(data[2:4], 80)
	binary.BigEndian.PutUint32(data[4:8], 7)
	binary.BigEndian.PutUint32(data[8:12], 8)
	data[12] = 5 << 4
	data[13] = flags
	copy(data[20:], payload)
	return data
}

func rawFrame(data []byte) *pcap.RawFrame {
	return &pcap.RawFrame{
		CaptureInfo: gopacket.CaptureInfo{
			Timestamp:     time.Unix(1700000000, 0),
			CaptureLength: len(data),
			Length:        len(data),
		},
		Data: data,
	}
}

func TestProcessFrameAllLayers(t *testing.T) {
	data := buildFrame(0x0800, 6, buildTCP(0x12, []byte("hello")))
	res := ProcessFrame(rawFrame(data))

	assert.Nil(t, res.LinkErr)
	assert.Nil(t, res.NetworkErr)
	assert.Nil(t, res.TransportErr)
	assert.Equal(t, 3, res.Decoded())

	assert.Equal(t, "bb:bb:bb:bb:bb:bb", res.Link.SrcMAC.String())
	assert.Equal(t, "192.168.0.1", res.Network.SrcIP.String())
	assert.Equal(t, uint16(34000), res.Transport.SrcPort)
	assert.Equal(t, uint16(80), res.Transport.DstPort)
	assert.True(t, res.Transport.SYN)
	assert.True(t, res.Transport.ACK)
	assert.Equal(t, []byte("hello"), res.Transport.Payload)
}

func TestProcessFrameShortFrame(t *testing.T) {
	res := ProcessFrame(rawFrame([]byte{1, 2, 3}))

	assert.IsType(t, layers.ShortFrameError(""), res.LinkErr)
	assert.Nil(t, res.Link)
	assert.Nil(t, res.Network)
	assert.Nil(t, res.Transport)
	assert.Nil(t, res.NetworkErr)
	assert.Equal(t, 0, res.Decoded())
}

// an ARP frame decodes at the link layer and fails below it with a
// typed reason
func TestProcessFrameNonIPv4(t *testing.T) {
	data := buildFrame(0x0806, 6, buildTCP(0, nil))
	data[14] = 0x00 // ARP body, version nibble 0

	res := ProcessFrame(rawFrame(data))
	assert.Nil(t, res.LinkErr)
	assert.Equal(t, layers.UnsupportedVersionError(0), res.NetworkErr)
	assert.Nil(t, res.Network)
	assert.Nil(t, res.TransportErr)
}

// UDP is decodable in principle but deliberately not routed
func TestProcessFrameUnroutedProtocol(t *testing.T) {
	data := buildFrame(0x0800, 17, []byte{0, 53, 0, 53, 0, 8, 0, 0})

	res := ProcessFrame(rawFrame(data))
	assert.Nil(t, res.LinkErr)
	assert.Nil(t, res.NetworkErr)
	assert.NotNil(t, res.Network)
	assert.Nil(t, res.Transport)
	assert.IsType(t, UnroutedProtocolError(0), res.TransportErr)
	assert.Contains(t, res.TransportErr.Error(), "not routed")
}

func TestProcessFrameShortSegment(t *testing.T) {
	data := buildFrame(0x0800, 6, []byte{0, 80, 0, 80}) // 4 bytes of TCP

	res := ProcessFrame(rawFrame(data))
	assert.Nil(t, res.NetworkErr)
	assert.IsType(t, layers.ShortSegmentError(""), res.TransportErr)
	assert.Equal(t, 2, res.Decoded())
}

// ProcessFrame must return a result for arbitrary bytes, never fault
func TestProcessFrameNeverPanics(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		data := make([]byte, rng.Intn(80))
		rng.Read(data)
		res := ProcessFrame(rawFrame(data))
		assert.NotNil(t, res)
	}
}
