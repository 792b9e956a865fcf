package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEthernetShortInput(t *testing.T) {
	for size := 0; size < EthernetHeaderSize; size++ {
		frame, err := DecodeEthernet(make([]byte, size))
		assert.Nil(t, frame)
		assert.IsType(t, ShortFrameError(""), err)
	}
}

func TestDecodeEthernetAllZero(t *testing.T) {
	frame, err := DecodeEthernet(make([]byte, EthernetHeaderSize))
	assert.Nil(t, err)
	assert.Equal(t, "00:00:00:00:00:00", frame.DstMAC.String())
	assert.Equal(t, "00:00:00:00:00:00", frame.SrcMAC.String())
	assert.Equal(t, uint16(0), uint16(frame.EthernetType))
	assert.Len(t, frame.Payload, 0)
}

func TestDecodeEthernet(t *testing.T) {
	data := []byte{
		0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff, // dst
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66, // src
		0x08, 0x00, // IPv4
		0x45, 0x00, 0x00, // payload
	}

	frame, err := DecodeEthernet(data)
	assert.Nil(t, err)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", frame.DstMAC.String())
	assert.Equal(t, "11:22:33:44:55:66", frame.SrcMAC.String())
	assert.Equal(t, uint16(0x0800), uint16(frame.EthernetType))
	assert.Equal(t, data[:14], frame.LayerContents())
	assert.Equal(t, []byte{0x45, 0x00, 0x00}, frame.LayerPayload())
}

// unknown ether types are not rejected at this layer
func TestDecodeEthernetUnknownType(t *testing.T) {
	data := make([]byte, EthernetHeaderSize)
	data[12] = 0xbe
	data[13] = 0xef

	frame, err := DecodeEthernet(data)
	assert.Nil(t, err)
	assert.Equal(t, uint16(0xbeef), uint16(frame.EthernetType))
}
