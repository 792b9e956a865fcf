package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vearne/pcapdump/consts"
	"github.com/vearne/pcapdump/model"
)

func sampleRecord() *model.FrameRecord {
	return &model.FrameRecord{
		Meta: model.Meta{
			Version:        consts.RecordVersion,
			UUID:           "3e9a1c7e-0000-0000-0000-000000000000",
			Timestamp:      1700000000123456000,
			CaptureLength:  74,
			OriginalLength: 74,
		},
		Link: &model.LinkInfo{
			SrcMAC:       "11:22:33:44:55:66",
			DstMAC:       "aa:bb:cc:dd:ee:ff",
			EthernetType: 0x0800,
		},
		Network: &model.NetworkInfo{
			SrcIP:        "10.0.0.1",
			DstIP:        "10.0.0.2",
			Protocol:     6,
			ProtocolName: "TCP",
			HeaderLength: 20,
			TotalLength:  60,
			TTL:          64,
		},
		Transport: &model.TransportInfo{
			SrcPort: 51000,
			DstPort: 443,
			Seq:     1,
			Ack:     2,
			Window:  65535,
			Flags:   []string{"SYN", "ACK"},
		},
	}
}

func TestCodecTextMarshal(t *testing.T) {
	data, err := CodecText{}.Marshal(sampleRecord())
	assert.Nil(t, err)

	out := string(data)
	assert.Contains(t, out, "3e9a1c7e")
	assert.Contains(t, out, "caplen=74")
	assert.Contains(t, out, "eth  11:22:33:44:55:66 > aa:bb:cc:dd:ee:ff type 0x0800")
	assert.Contains(t, out, "ipv4 10.0.0.1 > 10.0.0.2 proto TCP")
	assert.Contains(t, out, "tcp  51000 > 443")
	assert.Contains(t, out, "flags [SYN,ACK]")
	assert.NotContains(t, out, "!")
}

func TestCodecTextMarshalFailedLayer(t *testing.T) {
	record := sampleRecord()
	record.Transport = nil
	record.Errors = map[string]string{
		model.LayerTransport: "short segment: need 20 bytes, have 4",
	}

	data, err := CodecText{}.Marshal(record)
	assert.Nil(t, err)
	assert.Contains(t, string(data), "!transport short segment")
	assert.NotContains(t, string(data), "tcp ")
}

func TestCodecTextUnmarshalRefused(t *testing.T) {
	err := CodecText{}.Unmarshal([]byte("anything"), &model.FrameRecord{})
	assert.Equal(t, consts.ErrTextCodecReadOnly, err)
}

func TestGetCodec(t *testing.T) {
	assert.NotNil(t, GetCodec("text"))
	assert.NotNil(t, GetCodec("json"))
	assert.NotNil(t, GetCodec("JSON"))
	assert.Nil(t, GetCodec("xml"))
}
