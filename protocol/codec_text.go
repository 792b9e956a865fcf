package protocol

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/vearne/pcapdump/consts"
	"github.com/vearne/pcapdump/model"
)

const CodecTextName = "text"

func init() {
	RegisterCodec(CodecText{})
}

// CodecText renders one record as a human-readable block, tcpdump style.
// It is write-only: this format is for eyeballs, not for round trips.
type CodecText struct{}

func (c CodecText) Marshal(record *model.FrameRecord) ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, 256))

	ts := time.Unix(0, record.Meta.Timestamp).UTC().Format("2006-01-02 15:04:05.000000")
	fmt.Fprintf(buff, "%s %s caplen=%d len=%d",
		ts, record.Meta.UUID, record.Meta.CaptureLength, record.Meta.OriginalLength)
	if record.Meta.Truncated {
		buff.WriteString(" (truncated)")
	}
	buff.WriteByte('\n')

	if record.Link != nil {
		fmt.Fprintf(buff, "  eth  %s > %s type 0x%04x\n",
			record.Link.SrcMAC, record.Link.DstMAC, record.Link.EthernetType)
	}
	if record.Network != nil {
		fmt.Fprintf(buff, "  ipv4 %s > %s proto %s ttl %d hdr %d total %d",
			record.Network.SrcIP, record.Network.DstIP, record.Network.ProtocolName,
			record.Network.TTL, record.Network.HeaderLength, record.Network.TotalLength)
		if record.Network.LengthMismatch {
			buff.WriteString(" (length mismatch)")
		}
		buff.WriteByte('\n')
	}
	if record.Transport != nil {
		fmt.Fprintf(buff, "  tcp  %d > %d seq %d ack %d win %d flags [%s] payload %d\n",
			record.Transport.SrcPort, record.Transport.DstPort,
			record.Transport.Seq, record.Transport.Ack, record.Transport.Window,
			strings.Join(record.Transport.Flags, ","), record.Transport.PayloadSize)
	}

	// failed layers, in stack order
	for _, layer := range []string{model.LayerLink, model.LayerNetwork, model.LayerTransport} {
		if reason, ok := record.Errors[layer]; ok {
			fmt.Fprintf(buff, "  !%s %s\n", layer, reason)
		}
	}

	return buff.Bytes(), nil
}

func (c CodecText) Unmarshal(data []byte, record *model.FrameRecord) error {
	return consts.ErrTextCodecReadOnly
}

func (c CodecText) Name() string {
	return CodecTextName
}
