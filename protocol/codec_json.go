package protocol

import (
	"encoding/json"

	"github.com/vearne/pcapdump/model"
)

const CodecJsonName = "json"

func init() {
	RegisterCodec(CodecJson{})
}

type CodecJson struct{}

func (c CodecJson) Marshal(record *model.FrameRecord) ([]byte, error) {
	return json.Marshal(record)
}

func (c CodecJson) Unmarshal(data []byte, record *model.FrameRecord) error {
	return json.Unmarshal(data, record)
}

func (c CodecJson) Name() string {
	return CodecJsonName
}
