package protocol

import (
	"strings"

	"github.com/vearne/pcapdump/model"
)

type Codec interface {
	// Marshal returns the wire format of record.
	Marshal(record *model.FrameRecord) ([]byte, error)
	// Unmarshal parses the wire format into record.
	Unmarshal(data []byte, record *model.FrameRecord) error
	// Name returns the name of the Codec implementation. The result must be
	// static; the result cannot change between calls.
	Name() string
}

var registeredCodecs = make(map[string]Codec)

func RegisterCodec(codec Codec) {
	if codec == nil {
		panic("cannot register a nil Codec")
	}
	if codec.Name() == "" {
		panic("cannot register Codec with empty string result for Name()")
	}
	registeredCodecs[strings.ToLower(codec.Name())] = codec
}

// GetCodec returns the codec registered under name (lowercase), or nil.
func GetCodec(name string) Codec {
	return registeredCodecs[strings.ToLower(name)]
}
