package plugin

import (
	"fmt"
	"os"

	"github.com/vearne/pcapdump/consts"
	"github.com/vearne/pcapdump/model"
	"github.com/vearne/pcapdump/protocol"
)

type StdOutput struct {
	codec protocol.Codec
}

func NewStdOutput(codec string) (*StdOutput, error) {
	var o StdOutput
	o.codec = protocol.GetCodec(codec)
	if o.codec == nil {
		return nil, fmt.Errorf("%w: %q", consts.ErrCodecNotFound, codec)
	}
	return &o, nil
}

func (o *StdOutput) Close() error {
	return nil
}

func (o *StdOutput) Write(record *model.FrameRecord) (err error) {
	data, err := o.codec.Marshal(record)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(data)
	if err != nil {
		return err
	}
	// one record per line/block
	_, err = os.Stdout.Write([]byte{'\n'})
	return err
}
