package plugin

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/vearne/pcapdump/consts"
	"github.com/vearne/pcapdump/model"
	"github.com/vearne/pcapdump/protocol"
)

const fileFlushInterval = time.Second

// FileOutput appends codec-marshaled records to a single file. A path
// ending in .gz gets gzip compression. Writes are buffered; a background
// ticker flushes so a long-running process leaves readable output behind.
type FileOutput struct {
	sync.Mutex
	path   string
	codec  protocol.Codec
	file   *os.File
	gz     *gzip.Writer
	writer *bufio.Writer
	quit   chan struct{}
	closed bool
}

func NewFileOutput(codec string, path string) (*FileOutput, error) {
	var o FileOutput
	o.path = path
	o.codec = protocol.GetCodec(codec)
	if o.codec == nil {
		return nil, fmt.Errorf("%w: %q", consts.ErrCodecNotFound, codec)
	}

	var err error
	o.file, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open output file %s: %v", path, err)
	}

	if strings.HasSuffix(path, ".gz") {
		o.gz = gzip.NewWriter(o.file)
		o.writer = bufio.NewWriter(o.gz)
	} else {
		o.writer = bufio.NewWriter(o.file)
	}

	o.quit = make(chan struct{})
	go o.flushLoop()
	return &o, nil
}

func (o *FileOutput) flushLoop() {
	ticker := time.NewTicker(fileFlushInterval)
	defer ticker.Stop()
	for {
		select {
		case <-o.quit:
			return
		case <-ticker.C:
			o.Lock()
			o.writer.Flush()
			if o.gz != nil {
				o.gz.Flush()
			}
			o.Unlock()
		}
	}
}

func (o *FileOutput) Write(record *model.FrameRecord) error {
	data, err := o.codec.Marshal(record)
	if err != nil {
		return err
	}

	o.Lock()
	defer o.Unlock()
	if o.closed {
		return fmt.Errorf("output file %s already closed", o.path)
	}
	if _, err = o.writer.Write(data); err != nil {
		return err
	}
	return o.writer.WriteByte('\n')
}

func (o *FileOutput) Close() error {
	o.Lock()
	defer o.Unlock()
	if o.closed {
		return nil
	}
	o.closed = true
	close(o.quit)

	o.writer.Flush()
	if o.gz != nil {
		o.gz.Close()
	}
	return o.file.Close()
}
