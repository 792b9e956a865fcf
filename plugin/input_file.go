package plugin

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	slog "github.com/vearne/simplelog"

	"github.com/vearne/pcapdump/decode"
	"github.com/vearne/pcapdump/model"
	"github.com/vearne/pcapdump/pcap"
)

// FileInput reads one capture file, decodes every frame and emits records.
// Files ending in .gz are decompressed on the fly.
type FileInput struct {
	path   string
	file   *os.File
	gz     *gzip.Reader
	reader *pcap.Reader
	closed bool
	// a fatal reader error already reported through Read
	failed bool
}

// NewFileInput opens path and validates the capture's global header. The
// file is closed again if the header is rejected.
func NewFileInput(path string) (*FileInput, error) {
	var in FileInput
	in.path = path

	var err error
	in.file, err = os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open capture file %s: %v", path, err)
	}

	var src io.Reader = bufio.NewReader(in.file)
	if strings.HasSuffix(path, ".gz") {
		in.gz, err = gzip.NewReader(src)
		if err != nil {
			in.file.Close()
			return nil, fmt.Errorf("gunzip %s: %v", path, err)
		}
		src = in.gz
	}

	in.reader, err = pcap.NewReader(src)
	if err != nil {
		in.Close()
		return nil, fmt.Errorf("%s: %v", path, err)
	}

	slog.Info("FileInput %s: snaplen %d, link type %v",
		path, in.reader.Header.SnapLen, in.reader.Header.LinkType)
	return &in, nil
}

// Read returns the next decoded record. A reader-level failure (bad format,
// truncated record) poisons the file: it is reported once, then every later
// call returns io.EOF. Malformed frame *content* never surfaces here; it
// lands in the record's error map.
func (in *FileInput) Read() (*model.FrameRecord, error) {
	if in.failed {
		return nil, io.EOF
	}

	frame, err := in.reader.Next()
	if err == io.EOF {
		in.Close()
		return nil, io.EOF
	}
	if err != nil {
		in.failed = true
		in.Close()
		return nil, fmt.Errorf("%s: %w", in.path, err)
	}

	return model.NewFrameRecord(decode.ProcessFrame(frame)), nil
}

// Close releases the file. Safe to call more than once; Read closes the
// input itself on every terminal path.
func (in *FileInput) Close() error {
	if in.closed {
		return nil
	}
	in.closed = true
	if in.gz != nil {
		in.gz.Close()
	}
	return in.file.Close()
}
