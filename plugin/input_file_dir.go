package plugin

import (
	"fmt"
	"io"
	"os"
	"sort"

	slog "github.com/vearne/simplelog"

	"github.com/vearne/pcapdump/model"
	"github.com/vearne/pcapdump/util"
)

// capture file suffixes picked up by the directory scan
var captureSuffixes = []string{".pcap", ".pcap.gz", ".cap"}

// FileDirInput replays every capture file under a directory, in sorted
// order, one after the other.
type FileDirInput struct {
	paths   []string
	index   int
	current *FileInput
}

func NewFileDirInput(path string) (*FileDirInput, error) {
	var in FileDirInput

	set := util.NewStringSet()
	if err := util.ListFilesRecursively(path, captureSuffixes, set); err != nil {
		return nil, err
	}
	if set.Size() == 0 {
		return nil, fmt.Errorf("no capture files under %s", path)
	}

	in.paths = set.ToArray()
	sort.Strings(in.paths)
	slog.Debug("FileDirInput, files:%v", in.paths)
	return &in, nil
}

func (in *FileDirInput) Read() (*model.FrameRecord, error) {
	for {
		if in.current == nil {
			if in.index >= len(in.paths) {
				return nil, io.EOF
			}
			next, err := NewFileInput(in.paths[in.index])
			in.index++
			if err != nil {
				slog.Error("FileDirInput skip:%v", err)
				continue
			}
			in.current = next
		}

		record, err := in.current.Read()
		if err == io.EOF {
			in.current = nil
			continue
		}
		if err != nil {
			// file is poisoned; move on after reporting
			in.current = nil
			return nil, err
		}
		return record, nil
	}
}

func (in *FileDirInput) Close() error {
	if in.current != nil {
		return in.current.Close()
	}
	return nil
}

// IsValidDir reports whether path exists and is a directory.
func IsValidDir(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("can't stat %s: %v", path, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
