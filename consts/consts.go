package consts

import "errors"

var (
	Version   = "unknown"
	BuildTime = "unknown"
	GitTag    = "unknown"
)

// RecordVersion is the schema version stamped into every emitted record.
const RecordVersion = 1

var (
	// ErrTextCodecReadOnly is returned by the text codec's Unmarshal.
	ErrTextCodecReadOnly = errors.New("text codec can only marshal")
	ErrCodecNotFound     = errors.New("no codec registered under this name")
)
