package pcap

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Magic numbers of the classic pcap container, as read in big-endian order.
// The byte-swapped values mean the writer used the opposite byte order.
const (
	magicMicroseconds        = 0xa1b2c3d4
	magicMicrosecondsSwapped = 0xd4c3b2a1
	magicNanoseconds         = 0xa1b23c4d
	magicNanosecondsSwapped  = 0x4d3cb2a1
)

const (
	globalHeaderSize = 24
	recordHeaderSize = 16
)

// GlobalHeader is the decoded 24-byte header at the start of a capture file.
type GlobalHeader struct {
	VersionMajor uint16
	VersionMinor uint16
	ThisZone     int32
	SigFigs      uint32
	SnapLen      uint32
	LinkType     layers.LinkType
}

// RawFrame is one captured record: metadata from the record header plus
// Data, whose length equals CaptureInfo.CaptureLength. Immutable once read.
type RawFrame struct {
	CaptureInfo gopacket.CaptureInfo
	Data        []byte
}

// Reader parses a pcap capture file from an io.Reader in a single forward
// pass. It does not own the underlying source; the caller closes it.
//
// The byte order announced by the magic number governs every integer field
// that follows, both in the global header and in each record header.
type Reader struct {
	src       io.Reader
	Header    GlobalHeader
	byteOrder binary.ByteOrder
	// timestamp fraction is nanoseconds instead of microseconds
	nanos bool
	buf   [recordHeaderSize]byte
	err   error
}

// NewReader reads and validates the global header. It fails with FormatError
// if the magic number is unrecognized or the header is incomplete.
func NewReader(src io.Reader) (*Reader, error) {
	r := &Reader{src: src}

	var hdr [globalHeaderSize]byte
	if _, err := io.ReadFull(src, hdr[:]); err != nil {
		return nil, FormatError(fmt.Sprintf("global header: %v", err))
	}

	switch binary.BigEndian.Uint32(hdr[0:4]) {
	case magicMicroseconds:
		r.byteOrder = binary.BigEndian
	case magicMicrosecondsSwapped:
		r.byteOrder = binary.LittleEndian
	case magicNanoseconds:
		r.byteOrder = binary.BigEndian
		r.nanos = true
	case magicNanosecondsSwapped:
		r.byteOrder = binary.LittleEndian
		r.nanos = true
	default:
		return nil, FormatError(fmt.Sprintf("unknown magic number %#08x", binary.BigEndian.Uint32(hdr[0:4])))
	}

	r.Header.VersionMajor = r.byteOrder.Uint16(hdr[4:6])
	r.Header.VersionMinor = r.byteOrder.Uint16(hdr[6:8])
	r.Header.ThisZone = int32(r.byteOrder.Uint32(hdr[8:12]))
	r.Header.SigFigs = r.byteOrder.Uint32(hdr[12:16])
	r.Header.SnapLen = r.byteOrder.Uint32(hdr[16:20])
	r.Header.LinkType = layers.LinkType(r.byteOrder.Uint32(hdr[20:24]))

	if r.Header.SnapLen == 0 {
		return nil, FormatError("snapshot length is zero")
	}

	return r, nil
}

// ByteOrder reports the byte order announced by the magic number.
func (r *Reader) ByteOrder() binary.ByteOrder {
	return r.byteOrder
}

// Next returns the next record, or io.EOF at a clean end-of-source. The
// sequence is not restartable: once Next returns an error, every later call
// returns the same error. A record cut off mid-way yields
// TruncatedRecordError, never a partial frame.
func (r *Reader) Next() (*RawFrame, error) {
	if r.err != nil {
		return nil, r.err
	}

	frame, err := r.next()
	if err != nil {
		r.err = err
		return nil, err
	}
	return frame, nil
}

func (r *Reader) next() (*RawFrame, error) {
	n, err := io.ReadFull(r.src, r.buf[:])
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, TruncatedRecordError(fmt.Sprintf("record header: got %d of %d bytes", n, recordHeaderSize))
	}

	sec := r.byteOrder.Uint32(r.buf[0:4])
	frac := r.byteOrder.Uint32(r.buf[4:8])
	capLen := r.byteOrder.Uint32(r.buf[8:12])
	origLen := r.byteOrder.Uint32(r.buf[12:16])

	if capLen > r.Header.SnapLen {
		return nil, FormatError(fmt.Sprintf("captured length %d exceeds snaplen %d", capLen, r.Header.SnapLen))
	}

	data := make([]byte, capLen)
	if n, err := io.ReadFull(r.src, data); err != nil {
		return nil, TruncatedRecordError(fmt.Sprintf("record body: got %d of %d bytes", n, capLen))
	}

	if !r.nanos {
		frac *= 1000
	}

	return &RawFrame{
		CaptureInfo: gopacket.CaptureInfo{
			Timestamp:     time.Unix(int64(sec), int64(frac)),
			CaptureLength: int(capLen),
			Length:        int(origLen),
		},
		Data: data,
	}, nil
}
