package layers

import "fmt"

// Decode failures are typed values so that the dispatcher can record, and
// tests can assert, exactly which check rejected a frame.

// ShortFrameError is returned when a link-layer input is smaller than the
// fixed Ethernet header.
type ShortFrameError string

func (err ShortFrameError) Error() string {
	return "short frame: " + string(err)
}

// ShortHeaderError is returned when a network-layer input is smaller than
// its declared header.
type ShortHeaderError string

func (err ShortHeaderError) Error() string {
	return "short header: " + string(err)
}

// ShortSegmentError is returned when a transport-layer input is smaller than
// the minimum TCP header.
type ShortSegmentError string

func (err ShortSegmentError) Error() string {
	return "short segment: " + string(err)
}

// UnsupportedVersionError is returned when the network-layer version nibble
// is not IPv4.
type UnsupportedVersionError uint8

func (err UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported IP version %d", uint8(err))
}

// InvalidHeaderLengthError is returned when a derived header length is below
// the fixed minimum or runs past the available bytes.
type InvalidHeaderLengthError string

func (err InvalidHeaderLengthError) Error() string {
	return "invalid header length: " + string(err)
}
