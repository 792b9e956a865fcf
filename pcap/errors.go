package pcap

// FormatError is returned when the global header is unusable: unknown magic
// number, short header, or a record that contradicts the declared snaplen.
// The capture cannot be trusted past this point.
type FormatError string

func (err FormatError) Error() string {
	return "bad capture file: " + string(err)
}

// TruncatedRecordError is returned when a record header declares more bytes
// than the source holds. No partial frame is yielded and the reader is done.
type TruncatedRecordError string

func (err TruncatedRecordError) Error() string {
	return "truncated record: " + string(err)
}
