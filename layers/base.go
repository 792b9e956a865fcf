// Package layers holds hand-rolled decoders for the Ethernet, IPv4 and TCP
// headers. Every decoder is a pure function over its input slice: it borrows
// the bytes, never copies, and never reads past len(input).
package layers

// Base carries the byte ranges every decoded layer exposes. Contents is the
// header itself, Payload the undecoded remainder handed to the next layer.
// Both are sub-slices of the decoder's input.
type Base struct {
	Contents []byte
	Payload  []byte
}

// LayerContents returns the bytes of the layer's own header.
func (b *Base) LayerContents() []byte { return b.Contents }

// LayerPayload returns the bytes carried by, but not part of, the layer.
func (b *Base) LayerPayload() []byte { return b.Payload }
