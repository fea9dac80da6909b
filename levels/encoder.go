package levels

import (
	"github.com/parquet-go/codec/bitstream"
	"github.com/parquet-go/codec/rle"
)

// Encoder produces a definition or repetition level stream. Encoder is not
// safe for concurrent use.
type Encoder struct {
	bitWidth uint
	rleEnc   rle.Encoder
	w        bitstream.Writer
}

// Reset prepares the encoder to accept levels packed at bitWidth bits.
func (e *Encoder) Reset(bitWidth uint) {
	e.bitWidth = bitWidth
	e.rleEnc.Reset(bitWidth)
	e.w.Reset(nil)
}

// PutBatch appends levels to the encoder's pending values.
func (e *Encoder) PutBatch(levels []int32) {
	for _, v := range levels {
		e.rleEnc.Put(uint64(uint32(v)))
	}
}

// FlushV1 emits a four-byte little-endian length prefix followed by the
// RLE-hybrid encoded levels, returning the full encoded region including
// the prefix.
func (e *Encoder) FlushV1() []byte {
	e.w.Reset(nil)
	e.rleEnc.Flush(&e.w)
	payload := e.w.Bytes()

	out := make([]byte, 4+len(payload))
	out[0] = byte(len(payload))
	out[1] = byte(len(payload) >> 8)
	out[2] = byte(len(payload) >> 16)
	out[3] = byte(len(payload) >> 24)
	copy(out[4:], payload)
	return out
}

// FlushV2 emits the RLE-hybrid encoded levels with no length prefix; the
// caller is responsible for recording the resulting length in the page
// descriptor.
func (e *Encoder) FlushV2() []byte {
	e.w.Reset(nil)
	e.rleEnc.Flush(&e.w)
	return e.w.Bytes()
}
