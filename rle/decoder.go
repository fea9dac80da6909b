package rle

import (
	"github.com/parquet-go/codec/bitstream"
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/internal/bitpack"
)

// Decoder reads values from an RLE/bit-packed hybrid byte stream at a fixed
// bit width. Decoder is not safe for concurrent use.
type Decoder struct {
	r          bitstream.Reader
	bitWidth   uint
	runValue   uint64
	runLeft    int
	packedLeft int
	packedBuf  []int32
	packedPos  int
}

// Reset binds the decoder to data, to be read at bitWidth bits per value.
func (d *Decoder) Reset(data []byte, bitWidth uint) {
	d.r.Reset(data)
	d.bitWidth = bitWidth
	d.runLeft = 0
	d.packedLeft = 0
	d.packedPos = 0
}

// Decode fills out with up to len(out) values, returning the number
// actually written. A short count with a nil error means the stream is
// exhausted; a non-nil error means the stream is corrupted.
func (d *Decoder) Decode(out []uint64) (int, error) {
	if d.bitWidth == 0 {
		for i := range out {
			out[i] = 0
		}
		return len(out), nil
	}

	n := 0
	for n < len(out) {
		if d.runLeft == 0 && d.packedLeft == 0 {
			more, err := d.nextGroup()
			if err != nil {
				return n, err
			}
			if !more {
				return n, nil
			}
		}
		switch {
		case d.runLeft > 0:
			out[n] = d.runValue
			d.runLeft--
			n++
		case d.packedLeft > 0:
			out[n] = uint64(uint32(d.packedBuf[d.packedPos]))
			d.packedPos++
			d.packedLeft--
			n++
		}
	}
	return n, nil
}

// nextGroup parses the next group header. more is false when the stream is
// exhausted with no partial group pending (a clean end-of-stream); err is
// non-nil when a group header promised bytes that are not present.
func (d *Decoder) nextGroup() (more bool, err error) {
	h, ok := d.r.ReadUvarint()
	if !ok {
		return false, nil
	}
	if h&1 == 0 {
		runLen := h >> 1
		value, vok := d.r.ReadAligned(byteCount(d.bitWidth))
		if !vok {
			return false, errors.Corrupted("rle: truncated run-length value")
		}
		d.runValue = value
		d.runLeft = int(runLen)
	} else {
		count := int(h>>1) * 8
		nbytes := byteCount(d.bitWidth * uint(count))
		raw, bok := d.r.ReadAlignedBytes(nbytes)
		if !bok {
			return false, errors.Corrupted("rle: truncated bit-packed group")
		}
		if cap(d.packedBuf) < count {
			d.packedBuf = make([]int32, count)
		}
		d.packedBuf = d.packedBuf[:count]
		bitpack.UnpackInt32(d.packedBuf, raw, d.bitWidth)
		d.packedLeft = count
		d.packedPos = 0
	}
	return true, nil
}
