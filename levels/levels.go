// Package levels implements the definition/repetition level codec used on
// Parquet v1 and v2 data pages: either an RLE-hybrid stream (the common
// case) or a legacy plain bit-packed stream read MSB-first within each byte.
package levels

import (
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/rle"
)

// Decoder reads a definition or repetition level array. Decoder is not safe
// for concurrent use.
type Decoder struct {
	bitWidth   uint
	numValues  int
	valuesRead int

	bitPacked  bool
	rleDec     rle.Decoder
	bitPackedR msbBitReader
}

// msbBitReader reads fixed-width unsigned fields MSB-first within each
// byte, the bit order the legacy BIT_PACKED level encoding uses — the
// opposite of the RLE hybrid's LSB-first bit-packed groups.
type msbBitReader struct {
	data    []byte
	byteOff int
	bitOff  uint
}

func (r *msbBitReader) Reset(data []byte) {
	r.data = data
	r.byteOff = 0
	r.bitOff = 0
}

func (r *msbBitReader) ReadValue(bitWidth uint) (uint64, bool) {
	var value uint64
	for n := bitWidth; n > 0; {
		if r.byteOff >= len(r.data) {
			return 0, false
		}
		avail := 8 - r.bitOff
		take := n
		if take > avail {
			take = avail
		}
		shift := avail - take
		bits := (r.data[r.byteOff] >> shift) & (1<<take - 1)
		value = value<<take | uint64(bits)
		r.bitOff += take
		n -= take
		if r.bitOff == 8 {
			r.bitOff = 0
			r.byteOff++
		}
	}
	return value, true
}

// ResetV1 parses a v1 levels region: a four-byte little-endian length
// prefix followed by an RLE-hybrid stream (for bitPackedLegacy == false) or
// a plain bit-packed stream sized from numValues (for bitPackedLegacy ==
// true, the BIT_PACKED encoding). It returns the number of bytes consumed
// from data, which is always 4+len for RLE and has no length prefix for the
// legacy bit-packed form.
func (d *Decoder) ResetV1(data []byte, bitWidth uint, numValues int, bitPackedLegacy bool) (consumed int, err error) {
	d.bitWidth = bitWidth
	d.numValues = numValues
	d.valuesRead = 0
	d.bitPacked = bitPackedLegacy

	if bitWidth == 0 {
		return 0, nil
	}

	if bitPackedLegacy {
		n := byteLenForBitPacked(numValues, bitWidth)
		if n > len(data) {
			return 0, errors.Corrupted("levels: bit-packed region exceeds page (%d > %d)", n, len(data))
		}
		d.bitPackedR.Reset(data[:n])
		return n, nil
	}

	if len(data) < 4 {
		return 0, errors.Corrupted("levels: truncated v1 length prefix")
	}
	length := int32(uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16 | uint32(data[3])<<24)
	if length < 0 {
		return 0, errors.Corrupted("levels: negative v1 length %d", length)
	}
	if int(length) > len(data)-4 {
		return 0, errors.Corrupted("levels: v1 length %d exceeds page", length)
	}
	d.rleDec.Reset(data[4:4+int(length)], bitWidth)
	return 4 + int(length), nil
}

// ResetV2 binds the decoder to a caller-delimited RLE-hybrid region with no
// length prefix; data must already be sliced to the levels region.
func (d *Decoder) ResetV2(data []byte, bitWidth uint, numValues int) {
	d.bitWidth = bitWidth
	d.numValues = numValues
	d.valuesRead = 0
	d.bitPacked = false
	d.rleDec.Reset(data, bitWidth)
}

// ReadBatch writes up to len(out) levels, bounded by the number of values
// declared at Reset. It returns the count written.
func (d *Decoder) ReadBatch(out []int32) (int, error) {
	remaining := d.numValues - d.valuesRead
	if remaining < len(out) {
		out = out[:remaining]
	}
	if d.bitWidth == 0 {
		for i := range out {
			out[i] = 0
		}
		d.valuesRead += len(out)
		return len(out), nil
	}
	if d.bitPacked {
		for i := range out {
			v, ok := d.bitPackedR.ReadValue(d.bitWidth)
			if !ok {
				return i, nil
			}
			out[i] = int32(v)
		}
		d.valuesRead += len(out)
		return len(out), nil
	}
	buf := make([]uint64, len(out))
	n, err := d.rleDec.Decode(buf)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		out[i] = int32(buf[i])
	}
	d.valuesRead += n
	return n, nil
}

func byteLenForBitPacked(numValues int, bitWidth uint) int {
	return int((uint(numValues)*bitWidth + 7) / 8)
}
