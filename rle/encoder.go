package rle

import (
	"github.com/parquet-go/codec/bitstream"
	"github.com/parquet-go/codec/internal/bitpack"
)

// minRunLength is the threshold at or above which a run of equal values is
// emitted as an RLE group rather than folded into a bit-packed group.
const minRunLength = 8

// Encoder accumulates unsigned values and emits them as an RLE/bit-packed
// hybrid byte stream on Flush. Encoder is not safe for concurrent use.
type Encoder struct {
	bitWidth uint
	values   []uint64
}

// Reset discards any buffered values and sets the bit width subsequent
// values will be packed at.
func (e *Encoder) Reset(bitWidth uint) {
	e.bitWidth = bitWidth
	e.values = e.values[:0]
}

// SetBitWidth changes the bit width subsequent Flush calls pack at, without
// discarding already-buffered values. The dictionary encoder uses this to
// defer the index bit width until the final cardinality is known.
func (e *Encoder) SetBitWidth(bitWidth uint) {
	e.bitWidth = bitWidth
}

// Put appends v to the encoder's pending values.
func (e *Encoder) Put(v uint64) {
	e.values = append(e.values, v)
}

// PutBatch appends every value in values.
func (e *Encoder) PutBatch(values []uint64) {
	e.values = append(e.values, values...)
}

// Flush writes the accumulated values to w as a sequence of greedily chosen
// RLE and bit-packed groups, then clears the encoder's pending values.
func (e *Encoder) Flush(w *bitstream.Writer) {
	values := e.values
	i := 0
	for i < len(values) {
		runLen := runLengthAt(values, i)
		if runLen >= minRunLength {
			w.WriteUvarint(uint64(runLen) << 1)
			w.WriteAligned(values[i], byteCount(e.bitWidth))
			i += runLen
			continue
		}

		start := i
		j := i
		for j < len(values) {
			k := runLengthAt(values, j)
			if k >= minRunLength {
				break
			}
			j += k
		}
		// A bit-packed group holds a multiple of 8 values; when more values
		// follow, the last group is filled from them rather than padded, since
		// a decoder cannot tell padding from real values.
		if rem := (j - start) % minRunLength; rem != 0 && j < len(values) {
			j += minRunLength - rem
			if j > len(values) {
				j = len(values)
			}
		}

		count := j - start
		groups := (count + minRunLength - 1) / minRunLength
		w.WriteUvarint(uint64(groups)<<1 | 1)

		packedCount := groups * minRunLength
		packedValues := make([]int32, packedCount)
		for n := 0; n < packedCount && start+n < j; n++ {
			packedValues[n] = int32(uint32(values[start+n]))
		}
		packed := make([]byte, byteCount(e.bitWidth*uint(packedCount))+bitpack.PaddingInt32)
		bitpack.PackInt32(packed, packedValues, e.bitWidth)
		w.WriteAlignedBytes(packed[:byteCount(e.bitWidth * uint(packedCount))])
		i = j
	}
	e.values = e.values[:0]
}

// runLengthAt returns the length of the run of equal values starting at i.
func runLengthAt(values []uint64, i int) int {
	n := 1
	for i+n < len(values) && values[i+n] == values[i] {
		n++
	}
	return n
}
