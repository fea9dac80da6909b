package dict

import (
	"github.com/parquet-go/codec/bitstream"
	"github.com/parquet-go/codec/plain"
	"github.com/parquet-go/codec/rle"
)

// Encoder accumulates comparable values, assigns them dense insertion-order
// indices, and emits an RLE-hybrid index page on Flush. The dictionary page
// itself is obtained separately via ViewDict. Encoder is not safe for
// concurrent use.
type Encoder[T comparable] struct {
	builder Builder[T]
	idxEnc  rle.Encoder
	count   int
}

// Reset discards any accumulated values and indices.
func (e *Encoder[T]) Reset() {
	e.builder.Reset()
	e.idxEnc.Reset(0)
	e.count = 0
}

// PutBatch assigns each value a dictionary index and records it in the
// pending index stream.
func (e *Encoder[T]) PutBatch(values []T) {
	for _, v := range values {
		e.idxEnc.Put(uint64(e.builder.Put(v)))
	}
	e.count += len(values)
}

// MaxEncodedSize returns an upper bound on the bytes Flush will write for
// the index stream (not including the separate dictionary page).
func (e *Encoder[T]) MaxEncodedSize() int {
	bw := bitWidthFor(e.builder.Len())
	return 1 + rle.MaxBufferSize(bw, e.count)
}

// Flush writes the leading index-bit-width byte followed by the RLE-hybrid
// index stream, then clears the pending indices (the dictionary itself is
// not cleared; ViewDict and Cardinality keep reflecting it).
func (e *Encoder[T]) Flush() []byte {
	bw := bitWidthFor(e.builder.Len())
	e.idxEnc.SetBitWidth(bw)

	var w bitstream.Writer
	w.Reset(nil)
	e.idxEnc.Flush(&w)
	e.count = 0

	page := make([]byte, 1+len(w.Bytes()))
	page[0] = byte(bw)
	copy(page[1:], w.Bytes())
	return page
}

// ViewDict returns the PLAIN encoding of the distinct values in insertion
// order: the dictionary page.
func (e *Encoder[T]) ViewDict() []byte {
	return plain.EncodeFixedWidth(nil, e.builder.Dict())
}

// Dict returns the distinct values in insertion order, for binding against
// a Decoder[T] without round-tripping through the PLAIN encoding.
func (e *Encoder[T]) Dict() []T { return e.builder.Dict() }

// Cardinality returns the number of distinct values seen so far.
func (e *Encoder[T]) Cardinality() int { return e.builder.Len() }

// AdaptiveEncoder starts as a dictionary encoder and permanently falls back
// to PLAIN at a Flush boundary once the dictionary page exceeds
// FallbackThreshold. AdaptiveEncoder is not safe for concurrent use.
type AdaptiveEncoder[T comparable] struct {
	dict        Encoder[T]
	fellBack    bool
	plainValues []T
}

// Reset discards all accumulated state and returns the encoder to the
// dictionary-encoding state.
func (e *AdaptiveEncoder[T]) Reset() {
	e.dict.Reset()
	e.fellBack = false
	e.plainValues = e.plainValues[:0]
}

// PutBatch accumulates values through whichever inner encoder is currently
// active.
func (e *AdaptiveEncoder[T]) PutBatch(values []T) {
	if e.fellBack {
		e.plainValues = append(e.plainValues, values...)
		return
	}
	e.dict.PutBatch(values)
}

// Flush emits the pending page and reports the realized encoding: RLE
// dictionary while under threshold, PLAIN forever after the first
// over-threshold flush.
func (e *AdaptiveEncoder[T]) Flush() (page []byte, fellBack bool) {
	if e.fellBack {
		out := plain.EncodeFixedWidth(nil, e.plainValues)
		e.plainValues = e.plainValues[:0]
		return out, true
	}
	page = e.dict.Flush()
	if len(e.dict.ViewDict()) > FallbackThreshold {
		e.fellBack = true
	}
	return page, false
}

// ViewDict returns the dictionary page as last emitted by the dictionary
// encoder, even after falling back to PLAIN.
func (e *AdaptiveEncoder[T]) ViewDict() []byte { return e.dict.ViewDict() }

// Cardinality returns the dictionary's cardinality, even after falling back
// to PLAIN.
func (e *AdaptiveEncoder[T]) Cardinality() int { return e.dict.Cardinality() }
