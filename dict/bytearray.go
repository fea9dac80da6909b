package dict

import (
	"github.com/parquet-go/codec/bitstream"
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/plain"
	"github.com/parquet-go/codec/rle"
)

// ByteArrayDecoder is the Decoder[T] equivalent for BYTE_ARRAY and
// FIXED_LEN_BYTE_ARRAY dictionaries, resolving indices to shared byte-slice
// views rather than deep copies.
type ByteArrayDecoder struct {
	dict  [][]byte
	idx   rle.Decoder
	empty bool
}

// ResetDict binds the dictionary the decoder resolves indices against.
func (d *ByteArrayDecoder) ResetDict(dict [][]byte) {
	d.dict = dict
}

// Reset binds data as an index page, identically to Decoder[T].Reset.
func (d *ByteArrayDecoder) Reset(data []byte) error {
	if len(data) == 0 {
		d.empty = true
		return nil
	}
	d.empty = false
	bitWidth := data[0]
	if bitWidth > 32 {
		return errors.Corrupted("dict: illegal index bit width %d", bitWidth)
	}
	d.idx.Reset(data[1:], uint(bitWidth))
	return nil
}

// ReadBatch resolves up to n indices into out, each a shared view into the
// bound dictionary (never deep-copied).
func (d *ByteArrayDecoder) ReadBatch(out [][]byte, n int) (int, error) {
	if d.empty {
		return 0, nil
	}
	if n > len(out) {
		n = len(out)
	}
	idx := make([]uint64, n)
	got, err := d.idx.Decode(idx)
	if err != nil {
		return 0, err
	}
	for i := 0; i < got; i++ {
		if idx[i] >= uint64(len(d.dict)) {
			return i, errors.Corrupted("dict: index %d exceeds dictionary size %d", idx[i], len(d.dict))
		}
		out[i] = d.dict[idx[i]]
	}
	return got, nil
}

// ByteArrayBuilder is the Builder[T] equivalent for byte slices, which are
// not comparable and so can't instantiate the generic Builder directly. It
// keys on the string conversion of each value, which Go performs without an
// extra heap copy when used purely as a short-lived map lookup.
type ByteArrayBuilder struct {
	index  map[string]int32
	values [][]byte
}

// Reset discards any accumulated values.
func (b *ByteArrayBuilder) Reset() {
	b.index = make(map[string]int32)
	b.values = b.values[:0]
}

// Put returns v's dictionary index, assigning it the next dense index on
// first occurrence. The value is copied into owned storage on first sight.
func (b *ByteArrayBuilder) Put(v []byte) int32 {
	if idx, ok := b.index[string(v)]; ok {
		return idx
	}
	owned := append([]byte(nil), v...)
	idx := int32(len(b.values))
	b.index[string(owned)] = idx
	b.values = append(b.values, owned)
	return idx
}

// Dict returns the distinct values in insertion order.
func (b *ByteArrayBuilder) Dict() [][]byte { return b.values }

// Len returns the current cardinality.
func (b *ByteArrayBuilder) Len() int { return len(b.values) }

// ByteArrayEncoder is the Encoder[T] equivalent for BYTE_ARRAY dictionaries.
type ByteArrayEncoder struct {
	builder ByteArrayBuilder
	idxEnc  rle.Encoder
	count   int
}

// Reset discards any accumulated values and indices.
func (e *ByteArrayEncoder) Reset() {
	e.builder.Reset()
	e.idxEnc.Reset(0)
	e.count = 0
}

// PutBatch assigns each value a dictionary index and records it in the
// pending index stream.
func (e *ByteArrayEncoder) PutBatch(values [][]byte) {
	for _, v := range values {
		e.idxEnc.Put(uint64(e.builder.Put(v)))
	}
	e.count += len(values)
}

// MaxEncodedSize returns an upper bound on the bytes Flush will write for
// the index stream.
func (e *ByteArrayEncoder) MaxEncodedSize() int {
	bw := bitWidthFor(e.builder.Len())
	return 1 + rle.MaxBufferSize(bw, e.count)
}

// Flush writes the index bit width byte followed by the RLE-hybrid index
// stream, then clears the pending indices.
func (e *ByteArrayEncoder) Flush() []byte {
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
// order.
func (e *ByteArrayEncoder) ViewDict() []byte {
	var enc plain.ByteArrayEncoder
	enc.Reset()
	enc.PutBatch(e.builder.Dict())
	return enc.Bytes()
}

// Cardinality returns the number of distinct values seen so far.
func (e *ByteArrayEncoder) Cardinality() int { return e.builder.Len() }

// Dict returns the distinct values in insertion order, for binding against
// a ByteArrayDecoder without round-tripping through the PLAIN encoding.
func (e *ByteArrayEncoder) Dict() [][]byte { return e.builder.Dict() }
