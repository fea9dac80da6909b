package delta

import "github.com/parquet-go/codec/errors"

// LengthByteArrayDecoder decodes a DELTA_LENGTH_BYTE_ARRAY stream: a
// DELTA_BINARY_PACKED stream of lengths followed by the concatenated value
// bytes. LengthByteArrayDecoder is not safe for concurrent use.
type LengthByteArrayDecoder struct {
	lengths     Int32Decoder
	precomputed []int32
	data        []byte
	offset      int
	n           int
	i           int
}

// Reset binds data as a DELTA_LENGTH_BYTE_ARRAY page.
func (d *LengthByteArrayDecoder) Reset(data []byte) error {
	if err := d.lengths.Reset(data); err != nil {
		return err
	}
	d.n = d.lengths.totalValues
	d.i = 0
	d.offset = d.consumedHeaderBytes(data)
	d.data = data
	return nil
}

// consumedHeaderBytes re-walks the lengths decoder's bit reader to find
// where the length stream ends and the raw value bytes begin. The
// DELTA_BINARY_PACKED stream for N lengths occupies exactly the bytes
// consumed while decoding all N of them, so we decode them eagerly here.
func (d *LengthByteArrayDecoder) consumedHeaderBytes(data []byte) int {
	lens := make([]int32, d.n)
	got, err := d.lengths.ReadBatch(lens)
	if err != nil || got != d.n {
		return len(data)
	}
	d.precomputed = lens
	return len(data) - d.lengths.r.BytesLeft()
}

// ReadBatch decodes up to n values into out, each a shared view into the
// page's backing array.
func (d *LengthByteArrayDecoder) ReadBatch(out [][]byte, n int) (int, error) {
	if n > len(out) {
		n = len(out)
	}
	count := 0
	for count < n && d.i < d.n {
		length := int(d.precomputed[d.i])
		if length < 0 || d.offset+length > len(d.data) {
			return count, errors.Corrupted("delta: byte array length %d exceeds remaining data", length)
		}
		out[count] = d.data[d.offset : d.offset+length]
		d.offset += length
		d.i++
		count++
	}
	return count, nil
}

// LengthByteArrayEncoder encodes a DELTA_LENGTH_BYTE_ARRAY stream.
// LengthByteArrayEncoder is not safe for concurrent use.
type LengthByteArrayEncoder struct {
	lengths Int32Encoder
	values  []byte
}

// Reset discards any buffered values.
func (e *LengthByteArrayEncoder) Reset() {
	e.lengths.Reset()
	e.values = e.values[:0]
}

// PutBatch appends values to the encoder's pending input.
func (e *LengthByteArrayEncoder) PutBatch(values [][]byte) {
	lens := make([]int32, len(values))
	for i, v := range values {
		lens[i] = int32(len(v))
		e.values = append(e.values, v...)
	}
	e.lengths.PutBatch(lens)
}

// Flush returns the encoded DELTA_LENGTH_BYTE_ARRAY page and clears the
// encoder's pending input.
func (e *LengthByteArrayEncoder) Flush() []byte {
	lengths := e.lengths.Flush()
	out := make([]byte, len(lengths)+len(e.values))
	copy(out, lengths)
	copy(out[len(lengths):], e.values)
	e.values = e.values[:0]
	return out
}
