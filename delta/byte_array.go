package delta

import "github.com/parquet-go/codec/errors"

// ByteArrayDecoder decodes a DELTA_BYTE_ARRAY stream: a DELTA_BINARY_PACKED
// stream of shared-prefix lengths followed by a DELTA_LENGTH_BYTE_ARRAY
// stream of suffixes. Each value is reassembled as prefix(previous) +
// suffix. ByteArrayDecoder is not safe for concurrent use.
type ByteArrayDecoder struct {
	prefixes   Int32Decoder
	suffixes   LengthByteArrayDecoder
	prefixLens []int32
	prev       []byte
	n          int
	i          int
}

// Reset binds data as a DELTA_BYTE_ARRAY page.
func (d *ByteArrayDecoder) Reset(data []byte) error {
	if err := d.prefixes.Reset(data); err != nil {
		return err
	}
	d.n = d.prefixes.totalValues
	prefixLens := make([]int32, d.n)
	got, err := d.prefixes.ReadBatch(prefixLens)
	if err != nil {
		return err
	}
	if got != d.n {
		return errors.Corrupted("delta: truncated prefix-length stream")
	}
	d.prefixLens = prefixLens
	consumed := len(data) - d.prefixes.r.BytesLeft()
	if err := d.suffixes.Reset(data[consumed:]); err != nil {
		return err
	}
	d.prev = d.prev[:0]
	d.i = 0
	return nil
}

// ReadBatch decodes up to n values into out. Each value is newly allocated,
// since it is assembled from a shared prefix and a suffix view.
func (d *ByteArrayDecoder) ReadBatch(out [][]byte, n int) (int, error) {
	if n > len(out) {
		n = len(out)
	}
	suffixes := make([][]byte, n)
	got, err := d.suffixes.ReadBatch(suffixes, n)
	if err != nil {
		return 0, err
	}
	count := 0
	for count < got && d.i < d.n {
		prefixLen := int(d.prefixLens[d.i])
		if prefixLen < 0 || prefixLen > len(d.prev) {
			return count, errors.Corrupted("delta: prefix length %d exceeds previous value length %d", prefixLen, len(d.prev))
		}
		value := make([]byte, prefixLen+len(suffixes[count]))
		copy(value, d.prev[:prefixLen])
		copy(value[prefixLen:], suffixes[count])
		out[count] = value
		d.prev = value
		d.i++
		count++
	}
	return count, nil
}

// ByteArrayEncoder encodes a DELTA_BYTE_ARRAY stream. This encoding is not
// produced by every parquet implementation; this encoder supplements it in
// the teacher's adaptive-encoding style, computing the longest common prefix
// with the previous value for each input.
type ByteArrayEncoder struct {
	prefixes Int32Encoder
	suffixes LengthByteArrayEncoder
	prev     []byte
}

// Reset discards any buffered values.
func (e *ByteArrayEncoder) Reset() {
	e.prefixes.Reset()
	e.suffixes.Reset()
	e.prev = e.prev[:0]
}

// PutBatch appends values to the encoder's pending input.
func (e *ByteArrayEncoder) PutBatch(values [][]byte) {
	prefixLens := make([]int32, len(values))
	suffixes := make([][]byte, len(values))
	prev := e.prev
	for i, v := range values {
		n := commonPrefixLen(prev, v)
		prefixLens[i] = int32(n)
		suffixes[i] = v[n:]
		prev = v
	}
	e.prev = append(e.prev[:0], prev...)
	e.prefixes.PutBatch(prefixLens)
	e.suffixes.PutBatch(suffixes)
}

// Flush returns the encoded DELTA_BYTE_ARRAY page and clears the encoder's
// pending input.
func (e *ByteArrayEncoder) Flush() []byte {
	prefixes := e.prefixes.Flush()
	suffixes := e.suffixes.Flush()
	out := make([]byte, len(prefixes)+len(suffixes))
	copy(out, prefixes)
	copy(out[len(prefixes):], suffixes)
	e.prev = e.prev[:0]
	return out
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}
