package bytestreamsplit

import (
	"math"

	"github.com/parquet-go/codec/errors"
)

// Float32Decoder decodes a BYTE_STREAM_SPLIT stream of float32 values.
type Float32Decoder struct {
	data []byte
	n    int
	pos  int
}

// Reset binds data as a BYTE_STREAM_SPLIT page of float32 values.
func (d *Float32Decoder) Reset(data []byte) error {
	if len(data)%4 != 0 {
		return errors.Corrupted("bytestreamsplit: data length %d not a multiple of 4", len(data))
	}
	d.data = data
	d.n = len(data) / 4
	d.pos = 0
	return nil
}

// ReadBatch decodes up to len(out) values.
func (d *Float32Decoder) ReadBatch(out []float32) (int, error) {
	n := len(out)
	if d.pos+n > d.n {
		n = d.n - d.pos
	}
	for i := 0; i < n; i++ {
		idx := d.pos + i
		var b [4]byte
		for plane := 0; plane < 4; plane++ {
			b[plane] = d.data[plane*d.n+idx]
		}
		out[i] = math.Float32frombits(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
	}
	d.pos += n
	return n, nil
}

// Float32Encoder encodes a BYTE_STREAM_SPLIT stream of float32 values.
type Float32Encoder struct {
	values []float32
}

// Reset discards any buffered values.
func (e *Float32Encoder) Reset() { e.values = e.values[:0] }

// PutBatch appends values to the encoder's pending input.
func (e *Float32Encoder) PutBatch(values []float32) {
	e.values = append(e.values, values...)
}

// Flush returns the transposed BYTE_STREAM_SPLIT page and clears the
// encoder's pending input.
func (e *Float32Encoder) Flush() []byte {
	n := len(e.values)
	out := make([]byte, n*4)
	for i, v := range e.values {
		bits := math.Float32bits(v)
		out[0*n+i] = byte(bits)
		out[1*n+i] = byte(bits >> 8)
		out[2*n+i] = byte(bits >> 16)
		out[3*n+i] = byte(bits >> 24)
	}
	e.values = e.values[:0]
	return out
}

// Float64Decoder decodes a BYTE_STREAM_SPLIT stream of float64 values.
type Float64Decoder struct {
	data []byte
	n    int
	pos  int
}

// Reset binds data as a BYTE_STREAM_SPLIT page of float64 values.
func (d *Float64Decoder) Reset(data []byte) error {
	if len(data)%8 != 0 {
		return errors.Corrupted("bytestreamsplit: data length %d not a multiple of 8", len(data))
	}
	d.data = data
	d.n = len(data) / 8
	d.pos = 0
	return nil
}

// ReadBatch decodes up to len(out) values.
func (d *Float64Decoder) ReadBatch(out []float64) (int, error) {
	n := len(out)
	if d.pos+n > d.n {
		n = d.n - d.pos
	}
	for i := 0; i < n; i++ {
		idx := d.pos + i
		var bits uint64
		for plane := 0; plane < 8; plane++ {
			bits |= uint64(d.data[plane*d.n+idx]) << (8 * plane)
		}
		out[i] = math.Float64frombits(bits)
	}
	d.pos += n
	return n, nil
}

// Float64Encoder encodes a BYTE_STREAM_SPLIT stream of float64 values.
type Float64Encoder struct {
	values []float64
}

// Reset discards any buffered values.
func (e *Float64Encoder) Reset() { e.values = e.values[:0] }

// PutBatch appends values to the encoder's pending input.
func (e *Float64Encoder) PutBatch(values []float64) {
	e.values = append(e.values, values...)
}

// Flush returns the transposed BYTE_STREAM_SPLIT page and clears the
// encoder's pending input.
func (e *Float64Encoder) Flush() []byte {
	n := len(e.values)
	out := make([]byte, n*8)
	for i, v := range e.values {
		bits := math.Float64bits(v)
		for plane := 0; plane < 8; plane++ {
			out[plane*n+i] = byte(bits >> (8 * plane))
		}
	}
	e.values = e.values[:0]
	return out
}
