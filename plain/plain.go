// Package plain implements the PLAIN encoding for every physical type:
// little-endian fixed-width values, bit-packed booleans, length-prefixed
// byte arrays, and raw fixed-length byte arrays.
package plain

import (
	"github.com/parquet-go/codec/bitstream"
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/internal/unsafecast"
)

// DecodeFixedWidth reinterprets src as a little-endian array of T and copies
// up to len(dst) elements into dst, returning the count copied. This backs
// INT32, INT64, FLOAT, and DOUBLE (and, via the deprecated package, INT96).
func DecodeFixedWidth[T any](dst []T, src []byte) int {
	values := unsafecast.Slice[T](src)
	n := len(dst)
	if n > len(values) {
		n = len(values)
	}
	copy(dst[:n], values[:n])
	return n
}

// EncodeFixedWidth appends the little-endian bytes of src to dst.
func EncodeFixedWidth[T any](dst []byte, src []T) []byte {
	return append(dst, unsafecast.Slice[byte](src)...)
}

// DecodeBoolean unpacks one LSB-first bit per output byte (0 or 1) from src.
func DecodeBoolean(dst []byte, src []byte) int {
	var r bitstream.Reader
	r.Reset(src)
	n := 0
	for n < len(dst) {
		v, ok := r.ReadValue(1)
		if !ok {
			break
		}
		dst[n] = byte(v)
		n++
	}
	return n
}

// EncodeBoolean packs one LSB-first bit per input byte (nonzero treated as
// true) and appends the result to dst.
func EncodeBoolean(dst []byte, src []byte) []byte {
	var w bitstream.Writer
	w.Reset(nil)
	for _, v := range src {
		b := uint64(0)
		if v != 0 {
			b = 1
		}
		w.WriteValue(b, 1)
	}
	w.Flush()
	return append(dst, w.Bytes()...)
}

// ByteArrayDecoder decodes the PLAIN BYTE_ARRAY layout: a 4-byte
// little-endian length followed by that many bytes, repeated per value.
// Decoded values are subranges of an owned copy of the page so they outlive
// the caller's original buffer. ByteArrayDecoder is not safe for concurrent
// use.
type ByteArrayDecoder struct {
	data []byte
	off  int
}

// Reset copies data into owned storage and positions the decoder at the
// first element.
func (d *ByteArrayDecoder) Reset(data []byte) {
	d.data = append(d.data[:0], data...)
	d.off = 0
}

// ReadBatch writes up to n values into out, returning the count actually
// written. A short count with a nil error is end-of-stream.
func (d *ByteArrayDecoder) ReadBatch(out [][]byte, n int) (int, error) {
	if n > len(out) {
		n = len(out)
	}
	i := 0
	for ; i < n; i++ {
		if d.off+4 > len(d.data) {
			return i, nil
		}
		length := int(uint32(d.data[d.off]) | uint32(d.data[d.off+1])<<8 |
			uint32(d.data[d.off+2])<<16 | uint32(d.data[d.off+3])<<24)
		d.off += 4
		if length < 0 || d.off+length > len(d.data) {
			return i, errors.Corrupted("plain: byte array length %d exceeds remaining page", length)
		}
		out[i] = d.data[d.off : d.off+length]
		d.off += length
	}
	return i, nil
}

// ByteArrayEncoder accumulates PLAIN-encoded BYTE_ARRAY output.
type ByteArrayEncoder struct {
	buf []byte
}

// Reset discards any buffered output.
func (e *ByteArrayEncoder) Reset() { e.buf = e.buf[:0] }

// PutBatch appends each value in values as u32_le(len) ++ bytes.
func (e *ByteArrayEncoder) PutBatch(values [][]byte) {
	for _, v := range values {
		n := uint32(len(v))
		e.buf = append(e.buf, byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
		e.buf = append(e.buf, v...)
	}
}

// Bytes returns the accumulated PLAIN byte array page.
func (e *ByteArrayEncoder) Bytes() []byte { return e.buf }

// DecodeFixedLenByteArray slices src into n elements of fixedLen bytes each,
// returning shared subranges of an owned copy of src.
func DecodeFixedLenByteArray(src []byte, fixedLen int, n int) ([][]byte, error) {
	owned := append([]byte(nil), src...)
	avail := len(owned) / fixedLen
	if n > avail {
		n = avail
	}
	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		out[i] = owned[i*fixedLen : (i+1)*fixedLen]
	}
	return out, nil
}

// EncodeFixedLenByteArray appends each value (which must be fixedLen bytes)
// to dst in order.
func EncodeFixedLenByteArray(dst []byte, values [][]byte, fixedLen int) ([]byte, error) {
	for i, v := range values {
		if len(v) != fixedLen {
			return dst, errors.Corrupted("plain: fixed-length byte array value %d has length %d, want %d", i, len(v), fixedLen)
		}
		dst = append(dst, v...)
	}
	return dst, nil
}
