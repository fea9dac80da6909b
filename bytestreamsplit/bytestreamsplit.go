// Package bytestreamsplit implements the BYTE_STREAM_SPLIT encoding: values
// of a fixed byte width are transposed into N parallel streams, one per byte
// position, which tends to compress better than the interleaved PLAIN
// layout for floating-point columns.
package bytestreamsplit

import "github.com/parquet-go/codec/errors"

// Decode reverses the transpose: data holds width parallel planes of
// n = len(data)/width bytes each; dst receives n values of width bytes,
// interleaved back into their natural byte order.
func Decode(dst, data []byte, width int) error {
	if width <= 0 {
		return errors.Corrupted("bytestreamsplit: illegal width %d", width)
	}
	if len(data)%width != 0 {
		return errors.Corrupted("bytestreamsplit: data length %d not a multiple of width %d", len(data), width)
	}
	n := len(data) / width
	if len(dst) < n*width {
		return errors.Corrupted("bytestreamsplit: destination too small for %d values", n)
	}
	for plane := 0; plane < width; plane++ {
		base := plane * n
		for i := 0; i < n; i++ {
			dst[i*width+plane] = data[base+i]
		}
	}
	return nil
}

// Encode transposes n values of width bytes each (interleaved in src) into
// width parallel planes written to dst.
func Encode(dst, src []byte, width int) {
	n := len(src) / width
	for plane := 0; plane < width; plane++ {
		base := plane * n
		for i := 0; i < n; i++ {
			dst[base+i] = src[i*width+plane]
		}
	}
}

// MaxEncodedSize returns numValues*width; the encoding maps bytes one to one.
func MaxEncodedSize(numValues, width int) int {
	return numValues * width
}
