// Package rle implements the Parquet RLE/bit-packed hybrid encoding: a
// single logical stream of alternating run-length groups and bit-packed
// groups, each introduced by a VLQ group header.
package rle

func byteCount(bitCount uint) int {
	return int((bitCount + 7) / 8)
}

// MinBufferSize returns the smallest buffer size that can hold a single
// group (RLE or bit-packed) encoded at bitWidth, i.e. the minimum a caller
// must reserve even for a single value.
func MinBufferSize(bitWidth uint) int {
	rleGroup := 1 + byteCount(bitWidth)
	bitPackedGroup := 1 + byteCount(8*bitWidth)
	if rleGroup > bitPackedGroup {
		return rleGroup
	}
	return bitPackedGroup
}

// MaxBufferSize returns an upper bound on the number of bytes needed to
// encode n values at bitWidth, assuming the worst case where no run-length
// compression is possible and every group of 8 values is emitted as its own
// bit-packed group.
func MaxBufferSize(bitWidth uint, n int) int {
	groups := (n + 7) / 8
	if groups == 0 {
		groups = 1
	}
	return groups * (1 + byteCount(8*bitWidth))
}
