// Package bitpack implements efficient bit packing and unpacking routines for
// integers of various bit widths, used by the rle package's bit-packed
// groups for LSB-first bit arithmetic.
package bitpack

// PaddingInt32 is the number of extra bytes callers append to a destination
// buffer passed to PackInt32. PackInt32 itself writes only the
// ceil(len(src)*bitWidth/8) bytes of the packed region and never touches the
// padding.
const PaddingInt32 = 4

// PaddingInt64 is the PaddingInt32 equivalent for PackInt64/UnpackInt64.
const PaddingInt64 = 8

func byteCount(bitCount uint) uint {
	return (bitCount + 7) / 8
}

// PackInt32 packs the low bitWidth bits of each value in src into dst,
// LSB-first, writing ceil(len(src)*bitWidth/8) bytes.
func PackInt32(dst []byte, src []int32, bitWidth uint) {
	if bitWidth == 0 {
		return
	}
	mask := uint64(1)<<bitWidth - 1
	var bitBuf uint64
	var bitCnt uint
	o := 0
	for _, v := range src {
		bitBuf |= (uint64(uint32(v)) & mask) << bitCnt
		bitCnt += bitWidth
		for bitCnt >= 8 {
			dst[o] = byte(bitBuf)
			o++
			bitBuf >>= 8
			bitCnt -= 8
		}
	}
	if bitCnt > 0 {
		dst[o] = byte(bitBuf)
	}
}

// UnpackInt32 unpacks bitWidth-wide LSB-first values from src into dst.
func UnpackInt32(dst []int32, src []byte, bitWidth uint) {
	if bitWidth == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	mask := uint64(1)<<bitWidth - 1
	var bitBuf uint64
	var bitCnt uint
	i := 0
	for n := range dst {
		for bitCnt < bitWidth && i < len(src) {
			bitBuf |= uint64(src[i]) << bitCnt
			bitCnt += 8
			i++
		}
		dst[n] = int32(bitBuf & mask)
		bitBuf >>= bitWidth
		bitCnt -= bitWidth
	}
}

// PackInt64 is the 64-bit equivalent of PackInt32. Bit widths above 57 use a
// bit-at-a-time fallback because the 64-bit staging buffer used by the fast
// path can't absorb a full byte of carry once the width exceeds it.
func PackInt64(dst []byte, src []int64, bitWidth uint) {
	if bitWidth == 0 {
		return
	}
	if bitWidth <= 57 {
		mask := uint64(1)<<bitWidth - 1
		var bitBuf uint64
		var bitCnt uint
		o := 0
		for _, v := range src {
			bitBuf |= (uint64(v) & mask) << bitCnt
			bitCnt += bitWidth
			for bitCnt >= 8 {
				dst[o] = byte(bitBuf)
				o++
				bitBuf >>= 8
				bitCnt -= 8
			}
		}
		if bitCnt > 0 {
			dst[o] = byte(bitBuf)
		}
		return
	}
	var mask uint64 = ^uint64(0)
	if bitWidth < 64 {
		mask = 1<<bitWidth - 1
	}
	bitPos := uint(0)
	for _, v := range src {
		writeBitsInt64(dst, bitPos, uint64(v)&mask, bitWidth)
		bitPos += bitWidth
	}
}

func writeBitsInt64(dst []byte, bitPos uint, value uint64, bitWidth uint) {
	remaining := bitWidth
	for remaining > 0 {
		byteIndex := bitPos / 8
		bitOffset := bitPos % 8
		space := 8 - bitOffset
		n := remaining
		if n > space {
			n = space
		}
		chunk := byte(value) & byte(1<<n-1)
		dst[byteIndex] |= chunk << bitOffset
		value >>= n
		remaining -= n
		bitPos += n
	}
}

func readBitsInt64(src []byte, bitPos uint, bitWidth uint) uint64 {
	var value uint64
	var got uint
	remaining := bitWidth
	for remaining > 0 {
		byteIndex := bitPos / 8
		bitOffset := bitPos % 8
		space := 8 - bitOffset
		n := remaining
		if n > space {
			n = space
		}
		chunk := (src[byteIndex] >> bitOffset) & byte(1<<n-1)
		value |= uint64(chunk) << got
		got += n
		remaining -= n
		bitPos += n
	}
	return value
}

// UnpackInt64 is the 64-bit equivalent of UnpackInt32.
func UnpackInt64(dst []int64, src []byte, bitWidth uint) {
	if bitWidth == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	if bitWidth <= 57 {
		mask := uint64(1)<<bitWidth - 1
		var bitBuf uint64
		var bitCnt uint
		i := 0
		for n := range dst {
			for bitCnt < bitWidth && i < len(src) {
				bitBuf |= uint64(src[i]) << bitCnt
				bitCnt += 8
				i++
			}
			dst[n] = int64(bitBuf & mask)
			bitBuf >>= bitWidth
			bitCnt -= bitWidth
		}
		return
	}
	bitPos := uint(0)
	for n := range dst {
		dst[n] = int64(readBitsInt64(src, bitPos, bitWidth))
		bitPos += bitWidth
	}
}
