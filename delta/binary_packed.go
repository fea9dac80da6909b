// Package delta implements the DELTA_BINARY_PACKED, DELTA_LENGTH_BYTE_ARRAY,
// and DELTA_BYTE_ARRAY encodings.
package delta

import (
	"github.com/parquet-go/codec/bitstream"
	"github.com/parquet-go/codec/errors"
	ibits "github.com/parquet-go/codec/internal/bits"
)

// BlockValues is the number of values this module's encoder buffers per
// block. The decoder accepts any header-declared block size; only the
// encoder is fixed at this parameterization.
const BlockValues = 256

// MiniblocksPerBlock is the number of miniblocks this module's encoder
// divides each block into.
const MiniblocksPerBlock = 8

// ValuesPerMiniblock is BlockValues / MiniblocksPerBlock.
const ValuesPerMiniblock = BlockValues / MiniblocksPerBlock

// Int32Decoder decodes a DELTA_BINARY_PACKED stream of INT32 values.
// Int32Decoder is not safe for concurrent use.
type Int32Decoder struct {
	r                  bitstream.Reader
	miniblocksPerBlock int
	valuesPerMiniblock int
	totalValues        int
	valuesRead         int

	lastValue    int32
	minDelta     int32
	bitWidths    []byte
	miniblockIdx int
	posInMB      int
	mbValues     []int32

	pendingFirst bool
	firstValue   int32
}

// Reset parses the DELTA_BINARY_PACKED header from data.
func (d *Int32Decoder) Reset(data []byte) error {
	d.r.Reset(data)

	blockValues, ok := d.r.ReadUvarint()
	if !ok {
		return errors.Corrupted("delta: truncated header (block_values)")
	}
	miniblocksPerBlock, ok := d.r.ReadUvarint()
	if !ok {
		return errors.Corrupted("delta: truncated header (miniblocks_per_block)")
	}
	if miniblocksPerBlock == 0 {
		return errors.Corrupted("delta: miniblocks_per_block is zero")
	}
	if blockValues%miniblocksPerBlock != 0 {
		return errors.Corrupted("delta: block_values %d not divisible by miniblocks_per_block %d", blockValues, miniblocksPerBlock)
	}
	totalValues, ok := d.r.ReadUvarint()
	if !ok {
		return errors.Corrupted("delta: truncated header (total_values)")
	}
	firstValue, ok := d.r.ReadZigZagVarint()
	if !ok {
		return errors.Corrupted("delta: truncated header (first_value)")
	}

	d.miniblocksPerBlock = int(miniblocksPerBlock)
	d.valuesPerMiniblock = int(blockValues / miniblocksPerBlock)
	d.totalValues = int(totalValues)
	d.valuesRead = 0
	d.lastValue = int32(firstValue)
	d.bitWidths = make([]byte, d.miniblocksPerBlock)
	d.mbValues = make([]int32, d.valuesPerMiniblock)
	d.miniblockIdx = d.miniblocksPerBlock
	d.posInMB = d.valuesPerMiniblock
	d.pendingFirst = d.totalValues > 0
	d.firstValue = int32(firstValue)
	return nil
}

func (d *Int32Decoder) readBlockHeader() error {
	minDelta, ok := d.r.ReadZigZagVarint()
	if !ok {
		return errors.Corrupted("delta: truncated block header (min_delta)")
	}
	d.minDelta = int32(minDelta)
	for i := range d.bitWidths {
		bw, ok := d.r.ReadAligned(1)
		if !ok {
			return errors.Corrupted("delta: truncated block header (bit widths)")
		}
		if bw > 32 {
			return errors.Corrupted("delta: illegal miniblock bit width %d", bw)
		}
		d.bitWidths[i] = byte(bw)
	}
	d.miniblockIdx = 0
	return d.readMiniblock()
}

func (d *Int32Decoder) readMiniblock() error {
	bw := uint(d.bitWidths[d.miniblockIdx])
	for i := range d.mbValues {
		v, ok := d.r.ReadValue(bw)
		if !ok {
			return errors.Corrupted("delta: truncated miniblock data")
		}
		d.mbValues[i] = int32(v)
	}
	d.posInMB = 0
	return nil
}

// ReadBatch decodes up to len(out) values.
func (d *Int32Decoder) ReadBatch(out []int32) (int, error) {
	n := 0
	for n < len(out) && d.valuesRead < d.totalValues {
		if d.pendingFirst {
			out[n] = d.firstValue
			d.pendingFirst = false
			d.valuesRead++
			n++
			continue
		}
		if d.posInMB >= d.valuesPerMiniblock {
			d.miniblockIdx++
			if d.miniblockIdx >= d.miniblocksPerBlock {
				if err := d.readBlockHeader(); err != nil {
					return n, err
				}
			} else if err := d.readMiniblock(); err != nil {
				return n, err
			}
		}
		delta := uint32(d.mbValues[d.posInMB]) + uint32(d.minDelta)
		d.lastValue = int32(uint32(d.lastValue) + delta)
		out[n] = d.lastValue
		d.posInMB++
		d.valuesRead++
		n++
	}
	return n, nil
}

// Int32Encoder encodes a DELTA_BINARY_PACKED stream of INT32 values using
// the fixed block=256, miniblocks=8 parameterization. Int32Encoder is not
// safe for concurrent use.
type Int32Encoder struct {
	pending    []int32
	firstValue int32
	haveFirst  bool
	lastValue  int32
	w          bitstream.Writer
}

// Reset discards any buffered values.
func (e *Int32Encoder) Reset() {
	e.pending = e.pending[:0]
	e.haveFirst = false
	e.w.Reset(nil)
}

// PutBatch appends values to the encoder's pending input.
func (e *Int32Encoder) PutBatch(values []int32) {
	e.pending = append(e.pending, values...)
}

// Flush writes the header and all complete and partial blocks accumulated
// so far, returning the encoded bytes. The encoder is cleared after Flush.
func (e *Int32Encoder) Flush() []byte {
	e.w.Reset(nil)

	total := len(e.pending)
	if !e.haveFirst && total > 0 {
		e.firstValue = e.pending[0]
		e.lastValue = e.firstValue
		e.haveFirst = true
		e.pending = e.pending[1:]
		total--
	}

	e.w.WriteUvarint(BlockValues)
	e.w.WriteUvarint(MiniblocksPerBlock)
	e.w.WriteUvarint(uint64(total + boolToInt(e.haveFirst)))
	e.w.WriteZigZagVarint(int64(e.firstValue))

	for i := 0; i < len(e.pending); i += BlockValues {
		end := i + BlockValues
		if end > len(e.pending) {
			end = len(e.pending)
		}
		e.flushBlock(e.pending[i:end])
	}

	e.w.Flush()
	out := append([]byte(nil), e.w.Bytes()...)
	e.pending = e.pending[:0]
	e.haveFirst = false
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (e *Int32Encoder) flushBlock(block []int32) {
	deltas := make([]uint32, len(block))
	prev := e.lastValue
	for i, v := range block {
		deltas[i] = uint32(v) - uint32(prev)
		prev = v
	}
	e.lastValue = prev

	signedDeltas := make([]int32, len(deltas))
	for i, d := range deltas {
		signedDeltas[i] = int32(d)
	}
	minDelta := ibits.MinInt32(signedDeltas)
	shifted := make([]uint32, len(deltas))
	for i, d := range deltas {
		shifted[i] = d - uint32(minDelta)
	}

	e.w.WriteZigZagVarint(int64(minDelta))

	bitWidths := make([]byte, MiniblocksPerBlock)
	for mb := 0; mb < MiniblocksPerBlock; mb++ {
		start := mb * ValuesPerMiniblock
		if start >= len(shifted) {
			break
		}
		end := start + ValuesPerMiniblock
		if end > len(shifted) {
			end = len(shifted)
		}
		var max uint32
		for _, v := range shifted[start:end] {
			if v > max {
				max = v
			}
		}
		bitWidths[mb] = byte(ibits.Len32(int32(max)))
	}
	for _, bw := range bitWidths {
		e.w.WriteAligned(uint64(bw), 1)
	}
	for mb := 0; mb < MiniblocksPerBlock; mb++ {
		start := mb * ValuesPerMiniblock
		if start >= len(shifted) {
			break
		}
		end := start + ValuesPerMiniblock
		if end > len(shifted) {
			end = len(shifted)
		}
		bw := uint(bitWidths[mb])
		for i := start; i < end; i++ {
			e.w.WriteValue(uint64(shifted[i]), bw)
		}
		for i := end; i < start+ValuesPerMiniblock; i++ {
			e.w.WriteValue(0, bw)
		}
	}
}
