package delta

import (
	"github.com/parquet-go/codec/bitstream"
	"github.com/parquet-go/codec/errors"
	ibits "github.com/parquet-go/codec/internal/bits"
)

// Int64Decoder decodes a DELTA_BINARY_PACKED stream of INT64 values.
// Int64Decoder is not safe for concurrent use.
type Int64Decoder struct {
	r                  bitstream.Reader
	miniblocksPerBlock int
	valuesPerMiniblock int
	totalValues        int
	valuesRead         int

	lastValue    int64
	minDelta     int64
	bitWidths    []byte
	miniblockIdx int
	posInMB      int
	mbValues     []int64

	pendingFirst bool
	firstValue   int64
}

// Reset parses the DELTA_BINARY_PACKED header from data.
func (d *Int64Decoder) Reset(data []byte) error {
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
	d.lastValue = firstValue
	d.bitWidths = make([]byte, d.miniblocksPerBlock)
	d.mbValues = make([]int64, d.valuesPerMiniblock)
	d.miniblockIdx = d.miniblocksPerBlock
	d.posInMB = d.valuesPerMiniblock
	d.pendingFirst = d.totalValues > 0
	d.firstValue = firstValue
	return nil
}

func (d *Int64Decoder) readBlockHeader() error {
	minDelta, ok := d.r.ReadZigZagVarint()
	if !ok {
		return errors.Corrupted("delta: truncated block header (min_delta)")
	}
	d.minDelta = minDelta
	for i := range d.bitWidths {
		bw, ok := d.r.ReadAligned(1)
		if !ok {
			return errors.Corrupted("delta: truncated block header (bit widths)")
		}
		if bw > 64 {
			return errors.Corrupted("delta: illegal miniblock bit width %d", bw)
		}
		d.bitWidths[i] = byte(bw)
	}
	d.miniblockIdx = 0
	return d.readMiniblock()
}

func (d *Int64Decoder) readMiniblock() error {
	bw := uint(d.bitWidths[d.miniblockIdx])
	for i := range d.mbValues {
		v, ok := d.r.ReadValue(bw)
		if !ok {
			return errors.Corrupted("delta: truncated miniblock data")
		}
		d.mbValues[i] = int64(v)
	}
	d.posInMB = 0
	return nil
}

// ReadBatch decodes up to len(out) values.
func (d *Int64Decoder) ReadBatch(out []int64) (int, error) {
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
		delta := uint64(d.mbValues[d.posInMB]) + uint64(d.minDelta)
		d.lastValue = int64(uint64(d.lastValue) + delta)
		out[n] = d.lastValue
		d.posInMB++
		d.valuesRead++
		n++
	}
	return n, nil
}

// Int64Encoder encodes a DELTA_BINARY_PACKED stream of INT64 values using
// the fixed block=256, miniblocks=8 parameterization. Int64Encoder is not
// safe for concurrent use.
type Int64Encoder struct {
	pending    []int64
	firstValue int64
	haveFirst  bool
	lastValue  int64
	w          bitstream.Writer
}

// Reset discards any buffered values.
func (e *Int64Encoder) Reset() {
	e.pending = e.pending[:0]
	e.haveFirst = false
	e.w.Reset(nil)
}

// PutBatch appends values to the encoder's pending input.
func (e *Int64Encoder) PutBatch(values []int64) {
	e.pending = append(e.pending, values...)
}

// Flush writes the header and all blocks accumulated so far, returning the
// encoded bytes. The encoder is cleared after Flush.
func (e *Int64Encoder) Flush() []byte {
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
	e.w.WriteZigZagVarint(e.firstValue)

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

func (e *Int64Encoder) flushBlock(block []int64) {
	deltas := make([]uint64, len(block))
	prev := e.lastValue
	for i, v := range block {
		deltas[i] = uint64(v) - uint64(prev)
		prev = v
	}
	e.lastValue = prev

	signedDeltas := make([]int64, len(deltas))
	for i, d := range deltas {
		signedDeltas[i] = int64(d)
	}
	minDelta := ibits.MinInt64(signedDeltas)
	shifted := make([]uint64, len(deltas))
	for i, d := range deltas {
		shifted[i] = d - uint64(minDelta)
	}

	e.w.WriteZigZagVarint(minDelta)

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
		var max uint64
		for _, v := range shifted[start:end] {
			if v > max {
				max = v
			}
		}
		bitWidths[mb] = byte(ibits.Len64(int64(max)))
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
			e.w.WriteValue(shifted[i], bw)
		}
		for i := end; i < start+ValuesPerMiniblock; i++ {
			e.w.WriteValue(0, bw)
		}
	}
}
