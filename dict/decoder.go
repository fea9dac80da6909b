package dict

import (
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/rle"
)

// Decoder resolves RLE-hybrid indices against a borrowed dictionary. The
// dictionary's owner must keep it alive for as long as the Decoder is used.
// Decoder is not safe for concurrent use.
type Decoder[T any] struct {
	dict  []T
	idx   rle.Decoder
	empty bool
}

// ResetDict binds the dictionary the decoder resolves indices against.
func (d *Decoder[T]) ResetDict(dict []T) {
	d.dict = dict
}

// Reset binds data as an index page: a 1-byte index bit width (0-32)
// followed by an RLE-hybrid stream of indices. An empty page produces zero
// values and consumes zero bytes.
func (d *Decoder[T]) Reset(data []byte) error {
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

// ReadBatch resolves up to n indices into out, returning the count written.
func (d *Decoder[T]) ReadBatch(out []T, n int) (int, error) {
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
