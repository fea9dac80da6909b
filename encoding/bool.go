package encoding

import (
	"github.com/parquet-go/codec/bitstream"
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/format"
	"github.com/parquet-go/codec/rle"
)

// BooleanDecoder decodes a page of boolean values (one byte per value at
// this API, 0 or 1) under whichever encoding it was constructed for.
// BooleanDecoder is not safe for concurrent use.
type BooleanDecoder struct {
	encoding format.Encoding
	plainR   bitstream.Reader
	rleDec   rle.Decoder
}

// NewBooleanDecoder returns a decoder for encoding, or a
// *errors.NotSupportedError if encoding has no BOOLEAN decoder in this
// module.
func NewBooleanDecoder(encoding format.Encoding) (*BooleanDecoder, error) {
	switch encoding {
	case format.Plain, format.RLE:
		return &BooleanDecoder{encoding: encoding}, nil
	default:
		return nil, unsupported(format.Boolean, encoding, "")
	}
}

// Reset binds data as a page encoded under the decoder's encoding.
func (d *BooleanDecoder) Reset(data []byte) error {
	switch d.encoding {
	case format.Plain:
		d.plainR.Reset(data)
		return nil
	case format.RLE:
		d.rleDec.Reset(data, 1)
		return nil
	}
	return errors.NotSupported(format.Boolean, d.encoding, "")
}

// ReadBatch decodes up to len(out) values.
func (d *BooleanDecoder) ReadBatch(out []byte) (int, error) {
	switch d.encoding {
	case format.Plain:
		n := 0
		for n < len(out) {
			v, ok := d.plainR.ReadValue(1)
			if !ok {
				break
			}
			out[n] = byte(v)
			n++
		}
		return n, nil
	case format.RLE:
		buf := make([]uint64, len(out))
		n, err := d.rleDec.Decode(buf)
		if err != nil {
			return 0, err
		}
		for i := 0; i < n; i++ {
			out[i] = byte(buf[i])
		}
		return n, nil
	}
	return 0, errors.NotSupported(format.Boolean, d.encoding, "")
}

// BooleanEncoder encodes a page of boolean values under whichever encoding
// it was constructed for. BooleanEncoder is not safe for concurrent use.
type BooleanEncoder struct {
	encoding format.Encoding
	plainW   bitstream.Writer
	rleEnc   rle.Encoder
}

// NewBooleanEncoder returns an encoder for encoding, or a
// *errors.NotSupportedError if encoding has no BOOLEAN encoder in this
// module.
func NewBooleanEncoder(encoding format.Encoding) (*BooleanEncoder, error) {
	switch encoding {
	case format.Plain, format.RLE:
		e := &BooleanEncoder{encoding: encoding}
		e.Reset()
		return e, nil
	default:
		return nil, unsupported(format.Boolean, encoding, "")
	}
}

// Reset discards any buffered values.
func (e *BooleanEncoder) Reset() {
	switch e.encoding {
	case format.Plain:
		e.plainW.Reset(nil)
	case format.RLE:
		e.rleEnc.Reset(1)
	}
}

// PutBatch appends values (nonzero treated as true) to the encoder's
// pending input.
func (e *BooleanEncoder) PutBatch(values []byte) {
	switch e.encoding {
	case format.Plain:
		for _, v := range values {
			b := uint64(0)
			if v != 0 {
				b = 1
			}
			e.plainW.WriteValue(b, 1)
		}
	case format.RLE:
		for _, v := range values {
			b := uint64(0)
			if v != 0 {
				b = 1
			}
			e.rleEnc.Put(b)
		}
	}
}

// Flush emits the encoded page and clears the encoder's pending input.
func (e *BooleanEncoder) Flush() ([]byte, error) {
	switch e.encoding {
	case format.Plain:
		e.plainW.Flush()
		page := append([]byte(nil), e.plainW.Bytes()...)
		e.plainW.Reset(nil)
		return page, nil
	case format.RLE:
		var w bitstream.Writer
		w.Reset(nil)
		e.rleEnc.Flush(&w)
		w.Flush()
		return append([]byte(nil), w.Bytes()...), nil
	}
	return nil, errors.NotSupported(format.Boolean, e.encoding, "")
}
