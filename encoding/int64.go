package encoding

import (
	"github.com/parquet-go/codec/delta"
	"github.com/parquet-go/codec/dict"
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/format"
	"github.com/parquet-go/codec/plain"
)

// Int64Decoder decodes a page of int64 values under whichever encoding it
// was constructed for. Int64Decoder is not safe for concurrent use.
type Int64Decoder struct {
	encoding format.Encoding
	plainBuf []byte
	plainPos int
	dictDec  dict.Decoder[int64]
	deltaDec delta.Int64Decoder
}

// NewInt64Decoder returns a decoder for encoding, or a *errors.NotSupportedError
// if encoding has no INT64 decoder in this module.
func NewInt64Decoder(encoding format.Encoding) (*Int64Decoder, error) {
	switch canonicalDictionaryEncoding(encoding) {
	case format.Plain, format.RLEDictionary, format.DeltaBinaryPacked:
		return &Int64Decoder{encoding: canonicalDictionaryEncoding(encoding)}, nil
	default:
		return nil, unsupported(format.Int64, encoding, "")
	}
}

// ResetDict binds the dictionary used to resolve indices when the decoder
// was constructed for RLE_DICTIONARY. It is a no-op for any other encoding.
func (d *Int64Decoder) ResetDict(dictionary []int64) {
	if d.encoding == format.RLEDictionary {
		d.dictDec.ResetDict(dictionary)
	}
}

// Reset binds data as a page encoded under the decoder's encoding.
func (d *Int64Decoder) Reset(data []byte) error {
	switch d.encoding {
	case format.Plain:
		d.plainBuf = data
		d.plainPos = 0
		return nil
	case format.RLEDictionary:
		return d.dictDec.Reset(data)
	case format.DeltaBinaryPacked:
		return d.deltaDec.Reset(data)
	}
	return errors.NotSupported(format.Int64, d.encoding, "")
}

// ReadBatch decodes up to len(out) values.
func (d *Int64Decoder) ReadBatch(out []int64) (int, error) {
	switch d.encoding {
	case format.Plain:
		n := plain.DecodeFixedWidth(out, d.plainBuf[d.plainPos*8:])
		d.plainPos += n
		return n, nil
	case format.RLEDictionary:
		return d.dictDec.ReadBatch(out, len(out))
	case format.DeltaBinaryPacked:
		return d.deltaDec.ReadBatch(out)
	}
	return 0, errors.NotSupported(format.Int64, d.encoding, "")
}

// Int64Encoder encodes a page of int64 values under whichever encoding it
// was constructed for. Int64Encoder is not safe for concurrent use.
type Int64Encoder struct {
	encoding format.Encoding
	plainBuf []byte
	dictEnc  dict.AdaptiveEncoder[int64]
	deltaEnc delta.Int64Encoder
}

// NewInt64Encoder returns an encoder for encoding, or a *errors.NotSupportedError
// if encoding has no INT64 encoder in this module.
func NewInt64Encoder(encoding format.Encoding) (*Int64Encoder, error) {
	switch encoding {
	case format.Plain, format.RLEDictionary, format.DeltaBinaryPacked:
		e := &Int64Encoder{encoding: encoding}
		e.Reset()
		return e, nil
	default:
		return nil, unsupported(format.Int64, encoding, "")
	}
}

// Reset discards any buffered values.
func (e *Int64Encoder) Reset() {
	switch e.encoding {
	case format.Plain:
		e.plainBuf = e.plainBuf[:0]
	case format.RLEDictionary:
		e.dictEnc.Reset()
	case format.DeltaBinaryPacked:
		e.deltaEnc.Reset()
	}
}

// PutBatch appends values to the encoder's pending input.
func (e *Int64Encoder) PutBatch(values []int64) {
	switch e.encoding {
	case format.Plain:
		e.plainBuf = plain.EncodeFixedWidth(e.plainBuf, values)
	case format.RLEDictionary:
		e.dictEnc.PutBatch(values)
	case format.DeltaBinaryPacked:
		e.deltaEnc.PutBatch(values)
	}
}

// Flush emits the encoded page, clears the encoder's pending input, and
// reports the encoding actually realized.
func (e *Int64Encoder) Flush() (page []byte, realized format.Encoding, err error) {
	switch e.encoding {
	case format.Plain:
		page = append([]byte(nil), e.plainBuf...)
		e.plainBuf = e.plainBuf[:0]
		return page, format.Plain, nil
	case format.RLEDictionary:
		page, fellBack := e.dictEnc.Flush()
		if fellBack {
			return page, format.Plain, nil
		}
		return page, format.RLEDictionary, nil
	case format.DeltaBinaryPacked:
		return e.deltaEnc.Flush(), format.DeltaBinaryPacked, nil
	}
	return nil, e.encoding, errors.NotSupported(format.Int64, e.encoding, "")
}

// ViewDict returns the PLAIN-encoded dictionary page for the values seen so
// far. It is only meaningful when the encoder was constructed for
// RLE_DICTIONARY.
func (e *Int64Encoder) ViewDict() []byte { return e.dictEnc.ViewDict() }
