package encoding

import (
	"github.com/parquet-go/codec/delta"
	"github.com/parquet-go/codec/dict"
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/format"
	"github.com/parquet-go/codec/plain"
)

// Int32Decoder decodes a page of int32 values under whichever encoding it
// was constructed for. Int32Decoder is not safe for concurrent use.
type Int32Decoder struct {
	encoding format.Encoding
	plainBuf []byte
	plainPos int
	dictDec  dict.Decoder[int32]
	deltaDec delta.Int32Decoder
}

// NewInt32Decoder returns a decoder for encoding, or a *errors.NotSupportedError
// if encoding has no INT32 decoder in this module.
func NewInt32Decoder(encoding format.Encoding) (*Int32Decoder, error) {
	switch canonicalDictionaryEncoding(encoding) {
	case format.Plain, format.RLEDictionary, format.DeltaBinaryPacked:
		return &Int32Decoder{encoding: canonicalDictionaryEncoding(encoding)}, nil
	default:
		return nil, unsupported(format.Int32, encoding, "")
	}
}

// ResetDict binds the dictionary used to resolve indices when the decoder
// was constructed for RLE_DICTIONARY. It is a no-op for any other encoding.
func (d *Int32Decoder) ResetDict(dictionary []int32) {
	if d.encoding == format.RLEDictionary {
		d.dictDec.ResetDict(dictionary)
	}
}

// Reset binds data as a page encoded under the decoder's encoding.
func (d *Int32Decoder) Reset(data []byte) error {
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
	return errors.NotSupported(format.Int32, d.encoding, "")
}

// ReadBatch decodes up to len(out) values.
func (d *Int32Decoder) ReadBatch(out []int32) (int, error) {
	switch d.encoding {
	case format.Plain:
		n := plain.DecodeFixedWidth(out, d.plainBuf[d.plainPos*4:])
		d.plainPos += n
		return n, nil
	case format.RLEDictionary:
		return d.dictDec.ReadBatch(out, len(out))
	case format.DeltaBinaryPacked:
		return d.deltaDec.ReadBatch(out)
	}
	return 0, errors.NotSupported(format.Int32, d.encoding, "")
}

// Int32Encoder encodes a page of int32 values under whichever encoding it
// was constructed for. Int32Encoder is not safe for concurrent use.
type Int32Encoder struct {
	encoding format.Encoding
	plainBuf []byte
	dictEnc  dict.AdaptiveEncoder[int32]
	deltaEnc delta.Int32Encoder
}

// NewInt32Encoder returns an encoder for encoding, or a *errors.NotSupportedError
// if encoding has no INT32 encoder in this module. PLAIN_DICTIONARY is
// rejected here (encode-side, use RLE_DICTIONARY) since it is a read-only
// legacy alias.
func NewInt32Encoder(encoding format.Encoding) (*Int32Encoder, error) {
	switch encoding {
	case format.Plain, format.RLEDictionary, format.DeltaBinaryPacked:
		e := &Int32Encoder{encoding: encoding}
		e.Reset()
		return e, nil
	default:
		return nil, unsupported(format.Int32, encoding, "")
	}
}

// Reset discards any buffered values.
func (e *Int32Encoder) Reset() {
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
func (e *Int32Encoder) PutBatch(values []int32) {
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
// reports the encoding actually realized (PLAIN, after an adaptive
// dictionary fallback, differs from the encoding the encoder was
// constructed for).
func (e *Int32Encoder) Flush() (page []byte, realized format.Encoding, err error) {
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
	return nil, e.encoding, errors.NotSupported(format.Int32, e.encoding, "")
}

// ViewDict returns the PLAIN-encoded dictionary page for the values seen so
// far. It is only meaningful when the encoder was constructed for
// RLE_DICTIONARY.
func (e *Int32Encoder) ViewDict() []byte { return e.dictEnc.ViewDict() }
