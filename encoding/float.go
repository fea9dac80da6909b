package encoding

import (
	"github.com/parquet-go/codec/bytestreamsplit"
	"github.com/parquet-go/codec/dict"
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/format"
	"github.com/parquet-go/codec/plain"
)

// Float32Decoder decodes a page of float32 values under whichever encoding
// it was constructed for. Float32Decoder is not safe for concurrent use.
type Float32Decoder struct {
	encoding format.Encoding
	plainBuf []byte
	plainPos int
	dictDec  dict.Decoder[float32]
	bssDec   bytestreamsplit.Float32Decoder
}

// NewFloat32Decoder returns a decoder for encoding, or a
// *errors.NotSupportedError if encoding has no FLOAT decoder in this module.
func NewFloat32Decoder(encoding format.Encoding) (*Float32Decoder, error) {
	switch canonicalDictionaryEncoding(encoding) {
	case format.Plain, format.RLEDictionary, format.ByteStreamSplit:
		return &Float32Decoder{encoding: canonicalDictionaryEncoding(encoding)}, nil
	default:
		return nil, unsupported(format.Float, encoding, "")
	}
}

// ResetDict binds the dictionary used to resolve indices when the decoder
// was constructed for RLE_DICTIONARY. It is a no-op for any other encoding.
func (d *Float32Decoder) ResetDict(dictionary []float32) {
	if d.encoding == format.RLEDictionary {
		d.dictDec.ResetDict(dictionary)
	}
}

// Reset binds data as a page encoded under the decoder's encoding.
func (d *Float32Decoder) Reset(data []byte) error {
	switch d.encoding {
	case format.Plain:
		d.plainBuf = data
		d.plainPos = 0
		return nil
	case format.RLEDictionary:
		return d.dictDec.Reset(data)
	case format.ByteStreamSplit:
		return d.bssDec.Reset(data)
	}
	return errors.NotSupported(format.Float, d.encoding, "")
}

// ReadBatch decodes up to len(out) values.
func (d *Float32Decoder) ReadBatch(out []float32) (int, error) {
	switch d.encoding {
	case format.Plain:
		n := plain.DecodeFixedWidth(out, d.plainBuf[d.plainPos*4:])
		d.plainPos += n
		return n, nil
	case format.RLEDictionary:
		return d.dictDec.ReadBatch(out, len(out))
	case format.ByteStreamSplit:
		return d.bssDec.ReadBatch(out)
	}
	return 0, errors.NotSupported(format.Float, d.encoding, "")
}

// Float32Encoder encodes a page of float32 values under whichever encoding
// it was constructed for. Float32Encoder is not safe for concurrent use.
type Float32Encoder struct {
	encoding format.Encoding
	plainBuf []byte
	dictEnc  dict.AdaptiveEncoder[float32]
	bssEnc   bytestreamsplit.Float32Encoder
}

// NewFloat32Encoder returns an encoder for encoding, or a
// *errors.NotSupportedError if encoding has no FLOAT encoder in this module.
func NewFloat32Encoder(encoding format.Encoding) (*Float32Encoder, error) {
	switch encoding {
	case format.Plain, format.RLEDictionary, format.ByteStreamSplit:
		e := &Float32Encoder{encoding: encoding}
		e.Reset()
		return e, nil
	default:
		return nil, unsupported(format.Float, encoding, "")
	}
}

// Reset discards any buffered values.
func (e *Float32Encoder) Reset() {
	switch e.encoding {
	case format.Plain:
		e.plainBuf = e.plainBuf[:0]
	case format.RLEDictionary:
		e.dictEnc.Reset()
	case format.ByteStreamSplit:
		e.bssEnc.Reset()
	}
}

// PutBatch appends values to the encoder's pending input.
func (e *Float32Encoder) PutBatch(values []float32) {
	switch e.encoding {
	case format.Plain:
		e.plainBuf = plain.EncodeFixedWidth(e.plainBuf, values)
	case format.RLEDictionary:
		e.dictEnc.PutBatch(values)
	case format.ByteStreamSplit:
		e.bssEnc.PutBatch(values)
	}
}

// Flush emits the encoded page, clears the encoder's pending input, and
// reports the encoding actually realized.
func (e *Float32Encoder) Flush() (page []byte, realized format.Encoding, err error) {
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
	case format.ByteStreamSplit:
		return e.bssEnc.Flush(), format.ByteStreamSplit, nil
	}
	return nil, e.encoding, errors.NotSupported(format.Float, e.encoding, "")
}

// ViewDict returns the PLAIN-encoded dictionary page for the values seen so
// far. It is only meaningful when the encoder was constructed for
// RLE_DICTIONARY.
func (e *Float32Encoder) ViewDict() []byte { return e.dictEnc.ViewDict() }

// Float64Decoder decodes a page of float64 values under whichever encoding
// it was constructed for. Float64Decoder is not safe for concurrent use.
type Float64Decoder struct {
	encoding format.Encoding
	plainBuf []byte
	plainPos int
	dictDec  dict.Decoder[float64]
	bssDec   bytestreamsplit.Float64Decoder
}

// NewFloat64Decoder returns a decoder for encoding, or a
// *errors.NotSupportedError if encoding has no DOUBLE decoder in this
// module.
func NewFloat64Decoder(encoding format.Encoding) (*Float64Decoder, error) {
	switch canonicalDictionaryEncoding(encoding) {
	case format.Plain, format.RLEDictionary, format.ByteStreamSplit:
		return &Float64Decoder{encoding: canonicalDictionaryEncoding(encoding)}, nil
	default:
		return nil, unsupported(format.Double, encoding, "")
	}
}

// ResetDict binds the dictionary used to resolve indices when the decoder
// was constructed for RLE_DICTIONARY. It is a no-op for any other encoding.
func (d *Float64Decoder) ResetDict(dictionary []float64) {
	if d.encoding == format.RLEDictionary {
		d.dictDec.ResetDict(dictionary)
	}
}

// Reset binds data as a page encoded under the decoder's encoding.
func (d *Float64Decoder) Reset(data []byte) error {
	switch d.encoding {
	case format.Plain:
		d.plainBuf = data
		d.plainPos = 0
		return nil
	case format.RLEDictionary:
		return d.dictDec.Reset(data)
	case format.ByteStreamSplit:
		return d.bssDec.Reset(data)
	}
	return errors.NotSupported(format.Double, d.encoding, "")
}

// ReadBatch decodes up to len(out) values.
func (d *Float64Decoder) ReadBatch(out []float64) (int, error) {
	switch d.encoding {
	case format.Plain:
		n := plain.DecodeFixedWidth(out, d.plainBuf[d.plainPos*8:])
		d.plainPos += n
		return n, nil
	case format.RLEDictionary:
		return d.dictDec.ReadBatch(out, len(out))
	case format.ByteStreamSplit:
		return d.bssDec.ReadBatch(out)
	}
	return 0, errors.NotSupported(format.Double, d.encoding, "")
}

// Float64Encoder encodes a page of float64 values under whichever encoding
// it was constructed for. Float64Encoder is not safe for concurrent use.
type Float64Encoder struct {
	encoding format.Encoding
	plainBuf []byte
	dictEnc  dict.AdaptiveEncoder[float64]
	bssEnc   bytestreamsplit.Float64Encoder
}

// NewFloat64Encoder returns an encoder for encoding, or a
// *errors.NotSupportedError if encoding has no DOUBLE encoder in this
// module.
func NewFloat64Encoder(encoding format.Encoding) (*Float64Encoder, error) {
	switch encoding {
	case format.Plain, format.RLEDictionary, format.ByteStreamSplit:
		e := &Float64Encoder{encoding: encoding}
		e.Reset()
		return e, nil
	default:
		return nil, unsupported(format.Double, encoding, "")
	}
}

// Reset discards any buffered values.
func (e *Float64Encoder) Reset() {
	switch e.encoding {
	case format.Plain:
		e.plainBuf = e.plainBuf[:0]
	case format.RLEDictionary:
		e.dictEnc.Reset()
	case format.ByteStreamSplit:
		e.bssEnc.Reset()
	}
}

// PutBatch appends values to the encoder's pending input.
func (e *Float64Encoder) PutBatch(values []float64) {
	switch e.encoding {
	case format.Plain:
		e.plainBuf = plain.EncodeFixedWidth(e.plainBuf, values)
	case format.RLEDictionary:
		e.dictEnc.PutBatch(values)
	case format.ByteStreamSplit:
		e.bssEnc.PutBatch(values)
	}
}

// Flush emits the encoded page, clears the encoder's pending input, and
// reports the encoding actually realized.
func (e *Float64Encoder) Flush() (page []byte, realized format.Encoding, err error) {
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
	case format.ByteStreamSplit:
		return e.bssEnc.Flush(), format.ByteStreamSplit, nil
	}
	return nil, e.encoding, errors.NotSupported(format.Double, e.encoding, "")
}

// ViewDict returns the PLAIN-encoded dictionary page for the values seen so
// far. It is only meaningful when the encoder was constructed for
// RLE_DICTIONARY.
func (e *Float64Encoder) ViewDict() []byte { return e.dictEnc.ViewDict() }
