package encoding

import (
	"github.com/parquet-go/codec/delta"
	"github.com/parquet-go/codec/dict"
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/format"
	"github.com/parquet-go/codec/plain"
)

// ByteArrayDecoder decodes a page of variable-length byte-array values under
// whichever encoding it was constructed for. ByteArrayDecoder is not safe
// for concurrent use.
type ByteArrayDecoder struct {
	encoding format.Encoding
	plainDec plain.ByteArrayDecoder
	dictDec  dict.ByteArrayDecoder
	dlbaDec  delta.LengthByteArrayDecoder
	dbaDec   delta.ByteArrayDecoder
}

// NewByteArrayDecoder returns a decoder for encoding, or a
// *errors.NotSupportedError if encoding has no BYTE_ARRAY decoder in this
// module.
func NewByteArrayDecoder(encoding format.Encoding) (*ByteArrayDecoder, error) {
	switch canonicalDictionaryEncoding(encoding) {
	case format.Plain, format.RLEDictionary, format.DeltaLengthByteArray, format.DeltaByteArray:
		return &ByteArrayDecoder{encoding: canonicalDictionaryEncoding(encoding)}, nil
	default:
		return nil, unsupported(format.ByteArray, encoding, "")
	}
}

// ResetDict binds the dictionary used to resolve indices when the decoder
// was constructed for RLE_DICTIONARY. It is a no-op for any other encoding.
func (d *ByteArrayDecoder) ResetDict(dictionary [][]byte) {
	if d.encoding == format.RLEDictionary {
		d.dictDec.ResetDict(dictionary)
	}
}

// Reset binds data as a page encoded under the decoder's encoding.
func (d *ByteArrayDecoder) Reset(data []byte) error {
	switch d.encoding {
	case format.Plain:
		d.plainDec.Reset(data)
		return nil
	case format.RLEDictionary:
		return d.dictDec.Reset(data)
	case format.DeltaLengthByteArray:
		return d.dlbaDec.Reset(data)
	case format.DeltaByteArray:
		return d.dbaDec.Reset(data)
	}
	return errors.NotSupported(format.ByteArray, d.encoding, "")
}

// ReadBatch decodes up to n values into out.
func (d *ByteArrayDecoder) ReadBatch(out [][]byte, n int) (int, error) {
	switch d.encoding {
	case format.Plain:
		return d.plainDec.ReadBatch(out, n)
	case format.RLEDictionary:
		return d.dictDec.ReadBatch(out, n)
	case format.DeltaLengthByteArray:
		return d.dlbaDec.ReadBatch(out, n)
	case format.DeltaByteArray:
		return d.dbaDec.ReadBatch(out, n)
	}
	return 0, errors.NotSupported(format.ByteArray, d.encoding, "")
}

// ByteArrayEncoder encodes a page of variable-length byte-array values under
// whichever encoding it was constructed for. ByteArrayEncoder is not safe
// for concurrent use.
type ByteArrayEncoder struct {
	encoding format.Encoding
	plainEnc plain.ByteArrayEncoder
	dictEnc  dict.ByteArrayEncoder
	fellBack bool
	plainOut []byte
	dlbaEnc  delta.LengthByteArrayEncoder
	dbaEnc   delta.ByteArrayEncoder
}

// NewByteArrayEncoder returns an encoder for encoding, or a
// *errors.NotSupportedError if encoding has no BYTE_ARRAY encoder in this
// module.
func NewByteArrayEncoder(encoding format.Encoding) (*ByteArrayEncoder, error) {
	switch encoding {
	case format.Plain, format.RLEDictionary, format.DeltaLengthByteArray, format.DeltaByteArray:
		e := &ByteArrayEncoder{encoding: encoding}
		e.Reset()
		return e, nil
	default:
		return nil, unsupported(format.ByteArray, encoding, "")
	}
}

// Reset discards any buffered values and returns a dictionary encoder to
// the dictionary-encoding state.
func (e *ByteArrayEncoder) Reset() {
	switch e.encoding {
	case format.Plain:
		e.plainEnc.Reset()
	case format.RLEDictionary:
		e.dictEnc.Reset()
		e.fellBack = false
		e.plainOut = e.plainOut[:0]
	case format.DeltaLengthByteArray:
		e.dlbaEnc.Reset()
	case format.DeltaByteArray:
		e.dbaEnc.Reset()
	}
}

// PutBatch appends values to the encoder's pending input.
func (e *ByteArrayEncoder) PutBatch(values [][]byte) {
	switch e.encoding {
	case format.Plain:
		e.plainEnc.PutBatch(values)
	case format.RLEDictionary:
		if e.fellBack {
			e.plainOut = appendPlainByteArrays(e.plainOut, values)
			return
		}
		e.dictEnc.PutBatch(values)
	case format.DeltaLengthByteArray:
		e.dlbaEnc.PutBatch(values)
	case format.DeltaByteArray:
		e.dbaEnc.PutBatch(values)
	}
}

// Flush emits the encoded page, clears the encoder's pending input, and
// reports the encoding actually realized: RLE_DICTIONARY falls back to
// PLAIN for good once its dictionary page exceeds dict.FallbackThreshold.
func (e *ByteArrayEncoder) Flush() (page []byte, realized format.Encoding, err error) {
	switch e.encoding {
	case format.Plain:
		page = append([]byte(nil), e.plainEnc.Bytes()...)
		e.plainEnc.Reset()
		return page, format.Plain, nil
	case format.RLEDictionary:
		if e.fellBack {
			out := e.plainOut
			e.plainOut = nil
			return out, format.Plain, nil
		}
		page = e.dictEnc.Flush()
		if len(e.dictEnc.ViewDict()) > dict.FallbackThreshold {
			e.fellBack = true
		}
		return page, format.RLEDictionary, nil
	case format.DeltaLengthByteArray:
		return e.dlbaEnc.Flush(), format.DeltaLengthByteArray, nil
	case format.DeltaByteArray:
		return e.dbaEnc.Flush(), format.DeltaByteArray, nil
	}
	return nil, e.encoding, errors.NotSupported(format.ByteArray, e.encoding, "")
}

// ViewDict returns the PLAIN-encoded dictionary page for the values seen so
// far. It is only meaningful when the encoder was constructed for
// RLE_DICTIONARY.
func (e *ByteArrayEncoder) ViewDict() []byte { return e.dictEnc.ViewDict() }

func appendPlainByteArrays(dst []byte, values [][]byte) []byte {
	var enc plain.ByteArrayEncoder
	enc.Reset()
	enc.PutBatch(values)
	return append(dst, enc.Bytes()...)
}
