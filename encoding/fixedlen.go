package encoding

import (
	"github.com/parquet-go/codec/bytestreamsplit"
	"github.com/parquet-go/codec/dict"
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/format"
	"github.com/parquet-go/codec/plain"
)

// FixedLenByteArrayDecoder decodes a page of fixed-length byte-array values
// under whichever encoding it was constructed for. The value length is
// declared externally (by the schema), not carried in the page itself.
// FixedLenByteArrayDecoder is not safe for concurrent use.
type FixedLenByteArrayDecoder struct {
	encoding format.Encoding
	size     int
	data     []byte
	pos      int
	dictDec  dict.ByteArrayDecoder
}

// NewFixedLenByteArrayDecoder returns a decoder for encoding and the given
// fixed value size, or a *errors.NotSupportedError if encoding has no
// FIXED_LEN_BYTE_ARRAY decoder in this module.
func NewFixedLenByteArrayDecoder(encoding format.Encoding, size int) (*FixedLenByteArrayDecoder, error) {
	switch canonicalDictionaryEncoding(encoding) {
	case format.Plain, format.RLEDictionary, format.ByteStreamSplit:
		return &FixedLenByteArrayDecoder{encoding: canonicalDictionaryEncoding(encoding), size: size}, nil
	default:
		return nil, unsupported(format.FixedLenByteArray, encoding, "")
	}
}

// ResetDict binds the dictionary used to resolve indices when the decoder
// was constructed for RLE_DICTIONARY. It is a no-op for any other encoding.
func (d *FixedLenByteArrayDecoder) ResetDict(dictionary [][]byte) {
	if d.encoding == format.RLEDictionary {
		d.dictDec.ResetDict(dictionary)
	}
}

// Reset binds data as a page encoded under the decoder's encoding.
func (d *FixedLenByteArrayDecoder) Reset(data []byte) error {
	switch d.encoding {
	case format.Plain:
		d.data = data
		d.pos = 0
		return nil
	case format.RLEDictionary:
		return d.dictDec.Reset(data)
	case format.ByteStreamSplit:
		if len(data)%d.size != 0 {
			return errors.Corrupted("bytestreamsplit: data length %d not a multiple of width %d", len(data), d.size)
		}
		d.data = data
		d.pos = 0
		return nil
	}
	return errors.NotSupported(format.FixedLenByteArray, d.encoding, "")
}

// ReadBatch decodes up to n values into out.
func (d *FixedLenByteArrayDecoder) ReadBatch(out [][]byte, n int) (int, error) {
	if n > len(out) {
		n = len(out)
	}
	switch d.encoding {
	case format.Plain:
		values, err := plain.DecodeFixedLenByteArray(d.data[d.pos*d.size:], d.size, n)
		if err != nil {
			return 0, err
		}
		copy(out[:len(values)], values)
		d.pos += len(values)
		return len(values), nil
	case format.RLEDictionary:
		return d.dictDec.ReadBatch(out, n)
	case format.ByteStreamSplit:
		total := len(d.data) / d.size
		if d.pos+n > total {
			n = total - d.pos
		}
		for i := 0; i < n; i++ {
			idx := d.pos + i
			value := make([]byte, d.size)
			for plane := 0; plane < d.size; plane++ {
				value[plane] = d.data[plane*total+idx]
			}
			out[i] = value
		}
		d.pos += n
		return n, nil
	}
	return 0, errors.NotSupported(format.FixedLenByteArray, d.encoding, "")
}

// FixedLenByteArrayEncoder encodes a page of fixed-length byte-array values
// under whichever encoding it was constructed for. FixedLenByteArrayEncoder
// is not safe for concurrent use.
type FixedLenByteArrayEncoder struct {
	encoding format.Encoding
	size     int
	plainBuf []byte
	dictEnc  dict.ByteArrayEncoder
	bssValue [][]byte
}

// NewFixedLenByteArrayEncoder returns an encoder for encoding and the given
// fixed value size, or a *errors.NotSupportedError if encoding has no
// FIXED_LEN_BYTE_ARRAY encoder in this module.
func NewFixedLenByteArrayEncoder(encoding format.Encoding, size int) (*FixedLenByteArrayEncoder, error) {
	switch encoding {
	case format.Plain, format.RLEDictionary, format.ByteStreamSplit:
		e := &FixedLenByteArrayEncoder{encoding: encoding, size: size}
		e.Reset()
		return e, nil
	default:
		return nil, unsupported(format.FixedLenByteArray, encoding, "")
	}
}

// Reset discards any buffered values.
func (e *FixedLenByteArrayEncoder) Reset() {
	switch e.encoding {
	case format.Plain:
		e.plainBuf = e.plainBuf[:0]
	case format.RLEDictionary:
		e.dictEnc.Reset()
	case format.ByteStreamSplit:
		e.bssValue = e.bssValue[:0]
	}
}

// PutBatch appends values (each must be size bytes) to the encoder's
// pending input.
func (e *FixedLenByteArrayEncoder) PutBatch(values [][]byte) error {
	switch e.encoding {
	case format.Plain:
		var err error
		e.plainBuf, err = plain.EncodeFixedLenByteArray(e.plainBuf, values, e.size)
		return err
	case format.RLEDictionary:
		e.dictEnc.PutBatch(values)
		return nil
	case format.ByteStreamSplit:
		e.bssValue = append(e.bssValue, values...)
		return nil
	}
	return errors.NotSupported(format.FixedLenByteArray, e.encoding, "")
}

// Flush emits the encoded page and clears the encoder's pending input.
func (e *FixedLenByteArrayEncoder) Flush() ([]byte, error) {
	switch e.encoding {
	case format.Plain:
		page := append([]byte(nil), e.plainBuf...)
		e.plainBuf = e.plainBuf[:0]
		return page, nil
	case format.RLEDictionary:
		return e.dictEnc.Flush(), nil
	case format.ByteStreamSplit:
		flat := make([]byte, len(e.bssValue)*e.size)
		for i, v := range e.bssValue {
			copy(flat[i*e.size:], v)
		}
		out := make([]byte, len(flat))
		bytestreamsplit.Encode(out, flat, e.size)
		e.bssValue = e.bssValue[:0]
		return out, nil
	}
	return nil, errors.NotSupported(format.FixedLenByteArray, e.encoding, "")
}
