package encoding

import (
	"github.com/parquet-go/codec/deprecated"
	"github.com/parquet-go/codec/dict"
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/format"
	"github.com/parquet-go/codec/plain"
)

// Int96Decoder decodes a page of deprecated.Int96 values. INT96 is
// decode-only in this module; there is no Int96Encoder.
type Int96Decoder struct {
	encoding format.Encoding
	plainBuf []byte
	plainPos int
	dictDec  dict.Decoder[deprecated.Int96]
}

// NewInt96Decoder returns a decoder for encoding, or a
// *errors.NotSupportedError if encoding has no INT96 decoder in this module.
func NewInt96Decoder(encoding format.Encoding) (*Int96Decoder, error) {
	switch canonicalDictionaryEncoding(encoding) {
	case format.Plain, format.RLEDictionary:
		return &Int96Decoder{encoding: canonicalDictionaryEncoding(encoding)}, nil
	default:
		return nil, unsupported(format.Int96, encoding, "")
	}
}

// ResetDict binds the dictionary used to resolve indices when the decoder
// was constructed for RLE_DICTIONARY. It is a no-op for any other encoding.
func (d *Int96Decoder) ResetDict(dictionary []deprecated.Int96) {
	if d.encoding == format.RLEDictionary {
		d.dictDec.ResetDict(dictionary)
	}
}

// Reset binds data as a page encoded under the decoder's encoding.
func (d *Int96Decoder) Reset(data []byte) error {
	switch d.encoding {
	case format.Plain:
		d.plainBuf = data
		d.plainPos = 0
		return nil
	case format.RLEDictionary:
		return d.dictDec.Reset(data)
	}
	return errors.NotSupported(format.Int96, d.encoding, "")
}

// ReadBatch decodes up to len(out) values.
func (d *Int96Decoder) ReadBatch(out []deprecated.Int96) (int, error) {
	switch d.encoding {
	case format.Plain:
		n := plain.DecodeFixedWidth(out, d.plainBuf[d.plainPos*12:])
		d.plainPos += n
		return n, nil
	case format.RLEDictionary:
		return d.dictDec.ReadBatch(out, len(out))
	}
	return 0, errors.NotSupported(format.Int96, d.encoding, "")
}
