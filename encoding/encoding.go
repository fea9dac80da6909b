// Package encoding is the codec facade: for each physical type it exposes a
// decoder/encoder pair that dispatches to the concrete codec keyed by a
// declared format.Encoding, optionally binding a dictionary. Callers that
// know their column's physical type at compile time use the typed
// constructors in this package directly (NewInt32Decoder, NewFloat32Encoder,
// and so on) rather than going through a boxed interface{}-based API.
package encoding

import (
	"github.com/parquet-go/codec/errors"
	"github.com/parquet-go/codec/format"
)

// unsupported builds the *errors.NotSupportedError every factory in this
// package returns for an encoding outside its supported matrix.
func unsupported(typ format.Type, encoding format.Encoding, reason string) error {
	return errors.NotSupported(typ, encoding, reason)
}

// canonicalDictionaryEncoding maps the deprecated PLAIN_DICTIONARY alias
// onto RLE_DICTIONARY, the only encoding the dict package actually
// implements; both read the identical wire format.
func canonicalDictionaryEncoding(e format.Encoding) format.Encoding {
	if e == format.PlainDictionary {
		return format.RLEDictionary
	}
	return e
}
