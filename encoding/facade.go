package encoding

import (
	"io"

	"github.com/parquet-go/codec/format"
)

// ValueEncoder is satisfied by every typed encoder in this package. It
// exists for callers that only need to flush an already-populated encoder
// to a sink and learn which encoding was realized (an adaptive dictionary
// encoder may have fallen back to PLAIN); callers that need to type-check
// values as they're produced use the typed PutBatch methods on the
// concrete *Int32Encoder, *Float32Encoder, and so on, directly.
type ValueEncoder interface {
	// WriteTo flushes the encoder's pending input to sink, returning the
	// number of bytes written and the encoding actually realized.
	WriteTo(sink io.Writer) (int64, format.Encoding, error)
}

// NewValueEncoder returns the encoder most factories in this package also
// expose with a typed constructor, boxed behind the ValueEncoder interface
// for callers that dispatch purely on (format.Type, format.Encoding) — a
// generic page writer, for instance, that never touches the decoded values
// itself. INT96 has no encoder in this module (it's deprecated and
// decode-only); PLAIN_DICTIONARY is rejected here since it's a read-only
// legacy alias of RLE_DICTIONARY.
func NewValueEncoder(typ format.Type, encoding format.Encoding) (ValueEncoder, error) {
	if typ == format.Int96 {
		return nil, unsupported(format.Int96, encoding, "INT96 is decode-only")
	}
	if encoding == format.PlainDictionary {
		return nil, unsupported(typ, encoding, "PLAIN_DICTIONARY is a read-only legacy alias of RLE_DICTIONARY")
	}
	switch typ {
	case format.Boolean:
		return NewBooleanEncoder(encoding)
	case format.Int32:
		return NewInt32Encoder(encoding)
	case format.Int64:
		return NewInt64Encoder(encoding)
	case format.Float:
		return NewFloat32Encoder(encoding)
	case format.Double:
		return NewFloat64Encoder(encoding)
	case format.ByteArray:
		return NewByteArrayEncoder(encoding)
	case format.FixedLenByteArray:
		return nil, unsupported(typ, encoding, "use NewFixedLenByteArrayEncoder, which additionally takes the fixed value size")
	}
	return nil, unsupported(typ, encoding, "unknown physical type")
}

func (e *BooleanEncoder) WriteTo(sink io.Writer) (int64, format.Encoding, error) {
	page, err := e.Flush()
	if err != nil {
		return 0, e.encoding, err
	}
	n, err := sink.Write(page)
	return int64(n), e.encoding, err
}

func (e *Int32Encoder) WriteTo(sink io.Writer) (int64, format.Encoding, error) {
	page, realized, err := e.Flush()
	if err != nil {
		return 0, realized, err
	}
	n, err := sink.Write(page)
	return int64(n), realized, err
}

func (e *Int64Encoder) WriteTo(sink io.Writer) (int64, format.Encoding, error) {
	page, realized, err := e.Flush()
	if err != nil {
		return 0, realized, err
	}
	n, err := sink.Write(page)
	return int64(n), realized, err
}

func (e *Float32Encoder) WriteTo(sink io.Writer) (int64, format.Encoding, error) {
	page, realized, err := e.Flush()
	if err != nil {
		return 0, realized, err
	}
	n, err := sink.Write(page)
	return int64(n), realized, err
}

func (e *Float64Encoder) WriteTo(sink io.Writer) (int64, format.Encoding, error) {
	page, realized, err := e.Flush()
	if err != nil {
		return 0, realized, err
	}
	n, err := sink.Write(page)
	return int64(n), realized, err
}

func (e *ByteArrayEncoder) WriteTo(sink io.Writer) (int64, format.Encoding, error) {
	page, realized, err := e.Flush()
	if err != nil {
		return 0, realized, err
	}
	n, err := sink.Write(page)
	return int64(n), realized, err
}

func (e *FixedLenByteArrayEncoder) WriteTo(sink io.Writer) (int64, format.Encoding, error) {
	page, err := e.Flush()
	if err != nil {
		return 0, e.encoding, err
	}
	n, err := sink.Write(page)
	return int64(n), e.encoding, err
}
