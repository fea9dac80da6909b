// Package format declares the closed sets of physical types and encodings
// that the codec packages dispatch on. The real Parquet file format defines
// these as thrift enums alongside file metadata structures; since metadata
// parsing is out of scope here, the enums are declared directly rather than
// generated from a thrift schema.
package format

// Type is one of the eight physical types a Parquet column can declare.
type Type int32

const (
	Boolean Type = iota
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN_TYPE"
	}
}

// Encoding is one of the nine encodings a Parquet page can declare.
type Encoding int32

const (
	Plain Encoding = iota
	// PlainDictionary is the deprecated encoding name; it is a read-only
	// alias of RLEDictionary kept for decoding legacy files.
	PlainDictionary
	RLE
	// BitPacked is the legacy levels-only bit-packed encoding, superseded
	// by RLE for levels in later format versions.
	BitPacked
	DeltaBinaryPacked
	DeltaLengthByteArray
	DeltaByteArray
	RLEDictionary
	ByteStreamSplit
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case RLE:
		return "RLE"
	case BitPacked:
		return "BIT_PACKED"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case RLEDictionary:
		return "RLE_DICTIONARY"
	case ByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return "UNKNOWN_ENCODING"
	}
}

// IsDeprecated reports whether e is retained only for decoding legacy files.
func (e Encoding) IsDeprecated() bool {
	return e == PlainDictionary
}
