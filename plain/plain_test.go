package plain_test

import (
	"bytes"
	"testing"

	"github.com/parquet-go/codec/plain"
)

func TestEncodeInt32(t *testing.T) {
	src := []int32{1, -1, 0}
	got := plain.EncodeFixedWidth(nil, src)
	want := []byte{0x01, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}
	if !bytes.Equal(got, want) {
		t.Fatalf("want=% x got=% x", want, got)
	}

	dst := make([]int32, len(src))
	n := plain.DecodeFixedWidth(dst, got)
	if n != len(src) {
		t.Fatalf("want=%d got=%d", len(src), n)
	}
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("value %d: want=%d got=%d", i, src[i], dst[i])
		}
	}
}

func TestBooleanRoundTrip(t *testing.T) {
	src := []byte{1, 0, 1, 1, 0, 0, 0, 1, 1}
	encoded := plain.EncodeBoolean(nil, src)

	dst := make([]byte, len(src))
	n := plain.DecodeBoolean(dst, encoded)
	if n != len(src) {
		t.Fatalf("want=%d got=%d", len(src), n)
	}
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("value %d: want=%d got=%d", i, src[i], dst[i])
		}
	}
}

func TestByteArrayRoundTrip(t *testing.T) {
	values := [][]byte{[]byte("a"), []byte("bb"), []byte(""), []byte("dddd")}

	var enc plain.ByteArrayEncoder
	enc.Reset()
	enc.PutBatch(values)

	var dec plain.ByteArrayDecoder
	dec.Reset(enc.Bytes())

	out := make([][]byte, len(values))
	n, err := dec.ReadBatch(out, len(values))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("want=%d got=%d", len(values), n)
	}
	for i := range values {
		if !bytes.Equal(out[i], values[i]) {
			t.Fatalf("value %d: want=%q got=%q", i, values[i], out[i])
		}
	}
}

func TestByteArrayLengthExceedsPageIsCorrupted(t *testing.T) {
	var dec plain.ByteArrayDecoder
	dec.Reset([]byte{0xff, 0x00, 0x00, 0x00})
	out := make([][]byte, 1)
	if _, err := dec.ReadBatch(out, 1); err == nil {
		t.Fatal("expected a corruption error")
	}
}

func TestFixedLenByteArrayRoundTrip(t *testing.T) {
	values := [][]byte{[]byte("abcd"), []byte("efgh"), []byte("ijkl")}

	encoded, err := plain.EncodeFixedLenByteArray(nil, values, 4)
	if err != nil {
		t.Fatal(err)
	}

	out, err := plain.DecodeFixedLenByteArray(encoded, 4, len(values))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(values) {
		t.Fatalf("want=%d got=%d", len(values), len(out))
	}
	for i := range values {
		if !bytes.Equal(out[i], values[i]) {
			t.Fatalf("value %d: want=%q got=%q", i, values[i], out[i])
		}
	}
}
