package bytestreamsplit_test

import (
	"bytes"
	"testing"

	"github.com/parquet-go/codec/bytestreamsplit"
)

func TestFloat32EncodeMatchesPlanes(t *testing.T) {
	var enc bytestreamsplit.Float32Encoder
	enc.Reset()
	enc.PutBatch([]float32{1.0, 2.0})
	got := enc.Flush()

	want := []byte{0x00, 0x00, 0x00, 0x00, 0x80, 0x00, 0x3F, 0x40}
	if !bytes.Equal(got, want) {
		t.Fatalf("want=% x got=% x", want, got)
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	values := []float32{1.0, 2.0, -3.5, 0, 3.14159}

	var enc bytestreamsplit.Float32Encoder
	enc.Reset()
	enc.PutBatch(values)
	page := enc.Flush()

	var dec bytestreamsplit.Float32Decoder
	if err := dec.Reset(page); err != nil {
		t.Fatal(err)
	}
	out := make([]float32, len(values))
	n, err := dec.ReadBatch(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("count: want=%d got=%d", len(values), n)
	}
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("value %d: want=%v got=%v", i, values[i], out[i])
		}
	}
}

func TestFloat64RoundTrip(t *testing.T) {
	values := []float64{1.0, 2.0, -3.5, 0, 2.718281828}

	var enc bytestreamsplit.Float64Encoder
	enc.Reset()
	enc.PutBatch(values)
	page := enc.Flush()

	var dec bytestreamsplit.Float64Decoder
	if err := dec.Reset(page); err != nil {
		t.Fatal(err)
	}
	out := make([]float64, len(values))
	n, err := dec.ReadBatch(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("count: want=%d got=%d", len(values), n)
	}
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("value %d: want=%v got=%v", i, values[i], out[i])
		}
	}
}

func TestGenericDecodeEncodeRoundTrip(t *testing.T) {
	const width = 4
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	planes := make([]byte, len(src))
	bytestreamsplit.Encode(planes, src, width)

	back := make([]byte, len(src))
	if err := bytestreamsplit.Decode(back, planes, width); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, src) {
		t.Fatalf("want=% x got=% x", src, back)
	}
}

func TestDecodeRejectsMisalignedLength(t *testing.T) {
	if err := bytestreamsplit.Decode(make([]byte, 8), make([]byte, 7), 4); err == nil {
		t.Fatal("expected a corruption error")
	}
}
