package rle_test

import (
	"bytes"
	"testing"

	"github.com/parquet-go/codec/bitstream"
	"github.com/parquet-go/codec/rle"
)

func TestEncodeRunLengthGroup(t *testing.T) {
	values := []uint64{1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0}

	var enc rle.Encoder
	enc.Reset(1)
	enc.PutBatch(values)

	var w bitstream.Writer
	w.Reset(nil)
	enc.Flush(&w)

	want := []byte{0x10, 0x01, 0x10, 0x00}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("want=% x got=% x", want, w.Bytes())
	}

	var dec rle.Decoder
	dec.Reset(w.Bytes(), 1)
	out := make([]uint64, len(values))
	n, err := dec.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("want=%d got=%d", len(values), n)
	}
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("value %d: want=%d got=%d", i, values[i], out[i])
		}
	}
}

func TestEncodeBitPackedGroup(t *testing.T) {
	values := []uint64{0, 1, 2, 3, 0, 1, 2, 3}

	var enc rle.Encoder
	enc.Reset(2)
	enc.PutBatch(values)

	var w bitstream.Writer
	w.Reset(nil)
	enc.Flush(&w)

	var dec rle.Decoder
	dec.Reset(w.Bytes(), 2)
	out := make([]uint64, len(values))
	n, err := dec.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("want=%d got=%d", len(values), n)
	}
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("value %d: want=%d got=%d", i, values[i], out[i])
		}
	}
}

func TestBitWidthZero(t *testing.T) {
	var dec rle.Decoder
	dec.Reset([]byte{0xff, 0xff, 0xff}, 0)
	out := make([]uint64, 10)
	n, err := dec.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(out) {
		t.Fatalf("want=%d got=%d", len(out), n)
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("value %d: want=0 got=%d", i, v)
		}
	}
}

func TestMixedRunsRoundTrip(t *testing.T) {
	values := make([]uint64, 0, 64)
	for i := 0; i < 20; i++ {
		values = append(values, 5)
	}
	for i := 0; i < 17; i++ {
		values = append(values, uint64(i%4))
	}
	for i := 0; i < 9; i++ {
		values = append(values, 7)
	}

	var enc rle.Encoder
	enc.Reset(3)
	enc.PutBatch(values)

	var w bitstream.Writer
	w.Reset(nil)
	enc.Flush(&w)

	var dec rle.Decoder
	dec.Reset(w.Bytes(), 3)
	out := make([]uint64, len(values))
	n, err := dec.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("want=%d got=%d", len(values), n)
	}
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("value %d: want=%d got=%d", i, values[i], out[i])
		}
	}
}

func TestDecodeTruncatedBitPackedGroupIsCorrupted(t *testing.T) {
	var dec rle.Decoder
	// header declares one bit-packed group of 8 values at bit width 8, but
	// supplies only a single byte of payload.
	dec.Reset([]byte{0x03, 0x00}, 8)
	out := make([]uint64, 8)
	if _, err := dec.Decode(out); err == nil {
		t.Fatal("expected a corruption error")
	}
}
