package delta_test

import (
	"bytes"
	"testing"

	"github.com/parquet-go/codec/delta"
)

func TestInt32BinaryPackedHeader(t *testing.T) {
	values := []int32{7, 5, 5, 5, 3}

	var enc delta.Int32Encoder
	enc.Reset()
	enc.PutBatch(values)
	page := enc.Flush()

	wantPrefix := []byte{
		0x80, 0x02, // block_values = 256
		0x08,       // miniblocks_per_block = 8
		0x05,       // total_values = 5
		0x0E,       // zigzag(first_value=7)
		0x03,       // zigzag(min_delta=-2)
	}
	if !bytes.HasPrefix(page, wantPrefix) {
		t.Fatalf("header: want prefix=% x got=% x", wantPrefix, page)
	}
}

func TestInt32BinaryPackedRoundTrip(t *testing.T) {
	cases := [][]int32{
		{7, 5, 5, 5, 3},
		{},
		{42},
		{-100, -50, 0, 50, 100},
		makeRampInt32(600),
	}

	for _, values := range cases {
		var enc delta.Int32Encoder
		enc.Reset()
		enc.PutBatch(values)
		page := enc.Flush()

		var dec delta.Int32Decoder
		if err := dec.Reset(page); err != nil {
			t.Fatalf("Reset: %v", err)
		}
		out := make([]int32, len(values))
		n, err := dec.ReadBatch(out)
		if err != nil {
			t.Fatalf("ReadBatch: %v", err)
		}
		if n != len(values) {
			t.Fatalf("count: want=%d got=%d", len(values), n)
		}
		for i := range values {
			if out[i] != values[i] {
				t.Fatalf("value %d: want=%d got=%d", i, values[i], out[i])
			}
		}
	}
}

func TestInt64BinaryPackedRoundTrip(t *testing.T) {
	values := []int64{1 << 40, 1<<40 + 7, 1<<40 - 3, 0, -(1 << 40)}

	var enc delta.Int64Encoder
	enc.Reset()
	enc.PutBatch(values)
	page := enc.Flush()

	var dec delta.Int64Decoder
	if err := dec.Reset(page); err != nil {
		t.Fatal(err)
	}
	out := make([]int64, len(values))
	n, err := dec.ReadBatch(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("count: want=%d got=%d", len(values), n)
	}
	for i := range values {
		if out[i] != values[i] {
			t.Fatalf("value %d: want=%d got=%d", i, values[i], out[i])
		}
	}
}

func TestLengthByteArrayRoundTrip(t *testing.T) {
	values := [][]byte{[]byte("hello"), []byte(""), []byte("world"), []byte("!")}

	var enc delta.LengthByteArrayEncoder
	enc.Reset()
	enc.PutBatch(values)
	page := enc.Flush()

	var dec delta.LengthByteArrayDecoder
	if err := dec.Reset(page); err != nil {
		t.Fatal(err)
	}
	out := make([][]byte, len(values))
	n, err := dec.ReadBatch(out, len(values))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("count: want=%d got=%d", len(values), n)
	}
	for i := range values {
		if !bytes.Equal(out[i], values[i]) {
			t.Fatalf("value %d: want=%q got=%q", i, values[i], out[i])
		}
	}
}

func TestByteArrayDeltaEncodeDecode(t *testing.T) {
	values := [][]byte{[]byte("aa"), []byte("ab"), []byte("ac")}

	var enc delta.ByteArrayEncoder
	enc.Reset()
	enc.PutBatch(values)
	page := enc.Flush()

	var dec delta.ByteArrayDecoder
	if err := dec.Reset(page); err != nil {
		t.Fatal(err)
	}
	out := make([][]byte, len(values))
	n, err := dec.ReadBatch(out, len(values))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("count: want=%d got=%d", len(values), n)
	}
	for i := range values {
		if !bytes.Equal(out[i], values[i]) {
			t.Fatalf("value %d: want=%q got=%q", i, values[i], out[i])
		}
	}
}

func TestByteArrayDeltaRoundTripLargerSet(t *testing.T) {
	values := [][]byte{
		[]byte("parquet"),
		[]byte("parquetry"),
		[]byte("parsley"),
		[]byte(""),
		[]byte("zzz"),
	}

	var enc delta.ByteArrayEncoder
	enc.Reset()
	enc.PutBatch(values)
	page := enc.Flush()

	var dec delta.ByteArrayDecoder
	if err := dec.Reset(page); err != nil {
		t.Fatal(err)
	}
	out := make([][]byte, len(values))
	n, err := dec.ReadBatch(out, len(values))
	if err != nil {
		t.Fatal(err)
	}
	if n != len(values) {
		t.Fatalf("count: want=%d got=%d", len(values), n)
	}
	for i := range values {
		if !bytes.Equal(out[i], values[i]) {
			t.Fatalf("value %d: want=%q got=%q", i, values[i], out[i])
		}
	}
}

func makeRampInt32(n int) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(i * 3)
	}
	return out
}
