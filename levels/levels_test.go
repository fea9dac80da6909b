package levels_test

import (
	"testing"

	"github.com/parquet-go/codec/levels"
)

func TestV1RoundTrip(t *testing.T) {
	want := []int32{2, 2, 2, 2, 2}

	var enc levels.Encoder
	enc.Reset(2)
	enc.PutBatch(want)
	page := enc.FlushV1()

	var dec levels.Decoder
	consumed, err := dec.ResetV1(page, 2, len(want), false)
	if err != nil {
		t.Fatal(err)
	}
	if consumed != len(page) {
		t.Fatalf("consumed=%d want=%d", consumed, len(page))
	}

	got := make([]int32, len(want))
	n, err := dec.ReadBatch(got)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(want) {
		t.Fatalf("want=%d got=%d", len(want), n)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("level %d: want=%d got=%d", i, want[i], got[i])
		}
	}
}

func TestBitWidthZeroProducesZeros(t *testing.T) {
	var dec levels.Decoder
	if _, err := dec.ResetV1([]byte{0xff, 0xff, 0xff, 0xff}, 0, 4, false); err != nil {
		t.Fatal(err)
	}
	out := make([]int32, 4)
	n, err := dec.ReadBatch(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("want=4 got=%d", n)
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("level %d: want=0 got=%d", i, v)
		}
	}
}

func TestV1NegativeLengthIsCorrupted(t *testing.T) {
	var dec levels.Decoder
	_, err := dec.ResetV1([]byte{0xff, 0xff, 0xff, 0xff}, 2, 1, false)
	if err == nil {
		t.Fatal("expected a corruption error for a negative length prefix")
	}
}

func TestV1LegacyBitPacked(t *testing.T) {
	// Two values at bit width 3, packed MSB-first in a single byte:
	// value 5 (101) then value 2 (010) -> 101 010 00 = 0xA8.
	page := []byte{0xA8}

	var dec levels.Decoder
	if _, err := dec.ResetV1(page, 3, 2, true); err != nil {
		t.Fatal(err)
	}
	out := make([]int32, 2)
	n, err := dec.ReadBatch(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || out[0] != 5 || out[1] != 2 {
		t.Fatalf("got n=%d out=%v", n, out)
	}
}

func TestV2NoLengthPrefix(t *testing.T) {
	want := []int32{1, 1, 1, 0, 0}

	var enc levels.Encoder
	enc.Reset(1)
	enc.PutBatch(want)
	page := enc.FlushV2()

	var dec levels.Decoder
	dec.ResetV2(page, 1, len(want))

	got := make([]int32, len(want))
	n, err := dec.ReadBatch(got)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(want) {
		t.Fatalf("want=%d got=%d", len(want), n)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("level %d: want=%d got=%d", i, want[i], got[i])
		}
	}
}
