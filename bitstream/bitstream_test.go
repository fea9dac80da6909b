package bitstream_test

import (
	"math"
	"testing"

	"github.com/parquet-go/codec/bitstream"
)

func TestWriterReaderValueRoundTrip(t *testing.T) {
	for _, bitWidth := range []uint{1, 2, 3, 7, 8, 13, 17, 32} {
		bitWidth := bitWidth
		t.Run("", func(t *testing.T) {
			values := []uint64{0, 1, (1 << bitWidth) - 1}

			var w bitstream.Writer
			w.Reset(nil)
			for _, v := range values {
				w.WriteValue(v, bitWidth)
			}
			w.Flush()

			var r bitstream.Reader
			r.Reset(w.Bytes())
			for i, want := range values {
				got, ok := r.ReadValue(bitWidth)
				if !ok {
					t.Fatalf("value %d: unexpected end of stream", i)
				}
				if got != want {
					t.Fatalf("value %d: want=%d got=%d", i, want, got)
				}
			}
		})
	}
}

func TestWriterReaderAligned(t *testing.T) {
	var w bitstream.Writer
	w.Reset(nil)
	w.WriteValue(1, 3) // force a pending partial byte before the aligned write
	w.WriteAligned(0x0102030405060708, 8)

	var r bitstream.Reader
	r.Reset(w.Bytes())
	if _, ok := r.ReadValue(3); !ok {
		t.Fatal("unexpected end of stream reading the partial byte")
	}
	got, ok := r.ReadAligned(8)
	if !ok {
		t.Fatal("unexpected end of stream reading the aligned value")
	}
	if got != 0x0102030405060708 {
		t.Fatalf("want=%#x got=%#x", uint64(0x0102030405060708), got)
	}
}

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, math.MaxUint32, math.MaxUint64}

	var w bitstream.Writer
	w.Reset(nil)
	for _, v := range values {
		w.WriteUvarint(v)
	}
	w.Flush()

	var r bitstream.Reader
	r.Reset(w.Bytes())
	for i, want := range values {
		got, ok := r.ReadUvarint()
		if !ok {
			t.Fatalf("value %d: unexpected end of stream", i)
		}
		if got != want {
			t.Fatalf("value %d: want=%d got=%d", i, want, got)
		}
	}
}

func TestZigZagVarintRoundTrip(t *testing.T) {
	values := []int64{0, -1, 1, -2, 2, math.MinInt32, math.MaxInt32, math.MinInt64, math.MaxInt64}

	var w bitstream.Writer
	w.Reset(nil)
	for _, v := range values {
		w.WriteZigZagVarint(v)
	}
	w.Flush()

	var r bitstream.Reader
	r.Reset(w.Bytes())
	for i, want := range values {
		got, ok := r.ReadZigZagVarint()
		if !ok {
			t.Fatalf("value %d: unexpected end of stream", i)
		}
		if got != want {
			t.Fatalf("value %d: want=%d got=%d", i, want, got)
		}
	}
}

func TestReadValueEndOfStream(t *testing.T) {
	var r bitstream.Reader
	r.Reset([]byte{0xff})
	if _, ok := r.ReadValue(16); ok {
		t.Fatal("expected end of stream reading 16 bits from a single byte")
	}
}
