package bits_test

import (
	"testing"
	"testing/quick"

	"github.com/parquet-go/codec/internal/bits"
)

func TestMinInt32(t *testing.T) {
	f := func(values []int32) bool {
		min := int32(0)
		if len(values) > 0 {
			min = values[0]
			for _, v := range values[1:] {
				if v < min {
					min = v
				}
			}
		}
		return min == bits.MinInt32(values)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestMinInt64(t *testing.T) {
	f := func(values []int64) bool {
		min := int64(0)
		if len(values) > 0 {
			min = values[0]
			for _, v := range values[1:] {
				if v < min {
					min = v
				}
			}
		}
		return min == bits.MinInt64(values)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
