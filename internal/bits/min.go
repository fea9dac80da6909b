package bits

// MinInt32 returns the smallest value in data, or 0 if data is empty. Used
// by the delta encoder to find each block's min_delta.
func MinInt32(data []int32) (min int32) {
	if len(data) > 0 {
		min = data[0]

		for _, value := range data {
			if value < min {
				min = value
			}
		}
	}
	return min
}

// MinInt64 is the 64-bit equivalent of MinInt32.
func MinInt64(data []int64) (min int64) {
	if len(data) > 0 {
		min = data[0]

		for _, value := range data {
			if value < min {
				min = value
			}
		}
	}
	return min
}
