package components

// RenderSparkline draws values as a row of Unicode block characters scaled
// between their minimum and maximum.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	result := make([]rune, len(values))
	if hi == lo {
		for i := range result {
			result[i] = blocks[len(blocks)/2]
		}
		return string(result)
	}

	for i, v := range values {
		idx := int((v - lo) / (hi - lo) * float64(len(blocks)-1))
		result[i] = blocks[min(idx, len(blocks)-1)]
	}
	return string(result)
}
