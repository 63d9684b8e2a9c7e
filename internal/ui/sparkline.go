package ui

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values in [0,1] as one block character each, keeping
// the rightmost width entries when the series is longer than the line.
// Values outside [0,1] are clamped.
func Sparkline(values []float64, width int) string {
	if width < 1 || len(values) == 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	out := make([]rune, len(values))
	for i, v := range values {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		idx := int(v * float64(len(sparkLevels)))
		if idx == len(sparkLevels) {
			idx--
		}
		out[i] = sparkLevels[idx]
	}
	return string(out)
}
