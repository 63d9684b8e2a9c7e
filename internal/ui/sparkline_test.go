package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		width  int
		want   string
	}{
		{"empty", nil, 10, ""},
		{"zero width", []float64{0.5}, 0, ""},
		{"extremes", []float64{0, 1}, 10, "▁█"},
		{"midpoint", []float64{0.5}, 10, "▅"},
		{"clamped", []float64{-0.5, 1.5}, 10, "▁█"},
		{"keeps rightmost window", []float64{0, 0, 0, 1, 1}, 2, "██"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sparkline(tt.values, tt.width))
		})
	}
}

func TestSparkline_MonotoneLevels(t *testing.T) {
	prev := rune(0)
	for _, v := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1} {
		r := []rune(Sparkline([]float64{v}, 1))[0]
		assert.GreaterOrEqual(t, r, prev, "levels must not decrease with the value")
		prev = r
	}
}
