package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEase(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.0625},
		{0.5, 0.5},
		{0.75, 0.9375},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Ease(tt.p), 1e-9, "p=%v", tt.p)
	}
}

func TestEaseMonotonic(t *testing.T) {
	prev := 0.0
	for i := 0; i <= 100; i++ {
		e := Ease(float64(i) / 100)
		assert.GreaterOrEqual(t, e, prev)
		prev = e
	}
}

func TestInterpolate(t *testing.T) {
	assert.Equal(t, 0, interpolate(0, 100, 0))
	assert.Equal(t, 100, interpolate(0, 100, 1))
	assert.Equal(t, 50, interpolate(0, 100, 0.5))
	assert.Equal(t, 10, interpolate(20, -10, 1))
}
