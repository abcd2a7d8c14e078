package skeleton

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := map[string]struct {
		in   float64
		want float64
	}{
		"zero":             {0, 0},
		"integer":          {3, 3},
		"negative":         {-1.5, -1.5},
		"rounds down":      {1.23456742, 1.234567},
		"rounds up":        {1.23456789, 1.234568},
		"rounds half away": {0.0000005, 0.000001},
		"keeps sign":       {-12.3456789, -12.345679},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, test.want, Truncate(test.in), 0)
		})
	}
}

func TestTruncateIdempotent(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.1234565, -0.987654321, 1e-7, -1e-7, 123456.654321, math.Pi} {
		once := Truncate(v)
		assert.InDelta(t, once, Truncate(once), 0, "truncate must be stable for %v", v)
	}
}

func TestTruncateCollapsesNegativeZero(t *testing.T) {
	got := Truncate(-0.0000001)
	assert.InDelta(t, 0.0, got, 0)
	assert.False(t, math.Signbit(got), "must be +0.0, not -0.0")
}

func TestTruncateCollapsesTinyMagnitudes(t *testing.T) {
	// anything at or below one unit of the kept precision becomes zero
	assert.InDelta(t, 0.0, Truncate(0.000001), 0)
	assert.InDelta(t, 0.0, Truncate(-0.000001), 0)
	assert.InDelta(t, 0.000002, Truncate(0.000002), 0)
}

func TestVec3Truncated(t *testing.T) {
	v := Vec3{1.23456789, -0.0000001, 2}
	assert.Equal(t, Vec3{1.234568, 0, 2}, v.Truncated())
}
