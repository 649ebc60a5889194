package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoysAtOrigin(t *testing.T) {
	tests := []struct {
		x    float64
		n    int
		want float64
	}{
		{0, 0, 1.0},
		{1e-16, 0, 1.0},
		{0, 1, 1.0 / 3.0},
		{1e-16, 2, 1.0 / 5.0},
	}
	for _, test := range tests {
		got := boys(test.x, test.n)
		assert.Equal(t, test.want, got, "boys(%g, %d)", test.x, test.n)
	}
}

// F0 away from the origin must match the closed form
// 0.5*sqrt(pi/T)*erf(sqrt(T)).
func TestBoysErfForm(t *testing.T) {
	for _, x := range []float64{1e-8, 1e-4, 1e-2, 0.1, 0.5, 1, 2, 5, 10, 30} {
		want := 0.5 * math.Sqrt(math.Pi/x) * math.Erf(math.Sqrt(x))
		assert.InEpsilon(t, want, boys(x, 0), 1e-12, "x = %g", x)
	}
}

func TestBoysDecreasing(t *testing.T) {
	grid := []float64{1e-10, 1e-6, 1e-3, 0.1, 0.5, 1, 2, 5, 10, 50}
	prev := boys(0, 0)
	for _, x := range grid {
		cur := boys(x, 0)
		assert.Positive(t, cur)
		assert.Less(t, cur, prev, "F0 not decreasing at x = %g", x)
		prev = cur
	}
}

func TestPrimOverlapSymmetric(t *testing.T) {
	Ra := [3]float64{0, 0, 0}
	Rb := [3]float64{1.4, 0, 0}
	a, b := 3.425250914, 0.6239137298
	assert.InEpsilon(t, primOverlap(a, b, Ra, Rb), primOverlap(b, a, Rb, Ra), 1e-14)
}

func TestOverlapBounds(t *testing.T) {
	for _, dist := range []float64{0.5, 1.0, 1.4011, 3.0, 10.0} {
		mol, err := NewH2(dist, 1.0)
		require.NoError(t, err)
		s := Overlap(mol.AOs)[0][1]
		assert.Greater(t, s, 0.0, "R = %g", dist)
		assert.Less(t, s, 1.0, "R = %g", dist)
	}
}

func TestOverlapLimits(t *testing.T) {
	// S -> 1 as the centers merge, S -> 0 as they separate.
	near, err := NewH2(1e-7, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, Overlap(near.AOs)[0][1], 1e-6)

	far, err := NewH2(50.0, 1.0)
	require.NoError(t, err)
	assert.Less(t, Overlap(far.AOs)[0][1], 1e-12)
}

func TestPrimNuclearSign(t *testing.T) {
	Ra := [3]float64{0, 0, 0}
	v := primNuclear(1.0, 1.0, Ra, Ra, Ra, 1.0)
	assert.Negative(t, v)
}
