package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeSTO3G(t *testing.T) {
	ao, err := MakeSTO3G([3]float64{0, 0, 0}, 1.0)
	require.NoError(t, err)
	require.Len(t, ao.PGs, 3)
	for i, pg := range ao.PGs {
		assert.Equal(t, sto3gAlpha[i], pg.Alpha)
		want := sto3gCoeff[i] * math.Pow(2*sto3gAlpha[i]/math.Pi, 0.75)
		assert.InDelta(t, want, pg.Coeff, 1e-14)
	}
}

func TestMakeSTO3GZetaScaling(t *testing.T) {
	zeta := 1.24
	ao, err := MakeSTO3G([3]float64{0, 0, 0}, zeta)
	require.NoError(t, err)
	for i, pg := range ao.PGs {
		assert.InDelta(t, sto3gAlpha[i]*zeta*zeta, pg.Alpha, 1e-14)
	}
}

func TestMakeSTO3GBadZeta(t *testing.T) {
	for _, zeta := range []float64{0, -1.0} {
		_, err := MakeSTO3G([3]float64{0, 0, 0}, zeta)
		assert.Error(t, err)
	}
}

func TestNewAtom(t *testing.T) {
	tests := []struct {
		symb string
		z    int
		ok   bool
	}{
		{"H", 1, true},
		{"He", 2, true},
		{"X", 0, false},
		{"Xx", 0, false},
	}
	for _, test := range tests {
		atm, err := NewAtom(test.symb, [3]float64{0, 0, 0})
		if !test.ok {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.z, atm.Z)
	}
}

func TestNewH2(t *testing.T) {
	mol, err := NewH2(1.4011, 1.0)
	require.NoError(t, err)
	require.Len(t, mol.Atoms, 2)
	require.Len(t, mol.AOs, 2)
	assert.Equal(t, 1.4011, mol.Atoms[1].Coords[0])

	// Contracted AOs are normalized: self-overlap is 1 up to the precision
	// of the tabulated contraction coefficients.
	S := Overlap(mol.AOs)
	assert.InDelta(t, 1.0, S[0][0], 1e-9)
	assert.InDelta(t, 1.0, S[1][1], 1e-9)
}

func TestNewH2BadDistance(t *testing.T) {
	for _, dist := range []float64{0, -0.5} {
		_, err := NewH2(dist, 1.0)
		assert.Error(t, err)
	}
}
