package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMolecule(t *testing.T) *Molecule {
	t.Helper()
	mol, err := NewH2(1.4011, 1.0)
	require.NoError(t, err)
	return mol
}

func TestAOMatricesSymmetric(t *testing.T) {
	mol := testMolecule(t)
	for name, M := range map[string][][]float64{
		"S":   Overlap(mol.AOs),
		"T":   Kinetic(mol.AOs),
		"Ven": ElecNuc(mol.AOs, mol.Atoms),
	} {
		for i := range M {
			for j := range M {
				assert.InDelta(t, M[i][j], M[j][i], 1e-12, "%s[%d][%d]", name, i, j)
			}
		}
	}
}

func TestHomonuclearERI(t *testing.T) {
	mol := testMolecule(t)
	eri := ElecElec(mol.AOs)
	// Identical atoms: (AA|AA) == (BB|BB).
	assert.InEpsilon(t, eri[0][0][0][0], eri[1][1][1][1], 1e-12)
	assert.InDelta(t, 0.77460594, eri[0][0][0][0], 1e-7)
}

func TestERIPermutationalSymmetry(t *testing.T) {
	mol := testMolecule(t)
	eri := ElecElec(mol.AOs)
	assert.Less(t, ERISymmetryRMS(eri), 1e-12)
}

func TestCoreHamiltonian(t *testing.T) {
	mol := testMolecule(t)
	T := Kinetic(mol.AOs)
	Ven := ElecNuc(mol.AOs, mol.Atoms)
	h := CoreHamiltonian(T, Ven)
	assert.InDelta(t, -1.12003158, h[0][0], 1e-7)
	assert.InDelta(t, -0.95769679, h[0][1], 1e-7)
	assert.InDelta(t, h[0][0], h[1][1], 1e-12)
}

func TestNucNuc(t *testing.T) {
	mol := testMolecule(t)
	assert.InDelta(t, 1.0/1.4011, NucNuc(mol.Atoms), 1e-14)

	// Off-axis placement goes through the same distance helper.
	a := Atom{Z: 1, Coords: [3]float64{0, 0, 0}}
	b := Atom{Z: 1, Coords: [3]float64{0, 3, 4}}
	assert.InDelta(t, 1.0/5.0, NucNuc([]Atom{a, b}), 1e-14)
}

func TestContractionZetaDependence(t *testing.T) {
	// Larger zeta contracts the orbital, so the same-center repulsion grows
	// proportionally to zeta.
	mol1 := testMolecule(t)
	mol2, err := NewH2(1.4011, 2.0)
	require.NoError(t, err)
	e1 := ElecElec(mol1.AOs)[0][0][0][0]
	e2 := ElecElec(mol2.AOs)[0][0][0][0]
	assert.InEpsilon(t, 2*e1, e2, 1e-10)
	assert.False(t, math.IsNaN(e2))
}
