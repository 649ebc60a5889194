// basis.go --  This file is part of the fockmap project.
//
//	fockmap is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package main

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// Bohr radius in Angstrom, for converting input geometries.
var a_B = 0.52917720859

// STO-3G expansion of a hydrogen 1s Slater orbital: three primitive
// exponents and raw contraction coefficients. Exponents are rescaled by
// zeta^2 when the AO is built.
var (
	sto3gAlpha = [3]float64{0.3425250914e+01, 0.6239137298e+00, 0.1688554040e+00}
	sto3gCoeff = [3]float64{0.1543289673e+00, 0.5353281423e+00, 0.4446345422e+00}
)

var elemSymb = []string{"X", "H", "He"}

type PrimitiveGaussian struct {
	Alpha  float64    // exponent
	Coeff  float64    // contraction coefficient, normalization included
	Coords [3]float64 // center coordinates
}

// NormCoeff is the self-normalization factor of an s-type primitive.
func (p PrimitiveGaussian) NormCoeff() float64 {
	return math.Pow(2*p.Alpha/math.Pi, 0.75)
}

type AO struct {
	PGs []PrimitiveGaussian
}

type Atom struct {
	Z      int
	Coords [3]float64
}

// NewAtom looks the element symbol up in the symbol table.
func NewAtom(symb string, coords [3]float64) (Atom, error) {
	z := slices.Index(elemSymb, symb)
	if z < 1 {
		return Atom{}, fmt.Errorf("unknown element symbol %q", symb)
	}
	return Atom{Z: z, Coords: coords}, nil
}

// MakeSTO3G builds one contracted s-type AO at the given center. The raw
// exponents are scaled by zeta^2 and each coefficient absorbs the primitive
// self-normalization factor (2*alpha/pi)^(3/4).
func MakeSTO3G(center [3]float64, zeta float64) (AO, error) {
	if zeta <= 0 {
		return AO{}, fmt.Errorf("non-positive orbital exponent scale zeta = %g", zeta)
	}
	var ao AO
	for i := range sto3gAlpha {
		alpha := sto3gAlpha[i] * zeta * zeta
		if alpha <= 0 {
			return AO{}, fmt.Errorf("non-positive primitive exponent %g", alpha)
		}
		pg := PrimitiveGaussian{Alpha: alpha, Coords: center}
		pg.Coeff = sto3gCoeff[i] * pg.NormCoeff()
		ao.PGs = append(ao.PGs, pg)
	}
	return ao, nil
}

// Molecule holds the nuclei and the contracted basis built on them.
type Molecule struct {
	Atoms []Atom
	AOs   []AO
}

// NewH2 places two hydrogens dist bohr apart along x and builds one STO-3G
// AO per atom. dist is in the engine's native length unit (bohr); callers
// holding Angstrom geometries divide by a_B first.
func NewH2(dist, zeta float64) (*Molecule, error) {
	if dist <= 0 {
		return nil, fmt.Errorf("non-positive internuclear distance %g", dist)
	}
	centers := [2][3]float64{{0, 0, 0}, {dist, 0, 0}}
	var mol Molecule
	for _, c := range centers {
		atm, err := NewAtom("H", c)
		if err != nil {
			return nil, err
		}
		ao, err := MakeSTO3G(c, zeta)
		if err != nil {
			return nil, err
		}
		mol.Atoms = append(mol.Atoms, atm)
		mol.AOs = append(mol.AOs, ao)
	}
	return &mol, nil
}
