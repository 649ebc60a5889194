// ci.go --  This file is part of the fockmap project.
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

import "math"

// HFElectronicEnergy is the restricted HF energy with both electrons in the
// lowest MO: 2*h_00 + (00|00).
func HFElectronicEnergy(hmo [][]float64, erimo [][][][]float64) float64 {
	return 2*hmo[0][0] + erimo[0][0][0][0]
}

// CIResult carries the 2x2 configuration-interaction solution over the two
// closed-shell configurations (both electrons bonding, both antibonding).
type CIResult struct {
	Diag0, Diag1 float64    // configuration self-energies
	K            float64    // exchange integral coupling the configurations
	EHF          float64    // electronic HF energy (= Diag0)
	EFCI         float64    // electronic FCI ground-state energy
	Ecorr        float64    // EFCI - EHF
	Ground       [2]float64 // normalized ground-state CI vector
}

// SolveCI builds and analytically diagonalizes the 2x2 CI Hamiltonian. The
// diagonal holds the one- plus two-electron self-energy of each doubly
// occupied configuration; the off-diagonal is the exchange integral
// K = (01|01). The ground eigenvalue of [[d0, K], [K, d1]] is
// avg - sqrt(diff^2 + K^2).
func SolveCI(hmo [][]float64, erimo [][][][]float64) CIResult {
	d0 := 2*hmo[0][0] + erimo[0][0][0][0]
	d1 := 2*hmo[1][1] + erimo[1][1][1][1]
	k := erimo[0][1][0][1]

	avg := (d0 + d1) / 2
	diff := (d0 - d1) / 2
	e := avg - math.Hypot(diff, k)

	// Eigenvector of the 2x2 from its first row: v1/v0 = (e - d0)/k.
	v0, v1 := k, e-d0
	if norm := math.Hypot(v0, v1); norm > 0 {
		v0 /= norm
		v1 /= norm
	} else {
		v0, v1 = 1, 0
	}

	return CIResult{
		Diag0:  d0,
		Diag1:  d1,
		K:      k,
		EHF:    d0,
		EFCI:   e,
		Ecorr:  e - d0,
		Ground: [2]float64{v0, v1},
	}
}
