// mo.go --  This file is part of the fockmap project.
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

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// BuildMOCoeffs returns the 2x2 MO coefficient matrix for a homonuclear
// two-AO system with AO overlap s. Column 0 is the symmetric (bonding)
// combination normalized by 1/sqrt(2+2s), column 1 the antisymmetric
// (antibonding) one normalized by 1/sqrt(2-2s). The symmetric system needs
// no SCF iteration: this basis diagonalizes the Fock operator by symmetry.
func BuildMOCoeffs(s float64) (*mat.Dense, error) {
	if s <= 0 || s >= 1 {
		return nil, fmt.Errorf("AO overlap %g outside (0,1)", s)
	}
	cg := 1 / math.Sqrt(2+2*s)
	cu := 1 / math.Sqrt(2-2*s)
	return mat.NewDense(2, 2, []float64{
		cg, cu,
		cg, -cu,
	}), nil
}

// InverseCoeffs inverts the MO coefficient matrix, for transforming MO
// tensors back to the AO basis.
func InverseCoeffs(C *mat.Dense) (*mat.Dense, error) {
	var inv mat.Dense
	if err := inv.Inverse(C); err != nil {
		return nil, err
	}
	return &inv, nil
}

// TransformOneElectron applies the sandwich Ct * h * C.
func TransformOneElectron(C *mat.Dense, h [][]float64) [][]float64 {
	n := len(h)
	res := mat.NewDense(n, n, flatten(h))
	res.Mul(res, C)
	res.Mul(C.T(), res)
	out := make2D(n)
	for i := range out {
		copy(out[i], res.RawRowView(i))
	}
	return out
}

// TransformTwoElectron contracts all four indices of the AO two-electron
// tensor through C. Written for general N even though N = 2 here; the naive
// eightfold loop nest is exact and cheap at this dimension.
func TransformTwoElectron(C *mat.Dense, eri [][][][]float64) [][][][]float64 {
	n := len(eri)
	res := make4D(n)
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			for r := 0; r < n; r++ {
				for s := 0; s < n; s++ {
					for mu := 0; mu < n; mu++ {
						for nu := 0; nu < n; nu++ {
							for la := 0; la < n; la++ {
								for si := 0; si < n; si++ {
									res[p][q][r][s] += C.At(mu, p) * C.At(nu, q) * C.At(la, r) * C.At(si, s) *
										eri[mu][nu][la][si]
								}
							}
						}
					}
				}
			}
		}
	}
	return res
}

// ERISymmetryRMS is the root-mean-square deviation of the tensor from the
// 8-fold permutational symmetry of real integrals, (ij|kl) = (ji|kl) =
// (ij|lk) = (kl|ij). Nonzero beyond floating-point noise means a formula or
// indexing defect.
func ERISymmetryRMS(eri [][][][]float64) float64 {
	var devs []float64
	n := len(eri)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := 0; l < n; l++ {
					v := eri[i][j][k][l]
					for _, w := range []float64{eri[j][i][k][l], eri[i][j][l][k], eri[k][l][i][j]} {
						d := v - w
						devs = append(devs, d*d)
					}
				}
			}
		}
	}
	return math.Sqrt(stat.Mean(devs, nil))
}

// OrthonormalityRMS measures Ct*S*C against the identity.
func OrthonormalityRMS(C *mat.Dense, S [][]float64) float64 {
	n := len(S)
	m := mat.NewDense(n, n, flatten(S))
	m.Mul(m, C)
	m.Mul(C.T(), m)
	var devs []float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			d := m.At(i, j) - want
			devs = append(devs, d*d)
		}
	}
	return math.Sqrt(stat.Mean(devs, nil))
}
