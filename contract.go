// contract.go --  This file is part of the fockmap project.
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

// Contraction of primitive integrals into AO-level tensors: every AO-level
// element is the coefficient-weighted sum over all primitive combinations.

import "math"

// Overlap builds the AO overlap matrix S.
func Overlap(aos []AO) [][]float64 {
	res := make2D(len(aos))
	for i := range aos {
		for j := range aos {
			for _, pk := range aos[i].PGs {
				for _, pl := range aos[j].PGs {
					res[i][j] += pk.Coeff * pl.Coeff * primOverlap(pk.Alpha, pl.Alpha, pk.Coords, pl.Coords)
				}
			}
		}
	}
	return res
}

// Kinetic builds the AO kinetic-energy matrix T.
func Kinetic(aos []AO) [][]float64 {
	res := make2D(len(aos))
	for i := range aos {
		for j := range aos {
			for _, pk := range aos[i].PGs {
				for _, pl := range aos[j].PGs {
					res[i][j] += pk.Coeff * pl.Coeff * primKinetic(pk.Alpha, pl.Alpha, pk.Coords, pl.Coords)
				}
			}
		}
	}
	return res
}

// ElecNuc builds the AO nuclear-attraction matrix Ven, summed over nuclei.
func ElecNuc(aos []AO, atoms []Atom) [][]float64 {
	res := make2D(len(aos))
	for _, at := range atoms {
		for i := range aos {
			for j := range aos {
				for _, pk := range aos[i].PGs {
					for _, pl := range aos[j].PGs {
						res[i][j] += pk.Coeff * pl.Coeff *
							primNuclear(pk.Alpha, pl.Alpha, pk.Coords, pl.Coords, at.Coords, float64(at.Z))
					}
				}
			}
		}
	}
	return res
}

// CoreHamiltonian is the one-electron Hamiltonian h = T + Ven.
func CoreHamiltonian(T, Ven [][]float64) [][]float64 {
	res := make2D(len(T))
	for i := range T {
		for j := range T[i] {
			res[i][j] = T[i][j] + Ven[i][j]
		}
	}
	return res
}

// ElecElec builds the AO two-electron tensor (ij|kl) in chemist notation.
func ElecElec(aos []AO) [][][][]float64 {
	res := make4D(len(aos))
	for i := range aos {
		for j := range aos {
			for k := range aos {
				for l := range aos {
					for _, pi := range aos[i].PGs {
						for _, pj := range aos[j].PGs {
							for _, pk := range aos[k].PGs {
								for _, pl := range aos[l].PGs {
									res[i][j][k][l] += pi.Coeff * pj.Coeff * pk.Coeff * pl.Coeff *
										primRepulsion(pi.Alpha, pj.Alpha, pk.Alpha, pl.Alpha,
											pi.Coords, pj.Coords, pk.Coords, pl.Coords)
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

// NucNuc is the point-charge repulsion energy between all nucleus pairs.
func NucNuc(atoms []Atom) float64 {
	res := 0.0
	for i := range atoms {
		for j := 0; j < i; j++ {
			res += float64(atoms[i].Z) * float64(atoms[j].Z) / math.Sqrt(QQ(atoms[i].Coords, atoms[j].Coords))
		}
	}
	return res
}
