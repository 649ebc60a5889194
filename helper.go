// helper.go --  This file is part of the fockmap project.
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

	"gonum.org/v1/gonum/mat"
)

func make2D(n int) [][]float64 {
	res := make([][]float64, n)
	for i := range res {
		res[i] = make([]float64, n)
	}
	return res
}

func make4D(n int) [][][][]float64 {
	res := make([][][][]float64, n)
	for i := range res {
		res[i] = make([][][]float64, n)
		for j := range res[i] {
			res[i][j] = make([][]float64, n)
			for k := range res[i][j] {
				res[i][j][k] = make([]float64, n)
			}
		}
	}
	return res
}

func flatten(arr [][]float64) []float64 {
	dim := len(arr)
	res := make([]float64, dim*dim)
	for i := range arr {
		for j := range arr[i] {
			res[i*dim+j] = arr[i][j]
		}
	}
	return res
}

func FmtMat(M [][]float64) string {
	return FmtDense(mat.NewDense(len(M), len(M), flatten(M)))
}

func FmtDense(D mat.Matrix) string {
	fa := mat.Formatted(D, mat.Prefix("    "), mat.Squeeze())
	return fmt.Sprintf("    %.8f", fa)
}
