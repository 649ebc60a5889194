// integrals.go --  This file is part of the fockmap project.
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

// Closed-form integrals over s-type primitive Gaussians.
// Formulas follow Szabo & Ostlund, appendix A.

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/mathext"
)

// Below boysTol the Boys function is evaluated by its limiting value,
// avoiding the 0/0 at the origin.
const boysTol = 1e-15

// QQ returns the squared distance between two centers.
func QQ(v1, v2 [3]float64) float64 {
	vv1 := mat.NewVecDense(3, v1[:])
	vv2 := mat.NewVecDense(3, v2[:])
	dist := mat.NewVecDense(3, nil)
	dist.SubVec(vv2, vv1)
	dist.MulElemVec(dist, dist)
	return mat.Sum(dist)
}

// CalcP returns a1*v1 + a2*v2, the unnormalized composite-Gaussian center.
func CalcP(a1, a2 float64, v1, v2 [3]float64) [3]float64 {
	vv1 := mat.NewVecDense(3, v1[:])
	vv2 := mat.NewVecDense(3, v2[:])
	vres := mat.NewVecDense(3, nil)
	vv1.ScaleVec(a1, vv1)
	vres.AddScaledVec(vv1, a2, vv2)
	var res [3]float64
	for i := range res {
		res[i] = vres.AtVec(i)
	}
	return res
}

// CalcPp divides a composite center by the total exponent.
func CalcPp(a float64, v [3]float64) [3]float64 {
	var res [3]float64
	for i := range res {
		res[i] = v[i] / a
	}
	return res
}

// boys is the Boys function F_n(x). For x near zero the analytic limit
// 1/(2n+1) applies; elsewhere it is the regularized lower incomplete gamma
// function, which for n = 0 reduces to 0.5*sqrt(pi/x)*erf(sqrt(x)).
func boys(x float64, n int) float64 {
	nf := float64(n)
	if x < boysTol {
		return 1.0 / (2.0*nf + 1)
	}
	return mathext.GammaIncReg(nf+0.5, x) * math.Gamma(nf+0.5) / (2.0 * math.Pow(x, nf+0.5))
}

// primOverlap is (pi/g)^(3/2) * exp(-a*b/g * |Ra-Rb|^2) with g = a+b.
func primOverlap(a, b float64, Ra, Rb [3]float64) float64 {
	g := a + b
	return math.Pow(math.Pi/g, 1.5) * math.Exp(-a*b/g*QQ(Ra, Rb))
}

// primKinetic is mu*(3 - 2*mu*R^2) times the overlap, mu = a*b/(a+b).
func primKinetic(a, b float64, Ra, Rb [3]float64) float64 {
	mu := a * b / (a + b)
	return mu * (3 - 2*mu*QQ(Ra, Rb)) * primOverlap(a, b, Ra, Rb)
}

// primNuclear is the attraction of the a,b charge distribution to a point
// charge Z at Rc.
func primNuclear(a, b float64, Ra, Rb, Rc [3]float64, Z float64) float64 {
	g := a + b
	mu := a * b / g
	Rp := CalcPp(g, CalcP(a, b, Ra, Rb))
	return -Z * (2 * math.Pi / g) * math.Exp(-mu*QQ(Ra, Rb)) * boys(g*QQ(Rp, Rc), 0)
}

// primRepulsion is the two-electron repulsion (ab|cd) over four primitives,
// via the two composite Gaussians at Rp (exponent p) and Rq (exponent q).
func primRepulsion(a, b, c, d float64, Ra, Rb, Rc, Rd [3]float64) float64 {
	p := a + b
	q := c + d
	Rp := CalcPp(p, CalcP(a, b, Ra, Rb))
	Rq := CalcPp(q, CalcP(c, d, Rc, Rd))
	pre := 2 * math.Pow(math.Pi, 2.5) / (p * q * math.Sqrt(p+q))
	return pre * math.Exp(-a*b/p*QQ(Ra, Rb)) * math.Exp(-c*d/q*QQ(Rc, Rd)) *
		boys(p*q/(p+q)*QQ(Rp, Rq), 0)
}
