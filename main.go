// main.go --  This file is part of the fockmap project.
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
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

var (
	WarningLogger *log.Logger
	InfoLogger    *log.Logger
	ErrorLogger   *log.Logger
	OutputLogger  *log.Logger
)

var (
	bondLen  = flag.Float64("r", 1.4011, "internuclear distance (bohr unless -angstrom)")
	zeta     = flag.Float64("zeta", 1.0, "orbital exponent scale factor")
	angstrom = flag.Bool("angstrom", false, "interpret -r as Angstrom")
	outFname = flag.String("o", "", "write output to `file` instead of stdout")
)

func initLog(w io.Writer) {
	InfoLogger = log.New(w, "INFO: ", log.Ldate|log.Ltime)
	WarningLogger = log.New(w, "WARNING: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(w, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	OutputLogger = log.New(w, "", 0)
}

func printOutputDelimiter() {
	OutputLogger.Println(strings.Repeat("-", 70))
}

// Report holds every intermediate of the pipeline alongside the energies, so
// each stage is inspectable and testable rather than print-only.
type Report struct {
	Dist       float64 // bohr
	SAO        [][]float64
	HAO        [][]float64
	ERIAO      [][][][]float64
	SAB        float64
	HMO        [][]float64
	ERIMO      [][][][]float64
	Vnn        float64
	CI         CIResult
	EHFTotal   float64
	EFCITotal  float64
}

// Compute runs the whole pipeline for an H2 molecule dist bohr apart.
func Compute(dist, zeta float64) (*Report, error) {
	mol, err := NewH2(dist, zeta)
	if err != nil {
		return nil, err
	}

	S := Overlap(mol.AOs)
	T := Kinetic(mol.AOs)
	Ven := ElecNuc(mol.AOs, mol.Atoms)
	h := CoreHamiltonian(T, Ven)
	eri := ElecElec(mol.AOs)

	C, err := BuildMOCoeffs(S[0][1])
	if err != nil {
		return nil, err
	}
	hmo := TransformOneElectron(C, h)
	erimo := TransformTwoElectron(C, eri)

	ci := SolveCI(hmo, erimo)
	vnn := NucNuc(mol.Atoms)

	return &Report{
		Dist:      dist,
		SAO:       S,
		HAO:       h,
		ERIAO:     eri,
		SAB:       S[0][1],
		HMO:       hmo,
		ERIMO:     erimo,
		Vnn:       vnn,
		CI:        ci,
		EHFTotal:  ci.EHF + vnn,
		EFCITotal: ci.EFCI + vnn,
	}, nil
}

func main() {
	flag.Parse()

	var w io.Writer = os.Stdout
	if *outFname != "" {
		file, err := os.OpenFile(*outFname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		w = file
	}
	initLog(w)

	dist := *bondLen
	if *angstrom {
		dist /= a_B
	}

	InfoLogger.Println("Starting fockmap...")
	OutputLogger.Println("Minimal-basis H2: R =", dist, "bohr, zeta =", *zeta)
	printOutputDelimiter()

	rep, err := Compute(dist, *zeta)
	if err != nil {
		ErrorLogger.Fatal(err)
	}

	OutputLogger.Println("AO overlap matrix S:")
	OutputLogger.Println(FmtMat(rep.SAO))
	OutputLogger.Println("AO core Hamiltonian h:")
	OutputLogger.Println(FmtMat(rep.HAO))
	OutputLogger.Println("MO core Hamiltonian h':")
	OutputLogger.Println(FmtMat(rep.HMO))
	printOutputDelimiter()

	OutputLogger.Println("S_AB                  = ", rep.SAB)
	OutputLogger.Println("(00|00)               = ", rep.ERIMO[0][0][0][0])
	OutputLogger.Println("(11|11)               = ", rep.ERIMO[1][1][1][1])
	OutputLogger.Println("Exchange K = (01|01)  = ", rep.CI.K)
	printOutputDelimiter()

	OutputLogger.Println("Nuclei repulsion energy: ", rep.Vnn, " a.u.")
	OutputLogger.Println("HF electronic energy:    ", rep.CI.EHF, " a.u.")
	OutputLogger.Println("HF total energy:         ", rep.EHFTotal, " a.u.")
	OutputLogger.Println("FCI electronic energy:   ", rep.CI.EFCI, " a.u.")
	OutputLogger.Println("FCI total energy:        ", rep.EFCITotal, " a.u.")
	OutputLogger.Println("Correlation energy:      ", rep.CI.Ecorr, " a.u.")
	OutputLogger.Println("Ground-state CI vector:  ", rep.CI.Ground)
	printOutputDelimiter()

	fmt.Println("Final total energy = ", rep.EFCITotal, " a.u.")
	InfoLogger.Println("Exiting fockmap...")
}
