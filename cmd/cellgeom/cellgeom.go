// 13 apr 2021

package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path"
	"strings"

	"github.com/andrew-torda/moldata/unitcell"
	"github.com/andrew-torda/moldata/vec"
)

const (
	exitSuccess = 0
	exitFailure = iota
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "-a x -b x -c x [-alpha x -beta x -gamma x]")
	flag.PrintDefaults()
}

// parseXyz reads a comma separated triple like "0.5,0.5,0.5".
func parseXyz(s string) (vec.Vec3, error) {
	var v vec.Vec3
	r := strings.NewReader(s)
	if _, err := fmt.Fscanf(r, "%g,%g,%g", &v.X, &v.Y, &v.Z); err != nil {
		return v, fmt.Errorf("cannot parse %q as x,y,z: %w", s, err)
	}
	return v, nil
}

func prMatrix(name string, m vec.Mat3) {
	fmt.Println(name)
	for i := 0; i < 3; i++ {
		fmt.Printf("  %10.5f %10.5f %10.5f\n", m[i][0], m[i][1], m[i][2])
	}
}

func mymain() int {
	a := flag.Float64("a", 0, "cell length a")
	b := flag.Float64("b", 0, "cell length b")
	c := flag.Float64("c", 0, "cell length c")
	alpha := flag.Float64("alpha", 90, "cell angle alpha in degrees")
	beta := flag.Float64("beta", 90, "cell angle beta in degrees")
	gamma := flag.Float64("gamma", 90, "cell angle gamma in degrees")
	frac := flag.String("frac", "", "fractional coordinate to convert, as x,y,z")
	flag.Usage = usage
	flag.Parse()

	if *a <= 0 || *b <= 0 || *c <= 0 {
		fmt.Fprintln(os.Stderr, "cell lengths must be given and positive")
		usage()
		return exitFailure
	}

	const degToRad = math.Pi / 180
	cell := unitcell.New()
	cell.SetParams(*a, *b, *c, *alpha*degToRad, *beta*degToRad, *gamma*degToRad)

	v1, v2, v3 := cell.CellVectors()
	fmt.Printf("v1 %10.5f %10.5f %10.5f\n", v1.X, v1.Y, v1.Z)
	fmt.Printf("v2 %10.5f %10.5f %10.5f\n", v2.X, v2.Y, v2.Z)
	fmt.Printf("v3 %10.5f %10.5f %10.5f\n", v3.X, v3.Y, v3.Z)
	prMatrix("orthogonalisation matrix", cell.OrthoMatrix())
	prMatrix("fractionalisation matrix", cell.FractionalMatrix())

	if *frac != "" {
		f, err := parseXyz(*frac)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitFailure
		}
		cart := cell.ToCartesian(f)
		back := cell.ToFractional(cart)
		fmt.Printf("frac %8.4f %8.4f %8.4f -> cart %10.5f %10.5f %10.5f\n",
			f.X, f.Y, f.Z, cart.X, cart.Y, cart.Z)
		fmt.Printf("and back to frac %8.4f %8.4f %8.4f\n", back.X, back.Y, back.Z)
	}
	return exitSuccess
}

func main() { os.Exit(mymain()) }
