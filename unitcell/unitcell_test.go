// 9 Apr 2021

package unitcell_test

import (
	"math"
	"testing"

	"github.com/andrew-torda/moldata/attr"
	. "github.com/andrew-torda/moldata/unitcell"
	"github.com/andrew-torda/moldata/vec"
)

const eps = 1e-9

func close(x, y float64) bool { return math.Abs(x-y) < eps }

func vClose(u, v vec.Vec3) bool {
	return close(u.X, v.X) && close(u.Y, v.Y) && close(u.Z, v.Z)
}

func isIdentity(m vec.Mat3) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if !close(m[i][j], want) {
				return false
			}
		}
	}
	return true
}

func TestCubic(t *testing.T) {
	u := New()
	u.SetParams(5, 5, 5, math.Pi/2, math.Pi/2, math.Pi/2)
	v1, v2, v3 := u.CellVectors()
	if !vClose(v1, vec.Vec3{X: 5}) || !vClose(v2, vec.Vec3{Y: 5}) || !vClose(v3, vec.Vec3{Z: 5}) {
		t.Fatal("cubic cell vectors wrong:", v1, v2, v3)
	}
}

// deg makes the table below readable. The library itself only ever
// sees radians.
func deg(d float64) float64 { return d * math.Pi / 180 }

// Cells of each crystal system. The round trip law,
// fractional x ortho = identity, has to hold for all of them.
var celltests = []struct {
	name               string
	a, b, c            float64
	alpha, beta, gamma float64
}{
	{"cubic", 5, 5, 5, deg(90), deg(90), deg(90)},
	{"tetragonal", 4, 4, 7, deg(90), deg(90), deg(90)},
	{"orthorhombic", 3, 4, 5, deg(90), deg(90), deg(90)},
	{"hexagonal", 3.2, 3.2, 5.2, deg(90), deg(90), deg(120)},
	{"monoclinic", 5.1, 6.2, 7.3, deg(90), deg(104), deg(90)},
	{"triclinic", 6.1, 7.2, 8.3, deg(75), deg(85), deg(95)},
	{"rhombohedral", 5.4, 5.4, 5.4, deg(61), deg(61), deg(61)},
}

func TestRoundTrip(t *testing.T) {
	for _, tt := range celltests {
		u := New()
		u.SetParams(tt.a, tt.b, tt.c, tt.alpha, tt.beta, tt.gamma)
		if m := u.FractionalMatrix().Mul(u.OrthoMatrix()); !isIdentity(m) {
			t.Fatalf("%s: fractional x ortho is not identity:\n%v", tt.name, m)
		}
		if m := u.OrthoMatrix().Mul(u.FractionalMatrix()); !isIdentity(m) {
			t.Fatalf("%s: ortho x fractional is not identity:\n%v", tt.name, m)
		}
	}
}

func TestCoordRoundTrip(t *testing.T) {
	u := New()
	u.SetParams(6.1, 7.2, 8.3, deg(75), deg(85), deg(95))
	fracs := []vec.Vec3{
		{X: 0, Y: 0, Z: 0}, {X: 0.5, Y: 0.5, Z: 0.5},
		{X: 0.1, Y: 0.7, Z: 0.3}, {X: -0.2, Y: 1.4, Z: 0.9},
	}
	for _, f := range fracs {
		if got := u.ToFractional(u.ToCartesian(f)); !vClose(got, f) {
			t.Fatal("coordinate round trip broke for", f, "got", got)
		}
	}
}

// Lengths and angles must come back from the vector representation,
// and the vectors built from lengths and angles must describe the
// same cell.
func TestVectorRepr(t *testing.T) {
	for _, tt := range celltests {
		u := New()
		u.SetParams(tt.a, tt.b, tt.c, tt.alpha, tt.beta, tt.gamma)
		v1, v2, v3 := u.CellVectors()

		w := New()
		w.SetVectors(v1, v2, v3)
		if !close(w.A(), tt.a) || !close(w.B(), tt.b) || !close(w.C(), tt.c) {
			t.Fatalf("%s: lengths from vectors: got %g %g %g", tt.name, w.A(), w.B(), w.C())
		}
		if !close(w.Alpha(), tt.alpha) || !close(w.Beta(), tt.beta) || !close(w.Gamma(), tt.gamma) {
			t.Fatalf("%s: angles from vectors: got %g %g %g",
				tt.name, w.Alpha(), w.Beta(), w.Gamma())
		}
		// vectors set directly come back untouched
		g1, g2, g3 := w.CellVectors()
		if !vClose(g1, v1) || !vClose(g2, v2) || !vClose(g3, v3) {
			t.Fatalf("%s: stored vectors came back changed", tt.name)
		}
	}
}

// The last setter wins. A cell given parameters after vectors has to
// answer from the parameters.
func TestLastSetWins(t *testing.T) {
	u := New()
	u.SetVectors(vec.Vec3{X: 2}, vec.Vec3{Y: 2}, vec.Vec3{Z: 2})
	u.SetParams(5, 5, 5, math.Pi/2, math.Pi/2, math.Pi/2)
	if !close(u.A(), 5) {
		t.Fatal("parameters did not take over from vectors")
	}
	v1, _, _ := u.CellVectors()
	if !vClose(v1, vec.Vec3{X: 5}) {
		t.Fatal("cell vectors still from the old representation")
	}
}

func TestSpaceGroupAndOffset(t *testing.T) {
	u := New()
	u.SetSpaceGroup("P 21 21 21") // stored verbatim, never validated
	if u.SpaceGroup() != "P 21 21 21" {
		t.Fatal("space group not stored")
	}
	u.SetOffset(vec.Vec3{X: 1, Y: 2, Z: 3})
	if u.Offset() != (vec.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Fatal("offset not stored")
	}
	if u.Kind() != attr.KindUnitCell {
		t.Fatal("unit cell has wrong kind tag")
	}
	if u.Name() != "UnitCell" {
		t.Fatal("default name wrong:", u.Name())
	}
}

func TestCopy(t *testing.T) {
	u := New()
	u.SetParams(3, 4, 5, deg(90), deg(104), deg(90))
	u.SetSpaceGroup("C 2")
	c := u.Copy().(*UnitCell)
	c.SetParams(1, 1, 1, deg(90), deg(90), deg(90))
	c.SetName("other")
	if !close(u.A(), 3) || u.Name() == "other" {
		t.Fatal("mutating the copy touched the original")
	}
	if c.SpaceGroup() != "C 2" {
		t.Fatal("copy lost the space group")
	}
}

// A degenerate cell must give NaN, not panic. The caller owns the
// precondition, the library just does the arithmetic.
func TestDegenerate(t *testing.T) {
	u := New()
	u.SetParams(5, 5, 5, deg(30), deg(150), deg(90)) // cannot close
	_, _, v3 := u.CellVectors()
	if !math.IsNaN(v3.Z) {
		t.Fatal("impossible angle combination should give NaN, got", v3.Z)
	}
}
