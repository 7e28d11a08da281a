// 8 Apr 2021

// Package unitcell is the crystallographic unit cell attribute. A
// cell can be given as six lattice parameters or as three translation
// vectors. Whichever was set last is authoritative and the other
// form is worked out when asked for. All angles are radians. If you
// have degrees, convert before calling. The code will not notice and
// the answers will be quietly wrong.
package unitcell

import (
	"math"

	"github.com/andrew-torda/moldata/attr"
	"github.com/andrew-torda/moldata/vec"
)

// Which representation the caller filled in last.
type repr byte

const (
	fromParams repr = iota // a, b, c, alpha, beta, gamma
	fromVecs               // v1, v2, v3
)

// UnitCell holds the lattice of a periodic structure plus an origin
// offset and the space group symbol. The derived matrices are built
// on every call, never cached, so they always reflect the current
// lattice.
type UnitCell struct {
	attr.Base
	a, b, c            float64
	alpha, beta, gamma float64 // radians
	offset, v1, v2, v3 vec.Vec3
	spaceGroup         string
	repr               repr
}

// New returns an empty unit cell attribute.
func New() *UnitCell {
	return &UnitCell{Base: attr.NewBase(attr.KindUnitCell)}
}

// SetParams fills the cell from lengths a, b, c and angles alpha,
// beta, gamma in radians. The cell vectors are not computed here.
// They come out of CellVectors when wanted.
func (u *UnitCell) SetParams(a, b, c, alpha, beta, gamma float64) {
	u.a, u.b, u.c = a, b, c
	u.alpha, u.beta, u.gamma = alpha, beta, gamma
	u.repr = fromParams
}

// SetVectors fills the cell from three translation vectors. Lengths
// and angles are not computed here.
func (u *UnitCell) SetVectors(v1, v2, v3 vec.Vec3) {
	u.v1, u.v2, u.v3 = v1, v2, v3
	u.repr = fromVecs
}

// SetOffset sets the origin offset.
func (u *UnitCell) SetOffset(v vec.Vec3) { u.offset = v }

// SetSpaceGroup stores the space group symbol. It is not checked
// against any symbol table and no Symmetry attribute is made. The
// two stay independent.
func (u *UnitCell) SetSpaceGroup(sg string) { u.spaceGroup = sg }

// A returns the first cell length, deriving it from the vectors if
// those are what we were given. B, C and the angle accessors work
// the same way.
func (u *UnitCell) A() float64 {
	if u.repr == fromVecs {
		return u.v1.Len()
	}
	return u.a
}

func (u *UnitCell) B() float64 {
	if u.repr == fromVecs {
		return u.v2.Len()
	}
	return u.b
}

func (u *UnitCell) C() float64 {
	if u.repr == fromVecs {
		return u.v3.Len()
	}
	return u.c
}

// Alpha is the angle between v2 and v3, in radians.
func (u *UnitCell) Alpha() float64 {
	if u.repr == fromVecs {
		return vecAngle(u.v2, u.v3)
	}
	return u.alpha
}

// Beta is the angle between v1 and v3, in radians.
func (u *UnitCell) Beta() float64 {
	if u.repr == fromVecs {
		return vecAngle(u.v1, u.v3)
	}
	return u.beta
}

// Gamma is the angle between v1 and v2, in radians.
func (u *UnitCell) Gamma() float64 {
	if u.repr == fromVecs {
		return vecAngle(u.v1, u.v2)
	}
	return u.gamma
}

func vecAngle(a, b vec.Vec3) float64 {
	return vec.Angle(a, vec.Vec3{}, b)
}

func (u *UnitCell) Offset() vec.Vec3   { return u.offset }
func (u *UnitCell) SpaceGroup() string { return u.spaceGroup }

// CellVectors returns the three translation vectors. If the cell was
// given as vectors they come back as stored. Otherwise they are
// built in the standard crystallographic frame: v1 along x, v2 in
// the xy plane. A degenerate cell (sin gamma zero, or angles that
// cannot close a parallelepiped) gives NaN components. We do not
// check for that. Feasible angles are the caller's precondition.
func (u *UnitCell) CellVectors() (vec.Vec3, vec.Vec3, vec.Vec3) {
	if u.repr == fromVecs {
		return u.v1, u.v2, u.v3
	}
	cosA, cosB, cosG := math.Cos(u.alpha), math.Cos(u.beta), math.Cos(u.gamma)
	sinG := math.Sin(u.gamma)

	v1 := vec.Vec3{X: u.a}
	v2 := vec.Vec3{X: u.b * cosG, Y: u.b * sinG}
	v3 := vec.Vec3{
		X: u.c * cosB,
		Y: u.c * (cosA - cosB*cosG) / sinG,
		Z: u.c * math.Sqrt(1-cosA*cosA-cosB*cosB-cosG*cosG+2*cosA*cosB*cosG) / sinG,
	}
	return v1, v2, v3
}

// CellMatrix returns the cell as a matrix whose rows are v1, v2, v3.
func (u *UnitCell) CellMatrix() vec.Mat3 {
	v1, v2, v3 := u.CellVectors()
	return vec.FromRows(v1, v2, v3)
}

// OrthoMatrix returns the orthogonalisation matrix M, with the cell
// vectors as its columns, so cartesian = M * fractional with both as
// column vectors.
func (u *UnitCell) OrthoMatrix() vec.Mat3 {
	return u.CellMatrix().Transpose()
}

// FractionalMatrix returns the inverse of OrthoMatrix, taking
// cartesian to fractional coordinates. On a degenerate cell the
// result is NaN or infinities, as with CellVectors.
func (u *UnitCell) FractionalMatrix() vec.Mat3 {
	return u.OrthoMatrix().Inverse()
}

// ToCartesian maps fractional coordinates to cartesian.
func (u *UnitCell) ToCartesian(frac vec.Vec3) vec.Vec3 {
	return u.OrthoMatrix().MulVec(frac)
}

// ToFractional maps cartesian coordinates to fractional.
func (u *UnitCell) ToFractional(cart vec.Vec3) vec.Vec3 {
	return u.FractionalMatrix().MulVec(cart)
}

// Copy duplicates the cell.
func (u *UnitCell) Copy() attr.Attr {
	v := *u
	return &v
}
