// 11 Mar 2021
// Vectors and little matrices for molecular geometry. Everything is
// float64 and three dimensional. There is no clever storage here. If
// you want big matrices, use the matrix package.

package vec

import (
	"math"
)

// Vec3 is a point or direction in three dimensions.
type Vec3 struct{ X, Y, Z float64 }

// Add returns u + v.
func (u Vec3) Add(v Vec3) Vec3 { return Vec3{u.X + v.X, u.Y + v.Y, u.Z + v.Z} }

// Sub returns u - v.
func (u Vec3) Sub(v Vec3) Vec3 { return Vec3{u.X - v.X, u.Y - v.Y, u.Z - v.Z} }

// Scale returns s * u.
func (u Vec3) Scale(s float64) Vec3 { return Vec3{s * u.X, s * u.Y, s * u.Z} }

// Dot returns the scalar product.
func (u Vec3) Dot(v Vec3) float64 { return u.X*v.X + u.Y*v.Y + u.Z*v.Z }

// Cross returns the vector product.
func (u Vec3) Cross(v Vec3) Vec3 {
	return Vec3{
		u.Y*v.Z - u.Z*v.Y,
		u.Z*v.X - u.X*v.Z,
		u.X*v.Y - u.Y*v.X,
	}
}

// Len2 gives us the length squared, which is often all one needs.
func (u Vec3) Len2() float64 { return u.Dot(u) }

// Len returns the vector length.
func (u Vec3) Len() float64 { return math.Sqrt(u.Len2()) }

// Angle takes three points and returns the angle at b in radians.
// Numerical noise can push the cosine a bit outside [-1,1], so we
// clamp it rather than hand NaN to the caller.
func Angle(a, b, c Vec3) float64 {
	x1 := a.Sub(b)
	x2 := c.Sub(b)
	cosalpha := x1.Dot(x2) / (x1.Len() * x2.Len())
	if cosalpha > 1 {
		return 0
	}
	if cosalpha < -1 {
		return math.Pi
	}
	return math.Acos(cosalpha)
}

// Dihedral takes four points i, j, k, l and returns the torsion angle
// about the j-k axis in radians, in (-pi, pi]. Cis is zero, trans is
// pi, and the sign follows the IUPAC right-hand convention.
func Dihedral(ii, jj, kk, ll Vec3) float64 {
	r_ij := ii.Sub(jj)
	r_kj := kk.Sub(jj)
	r_kl := ll.Sub(kk)

	// components of r_ij and r_kl perpendicular to the central bond
	r_im := r_ij.Sub(r_kj.Scale(r_ij.Dot(r_kj) / r_kj.Len2()))
	r_ln := r_kl.Sub(r_kj.Scale(r_kl.Dot(r_kj) / r_kj.Len2()))

	var tau float64
	t_cos := r_im.Dot(r_ln) / (r_im.Len() * r_ln.Len())
	if t_cos > 1 { // Numerical errors can catch us. If so, no
		return 0 // need to call acos()
	}
	if t_cos < -1 {
		return math.Pi
	}
	tau = math.Acos(t_cos)

	if r_ij.Dot(r_kj.Cross(r_kl)) >= 0 {
		return tau
	}
	return -tau
}

// Mat3 is a 3x3 matrix stored row-major.
type Mat3 [3][3]float64

// FromRows builds a matrix whose rows are the three given vectors.
func FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{
		{r0.X, r0.Y, r0.Z},
		{r1.X, r1.Y, r1.Z},
		{r2.X, r2.Y, r2.Z},
	}
}

// Rows returns the three rows as vectors.
func (m Mat3) Rows() (Vec3, Vec3, Vec3) {
	return Vec3{m[0][0], m[0][1], m[0][2]},
		Vec3{m[1][0], m[1][1], m[1][2]},
		Vec3{m[2][0], m[2][1], m[2][2]}
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// Mul returns the matrix product m * n.
func (m Mat3) Mul(n Mat3) Mat3 {
	var p Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				p[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return p
}

// MulVec returns m * v, treating v as a column vector.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Det returns the determinant.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the matrix inverse via the adjugate. A singular
// matrix gives infinities or NaN. The caller has to know the matrix
// is invertible, which for a unit cell means the cell is not
// degenerate.
func (m Mat3) Inverse() Mat3 {
	d := m.Det()
	var inv Mat3
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) / d
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) / d
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) / d
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) / d
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) / d
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) / d
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) / d
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) / d
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) / d
	return inv
}

// Identity returns the identity matrix.
func Identity() Mat3 {
	return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}
