// 22 Mar 2021

package attr

import (
	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/moldata/vec"
)

// ConformerSet holds per-conformer arrays from trajectories or
// geometry optimisation. Everything is indexed by conformer number,
// and the inner slices of the force, velocity and displacement arrays
// are indexed by atom. The arrays are parallel. Nothing checks that
// their lengths agree. If a caller stores five energies and three
// force sets, that is the caller's problem.
type ConformerSet struct {
	Base
	dimensions    []uint16     // dimensionality of each conformer
	energies      []float64    // relative energies, preferably kJ/mol
	forces        [][]vec.Vec3 // per conformer, per atom
	velocities    [][]vec.Vec3
	displacements [][]vec.Vec3
	extra         []string // anything else, as strings
}

// NewConformerSet returns an empty conformer set.
func NewConformerSet() *ConformerSet {
	return &ConformerSet{Base: NewBase(KindConformer)}
}

func (c *ConformerSet) SetDimensions(d []uint16)        { c.dimensions = d }
func (c *ConformerSet) SetEnergies(e []float64)         { c.energies = e }
func (c *ConformerSet) SetForces(f [][]vec.Vec3)        { c.forces = f }
func (c *ConformerSet) SetVelocities(v [][]vec.Vec3)    { c.velocities = v }
func (c *ConformerSet) SetDisplacements(d [][]vec.Vec3) { c.displacements = d }
func (c *ConformerSet) SetExtra(s []string)             { c.extra = s }

func (c *ConformerSet) Dimensions() []uint16        { return c.dimensions }
func (c *ConformerSet) Energies() []float64         { return c.energies }
func (c *ConformerSet) Forces() [][]vec.Vec3        { return c.forces }
func (c *ConformerSet) Velocities() [][]vec.Vec3    { return c.velocities }
func (c *ConformerSet) Displacements() [][]vec.Vec3 { return c.displacements }
func (c *ConformerSet) Extra() []string             { return c.extra }

// ForceMatrix copies the forces of conformer i into an n_atom x 3
// matrix for routines that want flat float32 storage. Returns nil if
// there is no conformer i.
func (c *ConformerSet) ForceMatrix(i int) *matrix.FMatrix2d {
	return toMatrix(c.forces, i)
}

// VelocityMatrix is ForceMatrix for the velocity arrays.
func (c *ConformerSet) VelocityMatrix(i int) *matrix.FMatrix2d {
	return toMatrix(c.velocities, i)
}

func toMatrix(vv [][]vec.Vec3, i int) *matrix.FMatrix2d {
	if i < 0 || i >= len(vv) {
		return nil
	}
	m := matrix.NewFMatrix2d(len(vv[i]), 3)
	for j, v := range vv[i] {
		m.Mat[j][0] = float32(v.X)
		m.Mat[j][1] = float32(v.Y)
		m.Mat[j][2] = float32(v.Z)
	}
	return m
}

// Copy duplicates every array, inner slices included, so the copy can
// be grown or overwritten without touching the original.
func (c *ConformerSet) Copy() Attr {
	d := &ConformerSet{Base: c.Base}
	d.dimensions = append([]uint16(nil), c.dimensions...)
	d.energies = append([]float64(nil), c.energies...)
	d.forces = copyVecs(c.forces)
	d.velocities = copyVecs(c.velocities)
	d.displacements = copyVecs(c.displacements)
	d.extra = append([]string(nil), c.extra...)
	return d
}

func copyVecs(vv [][]vec.Vec3) [][]vec.Vec3 {
	if vv == nil {
		return nil
	}
	out := make([][]vec.Vec3, len(vv))
	for i, v := range vv {
		out[i] = append([]vec.Vec3(nil), v...)
	}
	return out
}
