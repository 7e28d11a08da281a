// 25 Mar 2021

package attr

// Angle is one three-atom bond angle: a vertex and its two termini,
// with the angle in radians. The termini are canonicalised by
// SortByIndex so that a-v-b and b-v-a compare equal.
type Angle struct {
	vertex  Atom
	termini [2]Atom
	radians float64
}

// NewAngle returns an angle with its atoms set and termini sorted.
// The angle value starts at zero.
func NewAngle(vertex, a, b Atom) *Angle {
	ang := new(Angle)
	ang.SetAtoms(vertex, a, b)
	return ang
}

// SetAtoms sets the vertex and termini, then sorts the termini.
func (ang *Angle) SetAtoms(vertex, a, b Atom) {
	ang.vertex = vertex
	ang.termini[0] = a
	ang.termini[1] = b
	ang.SortByIndex()
}

// SortByIndex puts the termini in ascending order of atom index, so
// angle identity does not depend on which terminus came first.
func (ang *Angle) SortByIndex() {
	if ang.termini[0] != nil && ang.termini[1] != nil &&
		ang.termini[0].Idx() > ang.termini[1].Idx() {
		ang.termini[0], ang.termini[1] = ang.termini[1], ang.termini[0]
	}
}

// SetAngle stores the angle in radians.
func (ang *Angle) SetAngle(radians float64) { ang.radians = radians }

// Angle returns the stored angle in radians.
func (ang *Angle) Angle() float64 { return ang.radians }

// Atoms returns vertex, then the termini in canonical order.
func (ang *Angle) Atoms() (Atom, Atom, Atom) {
	return ang.vertex, ang.termini[0], ang.termini[1]
}

// Clear forgets the atoms and the angle.
func (ang *Angle) Clear() {
	*ang = Angle{}
}

// Equal reports whether two angles have the same vertex and the same
// termini, in either order. The stored angle values play no part.
func (ang *Angle) Equal(other *Angle) bool {
	return ang.vertex == other.vertex &&
		ang.termini[0] == other.termini[0] &&
		ang.termini[1] == other.termini[1]
}

// AngleSet holds the bond angles of a structure, one per distinct
// vertex and terminus pair, in no particular order.
type AngleSet struct {
	Base
	angles []Angle
}

// NewAngleSet returns an empty angle set.
func NewAngleSet() *AngleSet {
	return &AngleSet{Base: NewBase(KindAngle)}
}

// Add appends a copy of the angle.
func (s *AngleSet) Add(ang *Angle) {
	s.angles = append(s.angles, *ang)
}

// Angles returns the set's own storage.
func (s *AngleSet) Angles() []Angle { return s.angles }

func (s *AngleSet) Size() int { return len(s.angles) }

func (s *AngleSet) Clear() { s.angles = nil }

// FillAngleArray flattens the set into vertex, terminus, terminus
// index triples for index-based consumers. The returned slice is the
// caller's to keep.
func (s *AngleSet) FillAngleArray() [][3]int {
	out := make([][3]int, len(s.angles))
	for i := range s.angles {
		ang := &s.angles[i]
		out[i] = [3]int{ang.vertex.Idx(), ang.termini[0].Idx(), ang.termini[1].Idx()}
	}
	return out
}

// Copy duplicates the angle list. Atom references stay shared with
// the host graph.
func (s *AngleSet) Copy() Attr {
	u := &AngleSet{Base: s.Base}
	u.angles = append([]Angle(nil), s.angles...)
	return u
}
