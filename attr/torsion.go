// 25 Mar 2021
// Torsions for conformational work. One Torsion is one rotatable
// central bond. Several dihedrals can share that bond (think of the
// three hydrogens on a methyl group) so the distal atoms live in a
// list of observations.

package attr

// distal is one A,D pair around the central bond, with its dihedral
// angle in radians.
type distal struct {
	a, d    Atom
	radians float64
}

// Torsion holds the two central atoms of an A-B-C-D dihedral and all
// the (A, D, angle) observations around them. A Torsion with no
// central pair is empty and gets its pair from the first AddTorsion.
type Torsion struct {
	b, c Atom
	ads  []distal
}

// Empty reports whether the central pair has not been set yet.
func (t *Torsion) Empty() bool { return t.b == nil && t.c == nil }

// Clear puts the torsion back in its empty state.
func (t *Torsion) Clear() {
	t.b = nil
	t.c = nil
	t.ads = nil
}

// BC returns the two central atoms in their stored orientation.
func (t *Torsion) BC() (Atom, Atom) { return t.b, t.c }

// Size is the number of distal observations.
func (t *Torsion) Size() int { return len(t.ads) }

// AddTorsion adds the dihedral a-b-c-d. On an empty torsion it fixes
// the central pair to (b, c). Otherwise (b, c) must match the stored
// pair in the stored orientation. (c, b) does not count. On a
// mismatch nothing changes and we return false. The angle of the new
// observation starts at zero. Set it with SetAngle.
func (t *Torsion) AddTorsion(a, b, c, d Atom) bool {
	if t.Empty() {
		t.b = b
		t.c = c
	} else if t.b != b || t.c != c {
		return false
	}
	t.ads = append(t.ads, distal{a: a, d: d})
	return true
}

// SetAngle stores the dihedral angle in radians for observation
// index. Returns false, changing nothing, if index is out of range.
func (t *Torsion) SetAngle(radians float64, index int) bool {
	if index < 0 || index >= len(t.ads) {
		return false
	}
	t.ads[index].radians = radians
	return true
}

// Angle returns the stored angle of observation index in radians.
// The second return is false if index is out of range.
func (t *Torsion) Angle(index int) (float64, bool) {
	if index < 0 || index >= len(t.ads) {
		return 0, false
	}
	return t.ads[index].radians, true
}

// AD returns the distal pair of observation index.
func (t *Torsion) AD(index int) (Atom, Atom, bool) {
	if index < 0 || index >= len(t.ads) {
		return nil, nil, false
	}
	return t.ads[index].a, t.ads[index].d, true
}

// Quads returns all a,b,c,d atom quadruples in insertion order.
func (t *Torsion) Quads() [][4]Atom {
	out := make([][4]Atom, len(t.ads))
	for i, ad := range t.ads {
		out[i] = [4]Atom{ad.a, t.b, t.c, ad.d}
	}
	return out
}

// IsProtonRotor reports whether every distal atom, A and D across all
// observations, is a hydrogen. Such torsions do not move any heavy
// atom and conformational searches usually skip them. An empty
// torsion is not a proton rotor.
func (t *Torsion) IsProtonRotor() bool {
	if len(t.ads) == 0 {
		return false
	}
	for _, ad := range t.ads {
		if !ad.a.IsHydrogen() || !ad.d.IsHydrogen() {
			return false
		}
	}
	return true
}

// copyTorsion duplicates the observation list. The atom references
// still point into the host graph.
func (t *Torsion) copyTorsion() Torsion {
	u := Torsion{b: t.b, c: t.c}
	u.ads = append([]distal(nil), t.ads...)
	return u
}

// TorsionSet holds the torsions of a structure, one per central bond,
// in no particular order. Filled in by whatever walks the bond graph.
type TorsionSet struct {
	Base
	torsions []Torsion
}

// NewTorsionSet returns an empty torsion set.
func NewTorsionSet() *TorsionSet {
	return &TorsionSet{Base: NewBase(KindTorsion)}
}

// Add appends a copy of the torsion.
func (s *TorsionSet) Add(t *Torsion) {
	s.torsions = append(s.torsions, t.copyTorsion())
}

// Torsions returns the set's own storage.
func (s *TorsionSet) Torsions() []Torsion { return s.torsions }

func (s *TorsionSet) Size() int { return len(s.torsions) }

func (s *TorsionSet) Clear() { s.torsions = nil }

// FillTorsionArray flattens the set into atom index quadruples for
// index-based geometry routines. Indices are whatever Atom.Idx
// reports. Torsions with no observations are left out. The returned
// slice is the caller's.
func (s *TorsionSet) FillTorsionArray() [][4]int {
	var out [][4]int
	for i := range s.torsions {
		t := &s.torsions[i]
		for _, ad := range t.ads {
			out = append(out, [4]int{ad.a.Idx(), t.b.Idx(), t.c.Idx(), ad.d.Idx()})
		}
	}
	return out
}

// Copy duplicates the set and each torsion's observation list.
func (s *TorsionSet) Copy() Attr {
	u := &TorsionSet{Base: s.Base}
	if s.torsions != nil {
		u.torsions = make([]Torsion, len(s.torsions))
		for i := range s.torsions {
			u.torsions[i] = s.torsions[i].copyTorsion()
		}
	}
	return u
}
