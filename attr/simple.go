// 18 Mar 2021
// The small attribute kinds. Each is a thin payload on top of Base.
// Setters replace the payload wholesale. Nothing here validates
// anything, with one exception: comments are trimmed on every set.

package attr

import (
	"strings"
)

// Pair holds arbitrary key/value data. The key is the attribute name,
// the value is a free string.
type Pair struct {
	Base
	value string
}

// NewPair returns a Pair with the given name and value.
func NewPair(name, value string) *Pair {
	p := &Pair{Base: NewBase(KindPair), value: value}
	p.SetName(name)
	return p
}

func (p *Pair) Value() string         { return p.value }
func (p *Pair) SetValue(value string) { p.value = value }

// Copy duplicates the pair.
func (p *Pair) Copy() Attr {
	q := *p
	return &q
}

// Comment stores a text comment, possibly several lines long.
type Comment struct {
	Base
	data string
}

// NewComment returns a Comment holding the given text.
func NewComment(text string) *Comment {
	c := &Comment{Base: NewBase(KindComment)}
	c.SetData(text)
	return c
}

// SetData stores the text with surrounding white space removed. This
// is the only attribute kind with a normalisation side effect.
func (c *Comment) SetData(text string) { c.data = strings.TrimSpace(text) }

func (c *Comment) Data() string { return c.data }

func (c *Comment) Copy() Attr {
	d := *c
	return &d
}

// ExternalBond records one bond that leaves a fragment, for example a
// SMILES fragment attachment point. The atom and bond are back
// references into the host graph, never owned here.
type ExternalBond struct {
	idx  int
	atom Atom
	bond Bond
}

func (e *ExternalBond) Idx() int   { return e.idx }
func (e *ExternalBond) Atom() Atom { return e.atom }
func (e *ExternalBond) Bond() Bond { return e.bond }

func (e *ExternalBond) SetIdx(idx int) { e.idx = idx }
func (e *ExternalBond) SetAtom(a Atom) { e.atom = a }
func (e *ExternalBond) SetBond(b Bond) { e.bond = b }

// ExternalBondSet holds the external bonds of a fragment in the order
// they were added. The order matters. It is the order the attachment
// points appear in. Add does not look for duplicates. Whoever builds
// the fragment keeps the indices distinct.
type ExternalBondSet struct {
	Base
	bonds []ExternalBond
}

// NewExternalBondSet returns an empty set.
func NewExternalBondSet() *ExternalBondSet {
	return &ExternalBondSet{Base: NewBase(KindExternalBond)}
}

// Add appends one external bond record.
func (s *ExternalBondSet) Add(a Atom, b Bond, idx int) {
	s.bonds = append(s.bonds, ExternalBond{idx: idx, atom: a, bond: b})
}

// Bonds returns the records in insertion order. The slice is the
// set's own storage, so callers wanting to keep it should copy it.
func (s *ExternalBondSet) Bonds() []ExternalBond { return s.bonds }

func (s *ExternalBondSet) Len() int { return len(s.bonds) }

// Copy duplicates the record list. The atom and bond references in
// each record still point into the original host graph.
func (s *ExternalBondSet) Copy() Attr {
	t := &ExternalBondSet{Base: s.Base}
	t.bonds = append([]ExternalBond(nil), s.bonds...)
	return t
}

// VirtualBond remembers a bond whose end atoms are not in the
// structure yet. Index numbers are all we can store. Once both atoms
// exist and the real bond is made, the record is thrown away, so it
// is immutable and very short lived.
type VirtualBond struct {
	Base
	bgn, end int
	order    int
	stereo   int
}

// NewVirtualBond records a bond from atom index bgn to end with the
// given bond order and stereo flag.
func NewVirtualBond(bgn, end, order, stereo int) *VirtualBond {
	return &VirtualBond{
		Base: NewBase(KindVirtualBond),
		bgn:  bgn, end: end, order: order, stereo: stereo,
	}
}

func (v *VirtualBond) Bgn() int    { return v.bgn }
func (v *VirtualBond) End() int    { return v.end }
func (v *VirtualBond) Order() int  { return v.order }
func (v *VirtualBond) Stereo() int { return v.stereo }

func (v *VirtualBond) Copy() Attr {
	w := *v
	return &w
}

// RingSet holds the rings found in a structure, typically the SSSR.
// Ring perception happens elsewhere. We only keep its output. The
// rings are owned by the set, which is why Copy goes deep.
type RingSet struct {
	Base
	rings []Ring
}

// NewRingSet returns an empty ring set.
func NewRingSet() *RingSet {
	return &RingSet{Base: NewBase(KindRingSet)}
}

// SetRings replaces the ring list.
func (s *RingSet) SetRings(rings []Ring) { s.rings = rings }

// Add appends one ring. The set takes ownership.
func (s *RingSet) Add(r Ring) { s.rings = append(s.rings, r) }

// Rings returns the rings in order.
func (s *RingSet) Rings() []Ring { return s.rings }

func (s *RingSet) Len() int { return len(s.rings) }

// Clear drops all rings.
func (s *RingSet) Clear() { s.rings = nil }

// Copy duplicates the set and every ring in it.
func (s *RingSet) Copy() Attr {
	t := &RingSet{Base: s.Base}
	if s.rings != nil {
		t.rings = make([]Ring, len(s.rings))
		for i, r := range s.rings {
			t.rings[i] = r.Copy()
		}
	}
	return t
}
