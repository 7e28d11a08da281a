// 30 Mar 2021
// Little stand-ins for the host structure's atoms, bonds and rings.
// The attribute code only ever asks them for an index or whether
// they are hydrogen, so this is all a test needs.

package attr_test

import (
	. "github.com/andrew-torda/moldata/attr"
)

type tAtom struct {
	idx int
	hyd bool
}

func (a *tAtom) Idx() int         { return a.idx }
func (a *tAtom) IsHydrogen() bool { return a.hyd }

type tBond struct{ idx int }

func (b *tBond) Idx() int { return b.idx }

// tRing owns its member list, like a real ring perception result.
type tRing struct{ members []int }

func (r *tRing) Copy() Ring {
	s := &tRing{}
	s.members = append([]int(nil), r.members...)
	return s
}

// atoms returns n heavy atoms with indices 0..n-1.
func atoms(n int) []*tAtom {
	out := make([]*tAtom, n)
	for i := range out {
		out[i] = &tAtom{idx: i}
	}
	return out
}
