// 22 Mar 2021

package attr

// Symmetry holds the point group and space group of a structure. The
// two are independent and neither is checked against any table of
// symbols.
type Symmetry struct {
	Base
	pointGroup string
	spaceGroup string
}

// NewSymmetry returns an empty symmetry attribute.
func NewSymmetry() *Symmetry {
	return &Symmetry{Base: NewBase(KindSymmetry)}
}

// SetData sets both groups at once. Pass "" for one you do not know.
func (s *Symmetry) SetData(pointGroup, spaceGroup string) {
	s.pointGroup = pointGroup
	s.spaceGroup = spaceGroup
}

func (s *Symmetry) SetPointGroup(pg string) { s.pointGroup = pg }
func (s *Symmetry) SetSpaceGroup(sg string) { s.spaceGroup = sg }

func (s *Symmetry) PointGroup() string { return s.pointGroup }
func (s *Symmetry) SpaceGroup() string { return s.spaceGroup }

func (s *Symmetry) Copy() Attr {
	t := *s
	return &t
}
