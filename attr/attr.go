// 18 Mar 2021

// Package attr lets one hang typed, named data off atoms, bonds and
// whole structures without touching their definitions. Each attribute
// carries a kind tag for fast dispatch and a free-form name for lookup.
// The kinds that do real work (unit cells) live in their own packages
// and just embed Base from here.

package attr

// Kind says what sort of payload an attribute carries. It is fixed
// when the attribute is made and is the fast way to find data, rather
// than matching on the name string. The Custom slots are free for
// derivative programs.
type Kind uint8

const (
	KindUndefined    Kind = iota
	KindPair              // arbitrary key/value data
	KindEnergy            // energetics (total energy, heat of formation, ...)
	KindComment           // free text comments
	KindConformer         // per-conformer arrays
	KindExternalBond      // bonds leaving a fragment
	KindRotamerList       // rotamer generation and bookkeeping
	KindVirtualBond       // bonds to atoms not yet added
	KindRingSet           // ring perception results
	KindTorsion           // torsion/dihedral data
	KindAngle             // bond angles
	KindSerialNums        // residue serial numbers
	KindUnitCell          // crystallographic unit cell
	KindSpin              // spin data, NMR and otherwise
	KindCharge            // partial and total charges, dipoles
	KindSymmetry          // point and space groups
	KindChiral            // chirality
	KindOccupation        // occupation data
	KindDensity           // density (cube) data
	KindElectronic        // electronic levels, orbitals
	KindVibration         // vibrational modes and frequencies
	KindRotation          // rotational energies
	KindNuclear           // nuclear transitions
	KindCustom0
	KindCustom1
	KindCustom2
	KindCustom3
	KindCustom4
	KindCustom5
	KindCustom6
	KindCustom7
	KindCustom8
	KindCustom9
	KindCustom10
	KindCustom11
	KindCustom12
	KindCustom13
	KindCustom14
	KindCustom15
)

var kindNames = map[Kind]string{
	KindUndefined:    "Undefined",
	KindPair:         "PairData",
	KindEnergy:       "Energy",
	KindComment:      "Comment",
	KindConformer:    "Conformers",
	KindExternalBond: "ExternalBonds",
	KindRotamerList:  "RotamerList",
	KindVirtualBond:  "VirtualBond",
	KindRingSet:      "RingSet",
	KindTorsion:      "TorsionData",
	KindAngle:        "AngleData",
	KindSerialNums:   "SerialNums",
	KindUnitCell:     "UnitCell",
	KindSpin:         "Spin",
	KindCharge:       "Charge",
	KindSymmetry:     "Symmetry",
	KindChiral:       "Chiral",
	KindOccupation:   "Occupation",
	KindDensity:      "Density",
	KindElectronic:   "Electronic",
	KindVibration:    "Vibration",
	KindRotation:     "Rotation",
	KindNuclear:      "Nuclear",
}

// String returns a human readable description of the kind. This is
// also the default attribute name. Custom slots have no fixed meaning
// so they all come back as "Custom".
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	if k >= KindCustom0 && k <= KindCustom15 {
		return "Custom"
	}
	return "Undefined"
}

// Attr is what every attribute kind satisfies. Kind never changes
// after construction. Copy must duplicate the payload through the
// concrete type, so a container of Attr can be copied without knowing
// what it holds.
type Attr interface {
	Kind() Kind
	Name() string
	SetName(string)
	Copy() Attr
}

// Base carries the name and kind tag. Concrete kinds embed it and add
// their payload. The zero value is usable but has kind KindUndefined,
// so kinds are expected to build on NewBase.
type Base struct {
	name string
	kind Kind
}

// NewBase returns a Base for the given kind, named after it.
func NewBase(k Kind) Base { return Base{name: k.String(), kind: k} }

// Kind returns the immutable kind tag.
func (b *Base) Kind() Kind { return b.kind }

// Name returns the attribute's label.
func (b *Base) Name() string { return b.name }

// SetName replaces the attribute's label.
func (b *Base) SetName(s string) { b.name = s }

// Atom is a back reference into the host structure's graph. We store
// and return these, nothing more. The host must keep the atom alive
// and its index stable while any attribute refers to it. IsHydrogen
// is here because the torsion model has to recognise proton rotors.
type Atom interface {
	Idx() int
	IsHydrogen() bool
}

// Bond is a back reference to a bond in the host graph. Same lifetime
// rules as Atom.
type Bond interface {
	Idx() int
}

// Ring is a ring-perception result. Unlike atoms and bonds, rings
// handed to a RingSet are owned by it, so they must know how to copy
// themselves.
type Ring interface {
	Copy() Ring
}
