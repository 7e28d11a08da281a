// 29 Mar 2021

package attr

// List is the collection a host object (molecule, atom, bond) embeds
// to hold its attributes. Lookup is by kind tag, which is quick, or
// by name string. Several attributes of the same kind or name may
// coexist. The list owns its attributes. Copying the list copies
// them through their concrete types.
type List struct {
	data []Attr
}

// Attach adds an attribute to the list.
func (l *List) Attach(a Attr) { l.data = append(l.data, a) }

// Detach removes the attribute, matching by identity, and reports
// whether it was present.
func (l *List) Detach(a Attr) bool {
	for i, d := range l.data {
		if d == a {
			l.data = append(l.data[:i], l.data[i+1:]...)
			return true
		}
	}
	return false
}

// ByKind returns all attributes with the given kind, in attach order.
func (l *List) ByKind(k Kind) []Attr {
	var out []Attr
	for _, d := range l.data {
		if d.Kind() == k {
			out = append(out, d)
		}
	}
	return out
}

// FirstByKind returns the first attribute of the given kind, or nil.
// Most kinds appear at most once, so this is the common lookup.
func (l *List) FirstByKind(k Kind) Attr {
	for _, d := range l.data {
		if d.Kind() == k {
			return d
		}
	}
	return nil
}

// ByName returns all attributes with the given name, in attach order.
func (l *List) ByName(name string) []Attr {
	var out []Attr
	for _, d := range l.data {
		if d.Name() == name {
			out = append(out, d)
		}
	}
	return out
}

// HasKind says whether any attribute of the given kind is attached.
func (l *List) HasKind(k Kind) bool { return l.FirstByKind(k) != nil }

// Len is the number of attached attributes.
func (l *List) Len() int { return len(l.data) }

// All returns the list's own storage, in attach order.
func (l *List) All() []Attr { return l.data }

// Copy returns a list holding deep copies of every attribute.
func (l *List) Copy() List {
	var m List
	if l.data != nil {
		m.data = make([]Attr, len(l.data))
		for i, d := range l.data {
			m.data[i] = d.Copy()
		}
	}
	return m
}
