// 6 Apr 2021

package attr_test

import (
	"testing"

	. "github.com/andrew-torda/moldata/attr"
)

func TestListLookup(t *testing.T) {
	var l List
	c := NewComment("made by hand")
	p1 := NewPair("source", "nmr")
	p2 := NewPair("method", "b3lyp")
	l.Attach(c)
	l.Attach(p1)
	l.Attach(p2)

	if l.Len() != 3 {
		t.Fatal("list length wrong")
	}
	if !l.HasKind(KindComment) || l.HasKind(KindRingSet) {
		t.Fatal("HasKind broke")
	}
	if got := l.ByKind(KindPair); len(got) != 2 || got[0] != Attr(p1) {
		t.Fatal("ByKind should give both pairs in attach order")
	}
	if l.FirstByKind(KindComment) != Attr(c) {
		t.Fatal("FirstByKind missed the comment")
	}
	if got := l.ByName("method"); len(got) != 1 || got[0] != Attr(p2) {
		t.Fatal("ByName missed the method pair")
	}
	if l.FirstByKind(KindUnitCell) != nil {
		t.Fatal("lookup of an absent kind should give nil")
	}
}

func TestListDetach(t *testing.T) {
	var l List
	c := NewComment("x")
	p := NewPair("k", "v")
	l.Attach(c)
	l.Attach(p)

	if !l.Detach(c) {
		t.Fatal("detach of an attached attribute failed")
	}
	if l.Detach(c) { // already gone
		t.Fatal("detach of an absent attribute claimed success")
	}
	if l.Len() != 1 || l.HasKind(KindComment) {
		t.Fatal("detach left the comment behind")
	}
}

// Copying a list must copy the attributes underneath, through their
// concrete types.
func TestListDeepCopy(t *testing.T) {
	var l List
	rs := NewRingSet()
	rs.Add(&tRing{members: []int{1, 2, 3}})
	l.Attach(rs)
	l.Attach(NewComment("original"))

	m := l.Copy()
	if m.Len() != 2 {
		t.Fatal("copy has wrong length")
	}
	cc := m.FirstByKind(KindComment).(*Comment)
	cc.SetData("changed")
	if l.FirstByKind(KindComment).(*Comment).Data() != "original" {
		t.Fatal("copying shared a comment")
	}
	cr := m.FirstByKind(KindRingSet).(*RingSet)
	if cr == rs {
		t.Fatal("copying shared the ring set")
	}
	cr.Rings()[0].(*tRing).members[0] = 99
	if rs.Rings()[0].(*tRing).members[0] != 1 {
		t.Fatal("copying shared a ring")
	}
}
