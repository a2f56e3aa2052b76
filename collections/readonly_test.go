package collections

import (
	"errors"
	"testing"
)

func TestReadOnlyCollectionForwardsReads(t *testing.T) {
	delegate := NewArrayList("a", "b")
	v := UnmodifiableCollection(delegate)

	if v.Len() != 2 {
		t.Errorf("Len: got %d, want 2", v.Len())
	}
	if !v.Contains("a") || v.Contains("z") {
		t.Error("Contains misbehaves")
	}
	if got := collect(v); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Each: got %v", got)
	}
}

func TestReadOnlyViewsRejectMutation(t *testing.T) {
	tests := []struct {
		name string
		try  func() error
	}{
		{"collection Add", func() error { return UnmodifiableCollection(NewArrayList()).Add("x") }},
		{"collection Remove", func() error { return UnmodifiableCollection(NewArrayList("x")).Remove("x") }},
		{"collection Clear", func() error { return UnmodifiableCollection(NewArrayList("x")).Clear() }},
		{"list Set", func() error { return UnmodifiableList(NewArrayList("x")).Set(0, "y") }},
		{"list Insert", func() error { return UnmodifiableList(NewLinkedList()).Insert(0, "y") }},
		{"list RemoveAt", func() error {
			_, err := UnmodifiableList(NewArrayList("x")).RemoveAt(0)
			return err
		}},
		{"set Add", func() error { return UnmodifiableSet(NewHashSet()).Add("x") }},
		{"sorted set Add", func() error { return UnmodifiableSortedSet(NewTreeSet()).Add("x") }},
		{"map Put", func() error { return UnmodifiableMap(NewHashMap()).Put("k", "v") }},
		{"map Delete", func() error { return UnmodifiableMap(NewHashMap()).Delete("k") }},
		{"sorted map Put", func() error { return UnmodifiableSortedMap(NewTreeMap()).Put(1, "v") }},
		{"sorted map Clear", func() error { return UnmodifiableSortedMap(NewTreeMap()).Clear() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.try(); !errors.Is(err, ErrReadOnly) {
				t.Errorf("got %v, want ErrReadOnly", err)
			}
		})
	}
}

func TestMutationDoesNotTouchDelegate(t *testing.T) {
	delegate := NewArrayList("a")
	v := UnmodifiableList(delegate)

	_ = v.Add("b")
	_ = v.Clear()

	if delegate.Len() != 1 {
		t.Errorf("delegate changed through read-only view: len=%d", delegate.Len())
	}
}

func TestUnmodifiableListSelectsVariant(t *testing.T) {
	if _, ok := UnmodifiableList(NewArrayList()).(*ReadOnlyRandomAccessList); !ok {
		t.Error("array-backed delegate should yield the random-access view")
	}
	if _, ok := UnmodifiableList(NewLinkedList()).(*ReadOnlyList); !ok {
		t.Error("linked delegate should yield the sequential view")
	}

	// The random-access view keeps the marker, the sequential one does not.
	if _, ok := UnmodifiableList(NewArrayList()).(RandomAccess); !ok {
		t.Error("random-access view should keep the RandomAccess marker")
	}
	if _, ok := UnmodifiableList(NewLinkedList()).(RandomAccess); ok {
		t.Error("sequential view should not be RandomAccess")
	}
}

func TestReadOnlySortedViewsForwardOrder(t *testing.T) {
	ss := UnmodifiableSortedSet(NewTreeSet(2, 1, 3))
	if first, ok := ss.First(); !ok || first != 1 {
		t.Errorf("First: got %v, %v", first, ok)
	}
	if last, ok := ss.Last(); !ok || last != 3 {
		t.Errorf("Last: got %v, %v", last, ok)
	}

	tm := NewTreeMap()
	_ = tm.Put(2, "b")
	_ = tm.Put(1, "a")
	sm := UnmodifiableSortedMap(tm)
	if k, ok := sm.FirstKey(); !ok || k != 1 {
		t.Errorf("FirstKey: got %v, %v", k, ok)
	}
	if k, ok := sm.LastKey(); !ok || k != 2 {
		t.Errorf("LastKey: got %v, %v", k, ok)
	}
}

func TestNilDelegatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil delegate")
		}
	}()
	UnmodifiableCollection(nil)
}
