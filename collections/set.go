package collections

import "github.com/google/btree"

// HashSet is a Go-map-backed Set with unspecified iteration order.
// Elements must be hashable.
type HashSet struct {
	items map[any]struct{}
}

// NewHashSet creates a HashSet holding the given elements. It panics if an
// element is not hashable; use Add to handle that case gracefully.
func NewHashSet(items ...any) *HashSet {
	s := &HashSet{items: make(map[any]struct{}, len(items))}
	for _, item := range items {
		if err := s.Add(item); err != nil {
			panic(err)
		}
	}
	return s
}

func (s *HashSet) Len() int {
	return len(s.items)
}

func (s *HashSet) Contains(v any) bool {
	if !hashable(v) {
		return false
	}
	_, ok := s.items[v]
	return ok
}

func (s *HashSet) Each(fn func(v any) bool) {
	for item := range s.items {
		if !fn(item) {
			return
		}
	}
}

func (s *HashSet) Add(v any) error {
	if !hashable(v) {
		return ErrNotHashable
	}
	s.items[v] = struct{}{}
	return nil
}

func (s *HashSet) Remove(v any) error {
	if hashable(v) {
		delete(s.items, v)
	}
	return nil
}

func (s *HashSet) Clear() error {
	s.items = make(map[any]struct{})
	return nil
}

const btreeDegree = 8

func lessValues(a, b any) bool {
	return Compare(a, b) < 0
}

// TreeSet is a B-tree-backed SortedSet iterating in natural order.
// Elements must be Orderable.
type TreeSet struct {
	tree *btree.BTreeG[any]
}

// NewTreeSet creates a TreeSet holding the given elements. It panics if an
// element has no natural order; use Add to handle that case gracefully.
func NewTreeSet(items ...any) *TreeSet {
	s := &TreeSet{tree: btree.NewG[any](btreeDegree, lessValues)}
	for _, item := range items {
		if err := s.Add(item); err != nil {
			panic(err)
		}
	}
	return s
}

func (s *TreeSet) Len() int {
	return s.tree.Len()
}

func (s *TreeSet) Contains(v any) bool {
	if !Orderable(v) {
		return false
	}
	return s.tree.Has(v)
}

// Each visits elements in ascending order.
func (s *TreeSet) Each(fn func(v any) bool) {
	s.tree.Ascend(func(item any) bool {
		return fn(item)
	})
}

func (s *TreeSet) Add(v any) error {
	if !Orderable(v) {
		return ErrNotOrdered
	}
	s.tree.ReplaceOrInsert(v)
	return nil
}

func (s *TreeSet) Remove(v any) error {
	if Orderable(v) {
		s.tree.Delete(v)
	}
	return nil
}

func (s *TreeSet) Clear() error {
	s.tree.Clear(false)
	return nil
}

func (s *TreeSet) First() (any, bool) {
	return s.tree.Min()
}

func (s *TreeSet) Last() (any, bool) {
	return s.tree.Max()
}
