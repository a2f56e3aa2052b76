package collections

import "github.com/google/btree"

// HashMap is a Go-map-backed Map with unspecified iteration order.
// Keys must be hashable.
type HashMap struct {
	entries map[any]any
}

// NewHashMap creates an empty HashMap.
func NewHashMap() *HashMap {
	return &HashMap{entries: make(map[any]any)}
}

func (m *HashMap) Len() int {
	return len(m.entries)
}

func (m *HashMap) Get(key any) (any, bool) {
	if !hashable(key) {
		return nil, false
	}
	v, ok := m.entries[key]
	return v, ok
}

func (m *HashMap) Put(key, value any) error {
	if !hashable(key) {
		return ErrNotHashable
	}
	m.entries[key] = value
	return nil
}

func (m *HashMap) Delete(key any) error {
	if hashable(key) {
		delete(m.entries, key)
	}
	return nil
}

func (m *HashMap) Each(fn func(key, value any) bool) {
	for k, v := range m.entries {
		if !fn(k, v) {
			return
		}
	}
}

func (m *HashMap) Clear() error {
	m.entries = make(map[any]any)
	return nil
}

type mapEntry struct {
	key   any
	value any
}

func lessEntries(a, b mapEntry) bool {
	return Compare(a.key, b.key) < 0
}

// TreeMap is a B-tree-backed SortedMap iterating in ascending key order.
// Keys must be Orderable.
type TreeMap struct {
	tree *btree.BTreeG[mapEntry]
}

// NewTreeMap creates an empty TreeMap.
func NewTreeMap() *TreeMap {
	return &TreeMap{tree: btree.NewG[mapEntry](btreeDegree, lessEntries)}
}

func (m *TreeMap) Len() int {
	return m.tree.Len()
}

func (m *TreeMap) Get(key any) (any, bool) {
	if !Orderable(key) {
		return nil, false
	}
	e, ok := m.tree.Get(mapEntry{key: key})
	if !ok {
		return nil, false
	}
	return e.value, true
}

func (m *TreeMap) Put(key, value any) error {
	if !Orderable(key) {
		return ErrNotOrdered
	}
	m.tree.ReplaceOrInsert(mapEntry{key: key, value: value})
	return nil
}

func (m *TreeMap) Delete(key any) error {
	if Orderable(key) {
		m.tree.Delete(mapEntry{key: key})
	}
	return nil
}

// Each visits entries in ascending key order.
func (m *TreeMap) Each(fn func(key, value any) bool) {
	m.tree.Ascend(func(e mapEntry) bool {
		return fn(e.key, e.value)
	})
}

func (m *TreeMap) Clear() error {
	m.tree.Clear(false)
	return nil
}

func (m *TreeMap) FirstKey() (any, bool) {
	e, ok := m.tree.Min()
	if !ok {
		return nil, false
	}
	return e.key, true
}

func (m *TreeMap) LastKey() (any, bool) {
	e, ok := m.tree.Max()
	if !ok {
		return nil, false
	}
	return e.key, true
}
