package collections

// Read-only views over delegate collections. Each view is a distinct
// concrete type holding its delegate directly, so the wrapper codec can
// dispatch on the exact runtime type and reach the delegate without
// reflection. Reads forward to the delegate; every mutator returns
// ErrReadOnly without touching it.

// ReadOnlyCollection is a read-only view of a Collection.
type ReadOnlyCollection struct {
	delegate Collection
}

// UnmodifiableCollection returns a read-only view of c.
func UnmodifiableCollection(c Collection) *ReadOnlyCollection {
	if c == nil {
		panic("collections: nil delegate")
	}
	return &ReadOnlyCollection{delegate: c}
}

func (c *ReadOnlyCollection) Len() int               { return c.delegate.Len() }
func (c *ReadOnlyCollection) Contains(v any) bool    { return c.delegate.Contains(v) }
func (c *ReadOnlyCollection) Each(fn func(any) bool) { c.delegate.Each(fn) }
func (c *ReadOnlyCollection) Add(any) error          { return ErrReadOnly }
func (c *ReadOnlyCollection) Remove(any) error       { return ErrReadOnly }
func (c *ReadOnlyCollection) Clear() error           { return ErrReadOnly }

// ReadOnlyRandomAccessList is a read-only view of a random-access List.
type ReadOnlyRandomAccessList struct {
	delegate List
}

func (l *ReadOnlyRandomAccessList) randomAccess() {}

func (l *ReadOnlyRandomAccessList) Len() int                { return l.delegate.Len() }
func (l *ReadOnlyRandomAccessList) Contains(v any) bool     { return l.delegate.Contains(v) }
func (l *ReadOnlyRandomAccessList) Each(fn func(any) bool)  { l.delegate.Each(fn) }
func (l *ReadOnlyRandomAccessList) Get(i int) (any, error)  { return l.delegate.Get(i) }
func (l *ReadOnlyRandomAccessList) Add(any) error           { return ErrReadOnly }
func (l *ReadOnlyRandomAccessList) Remove(any) error        { return ErrReadOnly }
func (l *ReadOnlyRandomAccessList) Clear() error            { return ErrReadOnly }
func (l *ReadOnlyRandomAccessList) Set(int, any) error      { return ErrReadOnly }
func (l *ReadOnlyRandomAccessList) Insert(int, any) error   { return ErrReadOnly }
func (l *ReadOnlyRandomAccessList) RemoveAt(int) (any, error) {
	return nil, ErrReadOnly
}

// ReadOnlyList is a read-only view of a sequential-access List.
type ReadOnlyList struct {
	delegate List
}

func (l *ReadOnlyList) Len() int                  { return l.delegate.Len() }
func (l *ReadOnlyList) Contains(v any) bool       { return l.delegate.Contains(v) }
func (l *ReadOnlyList) Each(fn func(any) bool)    { l.delegate.Each(fn) }
func (l *ReadOnlyList) Get(i int) (any, error)    { return l.delegate.Get(i) }
func (l *ReadOnlyList) Add(any) error             { return ErrReadOnly }
func (l *ReadOnlyList) Remove(any) error          { return ErrReadOnly }
func (l *ReadOnlyList) Clear() error              { return ErrReadOnly }
func (l *ReadOnlyList) Set(int, any) error        { return ErrReadOnly }
func (l *ReadOnlyList) Insert(int, any) error     { return ErrReadOnly }
func (l *ReadOnlyList) RemoveAt(int) (any, error) { return nil, ErrReadOnly }

// UnmodifiableList returns a read-only view of l. The view keeps the
// RandomAccess marker when the delegate has it.
func UnmodifiableList(l List) List {
	if l == nil {
		panic("collections: nil delegate")
	}
	if _, ok := l.(RandomAccess); ok {
		return &ReadOnlyRandomAccessList{delegate: l}
	}
	return &ReadOnlyList{delegate: l}
}

// ReadOnlySet is a read-only view of a Set.
type ReadOnlySet struct {
	delegate Set
}

// UnmodifiableSet returns a read-only view of s.
func UnmodifiableSet(s Set) *ReadOnlySet {
	if s == nil {
		panic("collections: nil delegate")
	}
	return &ReadOnlySet{delegate: s}
}

func (s *ReadOnlySet) Len() int               { return s.delegate.Len() }
func (s *ReadOnlySet) Contains(v any) bool    { return s.delegate.Contains(v) }
func (s *ReadOnlySet) Each(fn func(any) bool) { s.delegate.Each(fn) }
func (s *ReadOnlySet) Add(any) error          { return ErrReadOnly }
func (s *ReadOnlySet) Remove(any) error       { return ErrReadOnly }
func (s *ReadOnlySet) Clear() error           { return ErrReadOnly }

// ReadOnlySortedSet is a read-only view of a SortedSet.
type ReadOnlySortedSet struct {
	delegate SortedSet
}

// UnmodifiableSortedSet returns a read-only view of s.
func UnmodifiableSortedSet(s SortedSet) *ReadOnlySortedSet {
	if s == nil {
		panic("collections: nil delegate")
	}
	return &ReadOnlySortedSet{delegate: s}
}

func (s *ReadOnlySortedSet) Len() int               { return s.delegate.Len() }
func (s *ReadOnlySortedSet) Contains(v any) bool    { return s.delegate.Contains(v) }
func (s *ReadOnlySortedSet) Each(fn func(any) bool) { s.delegate.Each(fn) }
func (s *ReadOnlySortedSet) First() (any, bool)     { return s.delegate.First() }
func (s *ReadOnlySortedSet) Last() (any, bool)      { return s.delegate.Last() }
func (s *ReadOnlySortedSet) Add(any) error          { return ErrReadOnly }
func (s *ReadOnlySortedSet) Remove(any) error       { return ErrReadOnly }
func (s *ReadOnlySortedSet) Clear() error           { return ErrReadOnly }

// ReadOnlyMap is a read-only view of a Map.
type ReadOnlyMap struct {
	delegate Map
}

// UnmodifiableMap returns a read-only view of m.
func UnmodifiableMap(m Map) *ReadOnlyMap {
	if m == nil {
		panic("collections: nil delegate")
	}
	return &ReadOnlyMap{delegate: m}
}

func (m *ReadOnlyMap) Len() int                    { return m.delegate.Len() }
func (m *ReadOnlyMap) Get(key any) (any, bool)     { return m.delegate.Get(key) }
func (m *ReadOnlyMap) Each(fn func(k, v any) bool) { m.delegate.Each(fn) }
func (m *ReadOnlyMap) Put(any, any) error          { return ErrReadOnly }
func (m *ReadOnlyMap) Delete(any) error            { return ErrReadOnly }
func (m *ReadOnlyMap) Clear() error                { return ErrReadOnly }

// ReadOnlySortedMap is a read-only view of a SortedMap.
type ReadOnlySortedMap struct {
	delegate SortedMap
}

// UnmodifiableSortedMap returns a read-only view of m.
func UnmodifiableSortedMap(m SortedMap) *ReadOnlySortedMap {
	if m == nil {
		panic("collections: nil delegate")
	}
	return &ReadOnlySortedMap{delegate: m}
}

func (m *ReadOnlySortedMap) Len() int                    { return m.delegate.Len() }
func (m *ReadOnlySortedMap) Get(key any) (any, bool)     { return m.delegate.Get(key) }
func (m *ReadOnlySortedMap) Each(fn func(k, v any) bool) { m.delegate.Each(fn) }
func (m *ReadOnlySortedMap) FirstKey() (any, bool)       { return m.delegate.FirstKey() }
func (m *ReadOnlySortedMap) LastKey() (any, bool)        { return m.delegate.LastKey() }
func (m *ReadOnlySortedMap) Put(any, any) error          { return ErrReadOnly }
func (m *ReadOnlySortedMap) Delete(any) error            { return ErrReadOnly }
func (m *ReadOnlySortedMap) Clear() error                { return ErrReadOnly }
