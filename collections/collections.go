package collections

import (
	"errors"
	"reflect"
)

// ErrReadOnly is returned by every mutating method of a read-only view.
var ErrReadOnly = errors.New("collections: read-only view")

// ErrIndexOutOfRange is returned by positional list operations with an
// index outside [0, Len()).
var ErrIndexOutOfRange = errors.New("collections: index out of range")

// ErrNotHashable is returned when an element or key cannot be used in a
// hash-based collection.
var ErrNotHashable = errors.New("collections: value is not hashable")

// ErrNotOrdered is returned when an element or key has no natural order
// and is offered to a sorted collection.
var ErrNotOrdered = errors.New("collections: value has no natural order")

// Collection is a bag of elements. Mutators return an error so read-only
// views can reject them.
type Collection interface {
	Len() int
	Contains(v any) bool
	// Each calls fn for every element until fn returns false.
	Each(fn func(v any) bool)
	Add(v any) error
	Remove(v any) error
	Clear() error
}

// List is a Collection with positional access.
type List interface {
	Collection
	Get(i int) (any, error)
	Set(i int, v any) error
	Insert(i int, v any) error
	RemoveAt(i int) (any, error)
}

// RandomAccess marks lists with constant-time positional access. Wrapping
// such a list with UnmodifiableList yields a view that keeps the marker.
type RandomAccess interface {
	randomAccess()
}

// Set is a Collection holding distinct elements.
type Set interface {
	Collection
}

// SortedSet is a Set iterating in ascending element order.
type SortedSet interface {
	Set
	First() (any, bool)
	Last() (any, bool)
}

// Map is a key-value mapping. Mutators return an error so read-only views
// can reject them.
type Map interface {
	Len() int
	Get(key any) (any, bool)
	Put(key, value any) error
	Delete(key any) error
	// Each calls fn for every entry until fn returns false.
	Each(fn func(key, value any) bool)
	Clear() error
}

// SortedMap is a Map iterating in ascending key order.
type SortedMap interface {
	Map
	FirstKey() (any, bool)
	LastKey() (any, bool)
}

// equal is the element equality used by Contains and Remove.
func equal(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// hashable reports whether v can be a Go map key.
func hashable(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Comparable()
}
