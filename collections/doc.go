// Package collections provides mutable delegate collections, read-only
// wrapper views over them, and the codec that serializes those views.
//
// # Delegates
//
// Six mutable collection types back the views:
//
//	Type        Shape                 Order
//	─────────────────────────────────────────────────────
//	ArrayList   List (random access)  insertion
//	LinkedList  List (sequential)     insertion
//	HashSet     Set                   unspecified
//	TreeSet     SortedSet             natural ascending
//	HashMap     Map                   unspecified
//	TreeMap     SortedMap             natural key ascending
//
// Elements are untyped (any). Sorted collections order elements by the
// natural ordering in Compare and reject elements without one; hash
// collections reject elements that cannot be Go map keys. Mutators return
// errors rather than panicking so read-only views can refuse them.
//
// # Read-Only Views
//
// The Unmodifiable* factories wrap a delegate in a view that forwards
// reads and returns ErrReadOnly from every mutator:
//
//	l := collections.NewArrayList("a", "b", "c")
//	v := collections.UnmodifiableList(l)
//	v.Add("d") // ErrReadOnly
//
// Each view is a distinct concrete type (seven in all, UnmodifiableList
// picks between the random-access and sequential list views), which is
// what the wrapper codec dispatches on.
//
// # Serialization
//
// RegisterAll binds serializers for the delegates and the views to a
// codec engine:
//
//	e := codec.New()
//	collections.RegisterAll(e)
//
//	w := wire.NewWriter()
//	e.WriteTagged(w, collections.UnmodifiableList(l))
//
// A view is encoded as a variant tag identifying which of the seven
// wrapper shapes it is, followed by the tagged delegate. Decoding reads
// the tag, rebuilds the delegate with its exact runtime type, and wraps
// it again, so a decoded view enforces read-only access exactly like the
// original. Tags are stable across versions; see ReadOnlyWrapperSerializer.
package collections
