package collections

import (
	"fmt"
	"reflect"

	"github.com/jiexingtech/kryo-serializers/codec"
	"github.com/jiexingtech/kryo-serializers/errors"
	"github.com/jiexingtech/kryo-serializers/wire"
)

// wrapperVariant describes one read-only wrapper shape: its wire tag, the
// exact wrapper runtime type, how to extract the wrapped delegate and how
// to rebuild the wrapper around a freshly decoded delegate.
type wrapperVariant struct {
	prototype any
	source    func(v any) any
	create    func(delegate any) (any, error)
	name      string
	tag       uint32
}

// sourceCollection extracts the delegate of a collection-shaped wrapper.
func sourceCollection(v any) any {
	switch w := v.(type) {
	case *ReadOnlyCollection:
		return w.delegate
	case *ReadOnlyRandomAccessList:
		return w.delegate
	case *ReadOnlyList:
		return w.delegate
	case *ReadOnlySet:
		return w.delegate
	case *ReadOnlySortedSet:
		return w.delegate
	}
	return nil
}

// sourceMap extracts the delegate of a map-shaped wrapper.
func sourceMap(v any) any {
	switch w := v.(type) {
	case *ReadOnlyMap:
		return w.delegate
	case *ReadOnlySortedMap:
		return w.delegate
	}
	return nil
}

// wrapperVariants is the closed set of recognized wrapper shapes. The
// position of each entry is its wire tag and must never change: encoders
// and decoders of different builds agree on tags only by this order.
var wrapperVariants = []wrapperVariant{
	{
		tag:       0,
		name:      "collection",
		prototype: &ReadOnlyCollection{},
		source:    sourceCollection,
		create: func(delegate any) (any, error) {
			c, ok := delegate.(Collection)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseDecode,
					fmt.Sprintf("%T", delegate), "collections.Collection")
			}
			return UnmodifiableCollection(c), nil
		},
	},
	{
		tag:       1,
		name:      "random-access list",
		prototype: &ReadOnlyRandomAccessList{},
		source:    sourceCollection,
		create:    createList,
	},
	{
		tag:       2,
		name:      "list",
		prototype: &ReadOnlyList{},
		source:    sourceCollection,
		create:    createList,
	},
	{
		tag:       3,
		name:      "set",
		prototype: &ReadOnlySet{},
		source:    sourceCollection,
		create: func(delegate any) (any, error) {
			s, ok := delegate.(Set)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseDecode,
					fmt.Sprintf("%T", delegate), "collections.Set")
			}
			return UnmodifiableSet(s), nil
		},
	},
	{
		tag:       4,
		name:      "sorted set",
		prototype: &ReadOnlySortedSet{},
		source:    sourceCollection,
		create: func(delegate any) (any, error) {
			s, ok := delegate.(SortedSet)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseDecode,
					fmt.Sprintf("%T", delegate), "collections.SortedSet")
			}
			return UnmodifiableSortedSet(s), nil
		},
	},
	{
		tag:       5,
		name:      "map",
		prototype: &ReadOnlyMap{},
		source:    sourceMap,
		create: func(delegate any) (any, error) {
			m, ok := delegate.(Map)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseDecode,
					fmt.Sprintf("%T", delegate), "collections.Map")
			}
			return UnmodifiableMap(m), nil
		},
	},
	{
		tag:       6,
		name:      "sorted map",
		prototype: &ReadOnlySortedMap{},
		source:    sourceMap,
		create: func(delegate any) (any, error) {
			m, ok := delegate.(SortedMap)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseDecode,
					fmt.Sprintf("%T", delegate), "collections.SortedMap")
			}
			return UnmodifiableSortedMap(m), nil
		},
	},
}

// Both list variants rebuild through UnmodifiableList, which re-selects
// the random-access wrapper from the decoded delegate's capabilities.
func createList(delegate any) (any, error) {
	l, ok := delegate.(List)
	if !ok {
		return nil, errors.TypeMismatch(errors.PhaseDecode,
			fmt.Sprintf("%T", delegate), "collections.List")
	}
	return UnmodifiableList(l), nil
}

// variantsByType maps each wrapper's exact runtime type to its variant.
// Exact type equality, not assignability: the wrapper shapes are a closed
// set and nothing else may match.
var variantsByType = func() map[reflect.Type]*wrapperVariant {
	byType := make(map[reflect.Type]*wrapperVariant, len(wrapperVariants))
	for i := range wrapperVariants {
		v := &wrapperVariants[i]
		if v.tag != uint32(i) {
			panic(fmt.Sprintf("collections: variant %q tag %d does not match position %d", v.name, v.tag, i))
		}
		t := reflect.TypeOf(v.prototype)
		if _, dup := byType[t]; dup {
			panic(fmt.Sprintf("collections: duplicate variant type %s", t))
		}
		byType[t] = v
	}
	return byType
}()

// ReadOnlyWrapperSerializer serializes the read-only wrapper views as a
// variant tag plus the tagged delegate. It holds no per-call state and is
// safe to share across an engine's registrations.
type ReadOnlyWrapperSerializer struct{}

// Encode writes the wrapper's variant tag followed by its delegate
// through the engine's tagged write, so the delegate's own concrete type
// is preserved on the wire.
func (ReadOnlyWrapperSerializer) Encode(e *codec.Engine, w *wire.Writer, v any) error {
	variant, ok := variantsByType[reflect.TypeOf(v)]
	if !ok {
		// Register binds this serializer only to the known wrapper types.
		return errors.Unsupported(errors.PhaseEncode, fmt.Sprintf("%T", v))
	}
	w.WriteU32(variant.tag)
	return e.WriteTagged(w, variant.source(v))
}

// Decode reads the variant tag, decodes the delegate and rebuilds the
// wrapper of that variant around it. The tag is authoritative; the caller
// supplies no type information.
func (ReadOnlyWrapperSerializer) Decode(e *codec.Engine, r *wire.Reader) (any, error) {
	tag, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if tag >= uint32(len(wrapperVariants)) {
		return nil, errors.InvalidTag(errors.PhaseDecode, tag, uint32(len(wrapperVariants)-1))
	}
	delegate, err := e.ReadTagged(r)
	if err != nil {
		return nil, err
	}
	return wrapperVariants[tag].create(delegate)
}

// RegisterReadOnlyWrappers registers one ReadOnlyWrapperSerializer as the
// handler for every read-only wrapper type. Registration is idempotent:
// calling it again replaces the handlers without assigning new IDs.
func RegisterReadOnlyWrappers(e *codec.Engine) error {
	s := ReadOnlyWrapperSerializer{}
	for i := range wrapperVariants {
		if err := e.Register(wrapperVariants[i].prototype, s); err != nil {
			return err
		}
	}
	return nil
}

// RegisterAll registers the delegate collection types and the read-only
// wrapper types on e, in that order.
func RegisterAll(e *codec.Engine) error {
	if err := RegisterCollectionTypes(e); err != nil {
		return err
	}
	return RegisterReadOnlyWrappers(e)
}
