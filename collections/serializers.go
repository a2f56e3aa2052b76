package collections

import (
	"fmt"

	"github.com/jiexingtech/kryo-serializers/codec"
	"github.com/jiexingtech/kryo-serializers/errors"
	"github.com/jiexingtech/kryo-serializers/wire"
)

// Serializers for the mutable delegate collections. Every element, key
// and value goes through the engine's tagged read/write so nested
// collections and registered user types round-trip with their exact
// runtime type.

func encodeElements(e *codec.Engine, w *wire.Writer, c Collection) error {
	w.WriteU32(uint32(c.Len()))
	var encErr error
	c.Each(func(v any) bool {
		if err := e.WriteTagged(w, v); err != nil {
			encErr = err
			return false
		}
		return true
	})
	return encErr
}

func decodeElements(e *codec.Engine, r *wire.Reader, into Collection) error {
	n, err := r.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		v, err := e.ReadTagged(r)
		if err != nil {
			return err
		}
		if err := into.Add(v); err != nil {
			return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err,
				fmt.Sprintf("element %d rejected by %T", i, into))
		}
	}
	return nil
}

func encodeEntries(e *codec.Engine, w *wire.Writer, m Map) error {
	w.WriteU32(uint32(m.Len()))
	var encErr error
	m.Each(func(k, v any) bool {
		if err := e.WriteTagged(w, k); err != nil {
			encErr = err
			return false
		}
		if err := e.WriteTagged(w, v); err != nil {
			encErr = err
			return false
		}
		return true
	})
	return encErr
}

func decodeEntries(e *codec.Engine, r *wire.Reader, into Map) error {
	n, err := r.ReadU32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		k, err := e.ReadTagged(r)
		if err != nil {
			return err
		}
		v, err := e.ReadTagged(r)
		if err != nil {
			return err
		}
		if err := into.Put(k, v); err != nil {
			return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err,
				fmt.Sprintf("entry %d rejected by %T", i, into))
		}
	}
	return nil
}

type arrayListSerializer struct{}

func (arrayListSerializer) Encode(e *codec.Engine, w *wire.Writer, v any) error {
	l, ok := v.(*ArrayList)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "*collections.ArrayList")
	}
	return encodeElements(e, w, l)
}

func (arrayListSerializer) Decode(e *codec.Engine, r *wire.Reader) (any, error) {
	l := NewArrayList()
	if err := decodeElements(e, r, l); err != nil {
		return nil, err
	}
	return l, nil
}

type linkedListSerializer struct{}

func (linkedListSerializer) Encode(e *codec.Engine, w *wire.Writer, v any) error {
	l, ok := v.(*LinkedList)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "*collections.LinkedList")
	}
	return encodeElements(e, w, l)
}

func (linkedListSerializer) Decode(e *codec.Engine, r *wire.Reader) (any, error) {
	l := NewLinkedList()
	if err := decodeElements(e, r, l); err != nil {
		return nil, err
	}
	return l, nil
}

type hashSetSerializer struct{}

func (hashSetSerializer) Encode(e *codec.Engine, w *wire.Writer, v any) error {
	s, ok := v.(*HashSet)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "*collections.HashSet")
	}
	return encodeElements(e, w, s)
}

func (hashSetSerializer) Decode(e *codec.Engine, r *wire.Reader) (any, error) {
	s := NewHashSet()
	if err := decodeElements(e, r, s); err != nil {
		return nil, err
	}
	return s, nil
}

type treeSetSerializer struct{}

func (treeSetSerializer) Encode(e *codec.Engine, w *wire.Writer, v any) error {
	s, ok := v.(*TreeSet)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "*collections.TreeSet")
	}
	return encodeElements(e, w, s)
}

func (treeSetSerializer) Decode(e *codec.Engine, r *wire.Reader) (any, error) {
	s := NewTreeSet()
	if err := decodeElements(e, r, s); err != nil {
		return nil, err
	}
	return s, nil
}

type hashMapSerializer struct{}

func (hashMapSerializer) Encode(e *codec.Engine, w *wire.Writer, v any) error {
	m, ok := v.(*HashMap)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "*collections.HashMap")
	}
	return encodeEntries(e, w, m)
}

func (hashMapSerializer) Decode(e *codec.Engine, r *wire.Reader) (any, error) {
	m := NewHashMap()
	if err := decodeEntries(e, r, m); err != nil {
		return nil, err
	}
	return m, nil
}

type treeMapSerializer struct{}

func (treeMapSerializer) Encode(e *codec.Engine, w *wire.Writer, v any) error {
	m, ok := v.(*TreeMap)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "*collections.TreeMap")
	}
	return encodeEntries(e, w, m)
}

func (treeMapSerializer) Decode(e *codec.Engine, r *wire.Reader) (any, error) {
	m := NewTreeMap()
	if err := decodeEntries(e, r, m); err != nil {
		return nil, err
	}
	return m, nil
}

// RegisterCollectionTypes registers serializers for the six delegate
// collection types. Registration order is fixed; the resulting stream IDs
// are wire contract.
func RegisterCollectionTypes(e *codec.Engine) error {
	regs := []struct {
		prototype any
		ser       codec.Serializer
	}{
		{&ArrayList{}, arrayListSerializer{}},
		{&LinkedList{}, linkedListSerializer{}},
		{&HashSet{}, hashSetSerializer{}},
		{&TreeSet{}, treeSetSerializer{}},
		{&HashMap{}, hashMapSerializer{}},
		{&TreeMap{}, treeMapSerializer{}},
	}
	for _, reg := range regs {
		if err := e.Register(reg.prototype, reg.ser); err != nil {
			return err
		}
	}
	return nil
}
