package collections

import "container/list"

// ArrayList is a slice-backed List with constant-time positional access.
type ArrayList struct {
	items []any
}

// NewArrayList creates an ArrayList holding the given elements.
func NewArrayList(items ...any) *ArrayList {
	l := &ArrayList{}
	l.items = append(l.items, items...)
	return l
}

func (l *ArrayList) randomAccess() {}

func (l *ArrayList) Len() int {
	return len(l.items)
}

func (l *ArrayList) Contains(v any) bool {
	for _, item := range l.items {
		if equal(item, v) {
			return true
		}
	}
	return false
}

func (l *ArrayList) Each(fn func(v any) bool) {
	for _, item := range l.items {
		if !fn(item) {
			return
		}
	}
}

func (l *ArrayList) Add(v any) error {
	l.items = append(l.items, v)
	return nil
}

func (l *ArrayList) Remove(v any) error {
	for i, item := range l.items {
		if equal(item, v) {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (l *ArrayList) Clear() error {
	l.items = l.items[:0]
	return nil
}

func (l *ArrayList) Get(i int) (any, error) {
	if i < 0 || i >= len(l.items) {
		return nil, ErrIndexOutOfRange
	}
	return l.items[i], nil
}

func (l *ArrayList) Set(i int, v any) error {
	if i < 0 || i >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items[i] = v
	return nil
}

func (l *ArrayList) Insert(i int, v any) error {
	if i < 0 || i > len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = v
	return nil
}

func (l *ArrayList) RemoveAt(i int) (any, error) {
	if i < 0 || i >= len(l.items) {
		return nil, ErrIndexOutOfRange
	}
	v := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return v, nil
}

// LinkedList is a doubly-linked List with sequential access.
type LinkedList struct {
	elems *list.List
}

// NewLinkedList creates a LinkedList holding the given elements.
func NewLinkedList(items ...any) *LinkedList {
	l := &LinkedList{elems: list.New()}
	for _, item := range items {
		l.elems.PushBack(item)
	}
	return l
}

func (l *LinkedList) Len() int {
	return l.elems.Len()
}

func (l *LinkedList) Contains(v any) bool {
	for e := l.elems.Front(); e != nil; e = e.Next() {
		if equal(e.Value, v) {
			return true
		}
	}
	return false
}

func (l *LinkedList) Each(fn func(v any) bool) {
	for e := l.elems.Front(); e != nil; e = e.Next() {
		if !fn(e.Value) {
			return
		}
	}
}

func (l *LinkedList) Add(v any) error {
	l.elems.PushBack(v)
	return nil
}

func (l *LinkedList) Remove(v any) error {
	for e := l.elems.Front(); e != nil; e = e.Next() {
		if equal(e.Value, v) {
			l.elems.Remove(e)
			return nil
		}
	}
	return nil
}

func (l *LinkedList) Clear() error {
	l.elems.Init()
	return nil
}

func (l *LinkedList) Get(i int) (any, error) {
	e, err := l.at(i)
	if err != nil {
		return nil, err
	}
	return e.Value, nil
}

func (l *LinkedList) Set(i int, v any) error {
	e, err := l.at(i)
	if err != nil {
		return err
	}
	e.Value = v
	return nil
}

func (l *LinkedList) Insert(i int, v any) error {
	if i == l.elems.Len() {
		l.elems.PushBack(v)
		return nil
	}
	e, err := l.at(i)
	if err != nil {
		return err
	}
	l.elems.InsertBefore(v, e)
	return nil
}

func (l *LinkedList) RemoveAt(i int) (any, error) {
	e, err := l.at(i)
	if err != nil {
		return nil, err
	}
	return l.elems.Remove(e), nil
}

func (l *LinkedList) at(i int) (*list.Element, error) {
	if i < 0 || i >= l.elems.Len() {
		return nil, ErrIndexOutOfRange
	}
	e := l.elems.Front()
	for ; i > 0; i-- {
		e = e.Next()
	}
	return e, nil
}
