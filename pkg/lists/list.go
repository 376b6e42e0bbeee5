package lists

import (
	"fmt"
	"reflect"
)

// List is a non-circular singly linked list that also keeps a reference to
// its last node, so both ends can be appended to in constant time.
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use.
type List[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	size int
}

func NewList[T comparable]() *List[T] {
	return new(List[T])
}

func (l *List[T]) Len() int { return l.size }

func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] { return l.head }

// Tail returns the last node, or nil if the list is empty.
func (l *List[T]) Tail() *Node[T] { return l.tail }

// AddAtIndex inserts data so that it ends up at position index, shifting the
// elements from index onwards one position back. Valid indices are
// 0 <= index <= Len().
func (l *List[T]) AddAtIndex(index int, data T) error {
	if invalidData(data) {
		return ErrInvalidArgument
	}
	if index < 0 || index > l.size {
		return outOfRange(index, l.size)
	}
	if index == 0 {
		return l.AddToFront(data)
	}
	if index == l.size {
		return l.AddToBack(data)
	}

	prev := l.head
	for i := 0; i < index-1; i++ {
		prev = prev.next
	}
	prev.next = &Node[T]{data: data, next: prev.next}
	l.size++
	return nil
}

func (l *List[T]) AddToFront(data T) error {
	if invalidData(data) {
		return ErrInvalidArgument
	}
	n := &Node[T]{data: data, next: l.head}
	if l.size == 0 {
		l.tail = n
	}
	l.head = n
	l.size++
	return nil
}

func (l *List[T]) AddToBack(data T) error {
	if invalidData(data) {
		return ErrInvalidArgument
	}
	if l.size == 0 {
		return l.AddToFront(data)
	}
	n := &Node[T]{data: data}
	l.tail.next = n
	l.tail = n
	l.size++
	return nil
}

// RemoveAtIndex removes and returns the element at index.
// Valid indices are 0 <= index < Len().
func (l *List[T]) RemoveAtIndex(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, outOfRange(index, l.size)
	}
	if index == 0 {
		return l.RemoveFromFront()
	}
	if index == l.size-1 {
		return l.RemoveFromBack()
	}

	prev := l.head
	for i := 0; i < index-1; i++ {
		prev = prev.next
	}
	removed := prev.next
	prev.next = removed.next
	removed.next = nil
	l.size--
	return removed.data, nil
}

func (l *List[T]) RemoveFromFront() (T, error) {
	var zero T
	if l.IsEmpty() {
		return zero, ErrEmptyCollection
	}
	removed := l.head
	l.head = removed.next
	removed.next = nil
	if l.size == 1 {
		l.tail = nil
	}
	l.size--
	return removed.data, nil
}

// RemoveFromBack removes and returns the last element. Nodes have no back
// links, so finding the new tail walks the whole list.
func (l *List[T]) RemoveFromBack() (T, error) {
	var zero T
	if l.IsEmpty() {
		return zero, ErrEmptyCollection
	}
	if l.size == 1 {
		return l.RemoveFromFront()
	}

	removed := l.tail
	prev := l.head
	for i := 0; i < l.size-2; i++ {
		prev = prev.next
	}
	prev.next = nil
	l.tail = prev
	l.size--
	return removed.data, nil
}

func (l *List[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= l.size {
		return zero, outOfRange(index, l.size)
	}
	if index == 0 {
		return l.head.data, nil
	}
	if index == l.size-1 {
		return l.tail.data, nil
	}

	cur := l.head
	for i := 0; i < index; i++ {
		cur = cur.next
	}
	return cur.data, nil
}

// Clear removes every element. Each node is unlinked from its successor.
func (l *List[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.tail = nil
	l.size = 0
}

// RemoveLastOccurrence removes and returns the element equal to data that
// sits closest to the back of the list. Elements are compared with ==, so
// for a pointer element type two distinct pointers never match, even when
// they point at equal values. Store values to get value equality.
func (l *List[T]) RemoveLastOccurrence(data T) (T, error) {
	var zero T
	if invalidData(data) {
		return zero, ErrInvalidArgument
	}

	var prev, last, beforeLast *Node[T]
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.data == data {
			last = cur
			beforeLast = prev
		}
		prev = cur
	}
	if last == nil {
		return zero, ErrNotFound
	}

	if beforeLast == nil {
		l.head = last.next
		if l.head == nil {
			l.tail = nil
		}
	} else {
		beforeLast.next = last.next
		if last == l.tail {
			l.tail = beforeLast
		}
	}
	last.next = nil
	l.size--
	return last.data, nil
}

// ToSlice returns the elements from head to tail. The result is never nil.
func (l *List[T]) ToSlice() []T {
	res := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		res = append(res, cur.data)
	}
	return res
}

func (l *List[T]) String() string {
	return fmt.Sprint(l.ToSlice())
}

// invalidData reports whether v cannot be stored or searched for: it is nil,
// or its dynamic value would panic when compared with ==.
func invalidData(v any) bool {
	return isNil(v) || !reflect.ValueOf(v).Comparable()
}

// isNil reports whether v holds no value: a nil interface, or a nil value
// of a pointer-like kind.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
