package list

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var _ SinglyLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil) // Type check assertion

// singlyLinkedList owns the chain through root.next.
// The root is a sentinel, its value is never read. The tail aliases the last
// node of the chain, or the root if the list is empty.
type singlyLinkedList[T any] struct {
	root singlyNodeElement[T]
	tail *singlyNodeElement[T]
	len  int64
}

func NewSinglyLinkedList[T any]() SinglyLinkedList[T] {
	return new(singlyLinkedList[T]).init()
}

func (l *singlyLinkedList[T]) init() *singlyLinkedList[T] {
	l.root.next = nil
	l.tail = &l.root
	l.len = 0
	return l
}

// predecessor returns the node right before index pos, the root for pos 0.
// O(pos).
func (l *singlyLinkedList[T]) predecessor(pos int64) *singlyNodeElement[T] {
	iterator := &l.root
	for ; pos > 0; pos-- {
		iterator = iterator.next
	}
	return iterator
}

func (l *singlyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *singlyLinkedList[T]) IsEmpty() bool {
	return l.len == 0
}

func (l *singlyLinkedList[T]) PushBack(v T) {
	e := newSinglyNodeElement[T](v, nil)
	l.tail.next = e
	l.tail = e
	l.len++
}

func (l *singlyLinkedList[T]) PushFront(v T) {
	e := newSinglyNodeElement[T](v, l.root.next)
	l.root.next = e
	if l.len == 0 {
		l.tail = e
	}
	l.len++
}

func (l *singlyLinkedList[T]) InsertAt(pos int64, v T) {
	mustInBounds(opInsert, pos, l.len+1, l.len)

	switch pos {
	case 0:
		l.PushFront(v)
	case l.len:
		l.PushBack(v)
	default:
		prev := l.predecessor(pos)
		prev.next = newSinglyNodeElement[T](v, prev.next)
		l.len++
	}
}

func (l *singlyLinkedList[T]) PopBack() (T, bool) {
	if l.len <= 1 {
		return l.PopFront()
	}

	// No backward links, the new tail is found from the front.
	prev := l.predecessor(l.len - 1)
	last := prev.next
	prev.next = nil
	l.tail = prev
	l.len--
	return last.release(), true
}

func (l *singlyLinkedList[T]) PopFront() (T, bool) {
	if l.len == 0 {
		return *new(T), false
	}

	first := l.root.next
	l.root.next = first.next
	l.len--
	if l.len == 0 {
		l.tail = &l.root
	}
	return first.release(), true
}

func (l *singlyLinkedList[T]) DeleteAt(pos int64) T {
	mustInBounds(opDelete, pos, l.len, l.len)

	var v T
	switch pos {
	case 0:
		v, _ = l.PopFront()
	case l.len - 1:
		v, _ = l.PopBack()
	default:
		prev := l.predecessor(pos)
		target := prev.next
		prev.next = target.next
		l.len--
		v = target.release()
	}
	return v
}

func (l *singlyLinkedList[T]) UpdateAt(pos int64, v T) {
	*l.ref(opUpdate, pos) = v
}

func (l *singlyLinkedList[T]) PeekBack() (T, bool) {
	if ref := l.PeekBackRef(); ref != nil {
		return *ref, true
	}
	return *new(T), false
}

func (l *singlyLinkedList[T]) PeekBackRef() *T {
	if l.len == 0 {
		return nil
	}
	return &l.tail.value
}

func (l *singlyLinkedList[T]) PeekFront() (T, bool) {
	if ref := l.PeekFrontRef(); ref != nil {
		return *ref, true
	}
	return *new(T), false
}

func (l *singlyLinkedList[T]) PeekFrontRef() *T {
	if l.len == 0 {
		return nil
	}
	return &l.root.next.value
}

func (l *singlyLinkedList[T]) Get(pos int64) T {
	return *l.ref(opGet, pos)
}

func (l *singlyLinkedList[T]) GetRef(pos int64) *T {
	return l.ref(opGet, pos)
}

// ref serves both ends without walking.
func (l *singlyLinkedList[T]) ref(op string, pos int64) *T {
	mustInBounds(op, pos, l.len, l.len)

	switch pos {
	case 0:
		return l.PeekFrontRef()
	case l.len - 1:
		return l.PeekBackRef()
	}
	return &l.predecessor(pos).next.value
}

// Clear pops from the front until empty, every detached node drops its link.
func (l *singlyLinkedList[T]) Clear() {
	for l.len > 0 {
		_, _ = l.PopFront()
	}
	l.init()
}

func (l *singlyLinkedList[T]) Reverse() {
	if l.len <= 1 {
		return
	}

	var (
		prev     *singlyNodeElement[T]
		iterator = l.root.next
	)
	l.tail = iterator
	for iterator != nil {
		next := iterator.next
		iterator.next = prev
		prev = iterator
		iterator = next
	}
	l.root.next = prev
}

func (l *singlyLinkedList[T]) validate() error {
	if l == nil || l.tail == nil {
		return errors.New("[singly-linked-list] uninitialized list")
	}

	var (
		merr     error
		iterator = &l.root
		visited  = make(map[*singlyNodeElement[T]]struct{}, l.len)
		steps    int64
	)
	for iterator.next != nil {
		iterator = iterator.next
		if iterator == &l.root {
			merr = multierr.Append(merr, fmt.Errorf("[singly-linked-list] sentinel linked as a node at step %d", steps+1))
			break
		}
		if _, ok := visited[iterator]; ok {
			merr = multierr.Append(merr, fmt.Errorf("[singly-linked-list] cycle detected at step %d", steps+1))
			break
		}
		visited[iterator] = struct{}{}
		if steps++; steps > l.len {
			break
		}
	}

	if steps != l.len {
		merr = multierr.Append(merr, fmt.Errorf("[singly-linked-list] len %d, but %d nodes reachable", l.len, steps))
	} else if iterator != l.tail {
		merr = multierr.Append(merr, fmt.Errorf("[singly-linked-list] tail is not the node at step %d", steps))
	}
	if l.tail.next != nil {
		merr = multierr.Append(merr, errors.New("[singly-linked-list] tail has a successor"))
	}
	return merr
}
