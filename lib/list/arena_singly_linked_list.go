package list

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var _ SinglyLinkedList[struct{}] = (*arenaSinglyLinkedList[struct{}])(nil) // Type check assertion

const defaultArenaCap = 16

// arenaSinglyLinkedList keeps its nodes in a slot arena and links them by index.
// The tail is a slot index, so it never dangles: a removed tail slot is only
// recycled after the tail has moved to its predecessor.
type arenaSinglyLinkedList[T any] struct {
	arena *singlySlotArena[T]
	tail  uint32
	len   int64
}

// NewArenaSinglyLinkedList returns an index linked list.
// capHint presets the slot table capacity.
// The pointers returned by the Ref methods are invalidated by later insertions.
func NewArenaSinglyLinkedList[T any](capHint ...uint32) SinglyLinkedList[T] {
	capPerBuf := uint32(defaultArenaCap)
	if len(capHint) > 0 && capHint[0] > 0 {
		capPerBuf = capHint[0]
	}
	return &arenaSinglyLinkedList[T]{
		arena: newSinglySlotArena[T](capPerBuf, capPerBuf>>2),
		tail:  sentinelSlot,
	}
}

func (l *arenaSinglyLinkedList[T]) slot(idx uint32) *singlySlot[T] {
	return l.arena.get(idx)
}

// predecessor returns the slot index right before index pos, the sentinel for pos 0.
func (l *arenaSinglyLinkedList[T]) predecessor(pos int64) uint32 {
	idx := sentinelSlot
	for ; pos > 0; pos-- {
		idx = l.slot(idx).next
	}
	return idx
}

func (l *arenaSinglyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *arenaSinglyLinkedList[T]) IsEmpty() bool {
	return l.len == 0
}

func (l *arenaSinglyLinkedList[T]) PushBack(v T) {
	idx := l.arena.allocate(v, noneSlot)
	l.slot(l.tail).next = idx
	l.tail = idx
	l.len++
}

func (l *arenaSinglyLinkedList[T]) PushFront(v T) {
	idx := l.arena.allocate(v, l.slot(sentinelSlot).next)
	l.slot(sentinelSlot).next = idx
	if l.len == 0 {
		l.tail = idx
	}
	l.len++
}

func (l *arenaSinglyLinkedList[T]) InsertAt(pos int64, v T) {
	mustInBounds(opInsert, pos, l.len+1, l.len)

	switch pos {
	case 0:
		l.PushFront(v)
	case l.len:
		l.PushBack(v)
	default:
		prev := l.predecessor(pos)
		// Allocation may grow the table, so the predecessor slot is loaded afterwards.
		idx := l.arena.allocate(v, l.slot(prev).next)
		l.slot(prev).next = idx
		l.len++
	}
}

func (l *arenaSinglyLinkedList[T]) PopBack() (T, bool) {
	if l.len <= 1 {
		return l.PopFront()
	}

	prev := l.predecessor(l.len - 1)
	last := l.tail
	l.slot(prev).next = noneSlot
	l.tail = prev
	l.len--
	return l.arena.recycle(last), true
}

func (l *arenaSinglyLinkedList[T]) PopFront() (T, bool) {
	if l.len == 0 {
		return *new(T), false
	}

	first := l.slot(sentinelSlot).next
	l.slot(sentinelSlot).next = l.slot(first).next
	l.len--
	if l.len == 0 {
		l.tail = sentinelSlot
	}
	return l.arena.recycle(first), true
}

func (l *arenaSinglyLinkedList[T]) DeleteAt(pos int64) T {
	mustInBounds(opDelete, pos, l.len, l.len)

	var v T
	switch pos {
	case 0:
		v, _ = l.PopFront()
	case l.len - 1:
		v, _ = l.PopBack()
	default:
		prev := l.predecessor(pos)
		target := l.slot(prev).next
		l.slot(prev).next = l.slot(target).next
		l.len--
		v = l.arena.recycle(target)
	}
	return v
}

func (l *arenaSinglyLinkedList[T]) UpdateAt(pos int64, v T) {
	l.slot(l.index(opUpdate, pos)).value = v
}

func (l *arenaSinglyLinkedList[T]) PeekBack() (T, bool) {
	if l.len == 0 {
		return *new(T), false
	}
	return l.slot(l.tail).value, true
}

func (l *arenaSinglyLinkedList[T]) PeekBackRef() *T {
	if l.len == 0 {
		return nil
	}
	return &l.slot(l.tail).value
}

func (l *arenaSinglyLinkedList[T]) PeekFront() (T, bool) {
	if l.len == 0 {
		return *new(T), false
	}
	return l.slot(l.slot(sentinelSlot).next).value, true
}

func (l *arenaSinglyLinkedList[T]) PeekFrontRef() *T {
	if l.len == 0 {
		return nil
	}
	return &l.slot(l.slot(sentinelSlot).next).value
}

func (l *arenaSinglyLinkedList[T]) Get(pos int64) T {
	return l.slot(l.index(opGet, pos)).value
}

func (l *arenaSinglyLinkedList[T]) GetRef(pos int64) *T {
	return &l.slot(l.index(opGet, pos)).value
}

// index returns the slot of the element at pos, both ends without walking.
func (l *arenaSinglyLinkedList[T]) index(op string, pos int64) uint32 {
	mustInBounds(op, pos, l.len, l.len)

	switch pos {
	case 0:
		return l.slot(sentinelSlot).next
	case l.len - 1:
		return l.tail
	}
	return l.slot(l.predecessor(pos)).next
}

func (l *arenaSinglyLinkedList[T]) Clear() {
	for l.len > 0 {
		_, _ = l.PopFront()
	}
	l.arena.reset()
	l.tail = sentinelSlot
}

func (l *arenaSinglyLinkedList[T]) Reverse() {
	if l.len <= 1 {
		return
	}

	var (
		prev     = noneSlot
		iterator = l.slot(sentinelSlot).next
	)
	l.tail = iterator
	for iterator != noneSlot {
		next := l.slot(iterator).next
		l.slot(iterator).next = prev
		prev = iterator
		iterator = next
	}
	l.slot(sentinelSlot).next = prev
}

func (l *arenaSinglyLinkedList[T]) validate() error {
	if l == nil || l.arena == nil || l.arena.slotLen() <= 0 {
		return errors.New("[singly-linked-list] uninitialized list")
	}

	slotLen := uint32(l.arena.slotLen())
	if l.tail >= slotLen {
		return fmt.Errorf("[singly-linked-list] tail slot %d out of arena with %d slots", l.tail, slotLen)
	}

	var (
		merr     error
		iterator = sentinelSlot
		visited  = make([]bool, slotLen)
		steps    int64
	)
	visited[sentinelSlot] = true
	for next := l.slot(iterator).next; next != noneSlot; next = l.slot(iterator).next {
		if next >= slotLen {
			merr = multierr.Append(merr, fmt.Errorf("[singly-linked-list] slot %d out of arena at step %d", next, steps+1))
			break
		}
		if visited[next] {
			merr = multierr.Append(merr, fmt.Errorf("[singly-linked-list] cycle detected at step %d", steps+1))
			break
		}
		visited[next] = true
		iterator = next
		if steps++; steps > l.len {
			break
		}
	}

	if steps != l.len {
		merr = multierr.Append(merr, fmt.Errorf("[singly-linked-list] len %d, but %d nodes reachable", l.len, steps))
	} else if iterator != l.tail {
		merr = multierr.Append(merr, fmt.Errorf("[singly-linked-list] tail is not the node at step %d", steps))
	}
	if l.slot(l.tail).next != noneSlot {
		merr = multierr.Append(merr, errors.New("[singly-linked-list] tail has a successor"))
	}
	if reachable, recycled := int64(slotLen)-1, int64(l.arena.recLen()); l.len+recycled != reachable {
		merr = multierr.Append(merr, fmt.Errorf("[singly-linked-list] %d slots leaked", reachable-recycled-l.len))
	}
	return merr
}
