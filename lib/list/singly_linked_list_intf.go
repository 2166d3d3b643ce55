package list

import "errors"

// Note that the singly linked list is not thread safe.
// The cached tail and the length are updated as a pair by every mutation,
// guard the whole list with one lock if it is shared.

// ErrIndexOutOfBounds is the cause of the panic raised by positional operations
// called with an index outside the valid range. It signals a caller bug, an empty
// list is reported by the boolean or nil result instead.
var ErrIndexOutOfBounds = errors.New("[singly-linked-list] index out of bounds")

// SinglyLinkedList is a singly linked list with O(1) access to both ends.
// Positions are 0-based from the front.
type SinglyLinkedList[T any] interface {
	Len() int64
	IsEmpty() bool
	// PushBack appends v as the new last element.
	PushBack(v T)
	// PushFront prepends v as the new first element.
	PushFront(v T)
	// InsertAt inserts v so it becomes the element at index pos.
	// pos == Len() appends. Panics with ErrIndexOutOfBounds if pos < 0 or pos > Len().
	InsertAt(pos int64, v T)
	// PopBack removes and returns the last element, or false if the list is empty.
	// It walks from the front to find the new last element.
	PopBack() (T, bool)
	// PopFront removes and returns the first element, or false if the list is empty.
	PopFront() (T, bool)
	// DeleteAt removes and returns the element at index pos.
	// Panics with ErrIndexOutOfBounds if pos < 0 or pos >= Len().
	DeleteAt(pos int64) T
	// UpdateAt replaces the element at index pos with v.
	// Panics with ErrIndexOutOfBounds if pos < 0 or pos >= Len().
	UpdateAt(pos int64, v T)
	PeekBack() (T, bool)
	// PeekBackRef returns a pointer to the last element or nil if the list is empty.
	PeekBackRef() *T
	PeekFront() (T, bool)
	// PeekFrontRef returns a pointer to the first element or nil if the list is empty.
	PeekFrontRef() *T
	// Get returns the element at index pos.
	// Panics with ErrIndexOutOfBounds if pos < 0 or pos >= Len().
	Get(pos int64) T
	// GetRef returns a pointer to the element at index pos.
	// Panics with ErrIndexOutOfBounds if pos < 0 or pos >= Len().
	GetRef(pos int64) *T
	// Clear removes all elements.
	Clear()
	// Reverse reverses the order of the elements in place.
	Reverse()
}
