package list

import (
	"strconv"

	"github.com/benz9527/xlist/lib/infra"
)

const (
	opInsert = "insert"
	opDelete = "delete"
	opUpdate = "update"
	opGet    = "get"
)

// mustInBounds panics if pos is outside [0, upper).
// Callers pass upper = length for element access and upper = length+1 for insertion.
func mustInBounds(op string, pos, upper, length int64) {
	if pos >= 0 && pos < upper {
		return
	}
	panic(infra.WrapErrorStackWithMessage(
		ErrIndexOutOfBounds,
		op+" at "+strconv.FormatInt(pos, 10)+" with len "+strconv.FormatInt(length, 10),
	))
}

type chainValidator interface {
	validate() error
}

// SinglyLinkedListValidate walks the chain of l and reports every broken
// structural invariant: length mismatch, stale tail, tail with a successor, cycles.
func SinglyLinkedListValidate[T any](l SinglyLinkedList[T]) error {
	v, ok := l.(chainValidator)
	if !ok {
		return infra.NewErrorStack("[singly-linked-list] unknown implementation")
	}
	return v.validate()
}
